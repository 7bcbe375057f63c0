package yookassa

// amount is a monetary value; YooKassa encodes the value as a decimal string.
type amount struct {
	Value    string `json:"value"`
	Currency string `json:"currency"`
}

type confirmationRequest struct {
	Type      string `json:"type"`
	ReturnURL string `json:"return_url"`
}

type createPaymentRequest struct {
	Amount       amount              `json:"amount"`
	Capture      bool                `json:"capture"`
	Confirmation confirmationRequest `json:"confirmation"`
	Description  string              `json:"description,omitempty"`
	Metadata     map[string]string   `json:"metadata,omitempty"`
}

type confirmation struct {
	Type            string `json:"type"`
	ConfirmationURL string `json:"confirmation_url"`
}

type apiPayment struct {
	ID           string            `json:"id"`
	Status       string            `json:"status"`
	Paid         bool              `json:"paid"`
	Amount       amount            `json:"amount"`
	Confirmation *confirmation     `json:"confirmation"`
	Metadata     map[string]string `json:"metadata"`
}

type apiError struct {
	Type        string `json:"type"`
	Code        string `json:"code"`
	Description string `json:"description"`
}
