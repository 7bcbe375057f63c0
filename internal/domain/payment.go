package domain

// PaymentRequest asks a payment gateway for a new redirect-confirmed payment.
type PaymentRequest struct {
	Amount      int
	Currency    string
	Description string
	ReturnURL   string
	Metadata    map[string]string
}

// Payment is the gateway's view of a payment.
type Payment struct {
	ID              string
	Status          PaymentStatus
	ConfirmationURL string
	Metadata        map[string]string
}

// Metadata keys attached to gateway payments.
const (
	PaymentMetaApplicationID = "application_id"
	PaymentMetaContestName   = "contest_name"
	PaymentMetaEmail         = "email"
)
