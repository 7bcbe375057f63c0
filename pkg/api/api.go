// Package api holds the JSON request and response bodies exchanged between
// the HTTP server and its clients. Entities in responses are encoded with
// the domain types directly; these types cover the request side and the
// envelopes that have no domain counterpart.
package api

import "time"

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error  string       `json:"error"`
	Fields []FieldError `json:"fields,omitempty"`
	// RequestID is set on server-side failures so they can be found in the logs.
	RequestID string `json:"request_id,omitempty"`
}

// FieldError names an invalid request field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

// LoginResponse carries an admin access token.
type LoginResponse struct {
	AccessToken string    `json:"access_token"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// ContestRequest is the body of POST and PUT /contests.
// Deadline is YYYY-MM-DD or RFC 3339.
type ContestRequest struct {
	ID           int64   `json:"id,omitempty"`
	Title        string  `json:"title"`
	Description  string  `json:"description"`
	CategoryID   string  `json:"categoryId"`
	Deadline     string  `json:"deadline"`
	Price        *int    `json:"price,omitempty"`
	Status       string  `json:"status,omitempty"`
	RulesLink    *string `json:"rulesLink,omitempty"`
	DiplomaImage *string `json:"diplomaImage,omitempty"`
	Image        *string `json:"image,omitempty"`
	IsPopular    bool    `json:"isPopular"`
}

// ApplicationRequest is a public submission with its work file
// encoded as base64, optionally prefixed with a data URL header.
type ApplicationRequest struct {
	FullName       string  `json:"full_name"`
	Age            int     `json:"age"`
	Teacher        *string `json:"teacher,omitempty"`
	Institution    *string `json:"institution,omitempty"`
	WorkTitle      string  `json:"work_title"`
	Email          string  `json:"email"`
	ContestID      *int64  `json:"contest_id,omitempty"`
	ContestName    string  `json:"contest_name"`
	GalleryConsent bool    `json:"gallery_consent"`
	WorkFile       string  `json:"work_file"`
	FileName       string  `json:"file_name"`
	FileType       string  `json:"file_type,omitempty"`
}

// ApplicationUpdateRequest is the body of PUT /applications. Only these
// fields are editable; gallery consent and the work file are not.
type ApplicationUpdateRequest struct {
	ID          int64   `json:"id"`
	FullName    string  `json:"full_name"`
	Age         int     `json:"age"`
	Teacher     *string `json:"teacher"`
	Institution *string `json:"institution"`
	WorkTitle   string  `json:"work_title"`
	Email       string  `json:"email"`
	ContestName string  `json:"contest_name"`
	Status      string  `json:"status"`
	Result      *string `json:"result"`
}

// ResultRequest is the body of POST and PUT /results. Result accepts the
// canonical placement values and the legacy editor labels.
type ResultRequest struct {
	ID             int64    `json:"id,omitempty"`
	ApplicationID  *int64   `json:"application_id"`
	FullName       string   `json:"full_name"`
	Age            *int     `json:"age"`
	Teacher        *string  `json:"teacher"`
	Institution    *string  `json:"institution"`
	WorkTitle      *string  `json:"work_title"`
	Email          *string  `json:"email"`
	ContestID      *int64   `json:"contest_id"`
	ContestName    *string  `json:"contest_name"`
	WorkFileURL    *string  `json:"work_file_url"`
	Result         *string  `json:"result"`
	Place          *int     `json:"place"`
	Score          *float64 `json:"score"`
	DiplomaURL     *string  `json:"diploma_url"`
	Notes          *string  `json:"notes"`
	GalleryConsent bool     `json:"gallery_consent"`
}

// ReviewRequest is the body of POST /reviews.
type ReviewRequest struct {
	AuthorName string  `json:"author_name"`
	AuthorRole *string `json:"author_role,omitempty"`
	Rating     int     `json:"rating"`
	Text       string  `json:"text"`
}

// ReviewStatusRequest is the body of PUT /reviews.
type ReviewStatusRequest struct {
	ID     int64  `json:"id"`
	Status string `json:"status"`
}

// UploadRequest is the body of POST /upload-file.
type UploadRequest struct {
	File     string `json:"file"`
	FileName string `json:"fileName"`
	FileType string `json:"fileType,omitempty"`
	Folder   string `json:"folder,omitempty"`
}

// UploadResponse points at the stored object.
type UploadResponse struct {
	URL      string `json:"url"`
	FileName string `json:"fileName"`
}

// PaymentRequest is the body of POST /payment.
type PaymentRequest struct {
	Amount          int                `json:"amount"`
	Description     string             `json:"description"`
	ContestName     string             `json:"contest_name"`
	Email           string             `json:"email"`
	ApplicationData ApplicationRequest `json:"application_data"`
}

// PaymentResponse tells the client where to send the payer.
type PaymentResponse struct {
	PaymentID       string `json:"payment_id"`
	ConfirmationURL string `json:"confirmation_url"`
	Status          string `json:"status"`
	ApplicationID   int64  `json:"application_id"`
}

// WebhookNotification is the subset of a gateway notification the
// server reads. The object is re-fetched from the gateway before use.
type WebhookNotification struct {
	Type   string `json:"type"`
	Event  string `json:"event"`
	Object struct {
		ID string `json:"id"`
	} `json:"object"`
}
