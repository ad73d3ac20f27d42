package contactapi

import "time"

type ContactRequest struct {
	Name    string `json:"name" binding:"required,max=100"`
	Email   string `json:"email" binding:"required,max=254"`
	Message string `json:"message" binding:"required,max=2000"`
}

// Message is what gets stored for each accepted contact request.
type Message struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Message    string    `json:"message"`
	ReceivedAt time.Time `json:"received_at"`
}

type ContactResponse struct {
	ID         string `json:"id"`
	ReceivedOn string `json:"received_on"`
}
