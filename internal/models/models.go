package models

import "time"

// QRCode is a single stored generation event. Records are immutable after
// creation: there is no update operation, only create/read/delete.
type QRCode struct {
	ID          string    `json:"id" db:"id"`
	OwnerID     string    `json:"-" db:"owner_id"`
	Text        string    `json:"text" db:"text"`
	ImageURL    string    `json:"imageUrl" db:"image_url"`
	IsURL       bool      `json:"isUrl" db:"is_url"`
	GeneratedAt time.Time `json:"generatedAt" db:"generated_at"`
}

type GenerateRequest struct {
	Text string `json:"text"`
}

type GenerateResponse struct {
	Message string `json:"message"`
	QRCode  QRCode `json:"qrCode"`
}

type ListResponse struct {
	QRCodes     []QRCode `json:"qrCodes"`
	TotalPages  int      `json:"totalPages"`
	CurrentPage int      `json:"currentPage"`
}

type ShareRequest struct {
	QRCodeID       string `json:"qrCodeId"`
	RecipientEmail string `json:"recipientEmail"`
}

type DecodeResponse struct {
	Text  string `json:"text"`
	Found bool   `json:"found"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type ErrorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}
