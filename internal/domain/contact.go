package domain

import (
	"context"
	"time"
)

// User-facing messages returned in the SubmissionResult envelope
const (
	MsgInvalidMethod   = "Invalid request method"
	MsgInvalidJSON     = "Invalid JSON data"
	MsgMessageSent     = "Message sent successfully!"
	MsgSendFailed      = "Failed to send email. Please try again later."
	MsgTooManyRequests = "Too many requests. Please try again later."
)

// ContactSubmission represents a contact form submission
type ContactSubmission struct {
	Name    string `json:"name" validate:"required,min=2"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject" validate:"required,min=3"`
	Message string `json:"message" validate:"required,min=10"`
}

// SubmissionResult is the whole response body of a contact request
type SubmissionResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// SubmissionLogEntry is one line of the append-only submission log
type SubmissionLogEntry struct {
	Timestamp time.Time
	Name      string
	Email     string
	Subject   string
}

// SubmissionLogger records successful submissions
type SubmissionLogger interface {
	Append(ctx context.Context, entry SubmissionLogEntry) error
}

// RateLimiter decides whether another attempt for key is allowed
type RateLimiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// ContactUsecase defines the interface for contact form operations
type ContactUsecase interface {
	// SendContactMessage validates, sanitizes and delivers a contact form message.
	// Returned errors are *apperror.AppError carrying the user-facing message.
	SendContactMessage(ctx context.Context, req *ContactSubmission) error
	// Submit runs SendContactMessage and folds the outcome into a SubmissionResult
	Submit(ctx context.Context, req *ContactSubmission) SubmissionResult
}
