package email

import (
	"bytes"
	"context"
	"fmt"
	"text/template"
	"time"

	"portfolio-site/config"
	"portfolio-site/pkg/validation"

	"gopkg.in/mail.v2"
)

// ContactEmailData holds the data for contact form emails.
// Sender*, Subject and Message arrive already sanitized and are rendered verbatim
// into the body. ReplyName and ReplyEmail are the unescaped, validated identity
// used for the Reply-To header, which FormatAddress encodes itself.
type ContactEmailData struct {
	SenderName  string
	SenderEmail string
	Subject     string
	Message     string
	ReplyName   string
	ReplyEmail  string
	SentAt      time.Time
}

// SubjectPrefix is prepended to the submitter's subject line
const SubjectPrefix = "Portfolio Contact: "

// contactEmailTemplate is the plain-text body for contact form emails
const contactEmailTemplate = `New Contact Form Submission

Name: {{.SenderName}}
Email: {{.SenderEmail}}
Subject: {{.Subject}}

Message:
{{.Message}}

---
Sent from your portfolio contact form
Time: {{.SentAt.Format "2006-01-02 15:04:05"}}
`

var bodyTemplate = template.Must(template.New("contact").Parse(contactEmailTemplate))

// RenderContactBody renders the plain-text body of a contact email
func RenderContactBody(data ContactEmailData) (string, error) {
	var body bytes.Buffer
	if err := bodyTemplate.Execute(&body, data); err != nil {
		return "", fmt.Errorf("failed to execute email template: %w", err)
	}
	return body.String(), nil
}

// Sender is the transport used by EmailService; *mail.Dialer satisfies it
type Sender interface {
	DialAndSend(m ...*mail.Message) error
}

// EmailService handles sending contact emails via SMTP
type EmailService struct {
	fromEmail  string
	toEmail    string
	sender     Sender
	configured bool
}

// NewEmailService creates a new email service from the SMTP configuration
func NewEmailService(cfg *config.Config) *EmailService {
	return &EmailService{
		fromEmail:  cfg.SMTPFromEmail,
		toEmail:    cfg.ContactEmailTo,
		sender:     mail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword),
		configured: cfg.SMTPHost != "" && cfg.SMTPUsername != "" && cfg.SMTPPassword != "" &&
			cfg.SMTPFromEmail != "" && cfg.ContactEmailTo != "",
	}
}

// NewEmailServiceWithSender builds a service around an explicit transport
func NewEmailServiceWithSender(fromEmail, toEmail string, sender Sender) *EmailService {
	return &EmailService{
		fromEmail:  fromEmail,
		toEmail:    toEmail,
		sender:     sender,
		configured: fromEmail != "" && toEmail != "",
	}
}

// BuildMessage assembles the MIME message for a contact submission.
// The submitter becomes the Reply-To identity; From stays the configured sender.
func (s *EmailService) BuildMessage(data ContactEmailData) (*mail.Message, error) {
	body, err := RenderContactBody(data)
	if err != nil {
		return nil, err
	}

	m := mail.NewMessage()
	m.SetHeader("From", s.fromEmail)
	m.SetHeader("To", s.toEmail)
	m.SetHeader("Reply-To", m.FormatAddress(data.replyAddress()))
	m.SetHeader("Subject", SubjectPrefix+data.Subject)
	m.SetHeader("X-Mailer", "portfolio-site")
	m.SetBody("text/plain", body)
	return m, nil
}

// replyAddress falls back to the sender fields when no raw identity was supplied
func (d ContactEmailData) replyAddress() (string, string) {
	if d.ReplyEmail == "" {
		return d.SenderEmail, validation.SingleLine(d.SenderName)
	}
	return d.ReplyEmail, validation.SingleLine(d.ReplyName)
}

// SendContactEmail makes exactly one delivery attempt to the configured recipient
func (s *EmailService) SendContactEmail(ctx context.Context, data ContactEmailData) error {
	if !s.IsConfigured() {
		return fmt.Errorf("email service is not configured")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	m, err := s.BuildMessage(data)
	if err != nil {
		return err
	}

	if err := s.sender.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

// IsConfigured checks if the email service has valid SMTP configuration
func (s *EmailService) IsConfigured() bool {
	return s.configured
}
