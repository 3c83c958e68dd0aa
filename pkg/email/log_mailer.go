package email

import (
	"context"
	"log/slog"
)

// LogMailer is a delivery provider that only logs submissions.
// Useful for local development where no SMTP relay is available.
type LogMailer struct {
	logger *slog.Logger
}

func NewLogMailer(logger *slog.Logger) *LogMailer {
	return &LogMailer{logger: logger.With("component", "contact_delivery")}
}

// SendContactEmail logs the rendered message and reports success
func (l *LogMailer) SendContactEmail(ctx context.Context, data ContactEmailData) error {
	body, err := RenderContactBody(data)
	if err != nil {
		return err
	}
	l.logger.InfoContext(ctx, "contact submission delivered to log",
		"subject", SubjectPrefix+data.Subject,
		"reply_to", data.SenderEmail,
		"body", body)
	return nil
}
