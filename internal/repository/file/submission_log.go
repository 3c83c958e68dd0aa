package file

import (
	"context"
	"fmt"
	"os"
	"sync"

	"portfolio-site/internal/domain"
	"portfolio-site/pkg/export"
	"portfolio-site/pkg/validation"
)

// SubmissionLog appends one line per accepted contact submission
type SubmissionLog struct {
	path string
	mu   sync.Mutex
}

func NewSubmissionLog(path string) *SubmissionLog {
	return &SubmissionLog{path: path}
}

var _ domain.SubmissionLogger = (*SubmissionLog)(nil)

// FormatLine renders an entry the way it is stored in the log
func FormatLine(entry domain.SubmissionLogEntry) string {
	return fmt.Sprintf("%s - Name: %s, Email: %s, Subject: %s\n",
		entry.Timestamp.Format(export.TimeLayout),
		validation.SingleLine(entry.Name),
		validation.SingleLine(entry.Email),
		validation.SingleLine(entry.Subject),
	)
}

func (l *SubmissionLog) Append(ctx context.Context, entry domain.SubmissionLogEntry) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open submission log: %w", err)
	}
	if _, err := f.WriteString(FormatLine(entry)); err != nil {
		f.Close()
		return fmt.Errorf("failed to write submission log: %w", err)
	}
	return f.Close()
}
