package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"portfolio-site/internal/domain"
	"portfolio-site/pkg/apperror"
	"portfolio-site/pkg/email"
	"portfolio-site/pkg/logger"
	"portfolio-site/pkg/security"
	"portfolio-site/pkg/validation"

	"github.com/go-playground/validator/v10"
)

// Mailer delivers a contact email. *email.EmailService and *email.LogMailer satisfy it.
type Mailer interface {
	SendContactEmail(ctx context.Context, data email.ContactEmailData) error
}

type contactUsecase struct {
	validate    *validator.Validate
	mailer      Mailer
	limiter     domain.RateLimiter      // nil disables rate limiting
	submissions domain.SubmissionLogger // nil disables the submission log
	audit       *security.SecurityLogger
	now         func() time.Time
}

// NewContactUsecase creates a new contact usecase.
// limiter and submissions are optional; audit defaults to the process security logger.
func NewContactUsecase(
	validate *validator.Validate,
	mailer Mailer,
	limiter domain.RateLimiter,
	submissions domain.SubmissionLogger,
	audit *security.SecurityLogger,
) domain.ContactUsecase {
	if audit == nil {
		audit = security.DefaultLogger()
	}
	return &contactUsecase{
		validate:    validate,
		mailer:      mailer,
		limiter:     limiter,
		submissions: submissions,
		audit:       audit,
		now:         time.Now,
	}
}

// SendContactMessage validates, sanitizes and delivers the message
func (uc *contactUsecase) SendContactMessage(ctx context.Context, req *domain.ContactSubmission) error {
	if req == nil {
		return apperror.BadRequest(domain.MsgInvalidJSON)
	}

	// validated in decoded form so entity-encoded padding cannot satisfy a length rule
	trimmed := domain.ContactSubmission{
		Name:    validation.Normalize(req.Name),
		Email:   validation.Normalize(req.Email),
		Subject: validation.Normalize(req.Subject),
		Message: validation.Normalize(req.Message),
	}

	if err := uc.validate.Struct(trimmed); err != nil {
		messages := validation.FormatValidationErrors(err)
		uc.audit.LogContactEvent(ctx, security.EventValidationFailed, trimmed.Email, map[string]interface{}{
			"errors": len(messages),
		})
		return apperror.BadRequest(validation.JoinMessages(messages))
	}

	clean := domain.ContactSubmission{
		Name:    validation.Sanitize(trimmed.Name),
		Email:   validation.Sanitize(trimmed.Email),
		Subject: validation.Sanitize(trimmed.Subject),
		Message: validation.Sanitize(trimmed.Message),
	}

	if uc.limiter != nil {
		allowed, err := uc.limiter.Allow(ctx, strings.ToLower(trimmed.Email))
		if err != nil {
			logger.Log.Warn("Rate limiter unavailable, allowing submission", "error", err)
		} else if !allowed {
			uc.audit.LogContactEvent(ctx, security.EventRateLimitTriggered, trimmed.Email, nil)
			return apperror.TooManyRequests(domain.MsgTooManyRequests)
		}
	}

	sentAt := uc.now()
	data := email.ContactEmailData{
		SenderName:  clean.Name,
		SenderEmail: clean.Email,
		Subject:     clean.Subject,
		Message:     clean.Message,
		ReplyName:   trimmed.Name,
		ReplyEmail:  trimmed.Email,
		SentAt:      sentAt,
	}

	if err := uc.deliver(ctx, data); err != nil {
		logger.Log.Error("Failed to send contact email", "error", err)
		uc.audit.LogContactEvent(ctx, security.EventDeliveryFailed, trimmed.Email, nil)
		return apperror.New(http.StatusInternalServerError, domain.MsgSendFailed, err)
	}

	if uc.submissions != nil {
		entry := domain.SubmissionLogEntry{
			Timestamp: sentAt,
			Name:      clean.Name,
			Email:     clean.Email,
			Subject:   clean.Subject,
		}
		if err := uc.submissions.Append(ctx, entry); err != nil {
			logger.Log.Warn("Failed to append submission log", "error", err)
		}
	}

	uc.audit.LogContactEvent(ctx, security.EventContactAccepted, trimmed.Email, nil)
	return nil
}

// deliver makes the single delivery attempt; a panicking transport counts as a failure
func (uc *contactUsecase) deliver(ctx context.Context, data email.ContactEmailData) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("mail transport panic: %v", r)
		}
	}()
	if err := uc.mailer.SendContactEmail(ctx, data); err != nil {
		return fmt.Errorf("failed to send contact email: %w", err)
	}
	return nil
}

// Submit runs SendContactMessage and reports the outcome as a SubmissionResult
func (uc *contactUsecase) Submit(ctx context.Context, req *domain.ContactSubmission) domain.SubmissionResult {
	return ResultFromError(uc.SendContactMessage(ctx, req))
}

// ResultFromError maps a contact outcome to the response body.
// Only AppError messages reach the client.
func ResultFromError(err error) domain.SubmissionResult {
	if err == nil {
		return domain.SubmissionResult{Success: true, Message: domain.MsgMessageSent}
	}
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return domain.SubmissionResult{Success: false, Message: appErr.Message}
	}
	return domain.SubmissionResult{Success: false, Message: domain.MsgSendFailed}
}
