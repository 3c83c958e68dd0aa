package v1

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"portfolio-site/internal/delivery/http/middleware"
	"portfolio-site/internal/delivery/http/response"
	"portfolio-site/internal/domain"
	"portfolio-site/pkg/apperror"
	"portfolio-site/pkg/security"

	"github.com/gin-gonic/gin"
)

// maxContactBody bounds the request body read by the contact endpoint
const maxContactBody = 64 << 10

var errNotObject = errors.New("request body is not a JSON object")

type ContactHandler struct {
	contactUC domain.ContactUsecase
	audit     *security.SecurityLogger
}

// NewContactHandler registers the contact routes (public, no auth required).
// Every method is routed so non-POST requests get the JSON failure body.
func NewContactHandler(public gin.IRoutes, contactUC domain.ContactUsecase, audit *security.SecurityLogger) {
	if audit == nil {
		audit = security.DefaultLogger()
	}
	handler := &ContactHandler{
		contactUC: contactUC,
		audit:     audit,
	}

	public.Any("/contact", handler.SubmitContact)
}

// SubmitContact godoc
// @Summary      Submit Contact Form
// @Description  Validate, sanitize and email a contact form message. All validation failures are reported at once, joined with ", ".
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        contact  body      domain.ContactSubmission  true  "Contact Form Data"
// @Success      200      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Failure      405      {object}  response.Response
// @Failure      429      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Router       /contact [post]
func (h *ContactHandler) SubmitContact(c *gin.Context) {
	if c.Request.Method != http.MethodPost {
		c.Error(apperror.MethodNotAllowed(domain.MsgInvalidMethod))
		return
	}

	req, err := decodeSubmission(c.Request.Body)
	if err != nil {
		h.audit.Log(c.Request.Context(), security.SecurityEvent{
			Event:     security.EventMalformedRequest,
			IP:        c.ClientIP(),
			UserAgent: c.Request.UserAgent(),
			RequestID: middleware.GetRequestID(c),
		})
		c.Error(apperror.New(http.StatusBadRequest, domain.MsgInvalidJSON, err))
		return
	}

	if err := h.contactUC.SendContactMessage(c.Request.Context(), req); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, domain.MsgMessageSent, nil)
}

// decodeSubmission accepts only a JSON object body
func decodeSubmission(body io.Reader) (*domain.ContactSubmission, error) {
	raw, err := io.ReadAll(io.LimitReader(body, maxContactBody))
	if err != nil {
		return nil, err
	}
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] != '{' {
		return nil, errNotObject
	}

	var req domain.ContactSubmission
	if err := json.Unmarshal(raw, &req); err != nil {
		return nil, err
	}
	return &req, nil
}
