// Package handler provides HTTP request handlers for the application.
package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/render"
	"go.uber.org/zap"

	"github.com/textdesk/textdesk/internal/middleware"
	"github.com/textdesk/textdesk/internal/models"
	"github.com/textdesk/textdesk/internal/service"
	"github.com/textdesk/textdesk/internal/session"
)

const (
	errorCodeValidation          = "VALIDATION_ERROR"
	errorCodeEmailTaken          = "EMAIL_TAKEN"
	errorCodeInvalidCredentials  = "INVALID_CREDENTIALS"
	errorCodeNotFound            = "NOT_FOUND"
	errorCodeGatewayUnconfigured = "GATEWAY_NOT_CONFIGURED"
	errorCodeGatewayRejected     = "GATEWAY_REJECTED"
	errorCodeGatewayUnreachable  = "GATEWAY_UNREACHABLE"
	errorCodeRateLimited         = "RATE_LIMITED"
)

const (
	errorMessageInvalidBody      = "Invalid request body"
	errorMessageEmailTaken       = "User already exists"
	errorMessageBadCredentials   = "Invalid credentials"
	errorMessageUnconfiguredKey  = "SMS gateway API key is not configured. Add it in settings."
	errorMessageGatewayTransport = "Failed to communicate with SMS service"
)

// ErrorResponse is the JSON error envelope for every failure path.
type ErrorResponse struct {
	Error   string            `json:"error"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

type Handler struct {
	service  *service.Service
	sessions *session.Manager
	logger   *zap.Logger
}

// NewHandler creates a new handler instance.
func NewHandler(service *service.Service, sessions *session.Manager, logger *zap.Logger) *Handler {
	return &Handler{
		service:  service,
		sessions: sessions,
		logger:   logger,
	}
}

// decode parses the JSON request body into v, answering 400 itself on
// malformed input. The boolean reports whether the handler may proceed.
func (h *Handler) decode(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		h.sendError(w, r, http.StatusBadRequest, errorCodeValidation, errorMessageInvalidBody)
		return false
	}
	return true
}

func (h *Handler) sendError(w http.ResponseWriter, r *http.Request, statusCode int, errorCode, message string) {
	render.Status(r, statusCode)
	render.JSON(w, r, ErrorResponse{
		Error:   errorCode,
		Message: message,
	})
}

// sendValidationError answers 400 with field-level detail.
func (h *Handler) sendValidationError(w http.ResponseWriter, r *http.Request, err error) {
	var validationErr *models.ValidationError
	if errors.As(err, &validationErr) {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, ErrorResponse{
			Error:   errorCodeValidation,
			Message: errorMessageInvalidBody,
			Fields:  validationErr.Fields,
		})
		return
	}

	h.sendError(w, r, http.StatusBadRequest, errorCodeValidation, errorMessageInvalidBody)
}

func (h *Handler) sendInternal(w http.ResponseWriter, r *http.Request, message string, err error) {
	h.logger.Error(message,
		zap.String("request_id", middleware.GetRequestID(r.Context())),
		zap.Error(err))
	h.sendError(w, r, http.StatusInternalServerError, middleware.ErrorCodeInternal, message)
}
