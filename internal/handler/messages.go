package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/textdesk/textdesk/internal/models"
	"github.com/textdesk/textdesk/internal/repository"
	"github.com/textdesk/textdesk/internal/service"
)

// ListMessages handles GET /api/messages, newest first.
func (h *Handler) ListMessages(w http.ResponseWriter, r *http.Request) {
	messages, err := h.service.Message.List(r.Context())
	if err != nil {
		h.sendInternal(w, r, "Failed to fetch messages", err)
		return
	}

	render.JSON(w, r, messages)
}

// SendMessage handles POST /api/messages/send. The created record's
// terminal state decides the response: delivered answers 201, a vendor
// rejection answers 400 with the vendor's reason, and a transport failure
// answers 500 with a generic message.
func (h *Handler) SendMessage(w http.ResponseWriter, r *http.Request) {
	var req models.SendMessageRequest
	if !h.decode(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		h.sendValidationError(w, r, err)
		return
	}

	message, err := h.service.Message.Send(r.Context(), &req)
	if err != nil {
		var rejected *service.SendRejectedError
		var failed *service.SendFailedError

		switch {
		case errors.Is(err, service.ErrNotConfigured):
			h.sendError(w, r, http.StatusBadRequest, errorCodeGatewayUnconfigured, errorMessageUnconfiguredKey)
		case errors.As(err, &rejected):
			h.sendError(w, r, http.StatusBadRequest, errorCodeGatewayRejected, rejected.Reason)
		case errors.As(err, &failed):
			h.sendError(w, r, http.StatusInternalServerError, errorCodeGatewayUnreachable, errorMessageGatewayTransport)
		default:
			h.sendInternal(w, r, "Failed to send message", err)
		}
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, message)
}

// DeleteMessage handles DELETE /api/messages/{id}.
func (h *Handler) DeleteMessage(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.service.Message.Delete(r.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			h.sendError(w, r, http.StatusNotFound, errorCodeNotFound, "Message not found")
			return
		}
		h.sendInternal(w, r, "Failed to delete message", err)
		return
	}

	render.JSON(w, r, map[string]interface{}{"success": true})
}
