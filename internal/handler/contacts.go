package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/textdesk/textdesk/internal/models"
	"github.com/textdesk/textdesk/internal/repository"
)

// ListContacts handles GET /api/contacts.
func (h *Handler) ListContacts(w http.ResponseWriter, r *http.Request) {
	contacts, err := h.service.Contact.List(r.Context())
	if err != nil {
		h.sendInternal(w, r, "Failed to fetch contacts", err)
		return
	}

	render.JSON(w, r, contacts)
}

// CreateContact handles POST /api/contacts.
func (h *Handler) CreateContact(w http.ResponseWriter, r *http.Request) {
	var input models.ContactInput
	if !h.decode(w, r, &input) {
		return
	}
	if err := input.Validate(); err != nil {
		h.sendValidationError(w, r, err)
		return
	}

	contact, err := h.service.Contact.Create(r.Context(), &input)
	if err != nil {
		h.sendInternal(w, r, "Failed to create contact", err)
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, contact)
}

// UpdateContact handles PATCH /api/contacts/{id}.
func (h *Handler) UpdateContact(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var update models.ContactUpdate
	if !h.decode(w, r, &update) {
		return
	}
	if err := update.Validate(); err != nil {
		h.sendValidationError(w, r, err)
		return
	}

	contact, err := h.service.Contact.Update(r.Context(), id, &update)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			h.sendError(w, r, http.StatusNotFound, errorCodeNotFound, "Contact not found")
			return
		}
		h.sendInternal(w, r, "Failed to update contact", err)
		return
	}

	render.JSON(w, r, contact)
}

// DeleteContact handles DELETE /api/contacts/{id}.
func (h *Handler) DeleteContact(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.service.Contact.Delete(r.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			h.sendError(w, r, http.StatusNotFound, errorCodeNotFound, "Contact not found")
			return
		}
		h.sendInternal(w, r, "Failed to delete contact", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
