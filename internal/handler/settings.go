package handler

import (
	"net/http"

	"github.com/go-chi/render"

	"github.com/textdesk/textdesk/internal/models"
)

// GetSettings handles GET /api/settings, answering documented defaults
// when nothing has been configured yet.
func (h *Handler) GetSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.service.Settings.Get(r.Context())
	if err != nil {
		h.sendInternal(w, r, "Failed to fetch settings", err)
		return
	}

	render.JSON(w, r, settings)
}

// UpdateSettings handles POST /api/settings with a partial payload.
func (h *Handler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var update models.SettingsUpdate
	if !h.decode(w, r, &update) {
		return
	}
	if err := update.Validate(); err != nil {
		h.sendValidationError(w, r, err)
		return
	}

	settings, err := h.service.Settings.Update(r.Context(), &update)
	if err != nil {
		h.sendInternal(w, r, "Failed to update settings", err)
		return
	}

	render.JSON(w, r, settings)
}

// TestConnection handles POST /api/settings/test, validating an API key
// against the vendor's quota endpoint without persisting anything.
func (h *Handler) TestConnection(w http.ResponseWriter, r *http.Request) {
	var req models.TestConnectionRequest
	if !h.decode(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		h.sendValidationError(w, r, err)
		return
	}

	quota, err := h.service.Settings.TestConnection(r.Context(), &req)
	if err != nil {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, map[string]interface{}{
			"success": false,
			"message": "API connection failed",
		})
		return
	}

	render.JSON(w, r, map[string]interface{}{
		"success":        true,
		"message":        "API connection successful",
		"quotaRemaining": quota,
	})
}
