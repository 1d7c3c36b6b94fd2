package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/render"

	"github.com/textdesk/textdesk/internal/models"
	"github.com/textdesk/textdesk/internal/repository"
	"github.com/textdesk/textdesk/internal/service"
)

// StatusResponse reports session state for GET /api/auth/status.
type StatusResponse struct {
	Authenticated bool   `json:"authenticated"`
	UserID        string `json:"userId,omitempty"`
}

// SignUp handles POST /api/auth/signup.
func (h *Handler) SignUp(w http.ResponseWriter, r *http.Request) {
	var req models.SignUpRequest
	if !h.decode(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		h.sendValidationError(w, r, err)
		return
	}

	user, err := h.service.Auth.SignUp(r.Context(), &req)
	if err != nil {
		if errors.Is(err, repository.ErrEmailTaken) {
			h.sendError(w, r, http.StatusBadRequest, errorCodeEmailTaken, errorMessageEmailTaken)
			return
		}
		h.sendInternal(w, r, "Failed to sign up", err)
		return
	}

	if _, err := h.sessions.Issue(r.Context(), w, user.ID); err != nil {
		h.sendInternal(w, r, "Failed to create session", err)
		return
	}

	render.JSON(w, r, user.Summary())
}

// SignIn handles POST /api/auth/signin.
func (h *Handler) SignIn(w http.ResponseWriter, r *http.Request) {
	var req models.SignInRequest
	if !h.decode(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		h.sendValidationError(w, r, err)
		return
	}

	user, err := h.service.Auth.SignIn(r.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			h.sendError(w, r, http.StatusUnauthorized, errorCodeInvalidCredentials, errorMessageBadCredentials)
			return
		}
		h.sendInternal(w, r, "Failed to sign in", err)
		return
	}

	if _, err := h.sessions.Issue(r.Context(), w, user.ID); err != nil {
		h.sendInternal(w, r, "Failed to create session", err)
		return
	}

	render.JSON(w, r, user.Summary())
}

// AuthStatus handles GET /api/auth/status. It is not gated: anonymous
// clients use it to decide which view to render.
func (h *Handler) AuthStatus(w http.ResponseWriter, r *http.Request) {
	sess, err := h.sessions.Resolve(r.Context(), r)
	if err != nil {
		render.JSON(w, r, StatusResponse{Authenticated: false})
		return
	}

	render.JSON(w, r, StatusResponse{
		Authenticated: true,
		UserID:        sess.UserID,
	})
}

// Logout handles POST /api/auth/logout, destroying the server-side session.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.sessions.Clear(r.Context(), w, r); err != nil {
		h.sendInternal(w, r, "Failed to logout", err)
		return
	}

	render.JSON(w, r, map[string]interface{}{"success": true})
}
