package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/render"

	"github.com/textdesk/textdesk/internal/gateway"
	"github.com/textdesk/textdesk/internal/service"
)

// AccountBalance handles GET /api/account/balance.
func (h *Handler) AccountBalance(w http.ResponseWriter, r *http.Request) {
	balance, err := h.service.Account.Balance(r.Context())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotConfigured):
			h.sendError(w, r, http.StatusBadRequest, errorCodeGatewayUnconfigured, errorMessageUnconfiguredKey)
		case errors.Is(err, gateway.ErrRateLimited):
			h.sendError(w, r, http.StatusTooManyRequests, errorCodeRateLimited, "SMS gateway rate limit exceeded, try again later")
		default:
			h.sendInternal(w, r, "Failed to fetch account balance", err)
		}
		return
	}

	render.JSON(w, r, balance)
}

// AccountUsage handles GET /api/account/usage.
func (h *Handler) AccountUsage(w http.ResponseWriter, r *http.Request) {
	usage, err := h.service.Account.Usage(r.Context())
	if err != nil {
		h.sendInternal(w, r, "Failed to fetch usage statistics", err)
		return
	}

	render.JSON(w, r, usage)
}
