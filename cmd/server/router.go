package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/textdesk/textdesk/internal/handler"
	"github.com/textdesk/textdesk/internal/middleware"
	"github.com/textdesk/textdesk/internal/session"
)

func setupRouter(h *handler.Handler, sessions *session.Manager) http.Handler {
	r := chi.NewRouter()

	r.Route("/api", func(api chi.Router) {
		api.Get("/health", h.HealthCheck)

		api.Post("/auth/signup", h.SignUp)
		api.Post("/auth/signin", h.SignIn)
		api.Get("/auth/status", h.AuthStatus)

		api.Group(func(protected chi.Router) {
			protected.Use(middleware.RequireAuth(sessions))

			protected.Post("/auth/logout", h.Logout)

			protected.Get("/contacts", h.ListContacts)
			protected.Post("/contacts", h.CreateContact)
			protected.Patch("/contacts/{id}", h.UpdateContact)
			protected.Delete("/contacts/{id}", h.DeleteContact)

			protected.Get("/messages", h.ListMessages)
			protected.Post("/messages/send", h.SendMessage)
			protected.Delete("/messages/{id}", h.DeleteMessage)

			protected.Get("/settings", h.GetSettings)
			protected.Post("/settings", h.UpdateSettings)
			protected.Post("/settings/test", h.TestConnection)

			protected.Get("/account/balance", h.AccountBalance)
			protected.Get("/account/usage", h.AccountUsage)
		})
	})

	// Serve the browser client
	r.Handle("/*", http.FileServer(http.Dir("static")))

	return r
}
