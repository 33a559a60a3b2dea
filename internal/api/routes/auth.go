package routes

import (
	"github.com/go-chi/chi/v5"

	"Quill/internal/api/handlers/auth"
	"Quill/internal/api/middleware"
	"Quill/internal/core/users"
)

// RegisterAuthRoutes registers signup, login and logout
func RegisterAuthRoutes(r chi.Router, userService users.Service, sessions *middleware.SessionAuth) {
	handler := auth.NewHandler(userService, sessions)

	r.Post("/auth/signup", handler.HandleSignup)
	r.Post("/auth/login", handler.HandleLogin)
	r.Post("/auth/logout", handler.HandleLogout)
}
