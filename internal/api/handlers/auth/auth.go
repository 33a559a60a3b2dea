package auth

import (
	"log"
	"net/http"

	"Quill/internal/api/handlers"
	"Quill/internal/api/middleware"
	"Quill/internal/core/users"
)

// Handler serves signup, login and logout
type Handler struct {
	userService users.Service
	sessions    *middleware.SessionAuth
}

// NewHandler creates a new auth handler
func NewHandler(userService users.Service, sessions *middleware.SessionAuth) *Handler {
	return &Handler{
		userService: userService,
		sessions:    sessions,
	}
}

// HandleSignup handles POST /auth/signup
// Registers the account and logs it straight in.
func (h *Handler) HandleSignup(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid form")
		return
	}

	user, err := h.userService.Register(r.Context(), users.RegisterRequest{
		Username: r.PostFormValue("username"),
		Password: r.PostFormValue("password"),
	})
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	if err := h.sessions.Login(w, r, user.ID); err != nil {
		log.Printf("Failed to write session: %v", err)
		handlers.WriteError(w, http.StatusInternalServerError, "InternalServerError",
			"An internal error occurred")
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// HandleLogin handles POST /auth/login
func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid form")
		return
	}

	user, err := h.userService.Authenticate(r.Context(),
		r.PostFormValue("username"), r.PostFormValue("password"))
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	if err := h.sessions.Login(w, r, user.ID); err != nil {
		log.Printf("Failed to write session: %v", err)
		handlers.WriteError(w, http.StatusInternalServerError, "InternalServerError",
			"An internal error occurred")
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// HandleLogout handles POST /auth/logout
func (h *Handler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	h.sessions.Logout(w, r)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *Handler) handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case err == users.ErrUsernameTaken:
		handlers.WriteError(w, http.StatusConflict, "UsernameTaken", "Username already taken")

	case err == users.ErrInvalidCredentials:
		handlers.WriteError(w, http.StatusUnauthorized, "InvalidCredentials",
			"Invalid username or password")

	case users.IsValidationError(err):
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", err.Error())

	default:
		log.Printf("Unexpected error in auth handler: %v", err)
		handlers.WriteError(w, http.StatusInternalServerError, "InternalServerError",
			"An internal error occurred")
	}
}
