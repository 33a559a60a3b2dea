package middleware

import (
	"context"
	"log"
	"net/http"

	"github.com/gorilla/sessions"

	"Quill/internal/core/authz"
)

// SessionName is the cookie holding the login session
const SessionName = "quill_session"

const sessionUserIDKey = "user_id"

// LoginPath is where anonymous actors are sent when they attempt a
// mutating operation
const LoginPath = "/auth/login"

type contextKey string

const actorContextKey contextKey = "actor"

// SessionAuth authenticates requests from the login session cookie.
// RequireAuth gates mutating routes; WithActor only annotates the request
// so public pages can still personalize for logged-in viewers.
type SessionAuth struct {
	store sessions.Store
}

// NewSessionAuth creates session-backed auth middleware. The secret
// signs session cookies and must stay stable across restarts.
func NewSessionAuth(secret string) *SessionAuth {
	store := sessions.NewCookieStore([]byte(secret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   30 * 24 * 60 * 60,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	return &SessionAuth{store: store}
}

// WithActor resolves the session into an actor and injects it into the
// request context. Anonymous requests proceed with the anonymous actor.
func (m *SessionAuth) WithActor(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := context.WithValue(r.Context(), actorContextKey, m.actorFromSession(r))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAuth redirects anonymous actors to the login page and injects
// the authenticated actor into the request context otherwise
func (m *SessionAuth) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		actor := m.actorFromSession(r)
		if !actor.Authenticated {
			http.Redirect(w, r, LoginPath, http.StatusSeeOther)
			return
		}

		ctx := context.WithValue(r.Context(), actorContextKey, actor)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// Login writes the user id into a fresh session cookie
func (m *SessionAuth) Login(w http.ResponseWriter, r *http.Request, userID int64) error {
	session, _ := m.store.Get(r, SessionName)
	session.Values[sessionUserIDKey] = userID
	return session.Save(r, w)
}

// Logout clears the session cookie
func (m *SessionAuth) Logout(w http.ResponseWriter, r *http.Request) {
	session, _ := m.store.Get(r, SessionName)
	session.Options.MaxAge = -1
	if err := session.Save(r, w); err != nil {
		log.Printf("Failed to clear session: %v", err)
	}
}

func (m *SessionAuth) actorFromSession(r *http.Request) authz.Actor {
	session, err := m.store.Get(r, SessionName)
	if err != nil {
		// A bad or tampered cookie degrades to anonymous
		return authz.Anonymous()
	}

	userID, ok := session.Values[sessionUserIDKey].(int64)
	if !ok {
		return authz.Anonymous()
	}

	return authz.User(userID)
}

// GetActor returns the actor injected by WithActor or RequireAuth.
// Returns the anonymous actor when neither middleware ran.
func GetActor(r *http.Request) authz.Actor {
	if actor, ok := r.Context().Value(actorContextKey).(authz.Actor); ok {
		return actor
	}
	return authz.Anonymous()
}
