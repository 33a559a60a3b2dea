// Package authz holds the stateless authorization predicates gating
// mutations on posts, comments and follow edges. Predicates return a typed
// error on denial; the HTTP layer decides how each kind is surfaced
// (redirect to login for anonymous actors, silent redirect otherwise).
package authz

import "errors"

var (
	// ErrAuthRequired is returned when an anonymous actor attempts a
	// mutating operation
	ErrAuthRequired = errors.New("authentication required")

	// ErrNotAuthorized is returned when an authenticated actor lacks
	// rights over the target entity
	ErrNotAuthorized = errors.New("not authorized")

	// ErrSelfFollow is returned when a follow or unfollow targets the
	// acting user themselves
	ErrSelfFollow = errors.New("cannot follow yourself")
)

// Actor is the acting identity for a request. The zero value is anonymous.
type Actor struct {
	ID            int64
	Authenticated bool
}

// Anonymous returns the unauthenticated actor
func Anonymous() Actor {
	return Actor{}
}

// User returns an authenticated actor with the given user id
func User(id int64) Actor {
	return Actor{ID: id, Authenticated: true}
}

// CanEditOrDelete reports whether the actor may edit or delete a post
// authored by authorID. Only the author may mutate their own posts.
func CanEditOrDelete(actor Actor, authorID int64) error {
	if !actor.Authenticated {
		return ErrAuthRequired
	}
	if actor.ID != authorID {
		return ErrNotAuthorized
	}
	return nil
}

// CanComment reports whether the actor may comment. Any authenticated
// user may comment on any post.
func CanComment(actor Actor) error {
	if !actor.Authenticated {
		return ErrAuthRequired
	}
	return nil
}

// CanManageFollow reports whether the actor may create or remove a follow
// edge targeting authorID
func CanManageFollow(actor Actor, authorID int64) error {
	if !actor.Authenticated {
		return ErrAuthRequired
	}
	if actor.ID == authorID {
		return ErrSelfFollow
	}
	return nil
}
