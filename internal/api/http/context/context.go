// Package context injects the authenticated user into request contexts
// and reads it back in handlers.
package context

import (
	"context"

	"github.com/todokeeper/todokeeper-server/internal/model"
)

type ctxKey int

// userKey is the context key for the authenticated user.
const userKey ctxKey = iota

// Manager stores and retrieves the authenticated user on a request
// context. Handlers may read the user but must not keep it past the
// request.
type Manager struct{}

// NewManager creates a new context manager instance.
func NewManager() *Manager {
	return &Manager{}
}

// SetUserToContext returns a child context carrying the user.
func (m *Manager) SetUserToContext(ctx context.Context, user model.User) context.Context {
	return context.WithValue(ctx, userKey, user)
}

// GetUserFromContext retrieves the user set by the auth middleware.
// The second return value reports whether a user was present.
func (m *Manager) GetUserFromContext(ctx context.Context) (model.User, bool) {
	user, ok := ctx.Value(userKey).(model.User)
	return user, ok
}
