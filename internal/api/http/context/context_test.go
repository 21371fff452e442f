package context

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/todokeeper/todokeeper-server/internal/model"
)

func TestManager_SetAndGetUser(t *testing.T) {
	t.Parallel()

	m := NewManager()
	user := model.User{ID: uuid.New(), Email: "a@example.com", Name: "Alice"}

	ctx := m.SetUserToContext(context.Background(), user)

	got, ok := m.GetUserFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, user, got)
}

func TestManager_GetUser_Absent(t *testing.T) {
	t.Parallel()

	m := NewManager()

	got, ok := m.GetUserFromContext(context.Background())
	assert.False(t, ok)
	assert.Equal(t, model.User{}, got)
}
