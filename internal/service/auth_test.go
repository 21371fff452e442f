package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/todokeeper/todokeeper-server/internal/mocks"
	"github.com/todokeeper/todokeeper-server/internal/model"
	"github.com/todokeeper/todokeeper-server/internal/testutil"
)

func TestAuth_Signup(t *testing.T) {
	t.Parallel()

	t.Run("success", func(t *testing.T) {
		t.Parallel()

		userStore := mocks.NewUserStore(t)
		hasher := mocks.NewPasswordHasher(t)
		tokens := mocks.NewTokenManager(t)

		savedUser := model.User{ID: uuid.New(), Email: "a@example.com", Name: "Alice", PasswordHash: "hashed"}

		hasher.On("Hash", "password123").Return("hashed", nil)
		userStore.On("Create", mock.Anything, mock.MatchedBy(func(u model.User) bool {
			return u.Email == "a@example.com" &&
				u.Name == "Alice" &&
				u.PasswordHash == "hashed" &&
				u.ID != uuid.Nil &&
				!u.CreatedAt.IsZero()
		})).Return(savedUser, nil)
		tokens.On("Generate", savedUser.ID).Return("token", nil)

		svc := NewAuth(userStore, hasher, tokens, testutil.MakeNoopLogger())

		session, err := svc.Signup(context.Background(), model.SignupParams{
			Email:    "a@example.com",
			Name:     "Alice",
			Password: "password123",
		})

		require.NoError(t, err)
		assert.Equal(t, "token", session.Token)
		assert.Equal(t, savedUser, session.User)
	})

	t.Run("email taken", func(t *testing.T) {
		t.Parallel()

		userStore := mocks.NewUserStore(t)
		hasher := mocks.NewPasswordHasher(t)
		tokens := mocks.NewTokenManager(t)

		hasher.On("Hash", "password123").Return("hashed", nil)
		userStore.On("Create", mock.Anything, mock.Anything).Return(model.User{}, model.ErrEmailTaken)

		svc := NewAuth(userStore, hasher, tokens, testutil.MakeNoopLogger())

		_, err := svc.Signup(context.Background(), model.SignupParams{
			Email:    "a@example.com",
			Name:     "Alice",
			Password: "password123",
		})

		assert.ErrorIs(t, err, model.ErrEmailTaken)
	})

	t.Run("store failure", func(t *testing.T) {
		t.Parallel()

		userStore := mocks.NewUserStore(t)
		hasher := mocks.NewPasswordHasher(t)
		tokens := mocks.NewTokenManager(t)

		hasher.On("Hash", "password123").Return("hashed", nil)
		userStore.On("Create", mock.Anything, mock.Anything).Return(model.User{}, errors.New("connection refused"))

		svc := NewAuth(userStore, hasher, tokens, testutil.MakeNoopLogger())

		_, err := svc.Signup(context.Background(), model.SignupParams{
			Email:    "a@example.com",
			Name:     "Alice",
			Password: "password123",
		})

		require.Error(t, err)
		assert.NotErrorIs(t, err, model.ErrEmailTaken)
	})
}

func TestAuth_Login(t *testing.T) {
	t.Parallel()

	t.Run("success", func(t *testing.T) {
		t.Parallel()

		userStore := mocks.NewUserStore(t)
		hasher := mocks.NewPasswordHasher(t)
		tokens := mocks.NewTokenManager(t)

		user := model.User{ID: uuid.New(), Email: "a@example.com", PasswordHash: "hashed"}

		userStore.On("GetByEmail", mock.Anything, "a@example.com").Return(user, nil)
		hasher.On("Verify", "password123", "hashed").Return(true)
		tokens.On("Generate", user.ID).Return("token", nil)

		svc := NewAuth(userStore, hasher, tokens, testutil.MakeNoopLogger())

		session, err := svc.Login(context.Background(), model.LoginParams{
			Email:    "a@example.com",
			Password: "password123",
		})

		require.NoError(t, err)
		assert.Equal(t, "token", session.Token)
		assert.Equal(t, user, session.User)
	})

	t.Run("unknown email", func(t *testing.T) {
		t.Parallel()

		userStore := mocks.NewUserStore(t)
		hasher := mocks.NewPasswordHasher(t)
		tokens := mocks.NewTokenManager(t)

		userStore.On("GetByEmail", mock.Anything, "nobody@example.com").Return(model.User{}, model.ErrNotFound)

		svc := NewAuth(userStore, hasher, tokens, testutil.MakeNoopLogger())

		_, err := svc.Login(context.Background(), model.LoginParams{
			Email:    "nobody@example.com",
			Password: "password123",
		})

		assert.ErrorIs(t, err, model.ErrInvalidCredentials)
	})

	t.Run("wrong password", func(t *testing.T) {
		t.Parallel()

		userStore := mocks.NewUserStore(t)
		hasher := mocks.NewPasswordHasher(t)
		tokens := mocks.NewTokenManager(t)

		user := model.User{ID: uuid.New(), Email: "a@example.com", PasswordHash: "hashed"}

		userStore.On("GetByEmail", mock.Anything, "a@example.com").Return(user, nil)
		hasher.On("Verify", "wrong", "hashed").Return(false)

		svc := NewAuth(userStore, hasher, tokens, testutil.MakeNoopLogger())

		_, err := svc.Login(context.Background(), model.LoginParams{
			Email:    "a@example.com",
			Password: "wrong",
		})

		// Same error as the unknown-email case: callers cannot tell which
		// check failed.
		assert.ErrorIs(t, err, model.ErrInvalidCredentials)
	})
}

func TestAuth_UpdateName(t *testing.T) {
	t.Parallel()

	t.Run("success", func(t *testing.T) {
		t.Parallel()

		userStore := mocks.NewUserStore(t)
		id := uuid.New()
		updated := model.User{ID: id, Email: "a@example.com", Name: "Alicia"}

		userStore.On("UpdateName", mock.Anything, id, "Alicia").Return(updated, nil)

		svc := NewAuth(userStore, mocks.NewPasswordHasher(t), mocks.NewTokenManager(t), testutil.MakeNoopLogger())

		user, err := svc.UpdateName(context.Background(), id, "Alicia")

		require.NoError(t, err)
		assert.Equal(t, updated, user)
	})

	t.Run("not found", func(t *testing.T) {
		t.Parallel()

		userStore := mocks.NewUserStore(t)
		id := uuid.New()

		userStore.On("UpdateName", mock.Anything, id, "Alicia").Return(model.User{}, model.ErrNotFound)

		svc := NewAuth(userStore, mocks.NewPasswordHasher(t), mocks.NewTokenManager(t), testutil.MakeNoopLogger())

		_, err := svc.UpdateName(context.Background(), id, "Alicia")

		assert.ErrorIs(t, err, model.ErrNotFound)
	})
}
