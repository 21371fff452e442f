package middleware

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	httpctx "github.com/todokeeper/todokeeper-server/internal/api/http/context"
	"github.com/todokeeper/todokeeper-server/internal/mocks"
	"github.com/todokeeper/todokeeper-server/internal/model"
	"github.com/todokeeper/todokeeper-server/internal/testutil"
)

func TestAuthenticate_Handle(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	user := model.User{ID: userID, Email: "a@example.com", Name: "Alice"}

	tests := []struct {
		name        string
		authHeader  string
		parseID     uuid.UUID
		parseErr    error
		storeUser   model.User
		storeErr    error
		expectParse bool
		expectStore bool
		wantStatus  int
	}{
		{
			name:       "missing header",
			authHeader: "",
			wantStatus: fiber.StatusUnauthorized,
		},
		{
			name:       "not a bearer header",
			authHeader: "Basic dXNlcjpwYXNz",
			wantStatus: fiber.StatusUnauthorized,
		},
		{
			name:       "empty bearer token",
			authHeader: "Bearer ",
			wantStatus: fiber.StatusUnauthorized,
		},
		{
			name:        "invalid token",
			authHeader:  "Bearer bad-token",
			parseErr:    model.ErrInvalidToken,
			expectParse: true,
			wantStatus:  fiber.StatusUnauthorized,
		},
		{
			name:        "token subject no longer exists",
			authHeader:  "Bearer good-token",
			parseID:     userID,
			storeErr:    model.ErrNotFound,
			expectParse: true,
			expectStore: true,
			wantStatus:  fiber.StatusUnauthorized,
		},
		{
			name:        "valid token",
			authHeader:  "Bearer good-token",
			parseID:     userID,
			storeUser:   user,
			expectParse: true,
			expectStore: true,
			wantStatus:  fiber.StatusOK,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tokens := mocks.NewTokenManager(t)
			userStore := mocks.NewUserStore(t)
			ctxMgr := httpctx.NewManager()

			if tt.expectParse {
				tokens.On("Parse", mock.AnythingOfType("string")).Return(tt.parseID, tt.parseErr)
			}
			if tt.expectStore {
				userStore.On("GetByID", mock.Anything, tt.parseID).Return(tt.storeUser, tt.storeErr)
			}

			m := NewAuthenticate(tokens, userStore, ctxMgr, testutil.MakeNoopLogger())

			app := fiber.New()
			app.Get("/protected", m.Handle, func(c *fiber.Ctx) error {
				ctxUser, ok := ctxMgr.GetUserFromContext(c.UserContext())
				require.True(t, ok)
				assert.Equal(t, user, ctxUser)
				return c.SendStatus(fiber.StatusOK)
			})

			req := httptest.NewRequest(fiber.MethodGet, "/protected", nil)
			if tt.authHeader != "" {
				req.Header.Set(fiber.HeaderAuthorization, tt.authHeader)
			}

			resp, err := app.Test(req)
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, tt.wantStatus, resp.StatusCode)

			if tt.wantStatus == fiber.StatusUnauthorized {
				body, err := io.ReadAll(resp.Body)
				require.NoError(t, err)

				// The rejection body is identical for every failure mode.
				var payload map[string]string
				require.NoError(t, json.Unmarshal(body, &payload))
				assert.Equal(t, map[string]string{"error": "could not validate credentials"}, payload)
			}
		})
	}
}
