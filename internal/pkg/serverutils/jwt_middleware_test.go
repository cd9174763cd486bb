package serverutils

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-signing-secret"

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func protectedApp(secret string) (*fiber.App, *uuid.UUID) {
	app := fiber.New()
	var seen uuid.UUID
	app.Get("/protected", NewJwtMiddleware(secret), func(ctx *fiber.Ctx) error {
		userId, err := UserID(ctx)
		if err != nil {
			return err
		}
		seen = userId
		return ctx.SendStatus(fiber.StatusOK)
	})
	return app, &seen
}

func TestJwtMiddleware(t *testing.T) {
	ownerId := uuid.New()

	tests := []struct {
		name       string
		authHeader string
		wantStatus int
	}{
		{
			name:       "missing header",
			authHeader: "",
			wantStatus: fiber.StatusUnauthorized,
		},
		{
			name:       "not a bearer token",
			authHeader: "Basic abc123",
			wantStatus: fiber.StatusUnauthorized,
		},
		{
			name:       "valid token",
			authHeader: "Bearer " + signToken(t, testSecret, jwt.MapClaims{"user_id": ownerId.String()}),
			wantStatus: fiber.StatusOK,
		},
		{
			name:       "wrong signing secret",
			authHeader: "Bearer " + signToken(t, "other-secret", jwt.MapClaims{"user_id": ownerId.String()}),
			wantStatus: fiber.StatusUnauthorized,
		},
		{
			name:       "missing user_id claim",
			authHeader: "Bearer " + signToken(t, testSecret, jwt.MapClaims{"sub": "someone"}),
			wantStatus: fiber.StatusUnauthorized,
		},
		{
			name:       "non-string user_id claim",
			authHeader: "Bearer " + signToken(t, testSecret, jwt.MapClaims{"user_id": 42}),
			wantStatus: fiber.StatusUnauthorized,
		},
		{
			name:       "malformed user_id claim",
			authHeader: "Bearer " + signToken(t, testSecret, jwt.MapClaims{"user_id": "not-a-uuid"}),
			wantStatus: fiber.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, seen := protectedApp(testSecret)

			req := httptest.NewRequest("GET", "/protected", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}

			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)

			if tt.wantStatus == fiber.StatusOK {
				assert.Equal(t, ownerId, *seen, "handler must see the token's owner id")
			} else {
				assert.Equal(t, uuid.Nil, *seen, "handler must not run for rejected tokens")
			}
		})
	}
}

func TestUserIDWithoutMiddleware(t *testing.T) {
	app := fiber.New()
	app.Get("/bare", func(ctx *fiber.Ctx) error {
		_, err := UserID(ctx)
		if err != nil {
			return err
		}
		return ctx.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/bare", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
