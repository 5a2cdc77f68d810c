package middleware

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/Smadden00/sophsAppAPI/pkg/identity"
	"github.com/Smadden00/sophsAppAPI/pkg/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const gateSecret = "gate-test-secret"

// guarded route that records whether it ran and what tag it was handed
func gatedApp(t *testing.T) (*fiber.App, jwt.JWTService, identity.Hasher, *bool, *string) {
	t.Helper()

	jwtService := jwt.NewJWTService(gateSecret)
	hasher, err := identity.NewHasher(gateSecret)
	require.NoError(t, err)

	invoked := false
	seenTag := ""
	app := fiber.New()
	app.Put("/guarded", NewMiddleware().AuthMiddleware(jwtService, hasher), func(c *fiber.Ctx) error {
		invoked = true
		seenTag = c.Locals("user_tag").(string)
		return c.SendStatus(fiber.StatusOK)
	})
	return app, jwtService, hasher, &invoked, &seenTag
}

func messageOf(t *testing.T, body io.Reader) string {
	t.Helper()
	var payload struct {
		Message string `json:"message"`
	}
	require.NoError(t, json.NewDecoder(body).Decode(&payload))
	return payload.Message
}

func TestAuthMiddlewareRejectsBeforeHandlerRuns(t *testing.T) {
	app, _, _, invoked, _ := gatedApp(t)

	badToken, err := jwt.NewJWTService("some-other-secret").GenerateToken("caller@example.com")
	require.NoError(t, err)

	cases := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"non-bearer scheme", "Basic dXNlcjpwYXNz"},
		{"empty bearer", "Bearer "},
		{"garbage token", "Bearer not.a.token"},
		{"wrong signature", "Bearer " + badToken},
	}

	for _, tc := range cases {
		req := httptest.NewRequest(fiber.MethodPut, "/guarded", nil)
		if tc.header != "" {
			req.Header.Set(fiber.HeaderAuthorization, tc.header)
		}

		res, err := app.Test(req)
		require.NoError(t, err, tc.name)
		assert.Equal(t, fiber.StatusUnauthorized, res.StatusCode, tc.name)
		assert.Equal(t, "Unauthorized", messageOf(t, res.Body), tc.name)
		assert.False(t, *invoked, tc.name)
	}
}

func TestAuthMiddlewarePropagatesOwnerTag(t *testing.T) {
	app, jwtService, hasher, invoked, seenTag := gatedApp(t)

	token, err := jwtService.GenerateToken("Caller@Example.com")
	require.NoError(t, err)

	req := httptest.NewRequest(fiber.MethodPut, "/guarded", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)

	res, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, res.StatusCode)
	assert.True(t, *invoked)

	wantTag, err := hasher.Hash("Caller@Example.com")
	require.NoError(t, err)
	assert.Equal(t, wantTag, *seenTag)
}
