package middleware

import (
	"BlogGolang/internal/entity"
	jwtPkg "BlogGolang/pkg/jwt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProtectedApp(t *testing.T) *fiber.App {
	t.Helper()

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	m := New(logger)

	app := fiber.New()
	app.Get("/protected", m.NewTokenMiddleware, func(c *fiber.Ctx) error {
		user, ok := c.Locals("user").(entity.UserLoginData)
		if !ok {
			return c.SendStatus(fiber.StatusInternalServerError)
		}
		return c.JSON(fiber.Map{"id": user.ID})
	})

	return app
}

func doProtected(t *testing.T, app *fiber.App, token string) *http.Response {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if token != "" {
		req.Header.Set("Authorization", token)
	}

	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func body(t *testing.T, resp *http.Response) string {
	t.Helper()

	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(b)
}

func TestTokenMiddlewareRejections(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	app := newProtectedApp(t)

	expired, _, err := jwtPkg.Sign(map[string]interface{}{"id": "42"}, -time.Hour)
	require.NoError(t, err)

	otherSecret := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"id": "42"})
	foreign, err := otherSecret.SignedString([]byte("some-other-secret"))
	require.NoError(t, err)

	noID, _, err := jwtPkg.Sign(map[string]interface{}{"email": "a@b.c"}, time.Hour)
	require.NoError(t, err)

	cases := []struct {
		name  string
		token string
	}{
		{"missing header", ""},
		{"malformed token", "not-a-token"},
		{"expired token", expired},
		{"wrong secret", foreign},
		{"missing id claim", noID},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp := doProtected(t, app, tc.token)

			assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
			assert.JSONEq(t, `{"message":"You are not logged in"}`, body(t, resp))
		})
	}
}

func TestTokenMiddlewareAcceptsValidToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	app := newProtectedApp(t)

	token, _, err := jwtPkg.Sign(map[string]interface{}{"id": "42"}, time.Hour)
	require.NoError(t, err)

	resp := doProtected(t, app, token)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"id":"42"}`, body(t, resp))
}

func TestTokenMiddlewareAcceptsNumericIDClaim(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	app := newProtectedApp(t)

	token, _, err := jwtPkg.Sign(map[string]interface{}{"id": 42}, time.Hour)
	require.NoError(t, err)

	resp := doProtected(t, app, token)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"id":"42"}`, body(t, resp))
}
