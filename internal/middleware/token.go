package middleware

import (
	"BlogGolang/internal/entity"
	jwtPkg "BlogGolang/pkg/jwt"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
)

// NewTokenMiddleware gates every protected blog route. The raw
// Authorization header value is the token; any verification failure is
// answered with the same fixed rejection body and the wrapped handler
// never runs.
func (m *middleware) NewTokenMiddleware(ctx *fiber.Ctx) error {
	authHeader := ctx.Get("Authorization")

	userToken, err := jwtPkg.VerifyToken(authHeader, jwtPkg.SecretEnvKey)
	if err != nil {
		m.log.WithFields(logrus.Fields{
			"path":   ctx.Path(),
			"method": ctx.Method(),
			"error":  err.Error(),
		}).Warn("Token verification failed")
		return m.rejectUnauthenticated(ctx)
	}

	claims, ok := userToken.Claims.(jwt.MapClaims)
	if !ok {
		m.log.WithFields(logrus.Fields{
			"error": "Invalid token claims",
		}).Warn("Token claims check")
		return m.rejectUnauthenticated(ctx)
	}

	userID, ok := callerID(claims)
	if !ok {
		m.log.WithFields(logrus.Fields{
			"error": "Token claims are missing the id field",
		}).Warn("Token claims check")
		return m.rejectUnauthenticated(ctx)
	}

	ctx.Locals("user", entity.UserLoginData{ID: userID})

	return ctx.Next()
}

// callerID accepts the id claim as either a string or a JSON number,
// both of which the signup flow has produced over time.
func callerID(claims jwt.MapClaims) (string, bool) {
	switch v := claims["id"].(type) {
	case string:
		if v == "" {
			return "", false
		}
		return v, true
	case float64:
		return strconv.FormatInt(int64(v), 10), true
	default:
		return "", false
	}
}

func (m *middleware) rejectUnauthenticated(ctx *fiber.Ctx) error {
	return ctx.Status(fiber.StatusForbidden).JSON(fiber.Map{
		"message": "You are not logged in",
	})
}
