package middleware

import (
	"strings"

	"github.com/Smadden00/sophsAppAPI/domain"
	"github.com/Smadden00/sophsAppAPI/internal/api/presenters"
	"github.com/Smadden00/sophsAppAPI/pkg/identity"
	"github.com/Smadden00/sophsAppAPI/pkg/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

type (
	Middleware interface {
		CORSMiddleware() fiber.Handler
		AuthMiddleware(jwtService jwt.JWTService, hasher identity.Hasher) fiber.Handler
	}

	middleware struct{}
)

func NewMiddleware() Middleware {
	return &middleware{}
}

func (m *middleware) CORSMiddleware() fiber.Handler {
	return cors.New(cors.Config{
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	})
}

// AuthMiddleware resolves the caller before anything else runs: bearer
// token -> subject claim -> owner tag. An unauthenticated caller is turned
// away with 401 and never reaches payload validation.
func (m *middleware) AuthMiddleware(jwtService jwt.JWTService, hasher identity.Hasher) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			return presenters.MessageResponse(c, fiber.StatusUnauthorized, domain.MessageUnauthorized)
		}

		subject, err := jwtService.GetSubjectByToken(strings.TrimPrefix(authHeader, "Bearer "))
		if err != nil {
			return presenters.MessageResponse(c, fiber.StatusUnauthorized, domain.MessageUnauthorized)
		}

		// A missing signing secret is a server misconfiguration, not an
		// auth failure.
		userTag, err := hasher.Hash(subject)
		if err != nil {
			return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageInternalServerError, err)
		}

		c.Locals("user_tag", userTag)
		return c.Next()
	}
}
