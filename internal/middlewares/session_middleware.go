package middlewares

import (
	"strings"

	"github.com/cloudnest/cloudnest/pkg/domain"

	"github.com/gofiber/fiber/v3"
	"github.com/rs/zerolog/log"
)

const sessionLocalsKey = "session"

// SessionMiddleware guards mutating routes with the demo session
// token. The token is a bearer JWT minted at login or signup.
func SessionMiddleware(sessionService domain.SessionService) fiber.Handler {
	return func(c fiber.Ctx) error {
		header := c.Get("Authorization")
		token, found := strings.CutPrefix(header, "Bearer ")
		if !found || token == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Session token required",
			})
		}

		session, err := sessionService.Validate(c.RequestCtx(), token)
		if err != nil {
			log.Debug().Err(err).Msg("Rejected invalid session token")
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid session token",
			})
		}

		c.Locals(sessionLocalsKey, session)
		return c.Next()
	}
}

// SessionFromLocals returns the session installed by the middleware.
func SessionFromLocals(c fiber.Ctx) (domain.Session, bool) {
	session, ok := c.Locals(sessionLocalsKey).(domain.Session)
	return session, ok
}
