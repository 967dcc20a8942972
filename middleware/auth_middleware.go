package middleware

import (
	"github.com/gofiber/fiber/v2"
	jwtware "github.com/gofiber/jwt/v3"
	"github.com/golang-jwt/jwt/v4"
)

// AuthUser is the verified identity attached to a request. Handlers use
// it instead of any identity fields supplied in the body.
type AuthUser struct {
	ID    string
	Email string
}

// Protected verifies the bearer token on every mutating route. It runs
// before any validation or store access in the handler.
func Protected(secret string) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey:   []byte(secret),
		ErrorHandler: jwtError,
	})
}

func jwtError(c *fiber.Ctx, err error) error {
	if err.Error() == "Missing or malformed JWT" {
		return c.Status(fiber.StatusUnauthorized).
			JSON(fiber.Map{"error": "Missing or malformed token"})
	}
	return c.Status(fiber.StatusUnauthorized).
		JSON(fiber.Map{"error": "Invalid or expired token"})
}

// CurrentUser extracts the verified subject from the token that
// Protected stored on the request context.
func CurrentUser(c *fiber.Ctx) AuthUser {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)

	user := AuthUser{}
	if id, ok := claims["user_id"].(string); ok {
		user.ID = id
	}
	if email, ok := claims["email"].(string); ok {
		user.Email = email
	}
	return user
}
