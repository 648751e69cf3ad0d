package internal

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"go.uber.org/zap"
)

// CustomerKey is the request-locals key the session middleware stores the
// authenticated model.Customer under.
const CustomerKey = "customer"

const (
	codeSessionExpired = "SESSION_EXPIRED"
	codeUserNotFound   = "USER_NOT_FOUND"
)

// SessionMiddleware validates the session token from the cookie or the
// Authorization header and loads the customer it belongs to.
func SessionMiddleware(repo IRepository, secret string, logger *zap.SugaredLogger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := c.Cookies("token")
		if tokenString == "" {
			tokenString = strings.TrimPrefix(c.Get(fiber.HeaderAuthorization), "Bearer ")
		}

		claims := jwt.MapClaims{}
		_, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
			return []byte(secret), nil
		})
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"success": false, "code": codeSessionExpired})
		}

		id, _ := claims["id"].(string)
		uid, err := strconv.Atoi(id)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"success": false, "code": codeSessionExpired})
		}

		cu, err := repo.GetCustomerByID(c.Context(), uid)
		if err != nil {
			if errors.Is(err, ErrCustomerNotFound) {
				return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"success": false, "code": codeUserNotFound})
			}
			logger.Errorf("session customer lookup: %s", err.Error())
			return c.SendStatus(fiber.StatusInternalServerError)
		}

		c.Locals(CustomerKey, cu)
		return c.Next()
	}
}
