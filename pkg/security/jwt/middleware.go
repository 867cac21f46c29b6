package jwt

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/Withvansh/college-fest-sub003/pkg/auth"
)

// Ключи c.Locals, которые выставляет middleware.
const (
	LocalUserID  = "userId"
	LocalRole    = "role"
	LocalIsAdmin = "isAdmin"
)

// NewAuthMiddleware returns a Fiber middleware that validates Bearer JWT (HS256).
// On success sets subject, role and admin flag into c.Locals.
func NewAuthMiddleware(secret, expectedIssuer string) fiber.Handler {
	secretBytes := []byte(secret)
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"message": "missing Authorization header"})
		}
		// "Bearer <token>" или просто "<token>"
		tokenStr := strings.TrimSpace(authHeader)
		if parts := strings.SplitN(tokenStr, " ", 2); len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			tokenStr = strings.TrimSpace(parts[1])
		}
		if tokenStr == "" {
			return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"message": "empty token"})
		}
		token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (any, error) {
			return secretBytes, nil
		}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}))
		if err != nil || !token.Valid {
			return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"message": "invalid or expired token"})
		}
		claims, ok := token.Claims.(*Claims)
		if !ok {
			return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"message": "invalid token claims"})
		}
		if expectedIssuer != "" && claims.Issuer != expectedIssuer {
			return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"message": "invalid token issuer"})
		}
		c.Locals(LocalUserID, claims.Subject)
		c.Locals(LocalRole, claims.Role)
		c.Locals(LocalIsAdmin, claims.Role == auth.RoleAdmin)
		return c.Next()
	}
}

// RequireRole пропускает только перечисленные роли. Ставится после NewAuthMiddleware.
func RequireRole(roles ...auth.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, _ := c.Locals(LocalRole).(auth.Role)
		for _, r := range roles {
			if role == r {
				return c.Next()
			}
		}
		return c.Status(http.StatusForbidden).JSON(fiber.Map{"message": "insufficient role"})
	}
}

// Subject достаёт id пользователя из c.Locals.
func Subject(c *fiber.Ctx) (uuid.UUID, bool) {
	s, _ := c.Locals(LocalUserID).(string)
	id, err := uuid.Parse(s)
	return id, err == nil
}

// IsAdmin сообщает, что запрос пришёл от администратора.
func IsAdmin(c *fiber.Ctx) bool {
	v, _ := c.Locals(LocalIsAdmin).(bool)
	return v
}
