package middleware

import (
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"

	"github.com/arkan-dev/eduverse-api/internal/models"
	"github.com/arkan-dev/eduverse-api/internal/utils"
)

const learnerEmailKey = "learner_email"

// OptionalSession resolves the learner scope for a request. A valid bearer
// token binds the request to that learner's email; no token at all scopes the
// request to the reserved guest key. A malformed or expired token is rejected
// rather than silently downgraded to guest.
func OptionalSession(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authorization := strings.TrimSpace(c.Get("Authorization"))
		if authorization == "" {
			c.Locals(learnerEmailKey, "")
			return c.Next()
		}

		const bearer = "bearer "
		if !strings.HasPrefix(strings.ToLower(authorization), bearer) {
			return utils.SendError(c, fiber.StatusUnauthorized, "invalid authorization header")
		}

		tokenString := strings.TrimSpace(authorization[len(bearer):])
		token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method")
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			return utils.SendError(c, fiber.StatusUnauthorized, "invalid token")
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return utils.SendError(c, fiber.StatusUnauthorized, "invalid token claims")
		}

		email, _ := claims["sub"].(string)
		c.Locals(learnerEmailKey, strings.TrimSpace(strings.ToLower(email)))

		return c.Next()
	}
}

// LearnerEmail returns the email bound to the request session, or empty when
// the request is unauthenticated.
func LearnerEmail(c *fiber.Ctx) string {
	if value := c.Locals(learnerEmailKey); value != nil {
		if email, ok := value.(string); ok {
			return email
		}
	}
	return ""
}

// LearnerKey returns the persistence scope for the request: the session email
// or the reserved guest key.
func LearnerKey(c *fiber.Ctx) string {
	if email := LearnerEmail(c); email != "" {
		return email
	}
	return models.GuestKey
}

// IssueSessionToken mints a signed session token for the given learner.
func IssueSessionToken(secret string, learner models.Learner, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  learner.Key(),
		"name": learner.Name,
		"iat":  now.Unix(),
		"exp":  now.Add(ttl).Unix(),
	}
	if learner.Role != "" {
		claims["role"] = learner.Role
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}

	return signed, nil
}
