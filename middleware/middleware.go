package middleware

import (
	"fmt"
	"schoolmgmt/domain"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

// Auth issues and checks bearer tokens. The signing key comes from the
// composition root, not from ambient environment reads.
type Auth struct {
	key []byte
}

func NewAuth(secret string) *Auth {
	return &Auth{key: []byte(secret)}
}

func (a *Auth) GenerateJWT(userID int, email, role string) (string, error) {
	claims := &domain.Claims{
		UserID: userID,
		Email:  email,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(a.key)
}

func (a *Auth) VerifyJWT(tokenString string) (*domain.Claims, error) {
	claims := &domain.Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return a.key, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	return claims, nil
}

// AuthRequired rejects requests without a valid bearer token and stores the
// claims in locals for the handlers downstream.
func (a *Auth) AuthRequired(c *fiber.Ctx) error {
	token := strings.TrimPrefix(c.Get("Authorization"), "Bearer ")
	if token == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"error":   fiber.Map{"category": domain.ErrUnauthorized, "detail": "no token provided"},
		})
	}

	claims, err := a.VerifyJWT(token)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"error":   fiber.Map{"category": domain.ErrUnauthorized, "detail": "invalid token"},
		})
	}

	c.Locals("user_id", claims.UserID)
	c.Locals("email", claims.Email)
	c.Locals("role", claims.Role)

	return c.Next()
}

// RequireRole gates a route group to the given roles.
func RequireRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, _ := c.Locals("role").(string)
		for _, allowed := range roles {
			if strings.EqualFold(role, allowed) {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"success": false,
			"error":   fiber.Map{"category": domain.ErrUnauthorized, "detail": fmt.Sprintf("access denied: role %q required", strings.Join(roles, "|"))},
		})
	}
}

// UserID reads the authenticated user id stored by AuthRequired.
func UserID(c *fiber.Ctx) int {
	id, _ := c.Locals("user_id").(int)
	return id
}
