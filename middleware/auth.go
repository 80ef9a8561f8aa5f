// middleware/auth.go
package middleware

import (
	"os"
	"strings"
	"time"

	"teampulse/models"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// AuthMiddleware validates the bearer token and loads the caller's identity
// and role capability into the request locals.
func AuthMiddleware(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return c.Status(401).JSON(fiber.Map{"success": false, "error": "Missing authorization header"})
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return c.Status(401).JSON(fiber.Map{"success": false, "error": "Invalid authorization header format"})
	}

	tokenString := parts[1]
	jwtSecret := os.Getenv("JWT_SECRET")

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fiber.NewError(401, "Invalid signing method")
		}
		return []byte(jwtSecret), nil
	})

	if err != nil || !token.Valid {
		return c.Status(401).JSON(fiber.Map{"success": false, "error": "Invalid or expired token"})
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return c.Status(401).JSON(fiber.Map{"success": false, "error": "Invalid token claims"})
	}

	exp, ok := claims["exp"].(float64)
	if !ok || time.Unix(int64(exp), 0).Before(time.Now()) {
		return c.Status(401).JSON(fiber.Map{"success": false, "error": "Token expired"})
	}

	c.Locals("userId", claims["user_id"])
	c.Locals("name", claims["name"])
	c.Locals("role", claims["role"])
	c.Locals("teamId", claims["team_id"])

	return c.Next()
}

// RequireManager gates team-level aggregation behind the MANAGER/ADMIN
// capability. The aggregation services assume this check already happened.
func RequireManager(c *fiber.Ctx) error {
	role := GetRole(c)
	if role != models.RoleManager && role != models.RoleAdmin {
		return c.Status(403).JSON(fiber.Map{
			"success": false,
			"error":   "Access denied. Manager privileges required.",
		})
	}

	return c.Next()
}

// GetUserID extracts the authenticated user's ID from the request locals.
func GetUserID(c *fiber.Ctx) (uint, error) {
	userID := c.Locals("userId")
	if userID == nil {
		return 0, fiber.NewError(401, "User not authenticated")
	}

	// JWT claims decode numbers as float64
	if id, ok := userID.(float64); ok {
		return uint(id), nil
	}

	if id, ok := userID.(uint); ok {
		return id, nil
	}

	return 0, fiber.NewError(401, "Invalid user ID format")
}

// GetRole extracts the caller's role capability from the request locals.
func GetRole(c *fiber.Ctx) models.Role {
	role := c.Locals("role")
	if role == nil {
		return ""
	}

	if r, ok := role.(string); ok {
		return models.Role(r)
	}

	if r, ok := role.(models.Role); ok {
		return r
	}

	return ""
}

// GetTeamID extracts the caller's team from the request locals. Returns
// false when the caller has no team assignment.
func GetTeamID(c *fiber.Ctx) (uint, bool) {
	teamID := c.Locals("teamId")
	if teamID == nil {
		return 0, false
	}

	switch v := teamID.(type) {
	case float64:
		return uint(v), true
	case uint:
		return v, true
	default:
		return 0, false
	}
}
