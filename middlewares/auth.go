package middlewares

import (
	"os"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"

	"pokernight/database"
	"pokernight/helpers"
	"pokernight/models"
)

// PlayerClaims binds a bearer token to a player identity. is_admin is
// carried in the token but re-checked against the database row on every
// request, so revoking admin takes effect immediately.
type PlayerClaims struct {
	PlayerID string `json:"player_id"`
	IsAdmin  bool   `json:"is_admin"`
	jwt.RegisteredClaims
}

func jwtSecret() []byte {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "pokernight-dev-secret"
	}
	return []byte(secret)
}

func IssueToken(player models.Player) (string, error) {
	claims := PlayerClaims{
		PlayerID: player.PlayerID,
		IsAdmin:  player.IsAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret())
}

func PlayerAuthMiddleware(c *fiber.Ctx) error {
	authz := c.Get("Authorization")
	if !strings.HasPrefix(authz, "Bearer ") {
		return helpers.JSONErrorStatus(c, fiber.StatusUnauthorized, "BEARER_TOKEN_REQUIRED", nil)
	}

	claims := &PlayerClaims{}
	token, err := jwt.ParseWithClaims(strings.TrimPrefix(authz, "Bearer "), claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return jwtSecret(), nil
	})
	if err != nil || !token.Valid {
		return helpers.JSONErrorStatus(c, fiber.StatusUnauthorized, "INVALID_TOKEN", nil)
	}

	var player models.Player
	if err := database.DB.Where("player_id = ?", claims.PlayerID).First(&player).Error; err != nil {
		return helpers.JSONErrorStatus(c, fiber.StatusUnauthorized, "UNKNOWN_PLAYER", nil)
	}

	c.Locals("player", player)
	return c.Next()
}

func AdminOnly(c *fiber.Ctx) error {
	player, ok := c.Locals("player").(models.Player)
	if !ok || !player.IsAdmin {
		return helpers.JSONErrorStatus(c, fiber.StatusForbidden, "ADMIN_REQUIRED", nil)
	}
	return c.Next()
}
