package serverutils

import (
	"personal-crm-be/internal/repository/memory"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// NewJwtMiddleware validates bearer tokens and requires the token's session
// to still be live in the session cache, so logout revokes tokens before
// their expiry.
func NewJwtMiddleware(secret string, sessions *memory.SessionRepository) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		authHeader := ctx.Get("Authorization")
		if len(authHeader) < 7 || authHeader[:7] != "Bearer " {
			return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse("Missing token"))
		}
		tokenStr := authHeader[7:]

		token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
			return []byte(secret), nil
		}, jwt.WithValidMethods([]string{"HS256"}))
		if err != nil || !token.Valid {
			return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse("Invalid token"))
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse("Invalid claims"))
		}

		jti, _ := claims["jti"].(string)
		if _, live := sessions.Get(jti); !live {
			return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse("Session expired"))
		}

		ctx.Locals("user_id", claims["user_id"])
		ctx.Locals("session_id", jti)
		return ctx.Next()
	}
}
