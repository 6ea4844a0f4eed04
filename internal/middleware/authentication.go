package middleware

import (
	"fmt"
	"strings"

	"github.com/Xenn-00/werkstatt-meister/internal/dtos"
	auth_case "github.com/Xenn-00/werkstatt-meister/internal/use-cases/auth-case"
	"github.com/Xenn-00/werkstatt-meister/internal/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// AuthMiddleware validiert das Authorization-Header ("Bearer <token>") und verifiziert das PASETO-Token.
// Bei erfolgreicher Verifizierung setzt es die Context-Lokale: "user_id", "username", "email", "jti".
func AuthMiddleware(pasetoMaker *utils.PasetoMaker, redis *redis.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"status": "error",
				"error": dtos.ErrorResponse{
					Code:    fiber.StatusUnauthorized,
					Message: "Authorization header fehlt",
				},
			})
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"status": "error",
				"error": dtos.ErrorResponse{
					Code:    fiber.StatusUnauthorized,
					Message: "Token-Format ist falsch. Nutze Bearer <token>.",
				},
			})
		}

		token := parts[1]

		// Verifizieren via PASETO
		payload, err := pasetoMaker.VerifyToken(token)
		if err != nil {
			log.Err(err).Msg("Verification error")
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"status": "error",
				"error": dtos.ErrorResponse{
					Code:    fiber.StatusUnauthorized,
					Message: "Token ist ungültig oder abgelaufen",
				},
			})
		}

		// Überprüft ein Token, ob es noch in Redis oder nicht ist.
		redisKey := fmt.Sprintf("session:%s", payload.JTI)
		session, _ := utils.GetCacheData[auth_case.SessionTracker](c.Context(), redis, redisKey)
		if session == nil || session.Token != token {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"status": "error",
				"error": dtos.ErrorResponse{
					Code:    fiber.StatusUnauthorized,
					Message: "Session ist abgelaufen",
				},
			})
		}

		// Speichern zu kontext, sodass Handler es nutzen kann
		c.Locals("user_id", payload.UserID)
		c.Locals("username", payload.Username)
		c.Locals("email", payload.Email)
		c.Locals("is_active", payload.IsActive)
		c.Locals("jti", payload.JTI)

		return c.Next()
	}
}
