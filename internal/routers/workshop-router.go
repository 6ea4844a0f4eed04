package routers

import (
	"fmt"
	"strings"
	"time"

	workshop_handlers "github.com/Xenn-00/werkstatt-meister/internal/handlers/workshop"
	"github.com/Xenn-00/werkstatt-meister/internal/i18n"
	"github.com/Xenn-00/werkstatt-meister/internal/middleware"
	"github.com/Xenn-00/werkstatt-meister/internal/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	redis_fiber "github.com/gofiber/storage/redis"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

func WorkshopRouter(api fiber.Router, db *pgxpool.Pool, redis *redis.Client, i18n *i18n.I18nService, paseto *utils.PasetoMaker, cfgStorage CfgRedisStorage) {
	r := api.Group("/workshop", middleware.AuthMiddleware(paseto, redis))
	workshopHandler := workshop_handlers.NewWorkshopHandler(db, redis, i18n)

	// prepare redis storage for rate limiter fiber
	redisAddr := strings.Split(redis.Options().Addr, ":") // seperate host and port
	redisStore := redis_fiber.New(redis_fiber.Config{
		Host:     redisAddr[0],
		Password: redis.Options().Password,
		Port:     6379,
		Database: 1,
	})

	r.Get("/:workshop_id", workshopHandler.GetWorkshop)
	r.Get("/:workshop_id/notifications", workshopHandler.GetNotificationRules)
	r.Put("/:workshop_id/notifications", workshopHandler.UpdateNotificationRules)
	r.Post("/:workshop_id/switch-phase", limiter.New(limiter.Config{
		Max:        10,
		Expiration: time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			userID := c.Locals("user_id")
			workshopID := c.Params("workshop_id")
			if userID == nil {
				return "switch-phase:ip:" + c.IP() // fallback to ip
			}
			return fmt.Sprintf("switch-phase:%v:%s", userID, workshopID)
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"status": "error",
				"error":  "too_many_request",
			})
		},
		Storage: redisStore,
	}), workshopHandler.SwitchPhase)
}
