package routers

import (
	export_handlers "github.com/Xenn-00/werkstatt-meister/internal/handlers/export"
	"github.com/Xenn-00/werkstatt-meister/internal/i18n"
	"github.com/Xenn-00/werkstatt-meister/internal/middleware"
	"github.com/Xenn-00/werkstatt-meister/internal/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

func ExportRouter(api fiber.Router, db *pgxpool.Pool, redis *redis.Client, i18n *i18n.I18nService, paseto *utils.PasetoMaker) {
	r := api.Group("/export", middleware.AuthMiddleware(paseto, redis))
	exportHandler := export_handlers.NewExportHandler(db, i18n)
	r.Post("/:request_id/approve", exportHandler.ApproveRequest)
	r.Post("/:request_id/deny", exportHandler.DenyRequest)
}
