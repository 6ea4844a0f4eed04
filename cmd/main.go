package main

// Package main ist der Einstiegspunkt des API-Servers von "werkstatt-meister".
// Es verantwortet das Laden der Konfiguration, die Initialisierung der
// Datenbankverbindung und des Paseto-Tokenmakers, das Aufsetzen der Fiber-API
// mit Middleware und Routern sowie das Starten des HTTP-Servers.

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Xenn-00/werkstatt-meister/internal/config"
	"github.com/Xenn-00/werkstatt-meister/internal/db"
	"github.com/Xenn-00/werkstatt-meister/internal/i18n"
	"github.com/Xenn-00/werkstatt-meister/internal/middleware"
	"github.com/Xenn-00/werkstatt-meister/internal/routers"
	"github.com/Xenn-00/werkstatt-meister/internal/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	i18nSvc := i18n.NewInitI18nService()
	cfg := config.LoadConfig()

	dbPool := db.ConnectPool(cfg.DATABASE.Postgres.DSN)
	redisPool, err := db.RedisPool(cfg.DATABASE.Redis.Addr, cfg.DATABASE.Redis.Password, 0)
	if err != nil {
		log.Fatal().Err(err).Msg("Fehler beim Initialisieren des Redis-Pools")
	}

	paseto, err := utils.NewPasetoMaker(cfg.APP_SECRET.Paseto.HexKey)
	if err != nil {
		log.Fatal().Err(err).Msg("Fehler beim Initialisieren des Paseto-Makers")
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: middleware.ErrorHandlerMiddleware(i18nSvc),
	})
	app.Use(middleware.RequestIDMiddleware())
	app.Use(middleware.AcceptLanguageMiddleware())
	app.Use(middleware.LoggerMiddleware())

	cfgStorage := routers.CfgRedisStorage{
		Host:     cfg.DATABASE.Redis.Addr,
		Password: cfg.DATABASE.Redis.Password,
	}
	routers.SetupRoutes(app, dbPool, redisPool, i18nSvc, paseto, cfgStorage)

	go func() {
		log.Info().Msgf("Starte %s auf Port %s", cfg.APP.Name, cfg.APP.Port)
		if err := app.Listen(fmt.Sprintf(":%s", cfg.APP.Port)); err != nil {
			if err == http.ErrServerClosed {
				log.Info().Msg("Server ordnungsgemäß herunterfahren.")
			} else {
				log.Fatal().Err(err).Msgf("Der Server konnte nicht gestartet werden, %v", err)
			}
		}
	}()

	// Graceful Shutdown bei SIGINT/SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	<-ctx.Done()
	stop()
	log.Warn().Msg("Shutdown-Signal empfangen... Vorbereitung zum Herunterfahren.")

	if redisPool != nil {
		redisPool.Close()
		log.Info().Msg("Redis-Pool erfolgreich geschlossen.")
	}

	if dbPool != nil {
		dbPool.Close()
		log.Info().Msg("DB-Pool erfolgreich geschlossen.")
	}

	if err := app.Shutdown(); err != nil {
		log.Error().Err(err).Msgf("Beim Herunterfahren ist ein Fehler aufgtreten: %v", err)
	}
	log.Info().Msg("Server ordnungsgemäß herunterfahren.")
}
