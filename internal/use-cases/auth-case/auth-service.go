package auth_case

import (
	"context"
	"fmt"
	"time"

	auth_dto "github.com/Xenn-00/werkstatt-meister/internal/dtos/auth-dto"
	app_errors "github.com/Xenn-00/werkstatt-meister/internal/errors"
	user_repo "github.com/Xenn-00/werkstatt-meister/internal/repo/user-repo"
	"github.com/Xenn-00/werkstatt-meister/internal/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const sessionTTL = 24 * time.Hour

type AuthService struct {
	db     *pgxpool.Pool
	redis  *redis.Client
	paseto *utils.PasetoMaker
	repo   user_repo.UserRepoContract
}

func NewAuthService(db *pgxpool.Pool, redis *redis.Client, paseto *utils.PasetoMaker) AuthServiceContract {
	return &AuthService{
		db:     db,
		redis:  redis,
		paseto: paseto,
		repo:   user_repo.NewUserRepo(db),
	}
}

// LoginUser authentifiziert per E-Mail und Passwort, erzeugt ein
// Paseto-Token und legt die Sitzung in Redis ab.
func (s *AuthService) LoginUser(ctx context.Context, req *auth_dto.LoginRequest) (*auth_dto.LoginResponse, *app_errors.AppError) {
	user, err := s.repo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, app_errors.NewAppError(fiber.StatusUnauthorized, app_errors.ErrUnauthorized, "auth.unauthorized", nil)
	}

	// Passwort überprüfen
	if !utils.CompareHash(user.PasswordHash, req.Password) {
		log.Debug().Str("user_id", user.ID).Msg("Fehler beim Passwort Verifiziert")
		return nil, app_errors.NewAppError(fiber.StatusUnauthorized, app_errors.ErrUnauthorized, "auth.unauthorized", nil)
	}

	if !user.IsActive {
		return nil, app_errors.NewAppError(fiber.StatusUnauthorized, app_errors.ErrUnauthorized, "auth.inactive", nil)
	}

	// SessionID erstellen
	sessionID, sessionErr := uuid.NewV7()
	if sessionErr != nil {
		log.Error().Err(sessionErr).Msg("An Error occured when trying to generate uuid v7")
		return nil, app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", sessionErr)
	}

	// Token erstellen
	token, pasetoErr := s.paseto.CreateToken(user.ID, user.Username, user.Email, sessionID.String(), user.IsActive, sessionTTL)
	if pasetoErr != nil {
		log.Error().Err(pasetoErr).Msg("Fehler beim Erstellen der Paseto-Token")
		return nil, app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", pasetoErr)
	}

	expiresAt := time.Now().Add(sessionTTL)

	sessionKey := fmt.Sprintf("session:%s", sessionID)
	session := &SessionTracker{
		JTI:     sessionID.String(),
		UserID:  user.ID,
		Token:   token,
		LoginAt: time.Now().Format(time.RFC3339),
	}
	if cacheErr := utils.SetCacheData(ctx, s.redis, sessionKey, session, sessionTTL); cacheErr != nil {
		log.Error().Err(cacheErr).Msg("Fehler beim Schreiben der Session in Redis")
		return nil, app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", cacheErr)
	}

	return &auth_dto.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
	}, nil
}

// LogoutUser entfernt die Sitzung aus Redis.
func (s *AuthService) LogoutUser(ctx context.Context, sessionID string) *app_errors.AppError {
	sessionKey := fmt.Sprintf("session:%s", sessionID)

	session, err := utils.GetCacheData[SessionTracker](ctx, s.redis, sessionKey)
	if err != nil || session == nil {
		// Session bereits beendet / ungültig
		return app_errors.NewAppError(fiber.StatusUnauthorized, app_errors.ErrUnauthorized, "auth.unauthorized", nil)
	}

	if err := utils.DeleteCacheData(ctx, s.redis, sessionKey); err != nil {
		log.Error().Err(err).Msg("Fehler beim Löschen der Cache")
		return app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", err)
	}

	return nil
}
