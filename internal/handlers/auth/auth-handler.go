package auth_handlers

import (
	auth_dto "github.com/Xenn-00/werkstatt-meister/internal/dtos/auth-dto"
	app_errors "github.com/Xenn-00/werkstatt-meister/internal/errors"
	"github.com/Xenn-00/werkstatt-meister/internal/handlers"
	internal_i18n "github.com/Xenn-00/werkstatt-meister/internal/i18n"
	auth_case "github.com/Xenn-00/werkstatt-meister/internal/use-cases/auth-case"
	"github.com/Xenn-00/werkstatt-meister/internal/utils"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

type AuthHandler struct {
	validator *validator.Validate
	service   auth_case.AuthServiceContract
	i18n      internal_i18n.Service
}

func NewAuthHandler(db *pgxpool.Pool, redis *redis.Client, i18n *internal_i18n.I18nService, paseto *utils.PasetoMaker) *AuthHandler {
	validate := validator.New()
	return &AuthHandler{
		validator: validate,
		i18n:      i18n,
		service:   auth_case.NewAuthService(db, redis, paseto),
	}
}

// LoginUser behandelt die Anmeldung eines Benutzers.
func (h *AuthHandler) LoginUser(c *fiber.Ctx) error {
	var req auth_dto.LoginRequest

	if err := c.BodyParser(&req); err != nil {
		return app_errors.NewAppError(fiber.StatusBadRequest, app_errors.ErrInvalidBody, "request.invalid_body", err)
	}

	if err := h.validator.Struct(req); err != nil {
		return app_errors.NewValidationError(app_errors.ParseValidationError(err))
	}

	resp, err := h.service.LoginUser(c.Context(), &req)
	if err != nil {
		return err
	}

	reqID := handlers.GetRequestID(c)
	lang, _ := c.Locals("lang").(string)
	webResp := handlers.CreateResponse(h.i18n.T(lang, "response.success_login", nil), resp, reqID)
	if err := c.Status(fiber.StatusOK).JSON(webResp); err != nil {
		return app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "response.write_failed", err)
	}
	return nil
}

// LogoutUser beendet die Sitzung eines authentifizierten Benutzers.
func (h *AuthHandler) LogoutUser(c *fiber.Ctx) error {
	jti, ok := c.Locals("jti").(string)
	if !ok || jti == "" {
		return app_errors.NewAppError(fiber.StatusUnauthorized, app_errors.ErrUnauthorized, "auth.unauthorized", nil)
	}

	if err := h.service.LogoutUser(c.Context(), jti); err != nil {
		return err
	}

	reqID := handlers.GetRequestID(c)
	lang, _ := c.Locals("lang").(string)
	webResp := handlers.CreateResponse(h.i18n.T(lang, "response.success_logout", nil), struct{}{}, reqID)
	if err := c.Status(fiber.StatusOK).JSON(webResp); err != nil {
		return app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "response.write_failed", err)
	}
	return nil
}
