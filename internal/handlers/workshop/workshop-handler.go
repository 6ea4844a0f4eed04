package workshop_handlers

import (
	workshop_dto "github.com/Xenn-00/werkstatt-meister/internal/dtos/workshop-dto"
	app_errors "github.com/Xenn-00/werkstatt-meister/internal/errors"
	"github.com/Xenn-00/werkstatt-meister/internal/handlers"
	internal_i18n "github.com/Xenn-00/werkstatt-meister/internal/i18n"
	workshop_case "github.com/Xenn-00/werkstatt-meister/internal/use-cases/workshop-case"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

type WorkshopHandler struct {
	validator *validator.Validate
	service   workshop_case.WorkshopServiceContract
	i18n      internal_i18n.Service
}

func NewWorkshopHandler(db *pgxpool.Pool, redis *redis.Client, i18n *internal_i18n.I18nService) *WorkshopHandler {
	validate := validator.New()
	validate.RegisterValidation("phase", workshop_dto.IsValidPhase)
	return &WorkshopHandler{
		validator: validate,
		service:   workshop_case.NewWorkshopService(db, redis),
		i18n:      i18n,
	}
}

// SwitchPhase behandelt den manuellen Phasenwechsel eines Workshops.
func (h *WorkshopHandler) SwitchPhase(c *fiber.Ctx) error {
	workshopID, err := handlers.GetParamWorkshopID(c, h.validator)
	if err != nil {
		return err
	}

	var req workshop_dto.SwitchPhaseRequest
	if err := c.BodyParser(&req); err != nil {
		return app_errors.NewAppError(fiber.StatusBadRequest, app_errors.ErrInvalidBody, "request.invalid_body", err)
	}

	if err := h.validator.Struct(req); err != nil {
		return app_errors.NewValidationError(app_errors.ParseValidationError(err))
	}

	resp, err := h.service.SwitchPhase(c.Context(), workshopID, &req)
	if err != nil {
		return err
	}

	reqID := handlers.GetRequestID(c)
	lang, _ := c.Locals("lang").(string)
	webResp := handlers.CreateResponse(h.i18n.T(lang, "response.success_switch_phase", nil), resp, reqID)
	if err := c.Status(fiber.StatusOK).JSON(webResp); err != nil {
		return app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "response.write_failed", err)
	}
	return nil
}

func (h *WorkshopHandler) GetWorkshop(c *fiber.Ctx) error {
	workshopID, err := handlers.GetParamWorkshopID(c, h.validator)
	if err != nil {
		return err
	}

	resp, err := h.service.GetWorkshop(c.Context(), workshopID)
	if err != nil {
		return err
	}

	reqID := handlers.GetRequestID(c)
	lang, _ := c.Locals("lang").(string)
	webResp := handlers.CreateResponse(h.i18n.T(lang, "response.success_fetch_workshop", nil), resp, reqID)
	if err := c.Status(fiber.StatusOK).JSON(webResp); err != nil {
		return app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "response.write_failed", err)
	}
	return nil
}

// GetNotificationRules liefert die Regeln eines Workshops für eine Phase,
// die als Query-Parameter "phase" angegeben wird.
func (h *WorkshopHandler) GetNotificationRules(c *fiber.Ctx) error {
	workshopID, err := handlers.GetParamWorkshopID(c, h.validator)
	if err != nil {
		return err
	}

	phaseName := c.Query("phase")
	if phaseName == "" {
		return app_errors.NewAppError(fiber.StatusBadRequest, app_errors.ErrInvalidQuery, "request.invalid_query", nil)
	}

	resp, err := h.service.GetNotificationRules(c.Context(), workshopID, phaseName)
	if err != nil {
		return err
	}

	reqID := handlers.GetRequestID(c)
	lang, _ := c.Locals("lang").(string)
	webResp := handlers.CreateResponse(h.i18n.T(lang, "response.success_fetch_rules", nil), resp, reqID)
	if err := c.Status(fiber.StatusOK).JSON(webResp); err != nil {
		return app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "response.write_failed", err)
	}
	return nil
}

func (h *WorkshopHandler) UpdateNotificationRules(c *fiber.Ctx) error {
	workshopID, err := handlers.GetParamWorkshopID(c, h.validator)
	if err != nil {
		return err
	}

	var req workshop_dto.UpdateNotificationRulesRequest
	if err := c.BodyParser(&req); err != nil {
		return app_errors.NewAppError(fiber.StatusBadRequest, app_errors.ErrInvalidBody, "request.invalid_body", err)
	}

	if err := h.validator.Struct(req); err != nil {
		return app_errors.NewValidationError(app_errors.ParseValidationError(err))
	}

	resp, err := h.service.UpdateNotificationRules(c.Context(), workshopID, &req)
	if err != nil {
		return err
	}

	reqID := handlers.GetRequestID(c)
	lang, _ := c.Locals("lang").(string)
	webResp := handlers.CreateResponse(h.i18n.T(lang, "response.success_update_rules", nil), resp, reqID)
	if err := c.Status(fiber.StatusOK).JSON(webResp); err != nil {
		return app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "response.write_failed", err)
	}
	return nil
}
