package export_handlers

import (
	export_dto "github.com/Xenn-00/werkstatt-meister/internal/dtos/export-dto"
	app_errors "github.com/Xenn-00/werkstatt-meister/internal/errors"
	"github.com/Xenn-00/werkstatt-meister/internal/handlers"
	internal_i18n "github.com/Xenn-00/werkstatt-meister/internal/i18n"
	export_case "github.com/Xenn-00/werkstatt-meister/internal/use-cases/export-case"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ExportHandler struct {
	validator *validator.Validate
	service   export_case.ExportServiceContract
	i18n      internal_i18n.Service
}

func NewExportHandler(db *pgxpool.Pool, i18n *internal_i18n.I18nService) *ExportHandler {
	validate := validator.New()
	return &ExportHandler{
		validator: validate,
		service:   export_case.NewExportService(db),
		i18n:      i18n,
	}
}

// ApproveRequest genehmigt einen Exportantrag, optional mit Kursfilter.
func (h *ExportHandler) ApproveRequest(c *fiber.Ctx) error {
	requestID, err := handlers.GetParamExportRequestID(c, h.validator)
	if err != nil {
		return err
	}

	var req export_dto.ApproveExportRequest
	if err := c.BodyParser(&req); err != nil {
		return app_errors.NewAppError(fiber.StatusBadRequest, app_errors.ErrInvalidBody, "request.invalid_body", err)
	}

	if err := h.validator.Struct(req); err != nil {
		return app_errors.NewValidationError(app_errors.ParseValidationError(err))
	}

	userID, err := handlers.GetUserID(c)
	if err != nil {
		return err
	}

	resp, err := h.service.ApproveRequest(c.Context(), requestID, userID, &req)
	if err != nil {
		return err
	}

	reqID := handlers.GetRequestID(c)
	lang, _ := c.Locals("lang").(string)
	webResp := handlers.CreateResponse(h.i18n.T(lang, "response.success_approve_export", nil), resp, reqID)
	if err := c.Status(fiber.StatusOK).JSON(webResp); err != nil {
		return app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "response.write_failed", err)
	}
	return nil
}

func (h *ExportHandler) DenyRequest(c *fiber.Ctx) error {
	requestID, err := handlers.GetParamExportRequestID(c, h.validator)
	if err != nil {
		return err
	}

	userID, err := handlers.GetUserID(c)
	if err != nil {
		return err
	}

	resp, err := h.service.DenyRequest(c.Context(), requestID, userID)
	if err != nil {
		return err
	}

	reqID := handlers.GetRequestID(c)
	lang, _ := c.Locals("lang").(string)
	webResp := handlers.CreateResponse(h.i18n.T(lang, "response.success_deny_export", nil), resp, reqID)
	if err := c.Status(fiber.StatusOK).JSON(webResp); err != nil {
		return app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "response.write_failed", err)
	}
	return nil
}
