package workshop_case

import (
	"context"

	workshop_dto "github.com/Xenn-00/werkstatt-meister/internal/dtos/workshop-dto"
	app_errors "github.com/Xenn-00/werkstatt-meister/internal/errors"
)

type WorkshopServiceContract interface {
	SwitchPhase(ctx context.Context, workshopID string, req *workshop_dto.SwitchPhaseRequest) (*workshop_dto.SwitchPhaseResponse, *app_errors.AppError)
	GetWorkshop(ctx context.Context, workshopID string) (*workshop_dto.WorkshopResponse, *app_errors.AppError)
	GetNotificationRules(ctx context.Context, workshopID, phaseName string) ([]workshop_dto.NotificationRuleResponse, *app_errors.AppError)
	UpdateNotificationRules(ctx context.Context, workshopID string, req *workshop_dto.UpdateNotificationRulesRequest) (*workshop_dto.UpdateNotificationRulesResponse, *app_errors.AppError)
}
