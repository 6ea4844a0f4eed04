package workshop_repo

import (
	"context"

	"github.com/Xenn-00/werkstatt-meister/internal/abstraction/tx"
	"github.com/Xenn-00/werkstatt-meister/internal/entity"
	app_errors "github.com/Xenn-00/werkstatt-meister/internal/errors"
)

type WorkshopRepoContract interface {
	FindWorkshopByID(ctx context.Context, workshopID string) (*entity.WorkshopEntity, *app_errors.AppError)
	FindCourseModuleByID(ctx context.Context, cmID string) (*entity.CourseModuleEntity, *app_errors.AppError)
	FindCourseModuleByWorkshopID(ctx context.Context, workshopID string) (*entity.CourseModuleEntity, *app_errors.AppError)
	ListNotificationRules(ctx context.Context, workshopID string, phase entity.Phase) ([]entity.NotificationRuleEntity, *app_errors.AppError)
	UpdatePhaseTx(ctx context.Context, t tx.Tx, workshopID string, newPhase entity.Phase) *app_errors.AppError
	UpsertNotificationRulesTx(ctx context.Context, t tx.Tx, workshopID string, rules []entity.NotificationRuleEntity) *app_errors.AppError
	ListAutoSwitchCandidates(ctx context.Context) ([]entity.WorkshopEntity, *app_errors.AppError)
}
