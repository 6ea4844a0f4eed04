package workshop_case

import (
	"context"

	"github.com/Xenn-00/werkstatt-meister/internal/abstraction/tx"
	"github.com/Xenn-00/werkstatt-meister/internal/entity"
	app_errors "github.com/Xenn-00/werkstatt-meister/internal/errors"
	"github.com/stretchr/testify/mock"
)

type MockWorkshopRepo struct {
	mock.Mock
}

func (m *MockWorkshopRepo) FindWorkshopByID(ctx context.Context, workshopID string) (*entity.WorkshopEntity, *app_errors.AppError) {
	args := m.Called(ctx, workshopID)
	if args.Get(0) == nil {
		return nil, args.Get(1).(*app_errors.AppError)
	}
	return args.Get(0).(*entity.WorkshopEntity), args.Get(1).(*app_errors.AppError)
}

func (m *MockWorkshopRepo) FindCourseModuleByID(ctx context.Context, cmID string) (*entity.CourseModuleEntity, *app_errors.AppError) {
	args := m.Called(ctx, cmID)
	if args.Get(0) == nil {
		return nil, args.Get(1).(*app_errors.AppError)
	}
	return args.Get(0).(*entity.CourseModuleEntity), args.Get(1).(*app_errors.AppError)
}

func (m *MockWorkshopRepo) FindCourseModuleByWorkshopID(ctx context.Context, workshopID string) (*entity.CourseModuleEntity, *app_errors.AppError) {
	args := m.Called(ctx, workshopID)
	if args.Get(0) == nil {
		return nil, args.Get(1).(*app_errors.AppError)
	}
	return args.Get(0).(*entity.CourseModuleEntity), args.Get(1).(*app_errors.AppError)
}

func (m *MockWorkshopRepo) ListNotificationRules(ctx context.Context, workshopID string, phase entity.Phase) ([]entity.NotificationRuleEntity, *app_errors.AppError) {
	args := m.Called(ctx, workshopID, phase)
	if args.Get(0) == nil {
		return nil, args.Get(1).(*app_errors.AppError)
	}
	return args.Get(0).([]entity.NotificationRuleEntity), args.Get(1).(*app_errors.AppError)
}

func (m *MockWorkshopRepo) UpdatePhaseTx(ctx context.Context, t tx.Tx, workshopID string, newPhase entity.Phase) *app_errors.AppError {
	args := m.Called(ctx, t, workshopID, newPhase)
	return args.Get(0).(*app_errors.AppError)
}

func (m *MockWorkshopRepo) UpsertNotificationRulesTx(ctx context.Context, t tx.Tx, workshopID string, rules []entity.NotificationRuleEntity) *app_errors.AppError {
	args := m.Called(ctx, t, workshopID, rules)
	return args.Get(0).(*app_errors.AppError)
}

func (m *MockWorkshopRepo) ListAutoSwitchCandidates(ctx context.Context) ([]entity.WorkshopEntity, *app_errors.AppError) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Get(1).(*app_errors.AppError)
	}
	return args.Get(0).([]entity.WorkshopEntity), args.Get(1).(*app_errors.AppError)
}
