package workshop_case

import (
	"context"
	"testing"

	workshop_dto "github.com/Xenn-00/werkstatt-meister/internal/dtos/workshop-dto"
	"github.com/Xenn-00/werkstatt-meister/internal/entity"
	app_errors "github.com/Xenn-00/werkstatt-meister/internal/errors"
	use_cases "github.com/Xenn-00/werkstatt-meister/internal/use-cases"
	worker_task "github.com/Xenn-00/werkstatt-meister/internal/worker/tasks"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// Test happy path - phase is updated and the notification task enqueued
func TestSwitchPhase_Success(t *testing.T) {
	ctx := context.Background()

	repo := new(MockWorkshopRepo)
	txManager := new(use_cases.MockTxManager)
	tx := new(use_cases.MockTx)
	taskQueue := new(use_cases.MockTaskQueue)
	service := &WorkshopService{
		repo:      repo,
		txManager: txManager,
		taskQueue: taskQueue,
	}

	workshopID := "workshop-1"
	workshop := &entity.WorkshopEntity{
		ID:       workshopID,
		CourseID: "course-1",
		Name:     "Peer Review 1",
		Phase:    entity.PhaseSubmission,
	}
	module := &entity.CourseModuleEntity{
		ID:         "cm-1",
		CourseID:   "course-1",
		WorkshopID: workshopID,
	}

	req := &workshop_dto.SwitchPhaseRequest{NewPhase: "assessment"}

	repo.On("FindWorkshopByID", ctx, workshopID).Return(workshop, (*app_errors.AppError)(nil))
	repo.On("FindCourseModuleByWorkshopID", ctx, workshopID).Return(module, (*app_errors.AppError)(nil))

	txManager.On("Begin", ctx).Return(tx, (*app_errors.AppError)(nil))
	repo.On("UpdatePhaseTx", ctx, tx, workshopID, entity.PhaseAssessment).Return((*app_errors.AppError)(nil))
	tx.On("Commit", ctx).Return((*app_errors.AppError)(nil))

	taskQueue.On("EnqueueSendPhaseChangeNotifications", mock.MatchedBy(func(p *worker_task.SendPhaseChangeNotificationsPayload) bool {
		return p.WorkshopID == workshopID &&
			p.CourseID == "course-1" &&
			p.CMID == "cm-1" &&
			p.OldPhase == entity.PhaseSubmission &&
			p.NewPhase == entity.PhaseAssessment
	})).Return(nil)

	resp, err := service.SwitchPhase(ctx, workshopID, req)

	assert.Nil(t, err)
	assert.NotNil(t, resp)
	assert.Equal(t, "submission", resp.OldPhase)
	assert.Equal(t, "assessment", resp.NewPhase)

	repo.AssertExpectations(t)
	tx.AssertExpectations(t)
	txManager.AssertExpectations(t)
	taskQueue.AssertExpectations(t)
}

// Test: workshop does not exist
func TestSwitchPhase_WorkshopNotFound(t *testing.T) {
	ctx := context.Background()

	repo := new(MockWorkshopRepo)
	service := &WorkshopService{
		repo: repo,
	}

	workshopID := "workshop-999"
	req := &workshop_dto.SwitchPhaseRequest{NewPhase: "assessment"}

	notFound := app_errors.NewAppError(fiber.StatusNotFound, app_errors.ErrNotFound, "workshop_not_found", nil)
	repo.On("FindWorkshopByID", ctx, workshopID).Return(nil, notFound)

	resp, err := service.SwitchPhase(ctx, workshopID, req)

	assert.Nil(t, resp)
	assert.NotNil(t, err)
	assert.Equal(t, notFound, err)

	repo.AssertExpectations(t)
}

// Test: switching into the phase the workshop is already in
func TestSwitchPhase_SamePhase(t *testing.T) {
	ctx := context.Background()

	repo := new(MockWorkshopRepo)
	service := &WorkshopService{
		repo: repo,
	}

	workshopID := "workshop-1"
	workshop := &entity.WorkshopEntity{
		ID:       workshopID,
		CourseID: "course-1",
		Phase:    entity.PhaseAssessment,
	}

	req := &workshop_dto.SwitchPhaseRequest{NewPhase: "assessment"}

	repo.On("FindWorkshopByID", ctx, workshopID).Return(workshop, (*app_errors.AppError)(nil))

	resp, err := service.SwitchPhase(ctx, workshopID, req)

	assert.Nil(t, resp)
	assert.NotNil(t, err)
	assert.Equal(t, fiber.StatusConflict, err.Code)
	assert.Equal(t, app_errors.ErrConflict, err.Type)
	assert.Equal(t, "invalid_phase_transition", err.MessageKey)

	repo.AssertExpectations(t)
}

// Test: the phase switch survives an enqueue failure
func TestSwitchPhase_EnqueueFailureIsNonFatal(t *testing.T) {
	ctx := context.Background()

	repo := new(MockWorkshopRepo)
	txManager := new(use_cases.MockTxManager)
	tx := new(use_cases.MockTx)
	taskQueue := new(use_cases.MockTaskQueue)
	service := &WorkshopService{
		repo:      repo,
		txManager: txManager,
		taskQueue: taskQueue,
	}

	workshopID := "workshop-1"
	workshop := &entity.WorkshopEntity{
		ID:       workshopID,
		CourseID: "course-1",
		Phase:    entity.PhaseSetup,
	}
	module := &entity.CourseModuleEntity{
		ID:         "cm-1",
		CourseID:   "course-1",
		WorkshopID: workshopID,
	}

	req := &workshop_dto.SwitchPhaseRequest{NewPhase: "submission"}

	repo.On("FindWorkshopByID", ctx, workshopID).Return(workshop, (*app_errors.AppError)(nil))
	repo.On("FindCourseModuleByWorkshopID", ctx, workshopID).Return(module, (*app_errors.AppError)(nil))

	txManager.On("Begin", ctx).Return(tx, (*app_errors.AppError)(nil))
	repo.On("UpdatePhaseTx", ctx, tx, workshopID, entity.PhaseSubmission).Return((*app_errors.AppError)(nil))
	tx.On("Commit", ctx).Return((*app_errors.AppError)(nil))

	taskQueue.On("EnqueueSendPhaseChangeNotifications", mock.Anything).Return(assert.AnError)

	resp, err := service.SwitchPhase(ctx, workshopID, req)

	assert.Nil(t, err)
	assert.NotNil(t, resp)
	assert.Equal(t, "submission", resp.NewPhase)

	repo.AssertExpectations(t)
	tx.AssertExpectations(t)
	txManager.AssertExpectations(t)
	taskQueue.AssertExpectations(t)
}

// Test: commit failure bubbles up
func TestSwitchPhase_TransactionCommitFails(t *testing.T) {
	ctx := context.Background()

	repo := new(MockWorkshopRepo)
	txManager := new(use_cases.MockTxManager)
	tx := new(use_cases.MockTx)
	service := &WorkshopService{
		repo:      repo,
		txManager: txManager,
	}

	workshopID := "workshop-1"
	workshop := &entity.WorkshopEntity{
		ID:       workshopID,
		CourseID: "course-1",
		Phase:    entity.PhaseSubmission,
	}
	module := &entity.CourseModuleEntity{
		ID:         "cm-1",
		CourseID:   "course-1",
		WorkshopID: workshopID,
	}

	req := &workshop_dto.SwitchPhaseRequest{NewPhase: "assessment"}

	repo.On("FindWorkshopByID", ctx, workshopID).Return(workshop, (*app_errors.AppError)(nil))
	repo.On("FindCourseModuleByWorkshopID", ctx, workshopID).Return(module, (*app_errors.AppError)(nil))

	txManager.On("Begin", ctx).Return(tx, (*app_errors.AppError)(nil))
	repo.On("UpdatePhaseTx", ctx, tx, workshopID, entity.PhaseAssessment).Return((*app_errors.AppError)(nil))

	commitError := app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "commit_failed", nil)
	tx.On("Commit", ctx).Return(commitError)
	tx.On("Rollback", ctx).Return((*app_errors.AppError)(nil))

	resp, err := service.SwitchPhase(ctx, workshopID, req)

	assert.Nil(t, resp)
	assert.NotNil(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, err.Code)
	assert.Equal(t, app_errors.ErrInternal, err.Type)

	repo.AssertExpectations(t)
	tx.AssertExpectations(t)
	txManager.AssertExpectations(t)
}
