package export_case

import (
	"context"
	"testing"

	export_dto "github.com/Xenn-00/werkstatt-meister/internal/dtos/export-dto"
	"github.com/Xenn-00/werkstatt-meister/internal/entity"
	app_errors "github.com/Xenn-00/werkstatt-meister/internal/errors"
	use_cases "github.com/Xenn-00/werkstatt-meister/internal/use-cases"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

// Test happy path - request is approved with a course filter
func TestApproveRequest_Success(t *testing.T) {
	ctx := context.Background()

	repo := new(MockExportRepo)
	txManager := new(use_cases.MockTxManager)
	tx := new(use_cases.MockTx)
	service := &ExportService{
		repo:      repo,
		txManager: txManager,
	}

	requestID := "request-1"
	deciderID := "admin-1"
	courseIDs := []string{"course-1", "course-2"}

	req := &export_dto.ApproveExportRequest{CourseIDs: courseIDs}

	repo.On("HasSystemCapability", ctx, deciderID, entity.CapabilityManageRequests).Return(true, (*app_errors.AppError)(nil))
	repo.On("FindRequestByID", ctx, requestID).Return(&entity.ExportRequestEntity{
		ID:          requestID,
		RequesterID: "user-1",
		Status:      entity.ExportPending,
	}, (*app_errors.AppError)(nil))

	txManager.On("Begin", ctx).Return(tx, (*app_errors.AppError)(nil))
	repo.On("DecideRequestTx", ctx, tx, requestID, entity.ExportApproved, deciderID, courseIDs).Return((*app_errors.AppError)(nil))
	tx.On("Commit", ctx).Return((*app_errors.AppError)(nil))

	resp, err := service.ApproveRequest(ctx, requestID, deciderID, req)

	assert.Nil(t, err)
	assert.NotNil(t, resp)
	assert.Equal(t, requestID, resp.RequestID)
	assert.Equal(t, string(entity.ExportApproved), resp.Status)
	assert.Equal(t, courseIDs, resp.CourseIDs)
	assert.Equal(t, deciderID, resp.DecidedBy)

	repo.AssertExpectations(t)
	tx.AssertExpectations(t)
	txManager.AssertExpectations(t)
}

// Test: decider lacks the manage capability
func TestApproveRequest_Forbidden(t *testing.T) {
	ctx := context.Background()

	repo := new(MockExportRepo)
	service := &ExportService{
		repo: repo,
	}

	repo.On("HasSystemCapability", ctx, "user-1", entity.CapabilityManageRequests).Return(false, (*app_errors.AppError)(nil))

	resp, err := service.ApproveRequest(ctx, "request-1", "user-1", &export_dto.ApproveExportRequest{})

	assert.Nil(t, resp)
	assert.NotNil(t, err)
	assert.Equal(t, fiber.StatusForbidden, err.Code)
	assert.Equal(t, app_errors.ErrForbidden, err.Type)

	repo.AssertExpectations(t)
	repo.AssertNotCalled(t, "FindRequestByID")
}

// Test: request was already decided
func TestDenyRequest_AlreadyDecided(t *testing.T) {
	ctx := context.Background()

	repo := new(MockExportRepo)
	service := &ExportService{
		repo: repo,
	}

	requestID := "request-1"
	deciderID := "admin-1"

	repo.On("HasSystemCapability", ctx, deciderID, entity.CapabilityManageRequests).Return(true, (*app_errors.AppError)(nil))
	repo.On("FindRequestByID", ctx, requestID).Return(&entity.ExportRequestEntity{
		ID:          requestID,
		RequesterID: "user-1",
		Status:      entity.ExportApproved,
	}, (*app_errors.AppError)(nil))

	resp, err := service.DenyRequest(ctx, requestID, deciderID)

	assert.Nil(t, resp)
	assert.NotNil(t, err)
	assert.Equal(t, fiber.StatusConflict, err.Code)
	assert.Equal(t, "export_request_decided", err.MessageKey)

	repo.AssertExpectations(t)
}

// Test: request does not exist
func TestDenyRequest_NotFound(t *testing.T) {
	ctx := context.Background()

	repo := new(MockExportRepo)
	service := &ExportService{
		repo: repo,
	}

	notFound := app_errors.NewAppError(fiber.StatusNotFound, app_errors.ErrNotFound, "export_request_not_found", nil)
	repo.On("HasSystemCapability", ctx, "admin-1", entity.CapabilityManageRequests).Return(true, (*app_errors.AppError)(nil))
	repo.On("FindRequestByID", ctx, "request-999").Return(nil, notFound)

	resp, err := service.DenyRequest(ctx, "request-999", "admin-1")

	assert.Nil(t, resp)
	assert.Equal(t, notFound, err)

	repo.AssertExpectations(t)
}
