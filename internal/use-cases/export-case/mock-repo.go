package export_case

import (
	"context"

	"github.com/Xenn-00/werkstatt-meister/internal/abstraction/tx"
	"github.com/Xenn-00/werkstatt-meister/internal/entity"
	app_errors "github.com/Xenn-00/werkstatt-meister/internal/errors"
	"github.com/stretchr/testify/mock"
)

type MockExportRepo struct {
	mock.Mock
}

func (m *MockExportRepo) FindRequestByID(ctx context.Context, requestID string) (*entity.ExportRequestEntity, *app_errors.AppError) {
	args := m.Called(ctx, requestID)
	if args.Get(0) == nil {
		return nil, args.Get(1).(*app_errors.AppError)
	}
	return args.Get(0).(*entity.ExportRequestEntity), args.Get(1).(*app_errors.AppError)
}

func (m *MockExportRepo) DecideRequestTx(ctx context.Context, t tx.Tx, requestID string, status entity.ExportRequestStatus, decidedBy string, courseIDs []string) *app_errors.AppError {
	args := m.Called(ctx, t, requestID, status, decidedBy, courseIDs)
	return args.Get(0).(*app_errors.AppError)
}

func (m *MockExportRepo) HasSystemCapability(ctx context.Context, userID, capability string) (bool, *app_errors.AppError) {
	args := m.Called(ctx, userID, capability)
	return args.Bool(0), args.Get(1).(*app_errors.AppError)
}
