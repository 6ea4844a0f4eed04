package export_repo

import (
	"context"

	"github.com/Xenn-00/werkstatt-meister/internal/abstraction/tx"
	"github.com/Xenn-00/werkstatt-meister/internal/entity"
	app_errors "github.com/Xenn-00/werkstatt-meister/internal/errors"
)

type ExportRepoContract interface {
	FindRequestByID(ctx context.Context, requestID string) (*entity.ExportRequestEntity, *app_errors.AppError)
	DecideRequestTx(ctx context.Context, t tx.Tx, requestID string, status entity.ExportRequestStatus, decidedBy string, courseIDs []string) *app_errors.AppError
	HasSystemCapability(ctx context.Context, userID, capability string) (bool, *app_errors.AppError)
}
