package export_case

import (
	"context"
	"time"

	"github.com/Xenn-00/werkstatt-meister/internal/abstraction/tx"
	export_dto "github.com/Xenn-00/werkstatt-meister/internal/dtos/export-dto"
	"github.com/Xenn-00/werkstatt-meister/internal/entity"
	app_errors "github.com/Xenn-00/werkstatt-meister/internal/errors"
	export_repo "github.com/Xenn-00/werkstatt-meister/internal/repo/export-repo"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ExportService struct {
	db        *pgxpool.Pool
	repo      export_repo.ExportRepoContract
	txManager tx.TxManager
}

func NewExportService(db *pgxpool.Pool) ExportServiceContract {
	return &ExportService{
		db:        db,
		repo:      export_repo.NewExportRepo(db),
		txManager: tx.NewPgxTxManager(db),
	}
}

// ApproveRequest genehmigt einen Exportantrag, optional eingeschränkt
// auf die angegebenen Kurse. Nur offene Anträge können entschieden werden.
func (s *ExportService) ApproveRequest(ctx context.Context, requestID, deciderID string, req *export_dto.ApproveExportRequest) (*export_dto.ExportDecisionResponse, *app_errors.AppError) {
	return s.decide(ctx, requestID, deciderID, entity.ExportApproved, req.CourseIDs)
}

func (s *ExportService) DenyRequest(ctx context.Context, requestID, deciderID string) (*export_dto.ExportDecisionResponse, *app_errors.AppError) {
	return s.decide(ctx, requestID, deciderID, entity.ExportDenied, nil)
}

func (s *ExportService) decide(ctx context.Context, requestID, deciderID string, status entity.ExportRequestStatus, courseIDs []string) (*export_dto.ExportDecisionResponse, *app_errors.AppError) {
	allowed, err := s.repo.HasSystemCapability(ctx, deciderID, entity.CapabilityManageRequests)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, app_errors.NewAppError(fiber.StatusForbidden, app_errors.ErrForbidden, "forbidden", nil)
	}

	request, err := s.repo.FindRequestByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if request.Status != entity.ExportPending {
		return nil, app_errors.NewAppError(fiber.StatusConflict, app_errors.ErrConflict, "export_request_decided", nil)
	}

	// Begin transaction
	t, err := s.txManager.Begin(ctx)
	if err != nil {
		return nil, err
	}

	committed := false
	defer func() {
		if !committed {
			_ = t.Rollback(ctx)
		}
	}()

	if err := s.repo.DecideRequestTx(ctx, t, requestID, status, deciderID, courseIDs); err != nil {
		return nil, err
	}

	// Commit transaction
	if err := t.Commit(ctx); err != nil {
		return nil, err
	}
	committed = true

	now := time.Now()
	return &export_dto.ExportDecisionResponse{
		RequestID: requestID,
		Status:    string(status),
		CourseIDs: courseIDs,
		DecidedBy: deciderID,
		DecidedAt: &now,
	}, nil
}
