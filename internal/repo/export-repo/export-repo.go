package export_repo

import (
	"context"
	"errors"

	"github.com/Xenn-00/werkstatt-meister/internal/abstraction/tx"
	"github.com/Xenn-00/werkstatt-meister/internal/entity"
	app_errors "github.com/Xenn-00/werkstatt-meister/internal/errors"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ExportRepo struct {
	db *pgxpool.Pool
}

func NewExportRepo(db *pgxpool.Pool) ExportRepoContract {
	return &ExportRepo{
		db: db,
	}
}

func (r *ExportRepo) FindRequestByID(ctx context.Context, requestID string) (*entity.ExportRequestEntity, *app_errors.AppError) {
	query := `
		SELECT id, requester_id, status, course_filter, decided_by, decided_at, created_at
		FROM export_requests WHERE id = $1 LIMIT 1
	`
	row := r.db.QueryRow(ctx, query, requestID)

	var req entity.ExportRequestEntity
	if err := row.Scan(&req.ID, &req.RequesterID, &req.Status, &req.CourseFilter,
		&req.DecidedBy, &req.DecidedAt, &req.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, app_errors.NewAppError(fiber.StatusNotFound, app_errors.ErrNotFound, "export_request_not_found", nil)
		}
		return nil, app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", err)
	}
	return &req, nil
}

// HasSystemCapability prüft eine systemweite Berechtigung, also eine
// Berechtigung ohne Kurskontext.
func (r *ExportRepo) HasSystemCapability(ctx context.Context, userID, capability string) (bool, *app_errors.AppError) {
	query := `
		SELECT EXISTS (
			SELECT 1
			FROM system_capabilities
			WHERE user_id = $1 AND capability = $2
		)
	`
	var exists bool
	if err := r.db.QueryRow(ctx, query, userID, capability).Scan(&exists); err != nil {
		return false, app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", err)
	}

	return exists, nil
}

func (r *ExportRepo) DecideRequestTx(ctx context.Context, t tx.Tx, requestID string, status entity.ExportRequestStatus, decidedBy string, courseIDs []string) *app_errors.AppError {
	pgxTx := t.(*tx.PgxTx).Tx
	query := `
		UPDATE export_requests
		SET status = $1, decided_by = $2, decided_at = now(), course_filter = $3
		WHERE id = $4 AND status = $5
	`
	tag, err := pgxTx.Exec(ctx, query, status, decidedBy, courseIDs, requestID, entity.ExportPending)
	if err != nil {
		return app_errors.MapPgxError(err)
	}
	if tag.RowsAffected() == 0 {
		// Entweder verschwunden oder bereits entschieden.
		return app_errors.NewAppError(fiber.StatusConflict, app_errors.ErrConflict, "export_request_decided", nil)
	}

	return nil
}
