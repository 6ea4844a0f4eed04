package workshop_repo

import (
	"context"
	"errors"

	"github.com/Xenn-00/werkstatt-meister/internal/abstraction/tx"
	"github.com/Xenn-00/werkstatt-meister/internal/entity"
	app_errors "github.com/Xenn-00/werkstatt-meister/internal/errors"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type WorkshopRepo struct {
	db *pgxpool.Pool
}

func NewWorkshopRepo(db *pgxpool.Pool) WorkshopRepoContract {
	return &WorkshopRepo{
		db: db,
	}
}

func (r *WorkshopRepo) FindWorkshopByID(ctx context.Context, workshopID string) (*entity.WorkshopEntity, *app_errors.AppError) {
	query := `
		SELECT id, course_id, name, phase, submission_start, submission_end,
		       assessment_start, assessment_end, phase_switch_assessment,
		       custom_email, created_at, updated_at
		FROM workshops WHERE id = $1 LIMIT 1
	`
	row := r.db.QueryRow(ctx, query, workshopID)

	var w entity.WorkshopEntity
	if err := row.Scan(&w.ID, &w.CourseID, &w.Name, &w.Phase, &w.SubmissionStart, &w.SubmissionEnd,
		&w.AssessmentStart, &w.AssessmentEnd, &w.PhaseSwitchAssessment,
		&w.CustomEmail, &w.CreatedAt, &w.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, app_errors.NewAppError(fiber.StatusNotFound, app_errors.ErrNotFound, "workshop_not_found", nil)
		}
		return nil, app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", err)
	}
	return &w, nil
}

func (r *WorkshopRepo) FindCourseModuleByID(ctx context.Context, cmID string) (*entity.CourseModuleEntity, *app_errors.AppError) {
	query := `
		SELECT id, course_id, workshop_id FROM course_modules WHERE id = $1 LIMIT 1
	`
	row := r.db.QueryRow(ctx, query, cmID)

	var cm entity.CourseModuleEntity
	if err := row.Scan(&cm.ID, &cm.CourseID, &cm.WorkshopID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, app_errors.NewAppError(fiber.StatusNotFound, app_errors.ErrNotFound, "module_not_found", nil)
		}
		return nil, app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", err)
	}
	return &cm, nil
}

func (r *WorkshopRepo) FindCourseModuleByWorkshopID(ctx context.Context, workshopID string) (*entity.CourseModuleEntity, *app_errors.AppError) {
	query := `
		SELECT id, course_id, workshop_id FROM course_modules WHERE workshop_id = $1 LIMIT 1
	`
	row := r.db.QueryRow(ctx, query, workshopID)

	var cm entity.CourseModuleEntity
	if err := row.Scan(&cm.ID, &cm.CourseID, &cm.WorkshopID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, app_errors.NewAppError(fiber.StatusNotFound, app_errors.ErrNotFound, "module_not_found", nil)
		}
		return nil, app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", err)
	}
	return &cm, nil
}

func (r *WorkshopRepo) ListNotificationRules(ctx context.Context, workshopID string, phase entity.Phase) ([]entity.NotificationRuleEntity, *app_errors.AppError) {
	query := `
		SELECT id, workshop_id, phase, role_id, enabled
		FROM workshop_notifications
		WHERE workshop_id = $1 AND phase = $2
		ORDER BY role_id
	`
	rows, err := r.db.Query(ctx, query, workshopID, phase)
	if err != nil {
		return nil, app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", err)
	}
	defer rows.Close()

	rules := []entity.NotificationRuleEntity{}
	for rows.Next() {
		var rule entity.NotificationRuleEntity
		if err := rows.Scan(&rule.ID, &rule.WorkshopID, &rule.Phase, &rule.RoleID, &rule.Enabled); err != nil {
			return nil, app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", err)
		}
		rules = append(rules, rule)
	}

	return rules, nil
}

func (r *WorkshopRepo) UpdatePhaseTx(ctx context.Context, t tx.Tx, workshopID string, newPhase entity.Phase) *app_errors.AppError {
	pgxTx := t.(*tx.PgxTx).Tx
	query := `
		UPDATE workshops SET phase = $1, updated_at = now() WHERE id = $2
	`
	tag, err := pgxTx.Exec(ctx, query, newPhase, workshopID)
	if err != nil {
		return app_errors.MapPgxError(err)
	}
	if tag.RowsAffected() == 0 {
		return app_errors.NewAppError(fiber.StatusNotFound, app_errors.ErrNotFound, "workshop_not_found", nil)
	}

	return nil
}

func (r *WorkshopRepo) UpsertNotificationRulesTx(ctx context.Context, t tx.Tx, workshopID string, rules []entity.NotificationRuleEntity) *app_errors.AppError {
	pgxTx := t.(*tx.PgxTx).Tx
	query := `
		INSERT INTO workshop_notifications (id, workshop_id, phase, role_id, enabled)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (workshop_id, phase, role_id)
		DO UPDATE SET enabled = EXCLUDED.enabled
	`
	for _, rule := range rules {
		id := rule.ID
		if id == "" {
			newID, err := uuid.NewV7()
			if err != nil {
				return app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", err)
			}
			id = newID.String()
		}
		if _, err := pgxTx.Exec(ctx, query, id, workshopID, rule.Phase, rule.RoleID, rule.Enabled); err != nil {
			return app_errors.MapPgxError(err)
		}
	}

	return nil
}

func (r *WorkshopRepo) ListAutoSwitchCandidates(ctx context.Context) ([]entity.WorkshopEntity, *app_errors.AppError) {
	query := `
		SELECT id, course_id, name, phase, submission_start, submission_end,
		       assessment_start, assessment_end, phase_switch_assessment,
		       custom_email, created_at, updated_at
		FROM workshops
		WHERE phase = $1 AND phase_switch_assessment = true
		  AND submission_end IS NOT NULL AND submission_end <= now()
	`
	rows, err := r.db.Query(ctx, query, entity.PhaseSubmission)
	if err != nil {
		return nil, app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", err)
	}
	defer rows.Close()

	workshops := []entity.WorkshopEntity{}
	for rows.Next() {
		var w entity.WorkshopEntity
		if err := rows.Scan(&w.ID, &w.CourseID, &w.Name, &w.Phase, &w.SubmissionStart, &w.SubmissionEnd,
			&w.AssessmentStart, &w.AssessmentEnd, &w.PhaseSwitchAssessment,
			&w.CustomEmail, &w.CreatedAt, &w.UpdatedAt); err != nil {
			return nil, app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", err)
		}
		workshops = append(workshops, w)
	}

	return workshops, nil
}
