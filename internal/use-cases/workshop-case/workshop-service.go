package workshop_case

import (
	"context"

	"github.com/Xenn-00/werkstatt-meister/internal/abstraction/tx"
	workshop_dto "github.com/Xenn-00/werkstatt-meister/internal/dtos/workshop-dto"
	"github.com/Xenn-00/werkstatt-meister/internal/entity"
	app_errors "github.com/Xenn-00/werkstatt-meister/internal/errors"
	"github.com/Xenn-00/werkstatt-meister/internal/queue"
	workshop_repo "github.com/Xenn-00/werkstatt-meister/internal/repo/workshop-repo"
	worker_task "github.com/Xenn-00/werkstatt-meister/internal/worker/tasks"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

type WorkshopService struct {
	redis     *redis.Client
	db        *pgxpool.Pool
	repo      workshop_repo.WorkshopRepoContract
	txManager tx.TxManager
	taskQueue queue.TaskQueueClient
}

func NewWorkshopService(db *pgxpool.Pool, redis *redis.Client) WorkshopServiceContract {
	return &WorkshopService{
		redis:     redis,
		db:        db,
		repo:      workshop_repo.NewWorkshopRepo(db),
		txManager: tx.NewPgxTxManager(db),
		taskQueue: queue.NewTaskQueue(redis),
	}
}

// SwitchPhase setzt die Phase eines Workshops und stößt den
// Benachrichtigungsversand über die Queue an. Der Versand selbst läuft
// asynchron; ein Enqueue-Fehler macht den Wechsel nicht rückgängig.
func (s *WorkshopService) SwitchPhase(ctx context.Context, workshopID string, req *workshop_dto.SwitchPhaseRequest) (*workshop_dto.SwitchPhaseResponse, *app_errors.AppError) {
	workshop, err := s.repo.FindWorkshopByID(ctx, workshopID)
	if err != nil {
		return nil, err
	}

	newPhase, ok := entity.PhaseByName(req.NewPhase)
	if !ok {
		return nil, app_errors.NewAppError(fiber.StatusBadRequest, app_errors.ErrInvalidBody, "invalid_request", nil)
	}
	if newPhase == workshop.Phase {
		return nil, app_errors.NewAppError(fiber.StatusConflict, app_errors.ErrConflict, "invalid_phase_transition", nil)
	}

	module, err := s.repo.FindCourseModuleByWorkshopID(ctx, workshopID)
	if err != nil {
		return nil, err
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

	if err := s.repo.UpdatePhaseTx(ctx, t, workshopID, newPhase); err != nil {
		return nil, err
	}

	// Commit transaction
	if err := t.Commit(ctx); err != nil {
		return nil, err
	}
	committed = true

	payload := &worker_task.SendPhaseChangeNotificationsPayload{
		WorkshopID: workshop.ID,
		CourseID:   workshop.CourseID,
		CMID:       module.ID,
		OldPhase:   workshop.Phase,
		NewPhase:   newPhase,
	}
	if qErr := s.taskQueue.EnqueueSendPhaseChangeNotifications(payload); qErr != nil {
		log.Error().Err(qErr).Str("workshop_id", workshop.ID).Msg("Service: Failed to enqueue phase change notifications.")
	}

	return &workshop_dto.SwitchPhaseResponse{
		WorkshopID: workshop.ID,
		OldPhase:   workshop.Phase.Name(),
		NewPhase:   newPhase.Name(),
	}, nil
}

func (s *WorkshopService) GetWorkshop(ctx context.Context, workshopID string) (*workshop_dto.WorkshopResponse, *app_errors.AppError) {
	workshop, err := s.repo.FindWorkshopByID(ctx, workshopID)
	if err != nil {
		return nil, err
	}

	return &workshop_dto.WorkshopResponse{
		ID:                    workshop.ID,
		CourseID:              workshop.CourseID,
		Name:                  workshop.Name,
		Phase:                 workshop.Phase.Name(),
		SubmissionStart:       workshop.SubmissionStart,
		SubmissionEnd:         workshop.SubmissionEnd,
		AssessmentStart:       workshop.AssessmentStart,
		AssessmentEnd:         workshop.AssessmentEnd,
		PhaseSwitchAssessment: workshop.PhaseSwitchAssessment,
		CustomEmail:           workshop.CustomEmail,
	}, nil
}

func (s *WorkshopService) GetNotificationRules(ctx context.Context, workshopID, phaseName string) ([]workshop_dto.NotificationRuleResponse, *app_errors.AppError) {
	phase, ok := entity.PhaseByName(phaseName)
	if !ok {
		return nil, app_errors.NewAppError(fiber.StatusBadRequest, app_errors.ErrInvalidQuery, "invalid_request", nil)
	}

	if _, err := s.repo.FindWorkshopByID(ctx, workshopID); err != nil {
		return nil, err
	}

	rules, err := s.repo.ListNotificationRules(ctx, workshopID, phase)
	if err != nil {
		return nil, err
	}

	resp := make([]workshop_dto.NotificationRuleResponse, 0, len(rules))
	for _, rule := range rules {
		resp = append(resp, workshop_dto.NotificationRuleResponse{
			Phase:   rule.Phase.Name(),
			RoleID:  rule.RoleID,
			Enabled: rule.Enabled,
		})
	}
	return resp, nil
}

func (s *WorkshopService) UpdateNotificationRules(ctx context.Context, workshopID string, req *workshop_dto.UpdateNotificationRulesRequest) (*workshop_dto.UpdateNotificationRulesResponse, *app_errors.AppError) {
	if _, err := s.repo.FindWorkshopByID(ctx, workshopID); err != nil {
		return nil, err
	}

	rules := make([]entity.NotificationRuleEntity, 0, len(req.Rules))
	for _, item := range req.Rules {
		phase, ok := entity.PhaseByName(item.Phase)
		if !ok {
			return nil, app_errors.NewAppError(fiber.StatusBadRequest, app_errors.ErrInvalidBody, "invalid_request", nil)
		}
		rules = append(rules, entity.NotificationRuleEntity{
			WorkshopID: workshopID,
			Phase:      phase,
			RoleID:     item.RoleID,
			Enabled:    item.Enabled,
		})
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

	if err := s.repo.UpsertNotificationRulesTx(ctx, t, workshopID, rules); err != nil {
		return nil, err
	}

	// Commit transaction
	if err := t.Commit(ctx); err != nil {
		return nil, err
	}
	committed = true

	resp := &workshop_dto.UpdateNotificationRulesResponse{
		WorkshopID: workshopID,
		Rules:      make([]workshop_dto.NotificationRuleResponse, 0, len(rules)),
	}
	for _, rule := range rules {
		resp.Rules = append(resp.Rules, workshop_dto.NotificationRuleResponse{
			Phase:   rule.Phase.Name(),
			RoleID:  rule.RoleID,
			Enabled: rule.Enabled,
		})
	}

	return resp, nil
}
