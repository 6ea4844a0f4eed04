package worker_handler

import (
	"context"

	"github.com/Xenn-00/werkstatt-meister/internal/entity"
	worker_task "github.com/Xenn-00/werkstatt-meister/internal/worker/tasks"
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"
)

// WorkerAutoSwitchAssessmentHandler schaltet Workshops mit abgelaufener
// Einreichungsfrist in die Begutachtungsphase und stößt pro Workshop
// den Benachrichtigungsversand an. Fehler einzelner Workshops brechen
// den Durchlauf nicht ab.
func (wh *WorkerHandler) WorkerAutoSwitchAssessmentHandler() asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		log.Info().Msg("Worker handler: Worker auto switch assessment phase hit.")

		candidates, appErr := wh.wr.ListAutoSwitchCandidates(ctx)
		if appErr != nil {
			log.Error().Err(appErr).Msg("Worker handler: Error occured when trying to call repo -> ListAutoSwitchCandidates.")
			return nil
		}
		if len(candidates) == 0 {
			return nil
		}

		for i := range candidates {
			workshop := &candidates[i]
			if err := wh.switchToAssessment(ctx, workshop); err != nil {
				log.Error().Err(err).Str("workshop_id", workshop.ID).Msg("Worker handler: Failed to auto switch workshop phase.")
			}
		}

		return nil
	}
}

func (wh *WorkerHandler) switchToAssessment(ctx context.Context, workshop *entity.WorkshopEntity) error {
	t, appErr := wh.txManager.Begin(ctx)
	if appErr != nil {
		return appErr
	}

	committed := false
	defer func() {
		if !committed {
			_ = t.Rollback(ctx)
		}
	}()

	if appErr := wh.wr.UpdatePhaseTx(ctx, t, workshop.ID, entity.PhaseAssessment); appErr != nil {
		return appErr
	}

	if appErr := t.Commit(ctx); appErr != nil {
		return appErr
	}
	committed = true

	module, appErr := wh.wr.FindCourseModuleByWorkshopID(ctx, workshop.ID)
	if appErr != nil {
		return appErr
	}

	return wh.queue.EnqueueSendPhaseChangeNotifications(&worker_task.SendPhaseChangeNotificationsPayload{
		WorkshopID: workshop.ID,
		CourseID:   workshop.CourseID,
		CMID:       module.ID,
		OldPhase:   entity.PhaseSubmission,
		NewPhase:   entity.PhaseAssessment,
	})
}
