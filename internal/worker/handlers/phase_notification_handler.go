package worker_handler

import (
	"context"

	app_errors "github.com/Xenn-00/werkstatt-meister/internal/errors"
	"github.com/Xenn-00/werkstatt-meister/internal/mail"
	"github.com/Xenn-00/werkstatt-meister/internal/notify"
	worker_task "github.com/Xenn-00/werkstatt-meister/internal/worker/tasks"
	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"
)

// WorkerPhaseChangeNotificationHandler verschickt die Mails für einen
// Phasenwechsel. Fehler vor dem ersten Versand sind fatal und lösen
// einen Retry aus; Fehler einzelner Empfänger werden nur gezählt.
func (wh *WorkerHandler) WorkerPhaseChangeNotificationHandler() asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		log.Info().Msg("Worker handler: Worker phase change notification hit.")
		var p worker_task.SendPhaseChangeNotificationsPayload
		if err := json.Unmarshal(t.Payload(), &p); err != nil {
			log.Error().Err(err).Msg("Worker handler: Error occured when trying to unmarshal task payload.")
			return err
		}

		result, appErr := wh.ProcessPhaseChange(ctx, &p)
		if appErr != nil {
			log.Error().Err(appErr).Msg("Worker handler: Error occured when preparing phase change notification run.")
			return appErr
		}

		log.Info().
			Int("sent", result.SentCount).
			Int("failed", result.ErrorCount).
			Int("skipped", result.SkippedCount).
			Msgf("Worker handler: Sent %d messages with %d failures", result.SentCount, result.ErrorCount)

		return nil
	}
}

// ProcessPhaseChange lädt die Daten, friert den Lauf ein und versendet.
func (wh *WorkerHandler) ProcessPhaseChange(ctx context.Context, p *worker_task.SendPhaseChangeNotificationsPayload) (*notify.RunResult, *app_errors.AppError) {
	if !p.OldPhase.IsValid() || !p.NewPhase.IsValid() {
		return nil, app_errors.NewAppError(fiber.StatusBadRequest, app_errors.ErrInvalidBody, "invalid_request", nil)
	}

	course, appErr := wh.cr.FindCourseByID(ctx, p.CourseID)
	if appErr != nil {
		return nil, appErr
	}

	module, appErr := wh.wr.FindCourseModuleByID(ctx, p.CMID)
	if appErr != nil {
		return nil, appErr
	}
	if module.CourseID != p.CourseID || module.WorkshopID != p.WorkshopID {
		return nil, app_errors.NewAppError(fiber.StatusNotFound, app_errors.ErrNotFound, "module_not_found", nil)
	}

	workshop, appErr := wh.wr.FindWorkshopByID(ctx, p.WorkshopID)
	if appErr != nil {
		return nil, appErr
	}

	run, appErr := wh.resolver.Prepare(ctx, course, module, workshop, p.OldPhase, p.NewPhase)
	if appErr != nil {
		return nil, appErr
	}

	log.Info().
		Str("workshop_id", workshop.ID).
		Str("old_phase", p.OldPhase.Name()).
		Str("new_phase", p.NewPhase.Name()).
		Msgf("Worker handler: Sending notifications that workshop %q changed phase from %q to %q.",
			workshop.Name, p.OldPhase.Name(), p.NewPhase.Name())

	result := &notify.RunResult{SkippedCount: run.SkippedCount}
	subject := wh.renderer.Subject(run)

	for i := range run.Recipients {
		recipient := &run.Recipients[i]

		body, err := wh.renderer.Render(run, recipient)
		if err != nil {
			log.Error().Err(err).Str("email", recipient.Email).Msg("Worker handler: Failed to render notification.")
			result.ErrorCount++
			continue
		}

		email := &mail.PhaseChangeEmail{
			To:       recipient.Email,
			Subject:  subject,
			Text:     wh.renderer.WorkshopLink(run),
			HTMLBody: body,
		}
		if err := wh.mailer.SendPhaseChangeNotification(email); err != nil {
			log.Error().Err(err).Str("email", recipient.Email).Msg("Worker handler: Failed to send notification.")
			result.ErrorCount++
			continue
		}

		log.Info().Str("email", recipient.Email).Msgf("Worker handler: Notification to %s has been sent.", recipient.FirstName)
		result.SentCount++
	}

	return result, nil
}
