package worker

import (
	"fmt"

	worker_handler "github.com/Xenn-00/werkstatt-meister/internal/worker/handlers"
	worker_task "github.com/Xenn-00/werkstatt-meister/internal/worker/tasks"
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"
)

func RegisterWorkerHandlers(mux *asynq.ServeMux, h *worker_handler.WorkerHandler) {
	mux.HandleFunc(
		worker_task.TaskSendPhaseChangeNotifications,
		h.WorkerPhaseChangeNotificationHandler(),
	)
	mux.HandleFunc(
		worker_task.TaskAutoSwitchAssessmentPhase,
		h.WorkerAutoSwitchAssessmentHandler(),
	)
}

func RegisterCronJobs(s *asynq.Scheduler) error {
	jobs := []struct {
		cronspec string
		task     *asynq.Task
		queue    string
		desc     string
	}{
		{
			cronspec: "*/5 * * * *",
			task:     asynq.NewTask(worker_task.TaskAutoSwitchAssessmentPhase, nil),
			queue:    "low",
			desc:     "auto switch workshops into assessment phase",
		},
	}

	for _, job := range jobs {
		if _, err := s.Register(job.cronspec, job.task, asynq.Queue(job.queue)); err != nil {
			return fmt.Errorf("register %s failed: %w", job.desc, err)
		}
		log.Info().Msgf("scheduled: %s", job.desc)
	}

	return nil
}
