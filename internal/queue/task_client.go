package queue

import (
	worker_task "github.com/Xenn-00/werkstatt-meister/internal/worker/tasks"
	"github.com/goccy/go-json"
	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// TaskQueueClient abstrahiert das Einreihen, damit Services gegen ein
// Interface testen können.
type TaskQueueClient interface {
	EnqueueSendPhaseChangeNotifications(payload *worker_task.SendPhaseChangeNotificationsPayload) error
}

type TaskQueue struct {
	client *asynq.Client
}

func NewTaskQueue(redis *redis.Client) *TaskQueue {
	return &TaskQueue{
		client: asynq.NewClientFromRedisClient(redis),
	}
}

func (q *TaskQueue) EnqueueSendPhaseChangeNotifications(payload *worker_task.SendPhaseChangeNotificationsPayload) error {
	log.Info().Msg("Preparing enqueueing payload.")
	p, _ := json.Marshal(payload)
	task := asynq.NewTask(worker_task.TaskSendPhaseChangeNotifications, p, asynq.Queue("email"), asynq.MaxRetry(5))

	_, err := q.client.Enqueue(task)
	return err
}
