package use_cases

import (
	"github.com/Xenn-00/werkstatt-meister/internal/queue"
	worker_task "github.com/Xenn-00/werkstatt-meister/internal/worker/tasks"
	"github.com/stretchr/testify/mock"
)

var _ queue.TaskQueueClient = (*MockTaskQueue)(nil)

// Mock TaskQueue for testing
type MockTaskQueue struct {
	mock.Mock
}

func (m *MockTaskQueue) EnqueueSendPhaseChangeNotifications(payload *worker_task.SendPhaseChangeNotificationsPayload) error {
	args := m.Called(payload)
	return args.Error(0)
}
