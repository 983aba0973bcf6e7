package schedule

import (
	"context"
	"fmt"
	"log/slog"
)

// Task is a scheduled background task.
type Task interface {
	Name() string
	Start() error
	Stop(ctx context.Context)
}

// TaskManager starts and stops a fixed set of tasks together.
type TaskManager struct {
	tasks   []Task
	started []Task
	logger  *slog.Logger
}

func NewTaskManager(logger *slog.Logger, tasks ...Task) *TaskManager {
	return &TaskManager{
		tasks:  tasks,
		logger: logger.With("component", "task_manager"),
	}
}

// StartAll starts tasks in order. If one fails, the ones already started are
// stopped before the error is returned.
func (m *TaskManager) StartAll() error {
	for _, task := range m.tasks {
		if err := task.Start(); err != nil {
			m.StopAll(context.Background())
			return fmt.Errorf("failed to start %s task: %w", task.Name(), err)
		}
		m.started = append(m.started, task)
	}
	return nil
}

// StopAll stops started tasks in reverse order. Calling it twice is safe.
func (m *TaskManager) StopAll(ctx context.Context) {
	for i := len(m.started) - 1; i >= 0; i-- {
		m.started[i].Stop(ctx)
	}
	if len(m.started) > 0 {
		m.logger.InfoContext(ctx, "All tasks stopped", "count", len(m.started))
	}
	m.started = nil
}

// Names lists the managed tasks in start order.
func (m *TaskManager) Names() []string {
	names := make([]string, 0, len(m.tasks))
	for _, task := range m.tasks {
		names = append(names, task.Name())
	}
	return names
}
