package repository

import (
	"context"

	"github.com/sirupsen/logrus"

	"taskflow/internal/model"
	"taskflow/internal/storage"
)

// TaskRepository persists the whole task collection.
type TaskRepository interface {
	List(ctx context.Context) []model.Task
	SaveAll(ctx context.Context, tasks []model.Task) error
}

type taskRepository struct {
	slot slot[[]model.Task]
}

// NewTaskRepository builds a task collection under TasksKey.
func NewTaskRepository(backend storage.Backend, log logrus.FieldLogger) TaskRepository {
	return &taskRepository{slot: slot[[]model.Task]{backend: backend, key: TasksKey, log: log}}
}

func (r *taskRepository) List(ctx context.Context) []model.Task {
	tasks, _ := r.slot.load(ctx)
	if tasks == nil {
		return []model.Task{}
	}
	return tasks
}

func (r *taskRepository) SaveAll(ctx context.Context, tasks []model.Task) error {
	return r.slot.save(ctx, tasks)
}
