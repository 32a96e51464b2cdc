package repository

import (
	"context"

	"github.com/sirupsen/logrus"

	"taskflow/internal/model"
	"taskflow/internal/storage"
)

// ProjectRepository persists the whole project collection.
type ProjectRepository interface {
	List(ctx context.Context) []model.Project
	SaveAll(ctx context.Context, projects []model.Project) error
}

type projectRepository struct {
	slot slot[[]model.Project]
}

// NewProjectRepository builds a project collection under ProjectsKey.
func NewProjectRepository(backend storage.Backend, log logrus.FieldLogger) ProjectRepository {
	return &projectRepository{slot: slot[[]model.Project]{backend: backend, key: ProjectsKey, log: log}}
}

func (r *projectRepository) List(ctx context.Context) []model.Project {
	projects, _ := r.slot.load(ctx)
	if projects == nil {
		return []model.Project{}
	}
	return projects
}

func (r *projectRepository) SaveAll(ctx context.Context, projects []model.Project) error {
	return r.slot.save(ctx, projects)
}
