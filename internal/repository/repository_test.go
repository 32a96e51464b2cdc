package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskflow/internal/logging"
	"taskflow/internal/model"
	"taskflow/internal/storage"
)

func TestUserRepository(t *testing.T) {
	ctx := context.Background()
	backend := storage.NewMemory()
	repo := NewUserRepository(backend, logging.Discard())

	assert.Empty(t, repo.List(ctx))

	created := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Create(ctx, &model.StoredUser{
		ID: "user_1", Email: "a@test.com", Password: "secret1", Name: "a",
		CreatedAt: created, UpdatedAt: created,
	}))

	user, err := repo.FindByEmail(ctx, "A@TEST.com")
	require.NoError(t, err)
	assert.Equal(t, "user_1", user.ID)

	_, err = repo.FindByEmail(ctx, "b@test.com")
	assert.ErrorIs(t, err, ErrNotFound)

	later := created.Add(time.Hour)
	require.NoError(t, repo.UpdatePassword(ctx, "user_1", "secret2", later))
	user, err = repo.FindByEmail(ctx, "a@test.com")
	require.NoError(t, err)
	assert.Equal(t, "secret2", user.Password)
	assert.True(t, later.Equal(user.UpdatedAt))

	assert.ErrorIs(t, repo.UpdatePassword(ctx, "user_2", "x", later), ErrNotFound)
}

func TestRepositories_MalformedSlotsReadAsEmpty(t *testing.T) {
	ctx := context.Background()
	backend := storage.NewMemory()
	log := logging.Discard()

	for _, key := range []string{UsersKey, CurrentUserKey, TasksKey, ProjectsKey, AuthSliceKey} {
		require.NoError(t, backend.Set(ctx, key, []byte("{not json")))
	}

	assert.Empty(t, NewUserRepository(backend, log).List(ctx))
	assert.Nil(t, NewSessionRepository(backend, log).Get(ctx))
	assert.Equal(t, []model.Task{}, NewTaskRepository(backend, log).List(ctx))
	assert.Equal(t, []model.Project{}, NewProjectRepository(backend, log).List(ctx))

	_, ok := NewAuthSliceRepository(backend, log).Load(ctx)
	assert.False(t, ok)
}

func TestSessionRepository(t *testing.T) {
	ctx := context.Background()
	backend := storage.NewMemory()
	repo := NewSessionRepository(backend, logging.Discard())

	assert.Nil(t, repo.Get(ctx))

	require.NoError(t, repo.Save(ctx, &model.SessionUser{ID: "user_1", Email: "a@test.com"}))
	assert.Equal(t, "user_1", repo.Get(ctx).ID)

	require.NoError(t, repo.Clear(ctx))
	assert.Nil(t, repo.Get(ctx))
}

func TestTaskRepository_RoundTrip(t *testing.T) {
	ctx := context.Background()
	backend := storage.NewMemory()
	repo := NewTaskRepository(backend, logging.Discard())

	tasks := []model.Task{
		{ID: "task_1", Title: "One", ProjectID: "project_1", Subtasks: []model.Subtask{}, Tags: []string{"a"}},
		{ID: "task_2", Title: "Two", ProjectID: "project_1", Subtasks: []model.Subtask{}, Tags: []string{}},
	}
	require.NoError(t, repo.SaveAll(ctx, tasks))
	assert.Equal(t, tasks, repo.List(ctx))
}

func TestProjectRepository_ReadsBrowserFormat(t *testing.T) {
	ctx := context.Background()
	backend := storage.NewMemory()
	raw := `[{"id":"project_1","title":"TaskFlow Web Application","description":"d","color":"#3b82f6",
		"status":"active","owner_id":"u","created_at":"2024-05-01T10:00:00.000Z",
		"updated_at":"2024-05-01T10:00:00.000Z","tasks":[],"members":[{"id":"u","name":"You","role":"owner"}]}]`
	require.NoError(t, backend.Set(ctx, ProjectsKey, []byte(raw)))

	projects := NewProjectRepository(backend, logging.Discard()).List(ctx)
	require.Len(t, projects, 1)
	assert.Equal(t, "TaskFlow Web Application", projects[0].Title)
	assert.True(t, time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC).Equal(projects[0].CreatedAt))
	assert.Equal(t, model.RoleOwner, projects[0].Members[0].Role)
}

func TestSliceRepository_Envelope(t *testing.T) {
	ctx := context.Background()
	backend := storage.NewMemory()
	repo := NewViewSliceRepository(backend, logging.Discard())

	current := "project_2"
	require.NoError(t, repo.Save(ctx, ViewSlice{CurrentProject: &current, ViewMode: model.ViewKanban}))

	raw, err := backend.Get(ctx, TaskSliceKey)
	require.NoError(t, err)
	assert.JSONEq(t, `{"state":{"currentProject":"project_2","viewMode":"kanban"},"version":0}`, string(raw))

	got, ok := repo.Load(ctx)
	require.True(t, ok)
	assert.Equal(t, "project_2", *got.CurrentProject)
	assert.Equal(t, model.ViewKanban, got.ViewMode)
}
