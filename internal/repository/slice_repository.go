package repository

import (
	"context"

	"github.com/sirupsen/logrus"

	"taskflow/internal/model"
	"taskflow/internal/storage"
)

// AuthSlice is the persisted part of the authentication store.
type AuthSlice struct {
	User    *model.SessionUser `json:"user"`
	Profile *model.Profile     `json:"profile"`
}

// ViewSlice is the persisted part of the task store.
type ViewSlice struct {
	CurrentProject *string        `json:"currentProject"`
	ViewMode       model.ViewMode `json:"viewMode"`
}

type envelope[T any] struct {
	State   T   `json:"state"`
	Version int `json:"version"`
}

// SliceRepository persists a store snapshot inside a {state, version}
// envelope.
type SliceRepository[T any] struct {
	slot slot[envelope[T]]
}

// NewAuthSliceRepository stores the auth snapshot under AuthSliceKey.
func NewAuthSliceRepository(backend storage.Backend, log logrus.FieldLogger) *SliceRepository[AuthSlice] {
	return &SliceRepository[AuthSlice]{slot: slot[envelope[AuthSlice]]{backend: backend, key: AuthSliceKey, log: log}}
}

// NewViewSliceRepository stores the task view snapshot under TaskSliceKey.
func NewViewSliceRepository(backend storage.Backend, log logrus.FieldLogger) *SliceRepository[ViewSlice] {
	return &SliceRepository[ViewSlice]{slot: slot[envelope[ViewSlice]]{backend: backend, key: TaskSliceKey, log: log}}
}

// Load returns the stored snapshot, if any.
func (r *SliceRepository[T]) Load(ctx context.Context) (T, bool) {
	env, ok := r.slot.load(ctx)
	return env.State, ok
}

// Save replaces the stored snapshot.
func (r *SliceRepository[T]) Save(ctx context.Context, state T) error {
	return r.slot.save(ctx, envelope[T]{State: state})
}
