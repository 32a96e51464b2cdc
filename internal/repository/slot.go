package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"taskflow/internal/storage"
)

// Storage keys, one slot per entity kind.
const (
	UsersKey       = "taskflow_users"
	CurrentUserKey = "taskflow_current_user"
	TasksKey       = "taskflow_tasks"
	ProjectsKey    = "taskflow_projects"
	AuthSliceKey   = "auth-storage"
	TaskSliceKey   = "task-storage"
)

// ErrNotFound is returned when a record does not exist.
var ErrNotFound = errors.New("record not found")

// slot reads and writes one JSON document under a fixed key.
type slot[T any] struct {
	backend storage.Backend
	key     string
	log     logrus.FieldLogger
}

// load returns the decoded value and whether one was present. Unreadable or
// malformed data counts as absent.
func (s slot[T]) load(ctx context.Context) (T, bool) {
	var v T
	data, err := s.backend.Get(ctx, s.key)
	if err != nil {
		s.log.WithError(err).WithField("key", s.key).Warn("read slot failed, treating as empty")
		return v, false
	}
	if data == nil {
		return v, false
	}
	if err := json.Unmarshal(data, &v); err != nil {
		s.log.WithError(err).WithField("key", s.key).Warn("malformed slot, treating as empty")
		var zero T
		return zero, false
	}
	return v, true
}

func (s slot[T]) save(ctx context.Context, v T) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", s.key, err)
	}
	if err := s.backend.Set(ctx, s.key, data); err != nil {
		return fmt.Errorf("write %s: %w", s.key, err)
	}
	return nil
}

func (s slot[T]) clear(ctx context.Context) error {
	if err := s.backend.Delete(ctx, s.key); err != nil {
		return fmt.Errorf("remove %s: %w", s.key, err)
	}
	return nil
}
