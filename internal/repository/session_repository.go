package repository

import (
	"context"

	"github.com/sirupsen/logrus"

	"taskflow/internal/model"
	"taskflow/internal/storage"
)

// SessionRepository persists the session marker.
type SessionRepository interface {
	Get(ctx context.Context) *model.SessionUser
	Save(ctx context.Context, user *model.SessionUser) error
	Clear(ctx context.Context) error
}

type sessionRepository struct {
	slot slot[*model.SessionUser]
}

// NewSessionRepository builds a session store under CurrentUserKey.
func NewSessionRepository(backend storage.Backend, log logrus.FieldLogger) SessionRepository {
	return &sessionRepository{slot: slot[*model.SessionUser]{backend: backend, key: CurrentUserKey, log: log}}
}

func (r *sessionRepository) Get(ctx context.Context) *model.SessionUser {
	user, _ := r.slot.load(ctx)
	return user
}

func (r *sessionRepository) Save(ctx context.Context, user *model.SessionUser) error {
	return r.slot.save(ctx, user)
}

func (r *sessionRepository) Clear(ctx context.Context) error {
	return r.slot.clear(ctx)
}
