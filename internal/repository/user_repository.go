package repository

import (
	"context"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"taskflow/internal/model"
	"taskflow/internal/storage"
)

// UserRepository defines user registry operations.
type UserRepository interface {
	List(ctx context.Context) []model.StoredUser
	FindByEmail(ctx context.Context, email string) (*model.StoredUser, error)
	Create(ctx context.Context, user *model.StoredUser) error
	UpdatePassword(ctx context.Context, id, password string, now time.Time) error
}

type userRepository struct {
	slot slot[[]model.StoredUser]
}

// NewUserRepository builds a registry stored under UsersKey.
func NewUserRepository(backend storage.Backend, log logrus.FieldLogger) UserRepository {
	return &userRepository{slot: slot[[]model.StoredUser]{backend: backend, key: UsersKey, log: log}}
}

func (r *userRepository) List(ctx context.Context) []model.StoredUser {
	users, _ := r.slot.load(ctx)
	if users == nil {
		return []model.StoredUser{}
	}
	return users
}

// FindByEmail matches email case-insensitively.
func (r *userRepository) FindByEmail(ctx context.Context, email string) (*model.StoredUser, error) {
	for _, u := range r.List(ctx) {
		if strings.EqualFold(u.Email, email) {
			user := u
			return &user, nil
		}
	}
	return nil, ErrNotFound
}

func (r *userRepository) Create(ctx context.Context, user *model.StoredUser) error {
	users := append(r.List(ctx), *user)
	return r.slot.save(ctx, users)
}

func (r *userRepository) UpdatePassword(ctx context.Context, id, password string, now time.Time) error {
	users := r.List(ctx)
	for i := range users {
		if users[i].ID == id {
			users[i].Password = password
			users[i].UpdatedAt = now
			return r.slot.save(ctx, users)
		}
	}
	return ErrNotFound
}
