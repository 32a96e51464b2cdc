// Package storage provides the key/value slot media behind the repositories.
// Every slot is a single string key holding one JSON document.
package storage

import (
	"context"
	"errors"
)

// ErrClosed is returned by backends used after Close.
var ErrClosed = errors.New("storage closed")

// Backend is a flat key/value medium. Get returns nil, nil for a missing key.
type Backend interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}
