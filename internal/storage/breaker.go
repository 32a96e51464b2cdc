package storage

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sony/gobreaker"
)

// BreakerBackend guards a remote backend with a circuit breaker. While open,
// calls fail fast with gobreaker.ErrOpenState.
type BreakerBackend struct {
	next Backend
	cb   *gobreaker.CircuitBreaker
}

var _ Backend = (*BreakerBackend)(nil)

// NewBreaker wraps next. The breaker trips after more than three
// consecutive failures and probes again after timeout.
func NewBreaker(name string, next Backend, timeout time.Duration, log logrus.FieldLogger) *BreakerBackend {
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        name,
		MaxRequests: 1,
		Timeout:     timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures > 3
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.WithFields(logrus.Fields{
				"breaker": name,
				"from":    from.String(),
				"to":      to.String(),
			}).Warn("storage circuit breaker state changed")
		},
	})
	return &BreakerBackend{next: next, cb: cb}
}

func (b *BreakerBackend) Get(ctx context.Context, key string) ([]byte, error) {
	res, err := b.cb.Execute(func() (interface{}, error) {
		return b.next.Get(ctx, key)
	})
	if err != nil {
		return nil, err
	}
	data, _ := res.([]byte)
	return data, nil
}

func (b *BreakerBackend) Set(ctx context.Context, key string, value []byte) error {
	_, err := b.cb.Execute(func() (interface{}, error) {
		return nil, b.next.Set(ctx, key, value)
	})
	return err
}

func (b *BreakerBackend) Delete(ctx context.Context, key string) error {
	_, err := b.cb.Execute(func() (interface{}, error) {
		return nil, b.next.Delete(ctx, key)
	})
	return err
}

func (b *BreakerBackend) Close() error {
	return b.next.Close()
}
