package upload

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrNotFound is returned when no record exists for a short id.
	ErrNotFound = errors.New("upload not found")
	// ErrShortIDTaken is returned when an insert hits the short_id
	// unique constraint; the caller retries with a fresh id.
	ErrShortIDTaken = errors.New("short id already taken")
)

type Repository interface {
	Create(ctx context.Context, rec *Record) (*Record, error)
	FetchByShortID(ctx context.Context, shortID string) (*Record, error)
	FetchExpired(ctx context.Context, cutoff time.Time) (Records, error)
	DeleteByShortID(ctx context.Context, shortID string) error
}
