package repository

import (
	"context"
	"errors"
)

// ErrNotFound is returned when no document exists under the storage key.
var ErrNotFound = errors.New("not found")

// DocumentRepo persists the single serialized planning document under a
// fixed storage key.
type DocumentRepo interface {
	Read(ctx context.Context) ([]byte, error)
	Write(ctx context.Context, body []byte) error
	Erase(ctx context.Context) error
}
