package ports

import (
	"context"
	"io"
)

// Object is a blob fetched from the store together with the metadata
// the store keeps for it.
type Object struct {
	Data        []byte
	ContentType string
	Size        int64
}

type ObjectStore interface {
	Put(ctx context.Context, key string, body io.Reader, size int64, contentType string) error
	Get(ctx context.Context, key string) (*Object, error)
	Delete(ctx context.Context, key string) error
}
