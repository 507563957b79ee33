package ports

import (
	"context"
	"mime/multipart"
	"time"

	"fileshare-api/internal/domain/upload"
)

// UploadResult is returned to the client after a successful upload.
type UploadResult struct {
	ViewURL   string
	ExpiresAt time.Time
}

// Metadata describes an upload; TextContent is set only for text
// snippets and markdown files.
type Metadata struct {
	ShortID          string
	OriginalFilename string
	Kind             upload.Kind
	TextContent      *string
	ExpiresAt        time.Time
}

// DownloadResult carries the blob bytes together with everything the
// transport needs to build the response.
type DownloadResult struct {
	Data          []byte
	ContentType   string
	ContentLength int64
	Filename      string
}

type UploadService interface {
	Upload(ctx context.Context, file *multipart.FileHeader, text string) (*UploadResult, error)
	GetMetadata(ctx context.Context, shortID string) (*Metadata, error)
	Download(ctx context.Context, shortID string) (*DownloadResult, error)
}
