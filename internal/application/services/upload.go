package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"fileshare-api/internal/application/ports"
	"fileshare-api/internal/domain/upload"
)

const (
	maxTextChars = 100_000
	maxFileBytes = 25 << 20 // 25 MiB

	textSnippetName = "Text Snippet"

	// Attempts to allocate a unique short id before giving up. A
	// collision at 48 random bits is already vanishingly rare.
	maxShortIDAttempts = 3
)

type UploadService struct {
	store     ports.ObjectStore
	uploads   upload.Repository
	ids       *ShortIDGenerator
	sanitizer *TextSanitizer

	domain      string
	allowedExts map[string]struct{}
	mCounter    *prometheus.CounterVec
}

func NewUploadService(
	store ports.ObjectStore,
	uploads upload.Repository,
	ids *ShortIDGenerator,
	sanitizer *TextSanitizer,
	domain string,
	allowedExtensions []string,
	mCounter *prometheus.CounterVec,
) ports.UploadService {
	exts := make(map[string]struct{}, len(allowedExtensions))
	for _, e := range allowedExtensions {
		exts[strings.ToLower(strings.TrimPrefix(e, "."))] = struct{}{}
	}

	return &UploadService{
		store:       store,
		uploads:     uploads,
		ids:         ids,
		sanitizer:   sanitizer,
		domain:      domain,
		allowedExts: exts,
		mCounter:    mCounter,
	}
}

func (s *UploadService) Upload(ctx context.Context, file *multipart.FileHeader, text string) (*ports.UploadResult, error) {
	hasFile := file != nil && file.Size > 0
	hasText := strings.TrimSpace(text) != ""

	if !hasFile && !hasText {
		return nil, invalidRequest("Either a file or text content must be provided.")
	}
	if hasFile && hasText {
		return nil, invalidRequest("Cannot upload both a file and text content simultaneously.")
	}

	var (
		contentBytes     []byte
		originalFilename string
		contentType      string
		kind             upload.Kind
	)

	if hasText {
		if utf8.RuneCountInString(text) > maxTextChars {
			return nil, payloadTooLarge("Text content must not exceed 100,000 characters.")
		}
		contentBytes = []byte(s.sanitizer.Sanitize(text))
		originalFilename = textSnippetName
		contentType = "text/plain"
		kind = upload.KindText
	} else {
		if err := s.validateFile(file); err != nil {
			return nil, err
		}
		f, err := file.Open()
		if err != nil {
			return nil, fmt.Errorf("open multipart file: %w", err)
		}
		contentBytes, err = io.ReadAll(f)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("read multipart file: %w", err)
		}
		originalFilename = file.Filename
		contentType = file.Header.Get("Content-Type")
		kind = upload.KindFile
	}

	// The object key lives in its own random namespace: it must never
	// be derivable from the short id, or blobs become enumerable.
	objectKey := uuid.NewString()

	// Blob first, metadata second. A failure between the two leaves an
	// orphaned blob, never a record pointing at a missing blob.
	if err := s.store.Put(ctx, objectKey, bytes.NewReader(contentBytes), int64(len(contentBytes)), contentType); err != nil {
		return nil, fmt.Errorf("store blob: %w", err)
	}

	now := time.Now().UTC()
	rec := &upload.Record{
		ObjectKey:        objectKey,
		OriginalFilename: originalFilename,
		ContentType:      contentType,
		Kind:             kind,
		CreatedAt:        now,
		ExpiresAt:        now.Add(upload.TTL),
	}

	out, err := s.createWithFreshID(ctx, rec)
	if err != nil {
		return nil, err
	}

	if s.mCounter != nil {
		s.mCounter.WithLabelValues("uploads_created_total").Inc()
	}

	return &ports.UploadResult{
		ViewURL:   s.domain + "/view/" + out.ShortID,
		ExpiresAt: out.ExpiresAt,
	}, nil
}

// createWithFreshID inserts the record, regenerating the short id on a
// unique-constraint collision.
func (s *UploadService) createWithFreshID(ctx context.Context, rec *upload.Record) (*upload.Record, error) {
	for attempt := 0; attempt < maxShortIDAttempts; attempt++ {
		id, err := s.ids.Generate()
		if err != nil {
			return nil, err
		}
		rec.ShortID = id

		out, err := s.uploads.Create(ctx, rec)
		if errors.Is(err, upload.ErrShortIDTaken) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("persist upload record: %w", err)
		}
		return out, nil
	}

	return nil, fmt.Errorf("could not allocate a unique short id after %d attempts", maxShortIDAttempts)
}

func (s *UploadService) GetMetadata(ctx context.Context, shortID string) (*ports.Metadata, error) {
	rec, err := s.uploads.FetchByShortID(ctx, shortID)
	if err != nil {
		return nil, err
	}

	var textContent *string
	if rec.Kind == upload.KindText || strings.EqualFold(rec.ContentType, "text/markdown") {
		obj, err := s.store.Get(ctx, rec.ObjectKey)
		if err != nil {
			return nil, fmt.Errorf("fetch text blob: %w", err)
		}
		content := string(obj.Data)
		textContent = &content
	}

	return &ports.Metadata{
		ShortID:          rec.ShortID,
		OriginalFilename: rec.OriginalFilename,
		Kind:             rec.Kind,
		TextContent:      textContent,
		ExpiresAt:        rec.ExpiresAt,
	}, nil
}

// Download may race the expiry reaper: a lookup that loses returns
// ErrNotFound, one that wins but misses the already-deleted blob
// surfaces the store error. No locking is taken.
func (s *UploadService) Download(ctx context.Context, shortID string) (*ports.DownloadResult, error) {
	rec, err := s.uploads.FetchByShortID(ctx, shortID)
	if err != nil {
		return nil, err
	}

	obj, err := s.store.Get(ctx, rec.ObjectKey)
	if err != nil {
		return nil, fmt.Errorf("fetch blob: %w", err)
	}

	return &ports.DownloadResult{
		Data:          obj.Data,
		ContentType:   obj.ContentType,
		ContentLength: obj.Size,
		Filename:      rec.OriginalFilename,
	}, nil
}

func (s *UploadService) validateFile(file *multipart.FileHeader) error {
	if file.Size > maxFileBytes {
		return payloadTooLarge("File size must not exceed 25 MB.")
	}
	ext := fileExtension(file.Filename)
	if _, ok := s.allowedExts[ext]; !ok {
		return unsupportedMediaType("File type ." + ext + " is not allowed.")
	}
	return nil
}

// fileExtension returns the lowercased substring after the last dot,
// empty when the name has none.
func fileExtension(filename string) string {
	idx := strings.LastIndexByte(filename, '.')
	if idx == -1 {
		return ""
	}
	return strings.ToLower(filename[idx+1:])
}
