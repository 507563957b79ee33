package upload

import (
	"time"
)

// Kind distinguishes raw file uploads from pasted text snippets.
type Kind string

const (
	KindFile Kind = "FILE"
	KindText Kind = "TEXT"
)

// TTL is the lifetime of every upload, fixed at creation.
const TTL = 24 * time.Hour

type (
	Record struct {
		ShortID string
		// ObjectKey locates the blob in the object store. It lives in
		// its own random namespace and is never exposed to clients.
		ObjectKey        string
		OriginalFilename string
		ContentType      string
		Kind             Kind

		CreatedAt time.Time
		ExpiresAt time.Time
	}
	Records []*Record
)
