package upload

import (
	"time"
)

type (
	Record struct {
		ID uint64

		ShortID          string
		ObjectKey        string
		OriginalFilename string
		ContentType      string
		UploadKind       string

		CreatedAt time.Time
		ExpiresAt time.Time
	}
	Records []*Record
)
