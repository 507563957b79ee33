package upload

import (
	"time"
)

type (
	UploadResponse struct {
		ViewURL   string    `json:"viewUrl"`
		ExpiresAt time.Time `json:"expiresAt"`
	}

	MetadataResponse struct {
		ShortID          string    `json:"shortId"`
		OriginalFilename string    `json:"originalFilename"`
		UploadType       string    `json:"uploadType"`
		TextContent      *string   `json:"textContent,omitempty"`
		ExpiresAt        time.Time `json:"expiresAt"`
	}
)
