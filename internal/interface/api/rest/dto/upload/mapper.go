package upload

import (
	"fileshare-api/internal/application/ports"
)

func ToUploadResponse(res ports.UploadResult) UploadResponse {
	return UploadResponse{
		ViewURL:   res.ViewURL,
		ExpiresAt: res.ExpiresAt,
	}
}

func ToMetadataResponse(meta ports.Metadata) MetadataResponse {
	return MetadataResponse{
		ShortID:          meta.ShortID,
		OriginalFilename: meta.OriginalFilename,
		UploadType:       string(meta.Kind),
		TextContent:      meta.TextContent,
		ExpiresAt:        meta.ExpiresAt,
	}
}
