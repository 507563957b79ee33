package upload

const (
	InsertUpload = `
		INSERT INTO uploads (short_id, object_key, original_filename, content_type, upload_kind, created_at, expires_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING
		  id, short_id, object_key, original_filename, content_type, upload_kind, created_at, expires_at
	`
	SelectUploadByShortID = `
		SELECT id, short_id, object_key, original_filename, content_type, upload_kind, created_at, expires_at
		FROM uploads
		WHERE short_id = $1
	`
	SelectExpiredUploads = `
		SELECT id, short_id, object_key, original_filename, content_type, upload_kind, created_at, expires_at
		FROM uploads
		WHERE expires_at < $1
	`
	DeleteUploadByShortID = `
		DELETE FROM uploads
		WHERE short_id = $1
	`
)
