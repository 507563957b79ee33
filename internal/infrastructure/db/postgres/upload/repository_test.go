package upload

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "fileshare-api/internal/domain/upload"
)

func newMock(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock
}

func uploadColumns() []string {
	return []string{"id", "short_id", "object_key", "original_filename", "content_type", "upload_kind", "created_at", "expires_at"}
}

func TestRepository_Create(t *testing.T) {
	mock := newMock(t)
	repo := NewRepository(mock)

	now := time.Now().UTC()
	expires := now.Add(24 * time.Hour)

	req := &domain.Record{
		ShortID:          "abc12345",
		ObjectKey:        "7d7e7f80-0000-0000-0000-000000000001",
		OriginalFilename: "pic.jpg",
		ContentType:      "image/jpeg",
		Kind:             domain.KindFile,
		CreatedAt:        now,
		ExpiresAt:        expires,
	}

	mock.ExpectQuery(regexp.QuoteMeta(InsertUpload)).
		WithArgs(req.ShortID, req.ObjectKey, req.OriginalFilename, req.ContentType, "FILE", now, expires).
		WillReturnRows(pgxmock.NewRows(uploadColumns()).
			AddRow(uint64(1), req.ShortID, req.ObjectKey, req.OriginalFilename, req.ContentType, "FILE", now, expires))

	out, err := repo.Create(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, req.ShortID, out.ShortID)
	assert.Equal(t, req.ObjectKey, out.ObjectKey)
	assert.Equal(t, domain.KindFile, out.Kind)
	assert.Equal(t, expires, out.ExpiresAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Create_ShortIDCollision(t *testing.T) {
	mock := newMock(t)
	repo := NewRepository(mock)

	mock.ExpectQuery(regexp.QuoteMeta(InsertUpload)).
		WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnError(&pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "uploads_short_id_key"})

	_, err := repo.Create(context.Background(), &domain.Record{ShortID: "abc12345", Kind: domain.KindText})
	assert.ErrorIs(t, err, domain.ErrShortIDTaken)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_FetchByShortID(t *testing.T) {
	mock := newMock(t)
	repo := NewRepository(mock)

	now := time.Now().UTC()

	mock.ExpectQuery(regexp.QuoteMeta(SelectUploadByShortID)).
		WithArgs("abc12345").
		WillReturnRows(pgxmock.NewRows(uploadColumns()).
			AddRow(uint64(7), "abc12345", "obj-key", "Text Snippet", "text/plain", "TEXT", now, now.Add(24*time.Hour)))

	rec, err := repo.FetchByShortID(context.Background(), "abc12345")
	require.NoError(t, err)

	assert.Equal(t, "abc12345", rec.ShortID)
	assert.Equal(t, "obj-key", rec.ObjectKey)
	assert.Equal(t, domain.KindText, rec.Kind)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_FetchByShortID_NotFound(t *testing.T) {
	mock := newMock(t)
	repo := NewRepository(mock)

	mock.ExpectQuery(regexp.QuoteMeta(SelectUploadByShortID)).
		WithArgs("missing1").
		WillReturnRows(pgxmock.NewRows(uploadColumns()))

	_, err := repo.FetchByShortID(context.Background(), "missing1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_FetchExpired(t *testing.T) {
	mock := newMock(t)
	repo := NewRepository(mock)

	cutoff := time.Now().UTC()
	created := cutoff.Add(-25 * time.Hour)
	expired := cutoff.Add(-time.Hour)

	mock.ExpectQuery(regexp.QuoteMeta(SelectExpiredUploads)).
		WithArgs(cutoff).
		WillReturnRows(pgxmock.NewRows(uploadColumns()).
			AddRow(uint64(1), "aaaa1111", "key-a", "a.png", "image/png", "FILE", created, expired).
			AddRow(uint64(2), "bbbb2222", "key-b", "Text Snippet", "text/plain", "TEXT", created, expired))

	recs, err := repo.FetchExpired(context.Background(), cutoff)
	require.NoError(t, err)

	require.Len(t, recs, 2)
	assert.Equal(t, "aaaa1111", recs[0].ShortID)
	assert.Equal(t, "key-b", recs[1].ObjectKey)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_FetchExpired_Empty(t *testing.T) {
	mock := newMock(t)
	repo := NewRepository(mock)

	mock.ExpectQuery(regexp.QuoteMeta(SelectExpiredUploads)).
		WithArgs(pgxmock.AnyArg()).
		WillReturnRows(pgxmock.NewRows(uploadColumns()))

	recs, err := repo.FetchExpired(context.Background(), time.Now().UTC())
	require.NoError(t, err)
	assert.Empty(t, recs)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_DeleteByShortID(t *testing.T) {
	mock := newMock(t)
	repo := NewRepository(mock)

	mock.ExpectExec(regexp.QuoteMeta(DeleteUploadByShortID)).
		WithArgs("abc12345").
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	err := repo.DeleteByShortID(context.Background(), "abc12345")
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
