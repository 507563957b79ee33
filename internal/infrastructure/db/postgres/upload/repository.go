package upload

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	domain "fileshare-api/internal/domain/upload"
)

// DB is the subset of pgxpool.Pool the repository needs. Narrowed to
// an interface so tests can substitute pgxmock.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type Repository struct {
	db DB
}

func NewRepository(db DB) domain.Repository {
	return &Repository{db: db}
}

func (r *Repository) Create(ctx context.Context, req *domain.Record) (*domain.Record, error) {
	rec := new(Record)

	err := r.db.QueryRow(
		ctx,
		InsertUpload,
		req.ShortID, req.ObjectKey, req.OriginalFilename, req.ContentType, string(req.Kind), req.CreatedAt, req.ExpiresAt,
	).Scan(
		&rec.ID,
		&rec.ShortID,
		&rec.ObjectKey,
		&rec.OriginalFilename,
		&rec.ContentType,
		&rec.UploadKind,
		&rec.CreatedAt,
		&rec.ExpiresAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return nil, domain.ErrShortIDTaken
		}
		return nil, err
	}

	return fromDBModel(rec), nil
}

func (r *Repository) FetchByShortID(ctx context.Context, shortID string) (*domain.Record, error) {
	rec := new(Record)

	err := r.db.QueryRow(ctx, SelectUploadByShortID, shortID).Scan(
		&rec.ID,
		&rec.ShortID,
		&rec.ObjectKey,
		&rec.OriginalFilename,
		&rec.ContentType,
		&rec.UploadKind,
		&rec.CreatedAt,
		&rec.ExpiresAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	return fromDBModel(rec), nil
}

func (r *Repository) FetchExpired(ctx context.Context, cutoff time.Time) (domain.Records, error) {
	rows, err := r.db.Query(ctx, SelectExpiredUploads, cutoff)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var recs Records
	for rows.Next() {
		rec := new(Record)

		if err = rows.Scan(
			&rec.ID,
			&rec.ShortID,
			&rec.ObjectKey,
			&rec.OriginalFilename,
			&rec.ContentType,
			&rec.UploadKind,
			&rec.CreatedAt,
			&rec.ExpiresAt,
		); err != nil {
			return nil, err
		}

		recs = append(recs, rec)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return fromDBModels(recs), nil
}

func (r *Repository) DeleteByShortID(ctx context.Context, shortID string) error {
	_, err := r.db.Exec(ctx, DeleteUploadByShortID, shortID)
	return err
}
