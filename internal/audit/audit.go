// Package audit keeps a Postgres log of generated reports.
//
// Recording is best effort: a Repository without a database, or a failed
// insert, never fails the generation it describes.
package audit

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4/pgxpool"

	talentpdf "github.com/Leo-HM-04/FrontEnd-Reclutamiento-sub002"
	"github.com/Leo-HM-04/FrontEnd-Reclutamiento-sub002/report"
)

// Execer is the part of *pgxpool.Pool the repository uses.
type Execer interface {
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
}

// Entry is one generation attempt.
type Entry struct {
	ID        uuid.UUID
	RequestID string
	Kind      talentpdf.Kind
	Filename  string
	Pages     int
	Bytes     int
	Reference string
	Duration  time.Duration
	Err       string
	CreatedAt time.Time
}

// NewEntry describes a finished generation. art may be nil when err is set.
func NewEntry(requestID string, kind talentpdf.Kind, art *report.Artifact, took time.Duration, err error) Entry {
	e := Entry{
		ID:        uuid.New(),
		RequestID: requestID,
		Kind:      kind,
		Duration:  took,
		CreatedAt: time.Now().UTC(),
	}
	if art != nil {
		e.Filename = art.Filename
		e.Pages = art.Pages
		e.Bytes = len(art.Data)
		e.Reference = art.Reference
	}
	if err != nil {
		e.Err = err.Error()
	}
	return e
}

// Repository writes entries to the report_audit table.
type Repository struct {
	db   Execer
	pool *pgxpool.Pool
	log  *slog.Logger
}

// New wraps db. A nil db yields a repository that records nothing.
func New(db Execer, log *slog.Logger) *Repository {
	if log == nil {
		log = slog.Default()
	}
	return &Repository{db: db, log: log}
}

// Open connects to dsn and runs the migrations. An empty dsn returns a
// no-op repository.
func Open(ctx context.Context, dsn string, log *slog.Logger) (*Repository, error) {
	if dsn == "" {
		return New(nil, log), nil
	}
	pool, err := pgxpool.Connect(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("audit: connect: %w", err)
	}
	r := New(pool, log)
	r.pool = pool
	if err := r.Migrate(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return r, nil
}

// Enabled reports whether entries reach a database.
func (r *Repository) Enabled() bool {
	return r != nil && r.db != nil
}

// Close releases the pool opened by Open.
func (r *Repository) Close() {
	if r != nil && r.pool != nil {
		r.pool.Close()
	}
}

const insertEntry = `INSERT INTO report_audit
	(id, request_id, kind, filename, pages, bytes, reference, duration_ms, error, created_at)
	VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)`

// Record stores e. Failures are logged and returned so callers may ignore them.
func (r *Repository) Record(ctx context.Context, e Entry) error {
	if !r.Enabled() {
		return nil
	}
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}

	var errText *string
	if e.Err != "" {
		errText = &e.Err
	}
	_, err := r.db.Exec(ctx, insertEntry,
		e.ID, e.RequestID, string(e.Kind), e.Filename, e.Pages, e.Bytes,
		e.Reference, e.Duration.Milliseconds(), errText, e.CreatedAt)
	if err != nil {
		r.log.Warn("audit: record failed", "id", e.ID, "kind", e.Kind, "err", err)
		return fmt.Errorf("audit: record %s: %w", e.ID, err)
	}
	return nil
}
