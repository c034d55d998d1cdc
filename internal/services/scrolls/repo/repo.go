// Package repo provides postgres access for scrolls
package repo

import (
	"context"
	"errors"

	"scrollpress/internal/modkit/repokit"
	perr "scrollpress/internal/platform/errors"
	"scrollpress/internal/platform/store"
)

// Repo defines the repository contract for scrolls
type Repo interface {
	// ShortIDOwner returns the content hash owning shortID, ok=false when unclaimed
	ShortIDOwner(ctx context.Context, shortID string) (string, bool, error)
	ByShortID(ctx context.Context, shortID string) (RowScroll, error)
	ByContentHash(ctx context.Context, contentHash string) (RowScroll, error)
	Insert(ctx context.Context, row RowScroll) error
}

// RowScroll represents a scroll row from the database
type RowScroll struct {
	ID             string
	ShortID        string
	ContentHash    string
	NormalizedHTML string
	WordCount      int
	MetricsJSON    []byte
	CreatedAt      string
}

type (
	// PG implements the Repo interface using Postgres
	PG struct{}

	// queries holds the database query methods
	queries struct{ q repokit.Queryer }
)

// NewPG creates a new Postgres repository binder
func NewPG() repokit.Binder[Repo] { return PG{} }

// Bind binds a Postgres queryer to the Repo implementation
func (PG) Bind(q repokit.Queryer) Repo { return &queries{q: q} }

const scrollColumns = `id::text, short_id, content_hash, normalized_html, word_count, metrics, created_at::text`

func (r *queries) ShortIDOwner(ctx context.Context, shortID string) (string, bool, error) {
	const sql = `select content_hash from scrolls where short_id = $1`
	hash, err := store.Scalar[string](ctx, r.q, sql, shortID)
	if errors.Is(err, perr.ErrNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return hash, true, nil
}

func (r *queries) ByShortID(ctx context.Context, shortID string) (RowScroll, error) {
	const sql = `select ` + scrollColumns + ` from scrolls where short_id = $1`
	return store.One(ctx, r.q, scanScroll, sql, shortID)
}

func (r *queries) ByContentHash(ctx context.Context, contentHash string) (RowScroll, error) {
	const sql = `select ` + scrollColumns + ` from scrolls where content_hash = $1`
	return store.One(ctx, r.q, scanScroll, sql, contentHash)
}

func (r *queries) Insert(ctx context.Context, row RowScroll) error {
	const sql = `
insert into scrolls (id, short_id, content_hash, normalized_html, word_count, metrics)
values ($1, $2, $3, $4, $5, $6)
`
	err := store.ExecOne(ctx, r.q, sql,
		row.ID,
		row.ShortID,
		row.ContentHash,
		row.NormalizedHTML,
		row.WordCount,
		row.MetricsJSON,
	)
	return perr.AttachFieldFromPg(perr.FromPostgresf(err, "scrolls: insert %s", row.ShortID))
}

func scanScroll(r store.Row) (RowScroll, error) {
	var row RowScroll
	err := r.Scan(
		&row.ID,
		&row.ShortID,
		&row.ContentHash,
		&row.NormalizedHTML,
		&row.WordCount,
		&row.MetricsJSON,
		&row.CreatedAt,
	)
	return row, err
}
