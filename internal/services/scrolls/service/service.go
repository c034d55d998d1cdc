// Package service contains the scrolls ingestion workflows
package service

import (
	"context"
	"encoding/json"

	"scrollpress/internal/core/address"
	"scrollpress/internal/core/canonical"
	"scrollpress/internal/core/htmlsec"
	"scrollpress/internal/core/quality"
	"scrollpress/internal/modkit/repokit"
	perr "scrollpress/internal/platform/errors"
	"scrollpress/internal/platform/logger"
	"scrollpress/internal/services/scrolls/domain"
	"scrollpress/internal/services/scrolls/repo"

	"github.com/google/uuid"
)

// Service defines the service contract for scrolls
type Service interface{ domain.ServicePort }

// Svc implements the Service interface
type Svc struct {
	Repo   repo.Repo
	binder repokit.Binder[repo.Repo]
	db     repokit.TxRunner

	sec  *htmlsec.Validator
	qual *quality.Validator
}

// New creates a new scrolls service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo], qcfg quality.Config) *Svc {
	if db == nil {
		panic("scrolls.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("scrolls.Service requires a non nil Repo binder")
	}
	return &Svc{
		Repo:   binder.Bind(db),
		binder: binder,
		db:     db,
		sec:    htmlsec.New(),
		qual:   quality.New(qcfg),
	}
}

// validate runs the security gate then the quality gate over the raw
// document. The returned result carries every diagnostic produced; the
// security gate short-circuits quality because a hostile document is
// not worth profiling
func (s *Svc) validate(doc string) domain.IngestResult {
	out := s.sec.Validate(doc)
	if !out.Accepted {
		return domain.IngestResult{Security: out.Diagnostics}
	}

	ok, qdiags := s.qual.Validate(doc)
	res := domain.IngestResult{Accepted: ok, Quality: qdiags}
	if ok {
		m := quality.Compute(doc)
		res.Metrics = &m
	}
	return res
}

// Preview runs the full pipeline without persisting anything.
// Accepted previews include the content hash the document would store under
func (s *Svc) Preview(_ context.Context, in domain.IngestInput) (domain.IngestResult, error) {
	res := s.validate(in.HTML)
	if !res.Accepted {
		return res, nil
	}
	res.ContentHash = address.Hash(canonical.Canonicalize(in.HTML))
	return res, nil
}

// Ingest validates the document and stores its canonical form.
// Identical content resolves to the already stored scroll; a short id
// claimed by different content grows the prefix until it is unique
func (s *Svc) Ingest(ctx context.Context, in domain.IngestInput) (domain.IngestResult, error) {
	res := s.validate(in.HTML)
	if !res.Accepted {
		return res, nil
	}

	normalized := canonical.NormalizeLineEndings(in.HTML)
	archive := canonical.Package(normalized)

	metricsJSON, err := json.Marshal(res.Metrics)
	if err != nil {
		return domain.IngestResult{}, perr.Wrap(err, perr.ErrorCodeUnknown, "scrolls: encode metrics")
	}
	wordCount := res.Metrics.WordCount

	err = repokit.WithTx(ctx, s.db, func(q repokit.Queryer) error {
		r := s.binder.Bind(q)

		addr, err := address.Resolve(ctx, shortIDLookup{r: r}, archive)
		if err != nil {
			return err
		}
		res.ContentHash = addr.ContentHash
		res.ShortID = addr.ShortID
		res.Existing = addr.Existing
		if addr.Existing {
			return nil
		}

		return r.Insert(ctx, repo.RowScroll{
			ID:             uuid.NewString(),
			ShortID:        addr.ShortID,
			ContentHash:    addr.ContentHash,
			NormalizedHTML: normalized,
			WordCount:      wordCount,
			MetricsJSON:    metricsJSON,
		})
	})
	if err == nil {
		return res, nil
	}

	// two identical documents racing past the lookup both try to insert;
	// the loser lands here and resolves to the winner's row
	if perr.IsDuplicateKey(err) {
		row, rerr := s.Repo.ByContentHash(ctx, res.ContentHash)
		if rerr == nil {
			logger.C(ctx).Debug().Str("short_id", row.ShortID).Msg("scrolls: dedup after insert race")
			res.ShortID = row.ShortID
			res.Existing = true
			return res, nil
		}
		// different content won the short id between lookup and insert
		return domain.IngestResult{}, perr.Conflictf("scrolls: short id contention, retry")
	}
	return domain.IngestResult{}, err
}

// Get returns the stored scroll for a short id
func (s *Svc) Get(ctx context.Context, shortID string) (domain.Scroll, error) {
	row, err := s.Repo.ByShortID(ctx, shortID)
	if err != nil {
		return domain.Scroll{}, err
	}
	return toScroll(row)
}

// Archive re-derives the canonical tar archive from the stored
// normalized document. Archives are never stored; equal content always
// re-derives equal bytes
func (s *Svc) Archive(ctx context.Context, shortID string) ([]byte, error) {
	row, err := s.Repo.ByShortID(ctx, shortID)
	if err != nil {
		return nil, err
	}
	return canonical.Package(row.NormalizedHTML), nil
}

func toScroll(row repo.RowScroll) (domain.Scroll, error) {
	out := domain.Scroll{
		ID:          row.ID,
		ShortID:     row.ShortID,
		ContentHash: row.ContentHash,
		WordCount:   row.WordCount,
		CreatedAt:   row.CreatedAt,
	}
	if len(row.MetricsJSON) > 0 {
		var m quality.Metrics
		if err := json.Unmarshal(row.MetricsJSON, &m); err != nil {
			return domain.Scroll{}, perr.Wrap(err, perr.ErrorCodeUnknown, "scrolls: decode metrics")
		}
		out.Metrics = &m
	}
	return out, nil
}

// shortIDLookup adapts the repo to the address resolver's seam
type shortIDLookup struct{ r repo.Repo }

func (l shortIDLookup) FindByShortID(ctx context.Context, shortID string) (string, bool, error) {
	return l.r.ShortIDOwner(ctx, shortID)
}
