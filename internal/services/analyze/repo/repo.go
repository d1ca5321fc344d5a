// Package repo persists finished sentence analyses in Postgres, keyed by the
// request fingerprint
package repo

import (
	"context"
	"encoding/json"
	"errors"

	"sktmorph/internal/core/analysis"
	perr "sktmorph/internal/platform/errors"
	"sktmorph/internal/services/analyze/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Queryer is the slice of *pg.PG the cache needs
type Queryer interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Schema creates the cache table
const Schema = `CREATE TABLE IF NOT EXISTS analyses_cache (
	key        text PRIMARY KEY,
	status     text NOT NULL,
	payload    jsonb NOT NULL,
	created_at timestamptz NOT NULL DEFAULT now()
)`

// PG is a domain.CachePort over Postgres
type PG struct{ q Queryer }

var _ domain.CachePort = (*PG)(nil)

// NewPG binds the cache to q. It panics on a nil q
func NewPG(q Queryer) *PG {
	if q == nil {
		panic("repo: nil Queryer")
	}
	return &PG{q: q}
}

// EnsureSchema creates the cache table when missing
func (p *PG) EnsureSchema(ctx context.Context) error {
	if _, err := p.q.Exec(ctx, Schema); err != nil {
		return perr.FromPostgres(err, "create analyses_cache")
	}
	return nil
}

// Get implements domain.CachePort
func (p *PG) Get(ctx context.Context, key string) (analysis.Sentence, bool, error) {
	var raw []byte
	err := p.q.QueryRow(ctx, `SELECT payload FROM analyses_cache WHERE key = $1`, key).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return analysis.Sentence{}, false, nil
	}
	if err != nil {
		return analysis.Sentence{}, false, perr.FromPostgres(err, "read analyses_cache")
	}
	var s analysis.Sentence
	if err := json.Unmarshal(raw, &s); err != nil {
		return analysis.Sentence{}, false, perr.Wrap(err, perr.ErrorCodeJSON, "decode cached analysis")
	}
	return s, true, nil
}

// Put implements domain.CachePort. A later write for the same key wins
func (p *PG) Put(ctx context.Context, key string, s analysis.Sentence) error {
	raw, err := json.Marshal(s)
	if err != nil {
		return perr.Wrap(err, perr.ErrorCodeJSON, "encode analysis")
	}
	_, err = p.q.Exec(ctx, `INSERT INTO analyses_cache (key, status, payload)
		VALUES ($1, $2, $3)
		ON CONFLICT (key) DO UPDATE SET status = EXCLUDED.status, payload = EXCLUDED.payload, created_at = now()`,
		key, string(s.Status), raw)
	if err != nil {
		return perr.FromPostgres(err, "write analyses_cache")
	}
	return nil
}
