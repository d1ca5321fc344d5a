// Package pg opens a pgxpool-backed Postgres client with ping-on-open and optional query tracing
package pg

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Config configures the pool and open-time guardrails
type Config struct {
	URL      string
	MaxConns int32
	SlowMs   int
	LogSQL   bool

	// PingAttempts bounds the readiness loop; 0 means 5
	PingAttempts int
	PingTimeout  time.Duration
}

// PG is a pool plus an optional tracer. Exec and QueryRow emit trace events
type PG struct {
	Pool   *pgxpool.Pool
	Tracer QueryTracer
	SlowMs int
}

var (
	newPool = pgxpool.NewWithConfig
	sleep   = time.Sleep
)

// Open parses cfg.URL, builds the pool and pings it with capped exponential
// backoff. The pool is closed again when no ping succeeds
func Open(ctx context.Context, cfg Config, tracer QueryTracer, poolCfgMut func(*pgxpool.Config)) (*PG, error) {
	pcfg, err := pgxpool.ParseConfig(cfg.URL)
	if err != nil {
		return nil, err
	}
	if cfg.MaxConns > 0 {
		pcfg.MaxConns = cfg.MaxConns
	}
	if poolCfgMut != nil {
		poolCfgMut(pcfg)
	}
	pool, err := newPool(ctx, pcfg)
	if err != nil {
		return nil, err
	}

	attempts := cfg.PingAttempts
	if attempts <= 0 {
		attempts = 5
	}
	pingTimeout := cfg.PingTimeout
	if pingTimeout <= 0 {
		pingTimeout = 3 * time.Second
	}

	backoff := 150 * time.Millisecond
	var lastErr error
	for i := 0; i < attempts; i++ {
		pctx, cancel := context.WithTimeout(ctx, pingTimeout)
		lastErr = pool.Ping(pctx)
		cancel()
		if lastErr == nil {
			return &PG{Pool: pool, Tracer: tracer, SlowMs: cfg.SlowMs}, nil
		}
		if ctx.Err() != nil {
			pool.Close()
			return nil, ctx.Err()
		}
		if i < attempts-1 {
			sleep(backoff)
			backoff = min(backoff*2, 2*time.Second)
		}
	}
	pool.Close()
	return nil, fmt.Errorf("postgres ping failed after %d attempts: %w", attempts, lastErr)
}

// Close closes the pool
func (p *PG) Close() {
	if p != nil && p.Pool != nil {
		p.Pool.Close()
	}
}

// Ping checks the pool is reachable
func (p *PG) Ping(ctx context.Context) error { return p.Pool.Ping(ctx) }

// Exec runs a statement and traces it
func (p *PG) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	start := time.Now()
	ct, err := p.Pool.Exec(ctx, sql, args...)
	p.emit(ctx, sql, args, start, err)
	return ct, err
}

// QueryRow runs a single-row query; the trace event fires once Scan returns
func (p *PG) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	start := time.Now()
	return tracedRow{
		r: p.Pool.QueryRow(ctx, sql, args...),
		after: func(err error) {
			p.emit(ctx, sql, args, start, err)
		},
	}
}

func (p *PG) emit(ctx context.Context, sql string, args []any, start time.Time, err error) {
	if p == nil || p.Tracer == nil {
		return
	}
	us := time.Since(start).Microseconds()
	p.Tracer.OnQuery(ctx, QueryEvent{
		SQL:       sql,
		Args:      args,
		ElapsedUS: us,
		Err:       err,
		Slow:      p.SlowMs >= 0 && us >= int64(p.SlowMs)*1000,
	})
}

type tracedRow struct {
	r     pgx.Row
	after func(error)
}

func (x tracedRow) Scan(dst ...any) error {
	err := x.r.Scan(dst...)
	x.after(err)
	return err
}
