// Package service runs the sentence pipeline: sanitize, convert, split,
// segment each clause, interpret and merge
package service

import (
	"context"
	"runtime"
	"strings"
	"time"

	"sktmorph/internal/core/analysis"
	"sktmorph/internal/core/clause"
	"sktmorph/internal/core/engine"
	"sktmorph/internal/core/result"
	"sktmorph/internal/core/sanitize"
	"sktmorph/internal/core/script"
	"sktmorph/internal/platform/logger"
	"sktmorph/internal/services/analyze/domain"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// Config for the analyze service
type Config struct {
	Workers       int // parallel batch chunks, NumCPU when zero
	ProgressEvery int // batch progress log interval, 0 disables
}

// Service implements domain.AnalyzerPort
type Service struct {
	Engine domain.EnginePort
	Cache  domain.CachePort // optional
	Cfg    Config
}

var _ domain.AnalyzerPort = (*Service)(nil)

// New constructs the service. cache may be nil
func New(eng domain.EnginePort, cache domain.CachePort, cfg Config) *Service {
	if cfg.Workers <= 0 {
		cfg.Workers = runtime.NumCPU()
	}
	if cfg.ProgressEvery < 0 {
		cfg.ProgressEvery = 0
	}
	return &Service{Engine: eng, Cache: cache, Cfg: cfg}
}

// Analyze returns the merged analysis of one sentence. It never fails: every
// problem is reported in the status and error fields
func (s *Service) Analyze(ctx context.Context, text string, p domain.Resolved) analysis.Sentence {
	log := logger.C(ctx)
	text = strings.TrimSpace(text)

	key := ""
	if s.Cache != nil {
		key = domain.CacheKey(p, s.Engine.Config(), text)
		got, ok, err := s.Cache.Get(ctx, key)
		switch {
		case err != nil:
			log.Warn().Err(err).Msg("analysis cache read failed")
		case ok:
			log.Debug().Str("key", key).Msg("analysis cache hit")
			return got
		}
	}

	sent, cacheable := s.analyze(ctx, text, p)

	if s.Cache != nil && cacheable {
		if err := s.Cache.Put(ctx, key, sent); err != nil {
			log.Warn().Err(err).Msg("analysis cache write failed")
		}
	}
	return sent
}

// analyze reports whether every clause ended in a stable classification
func (s *Service) analyze(ctx context.Context, text string, p domain.Resolved) (analysis.Sentence, bool) {
	cfg := s.Engine.Config()
	cleaned := sanitize.Clean(text, p.Input)
	rejected := script.Mismatch(cleaned, p.Input)
	internal, tag := script.ToInternal(cleaned, p.Input)

	parts := clause.Split(internal, tag)
	clauses := make([]analysis.Clause, 0, len(parts))
	cacheable := len(parts) > 0
	for _, part := range parts {
		out := engine.Outcome{Status: engine.StatusRejected}
		if !rejected {
			out = s.Engine.Invoke(ctx, part, tag, p.EngineParams())
		}
		// the segmenter answers in WX whatever scheme it was sent
		c := result.Interpret(result.Input{
			Outcome:      out,
			Clause:       script.ToDisplay(part, tag, p.Display),
			Encoding:     script.Internal,
			Display:      p.Display,
			TextType:     p.TextType,
			TimeoutLabel: cfg.TimeoutLabel(),
		})
		cacheable = cacheable && c.Status.Cacheable()
		clauses = append(clauses, c)
	}
	return clause.Merge(clauses, p.Display), cacheable
}

// AnalyzeBatch analyses sentences in input order. Sequential mode handles one
// sentence at a time; parallel mode cuts the list into contiguous chunks, one
// per worker, and reassembles the chunks by their start offset. The error is
// the context error when the batch was cut short
func (s *Service) AnalyzeBatch(ctx context.Context, sentences []string, p domain.Resolved, parallel bool) ([]analysis.Sentence, error) {
	ctx = logger.WithBatch(ctx, uuid.NewString())
	log := logger.C(ctx)
	start := time.Now()

	out := make([]analysis.Sentence, len(sentences))
	prog := newProgress(len(sentences), s.Cfg.ProgressEvery)

	var err error
	if parallel && len(sentences) > 1 {
		err = s.runChunks(ctx, sentences, p, out, prog)
	} else {
		for i, text := range sentences {
			if err = ctx.Err(); err != nil {
				break
			}
			out[i] = s.Analyze(logger.WithLine(ctx, i+1), text, p)
			prog.tick(ctx)
		}
	}

	log.Info().
		Int("sentences", len(sentences)).
		Bool("parallel", parallel).
		Dur("elapsed", time.Since(start)).
		Msg("batch finished")
	return out, err
}

type chunkResult struct {
	start int
	items []analysis.Sentence
}

func (s *Service) runChunks(ctx context.Context, sentences []string, p domain.Resolved, out []analysis.Sentence, prog *progress) error {
	bounds := Chunks(len(sentences), s.Cfg.Workers)
	done := make(chan chunkResult, len(bounds))

	g, gctx := errgroup.WithContext(ctx)
	for _, b := range bounds {
		g.Go(func() error {
			items := make([]analysis.Sentence, 0, b[1]-b[0])
			for i := b[0]; i < b[1]; i++ {
				if err := gctx.Err(); err != nil {
					return err
				}
				items = append(items, s.Analyze(logger.WithLine(gctx, i+1), sentences[i], p))
				prog.tick(gctx)
			}
			done <- chunkResult{start: b[0], items: items}
			return nil
		})
	}
	err := g.Wait()
	close(done)
	for cr := range done {
		copy(out[cr.start:], cr.items)
	}
	return err
}

// Chunks splits n items into at most workers contiguous [start, end) ranges
func Chunks(n, workers int) [][2]int {
	if n <= 0 {
		return nil
	}
	if workers <= 0 {
		workers = 1
	}
	size := (n + workers - 1) / workers
	out := make([][2]int, 0, workers)
	for start := 0; start < n; start += size {
		end := start + size
		if end > n {
			end = n
		}
		out = append(out, [2]int{start, end})
	}
	return out
}
