package domain

import (
	"context"

	"sktmorph/internal/core/analysis"
	"sktmorph/internal/core/engine"
	"sktmorph/internal/core/translit"
)

// EnginePort runs the segmenter on one clause
type EnginePort interface {
	Invoke(ctx context.Context, text string, enc translit.Scheme, p engine.Params) engine.Outcome
	Config() engine.Config
}

// CachePort stores finished sentence analyses. Implementations may be slow or
// down; callers treat every error as a miss
type CachePort interface {
	Get(ctx context.Context, key string) (analysis.Sentence, bool, error)
	Put(ctx context.Context, key string, s analysis.Sentence) error
}

// AnalyzerPort is the analysis surface shared by the CLI and the HTTP API
type AnalyzerPort interface {
	Analyze(ctx context.Context, text string, p Resolved) analysis.Sentence
	AnalyzeBatch(ctx context.Context, sentences []string, p Resolved, parallel bool) ([]analysis.Sentence, error)
}
