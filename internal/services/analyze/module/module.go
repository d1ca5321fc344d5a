// Package module implements the analyze module
package module

import (
	"sktmorph/internal/core/engine"
	"sktmorph/internal/modkit"
	phttp "sktmorph/internal/platform/net/http"
	"sktmorph/internal/services/analyze/domain"
	analyzehttp "sktmorph/internal/services/analyze/http"
	"sktmorph/internal/services/analyze/repo"
	"sktmorph/internal/services/analyze/service"
)

// Ports exposed by the analyze module
type Ports struct {
	Analyzer domain.AnalyzerPort
	Engine   domain.EnginePort
}

// Module implements modkit.Module
type Module struct {
	built modkit.Built
	ports Ports
}

// New constructs the analyze module. overrides wins over env for any non-zero
// field. The Postgres cache is used when deps.PG is set
func New(deps modkit.Deps, overrides Options, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("analyze"),
	}, opts...)...)

	cfg := merge(FromConfig(deps.Cfg), overrides)

	eng := engine.New(cfg.Engine)
	var cache domain.CachePort
	if deps.PG != nil && !cfg.NoCache {
		cache = repo.NewPG(deps.PG)
	}
	svc := service.New(eng, cache, service.Config{
		Workers:       cfg.Workers,
		ProgressEvery: cfg.ProgressEvery,
	})

	if deps.Log != nil {
		deps.Log.Info().
			Str("engine", eng.Config().Path).
			Str("timeout", eng.Config().TimeoutLabel()).
			Bool("cache", cache != nil).
			Msg("analyze module ready")
	}

	return &Module{built: b, ports: Ports{Analyzer: svc, Engine: eng}}
}

func merge(cfg, o Options) Options {
	e, oe := &cfg.Engine, o.Engine
	if oe.Path != "" {
		e.Path = oe.Path
	}
	if oe.Dir != "" {
		e.Dir = oe.Dir
	}
	if oe.Timeout != 0 {
		e.Timeout = oe.Timeout
	}
	if oe.Lexicon != "" {
		e.Lexicon = oe.Lexicon
	}
	if oe.Unit != "" {
		e.Unit = oe.Unit
	}
	if oe.Stemmer != "" {
		e.Stemmer = oe.Stemmer
	}
	if oe.Grace != 0 {
		e.Grace = oe.Grace
	}
	if o.Workers != 0 {
		cfg.Workers = o.Workers
	}
	if o.ProgressEvery != 0 {
		cfg.ProgressEvery = o.ProgressEvery
	}
	cfg.NoCache = cfg.NoCache || o.NoCache
	return cfg
}

// Name satisfies modkit.Module
func (m *Module) Name() string { return m.built.Name }

// Ports satisfies modkit.Module
func (m *Module) Ports() any { return m.ports }

// MountRoutes satisfies modkit.Module
func (m *Module) MountRoutes(r phttp.Router) {
	m.built.Mount(r, func(sub phttp.Router) {
		analyzehttp.Register(sub, m.ports.Analyzer)
	})
}
