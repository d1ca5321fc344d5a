package module

import (
	"sktmorph/internal/core/engine"
	"sktmorph/internal/platform/config"
)

// Options holds configuration settings for the analyze module
type Options struct {
	Engine        engine.Config
	Workers       int
	ProgressEvery int
	NoCache       bool
}

// FromConfig extracts Options from the given config.Conf. The engine timeout
// is not configurable from the environment
func FromConfig(cfg config.Conf) Options {
	ec := cfg.Prefix("CORE_ENGINE_")
	bc := cfg.Prefix("CORE_BATCH_")
	return Options{
		Engine: engine.Config{
			Path:    ec.MayString("PATH", "./interface2"),
			Dir:     ec.MayString("DIR", ""),
			Timeout: engine.DefaultTimeout,
			Lexicon: ec.MayEnum("LEXICON", "MW", "MW", "SH"),
			Unit:    ec.MayString("UNIT", "f"),
			Stemmer: ec.MayEnum("STEMMER", "t", "t", "f"),
		},
		Workers:       bc.MayInt("WORKERS", 0),
		ProgressEvery: bc.MayInt("PROGRESS_EVERY", 100),
		NoCache:       cfg.Prefix("CORE_CACHE_").MayBool("DISABLED", false),
	}
}
