package module

import (
	"context"

	"sktmorph/internal/platform/config"
	"sktmorph/internal/platform/logger"
	"sktmorph/internal/platform/store/pg"
	"sktmorph/internal/services/analyze/repo"
)

// OpenCache opens the analysis cache database named by CORE_CACHE_PGSQL_DBURL
// and applies its schema. It returns nil, nil when no URL is set
func OpenCache(ctx context.Context, cfg config.Conf) (*pg.PG, error) {
	c := cfg.Prefix("CORE_CACHE_PGSQL_")
	url := c.MayString("DBURL", "")
	if url == "" {
		return nil, nil
	}

	var tracer pg.QueryTracer
	if c.MayBool("LOG_SQL", false) {
		tracer = pg.Tracer(*logger.Named("cache"))
	}
	db, err := pg.Open(ctx, pg.Config{
		URL:      url,
		MaxConns: int32(c.MayInt("MAX_CONNS", 4)),
		SlowMs:   c.MayInt("SLOW_MS", 500),
		LogSQL:   tracer != nil,
	}, tracer, nil)
	if err != nil {
		return nil, err
	}
	if err := repo.NewPG(db).EnsureSchema(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}
