// @title         sktmorph API
// @version       1.0
// @description   Sanskrit segmentation and morphological analysis

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"sktmorph/internal/platform/config"
	"sktmorph/internal/platform/logger"
	phttp "sktmorph/internal/platform/net/http"

	"sktmorph/internal/services/analyze/module"
	"sktmorph/internal/services/api"
)

func main() {
	logger.Init(logger.FromEnv())
	l := logger.Get()

	root := config.New()
	apiCfg := root.Prefix("CORE_")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// optional result cache (CORE_CACHE_PGSQL_*)
	db, err := module.OpenCache(ctx, root)
	if err != nil {
		l.Warn().Err(err).Msg("analysis cache unavailable; serving without it")
	}
	if db != nil {
		defer db.Close()
	}

	// http server (reads CORE_API_PORT)
	srv := phttp.NewServer(apiCfg)

	api.Mount(srv.Router(), api.Options{
		Config:         root,
		PG:             db,
		Logger:         l,
		EnableSwagger:  apiCfg.MayBool("API_SWAGGER", true),
		EnableProfiler: apiCfg.MayBool("API_PROFILER", false),
	})

	if err := srv.Run(ctx); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
}
