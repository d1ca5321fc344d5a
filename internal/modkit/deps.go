package modkit

import (
	"sktmorph/internal/platform/config"
	"sktmorph/internal/platform/logger"
	"sktmorph/internal/platform/store/pg"
)

// Deps holds the shared dependencies handed to every module
type Deps struct {
	Log *logger.Logger
	Cfg config.Conf

	// PG is nil when the analysis cache is disabled
	PG *pg.PG
}
