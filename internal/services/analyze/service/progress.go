package service

import (
	"context"
	"sync/atomic"

	"sktmorph/internal/platform/logger"
)

// progress logs every n completed items
type progress struct {
	total int
	every int
	done  atomic.Int64
}

func newProgress(total, every int) *progress { return &progress{total: total, every: every} }

func (p *progress) tick(ctx context.Context) {
	n := p.done.Add(1)
	if p.every <= 0 || n%int64(p.every) != 0 {
		return
	}
	logger.C(ctx).Info().Int64("done", n).Int("total", p.total).Msg("batch progress")
}
