// Package http provides http transport for analyze
package http

import (
	stdhttp "net/http"

	"sktmorph/internal/modkit/httpkit"
	"sktmorph/internal/services/analyze/domain"
)

// Register mounts the analyze routes
func Register(r httpkit.Router, s domain.AnalyzerPort) {
	h := &handlers{svc: s}
	httpkit.Post[domain.AnalyzeInput](r, "/analyze", h.analyze)
	httpkit.Post[domain.BatchInput](r, "/analyze/batch", h.batch)
}

type handlers struct{ svc domain.AnalyzerPort }

// swagger:route POST /analyze Analyze analyze
// @Summary Segment and analyse one sentence
// @Tags analyze
// @Accept json
// @Produce json
// @Param payload body domain.AnalyzeInput true "Sentence"
// @Success 200 {object} analysis.Sentence "ok"
// @Failure 400 {object} httpkit.Envelope "bad request"
// @Router /analyze [post]
func (h *handlers) analyze(r *stdhttp.Request, in domain.AnalyzeInput) (any, error) {
	p, err := in.Resolve()
	if err != nil {
		return nil, err
	}
	return h.svc.Analyze(r.Context(), in.Text, p), nil
}

// swagger:route POST /analyze/batch Analyze analyzeBatch
// @Summary Analyse many sentences, optionally in parallel
// @Tags analyze
// @Accept json
// @Produce json
// @Param payload body domain.BatchInput true "Sentences"
// @Success 200 {array} analysis.Sentence "ok"
// @Failure 400 {object} httpkit.Envelope "bad request"
// @Router /analyze/batch [post]
func (h *handlers) batch(r *stdhttp.Request, in domain.BatchInput) (any, error) {
	p, err := in.Resolve()
	if err != nil {
		return nil, err
	}
	return h.svc.AnalyzeBatch(r.Context(), in.Sentences, p, in.Parallel)
}
