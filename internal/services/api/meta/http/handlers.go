// Package http provides meta endpoints
package http

import (
	stdctx "context"
	"net/http"
	"os"
	"runtime"
	"time"

	"sktmorph/internal/core/version"
	"sktmorph/internal/modkit/httpkit"
	perr "sktmorph/internal/platform/errors"
	"sktmorph/internal/services/analyze/domain"

	"github.com/shirou/gopsutil/v4/mem"
)

// Pinger is satisfied by adapters that expose Ping
type Pinger interface {
	Ping(stdctx.Context) error
}

// Deps are the handler dependencies
type Deps struct {
	ServiceName string
	StartedAt   time.Time
	EnginePath  string // segmenter binary; empty skips the check
	PG          Pinger // nil when the cache is disabled
}

type handlers struct {
	deps Deps
}

var virtualMemory = mem.VirtualMemory

// Register mounts the meta routes
func Register(r httpkit.Router, d Deps) {
	h := &handlers{deps: d}

	httpkit.Get(r, "/health", h.health)
	httpkit.Get(r, "/ready", h.ready)
	httpkit.Get(r, "/version", h.version)
	httpkit.Get(r, "/service", h.service)
	httpkit.Get(r, "/encodings", h.encodings)
}

//
// Swagger DTOs and route docs
//

// HealthResponse is the health payload
// swagger:model
type HealthResponse struct {
	OK      bool   `json:"ok"       example:"true"`
	Service string `json:"service"  example:"sktmorph-api"`
	Started string `json:"started"  example:"2026-10-01T13:00:00Z"`
	Now     string `json:"now"      example:"2026-10-01T13:05:00Z"`
}

// ReadyCheck describes a single dependency check
type ReadyCheck struct {
	Name   string `json:"name"   example:"engine"`
	Status string `json:"status" example:"ok"` // ok fail skipped
	Error  string `json:"error,omitempty" example:"stat ./interface2: no such file or directory"`
}

// ReadyResponse summarizes readiness
type ReadyResponse struct {
	Status string       `json:"status" example:"ok"` // ok degraded fail
	Checks []ReadyCheck `json:"checks"`
	Now    string       `json:"now"    example:"2026-10-01T13:05:00Z"`
}

// ServiceResponse describes service info and the host it runs on
type ServiceResponse struct {
	Name       string  `json:"name"        example:"sktmorph-api"`
	Started    string  `json:"started"     example:"2026-10-01T13:00:00Z"`
	Uptime     int64   `json:"uptime"      example:"300"`
	CPUs       int     `json:"cpus"        example:"8"`
	Goroutines int     `json:"goroutines"  example:"12"`
	MemUsedPct float64 `json:"mem_used_pct,omitempty" example:"41.5"`
}

// swagger:route GET /meta/health Meta metaHealth
// @Summary Health check
// @Tags Meta
// @Produce json
// @Success 200 {object} HealthResponse "ok"
// @Router /meta/health [get]
func (h *handlers) health(_ *http.Request) (any, error) {
	return HealthResponse{
		OK:      true,
		Service: h.deps.ServiceName,
		Started: h.deps.StartedAt.UTC().Format(time.RFC3339),
		Now:     time.Now().UTC().Format(time.RFC3339),
	}, nil
}

// swagger:route GET /meta/ready Meta metaReady
// @Summary Readiness probe: segmenter binary and cache database
// @Tags Meta
// @Produce json
// @Success 200 {object} ReadyResponse "ok"
// @Router /meta/ready [get]
func (h *handlers) ready(r *http.Request) (any, error) {
	ctx, cancel := stdctx.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	eng := h.checkEngine()
	pg := ReadyCheck{Name: "pg", Status: "skipped"}
	if h.deps.PG != nil {
		pg.Status = "ok"
		if err := h.deps.PG.Ping(ctx); err != nil {
			pg.Status, pg.Error = "fail", err.Error()
		}
	}

	overall := "ok"
	switch {
	case eng.Status == "fail":
		overall = "fail"
	case pg.Status == "fail":
		// analysis still works without the cache
		overall = "degraded"
	}

	return ReadyResponse{
		Status: overall,
		Checks: []ReadyCheck{eng, pg},
		Now:    time.Now().UTC().Format(time.RFC3339),
	}, nil
}

func (h *handlers) checkEngine() ReadyCheck {
	c := ReadyCheck{Name: "engine", Status: "skipped"}
	if h.deps.EnginePath == "" {
		return c
	}
	fi, err := os.Stat(h.deps.EnginePath)
	switch {
	case err != nil:
		c.Status, c.Error = "fail", err.Error()
	case fi.IsDir() || fi.Mode().Perm()&0o111 == 0:
		c.Status, c.Error = "fail", perr.Unavailablef("%s is not executable", h.deps.EnginePath).Error()
	default:
		c.Status = "ok"
	}
	return c
}

// swagger:route GET /meta/version Meta metaVersion
// @Summary Build and version info
// @Tags Meta
// @Produce json
// @Success 200 {object} version.BuildInfo "ok"
// @Router /meta/version [get]
func (h *handlers) version(_ *http.Request) (any, error) {
	return version.Info(h.deps.ServiceName), nil
}

// swagger:route GET /meta/service Meta metaService
// @Summary Service info, uptime and host load
// @Tags Meta
// @Produce json
// @Success 200 {object} ServiceResponse "ok"
// @Router /meta/service [get]
func (h *handlers) service(_ *http.Request) (any, error) {
	out := ServiceResponse{
		Name:       h.deps.ServiceName,
		Started:    h.deps.StartedAt.UTC().Format(time.RFC3339),
		Uptime:     int64(time.Since(h.deps.StartedAt) / time.Second),
		CPUs:       runtime.NumCPU(),
		Goroutines: runtime.NumGoroutine(),
	}
	if vm, err := virtualMemory(); err == nil {
		out.MemUsedPct = vm.UsedPercent
	}
	return out, nil
}

// swagger:route GET /meta/encodings Meta metaEncodings
// @Summary Accepted encodings and option values
// @Tags Meta
// @Produce json
// @Success 200 {object} domain.Encodings "ok"
// @Router /meta/encodings [get]
func (h *handlers) encodings(_ *http.Request) (any, error) {
	return domain.KnownEncodings(), nil
}
