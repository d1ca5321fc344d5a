// Package module wires meta endpoints into the API using a tiny module
package module

import (
	"time"

	modkit "sktmorph/internal/modkit"
	phttp "sktmorph/internal/platform/net/http"

	metahttp "sktmorph/internal/services/api/meta/http"
)

// ServiceName is reported by the meta endpoints
const ServiceName = "sktmorph-api"

// Module implements the modkit.Module interface
type Module struct {
	built modkit.Built
	deps  metahttp.Deps
}

// New constructs a meta module. enginePath is probed by /meta/ready
func New(deps modkit.Deps, enginePath string, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("meta"),
		modkit.WithPrefix("/meta"),
	}, opts...)...)

	d := metahttp.Deps{
		ServiceName: ServiceName,
		StartedAt:   time.Now(),
		EnginePath:  enginePath,
	}
	// a nil *pg.PG must stay a nil interface
	if deps.PG != nil {
		d.PG = deps.PG
	}
	return &Module{built: b, deps: d}
}

// MountRoutes implements the modkit.Module interface
func (m *Module) MountRoutes(r phttp.Router) {
	m.built.Mount(r, func(sub phttp.Router) { metahttp.Register(sub, m.deps) })
}

// Name implements the modkit.Module interface
func (m *Module) Name() string { return m.built.Name }

// Ports implements the modkit.Module interface
func (m *Module) Ports() any { return nil }
