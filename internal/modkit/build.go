package modkit

import (
	"net/http"

	phttp "sktmorph/internal/platform/net/http"
	pstrings "sktmorph/internal/platform/strings"
)

// Built is the resolved option set
type Built struct {
	Name     string
	Prefix   string
	Mw       []func(http.Handler) http.Handler
	Ports    any
	Register func(phttp.Router)
}

// Build applies opts and fills defaults. A set prefix is normalised to /x form
func Build(opts ...Option) Built {
	var c buildCfg
	for _, o := range opts {
		o(&c)
	}
	if c.register == nil {
		c.register = func(phttp.Router) {}
	}
	if c.prefix != "" {
		c.prefix = pstrings.MustPrefix(c.prefix)
	}
	return Built{
		Name:     c.name,
		Prefix:   c.prefix,
		Mw:       append([]func(http.Handler) http.Handler(nil), c.mw...),
		Ports:    c.ports,
		Register: c.register,
	}
}

// Mount routes fn under b.Prefix with b.Mw applied, then runs b.Register on the
// same sub-router. An empty prefix mounts into an inline group
func (b Built) Mount(r phttp.Router, fn func(phttp.Router)) {
	mount := func(sub phttp.Router) {
		if len(b.Mw) > 0 {
			sub.Use(b.Mw...)
		}
		fn(sub)
		b.Register(sub)
	}
	if b.Prefix == "" {
		r.Group(mount)
		return
	}
	r.Route(b.Prefix, mount)
}
