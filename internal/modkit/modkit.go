// Package modkit wires service modules onto the HTTP router
package modkit

import (
	phttp "sktmorph/internal/platform/net/http"
)

// Module is what cmd wiring mounts: routes plus a port bundle other modules may consume
type Module interface {
	MountRoutes(r phttp.Router)
	Ports() any
	Name() string
}
