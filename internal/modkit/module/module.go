// Package module holds helpers for pulling typed ports out of modkit modules
package module

import (
	phttp "sktmorph/internal/platform/net/http"
)

// Module mirrors modkit.Module. It lives here so port helpers avoid an import cycle
type Module interface {
	MountRoutes(r phttp.Router)
	Ports() any
	Name() string
}
