package httpkit

import (
	"net/http"
	"time"

	"sktmorph/internal/platform/config"
	"sktmorph/internal/platform/net/middleware"
)

// StackOptions tunes CommonStack
type StackOptions struct {
	RequestTimeout time.Duration
	MaxInFlight    int
	SlowRequest    time.Duration
	AllowedOrigins []string
}

// StackFromConfig reads CORE_API_* style keys from cfg
func StackFromConfig(cfg config.Conf) StackOptions {
	return StackOptions{
		RequestTimeout: cfg.MayDuration("REQUEST_TIMEOUT", 10*time.Minute),
		MaxInFlight:    cfg.MayInt("MAX_IN_FLIGHT", 16),
		SlowRequest:    cfg.MayDuration("SLOW_REQUEST", 35*time.Second),
	}
}

// CommonStack is the per-API middleware slice: ids, recovery, limits, CORS, access log
func CommonStack(o StackOptions) []func(http.Handler) http.Handler {
	stack := middleware.Defaults(o.RequestTimeout)
	if o.MaxInFlight > 0 {
		stack = append(stack, middleware.Throttle(o.MaxInFlight))
	}
	return append(stack,
		middleware.CORS(middleware.CORSOptions{AllowedOrigins: o.AllowedOrigins}),
		middleware.AccessLog(middleware.AccessLogOptions{Slow: o.SlowRequest}),
	)
}
