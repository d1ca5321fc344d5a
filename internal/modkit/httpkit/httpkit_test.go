package httpkit

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"sktmorph/internal/platform/config"
	phttp "sktmorph/internal/platform/net/http"

	"github.com/go-chi/chi/v5"
)

func TestMountAPIV1_WithCommonStack(t *testing.T) {
	r := phttp.AdaptChi(chi.NewRouter())
	MountAPIV1(r, CommonStack(StackOptions{RequestTimeout: time.Second, MaxInFlight: 2}), func(api Router) {
		Get(api, "/ping", func(*http.Request) (any, error) { return "pong", nil })
	})

	rr := httptest.NewRecorder()
	r.Mux().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/ping", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d body=%s", rr.Code, rr.Body.String())
	}
	if rr.Header().Get("X-Request-ID") == "" {
		t.Fatalf("stack should mirror X-Request-ID")
	}
	if rr.Header().Get("Cache-Control") == "" {
		t.Fatalf("stack should set no-cache headers")
	}
}

func TestStackFromConfig(t *testing.T) {
	t.Setenv("S_REQUEST_TIMEOUT", "90s")
	t.Setenv("S_MAX_IN_FLIGHT", "3")
	o := StackFromConfig(config.New().Prefix("S_"))
	if o.RequestTimeout != 90*time.Second || o.MaxInFlight != 3 || o.SlowRequest != 35*time.Second {
		t.Fatalf("options = %+v", o)
	}
}
