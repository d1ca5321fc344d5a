package modkit

import (
	"net/http"
	"net/http/httptest"
	"testing"

	phttp "sktmorph/internal/platform/net/http"

	"github.com/go-chi/chi/v5"
)

func TestBuild_DefaultsAndMount(t *testing.T) {
	var order []string
	mw := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			order = append(order, "mw")
			next.ServeHTTP(w, r)
		})
	}
	b := Build(
		WithName("analyze"),
		WithPrefix("analyze/"),
		WithMiddlewares(mw),
		WithPorts(42),
		WithRegister(func(r phttp.Router) {
			r.Get("/extra", func(w http.ResponseWriter, _ *http.Request) { order = append(order, "extra") })
		}),
	)
	if b.Name != "analyze" || b.Prefix != "/analyze" || b.Ports != 42 || len(b.Mw) != 1 {
		t.Fatalf("built = %+v", b)
	}

	r := phttp.AdaptChi(chi.NewRouter())
	b.Mount(r, func(sub phttp.Router) {
		sub.Get("/own", func(w http.ResponseWriter, _ *http.Request) { order = append(order, "own") })
	})
	for _, p := range []string{"/analyze/own", "/analyze/extra"} {
		rr := httptest.NewRecorder()
		r.Mux().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, p, nil))
		if rr.Code != http.StatusOK {
			t.Fatalf("%s status = %d", p, rr.Code)
		}
	}
	want := []string{"mw", "own", "mw", "extra"}
	if len(order) != len(want) {
		t.Fatalf("order = %v", order)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("order = %v, want %v", order, want)
		}
	}

	if d := Build(); d.Register == nil || d.Prefix != "" {
		t.Fatalf("default build = %+v", d)
	}
}
