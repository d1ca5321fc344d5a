package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"sktmorph/internal/core/engine"
	"sktmorph/internal/platform/config"
	phttp "sktmorph/internal/platform/net/http"
	kit "sktmorph/internal/platform/testkit"
	analyzemod "sktmorph/internal/services/analyze/module"

	"github.com/go-chi/chi/v5"
)

const payload = `{"segmentation":["rAmaH"],"morph":[{"word":"rAmaH","derived_stem":"","base":"rAma","derivational_morph":"","inflectional_morphs":["m. sg. nom."]}]}`

func newAPI(t *testing.T) http.Handler {
	t.Helper()
	exe := kit.WriteScript(t, "interface2", "echo 'Content-type: text/html'\necho\necho '"+payload+"'\n")
	r := phttp.AdaptChi(chi.NewRouter())
	Mount(r, Options{
		Config:        config.New(),
		Analyze:       analyzemod.Options{Engine: engine.Config{Path: exe, Timeout: 5 * time.Second}},
		EnableSwagger: true,
	})
	return r.Mux()
}

func TestMount_AnalyzeEndToEnd(t *testing.T) {
	h := newAPI(t)
	rr := httptest.NewRecorder()
	body := `{"text":"रामः","input_encoding":"DN","output_encoding":"roma"}`
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/v1/analyze", strings.NewReader(body)))
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d body=%s", rr.Code, rr.Body.String())
	}
	kit.MustContain(t, rr.Body.String(), `"status":"success"`)
	kit.MustContain(t, rr.Body.String(), `"segmentation":["rāmaḥ"]`)
	kit.MustContain(t, rr.Body.String(), `"error":"1:-"`)
}

func TestMount_MetaAndDocs(t *testing.T) {
	h := newAPI(t)
	for _, path := range []string{"/health", "/api/v1/meta/health", "/api/v1/meta/ready", "/api/v1/meta/encodings", "/api/docs/doc.json"} {
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, path, nil))
		if rr.Code != http.StatusOK {
			t.Fatalf("%s status = %d body=%s", path, rr.Code, rr.Body.String())
		}
	}
}
