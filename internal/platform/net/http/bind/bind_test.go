package bind

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	perr "sktmorph/internal/platform/errors"
	kit "sktmorph/internal/platform/testkit"
)

type req struct {
	Text     string `json:"text" validate:"required"`
	InputEnc string `json:"input_enc" validate:"required,oneof=DN KH RN SL VH WX"`
	Lines    int    `json:"lines" validate:"min=0,max=3"`
}

func post(body string) *http.Request {
	return httptest.NewRequest(http.MethodPost, "/x", strings.NewReader(body))
}

func TestParseJSON_OK(t *testing.T) {
	got, err := ParseJSON[req](post(`{"text":"rAmaH","input_enc":"WX"}`))
	if err != nil {
		t.Fatalf("ParseJSON: %v", err)
	}
	if got.Text != "rAmaH" || got.InputEnc != "WX" {
		t.Fatalf("decoded = %+v", got)
	}
}

func TestParseJSON_Errors(t *testing.T) {
	cases := []struct {
		name  string
		body  string
		code  perr.ErrorCode
		field string
		msg   string
	}{
		{"empty", ``, perr.ErrorCodeJSON, "", "empty body"},
		{"malformed", `{"text":`, perr.ErrorCodeJSON, "", "invalid JSON"},
		{"unknown field", `{"text":"a","input_enc":"WX","x":1}`, perr.ErrorCodeJSON, "", "unknown field"},
		{"trailing", `{"text":"a","input_enc":"WX"} {}`, perr.ErrorCodeJSON, "", "trailing"},
		{"required", `{"input_enc":"WX"}`, perr.ErrorCodeValidation, "text", "text is a required field"},
		{"oneof", `{"text":"a","input_enc":"XX"}`, perr.ErrorCodeValidation, "input_enc", "input_enc must be one of [DN KH RN SL VH WX]"},
		{"max", `{"text":"a","input_enc":"WX","lines":9}`, perr.ErrorCodeValidation, "lines", "lines must be at most 3"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := ParseJSON[req](post(c.body))
			if err == nil {
				t.Fatalf("expected error")
			}
			e, ok := perr.As(err)
			if !ok || e.Code() != c.code {
				t.Fatalf("code = %v, want %v (%v)", perr.CodeOf(err), c.code, err)
			}
			if e.Field() != c.field {
				t.Fatalf("field = %q, want %q", e.Field(), c.field)
			}
			kit.MustContain(t, e.Message(), c.msg)
		})
	}
}

func TestParseJSON_MaxBytes(t *testing.T) {
	body := `{"text":"` + strings.Repeat("a", 64) + `","input_enc":"WX"}`
	_, err := ParseJSON[req](post(body), JSONOptions{MaxBytes: 16, DisallowUnknown: true})
	if !perr.IsCode(err, perr.ErrorCodeJSON) {
		t.Fatalf("oversized body err = %v", err)
	}
}

func TestParseJSON_TrailingSeam(t *testing.T) {
	kit.Serial(t)
	kit.Swap(t, &jsonMore, func(*json.Decoder) bool { return true })
	_, err := ParseJSON[req](post(`{"text":"a","input_enc":"WX"}`))
	if !perr.IsCode(err, perr.ErrorCodeJSON) {
		t.Fatalf("err = %v", err)
	}
}
