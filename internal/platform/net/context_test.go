package net

import (
	"context"
	"testing"
)

func TestWithRequestID(t *testing.T) {
	base := context.Background()
	if WithRequestID(base, "") != base {
		t.Fatalf("empty id should leave ctx untouched")
	}
	ctx := WithRequestID(base, "req-1")
	if got := RequestID(ctx); got != "req-1" {
		t.Fatalf("RequestID = %q", got)
	}
	if RequestID(base) != "" {
		t.Fatalf("RequestID on bare ctx should be empty")
	}
}
