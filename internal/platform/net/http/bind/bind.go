// Package bind decodes and validates JSON request bodies
package bind

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	perr "sktmorph/internal/platform/errors"
	"sktmorph/internal/platform/logger"
	"sktmorph/internal/platform/validate"
)

var jsonMore = func(dec *json.Decoder) bool { return dec.More() }

// JSONOptions controls parsing
type JSONOptions struct {
	MaxBytes        int64
	DisallowUnknown bool
}

// DefaultJSONOptions caps bodies at 1MB and rejects unknown fields
func DefaultJSONOptions() JSONOptions {
	return JSONOptions{MaxBytes: 1 << 20, DisallowUnknown: true}
}

// ParseJSON decodes one JSON value into T, validates it and maps failures to
// ErrorCodeJSON or ErrorCodeValidation with the offending field attached
func ParseJSON[T any](r *http.Request, opts ...JSONOptions) (T, error) {
	var zero T
	o := DefaultJSONOptions()
	if len(opts) > 0 {
		o = opts[0]
	}
	defer func() {
		if err := r.Body.Close(); err != nil {
			logger.C(r.Context()).Warn().Err(err).Msg("closing request body")
		}
	}()

	first := make([]byte, 1)
	n, _ := io.ReadFull(r.Body, first)
	if n == 0 {
		return zero, perr.JSONErrf("empty body")
	}
	var reader io.Reader = io.MultiReader(bytes.NewReader(first), r.Body)
	if o.MaxBytes > 0 {
		reader = io.LimitReader(reader, o.MaxBytes)
	}

	dec := json.NewDecoder(reader)
	if o.DisallowUnknown {
		dec.DisallowUnknownFields()
	}
	var dst T
	if err := dec.Decode(&dst); err != nil {
		return zero, perr.JSONErrf("invalid JSON: %v", err)
	}
	if jsonMore(dec) {
		return zero, perr.JSONErrf("unexpected trailing data")
	}

	if err := validate.Struct(dst); err != nil {
		if !perr.IsCode(err, perr.ErrorCodeValidation) {
			logger.C(r.Context()).Error().Err(err).Msg("validator internal error")
		}
		return zero, err
	}
	return dst, nil
}
