// Package script moves text between the caller's script and the encoding the
// segmenter reads, and renders segmenter output for display
package script

import (
	"strings"
	"unicode"

	"sktmorph/internal/core/translit"
	perr "sktmorph/internal/platform/errors"
)

// Display is an output script requested by the caller
type Display string

// Output scripts
const (
	Deva Display = "deva"
	Roma Display = "roma"
	WX   Display = "WX"
)

// Displays lists every accepted output script
var Displays = []Display{Deva, Roma, WX}

// ParseDisplay maps "deva", "roma" or "WX" (any case) to a Display
func ParseDisplay(s string) (Display, error) {
	s = strings.TrimSpace(s)
	for _, d := range Displays {
		if strings.EqualFold(s, string(d)) {
			return d, nil
		}
	}
	return "", perr.InvalidArgf("unsupported output encoding %q", s)
}

// Scheme is the transliteration scheme a display script is written in
func (d Display) Scheme() (translit.Scheme, bool) {
	switch d {
	case Deva:
		return translit.Devanagari, true
	case Roma:
		return translit.IAST, true
	}
	return "", false
}

// Internal is the encoding the segmenter is fed. Devanagari and IAST input is
// rewritten to WX; every other scheme is passed as is
const Internal = translit.WX

var devDigits = strings.NewReplacer(
	"०", "0", "१", "1", "२", "2", "३", "3", "४", "4",
	"५", "5", "६", "6", "७", "7", "८", "8", "९", "9",
)

// wxFixups repair letters the generic conversion to WX cannot spell. WX has
// no slot for ळ, so it is left as the Devanagari glyph and read as d
var wxFixups = strings.NewReplacer("ळ", "d")

// ToInternal converts sanitized text to the encoding handed to the segmenter and
// reports which encoding that is
func ToInternal(text string, enc translit.Scheme) (string, translit.Scheme) {
	out, tag := text, enc
	switch enc {
	case translit.Devanagari:
		out = convert(text, enc, Internal)
		out = wxFixups.Replace(out)
		out = strings.ReplaceAll(out, "kdp", "kLp")
		tag = Internal
	case translit.IAST:
		out = convert(text, enc, Internal)
		out = wxFixups.Replace(out)
		tag = Internal
	}
	if tag == Internal {
		out = resolveCandrabindu(out)
	}
	return out, tag
}

// resolveCandrabindu applies the positional rule to WX z: when the text ends in
// z every z becomes m, otherwise every z becomes M
func resolveCandrabindu(s string) string {
	if !strings.Contains(s, "z") {
		return s
	}
	if strings.HasSuffix(s, "z") {
		return strings.ReplaceAll(s, "z", "m")
	}
	return strings.ReplaceAll(s, "z", "M")
}

// ToDisplay renders text written in from for the caller. Output requested as WX
// and text in an unknown scheme are returned unchanged
func ToDisplay(text string, from translit.Scheme, target Display) string {
	to, ok := target.Scheme()
	if !ok || !from.Valid() {
		return text
	}
	out := convert(text, from, to)
	if target == Deva {
		out = devDigits.Replace(out)
	}
	return out
}

// ToDisplayAll renders every token with ToDisplay
func ToDisplayAll(tokens []string, from translit.Scheme, target Display) []string {
	out := make([]string, len(tokens))
	for i, tok := range tokens {
		out[i] = ToDisplay(tok, from, target)
	}
	return out
}

func convert(text string, from, to translit.Scheme) string {
	out, err := translit.Convert(text, from, to)
	if err != nil {
		return text
	}
	return out
}

// Mismatch reports whether text plainly is not in the declared scheme:
// Latin letters and no Devanagari for DN, or any Devanagari letter for a
// romanized scheme
func Mismatch(text string, enc translit.Scheme) bool {
	var latin, deva bool
	for _, r := range text {
		switch {
		case isDevanagariLetter(r):
			deva = true
		case r < unicode.MaxASCII && unicode.IsLetter(r):
			latin = true
		}
	}
	switch {
	case enc == translit.Devanagari:
		return latin && !deva
	case enc.Roman():
		return deva
	}
	return false
}

// isDevanagariLetter excludes the danda pair and the digits, which romanized text may carry
func isDevanagariLetter(r rune) bool {
	if r < 0x0900 || r > 0x097F {
		return false
	}
	return r != 0x0964 && r != 0x0965 && (r < 0x0966 || r > 0x096F)
}
