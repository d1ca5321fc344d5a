// Package translit converts Sanskrit text between the transliteration schemes the
// segmenter understands. SLP1 is the hub: every scheme decodes to SLP1 and every
// scheme encodes from it, so any pair converts in two hops
package translit

import (
	"strings"

	perr "sktmorph/internal/platform/errors"
)

// Scheme names a transliteration scheme by the tag the segmenter uses for it
type Scheme string

// Supported schemes
const (
	Devanagari   Scheme = "DN"
	IAST         Scheme = "RN"
	SLP1         Scheme = "SL"
	WX           Scheme = "WX"
	Velthuis     Scheme = "VH"
	KyotoHarvard Scheme = "KH"
)

// Schemes lists every supported scheme in a stable order
var Schemes = []Scheme{Devanagari, KyotoHarvard, IAST, SLP1, Velthuis, WX}

// Valid reports whether s is a supported scheme
func (s Scheme) Valid() bool {
	for _, x := range Schemes {
		if x == s {
			return true
		}
	}
	return false
}

// Roman reports whether s is written in Latin letters
func (s Scheme) Roman() bool { return s.Valid() && s != Devanagari }

// Parse maps a tag such as "dn" or "WX" to a Scheme
func Parse(tag string) (Scheme, error) {
	s := Scheme(strings.ToUpper(strings.TrimSpace(tag)))
	if !s.Valid() {
		return "", perr.InvalidArgf("unsupported transliteration scheme %q", tag)
	}
	return s, nil
}

// ToSLP1 decodes text written in from into SLP1
func ToSLP1(text string, from Scheme) (string, error) {
	switch from {
	case SLP1:
		return text, nil
	case Devanagari:
		return decodeDevanagari(text), nil
	}
	t, ok := romanTables[from]
	if !ok {
		return "", perr.InvalidArgf("unsupported transliteration scheme %q", string(from))
	}
	return t.decode(text), nil
}

// FromSLP1 encodes SLP1 text into to
func FromSLP1(text string, to Scheme) (string, error) {
	switch to {
	case SLP1:
		return text, nil
	case Devanagari:
		return encodeDevanagari(text), nil
	}
	t, ok := romanTables[to]
	if !ok {
		return "", perr.InvalidArgf("unsupported transliteration scheme %q", string(to))
	}
	return t.encode(text), nil
}

// Convert rewrites text from one scheme to another through SLP1
func Convert(text string, from, to Scheme) (string, error) {
	if from == to {
		if !from.Valid() {
			return "", perr.InvalidArgf("unsupported transliteration scheme %q", string(from))
		}
		return text, nil
	}
	hub, err := ToSLP1(text, from)
	if err != nil {
		return "", err
	}
	return FromSLP1(hub, to)
}
