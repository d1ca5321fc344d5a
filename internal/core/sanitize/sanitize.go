// Package sanitize prepares raw input for the segmenter.
// Pipeline order
// 1 Drop Vedic accent marks U+0951..U+0954 and ZERO WIDTH JOINER
// 2 Unicode NFC so precomposed and combining spellings agree
// 3 Replace punctuation the segmenter rejects with a space. Only | ! . survive
// 4 Replace the apostrophe too, except in IAST where it marks an elided a
// 5 Devanagari only: resolve the Vedic anusvara U+A8F3 by position
// 6 A trailing M becomes m
package sanitize

import (
	"strings"
	"sync"

	"sktmorph/internal/core/translit"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// VedicAnusvara is the nasal mark whose reading depends on whether it ends the text
const VedicAnusvara = 'ꣳ'

const (
	finalNasal  = "म्"
	medialNasal = "ं"
	rejected    = `$@#%&*()[]=+:;"}{?/,\-`
)

func isDropped(r rune) bool { return (r >= 0x0951 && r <= 0x0954) || r == 0x200D }

var chainPool = sync.Pool{
	New: func() any {
		return transform.Chain(
			runes.Remove(runes.Predicate(isDropped)),
			norm.NFC,
		)
	},
}

// Clean returns text ready for transliteration. It never fails and is idempotent
func Clean(text string, enc translit.Scheme) string {
	if text == "" {
		return ""
	}

	tr := chainPool.Get().(transform.Transformer)
	s, _, err := transform.String(tr, text)
	tr.Reset()
	chainPool.Put(tr)
	if err != nil {
		s = strings.Map(func(r rune) rune {
			if isDropped(r) {
				return -1
			}
			return r
		}, text)
	}

	keepApostrophe := enc == translit.IAST
	s = strings.Map(func(r rune) rune {
		if strings.ContainsRune(rejected, r) || (r == '\'' && !keepApostrophe) {
			return ' '
		}
		return r
	}, s)

	if enc == translit.Devanagari {
		s = resolveVedicAnusvara(s)
	}

	// a trailing ".m" is left as written
	if strings.HasSuffix(s, "M") {
		s = s[:len(s)-1] + "m"
	}
	return s
}

// resolveVedicAnusvara rewrites every U+A8F3. When the text ends with one they
// all become म् and otherwise they all become the plain anusvara
func resolveVedicAnusvara(s string) string {
	if !strings.ContainsRune(s, VedicAnusvara) {
		return s
	}
	repl := medialNasal
	if strings.HasSuffix(s, string(VedicAnusvara)) {
		repl = finalNasal
	}
	return strings.ReplaceAll(s, string(VedicAnusvara), repl)
}
