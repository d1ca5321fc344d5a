package translit

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// table is a longest-match mapping between a Latin scheme and SLP1.
// Decoding accepts every spelling listed; encoding uses the first spelling
// listed for each SLP1 letter
type table struct {
	dec    map[string]string
	enc    map[rune]string
	maxLen int
	fold   bool
}

func newTable(fold bool, pairs ...[2]string) *table {
	t := &table{dec: map[string]string{}, enc: map[rune]string{}, fold: fold}
	for _, p := range pairs {
		spelling, slp := p[0], p[1]
		if _, seen := t.dec[spelling]; !seen {
			t.dec[spelling] = slp
		}
		if r, size := utf8.DecodeRuneInString(slp); size == len(slp) {
			if _, seen := t.enc[r]; !seen {
				t.enc[r] = spelling
			}
		}
		if n := utf8.RuneCountInString(spelling); n > t.maxLen {
			t.maxLen = n
		}
	}
	return t
}

func (t *table) decode(s string) string {
	if s == "" {
		return s
	}
	s = norm.NFC.String(s)
	if t.fold {
		s = cases.Lower(language.Und).String(s)
	}
	rs := []rune(s)
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(rs); {
		n := t.maxLen
		if rest := len(rs) - i; n > rest {
			n = rest
		}
		matched := false
		for ; n > 0; n-- {
			if slp, ok := t.dec[string(rs[i:i+n])]; ok {
				b.WriteString(slp)
				i += n
				matched = true
				break
			}
		}
		if !matched {
			b.WriteRune(rs[i])
			i++
		}
	}
	return b.String()
}

func (t *table) encode(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if out, ok := t.enc[r]; ok {
			b.WriteString(out)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

var romanTables = map[Scheme]*table{
	IAST:         iastTable,
	WX:           wxTable,
	Velthuis:     velthuisTable,
	KyotoHarvard: khTable,
}

var iastTable = newTable(true,
	[2]string{"a", "a"}, [2]string{"ā", "A"}, [2]string{"i", "i"}, [2]string{"ī", "I"},
	[2]string{"u", "u"}, [2]string{"ū", "U"}, [2]string{"ṛ", "f"}, [2]string{"ṝ", "F"},
	[2]string{"ḷ", "x"}, [2]string{"ḹ", "X"}, [2]string{"e", "e"}, [2]string{"ai", "E"},
	[2]string{"o", "o"}, [2]string{"au", "O"},
	[2]string{"ṃ", "M"}, [2]string{"ṁ", "M"}, [2]string{"ḥ", "H"}, [2]string{"m\u0310", "~"},
	[2]string{"'", "'"},
	[2]string{"k", "k"}, [2]string{"kh", "K"}, [2]string{"g", "g"}, [2]string{"gh", "G"}, [2]string{"ṅ", "N"},
	[2]string{"c", "c"}, [2]string{"ch", "C"}, [2]string{"j", "j"}, [2]string{"jh", "J"}, [2]string{"ñ", "Y"},
	[2]string{"ṭ", "w"}, [2]string{"ṭh", "W"}, [2]string{"ḍ", "q"}, [2]string{"ḍh", "Q"}, [2]string{"ṇ", "R"},
	[2]string{"t", "t"}, [2]string{"th", "T"}, [2]string{"d", "d"}, [2]string{"dh", "D"}, [2]string{"n", "n"},
	[2]string{"p", "p"}, [2]string{"ph", "P"}, [2]string{"b", "b"}, [2]string{"bh", "B"}, [2]string{"m", "m"},
	[2]string{"y", "y"}, [2]string{"r", "r"}, [2]string{"l", "l"}, [2]string{"v", "v"},
	[2]string{"ś", "S"}, [2]string{"ṣ", "z"}, [2]string{"s", "s"}, [2]string{"h", "h"}, [2]string{"ḻ", "L"},
)

// WX has no letter for the retroflex lateral, so SLP1 L is written as its
// Devanagari glyph and left for the caller to resolve. Long vocalic l shares
// WX L with the short one
var wxTable = newTable(false,
	[2]string{"a", "a"}, [2]string{"A", "A"}, [2]string{"i", "i"}, [2]string{"I", "I"},
	[2]string{"u", "u"}, [2]string{"U", "U"}, [2]string{"q", "f"}, [2]string{"Q", "F"},
	[2]string{"L", "x"}, [2]string{"L", "X"}, [2]string{"e", "e"}, [2]string{"E", "E"},
	[2]string{"o", "o"}, [2]string{"O", "O"},
	[2]string{"M", "M"}, [2]string{"H", "H"}, [2]string{"z", "~"}, [2]string{"Z", "'"},
	[2]string{"k", "k"}, [2]string{"K", "K"}, [2]string{"g", "g"}, [2]string{"G", "G"}, [2]string{"f", "N"},
	[2]string{"c", "c"}, [2]string{"C", "C"}, [2]string{"j", "j"}, [2]string{"J", "J"}, [2]string{"F", "Y"},
	[2]string{"t", "w"}, [2]string{"T", "W"}, [2]string{"d", "q"}, [2]string{"D", "Q"}, [2]string{"N", "R"},
	[2]string{"w", "t"}, [2]string{"W", "T"}, [2]string{"x", "d"}, [2]string{"X", "D"}, [2]string{"n", "n"},
	[2]string{"p", "p"}, [2]string{"P", "P"}, [2]string{"b", "b"}, [2]string{"B", "B"}, [2]string{"m", "m"},
	[2]string{"y", "y"}, [2]string{"r", "r"}, [2]string{"l", "l"}, [2]string{"v", "v"},
	[2]string{"S", "S"}, [2]string{"R", "z"}, [2]string{"s", "s"}, [2]string{"h", "h"}, [2]string{"ळ", "L"},
)

var velthuisTable = newTable(false,
	[2]string{"a", "a"}, [2]string{"aa", "A"}, [2]string{"A", "A"}, [2]string{"i", "i"}, [2]string{"ii", "I"},
	[2]string{"I", "I"}, [2]string{"u", "u"}, [2]string{"uu", "U"}, [2]string{"U", "U"},
	[2]string{".r", "f"}, [2]string{".rr", "F"}, [2]string{".l", "x"}, [2]string{".ll", "X"},
	[2]string{"e", "e"}, [2]string{"ai", "E"}, [2]string{"o", "o"}, [2]string{"au", "O"},
	[2]string{".m", "M"}, [2]string{".h", "H"}, [2]string{"/", "~"}, [2]string{".a", "'"},
	[2]string{"k", "k"}, [2]string{"kh", "K"}, [2]string{"g", "g"}, [2]string{"gh", "G"}, [2]string{"\"n", "N"},
	[2]string{"c", "c"}, [2]string{"ch", "C"}, [2]string{"j", "j"}, [2]string{"jh", "J"}, [2]string{"~n", "Y"},
	[2]string{".t", "w"}, [2]string{".th", "W"}, [2]string{".d", "q"}, [2]string{".dh", "Q"}, [2]string{".n", "R"},
	[2]string{"t", "t"}, [2]string{"th", "T"}, [2]string{"d", "d"}, [2]string{"dh", "D"}, [2]string{"n", "n"},
	[2]string{"p", "p"}, [2]string{"ph", "P"}, [2]string{"b", "b"}, [2]string{"bh", "B"}, [2]string{"m", "m"},
	[2]string{"y", "y"}, [2]string{"r", "r"}, [2]string{"l", "l"}, [2]string{"v", "v"},
	[2]string{"\"s", "S"}, [2]string{".s", "z"}, [2]string{"s", "s"}, [2]string{"h", "h"}, [2]string{"L", "L"},
)

var khTable = newTable(false,
	[2]string{"a", "a"}, [2]string{"A", "A"}, [2]string{"i", "i"}, [2]string{"I", "I"},
	[2]string{"u", "u"}, [2]string{"U", "U"}, [2]string{"R", "f"}, [2]string{"RR", "F"},
	[2]string{"lR", "x"}, [2]string{"lRR", "X"}, [2]string{"e", "e"}, [2]string{"ai", "E"},
	[2]string{"o", "o"}, [2]string{"au", "O"}, [2]string{"M", "M"}, [2]string{"H", "H"}, [2]string{"'", "'"},
	[2]string{"k", "k"}, [2]string{"kh", "K"}, [2]string{"g", "g"}, [2]string{"gh", "G"}, [2]string{"G", "N"},
	[2]string{"c", "c"}, [2]string{"ch", "C"}, [2]string{"j", "j"}, [2]string{"jh", "J"}, [2]string{"J", "Y"},
	[2]string{"T", "w"}, [2]string{"Th", "W"}, [2]string{"D", "q"}, [2]string{"Dh", "Q"}, [2]string{"N", "R"},
	[2]string{"t", "t"}, [2]string{"th", "T"}, [2]string{"d", "d"}, [2]string{"dh", "D"}, [2]string{"n", "n"},
	[2]string{"p", "p"}, [2]string{"ph", "P"}, [2]string{"b", "b"}, [2]string{"bh", "B"}, [2]string{"m", "m"},
	[2]string{"y", "y"}, [2]string{"r", "r"}, [2]string{"l", "l"}, [2]string{"v", "v"},
	[2]string{"z", "S"}, [2]string{"S", "z"}, [2]string{"s", "s"}, [2]string{"h", "h"},
)
