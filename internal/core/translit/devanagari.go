package translit

import "strings"

const (
	virama = '्'
	nukta  = '़'
	danda  = '।'
	dDanda = '॥'
)

var devConsonants = map[rune]rune{
	'क': 'k', 'ख': 'K', 'ग': 'g', 'घ': 'G', 'ङ': 'N',
	'च': 'c', 'छ': 'C', 'ज': 'j', 'झ': 'J', 'ञ': 'Y',
	'ट': 'w', 'ठ': 'W', 'ड': 'q', 'ढ': 'Q', 'ण': 'R',
	'त': 't', 'थ': 'T', 'द': 'd', 'ध': 'D', 'न': 'n',
	'प': 'p', 'फ': 'P', 'ब': 'b', 'भ': 'B', 'म': 'm',
	'य': 'y', 'र': 'r', 'ल': 'l', 'व': 'v',
	'श': 'S', 'ष': 'z', 'स': 's', 'ह': 'h', 'ळ': 'L',
}

// precomposed nukta letters fold to their plain consonant
var devNuktaForms = map[rune]rune{
	'क़': 'k', 'ख़': 'K', 'ग़': 'g', 'ज़': 'j',
	'ड़': 'q', 'ढ़': 'Q', 'फ़': 'P', 'य़': 'y',
	'\u0929': 'n', '\u0931': 'r', '\u0934': 'L',
}

var devVowels = map[rune]rune{
	'अ': 'a', 'आ': 'A', 'इ': 'i', 'ई': 'I', 'उ': 'u', 'ऊ': 'U',
	'ऋ': 'f', 'ॠ': 'F', 'ऌ': 'x', 'ॡ': 'X',
	'ए': 'e', 'ऐ': 'E', 'ओ': 'o', 'औ': 'O',
}

var devSigns = map[rune]rune{
	'ा': 'A', 'ि': 'i', 'ी': 'I', 'ु': 'u', 'ू': 'U',
	'ृ': 'f', 'ॄ': 'F', 'ॢ': 'x', 'ॣ': 'X',
	'े': 'e', 'ै': 'E', 'ो': 'o', 'ौ': 'O',
}

var devMarks = map[rune]string{
	'ं': "M", 'ः': "H", 'ँ': "~", 'ऽ': "'",
	danda: ".", dDanda: "..", 'ॐ': "oM",
}

// inverse tables for encoding
var (
	slpConsonants = invert(devConsonants)
	slpVowels     = invert(devVowels)
	slpSigns      = invert(devSigns)
)

func invert(m map[rune]rune) map[rune]rune {
	out := make(map[rune]rune, len(m))
	for k, v := range m {
		out[v] = k
	}
	return out
}

func isDevDigit(r rune) bool { return r >= '०' && r <= '९' }

// decodeDevanagari reads aksharas: a consonant takes the following vowel sign,
// loses its vowel before a virama, and otherwise carries an inherent a
func decodeDevanagari(s string) string {
	rs := []rune(s)
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(rs); i++ {
		r := rs[i]
		c, isCons := devConsonants[r]
		if !isCons {
			c, isCons = devNuktaForms[r]
		}
		if isCons {
			b.WriteRune(c)
			j := i + 1
			for j < len(rs) && rs[j] == nukta {
				j++
			}
			switch {
			case j < len(rs) && rs[j] == virama:
				i = j
			case j < len(rs) && devSigns[rs[j]] != 0:
				b.WriteRune(devSigns[rs[j]])
				i = j
			default:
				b.WriteByte('a')
				i = j - 1
			}
			continue
		}
		if v, ok := devVowels[r]; ok {
			b.WriteRune(v)
			continue
		}
		if v, ok := devSigns[r]; ok {
			b.WriteRune(v)
			continue
		}
		if m, ok := devMarks[r]; ok {
			b.WriteString(m)
			continue
		}
		if isDevDigit(r) {
			b.WriteRune('0' + (r - '०'))
			continue
		}
		if r == virama || r == nukta {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func isSLPVowel(r rune) bool { return r == 'a' || slpSigns[r] != 0 }

// encodeDevanagari writes SLP1 as Devanagari. Consonants not followed by a
// vowel get a virama; digits use native glyphs
func encodeDevanagari(s string) string {
	rs := []rune(s)
	var b strings.Builder
	b.Grow(len(s) * 3)
	for i := 0; i < len(rs); i++ {
		r := rs[i]
		if c, ok := slpConsonants[r]; ok {
			b.WriteRune(c)
			if i+1 < len(rs) && isSLPVowel(rs[i+1]) {
				i++
				if rs[i] != 'a' {
					b.WriteRune(slpSigns[rs[i]])
				}
			} else {
				b.WriteRune(virama)
			}
			continue
		}
		if v, ok := slpVowels[r]; ok {
			b.WriteRune(v)
			continue
		}
		switch {
		case r == 'M':
			b.WriteRune('ं')
		case r == 'H':
			b.WriteRune('ः')
		case r == '~':
			b.WriteRune('ँ')
		case r == '\'':
			b.WriteRune('ऽ')
		case r == '.' && i+1 < len(rs) && rs[i+1] == '.':
			b.WriteRune(dDanda)
			i++
		case r == '.':
			b.WriteRune(danda)
		case r >= '0' && r <= '9':
			b.WriteRune('०' + (r - '0'))
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
