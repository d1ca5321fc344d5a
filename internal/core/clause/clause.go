// Package clause splits a sentence into independently analysed clauses and merges
// the clause analyses back into one sentence analysis
package clause

import (
	"strconv"
	"strings"

	"sktmorph/internal/core/analysis"
	"sktmorph/internal/core/script"
	"sktmorph/internal/core/translit"
	pstrings "sktmorph/internal/platform/strings"
)

// Stop separates clauses in the internal encoding
const Stop = "."

// MsgEmpty is reported for a sentence with nothing left to analyse
const MsgEmpty = "Input has no text to analyse"

// Split returns the trimmed non-blank clauses of text in order.
// Velthuis spells letters with a leading dot (.m .r .n), so there a dot only
// stops a clause when no letter follows it
func Split(text string, enc translit.Scheme) []string {
	if enc == translit.Velthuis {
		text = markVelthuisStops(text)
	}
	parts := pstrings.SplitNonBlank(text, stopOrMark(enc))
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}

const velthuisStop = "\x00"

func stopOrMark(enc translit.Scheme) string {
	if enc == translit.Velthuis {
		return velthuisStop
	}
	return Stop
}

func markVelthuisStops(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '.' && !(i+1 < len(s) && isASCIILetter(s[i+1])) {
			b.WriteString(velthuisStop)
			continue
		}
		b.WriteByte(c)
	}
	return b.String()
}

func isASCIILetter(c byte) bool { return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') }

// FullStop is the glyph placed between clauses when they are joined for display
func FullStop(d script.Display) string {
	if d == script.Deva {
		return " । "
	}
	return " . "
}

// Merge combines clause analyses in order. The status is success when any clause
// succeeded and otherwise the status of the first clause
func Merge(clauses []analysis.Clause, d script.Display) analysis.Sentence {
	out := analysis.Sentence{
		Segmentation: []string{},
		Morph:        []analysis.MorphEntry{},
		Source:       analysis.Source,
	}
	if len(clauses) == 0 {
		out.Status = analysis.StatusError
		out.Error = MsgEmpty
		return out
	}

	stop := FullStop(d)
	inputs := make([]string, 0, len(clauses))
	errs := make([]string, 0, len(clauses))
	var segs []string
	anyOK := false
	for i, c := range clauses {
		inputs = append(inputs, c.Input)
		segs = append(segs, c.Segmentation...)
		out.Morph = append(out.Morph, c.Morph...)
		anyOK = anyOK || c.OK()

		n := strconv.Itoa(i + 1)
		if c.Error != "" {
			errs = append(errs, "Error in "+n+": "+c.Error)
		} else {
			errs = append(errs, n+":-")
		}
	}

	out.Input = strings.Join(inputs, stop)
	out.Status = clauses[0].Status
	if anyOK {
		out.Status = analysis.StatusSuccess
	}
	if len(segs) > 0 {
		out.Segmentation = []string{strings.Join(segs, stop)}
	}
	out.Error = strings.Join(errs, ";")
	return out
}
