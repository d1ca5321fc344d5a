// Package result turns raw segmenter output into a classified clause analysis
package result

import (
	"encoding/json"
	"strings"

	"sktmorph/internal/core/analysis"
	"sktmorph/internal/core/engine"
	"sktmorph/internal/core/script"
	"sktmorph/internal/core/translit"
	pstrings "sktmorph/internal/platform/strings"
)

// Messages reported in the error field
const (
	MsgUnrecognized = "SH could not recognize at least on chunk / word"
	MsgConvention   = "Error in Input / Output Convention. Please check the input"
	MsgFailed       = "SH invocation failed"
	MsgUnknown      = "An unknown error occurred"
	msgTimeoutFmt   = "SH could not produce the response within "
)

// TimeoutMessage is the error text for a run cut short after label (e.g. "30s")
func TimeoutMessage(label string) string { return msgTimeoutFmt + label }

// Raw is the structured line the segmenter prints last
type Raw struct {
	Segmentation []string   `json:"segmentation"`
	Morph        []RawMorph `json:"morph"`
}

// RawMorph is one morph entry as the segmenter labels it
type RawMorph struct {
	Word               string   `json:"word"`
	DerivedStem        string   `json:"derived_stem"`
	Base               string   `json:"base"`
	DerivationalMorph  string   `json:"derivational_morph"`
	InflectionalMorphs []string `json:"inflectional_morphs"`
}

// Extract parses the last line of output. Anything unparseable yields an empty Raw
func Extract(output string) Raw {
	line, ok := pstrings.LastLine(output)
	if !ok {
		return Raw{}
	}
	var raw Raw
	if err := json.Unmarshal([]byte(line), &raw); err != nil {
		return Raw{}
	}
	return raw
}

// Input is everything Interpret needs about one clause run
type Input struct {
	Outcome      engine.Outcome
	Clause       string          // clause as shown to the caller
	Encoding     translit.Scheme // scheme of the segmenter output
	Display      script.Display
	TextType     engine.TextType
	TimeoutLabel string
}

type rule struct {
	name  string
	match func(Input, Raw) bool
	build func(Input, Raw) analysis.Clause
}

func hasSeg(r Raw) bool { return len(r.Segmentation) > 0 }

func failed(in Input, status analysis.Status, msg string) analysis.Clause {
	return analysis.Clause{Input: in.Clause, Status: status, Error: msg}
}

// rules are evaluated top to bottom and the first match wins
var rules = []rule{
	{
		name: "transport",
		match: func(in Input, r Raw) bool {
			return !hasSeg(r) && in.Outcome.Status != engine.StatusSuccess
		},
		build: func(in Input, _ Raw) analysis.Clause {
			switch in.Outcome.Status {
			case engine.StatusTimeout:
				return failed(in, analysis.StatusTimeout, TimeoutMessage(in.TimeoutLabel))
			case engine.StatusRejected:
				return failed(in, analysis.StatusError, MsgConvention)
			default:
				return failed(in, analysis.StatusFailed, MsgFailed)
			}
		},
	},
	{
		name: "engine error",
		match: func(_ Input, r Raw) bool {
			return hasSeg(r) && strings.Contains(r.Segmentation[0], "error")
		},
		build: func(in Input, r Raw) analysis.Clause {
			return failed(in, analysis.StatusError, r.Segmentation[0])
		},
	},
	{
		name: "unrecognized",
		match: func(in Input, r Raw) bool {
			if !hasSeg(r) {
				return false
			}
			first := r.Segmentation[0]
			unresolved := strings.ContainsAny(first, "#?")
			return unresolved && (in.TextType == engine.Word || !strings.Contains(first, " "))
		},
		build: func(in Input, _ Raw) analysis.Clause {
			return failed(in, analysis.StatusUnrecognized, MsgUnrecognized)
		},
	},
	{
		name:  "success",
		match: func(_ Input, r Raw) bool { return hasSeg(r) },
		build: success,
	},
	{
		name:  "unknown",
		match: func(Input, Raw) bool { return true },
		build: func(in Input, _ Raw) analysis.Clause {
			return failed(in, analysis.StatusUnknown, MsgUnknown)
		},
	},
}

func classify(in Input, raw Raw) rule {
	for _, r := range rules {
		if r.match(in, raw) {
			return r
		}
	}
	return rules[len(rules)-1]
}

// Interpret classifies one clause run
func Interpret(in Input) analysis.Clause {
	raw := Extract(in.Outcome.Output)
	return classify(in, raw).build(in, raw)
}

// Rule names the rule that classifies in
func Rule(in Input) string { return classify(in, Extract(in.Outcome.Output)).name }

func success(in Input, r Raw) analysis.Clause {
	morphs := make([]analysis.MorphEntry, 0, len(r.Morph))
	for _, m := range r.Morph {
		root, stem := StemRoot(m)
		tags := m.InflectionalMorphs
		if tags == nil {
			tags = []string{}
		}
		morphs = append(morphs, analysis.MorphEntry{
			Word:               script.ToDisplay(m.Word, in.Encoding, in.Display),
			Stem:               script.ToDisplay(stem, in.Encoding, in.Display),
			Root:               script.ToDisplay(root, in.Encoding, in.Display),
			DerivationalMorph:  m.DerivationalMorph,
			InflectionalMorphs: tags,
		})
	}
	return analysis.Clause{
		Input:        in.Clause,
		Status:       analysis.StatusSuccess,
		Segmentation: script.ToDisplayAll(r.Segmentation, in.Encoding, in.Display),
		Morph:        morphs,
		Source:       analysis.Source,
	}
}
