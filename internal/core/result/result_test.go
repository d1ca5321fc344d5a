package result

import (
	"reflect"
	"testing"

	"sktmorph/internal/core/analysis"
	"sktmorph/internal/core/engine"
	"sktmorph/internal/core/script"
	"sktmorph/internal/core/translit"
	kit "sktmorph/internal/platform/testkit"
)

func TestExtract(t *testing.T) {
	tests := []struct {
		name string
		in   string
		seg  []string
	}{
		{"empty", "", nil},
		{"last line only", "loading lexicon\n{\"segmentation\":[\"rAma\"]}", []string{"rAma"}},
		{"trailing newline", "diag\n{\"segmentation\":[\"a\",\"b\"]}\n", []string{"a", "b"}},
		{"crlf", "diag\r\n{\"segmentation\":[\"a\"]}\r\n", []string{"a"}},
		{"json not last", "{\"segmentation\":[\"a\"]}\ndone", nil},
		{"malformed", "{\"segmentation\":", nil},
		{"wrong shape", "{\"segmentation\":\"a\"}", nil},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Extract(tc.in)
			if !reflect.DeepEqual(got.Segmentation, tc.seg) {
				t.Fatalf("Extract(%q).Segmentation=%q want %q", tc.in, got.Segmentation, tc.seg)
			}
		})
	}
}

func TestStemRoot(t *testing.T) {
	tests := []struct {
		name       string
		m          RawMorph
		root, stem string
	}{
		{
			name: "derivational wins",
			m:    RawMorph{DerivedStem: "kqwa", Base: "kq", DerivationalMorph: "pp.", InflectionalMorphs: []string{"pr. 3 sg."}},
			root: "kq", stem: "kqwa",
		},
		{name: "nominal", m: RawMorph{DerivedStem: "rAma", InflectionalMorphs: []string{"nom.", "sg."}}, stem: "rAma"},
		{name: "verbal", m: RawMorph{DerivedStem: "gam", InflectionalMorphs: []string{"pr.", "3", "sg."}}, root: "gam"},
		{name: "tags joined then split", m: RawMorph{DerivedStem: "gam", InflectionalMorphs: []string{"sg. pr.", "3"}}, root: "gam"},
		{name: "first classifying tag wins", m: RawMorph{DerivedStem: "x", InflectionalMorphs: []string{"m. sg. nom.", "pr."}}, stem: "x"},
		{name: "unclassified", m: RawMorph{DerivedStem: "x", InflectionalMorphs: []string{"sg.", "m."}}},
		{name: "no tags", m: RawMorph{DerivedStem: "x"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			root, stem := StemRoot(tc.m)
			if root != tc.root || stem != tc.stem {
				t.Fatalf("StemRoot=(%q,%q) want (%q,%q)", root, stem, tc.root, tc.stem)
			}
		})
	}
}

func input(out string, st engine.Status) Input {
	return Input{
		Outcome:      engine.Outcome{Output: out, Status: st},
		Clause:       "rāma",
		Encoding:     translit.WX,
		Display:      script.Roma,
		TextType:     engine.Sentence,
		TimeoutLabel: "30s",
	}
}

func TestInterpret_Cascade(t *testing.T) {
	tests := []struct {
		name   string
		in     Input
		rule   string
		status analysis.Status
		err    string
	}{
		{"timeout", input("", engine.StatusTimeout), "transport", analysis.StatusTimeout, "SH could not produce the response within 30s"},
		{"failure", input("", engine.StatusFailure), "transport", analysis.StatusFailed, MsgFailed},
		{"rejected", input("", engine.StatusRejected), "transport", analysis.StatusError, MsgConvention},
		{"engine error", input(`{"segmentation":["error: bad input"]}`, engine.StatusSuccess), "engine error", analysis.StatusError, "error: bad input"},
		{"seg wins over transport", input(`{"segmentation":["error"]}`, engine.StatusFailure), "engine error", analysis.StatusError, "error"},
		{"unresolved single token", input(`{"segmentation":["#rAma"]}`, engine.StatusSuccess), "unrecognized", analysis.StatusUnrecognized, MsgUnrecognized},
		{"unresolved question", input(`{"segmentation":["rA?ma"]}`, engine.StatusSuccess), "unrecognized", analysis.StatusUnrecognized, MsgUnrecognized},
		{"unresolved chunk in sentence", input(`{"segmentation":["rAmaH #vanam"]}`, engine.StatusSuccess), "success", analysis.StatusSuccess, ""},
		{"success", input(`{"segmentation":["rAma"]}`, engine.StatusSuccess), "success", analysis.StatusSuccess, ""},
		{"empty json", input(`{}`, engine.StatusSuccess), "unknown", analysis.StatusUnknown, MsgUnknown},
		{"malformed", input(`not json`, engine.StatusSuccess), "unknown", analysis.StatusUnknown, MsgUnknown},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Rule(tc.in); got != tc.rule {
				t.Fatalf("Rule=%q want %q", got, tc.rule)
			}
			c := Interpret(tc.in)
			if c.Status != tc.status || c.Error != tc.err {
				t.Fatalf("got (%s,%q) want (%s,%q)", c.Status, c.Error, tc.status, tc.err)
			}
			if c.Input != "rāma" {
				t.Fatalf("input=%q", c.Input)
			}
			if c.Status != analysis.StatusSuccess && (c.Segmentation != nil || c.Morph != nil || c.Source != "") {
				t.Fatalf("non-success carries payload: %+v", c)
			}
		})
	}
}

func TestInterpret_WordLevelUnresolved(t *testing.T) {
	in := input(`{"segmentation":["rAmaH #vanam"]}`, engine.StatusSuccess)
	in.TextType = engine.Word
	if c := Interpret(in); c.Status != analysis.StatusUnrecognized {
		t.Fatalf("status=%s", c.Status)
	}
}

func TestInterpret_TimeoutLabel(t *testing.T) {
	in := input("", engine.StatusTimeout)
	in.TimeoutLabel = engine.Config{Timeout: 300_000_000}.TimeoutLabel()
	c := Interpret(in)
	kit.MustContain(t, c.Error, "300ms")
}

func TestInterpret_SuccessPayload(t *testing.T) {
	out := "diagnostics\n" + `{"segmentation":["rAmaH vanam gacCawi"],"morph":[` +
		`{"word":"rAmaH","derived_stem":"rAma","base":"","derivational_morph":"","inflectional_morphs":["m. sg. nom."]},` +
		`{"word":"gacCawi","derived_stem":"gam","base":"","derivational_morph":"","inflectional_morphs":["pr. [1] ac. sg. 3"]},` +
		`{"word":"kqwaH","derived_stem":"kqwa","base":"kq","derivational_morph":"pp.","inflectional_morphs":["m. sg. nom."]}]}`

	in := input(out, engine.StatusSuccess)
	in.Display = script.Deva
	c := Interpret(in)

	if c.Status != analysis.StatusSuccess || c.Source != analysis.Source || c.Error != "" {
		t.Fatalf("clause=%+v", c)
	}
	if !reflect.DeepEqual(c.Segmentation, []string{"रामः वनम् गच्छति"}) {
		t.Fatalf("segmentation=%q", c.Segmentation)
	}
	want := []analysis.MorphEntry{
		{Word: "रामः", Stem: "राम", Root: "", DerivationalMorph: "", InflectionalMorphs: []string{"m. sg. nom."}},
		{Word: "गच्छति", Stem: "", Root: "गम्", DerivationalMorph: "", InflectionalMorphs: []string{"pr. [1] ac. sg. 3"}},
		{Word: "कृतः", Stem: "कृत", Root: "कृ", DerivationalMorph: "pp.", InflectionalMorphs: []string{"m. sg. nom."}},
	}
	if !reflect.DeepEqual(c.Morph, want) {
		t.Fatalf("morph=%+v", c.Morph)
	}
}

func TestInterpret_SuccessWithoutMorphs(t *testing.T) {
	c := Interpret(input(`{"segmentation":["rAma"]}`, engine.StatusSuccess))
	if c.Status != analysis.StatusSuccess || !reflect.DeepEqual(c.Segmentation, []string{"rāma"}) {
		t.Fatalf("clause=%+v", c)
	}
	if c.Morph == nil || len(c.Morph) != 0 {
		t.Fatalf("morph=%#v", c.Morph)
	}
}

func TestInterpret_WXDisplayKeepsTokens(t *testing.T) {
	in := input(`{"segmentation":["rAma"],"morph":[{"word":"rAma","derived_stem":"rAma","inflectional_morphs":["voc."]}]}`, engine.StatusSuccess)
	in.Display = script.WX
	c := Interpret(in)
	if c.Segmentation[0] != "rAma" || c.Morph[0].Stem != "rAma" || c.Morph[0].Root != "" {
		t.Fatalf("clause=%+v", c)
	}
}
