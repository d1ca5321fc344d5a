package result

import "strings"

var verbTags = tagSet(
	"pr.", "imp.", "opt.", "impft.", "inj.", "subj.", "pft.", "plp.",
	"fut.", "cond.", "aor.", "ben.", "abs.", "inf.",
)

var nounTags = tagSet(
	"nom.", "acc.", "i.", "dat.", "abl.", "g.", "loc.", "voc.", "iic.",
	"iiv.", "part.", "prep.", "conj.", "adv.", "tasil", "ind.",
)

func tagSet(tags ...string) map[string]struct{} {
	m := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		m[t] = struct{}{}
	}
	return m
}

// StemRoot decides whether the derived stem of m is a root or a stem.
// With a derivational analysis the base is the root and the derived stem the stem.
// Otherwise the inflectional tags are split on spaces and scanned left to right;
// the first verb tag makes it a root, the first nominal tag a stem
func StemRoot(m RawMorph) (root, stem string) {
	if m.DerivationalMorph != "" {
		return m.Base, m.DerivedStem
	}
	for _, tag := range strings.Split(strings.Join(m.InflectionalMorphs, " "), " ") {
		if _, ok := verbTags[tag]; ok {
			return m.DerivedStem, ""
		}
		if _, ok := nounTags[tag]; ok {
			return "", m.DerivedStem
		}
	}
	return "", ""
}
