// Package analysis holds the result shapes shared by the pipeline, the CLI and the HTTP API
package analysis

// Status classifies one clause or one merged sentence
type Status string

// Known statuses. Anything else reported by the engine is carried through verbatim
const (
	StatusSuccess      Status = "success"
	StatusTimeout      Status = "timeout"
	StatusFailed       Status = "failed"
	StatusError        Status = "error"
	StatusUnrecognized Status = "unrecognized"
	StatusUnknown      Status = "unknown"
)

// Source tags analyses produced by the segmenter
const Source = "SH"

// Cacheable reports whether a result with this status is stable enough to store.
// Transport failures depend on the host and are retried on the next request
func (s Status) Cacheable() bool {
	switch s {
	case StatusSuccess, StatusError, StatusUnrecognized:
		return true
	}
	return false
}

// MorphEntry is one analysed word. Stem and Root are normally exclusive
type MorphEntry struct {
	Word               string   `json:"word"`
	Stem               string   `json:"stem"`
	Root               string   `json:"root"`
	DerivationalMorph  string   `json:"derivational_morph"`
	InflectionalMorphs []string `json:"inflectional_morphs"`
}

// Clause is the analysis of one delimiter-separated piece of a sentence.
// Non-success clauses carry Input, Status and Error only
type Clause struct {
	Input        string       `json:"input"`
	Status       Status       `json:"status"`
	Segmentation []string     `json:"segmentation,omitempty"`
	Morph        []MorphEntry `json:"morph,omitempty"`
	Error        string       `json:"error,omitempty"`
	Source       string       `json:"source,omitempty"`
}

// OK reports whether the clause was analysed
func (c Clause) OK() bool { return c.Status == StatusSuccess }

// Sentence is the merged analysis returned to callers
type Sentence struct {
	Input        string       `json:"input"`
	Status       Status       `json:"status"`
	Segmentation []string     `json:"segmentation"`
	Morph        []MorphEntry `json:"morph"`
	Error        string       `json:"error"`
	Source       string       `json:"source"`
}
