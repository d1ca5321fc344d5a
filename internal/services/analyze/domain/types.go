// Package domain defines the request shapes and ports of the analyze service
package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"sktmorph/internal/core/engine"
	"sktmorph/internal/core/script"
	"sktmorph/internal/core/translit"
)

// Params are the caller-facing analysis options
type Params struct {
	InputEncoding    string `json:"input_encoding"              validate:"required,oneof=DN KH RN SL VH WX" example:"DN"`
	OutputEncoding   string `json:"output_encoding"             validate:"required,oneof=deva roma WX"      example:"roma"`
	TextType         string `json:"text_type,omitempty"         validate:"omitempty,oneof=word sent"         example:"sent"`
	SegmentationMode string `json:"segmentation_mode,omitempty" validate:"omitempty,oneof=first best"        example:"first"`
}

// AnalyzeInput is the single-sentence request body
type AnalyzeInput struct {
	Text string `json:"text" validate:"required,max=20000" example:"रामः वनं गच्छति।"`
	Params
}

// BatchInput is the multi-sentence request body
type BatchInput struct {
	Sentences []string `json:"sentences" validate:"required,min=1,max=1000,dive,max=20000"`
	Parallel  bool     `json:"parallel,omitempty"`
	Params
}

// Resolved are Params parsed into core types
type Resolved struct {
	Input    translit.Scheme
	Display  script.Display
	TextType engine.TextType
	Mode     engine.SegMode
}

// Resolve parses p. text_type defaults to sent and segmentation_mode to first
func (p Params) Resolve() (Resolved, error) {
	in, err := translit.Parse(p.InputEncoding)
	if err != nil {
		return Resolved{}, err
	}
	out, err := script.ParseDisplay(p.OutputEncoding)
	if err != nil {
		return Resolved{}, err
	}
	r := Resolved{Input: in, Display: out, TextType: engine.Sentence, Mode: engine.First}
	if strings.TrimSpace(p.TextType) != "" {
		if r.TextType, err = engine.ParseTextType(p.TextType); err != nil {
			return Resolved{}, err
		}
	}
	if strings.TrimSpace(p.SegmentationMode) != "" {
		if r.Mode, err = engine.ParseSegMode(p.SegmentationMode); err != nil {
			return Resolved{}, err
		}
	}
	return r, nil
}

// EngineParams is the part of r the segmenter sees
func (r Resolved) EngineParams() engine.Params {
	return engine.Params{TextType: r.TextType, Mode: r.Mode, Display: r.Display}
}

// CacheKey identifies one analysis: the options, the segmenter settings and the text
func CacheKey(r Resolved, cfg engine.Config, text string) string {
	h := sha256.New()
	for _, part := range []string{
		"v1", string(r.Input), string(r.Display), string(r.TextType), string(r.Mode),
		cfg.Lexicon, cfg.Unit, cfg.Stemmer, text,
	} {
		h.Write([]byte(part))
		h.Write([]byte{0})
	}
	return hex.EncodeToString(h.Sum(nil))
}

// Encodings lists the accepted enum values for clients
type Encodings struct {
	Input            []string `json:"input_encodings"`
	Output           []string `json:"output_encodings"`
	TextTypes        []string `json:"text_types"`
	SegmentationMode []string `json:"segmentation_modes"`
}

// KnownEncodings reports every accepted enum value
func KnownEncodings() Encodings {
	e := Encodings{
		TextTypes:        []string{string(engine.Word), string(engine.Sentence)},
		SegmentationMode: []string{string(engine.First), string(engine.Best)},
	}
	for _, s := range translit.Schemes {
		e.Input = append(e.Input, string(s))
	}
	for _, d := range script.Displays {
		e.Output = append(e.Output, string(d))
	}
	return e
}
