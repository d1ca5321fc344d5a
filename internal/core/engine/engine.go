// Package engine runs the Sanskrit Heritage segmenter as a CGI subprocess with a
// hard deadline and reaps its whole process tree when the deadline passes
package engine

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"sktmorph/internal/core/script"
	"sktmorph/internal/core/translit"
	perr "sktmorph/internal/platform/errors"
	"sktmorph/internal/platform/logger"

	"github.com/rs/zerolog"
)

// DefaultTimeout bounds one segmenter run
const DefaultTimeout = 30 * time.Second

// Config is fixed at process start and shared read-only by every invocation
type Config struct {
	Path    string        // segmenter CGI binary
	Dir     string        // working directory, defaults to the directory of Path
	Timeout time.Duration // DefaultTimeout when zero
	Lexicon string        // lex, MW when empty
	Unit    string        // us, f when empty
	Stemmer string        // stemmer, t when empty
	Grace   time.Duration // wait between terminate and kill while reaping
}

// WithDefaults fills unset fields
func (c Config) WithDefaults() Config {
	if c.Dir == "" && c.Path != "" {
		c.Dir = filepath.Dir(c.Path)
	}
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	if c.Lexicon == "" {
		c.Lexicon = "MW"
	}
	if c.Unit == "" {
		c.Unit = "f"
	}
	if c.Stemmer == "" {
		c.Stemmer = "t"
	}
	if c.Grace <= 0 {
		c.Grace = 500 * time.Millisecond
	}
	return c
}

// TimeoutLabel renders the timeout for messages, 30s rather than 30.000s
func (c Config) TimeoutLabel() string {
	d := c.WithDefaults().Timeout
	if d%time.Second == 0 {
		return fmt.Sprintf("%ds", int(d/time.Second))
	}
	return d.String()
}

// TextType tells the segmenter whether the input is a single word or a sentence
type TextType string

// Text types
const (
	Word     TextType = "word"
	Sentence TextType = "sent"
)

// Code is the st value the segmenter expects
func (t TextType) Code() string {
	if t == Word {
		return "f"
	}
	return "t"
}

// ParseTextType accepts word or sent
func ParseTextType(s string) (TextType, error) {
	switch TextType(strings.ToLower(strings.TrimSpace(s))) {
	case Word:
		return Word, nil
	case Sentence:
		return Sentence, nil
	}
	return "", perr.InvalidArgf("unsupported text type %q", s)
}

// SegMode picks the first solution or the best ranked ones
type SegMode string

// Segmentation modes
const (
	First SegMode = "first"
	Best  SegMode = "best"
)

// Code is the mode value the segmenter expects
func (m SegMode) Code() string {
	if m == First {
		return "s"
	}
	return "l"
}

// ParseSegMode accepts first or best
func ParseSegMode(s string) (SegMode, error) {
	switch SegMode(strings.ToLower(strings.TrimSpace(s))) {
	case First:
		return First, nil
	case Best:
		return Best, nil
	}
	return "", perr.InvalidArgf("unsupported segmentation mode %q", s)
}

// Params are the per-request knobs forwarded to the segmenter
type Params struct {
	TextType TextType
	Mode     SegMode
	Display  script.Display
}

// Query is the CGI parameter set. Values are sent verbatim, not URL-escaped,
// because the segmenter reads the raw clause text
type Query struct {
	Lexicon  string
	Unit     string
	TextType string
	Font     string
	Encoding string
	Text     string
	Mode     string
	Stemmer  string
}

// Encode renders the QUERY_STRING value
func (q Query) Encode() string {
	return strings.Join([]string{
		"lex=" + q.Lexicon,
		"us=" + q.Unit,
		"st=" + q.TextType,
		"font=" + q.Font,
		"t=" + q.Encoding,
		"text=" + q.Text,
		"mode=" + q.Mode,
		"stemmer=" + q.Stemmer,
	}, "&")
}

// Status is the transport-level result of one run. Output is never inspected here
type Status string

// Invocation statuses
const (
	StatusSuccess  Status = "Success"
	StatusTimeout  Status = "Timeout"
	StatusFailure  Status = "Failure"
	StatusRejected Status = "Rejected" // input failed the script probe and was never sent
)

// Outcome is what one run produced
type Outcome struct {
	Output  string
	Status  Status
	Elapsed time.Duration
	Reaped  int
	Err     error
}

// Invoker runs the segmenter
type Invoker struct {
	cfg Config
}

// New returns an Invoker for cfg
func New(cfg Config) *Invoker { return &Invoker{cfg: cfg.WithDefaults()} }

// Config returns the effective configuration
func (iv *Invoker) Config() Config { return iv.cfg }

// Query builds the parameter set for one clause. Display scripts the segmenter
// cannot render fall back to roma
func (iv *Invoker) Query(text string, enc translit.Scheme, p Params) Query {
	font := script.Roma
	if p.Display == script.Deva {
		font = script.Deva
	}
	tt := p.TextType
	if tt == "" {
		tt = Sentence
	}
	mode := p.Mode
	if mode == "" {
		mode = First
	}
	return Query{
		Lexicon:  iv.cfg.Lexicon,
		Unit:     iv.cfg.Unit,
		TextType: tt.Code(),
		Font:     string(font),
		Encoding: string(enc),
		Text:     text,
		Mode:     mode.Code(),
		Stemmer:  iv.cfg.Stemmer,
	}
}

// Invoke runs the segmenter on one clause. It always returns an Outcome;
// failures are reported through Status, never as a panic or a partial result
func (iv *Invoker) Invoke(ctx context.Context, text string, enc translit.Scheme, p Params) Outcome {
	log := logger.C(ctx).With().Str("component", "engine").Logger()
	q := iv.Query(text, enc, p)

	out := iv.run(ctx, q)
	var ev *zerolog.Event
	if out.Status == StatusSuccess {
		ev = log.Debug()
	} else {
		ev = log.Warn().Err(out.Err).Int("reaped", out.Reaped)
	}
	ev.Int("text_len", len(text)).
		Str("encoding", string(enc)).
		Str("status", string(out.Status)).
		Dur("elapsed", out.Elapsed).
		Msg("segmenter run")
	return out
}

func (iv *Invoker) run(ctx context.Context, q Query) Outcome {
	start := time.Now()
	if iv.cfg.Path == "" {
		return Outcome{Status: StatusFailure, Err: perr.Enginef("segmenter path is not configured")}
	}

	ctx, cancel := context.WithTimeout(ctx, iv.cfg.Timeout)
	defer cancel()

	var stdout, stderr bytes.Buffer
	cmd := exec.Command(iv.cfg.Path)
	cmd.Dir = iv.cfg.Dir
	cmd.Env = append(os.Environ(), "QUERY_STRING="+q.Encode())
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	cmd.WaitDelay = iv.cfg.Grace
	detach(cmd)

	if err := cmd.Start(); err != nil {
		return Outcome{Status: StatusFailure, Elapsed: time.Since(start), Err: perr.Wrap(err, perr.ErrorCodeEngine, "start segmenter")}
	}

	done := make(chan error, 1)
	go func() { done <- cmd.Wait() }()

	select {
	case err := <-done:
		o := Outcome{Output: stdout.String(), Status: StatusSuccess, Elapsed: time.Since(start)}
		var exitErr *exec.ExitError
		if err != nil && !errors.As(err, &exitErr) && !errors.Is(err, exec.ErrWaitDelay) {
			return Outcome{Status: StatusFailure, Elapsed: o.Elapsed, Err: perr.Wrap(err, perr.ErrorCodeEngine, "wait for segmenter")}
		}
		// a non-zero exit still counts as a completed run; the output decides
		o.Err = err
		return o
	case <-ctx.Done():
		reaped := reap(int32(cmd.Process.Pid), iv.cfg.Grace)
		<-done
		o := Outcome{Elapsed: time.Since(start), Reaped: reaped}
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			o.Status = StatusTimeout
			o.Err = perr.Newf(perr.ErrorCodeTimeout, "segmenter exceeded %s", iv.cfg.TimeoutLabel())
		} else {
			o.Status = StatusFailure
			o.Err = perr.Wrap(ctx.Err(), perr.ErrorCodeCanceled, "segmenter run canceled")
		}
		return o
	}
}
