// Command sktmorph segments and morphologically analyses Sanskrit text.
//
//	sktmorph [flags] input_enc output_enc text_type seg_mode
//
// One of -t (a single sentence) or -i (a file with one sentence per line) is
// required. Results are JSON, one document per line
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"sktmorph/internal/core/analysis"
	"sktmorph/internal/modkit"
	"sktmorph/internal/modkit/module"
	"sktmorph/internal/platform/config"
	perr "sktmorph/internal/platform/errors"
	"sktmorph/internal/platform/logger"
	pstrings "sktmorph/internal/platform/strings"
	"sktmorph/internal/platform/validate"
	"sktmorph/internal/services/analyze/domain"
	analyzemod "sktmorph/internal/services/analyze/module"
)

// MsgNoSentence is printed for an input file without any sentence
const MsgNoSentence = "Specified input file does not have any sentence."

const usageLine = "usage: sktmorph [-t text | -i file] [-o file] [-parallel] input_enc output_enc text_type seg_mode"

type options struct {
	text     string
	input    string
	output   string
	parallel bool
	params   domain.Params
}

// analyzerFor builds the pipeline. Tests swap it for a stub
var analyzerFor = func(ctx context.Context, cfg config.Conf) (domain.AnalyzerPort, func(), error) {
	db, err := analyzemod.OpenCache(ctx, cfg)
	if err != nil {
		// the cache is an optimisation; analyse without it
		logger.C(ctx).Warn().Err(err).Msg("analysis cache unavailable")
	}
	m := analyzemod.New(modkit.Deps{Log: logger.Get(), Cfg: cfg, PG: db}, analyzemod.Options{})
	closeFn := func() {
		if db != nil {
			db.Close()
		}
	}
	return module.MustPortsOf[domain.AnalyzerPort](m), closeFn, nil
}

func main() {
	logger.Init(logger.FromEnv())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	opt, err := parseArgs(args, stderr)
	if err != nil {
		fmt.Fprintln(stderr, err)
		fmt.Fprintln(stderr, usageLine)
		return perr.ExitCode(err)
	}
	p, err := opt.params.Resolve()
	if err != nil {
		fmt.Fprintln(stderr, err)
		return perr.ExitCode(err)
	}

	var sentences []string
	if opt.input != "" {
		if sentences, err = readSentences(opt.input); err != nil {
			if perr.IsCode(err, perr.ErrorCodeEmptyInput) {
				fmt.Fprintln(stdout, MsgNoSentence)
			} else {
				fmt.Fprintln(stderr, err)
			}
			return perr.ExitCode(err)
		}
	}

	svc, closeFn, err := analyzerFor(ctx, config.New())
	if err != nil {
		fmt.Fprintln(stderr, err)
		return perr.ExitRuntime
	}
	defer closeFn()

	var results []analysis.Sentence
	if opt.input != "" {
		results, err = svc.AnalyzeBatch(ctx, sentences, p, opt.parallel)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return perr.ExitRuntime
		}
	} else {
		results = []analysis.Sentence{svc.Analyze(ctx, opt.text, p)}
	}

	body, err := encodeLines(results)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return perr.ExitRuntime
	}

	if opt.output == "" {
		_, err = stdout.Write(append(body, '\n'))
	} else {
		err = os.WriteFile(opt.output, body, 0o644)
	}
	if err != nil {
		fmt.Fprintln(stderr, perr.Wrap(err, perr.ErrorCodeUnknown, "write results"))
		return perr.ExitRuntime
	}
	return perr.ExitOK
}

// parseArgs accepts flags before, between and after the four positionals
func parseArgs(args []string, stderr io.Writer) (options, error) {
	var opt options
	fs := flag.NewFlagSet("sktmorph", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opt.text, "t", "", "input sentence")
	fs.StringVar(&opt.input, "i", "", "input file, one sentence per line")
	fs.StringVar(&opt.output, "o", "", "output file (default output.txt with -i, stdout with -t)")
	fs.BoolVar(&opt.parallel, "parallel", false, "analyse file lines on all CPUs")

	var pos []string
	for {
		if err := fs.Parse(args); err != nil {
			return opt, perr.Wrap(err, perr.ErrorCodeInvalidArgument, "bad flags")
		}
		if fs.NArg() == 0 {
			break
		}
		pos = append(pos, fs.Arg(0))
		args = fs.Args()[1:]
	}

	if len(pos) != 4 {
		return opt, perr.InvalidArgf("expected 4 positional arguments, got %d", len(pos))
	}
	opt.params = domain.Params{
		InputEncoding:    pos[0],
		OutputEncoding:   pos[1],
		TextType:         pos[2],
		SegmentationMode: pos[3],
	}
	if err := validate.Struct(opt.params); err != nil {
		return opt, err
	}

	switch {
	case opt.text != "" && opt.input != "":
		return opt, perr.InvalidArgf("Please specify either input text ('-t') or input file ('-i, -o')")
	case opt.text == "" && opt.input == "":
		return opt, perr.InvalidArgf("Please specify one of text ('-t') or file ('-i & -o')")
	case opt.input != "" && opt.output == "":
		opt.output = "output.txt"
	}
	return opt, nil
}

// readSentences returns the non-blank lines of path
func readSentences(path string) ([]string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeNotFound, "read input file")
	}
	text := strings.TrimSpace(string(b))
	if text == "" {
		return nil, perr.EmptyInputf("%s", MsgNoSentence)
	}
	var out []string
	for _, line := range strings.Split(text, "\n") {
		if pstrings.IsBlank(line) {
			continue
		}
		out = append(out, strings.TrimRight(line, "\r"))
	}
	return out, nil
}

// encodeLines renders one JSON document per result, newline separated,
// with non-ASCII and markup left unescaped
func encodeLines(results []analysis.Sentence) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	for _, r := range results {
		if err := enc.Encode(r); err != nil {
			return nil, perr.Wrap(err, perr.ErrorCodeJSON, "encode result")
		}
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
