package engine

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"sktmorph/internal/core/script"
	"sktmorph/internal/core/translit"
	perr "sktmorph/internal/platform/errors"
	kit "sktmorph/internal/platform/testkit"

	"github.com/shirou/gopsutil/v4/process"
)

func TestQuery_Encode(t *testing.T) {
	q := Query{Lexicon: "MW", Unit: "f", TextType: "t", Font: "roma", Encoding: "WX", Text: "rAmaH vanam", Mode: "s", Stemmer: "t"}
	want := "lex=MW&us=f&st=t&font=roma&t=WX&text=rAmaH vanam&mode=s&stemmer=t"
	if got := q.Encode(); got != want {
		t.Fatalf("Encode()=%q want %q", got, want)
	}
}

func TestInvoker_Query(t *testing.T) {
	iv := New(Config{Path: "/opt/sh/interface2"})
	tests := []struct {
		name string
		p    Params
		want string
	}{
		{"defaults", Params{}, "lex=MW&us=f&st=t&font=roma&t=WX&text=x&mode=s&stemmer=t"},
		{"deva word best", Params{TextType: Word, Mode: Best, Display: script.Deva}, "lex=MW&us=f&st=f&font=deva&t=WX&text=x&mode=l&stemmer=t"},
		{"wx display falls back to roma", Params{Display: script.WX}, "lex=MW&us=f&st=t&font=roma&t=WX&text=x&mode=s&stemmer=t"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := iv.Query("x", translit.WX, tc.p).Encode(); got != tc.want {
				t.Fatalf("got %q want %q", got, tc.want)
			}
		})
	}
	if iv.Config().Dir != "/opt/sh" {
		t.Fatalf("Dir=%q", iv.Config().Dir)
	}
}

func TestConfig_TimeoutLabel(t *testing.T) {
	for d, want := range map[time.Duration]string{0: "30s", 5 * time.Second: "5s", 300 * time.Millisecond: "300ms"} {
		if got := (Config{Timeout: d}).TimeoutLabel(); got != want {
			t.Fatalf("TimeoutLabel(%v)=%q want %q", d, got, want)
		}
	}
}

func TestParseEnums(t *testing.T) {
	if tt, err := ParseTextType(" Word "); err != nil || tt != Word {
		t.Fatalf("ParseTextType: %q %v", tt, err)
	}
	if _, err := ParseTextType("line"); !perr.IsCode(err, perr.ErrorCodeInvalidArgument) {
		t.Fatalf("ParseTextType line: %v", err)
	}
	if m, err := ParseSegMode("best"); err != nil || m != Best {
		t.Fatalf("ParseSegMode: %q %v", m, err)
	}
	if _, err := ParseSegMode("all"); !perr.IsCode(err, perr.ErrorCodeInvalidArgument) {
		t.Fatalf("ParseSegMode all: %v", err)
	}
	if Word.Code() != "f" || Sentence.Code() != "t" || First.Code() != "s" || Best.Code() != "l" {
		t.Fatal("code mapping changed")
	}
}

func TestInvoke_Success(t *testing.T) {
	path := kit.WriteScript(t, "interface2", `echo "qs=$QUERY_STRING"
echo "cwd=$(pwd -P)"
echo '{"segmentation":["rAma"]}'
`)
	iv := New(Config{Path: path, Timeout: 5 * time.Second})
	out := iv.Invoke(context.Background(), "rAma", translit.WX, Params{Display: script.Roma})
	if out.Status != StatusSuccess || out.Err != nil {
		t.Fatalf("status=%s err=%v", out.Status, out.Err)
	}
	kit.MustContain(t, out.Output, "qs=lex=MW&us=f&st=t&font=roma&t=WX&text=rAma&mode=s&stemmer=t")
	dir, _ := filepath.EvalSymlinks(filepath.Dir(path))
	kit.MustContain(t, out.Output, "cwd="+dir)
	if !strings.HasSuffix(out.Output, "{\"segmentation\":[\"rAma\"]}\n") {
		t.Fatalf("output=%q", out.Output)
	}
}

func TestInvoke_NonZeroExitStillSucceeds(t *testing.T) {
	path := kit.WriteScript(t, "interface2", "echo partial\nexit 3\n")
	out := New(Config{Path: path, Timeout: 5 * time.Second}).Invoke(context.Background(), "a", translit.WX, Params{})
	if out.Status != StatusSuccess || out.Output != "partial\n" {
		t.Fatalf("status=%s output=%q", out.Status, out.Output)
	}
}

func TestInvoke_Failure(t *testing.T) {
	out := New(Config{Path: filepath.Join(t.TempDir(), "missing")}).Invoke(context.Background(), "a", translit.WX, Params{})
	if out.Status != StatusFailure || out.Output != "" || !perr.IsCode(out.Err, perr.ErrorCodeEngine) {
		t.Fatalf("missing binary: %+v", out)
	}
	out = New(Config{}).Invoke(context.Background(), "a", translit.WX, Params{})
	if out.Status != StatusFailure {
		t.Fatalf("empty path: %+v", out)
	}
}

func alive(pid int32) bool {
	p, err := process.NewProcess(pid)
	if err != nil {
		return false
	}
	return running(p)
}

func TestInvoke_TimeoutReapsDescendants(t *testing.T) {
	pidFile := filepath.Join(t.TempDir(), "child.pid")
	path := kit.WriteScript(t, "interface2", fmt.Sprintf(`sleep 30 &
echo $! > %q
echo "diagnostic"
sleep 30
`, pidFile))

	const timeout = 300 * time.Millisecond
	iv := New(Config{Path: path, Timeout: timeout, Grace: 200 * time.Millisecond})
	out := iv.Invoke(context.Background(), "rAma", translit.WX, Params{})

	if out.Status != StatusTimeout {
		t.Fatalf("status=%s err=%v", out.Status, out.Err)
	}
	if out.Output != "" {
		t.Fatalf("timeout must drop output, got %q", out.Output)
	}
	if out.Elapsed > timeout+3*time.Second {
		t.Fatalf("took %v", out.Elapsed)
	}
	if out.Reaped < 2 {
		t.Fatalf("reaped=%d, want the script and its sleeper", out.Reaped)
	}
	if !perr.IsCode(out.Err, perr.ErrorCodeTimeout) {
		t.Fatalf("err=%v", out.Err)
	}

	raw, err := os.ReadFile(pidFile)
	if err != nil {
		t.Fatalf("child pid: %v", err)
	}
	pid, err := strconv.Atoi(strings.TrimSpace(string(raw)))
	if err != nil {
		t.Fatalf("child pid %q: %v", raw, err)
	}
	deadline := time.Now().Add(2 * time.Second)
	for alive(int32(pid)) {
		if time.Now().After(deadline) {
			t.Fatalf("descendant %d still running", pid)
		}
		time.Sleep(20 * time.Millisecond)
	}
}

func TestInvoke_CallerCancel(t *testing.T) {
	path := kit.WriteScript(t, "interface2", "sleep 30\n")
	ctx, cancel := context.WithCancel(context.Background())
	time.AfterFunc(100*time.Millisecond, cancel)
	out := New(Config{Path: path, Timeout: 10 * time.Second, Grace: 100 * time.Millisecond}).Invoke(ctx, "a", translit.WX, Params{})
	if out.Status != StatusFailure || !perr.IsCode(out.Err, perr.ErrorCodeCanceled) {
		t.Fatalf("status=%s err=%v", out.Status, out.Err)
	}
}
