package testkit

import (
	"os"
	"strings"
	"testing"
)

func TestWriteScript(t *testing.T) {
	p := WriteScript(t, "hello.sh", "echo hi\n")
	st, err := os.Stat(p)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if st.Mode().Perm()&0o100 == 0 {
		t.Fatalf("script not executable: %v", st.Mode())
	}
	b, _ := os.ReadFile(p)
	if !strings.HasPrefix(string(b), "#!/bin/sh\n") {
		t.Fatalf("missing shebang: %q", b)
	}
}
