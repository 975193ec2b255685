package commands

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bendavis78/corne-case/fault"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRoot()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestLayoutCommand(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	out, err := run(t, "layout", "--cols", "5", "--out", dir, "--no-preview")
	if err != nil {
		t.Fatal(err)
	}
	if got := strings.Count(out, "\n"); got != 1+3+15+5 {
		t.Errorf("printed %d lines", got)
	}
	if _, err := os.Stat(filepath.Join(dir, "dxf", "layout.dxf")); err != nil {
		t.Error(err)
	}
}

func TestColsPrecedence(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "layout.hcl")
	if err := os.WriteFile(path, []byte("cols = 5\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	out := filepath.Join(tmp, "out")
	for _, test := range []struct {
		args []string
		cols int
	}{
		{nil, 6},
		{[]string{"--config", path}, 5},
		{[]string{"--config", path, "--cols", "6"}, 6},
	} {
		args := append([]string{"layout", "--out", out, "--no-preview"}, test.args...)
		printed, err := run(t, args...)
		if err != nil {
			t.Fatal(err)
		}
		if got, want := strings.Count(printed, "\n"), 1+3+3*test.cols+5; got != want {
			t.Errorf("%v: printed %d lines, want %d", test.args, got, want)
		}
	}
}

func TestCommandErrors(t *testing.T) {
	dir := t.TempDir()
	if _, err := run(t, "validate", "--cols", "4", "--out", dir); !errors.Is(err, fault.InvalidColumnCount) {
		t.Errorf("cols 4: got %v", err)
	}
	if _, err := run(t, "generate", "--cells", "10", "--out", filepath.Join(dir, "coarse")); !errors.Is(err, fault.CoarseMesh) {
		t.Errorf("cells 10: got %v", err)
	}
	if _, err := run(t, "layout", "--log-level", "loud", "--out", dir); err == nil {
		t.Error("bad log level accepted")
	}
	if _, err := run(t, "layout", "--compensate-shrink", "ABS", "--out", dir); err == nil {
		t.Error("unknown material accepted")
	}
	if _, err := run(t, "layout", "--config", filepath.Join(dir, "missing.hcl"), "--out", dir); err == nil {
		t.Error("missing config accepted")
	}
}
