package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/andrew-torda/condense/pkg/common"
)

const nexIn = "#NEXUS\ndimensions ntax=3;\nmatrix\nt1 ACGT\nt2 ACGT\nt3 TTTT\n;\n"

func run(args ...string) error {
	cmd := newRootCmd()
	cmd.SetArgs(args)
	return cmd.Execute()
}

func TestArgCount(t *testing.T) {
	for _, args := range [][]string{{}, {"a"}, {"a", "b", "c"}, {"--no-such-flag", "a", "b"}} {
		var uerr usageError
		if err := run(args...); !errors.As(err, &uerr) {
			t.Errorf("args %v: want usage error, got %v", args, err)
		}
	}
}

func TestCondense(t *testing.T) {
	in, err := common.WrtTemp(nexIn)
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(in)
	out := filepath.Join(t.TempDir(), "out.nex")
	if err := run(in, out); err != nil {
		t.Fatal(err)
	}
	b, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(b), "dimensions NTAX=2;\nmatrix\nA\tACGT\nB\tTTTT\n;\n;\n") {
		t.Fatalf("unexpected output\n%s", b)
	}
}

// TestConfigAndFlags has a config file asking for a report, but the
// command line says dry run, so nothing may be written.
func TestConfigAndFlags(t *testing.T) {
	dir := t.TempDir()
	in, err := common.WrtTemp(nexIn)
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(in)
	rpt := filepath.Join(dir, "report.tsv")
	cfg := filepath.Join(dir, "condense.yaml")
	if err := os.WriteFile(cfg, []byte("report: "+rpt+"\n"), 0644); err != nil {
		t.Fatal(err)
	}
	out := filepath.Join(dir, "out.nex")
	if err := run("-c", cfg, "--dry-run", in, out); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(rpt); err == nil {
		t.Fatal("dry run wrote a report")
	}
	if err := run("-c", cfg, in, out); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(rpt); err != nil {
		t.Fatal("report from config file not written", err)
	}
}

func TestStrictFlag(t *testing.T) {
	in, err := common.WrtTemp("#nexus\nmatrix\nlonely\n;\n")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(in)
	out := filepath.Join(t.TempDir(), "out.nex")
	if err := run(in, out); err != nil {
		t.Fatal("lenient mode should skip the line", err)
	}
	if err := run("-s", in, out); err == nil {
		t.Fatal("strict mode should fail")
	}
}
