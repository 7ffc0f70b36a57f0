package randseq_test

import (
	"strings"
	"testing"

	"github.com/andrew-torda/condense/pkg/randseq"
)

func TestRandSeq(t *testing.T) {
	var b strings.Builder
	args := randseq.RandSeqArgs{Iseed: 1637, Wrtr: &b, Prefix: "t", Ntaxa: 50, Len: 8, Ndistinct: 5}
	truth, err := randseq.RandSeqMain(&args)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSuffix(b.String(), "\n"), "\n")
	if len(lines) != 5+50+2 {
		t.Fatal("want 57 lines got", len(lines))
	}
	if lines[4] != "matrix" || lines[len(lines)-2] != ";" {
		t.Fatal("matrix block not where expected")
	}
	if truth.NUsed < 1 || truth.NUsed > 5 {
		t.Fatal("bad number of sequences used", truth.NUsed)
	}
	n := 0
	for _, names := range truth.Bucket {
		n += len(names)
	}
	if n != 50 {
		t.Fatal("lost taxa in truth", n)
	}
	if f := strings.Fields(lines[5]); len(f) != 2 || f[0] != "t01" {
		t.Fatal("bad first row", lines[5])
	}
}

func TestSameSeed(t *testing.T) {
	var a, b strings.Builder
	args := randseq.RandSeqArgs{Iseed: 7, Wrtr: &a, Prefix: "x", Ntaxa: 20, Len: 10, Ndistinct: 3}
	randseq.RandSeqMain(&args)
	args.Wrtr = &b
	randseq.RandSeqMain(&args)
	if a.String() != b.String() {
		t.Fatal("same seed gave different files")
	}
}

func TestBadArgs(t *testing.T) {
	var b strings.Builder
	if _, err := randseq.RandSeqMain(&randseq.RandSeqArgs{Wrtr: &b, Ntaxa: 3}); err == nil {
		t.Fatal("want error with no sequences to choose from")
	}
}
