package brokenio_test

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/andrew-torda/condense/pkg/brokenio"
)

var longstring = "0123456789012345678901234567890123456789"

func TestReaderSimple(t *testing.T) {
	rdr := brokenio.NewReader(strings.NewReader(longstring), 1)
	b, err := io.ReadAll(rdr)
	if err != nil || string(b) != longstring {
		t.Errorf("simple read fail got %q wanted %q, err %v", b, longstring, err)
	}
}

func TestFailAfter(t *testing.T) {
	for _, n := range []int{1, 10, 39} {
		rdr := brokenio.NewReader(strings.NewReader(longstring), 1)
		rdr.SetFailAfter(n)
		b, err := io.ReadAll(rdr)
		if !errors.Is(err, brokenio.ErrBroken) {
			t.Fatal("want ErrBroken, got", err)
		}
		if len(b) != n {
			t.Fatal("want", n, "bytes got", len(b))
		}
	}
}

func TestProbFail(t *testing.T) {
	rdr := brokenio.NewReader(strings.NewReader(longstring), 1)
	rdr.SetProbFail(1)
	if n, err := rdr.Read(make([]byte, 5)); n != 0 || !errors.Is(err, brokenio.ErrBroken) {
		t.Fatal("always failing reader gave", n, err)
	}
}

func Example_setVerbose() {
	rdr := brokenio.NewReader(io.NopCloser(strings.NewReader(longstring)), 1)
	rdr.SetVerbose(true)
	tmp := make([]byte, len(longstring))
	rdr.Read(tmp)
	rdr.Close()
	// Output: Closing 1 calls and 40 bytes
}
