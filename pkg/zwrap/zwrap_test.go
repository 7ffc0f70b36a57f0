// Test Zwrap
package zwrap_test

import (
	"bytes"
	"compress/gzip"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/ulikunitz/xz"

	"github.com/andrew-torda/condense/pkg/zwrap"
)

// gzipped holds "andrewsayshello", no newline.
var gzipped = []byte{
	0x1f, 0x8b, 0x08, 0x00, 0xb6, 0xf1, 0xa0, 0x5b, 0x00, 0x03,
	0x4b, 0xcc, 0x4b, 0x29, 0x4a, 0x2d, 0x2f, 0x4e, 0xac, 0x2c,
	0xce, 0x48, 0xcd, 0xc9, 0xc9, 0x07, 0x00, 0x44, 0xa8, 0x66,
	0x89, 0x0f, 0x00, 0x00, 0x00}

const plain = "andrewsayshello"

const nexusTxt = "#NEXUS\nmatrix\nt1 acgt\n;\n"

func xzBytes(t *testing.T, s string) []byte {
	var b bytes.Buffer
	w, err := xz.NewWriter(&b)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := io.WriteString(w, s); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	return b.Bytes()
}

func gzBytes(t *testing.T, s string) []byte {
	var b bytes.Buffer
	w := gzip.NewWriter(&b)
	io.WriteString(w, s)
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	return b.Bytes()
}

// writeToTmp writes a bitslice to a temporary file and returns
// a file pointer.
func writeToTmp(t *testing.T, data []byte) *os.File {
	tmpf, err := os.CreateTemp("", "del_me_testing")
	if err != nil {
		t.Fatal("Fail getting TempFile")
	}
	t.Cleanup(func() { os.Remove(tmpf.Name()) })
	if _, err := tmpf.Write(data); err != nil {
		t.Fatal("fail writing to tempfile")
	}
	if _, err := tmpf.Seek(0, io.SeekStart); err != nil {
		t.Fatal("Seek fail on " + tmpf.Name())
	}
	return tmpf
}

func TestWrap(t *testing.T) {
	tests := []struct {
		data []byte
		kind zwrap.Kind
		want string
	}{
		{gzipped, zwrap.Gzip, plain},
		{[]byte(plain), zwrap.Plain, plain},
		{gzBytes(t, nexusTxt), zwrap.Gzip, nexusTxt},
		{xzBytes(t, nexusTxt), zwrap.Xz, nexusTxt},
		{[]byte{}, zwrap.Plain, ""},
		{[]byte("x"), zwrap.Plain, "x"},
	}
	for i, x := range tests {
		r, err := zwrap.Wrap(writeToTmp(t, x.data))
		if err != nil {
			t.Fatalf("test %d: %v", i, err)
		}
		if r.Kind() != x.kind {
			t.Errorf("test %d: want %v got %v", i, x.kind, r.Kind())
		}
		b, err := io.ReadAll(r)
		if err != nil {
			t.Errorf("test %d: reading: %v", i, err)
		}
		if string(b) != x.want {
			t.Errorf("test %d: wrong string: %q", i, b)
		}
		if err := r.Close(); err != nil {
			t.Errorf("Error closing: %s", err)
		}
	}
}

// TestBrokenGzip has the right magic number, but rubbish after.
func TestBrokenGzip(t *testing.T) {
	rdr := io.NopCloser(strings.NewReader("\x1f\x8bnot really"))
	if _, err := zwrap.Wrap(rdr); err == nil {
		t.Fatal("expected error from broken gzip header")
	}
}
