// Test Zwrap
package zwrap_test

import (
	"bytes"
	"compress/gzip"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/eoinleen/protein-domain-Colabfold-pipeline/pkg/pdb/zwrap"
)

const atomLine = "ATOM      1  N   MET A   1      11.104   6.134  -6.504  1.00  0.00           N\n"

func gz(t *testing.T, s string) []byte {
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	if _, err := zw.Write([]byte(s)); err != nil {
		t.Fatal(err)
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

// TestOpen writes the same text plain and compressed, and checks that
// both read back the same.
func TestOpen(t *testing.T) {
	dir := t.TempDir()
	plain := filepath.Join(dir, "x.pdb")
	packed := filepath.Join(dir, "x.pdb.gz")
	if err := os.WriteFile(plain, []byte(atomLine), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(packed, gz(t, atomLine), 0o644); err != nil {
		t.Fatal(err)
	}
	for _, tt := range []struct {
		fname      string
		compressed bool
	}{{plain, false}, {packed, true}} {
		r, err := zwrap.Open(tt.fname)
		if err != nil {
			t.Fatal(err)
		}
		if r.Compressed() != tt.compressed {
			t.Error(tt.fname, "compressed should be", tt.compressed)
		}
		b, err := io.ReadAll(r)
		if err != nil {
			t.Fatal(err)
		}
		if string(b) != atomLine {
			t.Errorf("%s read back as %q", tt.fname, b)
		}
		if err := r.Close(); err != nil {
			t.Fatal(err)
		}
	}
}

func TestWrapPlain(t *testing.T) {
	if _, err := zwrap.Wrap(io.NopCloser(bytes.NewReader([]byte(atomLine)))); err == nil {
		t.Fatal("Wrap should refuse plain text")
	}
}

func TestOpenMissing(t *testing.T) {
	if _, err := zwrap.Open(filepath.Join(t.TempDir(), "missing.pdb")); err == nil {
		t.Fatal("expected error on missing file")
	}
}
