package brokenio_test

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/eoinleen/protein-domain-Colabfold-pipeline/pkg/brokenio"
)

var longstring = "MQIFVKTLTGKTITLEVEPSDTIENVKAKIQDKEGIPPDQ"

// testFrac - wipe out different fractions of the input buffer.
func testFrac(t *testing.T, frac float32, wantKeep int) {
	s := make([]byte, len(longstring))
	rdr := brokenio.NewReader(io.NopCloser(strings.NewReader(longstring)))
	rdr.SetProbFail(1)
	rdr.SetFracFail(frac)
	n, err := rdr.Read(s)
	if n != wantKeep {
		t.Fatalf("frac %g kept %d wanted %d", frac, n, wantKeep)
	}
	if !bytes.Equal(s[:n], []byte(longstring[:n])) {
		t.Error("contents changed with frac", frac)
	}
	if frac > 0 && err == nil {
		t.Error("expected an error with frac", frac)
	}
	if frac == 0 && err != nil {
		t.Error("unexpected error", err)
	}
}

func TestFrac(t *testing.T) {
	testFrac(t, 0, 40)
	testFrac(t, 0.25, 30)
	testFrac(t, 0.5, 20)
	testFrac(t, 1, 0)
}

func TestZeroFile(t *testing.T) {
	rdr := brokenio.NewReader(io.NopCloser(strings.NewReader(longstring)))
	rdr.SetProbZeroFile(1)
	b, err := io.ReadAll(rdr)
	if err != nil {
		t.Fatal(err)
	}
	if len(b) != 0 {
		t.Fatal("expected zero length file, got", len(b))
	}
}

func TestNoFailure(t *testing.T) {
	rdr := brokenio.NewReader(io.NopCloser(strings.NewReader(longstring)))
	b, err := io.ReadAll(rdr)
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != longstring || rdr.NBytes() != len(longstring) {
		t.Fatal("clean reader changed the data")
	}
	if err := rdr.Close(); err != nil {
		t.Fatal(err)
	}
}
