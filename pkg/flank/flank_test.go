package flank_test

import (
	"errors"
	"math/rand"
	"strings"
	"testing"

	. "github.com/eoinleen/protein-domain-Colabfold-pipeline/pkg/flank"
	"github.com/eoinleen/protein-domain-Colabfold-pipeline/pkg/randseq"
)

const (
	nFlank = "VYTEDEWQKEWNELIKLASSEP"
	cFlank = "EPVYESLEEFHVFVLAHVLRRP"
)

func TestExtractDesign(t *testing.T) {
	full := "MEMPICAFQLPDLTVYNEDF" + nFlank +
		"RGEERFERETIKSLERILESLKRLKKIAEKEGKKEKAEKYEKEAAEKEKELAAKKAEFAKVAPLDT" +
		cFlank + "IVVVADTMLRGPGG"
	got, err := Extract(full, Spec{NFlank: nFlank, CFlank: cFlank, Keep: 5})
	if err != nil {
		t.Fatal(err)
	}
	const want = "ASSEPRGEERFERETIKSLERILESLKRLKKIAEKEGKKEKAEKYEKEAAEKEKELAAKKAEFAKVAPLDTEPVYE"
	if got != want {
		t.Fatalf("got\n%s\nwanted\n%s", got, want)
	}
	if !strings.HasPrefix(got, "ASSEP") || !strings.HasSuffix(got, "EPVYE") {
		t.Fatal("domain should start with the last 5 of N and end with the first 5 of C")
	}
}

func TestExtract(t *testing.T) {
	tests := []struct {
		name string
		s    string
		sp   Spec
		want string
	}{
		{"keep nothing", "xxAAmidBBxx", Spec{NFlank: "AA", CFlank: "BB"}, "mid"},
		{"keep one", "xxAAmidBBxx", Spec{NFlank: "AA", CFlank: "BB", Keep: 1}, "AmidB"},
		{"keep whole flanks", "xxAAmidBBxx", Spec{NFlank: "AA", CFlank: "BB", Keep: 2}, "AAmidBB"},
		{"first N occurrence", "XAZAYB", Spec{NFlank: "A", CFlank: "B"}, "ZAY"},
		{"first C occurrence", "AmidBlateB", Spec{NFlank: "A", CFlank: "B"}, "mid"},
		{"flanks at the ends", "NNdomCC", Spec{NFlank: "NN", CFlank: "CC", Keep: 2}, "NNdomCC"},
		{"adjacent flanks keep", "xNNCCx", Spec{NFlank: "NN", CFlank: "CC", Keep: 1}, "NC"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Extract(tt.s, tt.sp)
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Fatalf("got %q wanted %q", got, tt.want)
			}
		})
	}
}

func TestNotFound(t *testing.T) {
	_, err := Extract("ABCDEF", Spec{NFlank: "ZZZ", CFlank: "DEF"})
	var nf *NotFoundError
	if !errors.As(err, &nf) || nf.Which != NTerm {
		t.Fatal("wanted N-terminal not found, got", err)
	}
	if !errors.Is(err, ErrNotFound) {
		t.Fatal("should match ErrNotFound")
	}

	_, err = Extract("ABCDEF", Spec{NFlank: "ABC", CFlank: "QQ"})
	if !errors.As(err, &nf) || nf.Which != CTerm || nf.Flank != "QQ" {
		t.Fatal("wanted C-terminal not found, got", err)
	}

	// N is checked first when both are missing
	_, err = Extract("ABCDEF", Spec{NFlank: "XX", CFlank: "YY"})
	if !errors.As(err, &nf) || nf.Which != NTerm {
		t.Fatal("wanted N-terminal reported first, got", err)
	}
	if !strings.Contains(err.Error(), "N-terminal") || !strings.Contains(err.Error(), "XX") {
		t.Fatal("message lacks context:", err)
	}
}

func TestCaseSensitive(t *testing.T) {
	if _, err := Extract("xxaamidbbxx", Spec{NFlank: "AA", CFlank: "BB"}); !errors.Is(err, ErrNotFound) {
		t.Fatal("lower case should not match, got", err)
	}
}

func TestOrder(t *testing.T) {
	_, err := Extract("BXXXA", Spec{NFlank: "A", CFlank: "B"})
	var oe *OrderError
	if !errors.As(err, &oe) {
		t.Fatal("wanted order error, got", err)
	}
	if oe.NPos != 4 || oe.CPos != 0 {
		t.Fatal("positions", oe.NPos, oe.CPos)
	}
	if !errors.Is(err, ErrOrder) {
		t.Fatal("should match ErrOrder")
	}
	// Same start is not good enough.
	if _, err := Extract("ABxx", Spec{NFlank: "AB", CFlank: "A"}); !errors.Is(err, ErrOrder) {
		t.Fatal("equal positions should be an order error, got", err)
	}
}

func TestSpan(t *testing.T) {
	// Overlapping flanks: N at 0, C at 1, start 3 end 1.
	_, err := Extract("ABCD", Spec{NFlank: "ABC", CFlank: "BCD"})
	var se *SpanError
	if !errors.As(err, &se) {
		t.Fatal("wanted span error, got", err)
	}
	if se.Start != 3 || se.End != 1 {
		t.Fatal("bounds", se.Start, se.End)
	}
	// Adjacent flanks with nothing kept give an empty domain.
	if _, err := Extract("xNNCCx", Spec{NFlank: "NN", CFlank: "CC"}); !errors.Is(err, ErrSpan) {
		t.Fatal("empty domain should be an error, got", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		sp     Spec
		nIssue int
	}{
		{"good", Spec{NFlank: nFlank, CFlank: cFlank, Keep: 5}, 0},
		{"keep zero", Spec{NFlank: "A", CFlank: "B"}, 0},
		{"keep equals flank", Spec{NFlank: "AB", CFlank: "CD", Keep: 2}, 0},
		{"empty N", Spec{CFlank: "B"}, 1},
		{"both empty", Spec{}, 2},
		{"negative keep", Spec{NFlank: "A", CFlank: "B", Keep: -1}, 1},
		{"keep too long for N", Spec{NFlank: "AB", CFlank: "CDEF", Keep: 3}, 1},
		{"keep too long for both", Spec{NFlank: "AB", CFlank: "CD", Keep: 3}, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.sp.Validate()
			if tt.nIssue == 0 {
				if err != nil {
					t.Fatal(err)
				}
				return
			}
			var ce *ConfigError
			if !errors.As(err, &ce) {
				t.Fatal("wanted config error, got", err)
			}
			if len(ce.Issues) != tt.nIssue {
				t.Fatalf("wanted %d issues, got %q", tt.nIssue, ce.Issues)
			}
			if !errors.Is(err, ErrConfig) {
				t.Fatal("should match ErrConfig")
			}
		})
	}
}

func TestPreview(t *testing.T) {
	head, tail := Spec{NFlank: nFlank, CFlank: cFlank, Keep: 5}.Preview()
	if head != "ASSEP" || tail != "EPVYE" {
		t.Fatal("preview", head, tail)
	}
	head, tail = Spec{NFlank: "AB", CFlank: "CD"}.Preview()
	if head != "" || tail != "" {
		t.Fatal("keep 0 preview should be empty", head, tail)
	}
}

func TestRecordError(t *testing.T) {
	_, err := Extract("ABCDEF", Spec{NFlank: "ZZZ", CFlank: "DEF"})
	rerr := &RecordError{ID: "6_dir6_n1-3_20250705_33_7", Err: err}
	if !errors.Is(rerr, ErrNotFound) {
		t.Fatal("RecordError should unwrap")
	}
	if !strings.HasPrefix(rerr.Error(), "6_dir6_n1-3_20250705_33_7: ") {
		t.Fatal(rerr.Error())
	}
}

// TestRandom checks s[npos+len(N)-k : cpos+k] on random designs, and
// that running twice gives the same answer.
func TestRandom(t *testing.T) {
	rnd := rand.New(rand.NewSource(42))
	letters := []byte("ACDEFGHIKLMNPQRSTV") // no W or Y, so flanks cannot occur by chance
	const nf, cf = "WYTEDEW", "YPVYW"
	for i := 0; i < 500; i++ {
		pre, mid, post := rnd.Intn(50), 1+rnd.Intn(200), rnd.Intn(50)
		s, npos, cpos := randseq.Embed(rnd, letters, nf, cf, pre, mid, post)
		k := rnd.Intn(len(cf) + 1)
		sp := Spec{NFlank: nf, CFlank: cf, Keep: k}
		got, err := Extract(string(s), sp)
		if err != nil {
			t.Fatal(err)
		}
		want := string(s[npos+len(nf)-k : cpos+k])
		if got != want {
			t.Fatalf("iteration %d: got %s wanted %s", i, got, want)
		}
		if len(got) != mid+2*k {
			t.Fatalf("iteration %d: length %d wanted %d", i, len(got), mid+2*k)
		}
		if again, _ := Extract(string(s), sp); again != got {
			t.Fatal("second run differs")
		}
	}
}
