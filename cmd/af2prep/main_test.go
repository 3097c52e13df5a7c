package main

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	. "github.com/eoinleen/protein-domain-Colabfold-pipeline/pkg/seq/common"
)

func runCmd(t *testing.T, argv ...string) int {
	t.Helper()
	ret := ExitSuccess
	cmd := newRootCmd(&ret)
	cmd.SetArgs(argv)
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	if err := cmd.Execute(); err != nil && ret == ExitSuccess {
		ret = ExitUsageError
	}
	return ret
}

func TestPartnerFile(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "d.fa")
	os.WriteFile(in, []byte(">dom one\nDDDD\n"), 0o644)
	pf := filepath.Join(dir, "partner.txt")
	os.WriteFile(pf, []byte("MKV\nLLE\n"), 0o644)
	out := filepath.Join(dir, "out")
	argv := []string{"-q", "-i", in, "--partner-file", pf, "-o", out, "--combined=false", "--naming", "custom"}
	if r := runCmd(t, argv...); r != ExitSuccess {
		t.Fatal("af2prep returned", r)
	}
	b, err := os.ReadFile(filepath.Join(out, "dom_one_colabfold.fasta"))
	if err != nil {
		t.Fatal(err)
	}
	if want := ">dom one\nMKVLLE:DDDD\n"; string(b) != want {
		t.Errorf("got %q want %q", b, want)
	}
}

func TestConfigOrder(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "d.fa")
	os.WriteFile(in, []byte(">d\nDDDD\n"), 0o644)
	comb := filepath.Join(dir, "all.fasta")
	cfg := filepath.Join(dir, "cfg.yaml")
	os.WriteFile(cfg, []byte("multimer:\n  partner: PPP\n  sequence_order: domain_first\n  create_individual_files: false\n"), 0o644)
	if r := runCmd(t, "-q", "--config", cfg, "-i", in, "--combined-out", comb); r != ExitSuccess {
		t.Fatal("af2prep returned", r)
	}
	b, _ := os.ReadFile(comb)
	if want := ">d\nDDDD:PPP\n"; string(b) != want {
		t.Errorf("got %q want %q", b, want)
	}
}

// TestCombinedStdout checks "-" sends the combined records to stdout
// and does not make a file called "-".
func TestCombinedStdout(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "d.fa")
	os.WriteFile(in, []byte(">d\nDDDD\n"), 0o644)

	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	stdout := os.Stdout
	os.Stdout = w
	ret := runCmd(t, "-q", "-i", in, "-p", "PPP", "--individual=false", "--combined-out", "-")
	os.Stdout = stdout
	w.Close()
	got, _ := io.ReadAll(r)

	if ret != ExitSuccess {
		t.Fatal("af2prep returned", ret)
	}
	if want := ">d\nPPP:DDDD\n"; string(got) != want {
		t.Errorf("stdout got %q want %q", got, want)
	}
	if _, err := os.Stat("-"); err == nil {
		os.Remove("-")
		t.Error("wrote a file called -")
	}
}

func TestUsage(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name string
		argv []string
	}{
		{"no partner", []string{"-q"}},
		{"both partners", []string{"-q", "-p", "MKV", "--partner-file", "x"}},
		{"missing partner file", []string{"-q", "--partner-file", filepath.Join(dir, "nothere")}},
		{"bad order", []string{"-q", "-p", "MKV", "--order", "sideways"}},
		{"no output", []string{"-q", "-p", "MKV", "--individual=false", "--combined=false"}},
	}
	for _, tt := range tests {
		if r := runCmd(t, tt.argv...); r != ExitUsageError {
			t.Errorf("%s: got %d want %d", tt.name, r, ExitUsageError)
		}
	}
}
