// 20 Dec 2017
// 5 Jul 2025 cut down for the domain pipeline

// Package seq provides functions for sequences,
// which usually begin their lives in fasta format. It can
// read and write them.
package seq

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"

	. "github.com/eoinleen/protein-domain-Colabfold-pipeline/pkg/seq/common"
)

// Seq is one fasta record. The comment is stored without the
// leading ">".
type Seq struct {
	cmmt string
	seq  []byte
}

// We only read ascii characters, so anything bigger than this is not
// valid.
const (
	MaxSym uint8 = 127
)

// Options contains all the choices passed in from the caller.
type Options struct {
	Vbsty  int
	DryRun bool // Do not write any files
}

// Constants
const cmmt_char byte = '>' // and this introduces comments in fasta format

// SeqGrp is a group of sequences in the order they were read.
type SeqGrp struct {
	seqs []Seq
}

// NewSeq makes a sequence from a comment and residues. The residues
// are not copied.
func NewSeq(cmmt string, s []byte) Seq { return Seq{cmmt: cmmt, seq: s} }

// Function GetSeq returns the sequence as the original byte slice
func (s Seq) GetSeq() []byte { return s.seq }

// Function Cmmt returns the comment, without the leading ">"
func (s Seq) Cmmt() string { return s.cmmt }

// Function Len
func (s Seq) Len() int { return len(s.seq) }

// SetSeq will replace whatever was the sequence with a new one
func (s *Seq) SetSeq(t []byte) { s.seq = t }

// Empty returns true if there are no residues.
func (s Seq) Empty() bool { return len(s.seq) == 0 }

// trimStr trims a string to n bytes if it is longer
func trimStr(s string, n int) string {
	if len(s) > n {
		return s[:n]
	}
	return s
}

// Upper changes a sequence to upper case, in place.
// It only works with bytes, not runes.
// It can return an error if it encounters a symbol it does
// not like (value higher than 128).
func (seq *Seq) Upper() error {
	const diff = 'a' - 'A'
	const symerr = "bad sym \"%c\" at position %d starting \"%s\""
	s := seq.GetSeq()
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= MaxSym {
			return fmt.Errorf(symerr, c, i, trimStr(seq.Cmmt(), 40))
		}
		if 'a' <= c && c <= 'z' {
			s[i] -= diff
		}
	}
	return nil
}

// String returns a sequence, with its comment at the start as
// a single string
func (s Seq) String() string {
	return fmt.Sprintf("%c%s\n%s", cmmt_char, s.cmmt, s.seq)
}

// CheckProtein looks for a residue that is not in the protein alphabet.
// It returns the position of the first bad one and false, or -1 and true.
func CheckProtein(s []byte) (int, bool) {
	for i, c := range s {
		if !alphabet.Protein.IsValid(alphabet.Letter(c)) {
			return i, false
		}
	}
	return -1, true
}

// NSeq returns the number of sequences
func (seqgrp *SeqGrp) NSeq() int { return len(seqgrp.seqs) }

// SeqSlc return the slice of sequences
func (seqgrp *SeqGrp) SeqSlc() []Seq { return seqgrp.seqs }

// Add appends a sequence to the group.
func (seqgrp *SeqGrp) Add(s Seq) { seqgrp.seqs = append(seqgrp.seqs, s) }

// Upper uppercases all the members of a group of sequences.
func (seqgrp *SeqGrp) Upper() error {
	for i := range seqgrp.seqs {
		if err := seqgrp.seqs[i].Upper(); err != nil {
			return err
		}
	}
	return nil
}

// FindNdx Returns the index of the sequence containing a string.
// Numbering starts from zero. We remove any ">", space or tab at the start.
func (seqgrp *SeqGrp) FindNdx(s string) int {
	s = strings.TrimLeft(s, " >	")

	for i, seq := range seqgrp.seqs {
		if strings.Contains(seq.Cmmt(), s) {
			return i
		}
	}
	return -1
}

// Str2SeqGrp takes some strings and returns them as a seqgrp.
// sIn is a slice of strings which are the sequences.
// prefix is an optional argument. Sequences need names/comments. If
// prefix is not given, sequences will be called "s0", "s1", ...
func Str2SeqGrp(sIn []string, prefix ...string) *SeqGrp {
	var base string
	seqgrp := new(SeqGrp)
	if prefix == nil {
		base = "s"
	} else {
		base = prefix[0]
	}
	for i, s := range sIn {
		seqgrp.Add(Seq{cmmt: fmt.Sprint(base, i), seq: []byte(s)})
	}
	return seqgrp
}

// outWriter decides where output goes. The returned close function
// is always safe to call.
func outWriter(fname string, s_opts *Options) (io.Writer, func() error, error) {
	nop := func() error { return nil }
	switch {
	case s_opts != nil && s_opts.DryRun:
		return io.Discard, nop, nil
	case fname == "":
		return os.Stdout, nop, nil
	}
	fp, err := os.Create(fname)
	if err != nil {
		return nil, nop, &OpError{Op: "seq.create", Kind: KindWrite, Path: fname, Err: err}
	}
	return fp, fp.Close, nil
}

// WriteToF takes a filename and a slice of sequences and writes them
// in fasta format, LineWidth residues per line. Empty sequences are
// skipped. An empty filename means standard output.
func WriteToF(outseq_fname string, seq_set []Seq, s_opts *Options) (err error) {
	w, closer, err := outWriter(outseq_fname, s_opts)
	if err != nil {
		return err
	}
	defer func() {
		if e := closer(); e != nil && err == nil {
			err = &OpError{Op: "seq.close", Kind: KindWrite, Path: outseq_fname, Err: e}
		}
	}()
	if err = Write(w, seq_set); err != nil {
		return &OpError{Op: "seq.write", Kind: KindWrite, Path: outseq_fname, Err: err}
	}
	return nil
}

// Write is WriteToF for an io.Writer.
func Write(w io.Writer, seq_set []Seq) error {
	fw := fasta.NewWriter(w, LineWidth)
	for _, s := range seq_set {
		if s.Empty() {
			continue
		}
		ls := linear.NewSeq(s.cmmt, alphabet.BytesToLetters(s.seq), alphabet.Protein)
		if _, err := fw.Write(ls); err != nil {
			return err
		}
	}
	return nil
}

// WriteFlatToF is WriteToF with every sequence on one line.
func WriteFlatToF(fname string, seq_set []Seq, s_opts *Options) (err error) {
	w, closer, err := outWriter(fname, s_opts)
	if err != nil {
		return err
	}
	defer func() {
		if e := closer(); e != nil && err == nil {
			err = &OpError{Op: "seq.close", Kind: KindWrite, Path: fname, Err: e}
		}
	}()
	if err = WriteFlat(w, seq_set); err != nil {
		return &OpError{Op: "seq.write", Kind: KindWrite, Path: fname, Err: err}
	}
	return nil
}

// WriteFlat writes each sequence on one line, no matter how long.
// Colon separated multimer sequences must not be broken.
func WriteFlat(w io.Writer, seq_set []Seq) error {
	for _, s := range seq_set {
		if _, err := fmt.Fprintf(w, "%c%s\n%s\n", cmmt_char, s.cmmt, s.seq); err != nil {
			return err
		}
	}
	return nil
}
