// Reader for fasta format files.

package seq

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"io/fs"
	"os"

	"github.com/edsrzf/mmap-go"

	. "github.com/eoinleen/protein-domain-Colabfold-pipeline/pkg/seq/common"
	"github.com/eoinleen/protein-domain-Colabfold-pipeline/pkg/white"
)

const cmmtChar = '>'

// Sequences can be very long lines if someone did not wrap them.
const maxLine = 64 * 1024 * 1024

// The lexer has two states. In noRecord we have not yet seen a
// comment line, so anything else is thrown away. In inRecord
// sequence lines are added to the current record until the next
// comment or the end of input.
type lexer struct {
	scnr   *bufio.Scanner
	seqgrp *SeqGrp
	cmmt   string // comment of the current record
	seq    []byte // residues so far
}

type stateFn func(*lexer) stateFn

// line returns the next trimmed line. ok is false at the end of input.
func (l *lexer) line() (line []byte, ok bool) {
	if !l.scnr.Scan() {
		return nil, false
	}
	return bytes.TrimSpace(l.scnr.Bytes()), true
}

func (l *lexer) start(line []byte) {
	l.cmmt = string(line[1:])
	l.seq = make([]byte, 0, 256)
}

func (l *lexer) flush() {
	l.seqgrp.Add(Seq{cmmt: l.cmmt, seq: l.seq})
	l.cmmt, l.seq = "", nil
}

// noRecord skips everything up to the first comment line.
func noRecord(l *lexer) stateFn {
	for {
		line, ok := l.line()
		if !ok {
			return nil
		}
		if len(line) > 0 && line[0] == cmmtChar {
			l.start(line)
			return inRecord
		}
	}
}

// inRecord collects sequence lines.
func inRecord(l *lexer) stateFn {
	for {
		line, ok := l.line()
		if !ok {
			l.flush()
			return nil
		}
		switch {
		case len(line) == 0:
		case line[0] == cmmtChar:
			l.flush()
			l.start(line)
		default:
			white.Remove(&line)
			l.seq = append(l.seq, line...)
		}
	}
}

// ReadFasta reads fasta formatted records from rdr and appends them to
// seqgrp. A file with no records is not an error here. The caller decides.
func ReadFasta(rdr io.Reader, seqgrp *SeqGrp) error {
	scnr := bufio.NewScanner(rdr)
	scnr.Buffer(make([]byte, 0, 64*1024), maxLine)
	l := lexer{scnr: scnr, seqgrp: seqgrp}
	for state := noRecord; state != nil; {
		state = state(&l)
	}
	return scnr.Err()
}

// mapFile maps a file into memory. The caller must call unmap.
// A zero length file cannot be mapped, so it gives a nil slice.
func mapFile(fname string) (b []byte, unmap func() error, err error) {
	nop := func() error { return nil }
	fp, err := os.Open(fname)
	if err != nil {
		return nil, nop, err
	}
	defer fp.Close()
	fi, err := fp.Stat()
	if err != nil {
		return nil, nop, err
	}
	if fi.IsDir() {
		return nil, nop, errors.New("is a directory")
	}
	if fi.Size() == 0 {
		return nil, nop, nil
	}
	mm, err := mmap.Map(fp, mmap.RDONLY, 0)
	if err != nil {
		return nil, nop, err
	}
	return mm, mm.Unmap, nil
}

// Readfile takes a filename and reads sequences from it.
// An empty filename means standard input. Files are mapped into
// memory and read in one pass.
func Readfile(fname string) (*SeqGrp, error) {
	seqgrp := new(SeqGrp)
	if fname == "" {
		if err := ReadFasta(os.Stdin, seqgrp); err != nil {
			return nil, &OpError{Op: "seq.readfile", Kind: KindRead, Path: "stdin", Err: err}
		}
		return seqgrp, nil
	}

	b, unmap, err := mapFile(fname)
	if err != nil {
		kind := KindRead
		if errors.Is(err, fs.ErrNotExist) {
			kind = KindNotFound
		}
		return nil, &OpError{Op: "seq.readfile", Kind: kind, Path: fname, Err: err}
	}
	defer unmap()
	if err := ReadFasta(bytes.NewReader(b), seqgrp); err != nil {
		return nil, &OpError{Op: "seq.readfile", Kind: KindRead, Path: fname, Err: err}
	}
	return seqgrp, nil
}
