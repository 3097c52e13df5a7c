// 31 July 2020
// 8 Jul 2025 protein only, and designs with flanks built in

// Package randseq makes random protein sequences for testing.
// We do not work with seq.Seq structures. We just make byte slices
// filled with characters.
package randseq

import (
	"fmt"
	"io"
	"math/rand"
)

const (
	nPadWhite = 9 // For padding for adding whitespace to sequences
)

// Protein is the default alphabet, the twenty standard residues.
var Protein = []byte("ACDEFGHIKLMNPQRSTVWY")

// New returns a random sequence of length n drawn from letters.
// If letters is nil, Protein is used.
func New(rnd *rand.Rand, n int, letters []byte) []byte {
	if letters == nil {
		letters = Protein
	}
	ret := make([]byte, n)
	for i := range ret {
		ret[i] = letters[rnd.Intn(len(letters))]
	}
	return ret
}

// Embed builds pre random residues, nflank, mid random residues,
// cflank and post random residues. It returns the sequence and where
// the two flanks start. If the flanks contain a letter which is not
// in letters, they cannot turn up by accident.
func Embed(rnd *rand.Rand, letters []byte, nflank, cflank string, pre, mid, post int) (s []byte, npos, cpos int) {
	s = New(rnd, pre, letters)
	npos = len(s)
	s = append(s, nflank...)
	s = append(s, New(rnd, mid, letters)...)
	cpos = len(s)
	s = append(s, cflank...)
	s = append(s, New(rnd, post, letters)...)
	return s, npos, cpos
}

// RandSeqArgs is the set of arguments passed to RandSeqMain
type RandSeqArgs struct {
	Iseed  int64     // random number seed
	Wrtr   io.Writer // where we write to
	Cmmt   string    // Comment for the sequences
	Nseq   int       // number of sequences
	Len    int       // Length of sequences
	White  bool      // scatter blanks and newlines through the sequences
	NFlank string    // if set, built into every sequence with CFlank
	CFlank string
}

// addInner is used by addspace to add a space or newline
func addInner(s []byte, n int, c byte, rnd *rand.Rand) []byte {
	for i := 0; i < n; i++ {
		s = append(s, 0)
		pos := rnd.Intn(len(s))
		copy(s[pos+1:], s[pos:])
		s[pos] = c
	}
	return s
}

// addspace is given a byte array and adds white characters at random
// positions. About 1/10 of the length is added. We flip a coin.
// Heads we don't add a newline. Tails we make about 1/10 (integer 1/9)
// of the spaces to be newlines.
func addspace(s []byte, rnd *rand.Rand) []byte {
	toAdd := len(s) / nPadWhite
	nNL := 0 // Number of new lines to add
	if rnd.Intn(2) == 0 {
		nNL = toAdd / 9
	}
	s = addInner(s, toAdd-nNL, ' ', rnd)
	return addInner(s, nNL, '\n', rnd)
}

// RandSeqMain writes random sequences to an io.Writer in fasta
// format. Comment lines look like "> something  1, > something  2..."
// With flanks, Len random residues are split into three, before,
// between and after the flanks, like a design.
func RandSeqMain(args *RandSeqArgs) error {
	rnd := rand.New(rand.NewSource(args.Iseed))
	width := len(fmt.Sprintf("%d", args.Nseq))
	third := args.Len / 3
	for i := 1; i <= args.Nseq; i++ {
		var s []byte
		if args.NFlank != "" || args.CFlank != "" {
			s, _, _ = Embed(rnd, nil, args.NFlank, args.CFlank, third, third, args.Len-2*third)
		} else {
			s = New(rnd, args.Len, nil)
		}
		if args.White {
			s = addspace(s, rnd)
		}
		if _, err := fmt.Fprintf(args.Wrtr, "> %s %[2]*d\n%s\n", args.Cmmt, width, i, s); err != nil {
			return err
		}
	}
	return nil
}
