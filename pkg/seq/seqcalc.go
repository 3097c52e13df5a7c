// 6 Apr 2020
// seqcalc does simple, common calculations on a set of sequences.

package seq

import (
	"bufio"
	"fmt"
	"io"

	"github.com/andrew-torda/matrix"
)

// AminoAcids are the twenty standard residues, in the column order
// used by Composition.
const AminoAcids = "ACDEFGHIKLMNPQRSTVWY"

// aaCol['C'] tells me the column used for C. -1 means not a standard
// residue. Lower case maps to the same column.
var aaCol = func() (col [MaxSym]int8) {
	for i := range col {
		col[i] = -1
	}
	for i := 0; i < len(AminoAcids); i++ {
		col[AminoAcids[i]] = int8(i)
		col[AminoAcids[i]+('a'-'A')] = int8(i)
	}
	return
}()

// Composition returns a matrix with one row per sequence and one
// column per standard amino acid. Each entry is the fraction of the
// standard residues in that sequence. Other symbols are not counted.
// A sequence with no standard residues gets a row of zeros.
func (seqgrp *SeqGrp) Composition() *matrix.FMatrix2d {
	comp := matrix.NewFMatrix2d(len(seqgrp.seqs), len(AminoAcids))
	for i, ss := range seqgrp.seqs {
		var n float32
		row := comp.Mat[i]
		for _, c := range ss.GetSeq() {
			if c >= MaxSym || aaCol[c] < 0 {
				continue
			}
			row[aaCol[c]] += 1
			n++
		}
		if n == 0 {
			continue
		}
		for j := range row {
			row[j] /= n
		}
	}
	return comp
}

// WriteComposition writes Composition as a tab separated table
// with a header line.
func WriteComposition(w io.Writer, seqgrp *SeqGrp) error {
	bw := bufio.NewWriter(w)
	fmt.Fprint(bw, "id\tlength")
	for i := 0; i < len(AminoAcids); i++ {
		fmt.Fprintf(bw, "\t%c", AminoAcids[i])
	}
	fmt.Fprintln(bw)
	comp := seqgrp.Composition()
	for i, ss := range seqgrp.seqs {
		fmt.Fprintf(bw, "%s\t%d", ss.Cmmt(), ss.Len())
		for _, f := range comp.Mat[i] {
			fmt.Fprintf(bw, "\t%.3f", f)
		}
		fmt.Fprintln(bw)
	}
	return bw.Flush()
}
