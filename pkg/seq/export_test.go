package seq

import (
	"fmt"
)

// PrintComp prints out the composition of each sequence.
// It is probably only useful for debugging or testing.
// format is a format string like "%6.1f"
func (seqgrp *SeqGrp) PrintComp(format string) {
	comp := seqgrp.Composition()
	for i, ss := range seqgrp.seqs {
		fmt.Printf("%s ", ss.cmmt)
		for _, f := range comp.Mat[i] {
			fmt.Printf(format, f)
		}
		fmt.Printf("\n")
	}
}

var MapFile = mapFile
