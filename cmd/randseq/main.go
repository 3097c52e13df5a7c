// 31 July 2020
// 8 Jul 2025 cobra, and designs with flanks for testing domextract

// randseq writes random protein sequences for testing the pipeline.
//
//	randseq [flags] fname nseq length
//
// With --n-flank and --c-flank every sequence looks like a design,
// random residues either side of and between the two flanks.
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/eoinleen/protein-domain-Colabfold-pipeline/pkg/randseq"
	. "github.com/eoinleen/protein-domain-Colabfold-pipeline/pkg/seq/common"
)

const iseed int64 = 1637

func atoi(s string) (int, error) {
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("failed converting %s to positive integer", s)
	}
	return int(n), nil
}

func newRootCmd(ret *int) *cobra.Command {
	var args randseq.RandSeqArgs
	cmd := &cobra.Command{
		Use:          "randseq [flags] fname nseq length",
		Short:        "Write random protein sequences, - for stdout",
		Args:         cobra.ExactArgs(3),
		SilenceUsage: true,
		RunE: func(_ *cobra.Command, pos []string) error {
			var err error
			*ret = ExitUsageError
			if args.Nseq, err = atoi(pos[1]); err != nil {
				return err
			}
			if args.Len, err = atoi(pos[2]); err != nil {
				return err
			}
			*ret = ExitFailure
			if fname := pos[0]; fname == "-" {
				args.Wrtr = os.Stdout
			} else {
				fp, err := os.Create(fname)
				if err != nil {
					return &OpError{Op: "randseq.create", Kind: KindWrite, Path: fname, Err: err}
				}
				defer fp.Close()
				args.Wrtr = fp
			}
			if err := randseq.RandSeqMain(&args); err != nil {
				return err
			}
			*ret = ExitSuccess
			return nil
		},
	}
	fl := cmd.Flags()
	fl.Int64VarP(&args.Iseed, "seed", "r", iseed, "random number seed")
	fl.BoolVarP(&args.White, "white", "w", false, "scatter blanks and newlines through the sequences")
	fl.StringVar(&args.Cmmt, "comment", "randseq", "comment for each sequence, a number is added")
	fl.StringVarP(&args.NFlank, "n-flank", "n", "", "N-terminal flank to build in")
	fl.StringVarP(&args.CFlank, "c-flank", "c", "", "C-terminal flank to build in")
	return cmd
}

func main() {
	ret := ExitSuccess
	if err := newRootCmd(&ret).Execute(); err != nil && ret == ExitSuccess {
		ret = ExitUsageError
	}
	os.Exit(ret)
}
