// 5 Jul 2025
// domextract cuts the variable domain out of every sequence in a
// fasta file, keeping a few residues of each flank.

package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/eoinleen/protein-domain-Colabfold-pipeline/pkg/config"
	"github.com/eoinleen/protein-domain-Colabfold-pipeline/pkg/domextract"
	"github.com/eoinleen/protein-domain-Colabfold-pipeline/pkg/logger"
	. "github.com/eoinleen/protein-domain-Colabfold-pipeline/pkg/seq/common"
)

const (
	defaultIn     = "all_sequences.txt"
	defaultOut    = "extracted_domains.txt"
	defaultNFlank = "VYTEDEWQKEWNELIKLASSEP"
	defaultCFlank = "EPVYESLEEFHVFVLAHVLRRP"
	defaultKeep   = 5
)

func newRootCmd(ret *int) *cobra.Command {
	var (
		args    domextract.Args
		lcfg    logger.Config
		cfgPath string
	)
	cmd := &cobra.Command{
		Use:          "domextract",
		Short:        "Extract the domain between two flanking sequences",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cfgPath != "" {
				f, err := config.Load(cfgPath)
				if err != nil {
					*ret = ExitUsageError
					return err
				}
				fl := cmd.Flags()
				config.String(fl, "in", &args.InFname, f.Extract.Input)
				config.String(fl, "out", &args.OutFname, f.Extract.Output)
				config.String(fl, "composition", &args.CompFname, f.Extract.Composition)
				config.String(fl, "n-flank", &args.Spec.NFlank, f.Extract.NFlank)
				config.String(fl, "c-flank", &args.Spec.CFlank, f.Extract.CFlank)
				config.Int(fl, "keep", &args.Spec.Keep, f.Extract.Keep)
				config.Bool(fl, "debug", &lcfg.Debug, f.Log.Debug)
				config.Bool(fl, "quiet", &lcfg.Quiet, f.Log.Quiet)
				config.String(fl, "log", &lcfg.Path, f.Log.Path)
			}
			args.InFname, args.OutFname = Stdio(args.InFname), Stdio(args.OutFname)
			cleanup, err := logger.Setup(lcfg)
			if err != nil {
				*ret = ExitFailure
				return err
			}
			defer cleanup()
			*ret = domextract.MyMain(&args)
			return nil
		},
	}

	fl := cmd.Flags()
	fl.StringVarP(&args.InFname, "in", "i", defaultIn, "input fasta file, - for stdin")
	fl.StringVarP(&args.OutFname, "out", "o", defaultOut, "output fasta file for extracted domains, - for stdout")
	fl.StringVar(&args.CompFname, "composition", "", "also write a residue composition table here")
	fl.StringVarP(&args.Spec.NFlank, "n-flank", "n", defaultNFlank, "N-terminal constant region")
	fl.StringVarP(&args.Spec.CFlank, "c-flank", "c", defaultCFlank, "C-terminal constant region")
	fl.IntVarP(&args.Spec.Keep, "keep", "k", defaultKeep, "flank residues to keep on each side")
	fl.BoolVar(&args.DryRun, "dry-run", false, "do everything except write files")
	fl.StringVar(&cfgPath, "config", "", "YAML config file, flags win over its values")
	fl.BoolVar(&lcfg.Debug, "debug", false, "verbose logging")
	fl.BoolVarP(&lcfg.Quiet, "quiet", "q", false, "only warnings and errors")
	fl.StringVar(&lcfg.Path, "log", "", "append log to this file instead of stderr")
	cmd.MarkFlagsMutuallyExclusive("debug", "quiet")
	return cmd
}

func main() {
	ret := ExitSuccess
	if err := newRootCmd(&ret).Execute(); err != nil && ret == ExitSuccess {
		ret = ExitUsageError
	}
	os.Exit(ret)
}
