// 5 Jul 2025
// pdb2fasta writes the sequence of one chain of every structure in a
// directory as fasta.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/eoinleen/protein-domain-Colabfold-pipeline/pkg/config"
	"github.com/eoinleen/protein-domain-Colabfold-pipeline/pkg/logger"
	"github.com/eoinleen/protein-domain-Colabfold-pipeline/pkg/pdb"
	"github.com/eoinleen/protein-domain-Colabfold-pipeline/pkg/pdb2fasta"
	. "github.com/eoinleen/protein-domain-Colabfold-pipeline/pkg/seq/common"
)

func newRootCmd(ret *int) *cobra.Command {
	var (
		args       pdb2fasta.Args
		lcfg       logger.Config
		cfgPath    string
		chain      string
		individual = true
	)
	cmd := &cobra.Command{
		Use:          "pdb2fasta [dir]",
		Short:        "Write the sequence of one chain from each PDB file as fasta",
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, pos []string) error {
			fl := cmd.Flags()
			if cfgPath != "" {
				f, err := config.Load(cfgPath)
				if err != nil {
					*ret = ExitUsageError
					return err
				}
				config.String(fl, "dir", &args.Dir, f.PDB2Fasta.Dir)
				config.String(fl, "chain", &chain, f.PDB2Fasta.Chain)
				config.String(fl, "combined", &args.Combined, f.PDB2Fasta.Combined)
				config.Bool(fl, "individual", &individual, f.PDB2Fasta.Individual)
				config.Bool(fl, "debug", &lcfg.Debug, f.Log.Debug)
				config.Bool(fl, "quiet", &lcfg.Quiet, f.Log.Quiet)
				config.String(fl, "log", &lcfg.Path, f.Log.Path)
			}
			if len(pos) == 1 {
				args.Dir = pos[0]
			}
			if len(chain) != 1 {
				*ret = ExitUsageError
				return fmt.Errorf("chain must be one character, got %q", chain)
			}
			args.Chain = chain[0]
			args.NoIndividual = !individual

			cleanup, err := logger.Setup(lcfg)
			if err != nil {
				*ret = ExitFailure
				return err
			}
			defer cleanup()
			*ret = pdb2fasta.MyMain(&args)
			return nil
		},
	}

	fl := cmd.Flags()
	fl.StringVarP(&args.Dir, "dir", "d", ".", "directory with .pdb or .pdb.gz files")
	fl.StringVarP(&chain, "chain", "c", string(pdb.DefaultChain), "chain to extract")
	fl.StringVar(&args.Combined, "combined", "", "combined fasta file (default <dir>/"+pdb2fasta.DefaultCombined+")")
	fl.BoolVar(&individual, "individual", true, "write a .fasta file next to each structure")
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
