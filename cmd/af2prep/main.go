// 6 Jul 2025
// af2prep pairs every extracted domain with a partner protein, ready
// for LocalColabFold multimer runs.

package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/eoinleen/protein-domain-Colabfold-pipeline/pkg/config"
	"github.com/eoinleen/protein-domain-Colabfold-pipeline/pkg/logger"
	"github.com/eoinleen/protein-domain-Colabfold-pipeline/pkg/multimer"
	. "github.com/eoinleen/protein-domain-Colabfold-pipeline/pkg/seq/common"
)

const defaultIn = "extracted_domains.txt"

func newRootCmd(ret *int) *cobra.Command {
	var (
		args        multimer.Args
		lcfg        logger.Config
		cfgPath     string
		partnerFile string
		order       string
		naming      string
	)
	cmd := &cobra.Command{
		Use:          "af2prep",
		Short:        "Make colon separated ColabFold multimer inputs from extracted domains",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fl := cmd.Flags()
			if cfgPath != "" {
				f, err := config.Load(cfgPath)
				if err != nil {
					*ret = ExitUsageError
					return err
				}
				m := f.Multimer
				config.String(fl, "in", &args.InFname, m.Input)
				config.String(fl, "partner", &args.Partner, m.Partner)
				config.String(fl, "out-dir", &args.OutDir, m.OutDir)
				config.String(fl, "combined-out", &args.CombFname, m.Combined)
				config.Bool(fl, "individual", &args.Individual, m.Individual)
				config.Bool(fl, "combined", &args.Combined, m.CombinedOn)
				config.String(fl, "order", &order, m.Order)
				config.String(fl, "naming", &naming, m.Naming)
				config.Bool(fl, "debug", &lcfg.Debug, f.Log.Debug)
				config.Bool(fl, "quiet", &lcfg.Quiet, f.Log.Quiet)
				config.String(fl, "log", &lcfg.Path, f.Log.Path)
			}
			if partnerFile != "" {
				b, err := os.ReadFile(partnerFile)
				if err != nil {
					*ret = ExitUsageError
					return &OpError{Op: "af2prep.partner", Kind: KindNotFound, Path: partnerFile, Err: err}
				}
				args.Partner = string(b)
			}
			args.Order, args.Naming = multimer.Order(order), multimer.Naming(naming)
			args.InFname, args.CombFname = Stdio(args.InFname), Stdio(args.CombFname)

			cleanup, err := logger.Setup(lcfg)
			if err != nil {
				*ret = ExitFailure
				return err
			}
			defer cleanup()
			*ret = multimer.MyMain(&args)
			return nil
		},
	}

	fl := cmd.Flags()
	fl.StringVarP(&args.InFname, "in", "i", defaultIn, "fasta file of extracted domains, - for stdin")
	fl.StringVarP(&args.Partner, "partner", "p", "", "partner protein sequence")
	fl.StringVar(&partnerFile, "partner-file", "", "read the partner sequence from this file, bare residues only")
	fl.StringVarP(&args.OutDir, "out-dir", "o", multimer.DefaultOutDir, "directory for individual files")
	fl.StringVar(&args.CombFname, "combined-out", multimer.DefaultCombined, "combined output file, - for stdout")
	fl.BoolVar(&args.Individual, "individual", true, "write one file per complex")
	fl.BoolVar(&args.Combined, "combined", true, "write one file with every complex")
	fl.StringVar(&order, "order", string(multimer.PartnerFirst), "partner_first or domain_first")
	fl.StringVar(&naming, "naming", string(multimer.DomainName), "individual file names: domain_name, numbered or custom")
	fl.BoolVar(&args.DryRun, "dry-run", false, "do everything except write files")
	fl.StringVar(&cfgPath, "config", "", "YAML config file, flags win over its values")
	fl.BoolVar(&lcfg.Debug, "debug", false, "verbose logging")
	fl.BoolVarP(&lcfg.Quiet, "quiet", "q", false, "only warnings and errors")
	fl.StringVar(&lcfg.Path, "log", "", "append log to this file instead of stderr")
	cmd.MarkFlagsMutuallyExclusive("debug", "quiet")
	cmd.MarkFlagsMutuallyExclusive("partner", "partner-file")
	return cmd
}

func main() {
	ret := ExitSuccess
	if err := newRootCmd(&ret).Execute(); err != nil && ret == ExitSuccess {
		ret = ExitUsageError
	}
	os.Exit(ret)
}
