// 6 Jul 2025
// Pair each extracted domain with a partner protein in the colon
// separated form LocalColabFold reads as a multimer.

package multimer

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/eoinleen/protein-domain-Colabfold-pipeline/pkg/logger"
	"github.com/eoinleen/protein-domain-Colabfold-pipeline/pkg/seq"
	. "github.com/eoinleen/protein-domain-Colabfold-pipeline/pkg/seq/common"
	"github.com/eoinleen/protein-domain-Colabfold-pipeline/pkg/white"
)

const chainSep = ':'

// notInChain are protein alphabet symbols that cannot go to ColabFold.
const notInChain = "-*"

// Order says which chain comes first in the complex.
type Order string

const (
	PartnerFirst Order = "partner_first"
	DomainFirst  Order = "domain_first"
)

// Naming is how individual output files are named.
type Naming string

const (
	DomainName Naming = "domain_name" // the cleaned record header
	Numbered   Naming = "numbered"    // colabfold_multimer_001.fasta ...
	Custom     Naming = "custom"      // <header>_colabfold.fasta
)

const (
	DefaultOutDir   = "colabfold_multimer_inputs"
	DefaultCombined = "all_colabfold_multimer_inputs.fasta"
	fastaExt        = ".fasta"
)

type Args struct {
	InFname    string
	Partner    string // may contain white space and line breaks
	OutDir     string // for individual files
	CombFname  string // "" means stdout
	Individual bool
	Combined   bool
	Order      Order
	Naming     Naming
	DryRun     bool
}

var (
	badChars  = regexp.MustCompile(`[<>:"/\\|?*]`)
	notWord   = regexp.MustCompile(`[^A-Za-z0-9_.-]`)
	underRuns = regexp.MustCompile(`_{2,}`)
)

// SafeName turns a fasta header into something usable as a file name.
func SafeName(name, ext string) string {
	s := badChars.ReplaceAllString(name, "_")
	s = notWord.ReplaceAllString(s, "_")
	s = underRuns.ReplaceAllString(s, "_")
	return strings.Trim(s, "_") + ext
}

// Combine joins the two chains with a colon.
func Combine(domain, partner []byte, order Order) []byte {
	first, second := partner, domain
	if order == DomainFirst {
		first, second = domain, partner
	}
	r := make([]byte, 0, len(first)+len(second)+1)
	r = append(r, first...)
	r = append(r, chainSep)
	return append(r, second...)
}

// FileName is the individual file name for the i'th domain, counting
// from 1.
func FileName(naming Naming, header string, i int) string {
	switch naming {
	case Numbered:
		return fmt.Sprintf("colabfold_multimer_%03d%s", i, fastaExt)
	case Custom:
		return SafeName(header+"_colabfold", fastaExt)
	}
	return SafeName(header, fastaExt)
}

// Validate collects every problem with the settings into one error.
func (args *Args) Validate() error {
	var errs []error
	partner := white.String(args.Partner)
	switch pos, ok := seq.CheckProtein([]byte(partner)); {
	case partner == "":
		errs = append(errs, errors.New("partner sequence is empty"))
	case !ok:
		errs = append(errs, fmt.Errorf("partner sequence has %q at position %d", partner[pos], pos))
	case strings.ContainsAny(partner, notInChain):
		pos = strings.IndexAny(partner, notInChain)
		errs = append(errs, fmt.Errorf("partner sequence has gap or stop %q at position %d", partner[pos], pos))
	}
	if args.Order != PartnerFirst && args.Order != DomainFirst {
		errs = append(errs, fmt.Errorf("order must be %s or %s, not %q", PartnerFirst, DomainFirst, args.Order))
	}
	switch args.Naming {
	case DomainName, Numbered, Custom:
	default:
		errs = append(errs, fmt.Errorf("naming must be %s, %s or %s, not %q", DomainName, Numbered, Custom, args.Naming))
	}
	if !args.Individual && !args.Combined {
		errs = append(errs, errors.New("at least one of individual or combined output is needed"))
	}
	if err := errors.Join(errs...); err != nil {
		return &OpError{Op: "multimer.validate", Kind: KindInvalidConfig, Err: err}
	}
	return nil
}

// Build makes one complex per domain, keeping the domain's header.
func Build(domains *seq.SeqGrp, partner []byte, order Order) []seq.Seq {
	var cplx []seq.Seq
	for _, d := range domains.SeqSlc() {
		cplx = append(cplx, seq.NewSeq(d.Cmmt(), Combine(d.GetSeq(), partner, order)))
	}
	return cplx
}

// MyMain is the top level, after the command line and config file.
func MyMain(args *Args) int {
	log := logger.L()
	if err := args.Validate(); err != nil {
		log.Error("configuration", "err", err)
		return ExitUsageError
	}
	partner := []byte(white.String(args.Partner))

	domains, err := seq.Readfile(args.InFname)
	if err != nil {
		log.Error("reading domains", "err", err)
		return ExitFailure
	}
	if domains.NSeq() == 0 {
		log.Error("no domain sequences found", "file", args.InFname)
		return ExitFailure
	}
	log.Info("processing", "ndomain", domains.NSeq(), "partner_len", len(partner), "order", string(args.Order))

	if args.Individual && !args.DryRun {
		if err := os.MkdirAll(args.OutDir, 0o755); err != nil {
			log.Error("output directory", "dir", args.OutDir, "err", err)
			return ExitFailure
		}
	}

	s_opts := &seq.Options{DryRun: args.DryRun}
	cplx := Build(domains, partner, args.Order)
	nOK := 0
	for i, c := range cplx {
		log.Debug("complex", "n", i+1, "id", c.Cmmt(), "domain_len", domains.SeqSlc()[i].Len())
		if !args.Individual {
			nOK++
			continue
		}
		fname := filepath.Join(args.OutDir, FileName(args.Naming, c.Cmmt(), i+1))
		if err := seq.WriteFlatToF(fname, []seq.Seq{c}, s_opts); err != nil {
			log.Warn("writing complex", "id", c.Cmmt(), "err", err)
			continue
		}
		log.Info("created", "id", c.Cmmt(), "file", filepath.Base(fname))
		nOK++
	}

	if args.Combined {
		if err := seq.WriteFlatToF(args.CombFname, cplx, s_opts); err != nil {
			log.Error("writing combined file", "err", err)
			return ExitFailure
		}
		log.Info("combined file", "file", args.CombFname, "n", len(cplx))
	}
	log.Info("done", "processed", fmt.Sprintf("%d/%d", nOK, len(cplx)))
	return ExitSuccess
}
