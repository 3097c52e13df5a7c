// 5 Jul 2025
// Cut the variable domain out of every sequence in a fasta file.

package domextract

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/eoinleen/protein-domain-Colabfold-pipeline/pkg/flank"
	"github.com/eoinleen/protein-domain-Colabfold-pipeline/pkg/logger"
	"github.com/eoinleen/protein-domain-Colabfold-pipeline/pkg/seq"
	. "github.com/eoinleen/protein-domain-Colabfold-pipeline/pkg/seq/common"
)

// Args is everything from the command line or config file.
type Args struct {
	InFname   string // "" means stdin
	OutFname  string // "" means stdout
	CompFname string // optional composition table
	Spec      flank.Spec
	DryRun    bool
}

// Report says how a batch went.
type Report struct {
	Total     int
	Extracted int
	Domains   *seq.SeqGrp // successes, in input order
	Failures  []error     // each is a *flank.RecordError
}

const previewLen = 20

func abbrev(s string) string {
	if len(s) > previewLen {
		return s[:previewLen] + "..."
	}
	return s
}

// errAttrs pulls out whatever context a failure carries.
func errAttrs(err error) []any {
	var (
		nf *flank.NotFoundError
		oe *flank.OrderError
		se *flank.SpanError
	)
	switch {
	case errors.As(err, &nf):
		return []any{"flank", nf.Which.String(), "seq", nf.Flank}
	case errors.As(err, &oe):
		return []any{"npos", oe.NPos, "cpos", oe.CPos}
	case errors.As(err, &se):
		return []any{"start", se.Start, "end", se.End}
	}
	return nil
}

// Run extracts from every record. A failure is logged and counted and
// we carry on with the next record.
func Run(seqgrp *seq.SeqGrp, sp flank.Spec, log *slog.Logger) Report {
	rpt := Report{Total: seqgrp.NSeq(), Domains: new(seq.SeqGrp)}
	for i, ss := range seqgrp.SeqSlc() {
		id := ss.Cmmt()
		log.Debug("processing", "n", i+1, "of", rpt.Total, "id", id)
		if pos, ok := seq.CheckProtein(ss.GetSeq()); !ok {
			log.Warn("unexpected symbol", "id", id, "pos", pos, "sym", string(ss.GetSeq()[pos]))
		}
		dom, err := flank.Extract(string(ss.GetSeq()), sp)
		if err != nil {
			rerr := &flank.RecordError{ID: id, Err: err}
			rpt.Failures = append(rpt.Failures, rerr)
			attrs := append([]any{"id", id, "err", err}, errAttrs(err)...)
			log.Warn("failed to extract domain", attrs...)
			continue
		}
		rpt.Domains.Add(seq.NewSeq(id, []byte(dom)))
		rpt.Extracted++
		log.Info("extracted", "id", id, "len", len(dom), "start", abbrev(dom))
	}
	return rpt
}

// MyMain is the top level main, after parsing the command line.
func MyMain(args *Args) int {
	log := logger.L()
	sp := args.Spec
	if err := sp.Validate(); err != nil {
		log.Error("configuration", "err", err)
		return ExitUsageError
	}
	head, tail := sp.Preview()
	log.Info("flanks", "nterm", sp.NFlank, "cterm", sp.CFlank, "keep", sp.Keep)
	log.Info("extracted sequences will look like", "start", head, "end", tail)

	seqgrp, err := seq.Readfile(args.InFname)
	if err != nil {
		log.Error("reading input", "err", err)
		return ExitFailure
	}
	if seqgrp.NSeq() == 0 {
		log.Error("no sequences found", "file", args.InFname)
		return ExitFailure
	}
	log.Info("processing", "nseq", seqgrp.NSeq())

	rpt := Run(seqgrp, sp, log)
	ratio := fmt.Sprintf("%d/%d", rpt.Extracted, rpt.Total)
	if rpt.Extracted == 0 {
		log.Error("no domains were successfully extracted", "extracted", ratio)
		return ExitFailure
	}

	s_opts := &seq.Options{DryRun: args.DryRun}
	if err := seq.WriteToF(args.OutFname, rpt.Domains.SeqSlc(), s_opts); err != nil {
		log.Error("writing domains", "err", err)
		return ExitFailure
	}
	if args.CompFname != "" && !args.DryRun {
		if err := writeComp(args.CompFname, rpt.Domains); err != nil {
			log.Error("writing composition", "err", err)
			return ExitFailure
		}
	}
	log.Info("done", "extracted", ratio, "output", args.OutFname)
	return ExitSuccess
}

func writeComp(fname string, seqgrp *seq.SeqGrp) error {
	fp, err := os.Create(fname)
	if err != nil {
		return &OpError{Op: "domextract.composition", Kind: KindWrite, Path: fname, Err: err}
	}
	if err := seq.WriteComposition(fp, seqgrp); err != nil {
		fp.Close()
		return &OpError{Op: "domextract.composition", Kind: KindWrite, Path: fname, Err: err}
	}
	return fp.Close()
}
