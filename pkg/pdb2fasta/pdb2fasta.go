// 5 Jul 2025
// Pull the sequence of one chain out of every structure in a directory
// and write it as fasta, one file per structure and one with the lot.

package pdb2fasta

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/eoinleen/protein-domain-Colabfold-pipeline/pkg/logger"
	"github.com/eoinleen/protein-domain-Colabfold-pipeline/pkg/pdb"
	"github.com/eoinleen/protein-domain-Colabfold-pipeline/pkg/seq"
	. "github.com/eoinleen/protein-domain-Colabfold-pipeline/pkg/seq/common"
)

// DefaultCombined is the name of the file with every sequence, put in
// the structure directory unless told otherwise.
const DefaultCombined = "all_sequences.txt"

type Args struct {
	Dir          string
	Chain        byte   // 0 means pdb.DefaultChain
	Combined     string // "" means Dir/all_sequences.txt
	NoIndividual bool   // only write the combined file
	DryRun       bool
}

// listStructs returns the structure files in dir, sorted by name.
func listStructs(dir string) ([]string, error) {
	ents, err := os.ReadDir(dir)
	if err != nil {
		return nil, &OpError{Op: "pdb2fasta.list", Kind: KindNotFound, Path: dir, Err: err}
	}
	var names []string
	for _, e := range ents {
		if !e.IsDir() && pdb.IsStructName(e.Name()) {
			names = append(names, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(names)
	return names, nil
}

// MyMain converts every structure in args.Dir. Files we cannot read or
// with nothing in the chain are reported and skipped.
func MyMain(args *Args) int {
	log := logger.L()
	chain := args.Chain
	if chain == 0 {
		chain = pdb.DefaultChain
	}
	fi, err := os.Stat(args.Dir)
	if err != nil || !fi.IsDir() {
		log.Error("directory not found", "dir", args.Dir)
		return ExitFailure
	}
	fnames, err := listStructs(args.Dir)
	if err != nil {
		log.Error("listing directory", "err", err)
		return ExitFailure
	}
	if len(fnames) == 0 {
		log.Error("no structure files found", "dir", args.Dir)
		return ExitFailure
	}
	log.Info("processing", "nfile", len(fnames), "dir", args.Dir, "chain", string(chain))

	s_opts := &seq.Options{DryRun: args.DryRun}
	var all []seq.Seq
	for _, fname := range fnames {
		base := filepath.Base(fname)
		s, err := pdb.ReadChain(fname, chain)
		if err != nil {
			log.Warn("reading structure", "file", base, "err", err)
			continue
		}
		if len(s) == 0 {
			log.Warn("no sequence found", "file", base, "chain", string(chain))
			continue
		}
		rec := seq.NewSeq(pdb.Header(fname), s)
		all = append(all, rec) // goes in the combined file even if its own file fails
		if !args.NoIndividual {
			outName := filepath.Join(args.Dir, pdb.OutName(fname))
			if err := seq.WriteToF(outName, []seq.Seq{rec}, s_opts); err != nil {
				log.Warn("writing", "file", outName, "err", err)
				continue
			}
			log.Info("converted", "file", base, "out", filepath.Base(outName), "header", rec.Cmmt(), "len", len(s))
		}
	}

	if len(all) == 0 {
		log.Error("no sequences extracted", "processed", fmt.Sprintf("0/%d", len(fnames)))
		return ExitFailure
	}
	combined := args.Combined
	if combined == "" {
		combined = filepath.Join(args.Dir, DefaultCombined)
	}
	if err := seq.WriteToF(combined, all, s_opts); err != nil {
		log.Error("writing combined file", "err", err)
		return ExitFailure
	}
	log.Info("done", "processed", fmt.Sprintf("%d/%d", len(all), len(fnames)), "combined", combined)
	return ExitSuccess
}
