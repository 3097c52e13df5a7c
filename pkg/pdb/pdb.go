// 5 Jul 2025
// This is the upper level for reading PDB files. We only want the
// residue sequence of one chain, so we look at ATOM records and
// nothing else. No coordinates, no mmcif.

package pdb

import (
	"bufio"
	"bytes"
	"io"
	"path/filepath"
	"strings"

	"github.com/eoinleen/protein-domain-Colabfold-pipeline/pkg/pdb/zwrap"
	. "github.com/eoinleen/protein-domain-Colabfold-pipeline/pkg/seq/common"
)

// Columns in an ATOM record, counting from zero.
const (
	chainCol                 = 21
	resNameStart, resNameEnd = 17, 20
	resNumStart, resNumEnd   = 22, 26
)

// DefaultChain is the chain the design tools write the designed
// protein to.
const DefaultChain byte = 'A'

var threeToOne = map[string]byte{
	"ALA": 'A', "CYS": 'C', "ASP": 'D', "GLU": 'E',
	"PHE": 'F', "GLY": 'G', "HIS": 'H', "ILE": 'I',
	"LYS": 'K', "LEU": 'L', "MET": 'M', "ASN": 'N',
	"PRO": 'P', "GLN": 'Q', "ARG": 'R', "SER": 'S',
	"THR": 'T', "VAL": 'V', "TRP": 'W', "TYR": 'Y',
}

// field returns line[i:j] with blanks removed, coping with short lines.
func field(line []byte, i, j int) string {
	if i >= len(line) {
		return ""
	}
	if j > len(line) {
		j = len(line)
	}
	return string(bytes.TrimSpace(line[i:j]))
}

// ChainSeq reads ATOM records from rdr and returns the one letter
// sequence of chain. A residue number contributes once, the first
// time it is seen. Non-standard residue names are skipped, but their
// numbers still count as seen.
func ChainSeq(rdr io.Reader, chain byte) ([]byte, error) {
	atom := []byte("ATOM")
	seen := make(map[string]bool)
	var s []byte
	scnr := bufio.NewScanner(rdr)
	for scnr.Scan() {
		line := scnr.Bytes()
		if !bytes.HasPrefix(line, atom) || len(line) <= chainCol || line[chainCol] != chain {
			continue
		}
		resNum := field(line, resNumStart, resNumEnd)
		if seen[resNum] {
			continue
		}
		seen[resNum] = true
		if c, ok := threeToOne[field(line, resNameStart, resNameEnd)]; ok {
			s = append(s, c)
		}
	}
	return s, scnr.Err()
}

// ReadChain opens a structure file, compressed or not, and returns
// the sequence of one chain.
func ReadChain(fname string, chain byte) ([]byte, error) {
	r, err := zwrap.Open(fname)
	if err != nil {
		return nil, &OpError{Op: "pdb.open", Kind: KindNotFound, Path: fname, Err: err}
	}
	defer r.Close()
	s, err := ChainSeq(r, chain)
	if err != nil {
		return nil, &OpError{Op: "pdb.read", Kind: KindRead, Path: fname, Err: err}
	}
	return s, nil
}

// trimExt removes .gz and then one more extension.
func trimExt(fname string) string {
	base := filepath.Base(fname)
	if strings.EqualFold(filepath.Ext(base), ".gz") {
		base = strings.TrimSuffix(base, filepath.Ext(base))
	}
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// IsStructName says if a file name looks like a PDB file.
func IsStructName(fname string) bool {
	s := strings.ToLower(filepath.Base(fname))
	return strings.HasSuffix(s, ".pdb") || strings.HasSuffix(s, ".pdb.gz")
}

// Header turns a long design pipeline file name into a short fasta
// comment. The af2pred and dldesign words go and noise becomes n, so
//	6_dir6_noise1-3_20250705_33_dldesign_7_af2pred.pdb
// becomes
//	6_dir6_n1-3_20250705_33_7
func Header(fname string) string {
	parts := strings.Split(trimExt(fname), "_")
	kept := parts[:0]
	for _, p := range parts {
		switch low := strings.ToLower(p); {
		case low == "af2pred" || low == "dldesign":
			continue
		case strings.HasPrefix(p, "noise"):
			p = "n" + p[len("noise"):]
		}
		kept = append(kept, p)
	}
	return strings.Join(kept, "_")
}

// OutName is the fasta file name that goes with a structure file.
func OutName(fname string) string { return trimExt(fname) + ".fasta" }
