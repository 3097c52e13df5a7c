// Package config reads the optional YAML file shared by the pipeline
// tools. Anything set on the command line wins over the file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	. "github.com/eoinleen/protein-domain-Colabfold-pipeline/pkg/seq/common"
)

// Load reads and checks a config file. Unknown keys are an error.
// An empty file is fine.
func Load(path string) (File, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return File{}, &OpError{Op: "config.load", Kind: KindNotFound, Path: path, Err: err}
	}

	var f File
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return File{}, &OpError{Op: "config.load", Kind: KindInvalidConfig, Path: path, Err: err}
	}
	if err := check(path, f); err != nil {
		return File{}, err
	}
	return f, nil
}

func invalidField(path, field, msg string) error {
	return &OpError{
		Op:   "config.load",
		Kind: KindInvalidConfig,
		Path: path,
		Err:  fmt.Errorf("%s: %s", field, msg),
	}
}

// check catches what yaml cannot. Flank and partner contents are
// checked by the tools themselves.
func check(path string, f File) error {
	if c := f.PDB2Fasta.Chain; c != "" && len(c) != 1 {
		return invalidField(path, "pdb2fasta.chain", "chain must be one character, not "+c)
	}
	if k := f.Extract.Keep; k != nil && *k < 0 {
		return invalidField(path, "extract.keep", "keep must not be negative")
	}
	if d, q := f.Log.Debug, f.Log.Quiet; d != nil && q != nil && *d && *q {
		return invalidField(path, "log", "debug and quiet together make no sense")
	}
	return nil
}
