// 29 Apr 2020
// 5 Jul 2025 error kinds for the pipeline tools

package common

import (
	"errors"
	"fmt"
	"io"
	"os"
)

const (
	ExitSuccess = iota
	ExitFailure
	ExitUsageError
)

const GapChar byte = '-' // a minus sign is always used for gaps

// LineWidth is the number of residues per line in wrapped fasta output.
const LineWidth = 60

// WrtTemp writes a string to a temporary file and returns
// the filename. It is used all over the place in testing.
func WrtTemp(s string) (string, error) {
	f_tmp, err := os.CreateTemp("", "_del_me_testing")
	if err != nil {
		return "", fmt.Errorf("tempfile fail")
	}

	if _, err := io.WriteString(f_tmp, s); err != nil {
		return "", fmt.Errorf("writing string to temp file %v", f_tmp.Name())
	}
	name := f_tmp.Name()
	f_tmp.Close()
	return name, nil
}

// Stdio turns "-" on a command line into "", which the seq package
// takes as stdin or stdout.
func Stdio(fname string) string {
	if fname == "-" {
		return ""
	}
	return fname
}

// Kind is a coarse classification of what went wrong.
type Kind string

const (
	KindNotFound      Kind = "not_found"
	KindInvalidConfig Kind = "invalid_config"
	KindRead          Kind = "read"
	KindWrite         Kind = "write"
)

// OpError says which operation failed, on which file, and why.
type OpError struct {
	Op   string
	Kind Kind
	Path string // optional
	Err  error
}

func (e *OpError) Error() string {
	if e == nil {
		return "<nil>"
	}
	s := e.Op + ": " + string(e.Kind)
	if e.Path != "" {
		s += " (" + e.Path + ")"
	}
	if e.Err != nil {
		s += ": " + e.Err.Error()
	}
	return s
}

func (e *OpError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// IsKind reports whether any OpError in err's chain has the given kind.
func IsKind(err error, kind Kind) bool {
	var oe *OpError
	if errors.As(err, &oe) {
		return oe.Kind == kind
	}
	return false
}
