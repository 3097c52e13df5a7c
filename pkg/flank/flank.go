// 5 Jul 2025

// Package flank cuts a variable domain out of a full length protein
// sequence. The domain sits between two conserved anchor sequences,
// the N-terminal and C-terminal flanks. We keep a few residues from
// each flank so the domain can be put back into the scaffold later.
//
// Only the first occurrence of each flank is used. The flanks are
// expected to be close to unique in a designed sequence.
package flank

import (
	"fmt"
	"strings"
)

// Spec says where to cut. It is the same for every sequence in a run.
type Spec struct {
	NFlank string // N-terminal constant region, before the domain
	CFlank string // C-terminal constant region, after the domain
	Keep   int    // residues kept from each flank
}

// Validate checks the flanks and keep before any sequence is looked at.
// All problems are reported together.
func (sp Spec) Validate() error {
	var issues []string
	if sp.NFlank == "" {
		issues = append(issues, "N-terminal flank is empty")
	}
	if sp.CFlank == "" {
		issues = append(issues, "C-terminal flank is empty")
	}
	if sp.Keep < 0 {
		issues = append(issues, fmt.Sprintf("keep (%d) must be non-negative", sp.Keep))
	}
	const tooShort = "%s flank (%d residues) is shorter than keep (%d)"
	if sp.NFlank != "" && len(sp.NFlank) < sp.Keep {
		issues = append(issues, fmt.Sprintf(tooShort, "N-terminal", len(sp.NFlank), sp.Keep))
	}
	if sp.CFlank != "" && len(sp.CFlank) < sp.Keep {
		issues = append(issues, fmt.Sprintf(tooShort, "C-terminal", len(sp.CFlank), sp.Keep))
	}
	if issues != nil {
		return &ConfigError{Issues: issues}
	}
	return nil
}

// Preview returns what every extracted domain will start and end with.
// sp must be valid.
func (sp Spec) Preview() (head, tail string) {
	return sp.NFlank[len(sp.NFlank)-sp.Keep:], sp.CFlank[:sp.Keep]
}

// Bounds finds the half open interval [start, end) of the domain in s.
func (sp Spec) Bounds(s string) (start, end int, err error) {
	npos := strings.Index(s, sp.NFlank)
	cpos := strings.Index(s, sp.CFlank)
	switch {
	case npos == -1:
		return 0, 0, &NotFoundError{Which: NTerm, Flank: sp.NFlank}
	case cpos == -1:
		return 0, 0, &NotFoundError{Which: CTerm, Flank: sp.CFlank}
	case cpos <= npos:
		return 0, 0, &OrderError{NPos: npos, CPos: cpos}
	}
	start = npos + len(sp.NFlank) - sp.Keep
	end = cpos + sp.Keep
	if start >= end { // flanks overlap, or keep is bigger than the gap
		return 0, 0, &SpanError{Start: start, End: end}
	}
	return start, end, nil
}

// Extract returns the domain, including Keep residues of each flank.
// The result is never empty.
func Extract(s string, sp Spec) (string, error) {
	start, end, err := sp.Bounds(s)
	if err != nil {
		return "", err
	}
	return s[start:end], nil
}
