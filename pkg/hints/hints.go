/*
Package hints reads the per-sequence alignment results (strand or start
positions) that drive the reverse-complement and rotate pipelines, from
BLAST tabular output or from SAM
*/
package hints

import (
	"fmt"
	"io"
	"strings"
)

// Strand is the orientation of a query's alignment to the subject
type Strand int

const (
	Plus Strand = iota
	Minus
)

// ParseStrand converts a BLAST sstrand label to a Strand
func ParseStrand(s string) (Strand, error) {
	switch strings.ToLower(s) {
	case "plus":
		return Plus, nil
	case "minus":
		return Minus, nil
	}
	return Plus, fmt.Errorf("unknown strand %q: must be plus or minus", s)
}

func (s Strand) String() string {
	switch s {
	case Plus:
		return "plus"
	case Minus:
		return "minus"
	}
	return fmt.Sprintf("Strand(%d)", int(s))
}

// StrandTable maps a sequence ID to the strand it aligned on
type StrandTable map[string]Strand

// PositionTable maps a sequence ID to the 1-based query start of each of its
// alignments, in the order they were read
type PositionTable map[string][]int

// Format is the layout of an alignment hint file
type Format int

const (
	Blast Format = iota
	SAM
)

func (f Format) String() string {
	switch f {
	case Blast:
		return "blast"
	case SAM:
		return "sam"
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

func (f *Format) Set(s string) error {
	switch strings.ToLower(s) {
	case "blast":
		*f = Blast
	case "sam":
		*f = SAM
	default:
		return fmt.Errorf("unknown hint format %q: must be blast or sam", s)
	}
	return nil
}

func (f *Format) Type() string {
	return "blast|sam"
}

// LoadStrands reads a StrandTable from r in the given format
func LoadStrands(r io.Reader, format Format) (StrandTable, error) {
	if format == SAM {
		return ReadStrandsSAM(r)
	}
	return ReadStrands(r)
}

// LoadPositions reads a PositionTable from r in the given format
func LoadPositions(r io.Reader, format Format) (PositionTable, error) {
	if format == SAM {
		return ReadPositionsSAM(r)
	}
	return ReadPositions(r)
}
