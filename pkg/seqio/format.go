package seqio

import (
	"fmt"
	"strings"
)

// Format is the flat-file layout of a sequence file
type Format int

const (
	Fasta Format = iota
	Fastq
)

// ParseFormat converts a file type label ("fasta" or "fastq") to a Format
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "fasta":
		return Fasta, nil
	case "fastq":
		return Fastq, nil
	}
	return Fasta, fmt.Errorf("unknown file type %q: must be fasta or fastq", s)
}

func (f Format) String() string {
	switch f {
	case Fasta:
		return "fasta"
	case Fastq:
		return "fastq"
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// Marker is the first byte of a header line in this format
func (f Format) Marker() byte {
	if f == Fastq {
		return '@'
	}
	return '>'
}

// Set and Type let a Format be bound directly to a command line flag
func (f *Format) Set(s string) error {
	v, err := ParseFormat(s)
	if err != nil {
		return err
	}
	*f = v
	return nil
}

func (f *Format) Type() string {
	return "fasta|fastq"
}
