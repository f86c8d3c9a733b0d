/*
Package seqio provides reading and writing of fasta and fastq format
files, and an insertion-ordered collection of their records
*/
package seqio

import (
	"errors"
	"fmt"
	"strings"
)

var errBadSlice = errors.New("slice out of range")

// Record is one fasta or fastq record. Qual is empty for fasta records, and
// the same length as Seq for fastq records.
type Record struct {
	ID   string
	Seq  string
	Qual string
}

func reverse(s string) string {
	temp := []byte(s)
	for i, j := 0, len(temp)-1; i < j; i, j = i+1, j-1 {
		temp[i], temp[j] = temp[j], temp[i]
	}
	return string(temp)
}

// Complement a Record's sequence using the lookup array CA, returning a new Record.
// The quality string is unchanged.
func (R Record) Complement(CA [256]byte) Record {
	NR := Record{ID: R.ID, Qual: R.Qual}
	ba := make([]byte, len(R.Seq))
	for i := 0; i < len(R.Seq); i++ {
		ba[i] = CA[R.Seq[i]]
	}
	NR.Seq = string(ba)
	return NR
}

// ReverseComplement complements then reverses a Record's sequence, and
// reverses its quality string, returning a new Record
func (R Record) ReverseComplement(CA [256]byte) Record {
	NR := R.Complement(CA)
	NR.Seq = reverse(NR.Seq)
	NR.Qual = reverse(NR.Qual)
	return NR
}

// Slice returns a new Record holding the 0-based, half-open range
// [start, end) of the sequence and quality strings
func (R Record) Slice(start, end int) (Record, error) {
	if start < 0 || end < start || end > len(R.Seq) {
		return Record{}, fmt.Errorf("%w: [%d, %d) of %s (length %d)", errBadSlice, start, end, R.ID, len(R.Seq))
	}
	NR := Record{ID: R.ID, Seq: R.Seq[start:end]}
	if len(R.Qual) > 0 {
		NR.Qual = R.Qual[start:end]
	}
	return NR, nil
}

// Repeat concatenates n copies of the sequence (and quality), returning a new Record
func (R Record) Repeat(n int) Record {
	return Record{ID: R.ID, Seq: strings.Repeat(R.Seq, n), Qual: strings.Repeat(R.Qual, n)}
}
