package hints

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

var (
	errTooFewColumns = errors.New("expected at least two tab-separated columns")
	errBadPosition   = errors.New("bad query start position")
)

// readRows calls fn with the first two columns of every row of a tab-separated
// BLAST output file. Blank lines and '#' comment lines (-outfmt 7) are skipped.
func readRows(f io.Reader, fn func(id, value string, line int) error) error {
	r := csv.NewReader(f)
	r.Comma = '\t'
	r.Comment = '#'
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		line, _ := r.FieldPos(0)
		if len(row) < 2 {
			return fmt.Errorf("%w (line %d)", errTooFewColumns, line)
		}
		err = fn(strings.TrimSpace(row[0]), strings.TrimSpace(row[1]), line)
		if err != nil {
			return err
		}
	}

	return nil
}

// ReadStrands reads BLAST output formatted with the columns 'qseqid sstrand'.
// If an ID appears more than once, the last row wins.
func ReadStrands(f io.Reader) (StrandTable, error) {
	table := make(StrandTable)
	err := readRows(f, func(id, value string, line int) error {
		strand, err := ParseStrand(value)
		if err != nil {
			return fmt.Errorf("%w (line %d)", err, line)
		}
		table[id] = strand
		return nil
	})
	if err != nil {
		return nil, err
	}
	return table, nil
}

// ReadPositions reads BLAST output formatted with the columns 'qseqid qstart'.
// Every row for an ID is kept.
func ReadPositions(f io.Reader) (PositionTable, error) {
	table := make(PositionTable)
	err := readRows(f, func(id, value string, line int) error {
		pos, err := strconv.Atoi(value)
		if err != nil || pos < 1 {
			return fmt.Errorf("%w %q (line %d)", errBadPosition, value, line)
		}
		table[id] = append(table[id], pos)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return table, nil
}
