package seqio

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
)

var (
	errNoHeader       = errors.New("sequence data before first header")
	errMissingID      = errors.New("missing sequence identifier")
	errTruncatedFastq = errors.New("truncated fastq record")
	errQualLength     = errors.New("sequence and quality strings are different lengths")
)

type Reader struct {
	*bufio.Reader
	format Format

	// header holds the header line of the next record, which has already been
	// consumed from the underlying reader while finishing the previous record
	header     []byte
	headerLine int
	lineNum    int
}

func NewReader(f io.Reader, format Format) *Reader {
	return &Reader{Reader: bufio.NewReader(f), format: format}
}

// readLine returns the next line without its unix or dos line ending. A final
// line without a newline is returned with err = nil, and the following call
// returns io.EOF.
func (r *Reader) readLine() ([]byte, error) {
	line, err := r.ReadBytes('\n')
	if err != nil && (err != io.EOF || len(line) == 0) {
		return nil, err
	}
	r.lineNum++

	drop := 0
	if len(line) > 0 && line[len(line)-1] == '\n' {
		drop = 1
		if len(line) > 1 && line[len(line)-2] == '\r' {
			drop = 2
		}
	}

	return line[:len(line)-drop], nil
}

// isHeader reports whether line starts a new record. Fastq quality strings
// can legitimately start with '@', so fastq headers must also not contain '~'.
func (r *Reader) isHeader(line []byte) bool {
	if len(line) == 0 || line[0] != r.format.Marker() {
		return false
	}
	if r.format == Fastq && bytes.IndexByte(line, '~') >= 0 {
		return false
	}
	return true
}

// Read reads one record from the underlying reader. The final record is
// returned with error = nil, and the next call to Read() returns an empty
// Record struct and error = io.EOF.
func (r *Reader) Read() (Record, error) {

	// find the first header, skipping leading blank lines
	for r.header == nil {
		line, err := r.readLine()
		if err != nil {
			return Record{}, err
		}
		if len(bytes.TrimSpace(line)) == 0 {
			continue
		}
		if !r.isHeader(line) {
			return Record{}, fmt.Errorf("%w (line %d)", errNoHeader, r.lineNum)
		}
		r.header = line
		r.headerLine = r.lineNum
	}

	fields := bytes.Fields(r.header[1:])
	if len(fields) == 0 {
		return Record{}, fmt.Errorf("%w (line %d)", errMissingID, r.headerLine)
	}
	R := Record{ID: string(fields[0])}

	body := make([][]byte, 0, 3)
	for {
		line, err := r.readLine()
		if err == io.EOF {
			r.header = nil
			break
		}
		if err != nil {
			return Record{}, err
		}
		if r.isHeader(line) {
			r.header = line
			r.headerLine = r.lineNum
			break
		}
		body = append(body, bytes.TrimSpace(line))
	}

	switch r.format {
	case Fasta:
		R.Seq = string(bytes.Join(body, nil))
	case Fastq:
		// header, sequence, '+' separator, quality: anything past the
		// quality line belongs to no field
		if len(body) < 3 {
			return Record{}, fmt.Errorf("%w: %s", errTruncatedFastq, R.ID)
		}
		R.Seq = string(body[0])
		R.Qual = string(body[2])
		if len(R.Seq) != len(R.Qual) {
			return Record{}, fmt.Errorf("%w: %s", errQualLength, R.ID)
		}
	}

	return R, nil
}

// ReadAll reads every record from f into a Collection, in file order
func ReadAll(f io.Reader, format Format) (*Collection, error) {
	r := NewReader(f, format)
	c := NewCollection()
	for {
		R, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		c.Add(R)
	}
	return c, nil
}
