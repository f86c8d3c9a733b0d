package seqio

import (
	"bufio"
	"io"
)

// Writer writes unwrapped fasta or fastq records
type Writer struct {
	w      *bufio.Writer
	format Format
}

func NewWriter(w io.Writer, format Format) *Writer {
	return &Writer{w: bufio.NewWriter(w), format: format}
}

// Write writes one record. Output is buffered until Flush is called.
func (w *Writer) Write(R Record) error {
	var err error
	_, err = w.w.WriteString(string(w.format.Marker()) + R.ID + "\n")
	if err != nil {
		return err
	}
	_, err = w.w.WriteString(R.Seq + "\n")
	if err != nil {
		return err
	}
	if w.format == Fastq {
		_, err = w.w.WriteString("+\n" + R.Qual + "\n")
		if err != nil {
			return err
		}
	}
	return nil
}

func (w *Writer) Flush() error {
	return w.w.Flush()
}

// WriteAll writes every record in c, in insertion order
func WriteAll(out io.Writer, c *Collection, format Format) error {
	w := NewWriter(out, format)
	for _, R := range c.Records() {
		if err := w.Write(R); err != nil {
			return err
		}
	}
	return w.Flush()
}
