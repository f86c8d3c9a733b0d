// Package triple concatenates each sequence in a fasta or fastq file with
// itself, so that features spanning the origin of a circular genome appear
// intact at least once
package triple

import (
	"errors"
	"io"

	"github.com/srh-bzd/ViRotator/pkg/seqio"
)

// Copies is the default number of tandem copies written
const Copies = 3

var errBadCopies = errors.New("number of copies must be at least 1")

// Transform builds a new Collection holding every record of c repeated n times
func Transform(c *seqio.Collection, n int) *seqio.Collection {
	out := seqio.NewCollection()
	for _, R := range c.Records() {
		out.Add(R.Repeat(n))
	}
	return out
}

// Triple reads sequences from in and writes them to out, each repeated n times.
// It returns the number of records written.
func Triple(in io.Reader, format seqio.Format, n int, out io.Writer) (int, error) {
	if n < 1 {
		return 0, errBadCopies
	}

	c, err := seqio.ReadAll(in, format)
	if err != nil {
		return 0, err
	}

	tripled := Transform(c, n)

	err = seqio.WriteAll(out, tripled, format)
	if err != nil {
		return 0, err
	}

	return tripled.Len(), nil
}
