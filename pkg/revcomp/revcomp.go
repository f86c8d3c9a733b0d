/*
Package revcomp reverse complements the sequences in a fasta or fastq file
that an alignment reported on the minus strand
*/
package revcomp

import (
	"io"
	"strconv"
	"strings"

	"github.com/srh-bzd/ViRotator/pkg/alphabet"
	"github.com/srh-bzd/ViRotator/pkg/hints"
	"github.com/srh-bzd/ViRotator/pkg/seqio"
)

// Result is the output of a reverse-complement run
type Result struct {
	Output   *seqio.Collection
	Reversed []string // IDs that were on the minus strand
	NotFound []string // IDs with no alignment, dropped from Output
}

// Transform builds a new Collection from c: minus strand records are reverse
// complemented using the lookup array CA, plus strand records are copied as
// they are, and records with no entry in strands are left out
func Transform(c *seqio.Collection, strands hints.StrandTable, CA [256]byte) Result {
	res := Result{
		Output:   seqio.NewCollection(),
		Reversed: make([]string, 0),
		NotFound: make([]string, 0),
	}

	for _, R := range c.Records() {
		strand, ok := strands[R.ID]
		if !ok {
			res.NotFound = append(res.NotFound, R.ID)
			continue
		}
		switch strand {
		case hints.Minus:
			res.Reversed = append(res.Reversed, R.ID)
			res.Output.Add(R.ReverseComplement(CA))
		case hints.Plus:
			res.Output.Add(R)
		}
	}

	return res
}

// WriteLog writes the IDs that were reverse complemented and the IDs that had
// no strand information
func WriteLog(w io.Writer, res Result) error {
	var sb strings.Builder
	sb.WriteString("*---------- Sequences reverse complemented (" + strconv.Itoa(len(res.Reversed)) + ") :\n")
	sb.WriteString(strings.Join(res.Reversed, "\n") + "\n")
	sb.WriteString("\n*---------- Sequences where strand was not found (" + strconv.Itoa(len(res.NotFound)) + ") :\n")
	sb.WriteString(strings.Join(res.NotFound, "\n") + "\n")
	_, err := io.WriteString(w, sb.String())
	return err
}

// ReverseComplement reads sequences from in and strands from hintFile, and
// writes the sequences oriented on the plus strand to out and a report to logOut.
// If iupac is true, ambiguity codes are complemented as well as A, T, G and C.
func ReverseComplement(in io.Reader, format seqio.Format, hintFile io.Reader, hintFormat hints.Format, iupac bool, out io.Writer, logOut io.Writer) (Result, error) {

	c, err := seqio.ReadAll(in, format)
	if err != nil {
		return Result{}, err
	}

	strands, err := hints.LoadStrands(hintFile, hintFormat)
	if err != nil {
		return Result{}, err
	}

	CA := alphabet.MakeCompArray()
	if iupac {
		CA = alphabet.MakeIUPACCompArray()
	}

	res := Transform(c, strands, CA)

	err = seqio.WriteAll(out, res.Output, format)
	if err != nil {
		return Result{}, err
	}

	err = WriteLog(logOut, res)
	if err != nil {
		return Result{}, err
	}

	return res, nil
}
