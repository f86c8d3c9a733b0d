/*
Package rotate cuts one full copy of a circular genome out of a tripled
sequence, starting at the gene that an alignment found in it.

A tripled genome holds three tandem copies, so any gene that wraps the origin
is intact at least in the middle copy. The 2nd and 3rd smallest alignment
start positions of the gene delimit exactly one genome that begins with it.
*/
package rotate

import (
	"io"
	"strconv"
	"strings"

	"golang.org/x/exp/slices"

	"github.com/srh-bzd/ViRotator/pkg/gfio"
	"github.com/srh-bzd/ViRotator/pkg/hints"
	"github.com/srh-bzd/ViRotator/pkg/seqio"
)

// CountFile is the file, next to the log, that collects one
// "<log name><TAB><rejected count>" line per run
const CountFile = "rejected.count.txt"

// Result is the output of a rotate run
type Result struct {
	Output   *seqio.Collection
	Rotated  []string
	Rejected []string // IDs with no usable gene position, dropped from Output
}

// bounds converts 1-based alignment starts to the 0-based half-open range
// between the 2nd and 3rd smallest of them
func bounds(positions []int) (int, int, bool) {
	if len(positions) < 3 {
		return 0, 0, false
	}
	sorted := slices.Clone(positions)
	slices.Sort(sorted)
	return sorted[1] - 1, sorted[2] - 1, true
}

// Transform builds a new Collection from c holding the rotated records. Records
// with fewer than three positions, with positions past the end of the
// sequence, or with no entry in positions at all are rejected.
func Transform(c *seqio.Collection, positions hints.PositionTable) Result {
	res := Result{
		Output:   seqio.NewCollection(),
		Rotated:  make([]string, 0),
		Rejected: make([]string, 0),
	}

	for _, R := range c.Records() {
		start, end, ok := bounds(positions[R.ID])
		if !ok {
			res.Rejected = append(res.Rejected, R.ID)
			continue
		}
		NR, err := R.Slice(start, end)
		if err != nil {
			res.Rejected = append(res.Rejected, R.ID)
			continue
		}
		res.Output.Add(NR)
		res.Rotated = append(res.Rotated, R.ID)
	}

	return res
}

// WriteLog writes the IDs that were rejected
func WriteLog(w io.Writer, res Result) error {
	var sb strings.Builder
	sb.WriteString("\n*---------- Sequences where position of the gene for rotation was not found (" + strconv.Itoa(len(res.Rejected)) + ") :\n")
	sb.WriteString(strings.Join(res.Rejected, "\n") + "\n")
	_, err := io.WriteString(w, sb.String())
	return err
}

// AppendCount records the number of rejected sequences for the run logged to
// logPath in the CountFile next to it
func AppendCount(logPath string, res Result) error {
	return gfio.AppendLine(gfio.SiblingPath(logPath, CountFile), gfio.BaseName(logPath)+"\t"+strconv.Itoa(len(res.Rejected)))
}

// Rotate reads tripled sequences from in and gene start positions from
// hintFile, and writes the rotated sequences to out and a report to logOut
func Rotate(in io.Reader, format seqio.Format, hintFile io.Reader, hintFormat hints.Format, out io.Writer, logOut io.Writer) (Result, error) {

	c, err := seqio.ReadAll(in, format)
	if err != nil {
		return Result{}, err
	}

	positions, err := hints.LoadPositions(hintFile, hintFormat)
	if err != nil {
		return Result{}, err
	}

	res := Transform(c, positions)

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
