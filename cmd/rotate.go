package cmd

import (
	"github.com/spf13/cobra"

	"github.com/srh-bzd/ViRotator/pkg/gfio"
	"github.com/srh-bzd/ViRotator/pkg/hints"
	"github.com/srh-bzd/ViRotator/pkg/rotate"
	"github.com/srh-bzd/ViRotator/pkg/seqio"
)

// NewRotateCmd builds the rotate command, named use
func NewRotateCmd(use string) *cobra.Command {
	var (
		fileType   seqio.Format
		hintFormat hints.Format
	)

	c := &cobra.Command{
		Use:   use,
		Short: "Rotate tripled sequences to start at a gene found by alignment",
		Long: `Rotate tripled sequences to start at a gene found by alignment

Example usage:

	` + use + ` -f tripled.fasta -t fasta -b starts.tsv -o rotated.fasta -l sample1.log

This only makes sense for sequences that have been tripled (see the triple command).

--blast_file is BLAST tabular output with the columns 'qseqid qstart', one row per hit
of the gene, e.g. from blastn -outfmt "6 qseqid qstart". With --hint_format sam it is a
SAM file with one (primary, secondary or supplementary) mapping per hit instead.

Hits are sorted, and the sequence between the 2nd and the 3rd start (1-based, the 3rd
excluded) is written. Sequences with fewer than three hits are left out of --output_file
and listed in --output_log, which is appended to. The number of rejected sequences is also
appended to rejected.count.txt in the directory of --output_log, as a line
'<log name without extension><TAB><count>'.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) (err error) {

			in, err := gfio.OpenIn(*cmd.Flag("input_file"))
			if err != nil {
				return err
			}
			defer in.Close()

			blast, err := gfio.OpenIn(*cmd.Flag("blast_file"))
			if err != nil {
				return err
			}
			defer blast.Close()

			out, err := gfio.OpenOut(*cmd.Flag("output_file"))
			if err != nil {
				return err
			}
			defer closeFile(out, &err)

			logOut, err := gfio.OpenAppend(*cmd.Flag("output_log"))
			if err != nil {
				return err
			}
			defer closeFile(logOut, &err)

			res, err := rotate.Rotate(in, fileType, blast, hintFormat, out, logOut)
			if err != nil {
				return err
			}

			err = rotate.AppendCount(logOut.Name(), res)
			if err != nil {
				return err
			}

			logf("%s: rotated %d sequences, %d rejected", use, len(res.Rotated), len(res.Rejected))

			return
		},
	}

	c.Flags().StringP("input_file", "f", "", "Input file with all reads tripled, in fasta or fastq format")
	c.Flags().VarP(&fileType, "file_type", "t", "Format of the input file: fasta or fastq")
	c.Flags().StringP("blast_file", "b", "", "Output file of blast formatted with columns 'qseqid qstart'")
	c.Flags().Var(&hintFormat, "hint_format", "Format of --blast_file: blast or sam")
	c.Flags().StringP("output_file", "o", "", "Output file with all reads rotated")
	c.Flags().StringP("output_log", "l", "", "Output log, appended to")

	for _, name := range []string{"input_file", "file_type", "blast_file", "output_file", "output_log"} {
		c.MarkFlagRequired(name)
	}

	c.Flags().SortFlags = false

	return c
}
