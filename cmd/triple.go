package cmd

import (
	"github.com/spf13/cobra"

	"github.com/srh-bzd/ViRotator/pkg/gfio"
	"github.com/srh-bzd/ViRotator/pkg/seqio"
	"github.com/srh-bzd/ViRotator/pkg/triple"
)

// NewTripleCmd builds the triple command, named use
func NewTripleCmd(use string) *cobra.Command {
	var (
		fileType seqio.Format
		copies   int
	)

	c := &cobra.Command{
		Use:   use,
		Short: "Triple the sequences in a fasta or fastq file",
		Long: `Triple the sequences in a fasta or fastq file

Example usage:

	` + use + ` -f oriented.fasta -t fasta -o tripled.fasta

Every sequence (and fastq quality string) is written as three tandem copies of itself,
so that a gene spanning the origin of a circular genome is found intact by alignment.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) (err error) {

			in, err := gfio.OpenIn(*cmd.Flag("input_file"))
			if err != nil {
				return err
			}
			defer in.Close()

			out, err := gfio.OpenOut(*cmd.Flag("output_file"))
			if err != nil {
				return err
			}
			defer closeFile(out, &err)

			n, err := triple.Triple(in, fileType, copies, out)
			if err != nil {
				return err
			}

			logf("%s: wrote %d sequences", use, n)

			return
		},
	}

	c.Flags().StringP("input_file", "f", "", "Input file with all reads, in fasta or fastq format")
	c.Flags().VarP(&fileType, "file_type", "t", "Format of the input file: fasta or fastq")
	c.Flags().StringP("output_file", "o", "", "Output file with all sequences tripled")
	c.Flags().IntVarP(&copies, "copies", "", triple.Copies, "Number of tandem copies to write")

	for _, name := range []string{"input_file", "file_type", "output_file"} {
		c.MarkFlagRequired(name)
	}

	c.Flags().SortFlags = false

	return c
}
