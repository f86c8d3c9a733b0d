package cmd

import (
	"github.com/spf13/cobra"

	"github.com/srh-bzd/ViRotator/pkg/gfio"
	"github.com/srh-bzd/ViRotator/pkg/hints"
	"github.com/srh-bzd/ViRotator/pkg/revcomp"
	"github.com/srh-bzd/ViRotator/pkg/seqio"
)

// NewRevcompCmd builds the reverse complement command, named use
func NewRevcompCmd(use string) *cobra.Command {
	var (
		fileType   seqio.Format
		hintFormat hints.Format
		iupac      bool
	)

	c := &cobra.Command{
		Use:   use,
		Short: "Reverse complement sequences that aligned on the minus strand",
		Long: `Reverse complement sequences that aligned on the minus strand

Example usage:

	` + use + ` -f contigs.fasta -t fasta -b strands.tsv -o oriented.fasta -l revcomp.log

--blast_file is BLAST tabular output with the columns 'qseqid sstrand', e.g. from
blastn -outfmt "6 qseqid sstrand". With --hint_format sam it is a SAM file instead,
and reads mapped to the reverse strand are reverse complemented.

Sequences on the plus strand are written unchanged. Sequences with no alignment are
left out of --output_file and listed in --output_log. Fastq quality strings are reversed.
Only A, T, G and C are complemented unless --iupac is given.`,
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

			logOut, err := gfio.OpenOut(*cmd.Flag("output_log"))
			if err != nil {
				return err
			}
			defer closeFile(logOut, &err)

			res, err := revcomp.ReverseComplement(in, fileType, blast, hintFormat, iupac, out, logOut)
			if err != nil {
				return err
			}

			logf("%s: kept %d sequences, reverse complemented %d, %d not found by alignment",
				use, res.Output.Len(), len(res.Reversed), len(res.NotFound))

			return
		},
	}

	c.Flags().StringP("input_file", "f", "", "Input file with all reads, in fasta or fastq format")
	c.Flags().VarP(&fileType, "file_type", "t", "Format of the input file: fasta or fastq")
	c.Flags().StringP("blast_file", "b", "", "Output file of blast formatted with columns 'qseqid sstrand'")
	c.Flags().Var(&hintFormat, "hint_format", "Format of --blast_file: blast or sam")
	c.Flags().StringP("output_file", "o", "", "Output file with all sequences on the plus strand")
	c.Flags().StringP("output_log", "l", "", "Output log")
	c.Flags().BoolVarP(&iupac, "iupac", "", false, "Also complement IUPAC ambiguity codes and lowercase bases")

	for _, name := range []string{"input_file", "file_type", "blast_file", "output_file", "output_log"} {
		c.MarkFlagRequired(name)
	}

	c.Flags().SortFlags = false

	return c
}
