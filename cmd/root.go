package cmd

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"
)

const version = "1.0.0"

var verbose bool

var (
	rootCmd = &cobra.Command{
		Use:   "virotator",
		Short: "orient, triple and rotate circular viral genomes using alignment hints",
		Long: `orient, triple and rotate circular viral genomes using alignment hints

A typical run over an assembly is:

	virotator revcomp -f contigs.fasta -t fasta -b strands.tsv -o oriented.fasta -l revcomp.log
	virotator triple -f oriented.fasta -t fasta -o tripled.fasta
	(blastn the gene against tripled.fasta, -outfmt "6 qseqid qstart")
	virotator rotate -f tripled.fasta -t fasta -b starts.tsv -o rotated.fasta -l rotate.log

Each subcommand is also built as its own binary: reverse_complement, triple and rotate.`,
		Version:       version,
		SilenceErrors: true,
	}
)

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log a summary of each run to stderr")

	rootCmd.AddCommand(NewRevcompCmd("revcomp"))
	rootCmd.AddCommand(NewRotateCmd("rotate"))
	rootCmd.AddCommand(NewTripleCmd("triple"))
}

func logf(format string, v ...interface{}) {
	if verbose {
		log.Printf(format, v...)
	}
}

// closeFile closes c, keeping the first error seen by the caller
func closeFile(c io.Closer, err *error) {
	if cerr := c.Close(); *err == nil {
		*err = cerr
	}
}

func exit(err error) {
	fmt.Fprintln(os.Stderr, "Error:", err)
	os.Exit(1)
}

// Execute executes the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		exit(err)
	}
}

// ExecuteCommand executes c as a program of its own
func ExecuteCommand(c *cobra.Command) {
	c.Version = version
	c.SilenceErrors = true
	c.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log a summary of each run to stderr")
	if err := c.Execute(); err != nil {
		exit(err)
	}
}
