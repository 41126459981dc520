package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-content/internal/errors"
	"github.com/KirkDiggler/rpg-content/internal/orchestrators/audit"
)

var dupesStrict bool

var dupesCmd = &cobra.Command{
	Use:   "dupes",
	Short: "List properties whose names collide",
	Long: `Dupes groups the property files by name, ignoring case and extra
whitespace, and lists every name used by more than one file. Property
references resolve to the first file in lexical order, so the others are
unreachable.`,
	Args: cobra.NoArgs,
	RunE: runDupes,
}

func init() {
	dupesCmd.Flags().BoolVar(&dupesStrict, "strict", false, "exit with an error when anything is found")
}

func runDupes(cmd *cobra.Command, _ []string) error {
	report, err := audit.FindDuplicates(cmd.Context(), &audit.FindDuplicatesInput{Dir: propertiesDir()})
	if err != nil {
		return err
	}

	printAudit(cmd.OutOrStdout(), report)

	if dupesStrict && report.HasFindings() {
		return errors.FailedPreconditionf("%d duplicate names, %d unnamed and %d unparsed property files",
			len(report.Duplicates), len(report.Unnamed), len(report.Unparsed))
	}
	return nil
}

func printAudit(w io.Writer, report *audit.FindDuplicatesOutput) {
	if len(report.Duplicates) == 0 {
		fmt.Fprintln(w, "No duplicates found")
	}
	for _, group := range report.Duplicates {
		fmt.Fprintf(w, "NAME: %s\n", group.Key)
		for _, path := range group.Paths {
			fmt.Fprintf(w, "  - %s\n", path)
		}
		fmt.Fprintln(w)
	}

	if len(report.Unnamed) > 0 {
		fmt.Fprintln(w, "Files without a name:")
		for _, path := range report.Unnamed {
			fmt.Fprintf(w, "  - %s\n", path)
		}
	}
	if len(report.Unparsed) > 0 {
		fmt.Fprintln(w, "Files that could not be parsed:")
		for _, failure := range report.Unparsed {
			fmt.Fprintf(w, "  - %s: %v\n", failure.Path, failure.Err)
		}
	}
}
