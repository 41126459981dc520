package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-content/internal/dice"
	"github.com/KirkDiggler/rpg-content/internal/errors"
)

var rollCount int

var rollCmd = &cobra.Command{
	Use:   "roll <notation>",
	Short: "Roll a dice expression such as 2d6+1",
	Long: `Roll prints the range a dice expression covers, as tooltips show it, and
then rolls it --count times.`,
	Args: cobra.ExactArgs(1),
	RunE: runRoll,
}

func init() {
	rollCmd.Flags().IntVar(&rollCount, "count", 1, "number of rolls")
}

func runRoll(cmd *cobra.Command, args []string) error {
	if rollCount < 1 {
		return errors.InvalidArgumentf("count must be at least 1, got %d", rollCount)
	}

	expr := args[0]
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "%s covers %s\n", expr, dice.Parse(expr))
	for i := 0; i < rollCount; i++ {
		result, err := dice.Roll(nil, expr)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, result)
	}
	return nil
}
