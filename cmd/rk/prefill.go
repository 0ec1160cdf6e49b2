package main

import (
	"github.com/spf13/cobra"
)

var prefillCmd = &cobra.Command{
	Use:   "prefill <source>",
	Short: "Calculator prefill from a day source",
	Long: `Prints CPM, conversions and ad/organic shares taken from one day (--prefill-day)
or averaged over a period (--period), ready for the calculator (see "rk calc -h").`,
	Args: sourceArg,
	RunE: runPrefill,
}

func init() {
	f := prefillCmd.Flags()
	f.String("prefill-day", "", "single day, dd.mm.yyyy")
	f.String("period", "all", "all, last7, last14, last30")

	rootCmd.AddCommand(prefillCmd)
}

func runPrefill(cmd *cobra.Command, args []string) error {
	prefill, err := loadPrefill(cmd, args[0])
	if err != nil {
		return err
	}
	return printJSON(cmd, prefill)
}
