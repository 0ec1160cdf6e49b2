package main

import (
	"github.com/spf13/cobra"
	"github.com/vfg2006/rk-metrics/internal/usecases/calculating"
	"github.com/vfg2006/rk-metrics/pkg/appErrors"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Plan impressions, budget and carts for a sales target",
	Long: `Runs the calculator and feeds its orders per 1000 impressions, CPM, durations
and shares into the sales planner for both scenarios.

Example:
  rk plan --target-sales 300 --cpm 280`,
	Args: cobra.NoArgs,
	RunE: runPlan,
}

func init() {
	addCalculatorFlags(planCmd)
	planCmd.Flags().Float64("target-sales", 100, "target bought-out sales for the period")

	rootCmd.AddCommand(planCmd)
}

func runPlan(cmd *cobra.Command, _ []string) error {
	targetSales, _ := cmd.Flags().GetFloat64("target-sales")
	if targetSales < 0 {
		return invalidFlag("target-sales", "must not be negative")
	}

	in, err := calculatorInputs(cmd)
	if err != nil {
		return err
	}

	report, err := calculating.RunCalculator(in)
	if err != nil {
		return &cliError{code: appErrors.ErrInvalidRequest, msg: err.Error()}
	}

	return printJSON(cmd, calculating.PlanFromCalculator(report, targetSales))
}
