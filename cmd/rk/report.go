package main

import (
	"github.com/spf13/cobra"
	"github.com/vfg2006/rk-metrics/infrastructure/repository"
	"github.com/vfg2006/rk-metrics/internal/domain"
	"github.com/vfg2006/rk-metrics/internal/usecases/reporting"
)

var reportCmd = &cobra.Command{
	Use:   "report <source>",
	Short: "Build the daily report for a day source",
	Long: `Loads the day source ("-" reads stdin), filters it by period, evaluates each
day against the target CPL and prints the days (newest first), period KPIs,
placement type breakdown, recommendations and a calculator prefill.

Examples:
  rk report days.json --period last14 --target-cpl 45
  rk report days.json --period custom --start 2025-03-01 --end 2025-03-15
  rk report days.json --per-day-target --profit 600 --purchase-rate 25
  rk report days.json --exclude-last-day --exclude-no-ad-days

Without --target-cpl or TARGET_CPL the target is the calculator's current breakeven CPL.`,
	Args: sourceArg,
	RunE: runReport,
}

func init() {
	f := reportCmd.Flags()
	f.String("period", "", "all, last7, last14, last30 or custom (default from config)")
	f.String("start", "", "custom period start, YYYY-MM-DD")
	f.String("end", "", "custom period end, YYYY-MM-DD")
	f.Float64("target-cpl", 0, "target CPL (default from config)")
	f.Float64("profit", 0, "profit per bought-out unit (default from config)")
	f.Float64("purchase-rate", 0, "purchase rate, % (default from config)")
	f.Bool("per-day-target", false, "use each day's breakeven CPL as its target")
	f.Bool("exclude-last-day", false, "drop the most recent day, usually partial (default from config)")
	f.Bool("exclude-no-ad-days", false, "drop days without ad spend (default from config)")
	f.Bool("recent-conversions", false, "use the last 7 days' own conversions for their target instead of the calculator's (default from config)")
	f.Bool("summary", false, "omit the per-day list")

	rootCmd.AddCommand(reportCmd)
}

func runReport(cmd *cobra.Command, args []string) error {
	request := reportRequest(cmd)

	service := reporting.NewService(repository.NewDayFileRepository(cmd.InOrStdin()))
	report, err := service.BuildReport(cmd.Context(), args[0], request)
	if err != nil {
		return err
	}

	if summary, _ := cmd.Flags().GetBool("summary"); summary {
		report.Days = nil
	}

	return printJSON(cmd, report)
}

// reportRequest parte da configuração e aplica as flags informadas
func reportRequest(cmd *cobra.Command) domain.ReportRequest {
	request := cfg.ReportRequest()
	flags := cmd.Flags()

	if flags.Changed("period") {
		period, _ := flags.GetString("period")
		request.Filter.Period = domain.Period(period)
	}
	request.Filter.StartDate, _ = flags.GetString("start")
	request.Filter.EndDate, _ = flags.GetString("end")

	request.TargetCPL = floatFlag(cmd, "target-cpl", request.TargetCPL)
	request.Profit = floatFlag(cmd, "profit", request.Profit)
	request.PurchaseRate = floatFlag(cmd, "purchase-rate", request.PurchaseRate)
	request.PerDayTarget, _ = flags.GetBool("per-day-target")
	request.ExcludeLastDay = boolFlag(cmd, "exclude-last-day", request.ExcludeLastDay)
	request.ExcludeNoAdDays = boolFlag(cmd, "exclude-no-ad-days", request.ExcludeNoAdDays)
	request.UseRecentConversions = boolFlag(cmd, "recent-conversions", request.UseRecentConversions)

	return request
}

func boolFlag(cmd *cobra.Command, name string, fallback bool) bool {
	if !cmd.Flags().Changed(name) {
		return fallback
	}
	v, err := cmd.Flags().GetBool(name)
	if err != nil {
		return fallback
	}
	return v
}
