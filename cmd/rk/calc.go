package main

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/vfg2006/rk-metrics/infrastructure/repository"
	"github.com/vfg2006/rk-metrics/internal/domain"
	"github.com/vfg2006/rk-metrics/internal/usecases/calculating"
	"github.com/vfg2006/rk-metrics/internal/usecases/evaluating"
	"github.com/vfg2006/rk-metrics/pkg/appErrors"
	"github.com/vfg2006/rk-metrics/pkg/log"
)

var calcCmd = &cobra.Command{
	Use:   "calc",
	Short: "Run the calculator for the current period and the season",
	Long: `Computes period metrics, organic uplift and breakeven CPL for both scenarios.

Inputs come from config (CALC_*), then a prefill from a day source (--prefill),
then explicit flags.

Examples:
  rk calc --cpm 280 --impressions 5000
  rk calc --prefill days.json --period last7
  rk calc --prefill days.json --prefill-day 10.03.2025`,
	Args: cobra.NoArgs,
	RunE: runCalc,
}

// flags numéricas da calculadora e o campo que cada uma sobrescreve
var calculatorFlags = []struct {
	name  string
	usage string
	field func(in *domain.CalculatorInputs) *float64
}{
	{"cpm", "cost per 1000 impressions", func(in *domain.CalculatorInputs) *float64 { return &in.CPM }},
	{"purchase-rate", "share of orders actually bought out, %", func(in *domain.CalculatorInputs) *float64 { return &in.PurchaseRate }},
	{"impressions", "ad impressions", func(in *domain.CalculatorInputs) *float64 { return &in.Impressions }},
	{"organic-share", "organic share of orders, %", func(in *domain.CalculatorInputs) *float64 { return &in.OrganicShare }},
	{"organic-carts-share", "organic share of carts, %", func(in *domain.CalculatorInputs) *float64 { return &in.OrganicCartsShare }},

	{"now-price", "current period: price", func(in *domain.CalculatorInputs) *float64 { return &in.Now.Price }},
	{"now-duration", "current period: duration in days", func(in *domain.CalculatorInputs) *float64 { return &in.Now.Duration }},
	{"now-ctr", "current period: CTR, %", func(in *domain.CalculatorInputs) *float64 { return &in.Now.CTR }},
	{"now-click-to-cart", "current period: click to cart, %", func(in *domain.CalculatorInputs) *float64 { return &in.Now.ClickToCart }},
	{"now-cart-to-order", "current period: cart to order, %", func(in *domain.CalculatorInputs) *float64 { return &in.Now.CartToOrder }},
	{"now-profit", "current period: profit per unit", func(in *domain.CalculatorInputs) *float64 { return &in.Now.Profit }},

	{"season-price", "season: price", func(in *domain.CalculatorInputs) *float64 { return &in.Season.Price }},
	{"season-duration", "season: duration in days", func(in *domain.CalculatorInputs) *float64 { return &in.Season.Duration }},
	{"season-ctr", "season: CTR, %", func(in *domain.CalculatorInputs) *float64 { return &in.Season.CTR }},
	{"season-click-to-cart", "season: click to cart, %", func(in *domain.CalculatorInputs) *float64 { return &in.Season.ClickToCart }},
	{"season-cart-to-order", "season: cart to order, %", func(in *domain.CalculatorInputs) *float64 { return &in.Season.CartToOrder }},
	{"season-profit", "season: profit per unit", func(in *domain.CalculatorInputs) *float64 { return &in.Season.Profit }},
}

func init() {
	addCalculatorFlags(calcCmd)

	rootCmd.AddCommand(calcCmd)
}

func addCalculatorFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	for _, cf := range calculatorFlags {
		f.Float64(cf.name, 0, cf.usage+" (default from config)")
	}
	f.String("prefill", "", "day source used to prefill CPM, conversions and shares")
	f.String("prefill-day", "", "prefill from a single day (dd.mm.yyyy) instead of the period average")
	f.String("period", string(domain.PeriodAll), "prefill period: all, last7, last14, last30")
}

func runCalc(cmd *cobra.Command, _ []string) error {
	in, err := calculatorInputs(cmd)
	if err != nil {
		return err
	}

	report, err := calculating.RunCalculator(in)
	if err != nil {
		return &cliError{code: appErrors.ErrInvalidRequest, msg: err.Error()}
	}

	log.ForContext(cmd.Context()).WithField("command", "calc").Debugf("Calculadora executada com CPM %.2f", in.CPM)

	return printJSON(cmd, report)
}

// calculatorInputs aplica, em ordem, config, prefill e flags
func calculatorInputs(cmd *cobra.Command) (domain.CalculatorInputs, error) {
	in := cfg.Calculator.Inputs()
	flags := cmd.Flags()

	if source, _ := flags.GetString("prefill"); source != "" {
		prefill, err := loadPrefill(cmd, source)
		if err != nil {
			return in, err
		}
		in.ApplyPrefill(prefill)
	}

	for _, cf := range calculatorFlags {
		if !flags.Changed(cf.name) {
			continue
		}
		v, err := flags.GetFloat64(cf.name)
		if err != nil {
			return in, err
		}
		if v < 0 {
			return in, invalidFlag(cf.name, "must not be negative")
		}
		*cf.field(&in) = v
	}

	return in, nil
}

// loadPrefill calcula o prefill de um dia (--prefill-day) ou da média do período (--period)
func loadPrefill(cmd *cobra.Command, source string) (domain.CalculatorPrefill, error) {
	period, _ := cmd.Flags().GetString("period")
	if !domain.Period(period).IsValid() || domain.Period(period) == domain.PeriodCustom {
		return domain.CalculatorPrefill{}, invalidFlag("period", "unknown period %q", period)
	}

	set, err := repository.NewDayFileRepository(cmd.InOrStdin()).LoadDays(cmd.Context(), source)
	if err != nil {
		return domain.CalculatorPrefill{}, sourceError(err, source)
	}

	if date, _ := cmd.Flags().GetString("prefill-day"); date != "" {
		for _, d := range set.Days {
			if d.Date == date {
				return calculating.DayPrefill(d), nil
			}
		}
		return domain.CalculatorPrefill{}, invalidFlag("prefill-day", "day %s not found in %s", date, source)
	}

	days := evaluating.FilterDaysByPeriod(set.Days, domain.PeriodFilter{Period: domain.Period(period)})
	return calculating.AggregatePrefill(days), nil
}

// sourceError anexa o código da aplicação aos erros do repositório de dias
func sourceError(err error, source string) error {
	switch errors.Cause(err) {
	case repository.ErrSourceNotFound:
		return &cliError{code: appErrors.ErrSourceNotFound, msg: err.Error()}
	case repository.ErrInvalidSource:
		return &cliError{code: appErrors.ErrInvalidFormat, msg: err.Error()}
	}
	return errors.Wrapf(err, "loading %s", source)
}
