package main

import (
	"github.com/spf13/cobra"
	"github.com/vfg2006/rk-metrics/internal/usecases/calculating"
	"github.com/vfg2006/rk-metrics/pkg/utils"
)

var breakevenCmd = &cobra.Command{
	Use:   "breakeven",
	Short: "Maximum CPL (cost per cart) that still breaks even",
	Long: `breakeven CPL = profit * cart->order * purchase rate * (ad carts share / ad orders share)

Unset flags fall back to the current-period calculator config.`,
	Args: cobra.NoArgs,
	RunE: runBreakeven,
}

type breakevenResult struct {
	Profit       float64 `json:"profit"`
	CartToOrder  float64 `json:"cartToOrder"`
	PurchaseRate float64 `json:"purchaseRate"`
	AdCartsShare float64 `json:"adCartsShare"`
	AdShare      float64 `json:"adShare"`
	BreakevenCPL float64 `json:"breakevenCpl"`
}

func init() {
	f := breakevenCmd.Flags()
	f.Float64("profit", 0, "profit per bought-out unit")
	f.Float64("cart-to-order", 0, "cart to order conversion, %")
	f.Float64("purchase-rate", 0, "purchase rate, %")
	f.Float64("ad-carts-share", 0, "ad share of carts, %")
	f.Float64("ad-share", 0, "ad share of orders, %")

	rootCmd.AddCommand(breakevenCmd)
}

func runBreakeven(cmd *cobra.Command, _ []string) error {
	c := cfg.Calculator
	res := breakevenResult{
		Profit:       floatFlag(cmd, "profit", c.NowProfit),
		CartToOrder:  floatFlag(cmd, "cart-to-order", c.NowCartToOrder),
		PurchaseRate: floatFlag(cmd, "purchase-rate", c.PurchaseRate),
		AdCartsShare: floatFlag(cmd, "ad-carts-share", 100-c.OrganicCartsShare),
		AdShare:      floatFlag(cmd, "ad-share", 100-c.OrganicShare),
	}

	res.BreakevenCPL = utils.RoundWithTwoDecimalPlace(calculating.BreakevenCPL(
		res.Profit, res.CartToOrder, res.PurchaseRate, res.AdCartsShare, res.AdShare,
	))

	return printJSON(cmd, res)
}

// floatFlag retorna o valor da flag se ela foi informada, senão o fallback
func floatFlag(cmd *cobra.Command, name string, fallback float64) float64 {
	if !cmd.Flags().Changed(name) {
		return fallback
	}
	v, err := cmd.Flags().GetFloat64(name)
	if err != nil {
		return fallback
	}
	return v
}
