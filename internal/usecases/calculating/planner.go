package calculating

import (
	"math"

	"github.com/vfg2006/rk-metrics/internal/domain"
)

// Plan converte a meta de vendas (compras) em pedidos, carrinhos, impressões e
// orçamento para os cenários atual e de temporada
func Plan(in domain.PlannerInputs) domain.SalesPlan {
	targetOrders := 0.0
	if in.PurchaseRate > 0 {
		targetOrders = in.TargetSales / (in.PurchaseRate / 100)
	}

	adShare := in.AdShare / 100
	adCartsShare := in.AdCartsShare / 100

	return domain.SalesPlan{
		TargetOrders: targetOrders,
		Now:          planScenario(targetOrders, adShare, adCartsShare, in.CPM, in.Now),
		Season:       planScenario(targetOrders, adShare, adCartsShare, in.CPM, in.Season),
	}
}

func planScenario(targetOrders, adShare, adCartsShare, cpm float64, s domain.ScenarioAssumptions) domain.ScenarioPlan {
	impressionsNeeded := 0.0
	if s.TotalOrdersPer1000 > 0 {
		impressionsNeeded = targetOrders / s.TotalOrdersPer1000 * 1000
	}
	budget := impressionsNeeded / 1000 * cpm

	adOrders := targetOrders * adShare
	organicOrders := targetOrders - adOrders

	cartsNeeded := safeDiv(targetOrders, s.CartToOrder/100)
	adCarts := cartsNeeded * adCartsShare
	organicCarts := cartsNeeded - adCarts

	duration := math.Max(s.Duration, 1)

	return domain.ScenarioPlan{
		ImpressionsNeeded:  impressionsNeeded,
		Budget:             budget,
		DailyBudget:        budget / duration,
		AdOrders:           adOrders,
		OrganicOrders:      organicOrders,
		CartsNeeded:        cartsNeeded,
		AdCarts:            adCarts,
		OrganicCarts:       organicCarts,
		DailyOrders:        targetOrders / duration,
		DailyAdOrders:      adOrders / duration,
		DailyOrganicOrders: organicOrders / duration,
		DailyCarts:         cartsNeeded / duration,
		DailyAdCarts:       adCarts / duration,
		DailyOrganicCarts:  organicCarts / duration,
		ImpressionsPerDay:  impressionsNeeded / duration,
		ImpressionsPerWeek: impressionsNeeded / (duration / 7),
	}
}
