// Package calculating contém as fórmulas do calculador de publicidade:
// métricas do período, CPL de equilíbrio, efeito orgânico e o planejador de vendas.
// Todas as funções são puras; divisões por denominador não positivo resultam em 0.
package calculating

import "github.com/vfg2006/rk-metrics/internal/domain"

// CalculatePeriod calcula as métricas de um período a partir do CPM, impressões e funil
func CalculatePeriod(in domain.PeriodInputs) domain.PeriodMetrics {
	if in.CPM <= 0 || in.Impressions <= 0 {
		return domain.PeriodMetrics{}
	}

	ctr := in.CTR / 100
	clickToCart := in.ClickToCart / 100
	cartToOrder := in.CartToOrder / 100
	purchaseRate := in.PurchaseRate / 100
	adShare := in.AdShare / 100
	adCartsShare := in.AdCartsShare / 100

	spend := adSpend(in.CPM, in.Impressions)

	// CPC = gasto / cliques = CPM / (1000 * CTR)
	cpc := 0.0
	if ctr > 0 {
		cpc = in.CPM / (1000 * ctr)
	}

	clicks := in.Impressions * ctr
	carts := clicks * clickToCart
	orders := carts * cartToOrder
	purchases := orders * purchaseRate

	cpo := safeDiv(spend, orders)
	purchaseCost := safeDiv(spend, purchases)

	drrOrder, drrSale := 0.0, 0.0
	if in.Price > 0 {
		drrOrder = cpo / in.Price * 100
		drrSale = purchaseCost / in.Price * 100
	}

	// carrinhos totais (pagos + orgânicos) a partir da participação da publicidade
	totalCarts := safeDiv(carts, adCartsShare)

	return domain.PeriodMetrics{
		CPC:                cpc,
		Clicks:             clicks,
		Carts:              carts,
		CPL:                safeDiv(spend, carts),
		Orders:             orders,
		CPO:                cpo,
		Purchases:          purchases,
		PurchaseCost:       purchaseCost,
		DRROrder:           drrOrder,
		DRRSale:            drrSale,
		TotalOrdersPer1000: safeDiv(orders, adShare),
		CPLOrganic:         safeDiv(spend, totalCarts),
	}
}

// adSpend retorna o gasto com publicidade de um volume de impressões
func adSpend(cpm, impressions float64) float64 {
	return cpm * (impressions / 1000)
}

func safeDiv(num, den float64) float64 {
	if den > 0 {
		return num / den
	}
	return 0
}
