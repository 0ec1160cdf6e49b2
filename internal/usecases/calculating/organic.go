package calculating

import "github.com/vfg2006/rk-metrics/internal/domain"

// BreakevenCPL retorna o CPL com orgânico (gasto / carrinhos totais) no qual a
// publicidade se paga:
//
//	profit * (cartToOrder/100) * (purchaseRate/100) * (adCartsShare/adShare)
func BreakevenCPL(profit, cartToOrder, purchaseRate, adCartsShare, adShare float64) float64 {
	if adShare <= 0 {
		return 0
	}

	return profit *
		(cartToOrder / 100) *
		(purchaseRate / 100) *
		(adCartsShare / adShare)
}

// CalculateOrganic estima o total de compras incluindo o orgânico e o retorno da publicidade
func CalculateOrganic(in domain.OrganicInputs) domain.OrganicMetrics {
	adShare := in.AdShare / 100
	if adShare <= 0 {
		return domain.OrganicMetrics{
			DRROrder: in.Period.DRROrder,
			DRRSale:  in.Period.DRRSale,
		}
	}

	totalPurchases := in.PeriodPurchases / adShare
	revenue := totalPurchases * in.Profit

	romi := 0.0
	if in.AdCost > 0 {
		romi = (revenue - in.AdCost) / in.AdCost * 100
	}

	purchaseTotalCost := safeDiv(in.AdCost, totalPurchases)

	drrSaleOrganic := 0.0
	if totalPurchases > 0 && in.Price > 0 {
		drrSaleOrganic = in.AdCost / totalPurchases / in.Price * 100
	}

	return domain.OrganicMetrics{
		TotalPurchases:    totalPurchases,
		OrganicPurchases:  totalPurchases - in.PeriodPurchases,
		AdCost:            in.AdCost,
		Revenue:           revenue,
		ROMI:              romi,
		PurchaseTotalCost: purchaseTotalCost,
		NetProfitPerUnit:  in.Profit - purchaseTotalCost,
		DRRSaleOrganic:    drrSaleOrganic,
		DRROrder:          in.Period.DRROrder,
		DRRSale:           in.Period.DRRSale,
	}
}
