package calculating

import (
	"github.com/pkg/errors"
	"github.com/vfg2006/rk-metrics/internal/domain"
)

// ErrCalculatorBaseMissing indica CPM ou número de impressões não positivos
var ErrCalculatorBaseMissing = errors.New("cpm and impressions must be positive")

// defaultShare é a participação usada quando não há base para calcular (50/50)
const defaultShare = 50.0

// RunCalculator executa a página do calculador: métricas do período, efeito orgânico
// e CPL de equilíbrio para os cenários atual e de temporada
func RunCalculator(in domain.CalculatorInputs) (*domain.CalculatorReport, error) {
	if in.CPM <= 0 || in.Impressions <= 0 {
		return nil, errors.Wrapf(ErrCalculatorBaseMissing, "cpm=%v impressions=%v", in.CPM, in.Impressions)
	}

	adShare := 100 - in.OrganicShare
	adCartsShare := 100 - in.OrganicCartsShare
	adCost := adSpend(in.CPM, in.Impressions)

	return &domain.CalculatorReport{
		Inputs:       in,
		AdShare:      adShare,
		AdCartsShare: adCartsShare,
		AdCost:       adCost,
		Now:          runScenario(in, in.Now, adShare, adCartsShare, adCost),
		Season:       runScenario(in, in.Season, adShare, adCartsShare, adCost),
	}, nil
}

func runScenario(in domain.CalculatorInputs, s domain.ScenarioInputs, adShare, adCartsShare, adCost float64) domain.ScenarioReport {
	period := CalculatePeriod(domain.PeriodInputs{
		CPM:          in.CPM,
		Impressions:  in.Impressions,
		CTR:          s.CTR,
		ClickToCart:  s.ClickToCart,
		CartToOrder:  s.CartToOrder,
		Price:        s.Price,
		PurchaseRate: in.PurchaseRate,
		AdShare:      adShare,
		AdCartsShare: adCartsShare,
	})

	organic := CalculateOrganic(domain.OrganicInputs{
		PeriodPurchases: period.Purchases,
		Price:           s.Price,
		Profit:          s.Profit,
		AdShare:         adShare,
		AdCost:          adCost,
		Period:          period,
	})

	breakeven := BreakevenCPL(s.Profit, s.CartToOrder, in.PurchaseRate, adCartsShare, adShare)

	return domain.ScenarioReport{
		Period:       period,
		Organic:      organic,
		BreakevenCPL: breakeven,
		Profitable:   period.CPLOrganic < breakeven,
	}
}

// PlanFromCalculator monta as entradas do planejador a partir do resultado do calculador
func PlanFromCalculator(report *domain.CalculatorReport, targetSales float64) domain.SalesPlan {
	if report == nil {
		return Plan(domain.PlannerInputs{TargetSales: targetSales})
	}

	return Plan(domain.PlannerInputs{
		TargetSales:  targetSales,
		PurchaseRate: report.Inputs.PurchaseRate,
		AdShare:      report.AdShare,
		AdCartsShare: report.AdCartsShare,
		CPM:          report.Inputs.CPM,
		Now: domain.ScenarioAssumptions{
			CartToOrder:        report.Inputs.Now.CartToOrder,
			TotalOrdersPer1000: report.Now.Period.TotalOrdersPer1000,
			Duration:           report.Inputs.Now.Duration,
		},
		Season: domain.ScenarioAssumptions{
			CartToOrder:        report.Inputs.Season.CartToOrder,
			TotalOrdersPer1000: report.Season.Period.TotalOrdersPer1000,
			Duration:           report.Inputs.Season.Duration,
		},
	})
}

// DayPrefill extrai de um dia os valores para o período atual do calculador.
// As conversões são as totais do produto; orgânico = 100 - publicidade.
func DayPrefill(day domain.DailyRecord) domain.CalculatorPrefill {
	organicTransitions := clampZero(day.TotalTransitions - day.Transitions)
	organicCarts := clampZero(day.CartsTotal - day.CartsRk)

	organicShare := defaultShare
	if day.TotalTransitions > 0 {
		organicShare = organicTransitions / day.TotalTransitions * 100
	}
	organicCartsShare := defaultShare
	if day.CartsTotal > 0 {
		organicCartsShare = organicCarts / day.CartsTotal * 100
	}

	return domain.CalculatorPrefill{
		CPM:               safeDiv(day.Cost, day.Shows) * 1000,
		CTR:               safeDiv(day.TotalTransitions, day.TotalShows) * 100,
		ClickToCart:       safeDiv(day.CartsTotal, day.TotalTransitions) * 100,
		CartToOrder:       safeDiv(day.Orders, day.CartsTotal) * 100,
		AdShare:           100 - organicShare,
		AdCartsShare:      100 - organicCartsShare,
		OrganicShare:      organicShare,
		OrganicCartsShare: organicCartsShare,
	}
}

// AggregatePrefill calcula as médias de uma lista de dias para o período atual do
// calculador. As conversões são as da publicidade; sem dias retorna o valor zero.
func AggregatePrefill(days []domain.DailyRecord) domain.CalculatorPrefill {
	if len(days) == 0 {
		return domain.CalculatorPrefill{}
	}

	var shows, transitions, carts, cartsAll, ordersRk, orders, cost float64
	for _, d := range days {
		shows += d.Shows
		transitions += d.Transitions
		carts += d.CartsRk
		cartsAll += d.CartsTotal
		ordersRk += d.OrdersRk
		orders += d.Orders
		cost += d.Cost
	}

	adCartsShare := defaultShare
	if cartsAll > 0 {
		adCartsShare = carts / cartsAll * 100
	}
	adShareOrders := defaultShare
	if orders > 0 {
		adShareOrders = ordersRk / orders * 100
	}

	return domain.CalculatorPrefill{
		CPM:               safeDiv(cost, shows) * 1000,
		CTR:               safeDiv(transitions, shows) * 100,
		ClickToCart:       safeDiv(carts, transitions) * 100,
		CartToOrder:       safeDiv(ordersRk, carts) * 100,
		AdShare:           adShareOrders,
		AdCartsShare:      adCartsShare,
		OrganicShare:      100 - adShareOrders,
		OrganicCartsShare: 100 - adCartsShare,
	}
}

func clampZero(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}
