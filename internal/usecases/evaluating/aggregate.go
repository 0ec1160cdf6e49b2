package evaluating

import (
	"strings"

	"github.com/vfg2006/rk-metrics/internal/domain"
	"golang.org/x/text/cases"
)

// AggregateDailyKPIs soma e calcula as médias de uma lista de dias avaliados.
// Sem dias retorna o valor zero (Days == 0).
func AggregateDailyKPIs(days []domain.EvaluatedDay) domain.AggregateKPI {
	if len(days) == 0 {
		return domain.AggregateKPI{}
	}

	var (
		totalCost, totalShows, totalShowsAll float64
		totalOrders, totalOrdersRk           float64
		totalCarts, totalCartsRk             float64
		totalTrans, totalTransAll            float64
		sumEfficiency, sumRating, sumScore   float64
		sumCPLTotal, sumCPLRk                float64
		cplTotalDays, cplRkDays              int
	)

	for _, d := range days {
		totalCost += d.Cost
		totalShows += d.Shows
		totalShowsAll += d.TotalShows
		totalOrders += d.Orders
		totalOrdersRk += d.OrdersRk
		totalCarts += d.CartsTotal
		totalCartsRk += d.CartsRk
		totalTrans += d.Transitions
		totalTransAll += d.TotalTransitions

		if d.CPLTotal > 0 {
			sumCPLTotal += d.CPLTotal
			cplTotalDays++
		}
		if d.CPLRk > 0 {
			sumCPLRk += d.CPLRk
			cplRkDays++
		}

		sumEfficiency += d.Efficiency
		sumRating += float64(d.Rating.Ordinal())
		sumScore += float64(d.Score)
	}

	n := float64(len(days))
	showsRatio := safeDiv(totalShows, totalShowsAll) * 100

	// no período o orgânico é a diferença simples, sem truncar
	totalShowsOrganic := totalShowsAll - totalShows
	totalTransOrganic := totalTransAll - totalTrans
	totalCartsOrganic := totalCarts - totalCartsRk
	totalOrdersOrganic := totalOrders - totalOrdersRk

	return domain.AggregateKPI{
		Days: len(days),

		TotalCost: totalCost,
		AvgCost:   totalCost / n,

		TotalShows:              totalShows,
		TotalShowsAll:           totalShowsAll,
		TotalShowsOrganic:       totalShowsOrganic,
		TotalTransitions:        totalTrans,
		TotalTransitionsAll:     totalTransAll,
		TotalTransitionsOrganic: totalTransOrganic,
		TotalCarts:              totalCarts,
		TotalCartsRk:            totalCartsRk,
		TotalCartsOrganic:       totalCartsOrganic,
		TotalOrders:             totalOrders,
		TotalOrdersRk:           totalOrdersRk,
		TotalOrdersOrganic:      totalOrdersOrganic,

		AvgCPM:      safeDiv(totalCost, totalShows) * 1000,
		AvgCPC:      safeDiv(totalCost, totalTrans),
		AvgCPLTotal: mean(sumCPLTotal, cplTotalDays),
		AvgCPLRk:    mean(sumCPLRk, cplRkDays),

		ShowsRatio:   showsRatio,
		OrganicRatio: 100 - showsRatio,
		CartsRatio:   safeDiv(totalCartsRk, totalCarts) * 100,
		OrdersRatio:  safeDiv(totalOrdersRk, totalOrders) * 100,

		AvgPaid: funnel(totalShows, totalTrans, totalCartsRk, totalOrdersRk),
		AvgOrganic: domain.Funnel{
			CTR:         safeDiv(totalTransOrganic, totalShowsOrganic) * 100,
			ShowToCart:  safeDiv(totalCartsOrganic, totalShowsOrganic) * 100,
			ClickToCart: safeDiv(totalCartsOrganic, totalTransOrganic) * 100,
			CartToOrder: safeDiv(totalOrdersOrganic, totalCartsOrganic) * 100,
		},
		AvgTotal: funnel(totalShowsAll, totalTransAll, totalCarts, totalOrders),

		TotalConv:       safeDiv(totalOrders, totalShowsAll) * 100,
		TotalEfficiency: sumEfficiency / n,
		AvgRating:       sumRating / n,
		AvgRatingScore:  sumScore / n,
	}
}

// AggregateByType soma os detalhes por tipo de posicionamento e calcula CPM, CPC,
// CTR e CPL de cada tipo. Com datesInPeriod nil todas as datas entram.
func AggregateByType(details domain.DetailsByDate, datesInPeriod []string) map[domain.PlacementType]domain.TypeAggregate {
	var allowed map[string]struct{}
	if datesInPeriod != nil {
		allowed = make(map[string]struct{}, len(datesInPeriod))
		for _, d := range datesInPeriod {
			allowed[d] = struct{}{}
		}
	}

	byType := make(map[domain.PlacementType]domain.TypeAggregate)
	for date, rows := range details {
		if allowed != nil {
			if _, ok := allowed[date]; !ok {
				continue
			}
		}

		for _, r := range rows {
			key := NormalizePlacementType(r.Type)
			t := byType[key]
			t.Shows += r.Shows
			t.Cost += r.Cost
			t.Carts += r.Carts
			t.Transitions += r.Transitions
			t.Count++
			byType[key] = t
		}
	}

	for key, t := range byType {
		t.CPM = safeDiv(t.Cost, t.Shows) * 1000
		t.CPC = safeDiv(t.Cost, t.Transitions)
		t.CTR = safeDiv(t.Transitions, t.Shows) * 100
		t.CPL = safeDiv(t.Cost, t.Carts)
		byType[key] = t
	}

	return byType
}

var placementKeywords = []struct {
	key      domain.PlacementType
	keywords []string
}{
	{key: domain.PlacementSearch, keywords: []string{"search", "поиск"}},
	{key: domain.PlacementShelf, keywords: []string{"shelf", "полки"}},
	{key: domain.PlacementCatalog, keywords: []string{"catalog", "каталог"}},
}

// NormalizePlacementType mapeia o rótulo do export (ex.: "Поиск | 45%") para a chave do tipo
func NormalizePlacementType(raw string) domain.PlacementType {
	folded := cases.Fold().String(strings.TrimSpace(raw))
	for _, p := range placementKeywords {
		for _, kw := range p.keywords {
			if strings.Contains(folded, kw) {
				return p.key
			}
		}
	}
	return domain.PlacementOther
}

func mean(sum float64, n int) float64 {
	if n > 0 {
		return sum / float64(n)
	}
	return 0
}
