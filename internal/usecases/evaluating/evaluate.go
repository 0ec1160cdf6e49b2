// Package evaluating avalia os dias do relatório de publicidade: CPL total,
// eficiência contra o CPL alvo, funis pago/orgânico/total, pontuação e
// classificação, além de agregados do período, filtro de datas e recomendações.
package evaluating

import (
	"math"

	"github.com/vfg2006/rk-metrics/internal/domain"
)

// EvaluateDay enriquece um dia com as métricas derivadas e a classificação
func EvaluateDay(day domain.DailyRecord, targetCPL float64) domain.EvaluatedDay {
	cplTotal := safeDiv(day.Cost, day.CartsTotal)

	efficiency := 0.0
	if targetCPL > 0 {
		efficiency = (targetCPL - cplTotal) / targetCPL * 100
	}

	// dados anômalos (total < pago) são truncados em zero
	organicShows := math.Max(0, day.TotalShows-day.Shows)
	organicTransitions := math.Max(0, day.TotalTransitions-day.Transitions)
	organicCarts := math.Max(0, day.CartsTotal-day.CartsRk)
	organicOrders := math.Max(0, day.Orders-day.OrdersRk)

	score := dayScore(cplTotal, targetCPL, day.Orders, day.CartsTotal)

	return domain.EvaluatedDay{
		DailyRecord: day,
		CPLTotal:    cplTotal,
		TargetCPL:   targetCPL,
		Efficiency:  efficiency,
		Score:       score,
		Rating:      RatingForScore(score),
		Paid:        funnel(day.Shows, day.Transitions, day.CartsRk, day.OrdersRk),
		Organic:     funnel(organicShows, organicTransitions, organicCarts, organicOrders),
		Total:       funnel(day.TotalShows, day.TotalTransitions, day.CartsTotal, day.Orders),

		OrganicShows:       organicShows,
		OrganicTransitions: organicTransitions,
		OrganicCarts:       organicCarts,
		OrganicOrders:      organicOrders,
	}
}

// EvaluateDays avalia cada dia mantendo a ordem de entrada
func EvaluateDays(days []domain.DailyRecord, targetCPL float64) []domain.EvaluatedDay {
	evaluated := make([]domain.EvaluatedDay, 0, len(days))
	for _, d := range days {
		evaluated = append(evaluated, EvaluateDay(d, targetCPL))
	}
	return evaluated
}

// RatingForScore converte a pontuação 0-100 na classificação ordinal
func RatingForScore(score int) domain.Rating {
	switch {
	case score >= 80:
		return domain.RatingExcellent
	case score >= 60:
		return domain.RatingGood
	case score >= 40:
		return domain.RatingAverage
	case score >= 20:
		return domain.RatingPoor
	default:
		return domain.RatingCritical
	}
}

func dayScore(cplTotal, targetCPL, orders, carts float64) int {
	score := 0

	if cplTotal > 0 {
		switch {
		case cplTotal <= targetCPL*0.7:
			score += 40
		case cplTotal <= targetCPL:
			score += 30
		case cplTotal <= targetCPL*1.5:
			score += 15
		}
	}

	switch {
	case orders >= 5:
		score += 30
	case orders >= 2:
		score += 20
	case orders >= 1:
		score += 10
	}

	switch {
	case carts >= 10:
		score += 30
	case carts >= 5:
		score += 20
	case carts >= 1:
		score += 10
	}

	if score > 100 {
		score = 100
	}
	return score
}

func funnel(shows, transitions, carts, orders float64) domain.Funnel {
	return domain.Funnel{
		CTR:         safeDiv(transitions, shows) * 100,
		ShowToCart:  safeDiv(carts, shows) * 100,
		ClickToCart: safeDiv(carts, transitions) * 100,
		CartToOrder: safeDiv(orders, carts) * 100,
	}
}

func safeDiv(num, den float64) float64 {
	if den > 0 {
		return num / den
	}
	return 0
}
