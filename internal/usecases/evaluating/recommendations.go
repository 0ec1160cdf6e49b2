package evaluating

import (
	"sort"
	"strings"

	"github.com/vfg2006/rk-metrics/internal/domain"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	recentDays           = 7
	extremeDays          = 5
	maxNegativeDates     = 7
	worstDaysCPLFactor   = 1.5
	aboveTargetThreshold = 50.0
)

var printer = message.NewPrinter(language.English)

// Recommendations gera sugestões sobre o período. Os primeiros sete dias da lista são
// tratados como a semana recente, então a lista deve vir do mais novo para o mais antigo.
func Recommendations(days []domain.EvaluatedDay, in domain.RecommendationInputs) []domain.Recommendation {
	if len(days) == 0 {
		return []domain.Recommendation{}
	}

	var recs []domain.Recommendation
	add := func(kind domain.RecommendationKind, format string, args ...any) {
		recs = append(recs, domain.Recommendation{Kind: kind, Message: printer.Sprintf(format, args...)})
	}

	var totalCost, totalOrdersRk, sumScore float64
	for _, d := range days {
		totalCost += d.Cost
		totalOrdersRk += d.OrdersRk
		sumScore += float64(d.Score)
	}

	if totalCost > 0 {
		romi := totalOrdersRk * (in.PurchaseRate / 100) * in.Profit / totalCost * 100
		if romi < 100 {
			add(domain.RecommendationNoPayback,
				"Advertising does not pay back over the period (ROMI %.0f%%). Consider lowering bids or revising targeting.", romi)
		} else {
			add(domain.RecommendationPayback, "Advertising pays back over the period (ROMI %.0f%%).", romi)
		}
	}

	recent := days[:min(recentDays, len(days))]
	var recentScore float64
	for _, d := range recent {
		recentScore += float64(d.Score)
	}
	if recentScore/float64(len(recent)) > sumScore/float64(len(days)) {
		add(domain.RecommendationTrendUp, "Efficiency over the last week is above the period average.")
	} else {
		add(domain.RecommendationTrendDown, "Efficiency over the last week is below the period average.")
	}

	valid := make([]domain.EvaluatedDay, 0, len(days))
	for _, d := range days {
		if d.CPLTotal > 0 {
			valid = append(valid, d)
		}
	}
	if len(valid) > 0 {
		above := 0
		for _, d := range valid {
			if d.CPLTotal > in.TargetCPL {
				above++
			}
		}
		if pct := float64(above) / float64(len(valid)) * 100; pct > aboveTargetThreshold {
			add(domain.RecommendationCPLAboveTarget,
				"More than half of the days (%.0f%%) have CPL above target. Review bids and creatives for those days.", pct)
		}

		sort.SliceStable(valid, func(i, j int) bool { return valid[i].CPLTotal < valid[j].CPLTotal })
		n := min(extremeDays, len(valid))

		bestAvg := avgCPL(valid[:n])
		worstAvg := avgCPL(valid[len(valid)-n:])

		if bestAvg < in.TargetCPL {
			add(domain.RecommendationBestDays,
				"On the best days CPL is %.1f, a strong result worth scaling into similar periods.", bestAvg)
		}
		if worstAvg > in.TargetCPL*worstDaysCPLFactor {
			add(domain.RecommendationWorstDays,
				"On the worst days CPL exceeds %.1f. Consider cutting the budget in similar periods.", worstAvg)
		}
	}

	var negative []string
	for _, d := range days {
		if d.Efficiency < 0 {
			negative = append(negative, d.Date)
		}
	}
	if len(negative) > 0 {
		dates := strings.Join(negative[:min(maxNegativeDates, len(negative))], ", ")
		if len(negative) > maxNegativeDates {
			dates += " …"
		}
		add(domain.RecommendationNegativeEfficiency, "Check the days with negative efficiency: %s.", dates)
	}

	return recs
}

func avgCPL(days []domain.EvaluatedDay) float64 {
	var sum float64
	for _, d := range days {
		sum += d.CPLTotal
	}
	return mean(sum, len(days))
}
