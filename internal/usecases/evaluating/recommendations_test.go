package evaluating

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/rk-metrics/internal/domain"
)

func evaluatedDay(date string, cost, cplTotal, efficiency float64, score int, ordersRk float64) domain.EvaluatedDay {
	return domain.EvaluatedDay{
		DailyRecord: domain.DailyRecord{Date: date, Cost: cost, OrdersRk: ordersRk},
		CPLTotal:    cplTotal,
		Efficiency:  efficiency,
		Score:       score,
	}
}

func kinds(recs []domain.Recommendation) []domain.RecommendationKind {
	out := make([]domain.RecommendationKind, 0, len(recs))
	for _, r := range recs {
		out = append(out, r.Kind)
	}
	return out
}

func TestRecommendations_Empty(t *testing.T) {
	got := Recommendations(nil, domain.RecommendationInputs{TargetCPL: 50})
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestRecommendations(t *testing.T) {
	tests := []struct {
		name     string
		days     []domain.EvaluatedDay
		in       domain.RecommendationInputs
		validate func(t *testing.T, got []domain.Recommendation)
	}{
		{
			name: "Período que se paga com CPL abaixo do alvo",
			days: []domain.EvaluatedDay{
				evaluatedDay("03.03.2025", 1000, 30, 40, 90, 10),
				evaluatedDay("02.03.2025", 1000, 40, 20, 80, 10),
			},
			in: domain.RecommendationInputs{TargetCPL: 50, Profit: 1000, PurchaseRate: 20},
			validate: func(t *testing.T, got []domain.Recommendation) {
				assert.Equal(t, []domain.RecommendationKind{
					domain.RecommendationPayback,
					domain.RecommendationTrendDown,
					domain.RecommendationBestDays,
				}, kinds(got))
				// 20 pedidos * 20% * 1000 / 2000 = 200%
				assert.Equal(t, "Advertising pays back over the period (ROMI 200%).", got[0].Message)
				assert.Contains(t, got[2].Message, "35.0")
			},
		},
		{
			name: "Período que não se paga com CPL alto",
			days: []domain.EvaluatedDay{
				evaluatedDay("03.03.2025", 2000, 100, -100, 10, 1),
				evaluatedDay("02.03.2025", 2000, 90, -80, 20, 1),
				evaluatedDay("01.03.2025", 2000, 40, 20, 60, 1),
			},
			in: domain.RecommendationInputs{TargetCPL: 50, Profit: 600, PurchaseRate: 20},
			validate: func(t *testing.T, got []domain.Recommendation) {
				assert.Equal(t, []domain.RecommendationKind{
					domain.RecommendationNoPayback,
					domain.RecommendationTrendDown,
					domain.RecommendationCPLAboveTarget,
					domain.RecommendationWorstDays,
					domain.RecommendationNegativeEfficiency,
				}, kinds(got))
				// 3 * 0.2 * 600 / 6000 = 6%
				assert.Contains(t, got[0].Message, "ROMI 6%")
				assert.Contains(t, got[2].Message, "(67%)")
				// média dos piores dias (40+90+100)/3 acima de 1.5x o alvo
				assert.Contains(t, got[3].Message, "76.7")
				assert.Equal(t, "Check the days with negative efficiency: 03.03.2025, 02.03.2025.", got[4].Message)
			},
		},
		{
			name: "Sem custo não há recomendação de ROMI",
			days: []domain.EvaluatedDay{
				evaluatedDay("01.03.2025", 0, 0, 100, 0, 0),
			},
			in: domain.RecommendationInputs{TargetCPL: 50},
			validate: func(t *testing.T, got []domain.Recommendation) {
				assert.Equal(t, []domain.RecommendationKind{domain.RecommendationTrendDown}, kinds(got))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validate(t, Recommendations(tt.days, tt.in))
		})
	}
}

func TestRecommendations_RecentWeekAboveAverage(t *testing.T) {
	days := make([]domain.EvaluatedDay, 0, 10)
	for i := 0; i < 10; i++ {
		score := 80
		if i >= 7 {
			score = 10
		}
		days = append(days, evaluatedDay(fmt.Sprintf("%02d.03.2025", 20-i), 0, 0, 0, score, 0))
	}

	got := Recommendations(days, domain.RecommendationInputs{TargetCPL: 50})

	require.NotEmpty(t, got)
	assert.Equal(t, domain.RecommendationTrendUp, got[0].Kind)
}

func TestRecommendations_NegativeEfficiencyListIsTruncated(t *testing.T) {
	days := make([]domain.EvaluatedDay, 0, 9)
	for i := 0; i < 9; i++ {
		days = append(days, evaluatedDay(fmt.Sprintf("%02d.03.2025", 10-i), 0, 0, -10, 0, 0))
	}

	got := Recommendations(days, domain.RecommendationInputs{TargetCPL: 50})

	last := got[len(got)-1]
	assert.Equal(t, domain.RecommendationNegativeEfficiency, last.Kind)
	assert.Equal(t,
		"Check the days with negative efficiency: 10.03.2025, 09.03.2025, 08.03.2025, 07.03.2025, 06.03.2025, 05.03.2025, 04.03.2025 ….",
		last.Message)
}
