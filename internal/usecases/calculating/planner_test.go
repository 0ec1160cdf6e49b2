package calculating

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/rk-metrics/internal/domain"
)

func plannerInputs() domain.PlannerInputs {
	return domain.PlannerInputs{
		TargetSales:  100,
		PurchaseRate: 20,
		AdShare:      50,
		AdCartsShare: 40,
		CPM:          320,
		Now:          domain.ScenarioAssumptions{CartToOrder: 15, TotalOrdersPer1000: 8, Duration: 70},
		Season:       domain.ScenarioAssumptions{CartToOrder: 25, TotalOrdersPer1000: 10, Duration: 14},
	}
}

func TestPlan(t *testing.T) {
	got := Plan(plannerInputs())

	assert.InDelta(t, 500.0, got.TargetOrders, delta)

	now := got.Now
	assert.InDelta(t, 62500.0, now.ImpressionsNeeded, delta)
	assert.InDelta(t, 20000.0, now.Budget, delta)
	assert.InDelta(t, 20000.0/70, now.DailyBudget, delta)
	assert.InDelta(t, 250.0, now.AdOrders, delta)
	assert.InDelta(t, 250.0, now.OrganicOrders, delta)
	assert.InDelta(t, 500/0.15, now.CartsNeeded, 1e-6)
	assert.InDelta(t, 500/0.15*0.4, now.AdCarts, 1e-6)
	assert.InDelta(t, now.CartsNeeded-now.AdCarts, now.OrganicCarts, delta)
	assert.InDelta(t, 500.0/70, now.DailyOrders, delta)
	assert.InDelta(t, 250.0/70, now.DailyAdOrders, delta)
	assert.InDelta(t, 250.0/70, now.DailyOrganicOrders, delta)
	assert.InDelta(t, 62500.0/70, now.ImpressionsPerDay, delta)
	assert.InDelta(t, 6250.0, now.ImpressionsPerWeek, 1e-6)

	season := got.Season
	assert.InDelta(t, 50000.0, season.ImpressionsNeeded, delta)
	assert.InDelta(t, 16000.0, season.Budget, delta)
	assert.InDelta(t, 2000.0, season.CartsNeeded, 1e-6)
	assert.InDelta(t, 25000.0, season.ImpressionsPerWeek, 1e-6)
}

func TestPlan_Guards(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(in *domain.PlannerInputs)
		validate func(t *testing.T, got domain.SalesPlan)
	}{
		{
			name:   "Taxa de compra zero zera a meta de pedidos",
			mutate: func(in *domain.PlannerInputs) { in.PurchaseRate = 0 },
			validate: func(t *testing.T, got domain.SalesPlan) {
				assert.Zero(t, got.TargetOrders)
				assert.Zero(t, got.Now.ImpressionsNeeded)
				assert.Zero(t, got.Season.Budget)
			},
		},
		{
			name:   "Sem pedidos por mil impressões não há impressões nem orçamento",
			mutate: func(in *domain.PlannerInputs) { in.Now.TotalOrdersPer1000 = 0 },
			validate: func(t *testing.T, got domain.SalesPlan) {
				assert.Zero(t, got.Now.ImpressionsNeeded)
				assert.Zero(t, got.Now.Budget)
				assert.Zero(t, got.Now.ImpressionsPerWeek)
				assert.InDelta(t, 250.0, got.Now.AdOrders, delta)
			},
		},
		{
			name:   "Conversão carrinho-pedido zero zera carrinhos",
			mutate: func(in *domain.PlannerInputs) { in.Season.CartToOrder = 0 },
			validate: func(t *testing.T, got domain.SalesPlan) {
				assert.Zero(t, got.Season.CartsNeeded)
				assert.Zero(t, got.Season.DailyCarts)
				assert.Zero(t, got.Season.OrganicCarts)
			},
		},
		{
			name: "Duração menor que um dia é tratada como um dia",
			mutate: func(in *domain.PlannerInputs) {
				in.Now.Duration = 0
				in.Season.Duration = -3
			},
			validate: func(t *testing.T, got domain.SalesPlan) {
				assert.InDelta(t, got.Now.Budget, got.Now.DailyBudget, delta)
				assert.InDelta(t, got.TargetOrders, got.Now.DailyOrders, delta)
				assert.InDelta(t, got.Now.ImpressionsNeeded*7, got.Now.ImpressionsPerWeek, 1e-6)
				assert.InDelta(t, got.Season.ImpressionsNeeded, got.Season.ImpressionsPerDay, delta)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := plannerInputs()
			tt.mutate(&in)
			tt.validate(t, Plan(in))
		})
	}
}

func TestPlan_Idempotent(t *testing.T) {
	in := plannerInputs()
	assert.Equal(t, Plan(in), Plan(in))
}
