package domain

// ScenarioAssumptions são as premissas de funil de um cenário do planejador
type ScenarioAssumptions struct {
	CartToOrder        float64 `json:"cartToOrder"`
	TotalOrdersPer1000 float64 `json:"totalOrdersPer1000"`
	Duration           float64 `json:"duration"`
}

// PlannerInputs transforma uma meta de vendas em pedidos, impressões e orçamento
type PlannerInputs struct {
	TargetSales  float64             `json:"targetSales"`
	PurchaseRate float64             `json:"purchaseRate"`
	AdShare      float64             `json:"adShare"`
	AdCartsShare float64             `json:"adCartsShare"`
	CPM          float64             `json:"cpm"`
	Now          ScenarioAssumptions `json:"now"`
	Season       ScenarioAssumptions `json:"season"`
}

// ScenarioPlan é o plano de um cenário. Valores "Daily" já divididos pela duração.
type ScenarioPlan struct {
	ImpressionsNeeded  float64 `json:"impressionsNeeded"`
	Budget             float64 `json:"budget"`
	DailyBudget        float64 `json:"dailyBudget"`
	AdOrders           float64 `json:"adOrders"`
	OrganicOrders      float64 `json:"organicOrders"`
	CartsNeeded        float64 `json:"cartsNeeded"`
	AdCarts            float64 `json:"adCarts"`
	OrganicCarts       float64 `json:"organicCarts"`
	DailyOrders        float64 `json:"dailyOrders"`
	DailyAdOrders      float64 `json:"dailyAdOrders"`
	DailyOrganicOrders float64 `json:"dailyOrganicOrders"`
	DailyCarts         float64 `json:"dailyCarts"`
	DailyAdCarts       float64 `json:"dailyAdCarts"`
	DailyOrganicCarts  float64 `json:"dailyOrganicCarts"`
	ImpressionsPerDay  float64 `json:"impressionsPerDay"`
	ImpressionsPerWeek float64 `json:"impressionsPerWeek"`
}

// SalesPlan é o resultado do planejador para os dois cenários
type SalesPlan struct {
	TargetOrders float64      `json:"targetOrders"`
	Now          ScenarioPlan `json:"now"`
	Season       ScenarioPlan `json:"season"`
}
