package domain

// Rating é a classificação ordinal de um dia
type Rating string

const (
	RatingExcellent Rating = "Excellent"
	RatingGood      Rating = "Good"
	RatingAverage   Rating = "Average"
	RatingPoor      Rating = "Poor"
	RatingCritical  Rating = "Critical"
)

// Ordinal retorna a posição da classificação de 1 (Critical) a 5 (Excellent).
// Valores desconhecidos contam como 1.
func (r Rating) Ordinal() int {
	switch r {
	case RatingExcellent:
		return 5
	case RatingGood:
		return 4
	case RatingAverage:
		return 3
	case RatingPoor:
		return 2
	default:
		return 1
	}
}

// Funnel são as conversões de um grupo (pago, orgânico ou total), em %
type Funnel struct {
	CTR         float64 `json:"ctr"`
	ShowToCart  float64 `json:"showToCart"`
	ClickToCart float64 `json:"clickToCart"`
	CartToOrder float64 `json:"cartToOrder"`
}

// EvaluatedDay é um DailyRecord enriquecido com as métricas derivadas
type EvaluatedDay struct {
	DailyRecord

	CPLTotal   float64 `json:"cplTotal"`
	TargetCPL  float64 `json:"targetCpl"`
	Efficiency float64 `json:"efficiency"`
	Score      int     `json:"score"`
	Rating     Rating  `json:"rating"`

	Paid    Funnel `json:"paid"`
	Organic Funnel `json:"organic"`
	Total   Funnel `json:"total"`

	OrganicShows       float64 `json:"organicShows"`
	OrganicTransitions float64 `json:"organicTransitions"`
	OrganicCarts       float64 `json:"organicCarts"`
	OrganicOrders      float64 `json:"organicOrders"`
}

// AggregateKPI são somas e médias de uma lista de dias avaliados
type AggregateKPI struct {
	Days int `json:"days"`

	TotalCost float64 `json:"totalCost"`
	AvgCost   float64 `json:"avgCost"`

	TotalShows              float64 `json:"totalShows"`
	TotalShowsAll           float64 `json:"totalShowsAll"`
	TotalShowsOrganic       float64 `json:"totalShowsOrganic"`
	TotalTransitions        float64 `json:"totalTransitions"`
	TotalTransitionsAll     float64 `json:"totalTransitionsAll"`
	TotalTransitionsOrganic float64 `json:"totalTransitionsOrganic"`
	TotalCarts              float64 `json:"totalCarts"`
	TotalCartsRk            float64 `json:"totalCartsRk"`
	TotalCartsOrganic       float64 `json:"totalCartsOrganic"`
	TotalOrders             float64 `json:"totalOrders"`
	TotalOrdersRk           float64 `json:"totalOrdersRk"`
	TotalOrdersOrganic      float64 `json:"totalOrdersOrganic"`

	AvgCPM      float64 `json:"avgCpm"`
	AvgCPC      float64 `json:"avgCpc"`
	AvgCPLTotal float64 `json:"avgCplTotal"`
	AvgCPLRk    float64 `json:"avgCplRk"`

	ShowsRatio   float64 `json:"showsRatio"`
	OrganicRatio float64 `json:"organicRatio"`
	CartsRatio   float64 `json:"cartsRatio"`
	OrdersRatio  float64 `json:"ordersRatio"`

	AvgPaid    Funnel `json:"avgPaid"`
	AvgOrganic Funnel `json:"avgOrganic"`
	AvgTotal   Funnel `json:"avgTotal"`

	TotalConv       float64 `json:"totalConv"`
	TotalEfficiency float64 `json:"totalEfficiency"`
	AvgRating       float64 `json:"avgRating"`
	AvgRatingScore  float64 `json:"avgRatingScore"`
}

// RecommendationKind identifica a regra que gerou a recomendação
type RecommendationKind string

const (
	RecommendationPayback            RecommendationKind = "payback"
	RecommendationNoPayback          RecommendationKind = "no_payback"
	RecommendationTrendUp            RecommendationKind = "trend_up"
	RecommendationTrendDown          RecommendationKind = "trend_down"
	RecommendationCPLAboveTarget     RecommendationKind = "cpl_above_target"
	RecommendationBestDays           RecommendationKind = "best_days"
	RecommendationWorstDays          RecommendationKind = "worst_days"
	RecommendationNegativeEfficiency RecommendationKind = "negative_efficiency"
)

// Recommendation é uma sugestão textual sobre o período analisado
type Recommendation struct {
	Kind    RecommendationKind `json:"kind"`
	Message string             `json:"message"`
}

// RecommendationInputs são os parâmetros econômicos das recomendações
type RecommendationInputs struct {
	TargetCPL    float64 `json:"targetCpl"`
	Profit       float64 `json:"profit"`
	PurchaseRate float64 `json:"purchaseRate"`
}
