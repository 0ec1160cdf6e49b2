package domain

import "time"

// Period é o recorte de datas aplicado aos dias
type Period string

const (
	PeriodAll    Period = "all"
	PeriodLast7  Period = "last7"
	PeriodLast14 Period = "last14"
	PeriodLast30 Period = "last30"
	PeriodCustom Period = "custom"
)

// IsValid indica se o período é um dos valores conhecidos
func (p Period) IsValid() bool {
	switch p {
	case PeriodAll, PeriodLast7, PeriodLast14, PeriodLast30, PeriodCustom:
		return true
	}
	return false
}

// PeriodFilter define o recorte. StartDate e EndDate no formato YYYY-MM-DD, só para custom.
type PeriodFilter struct {
	Period    Period `json:"period"`
	StartDate string `json:"startDate,omitempty"`
	EndDate   string `json:"endDate,omitempty"`
}

// ConversionAssumptions são as conversões do calculador usadas no lugar das do dia
type ConversionAssumptions struct {
	CartToOrder  float64 `json:"cartToOrder"`
	AdShare      float64 `json:"adShare"`
	AdCartsShare float64 `json:"adCartsShare"`
}

// ReportRequest são os parâmetros de um relatório diário. Com PerDayTarget o CPL alvo
// de cada dia é o CPL de equilíbrio calculado com as conversões do próprio dia, e
// TargetCPL vale só para os dias sem carrinhos ou pedidos.
//
// Os pedidos dos últimos dias chegam atrasados. Sem UseRecentConversions, os dias
// recentes usam RecentAssumptions no cálculo do alvo.
type ReportRequest struct {
	Filter               PeriodFilter          `json:"filter"`
	TargetCPL            float64               `json:"targetCpl"`
	Profit               float64               `json:"profit"`
	PurchaseRate         float64               `json:"purchaseRate"`
	PerDayTarget         bool                  `json:"perDayTarget"`
	ExcludeLastDay       bool                  `json:"excludeLastDay"`
	ExcludeNoAdDays      bool                  `json:"excludeNoAdDays"`
	UseRecentConversions bool                  `json:"useRecentConversions"`
	RecentAssumptions    ConversionAssumptions `json:"recentAssumptions"`
}

// DailyReport é o relatório de um período montado a partir de uma fonte de dias
type DailyReport struct {
	ID              string                          `json:"id"`
	Source          string                          `json:"source"`
	GeneratedAt     time.Time                       `json:"generatedAt"`
	Request         ReportRequest                   `json:"request"`
	AvgTargetCPL    float64                         `json:"avgTargetCpl"`
	Days            []EvaluatedDay                  `json:"days"`
	KPI             AggregateKPI                    `json:"kpi"`
	ByType          map[PlacementType]TypeAggregate `json:"byType"`
	Recommendations []Recommendation                `json:"recommendations"`
	Prefill         CalculatorPrefill               `json:"prefill"`
}
