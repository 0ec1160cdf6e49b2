package domain

// DateLayout é o formato das datas do relatório "По дням" (dd.mm.yyyy)
const DateLayout = "02.01.2006"

// DailyRecord representa um dia do relatório de publicidade já convertido pelo parser
type DailyRecord struct {
	Date             string  `json:"date"`
	Shows            float64 `json:"shows"`
	TotalShows       float64 `json:"totalShows"`
	Transitions      float64 `json:"transitions"`
	TotalTransitions float64 `json:"totalTransitions"`
	Cost             float64 `json:"cost"`
	CartsRk          float64 `json:"cartsRk"`
	CartsTotal       float64 `json:"cartsTotal"`
	OrdersRk         float64 `json:"ordersRk"`
	Orders           float64 `json:"orders"`
	CPLRk            float64 `json:"cplRk"`

	// Colunas repassadas do export, não usadas nos cálculos
	CPM   float64 `json:"cpm,omitempty"`
	CPC   float64 `json:"cpc,omitempty"`
	DRRRk float64 `json:"drrRk,omitempty"`
}

// DayDate retorna a data do dia no formato dd.mm.yyyy
func (d DailyRecord) DayDate() string {
	return d.Date
}

// DailyDetail é a quebra de um dia por tipo de posicionamento do anúncio
type DailyDetail struct {
	Type        string  `json:"type"`
	Share       int     `json:"share"`
	Shows       float64 `json:"shows"`
	CPM         float64 `json:"cpm"`
	Transitions float64 `json:"transitions"`
	CTR         float64 `json:"ctr"`
	CPC         float64 `json:"cpc"`
	Cost        float64 `json:"cost"`
	Carts       float64 `json:"carts"`
	CPL         float64 `json:"cpl"`
	Orders      float64 `json:"orders"`
	CPO         float64 `json:"cpo"`
}

// DetailsByDate agrupa os detalhes por data (dd.mm.yyyy)
type DetailsByDate map[string][]DailyDetail

// DaySet é o conjunto entregue pelo parser externo: dias e suas quebras por tipo
type DaySet struct {
	Days    []DailyRecord `json:"days"`
	Details DetailsByDate `json:"details"`
}

// PlacementType é a chave normalizada do tipo de posicionamento
type PlacementType string

const (
	PlacementSearch  PlacementType = "search"
	PlacementShelf   PlacementType = "shelf"
	PlacementCatalog PlacementType = "catalog"
	PlacementOther   PlacementType = "other"
)

// TypeAggregate soma as métricas de um tipo de posicionamento no período
type TypeAggregate struct {
	Shows       float64 `json:"shows"`
	Cost        float64 `json:"cost"`
	Carts       float64 `json:"carts"`
	Transitions float64 `json:"transitions"`
	Count       int     `json:"count"`
	CPM         float64 `json:"cpm"`
	CPC         float64 `json:"cpc"`
	CTR         float64 `json:"ctr"`
	CPL         float64 `json:"cpl"`
}
