package domain

// PeriodInputs são os parâmetros do calculador para um período. Percentuais em 0-100.
type PeriodInputs struct {
	CPM          float64 `json:"cpm"`
	Impressions  float64 `json:"impressions"`
	CTR          float64 `json:"ctr"`
	ClickToCart  float64 `json:"clickToCart"`
	CartToOrder  float64 `json:"cartToOrder"`
	Price        float64 `json:"price"`
	PurchaseRate float64 `json:"purchaseRate"`
	AdShare      float64 `json:"adShare"`
	AdCartsShare float64 `json:"adCartsShare"`
}

// PeriodMetrics são as métricas derivadas de um período
type PeriodMetrics struct {
	CPC                float64 `json:"cpc"`
	Clicks             float64 `json:"clicks"`
	Carts              float64 `json:"carts"`
	CPL                float64 `json:"cpl"`
	Orders             float64 `json:"orders"`
	CPO                float64 `json:"cpo"`
	Purchases          float64 `json:"purchases"`
	PurchaseCost       float64 `json:"purchaseCost"`
	DRROrder           float64 `json:"drrOrder"`
	DRRSale            float64 `json:"drrSale"`
	TotalOrdersPer1000 float64 `json:"totalOrdersPer1000"`
	CPLOrganic         float64 `json:"cplOrganic"`
}

// OrganicInputs são os parâmetros do cálculo com orgânico
type OrganicInputs struct {
	PeriodPurchases float64       `json:"periodPurchases"`
	Price           float64       `json:"price"`
	Profit          float64       `json:"profit"`
	AdShare         float64       `json:"adShare"`
	AdCost          float64       `json:"adCost"`
	Period          PeriodMetrics `json:"period"`
}

// OrganicMetrics estima o total de compras (pagas + orgânicas) e o retorno
type OrganicMetrics struct {
	TotalPurchases    float64 `json:"totalPurchases"`
	OrganicPurchases  float64 `json:"organicPurchases"`
	AdCost            float64 `json:"adCost"`
	Revenue           float64 `json:"revenue"`
	ROMI              float64 `json:"romi"`
	PurchaseTotalCost float64 `json:"purchaseTotalCost"`
	NetProfitPerUnit  float64 `json:"netProfitPerUnit"`
	DRRSaleOrganic    float64 `json:"drrSaleOrganic"`
	DRROrder          float64 `json:"drrOrder"`
	DRRSale           float64 `json:"drrSale"`
}

// ScenarioInputs descreve um cenário do calculador (período atual ou temporada)
type ScenarioInputs struct {
	Price       float64 `json:"price"`
	Duration    float64 `json:"duration"`
	CTR         float64 `json:"ctr"`
	ClickToCart float64 `json:"clickToCart"`
	CartToOrder float64 `json:"cartToOrder"`
	Profit      float64 `json:"profit"`
}

// CalculatorInputs reúne as configurações básicas e os dois cenários
type CalculatorInputs struct {
	CPM               float64        `json:"cpm"`
	PurchaseRate      float64        `json:"purchaseRate"`
	Impressions       float64        `json:"impressions"`
	OrganicShare      float64        `json:"organicShare"`
	OrganicCartsShare float64        `json:"organicCartsShare"`
	Now               ScenarioInputs `json:"now"`
	Season            ScenarioInputs `json:"season"`
}

// ApplyPrefill sobrescreve os campos com os valores não nulos do prefill. As
// participações são aplicadas sempre que o prefill foi calculado.
// As conversões do prefill valem apenas para o período atual.
func (in *CalculatorInputs) ApplyPrefill(p CalculatorPrefill) {
	if p.CPM > 0 {
		in.CPM = p.CPM
	}
	if p.CTR > 0 {
		in.Now.CTR = p.CTR
	}
	if p.ClickToCart > 0 {
		in.Now.ClickToCart = p.ClickToCart
	}
	if p.CartToOrder > 0 {
		in.Now.CartToOrder = p.CartToOrder
	}
	// participações calculadas vêm em pares que somam 100, mesmo quando o orgânico é 0
	if p.AdShare+p.OrganicShare > 0 {
		in.OrganicShare = p.OrganicShare
	}
	if p.AdCartsShare+p.OrganicCartsShare > 0 {
		in.OrganicCartsShare = p.OrganicCartsShare
	}
}

// ScenarioReport é o resultado completo de um cenário do calculador
type ScenarioReport struct {
	Period       PeriodMetrics  `json:"period"`
	Organic      OrganicMetrics `json:"organic"`
	BreakevenCPL float64        `json:"breakevenCpl"`
	// Profitable indica CPL com orgânico abaixo do CPL de equilíbrio
	Profitable bool `json:"profitable"`
}

// CalculatorReport é a saída da página do calculador
type CalculatorReport struct {
	Inputs       CalculatorInputs `json:"inputs"`
	AdShare      float64          `json:"adShare"`
	AdCartsShare float64          `json:"adCartsShare"`
	AdCost       float64          `json:"adCost"`
	Now          ScenarioReport   `json:"now"`
	Season       ScenarioReport   `json:"season"`
}

// CalculatorPrefill são as médias de um ou mais dias usadas para preencher o calculador
type CalculatorPrefill struct {
	CPM               float64 `json:"cpm"`
	CTR               float64 `json:"ctr"`
	ClickToCart       float64 `json:"clickToCart"`
	CartToOrder       float64 `json:"cartToOrder"`
	AdShare           float64 `json:"adShare"`
	AdCartsShare      float64 `json:"adCartsShare"`
	OrganicShare      float64 `json:"organicShare"`
	OrganicCartsShare float64 `json:"organicCartsShare"`
}
