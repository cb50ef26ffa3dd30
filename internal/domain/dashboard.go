package domain

// ClientRevenue é uma entrada do ranking de clientes por receita no período
type ClientRevenue struct {
	ClientName   string  `json:"client_name"`
	Revenue      float64 `json:"revenue"`
	ProjectCount int     `json:"project_count"`
}

// ServiceRevenue é uma entrada do ranking de receita por tipo de serviço
type ServiceRevenue struct {
	ServiceType  string  `json:"service_type"`
	Revenue      float64 `json:"revenue"`
	Profit       float64 `json:"profit"`
	ProjectCount int     `json:"project_count"`
}

// DashboardResponse é a resposta completa do painel analítico.
// InvalidRange sinaliza um intervalo customizado com início após o fim; nesse
// caso os agregados do período são calculados sobre o conjunto vazio.
// DataUnavailable sinaliza falha de leitura no armazenamento; o painel segue
// com as coleções que conseguiu ler, possivelmente vazias.
type DashboardResponse struct {
	Filters          *DashboardFilters    `json:"filters"`
	CurrentRange     *DateRange           `json:"current_range,omitempty"`
	PreviousRange    *DateRange           `json:"previous_range,omitempty"`
	Current          *KPISnapshot         `json:"current"`
	Previous         *KPISnapshot         `json:"previous"`
	Deltas           map[string]*KPIDelta `json:"deltas"`
	Trend            []*TrendMonth        `json:"trend"`
	Insights         []*Insight           `json:"insights"`
	TopClients       []*ClientRevenue     `json:"top_clients"`
	RevenueByService []*ServiceRevenue    `json:"revenue_by_service"`
	InvalidRange     bool                 `json:"invalid_range"`
	DataUnavailable  bool                 `json:"data_unavailable"`
}

// Chaves do mapa de deltas do painel
const (
	DeltaRevenue       = "revenue"
	DeltaCosts         = "costs"
	DeltaProfit        = "profit"
	DeltaMargin        = "margin"
	DeltaAverageTicket = "average_ticket"
	DeltaProjectCount  = "project_count"
)
