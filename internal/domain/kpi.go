package domain

// KPISnapshot é o resumo financeiro derivado de um conjunto filtrado de
// fechamentos. Nunca é persistido; é recalculado a cada requisição.
type KPISnapshot struct {
	Revenue       float64 `json:"revenue"`
	Costs         float64 `json:"costs"`
	Profit        float64 `json:"profit"`
	Margin        float64 `json:"margin"`
	AverageTicket float64 `json:"average_ticket"`
	ProjectCount  int     `json:"project_count"`
}

// KPIDelta é a variação percentual direcional de um KPI entre o período atual
// e o período anterior comparável. Um delta nulo significa "nada a comparar".
// Infinite é um sentinela de exibição para quando o período anterior era zero;
// não é um valor numérico.
type KPIDelta struct {
	Percent  float64 `json:"percent"`
	Label    string  `json:"label"`
	Positive bool    `json:"positive"`
	Infinite bool    `json:"infinite"`
}
