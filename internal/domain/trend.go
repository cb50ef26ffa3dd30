package domain

// TrendMonth é uma entrada da série de tendência mensal. A série tem sempre
// exatamente 12 meses consecutivos, do mais antigo para o mais recente; meses
// sem fechamentos aparecem zerados, nunca são omitidos.
type TrendMonth struct {
	Label    string  `json:"label"`     // ex.: "Jan/24"
	MonthKey string  `json:"month_key"` // formato yyyy-mm
	Revenue  float64 `json:"revenue"`
	Costs    float64 `json:"costs"`
	Profit   float64 `json:"profit"`
	Margin   float64 `json:"margin"`
}
