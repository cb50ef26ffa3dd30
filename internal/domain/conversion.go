package domain

// ServiceTypeUnknown é o rótulo usado quando a ordem dona do orçamento não é
// encontrada na coleção lida
const ServiceTypeUnknown = "Outros"

// ConversionCount é a contagem total/aprovados de uma partição do funil
type ConversionCount struct {
	Total    int `json:"total"`
	Approved int `json:"approved"`
}

type ServiceTypeConversion struct {
	ServiceType    string  `json:"service_type"`
	Total          int     `json:"total"`
	Approved       int     `json:"approved"`
	Rejected       int     `json:"rejected"`
	ConversionRate float64 `json:"conversion_rate"`
	AverageValue   float64 `json:"average_value"`
}

type PriceRangeConversion struct {
	Range          string  `json:"range"`
	Total          int     `json:"total"`
	Approved       int     `json:"approved"`
	ConversionRate float64 `json:"conversion_rate"`
}

type LocationConversion struct {
	Location       string  `json:"location"`
	Total          int     `json:"total"`
	Approved       int     `json:"approved"`
	ConversionRate float64 `json:"conversion_rate"`
}

type FollowUpConversion struct {
	WithFollowUp    ConversionCount `json:"with_follow_up"`
	WithoutFollowUp ConversionCount `json:"without_follow_up"`
}

type PaymentMethodConversion struct {
	Installment ConversionCount `json:"installment"`
	Cash        ConversionCount `json:"cash"`
}

// ConversionData agrega os resultados dos orçamentos em cinco dimensões
// independentes, mais a estatística de tempo até aprovação e o resumo geral.
// Rascunhos ficam fora de todas as estatísticas.
type ConversionData struct {
	ByServiceType         []*ServiceTypeConversion `json:"by_service_type"`
	ByPriceRange          []*PriceRangeConversion  `json:"by_price_range"`
	ByLocation            []*LocationConversion    `json:"by_location"`
	ByFollowUp            *FollowUpConversion      `json:"by_follow_up"`
	ByPaymentMethod       *PaymentMethodConversion `json:"by_payment_method"`
	AverageDaysToApproval float64                  `json:"average_days_to_approval"`
	TotalQuotes           int                      `json:"total_quotes"`
	OverallConversionRate float64                  `json:"overall_conversion_rate"`
}
