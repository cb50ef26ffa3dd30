package domain

import "time"

// FinancialClosure representa o fechamento financeiro de um negócio concluído.
// Os valores monetários são não-negativos, com exceção do lucro final, que
// pode ser negativo. O lucro é gravado no momento do fechamento e nunca é
// recalculado a partir dos componentes de custo por este motor.
type FinancialClosure struct {
	ID              string    `json:"id"`
	ServiceOrderID  string    `json:"service_order_id"`
	CreatedAt       time.Time `json:"created_at"`
	AmountReceived  float64   `json:"amount_received"`
	DistributorCost float64   `json:"distributor_cost"`
	InstallerCost   float64   `json:"installer_cost"`
	ExtraCosts      float64   `json:"extra_costs"`
	Notes           *string   `json:"notes,omitempty"`
	FinalProfit     float64   `json:"final_profit"`
}

// TotalCosts soma os três componentes de custo do fechamento
func (c *FinancialClosure) TotalCosts() float64 {
	return c.DistributorCost + c.InstallerCost + c.ExtraCosts
}
