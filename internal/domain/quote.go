package domain

import "time"

type QuoteStatus string

const (
	QuoteStatusDraft    QuoteStatus = "draft"
	QuoteStatusSent     QuoteStatus = "sent"
	QuoteStatusApproved QuoteStatus = "approved"
	QuoteStatusRejected QuoteStatus = "rejected"
)

type PaymentMethod string

const (
	PaymentMethodCash        PaymentMethod = "cash"
	PaymentMethodInstallment PaymentMethod = "installment"
)

// Quote representa um orçamento vinculado a uma ordem de serviço.
// Orçamentos em rascunho não participam de nenhuma estatística de conversão.
type Quote struct {
	ID             string        `json:"id"`
	ServiceOrderID string        `json:"service_order_id"`
	Status         QuoteStatus   `json:"status"`
	TotalValue     float64       `json:"total_value"`
	PaymentMethod  PaymentMethod `json:"payment_method"`
	CreatedAt      time.Time     `json:"created_at"`
}

// Relevant indica se o orçamento participa das estatísticas do funil
func (q *Quote) Relevant() bool {
	switch q.Status {
	case QuoteStatusSent, QuoteStatusApproved, QuoteStatusRejected:
		return true
	}
	return false
}
