package domain

type InsightKind string

const (
	InsightKindSuccess InsightKind = "success"
	InsightKindWarning InsightKind = "warning"
	InsightKindInfo    InsightKind = "info"
	InsightKindDanger  InsightKind = "danger"
)

// ValidInsightKind informa se o tipo de insight é um dos quatro reconhecidos
func ValidInsightKind(kind InsightKind) bool {
	switch kind {
	case InsightKindSuccess, InsightKindWarning, InsightKindInfo, InsightKindDanger:
		return true
	}
	return false
}

// Insight é uma observação curta derivada de regras ou do serviço de
// inferência. A ordem da lista segue a ordem de avaliação das regras, não a
// severidade; consumidores dependem dessa ordem.
type Insight struct {
	ID          string      `json:"id"`
	Kind        InsightKind `json:"kind"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Action      string      `json:"action,omitempty"`
}
