package domain

import "time"

type ServiceOrderStatus string

const (
	ServiceOrderStatusOpen       ServiceOrderStatus = "open"
	ServiceOrderStatusInProgress ServiceOrderStatus = "in_progress"
	ServiceOrderStatusDone       ServiceOrderStatus = "done"
	ServiceOrderStatusCancelled  ServiceOrderStatus = "cancelled"
)

// ServiceOrder representa um atendimento a cliente, da visita ao encerramento.
// Este motor só lê ordens de serviço; o ciclo de vida é gerenciado pelas telas
// de CRUD fora do escopo do motor de análise.
type ServiceOrder struct {
	ID            string             `json:"id"`
	ClientName    string             `json:"client_name"`
	ServiceType   string             `json:"service_type"`
	Neighborhood  string             `json:"neighborhood"`
	City          string             `json:"city"`
	CreatedAt     time.Time          `json:"created_at"`
	FollowUpCount int                `json:"follow_up_count"`
	Status        ServiceOrderStatus `json:"status"`
}

// Location resolve a localidade da ordem: bairro, com fallback para cidade
func (o *ServiceOrder) Location() string {
	if o.Neighborhood != "" {
		return o.Neighborhood
	}
	if o.City != "" {
		return o.City
	}
	return LocationUnknown
}

// LocationUnknown é o rótulo usado quando a ordem não informa bairro nem cidade
const LocationUnknown = "Não informado"
