package analytics

import (
	"sort"

	"github.com/vlima/reforma-manager-api/internal/domain"
	"github.com/vlima/reforma-manager-api/pkg/utils"
)

// Acumulador por chave de agrupamento do ranking
type rankingAccumulator struct {
	revenue float64
	profit  float64
	count   int
}

// TopClientsByRevenue ranqueia clientes por receita sobre o conjunto de
// fechamentos informado, associando cada fechamento à sua ordem de serviço.
// Fechamentos cuja ordem não é encontrada entram sob o rótulo de fallback.
func TopClientsByRevenue(
	closures []*domain.FinancialClosure,
	orders []*domain.ServiceOrder,
) []*domain.ClientRevenue {
	orderIndex := indexOrders(orders)

	byClient := make(map[string]*rankingAccumulator)
	for _, closure := range closures {
		client := domain.ServiceTypeUnknown
		if order, ok := orderIndex[closure.ServiceOrderID]; ok && order.ClientName != "" {
			client = order.ClientName
		}

		acc, ok := byClient[client]
		if !ok {
			acc = &rankingAccumulator{}
			byClient[client] = acc
		}
		acc.revenue += closure.AmountReceived
		acc.count++
	}

	ranking := make([]*domain.ClientRevenue, 0, len(byClient))
	for client, acc := range byClient {
		ranking = append(ranking, &domain.ClientRevenue{
			ClientName:   client,
			Revenue:      utils.RoundWithTwoDecimalPlace(acc.revenue),
			ProjectCount: acc.count,
		})
	}

	sort.Slice(ranking, func(i, j int) bool {
		if ranking[i].Revenue != ranking[j].Revenue {
			return ranking[i].Revenue > ranking[j].Revenue
		}
		return ranking[i].ClientName < ranking[j].ClientName
	})

	return ranking
}

// RevenueByServiceType ranqueia receita e lucro por tipo de serviço sobre o
// conjunto de fechamentos informado
func RevenueByServiceType(
	closures []*domain.FinancialClosure,
	orders []*domain.ServiceOrder,
) []*domain.ServiceRevenue {
	orderIndex := indexOrders(orders)

	byService := make(map[string]*rankingAccumulator)
	for _, closure := range closures {
		serviceType := domain.ServiceTypeUnknown
		if order, ok := orderIndex[closure.ServiceOrderID]; ok && order.ServiceType != "" {
			serviceType = order.ServiceType
		}

		acc, ok := byService[serviceType]
		if !ok {
			acc = &rankingAccumulator{}
			byService[serviceType] = acc
		}
		acc.revenue += closure.AmountReceived
		acc.profit += closure.FinalProfit
		acc.count++
	}

	ranking := make([]*domain.ServiceRevenue, 0, len(byService))
	for serviceType, acc := range byService {
		ranking = append(ranking, &domain.ServiceRevenue{
			ServiceType:  serviceType,
			Revenue:      utils.RoundWithTwoDecimalPlace(acc.revenue),
			Profit:       utils.RoundWithTwoDecimalPlace(acc.profit),
			ProjectCount: acc.count,
		})
	}

	sort.Slice(ranking, func(i, j int) bool {
		if ranking[i].Revenue != ranking[j].Revenue {
			return ranking[i].Revenue > ranking[j].Revenue
		}
		return ranking[i].ServiceType < ranking[j].ServiceType
	})

	return ranking
}

func indexOrders(orders []*domain.ServiceOrder) map[string]*domain.ServiceOrder {
	index := make(map[string]*domain.ServiceOrder, len(orders))
	for _, order := range orders {
		index[order.ID] = order
	}
	return index
}
