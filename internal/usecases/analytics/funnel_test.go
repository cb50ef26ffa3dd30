package analytics

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vlima/reforma-manager-api/internal/domain"
)

func funnelOrders() []*domain.ServiceOrder {
	return []*domain.ServiceOrder{
		{
			ID:            "o1",
			ClientName:    "Maria Souza",
			ServiceType:   "Pintura",
			Neighborhood:  "Centro",
			CreatedAt:     time.Date(2025, time.January, 1, 9, 0, 0, 0, testLoc),
			FollowUpCount: 1,
		},
		{
			ID:           "o2",
			ClientName:   "João Lima",
			ServiceType:  "Pintura",
			Neighborhood: "Centro",
			CreatedAt:    time.Date(2025, time.January, 2, 9, 0, 0, 0, testLoc),
		},
		{
			ID:            "o3",
			ClientName:    "Ana Castro",
			ServiceType:   "Elétrica",
			City:          "Palhoça",
			CreatedAt:     time.Date(2025, time.January, 3, 9, 0, 0, 0, testLoc),
			FollowUpCount: 2,
		},
	}
}

func funnelQuotes() []*domain.Quote {
	return []*domain.Quote{
		{
			// Rascunho fica fora de tudo
			ID:             "q0",
			ServiceOrderID: "o1",
			Status:         domain.QuoteStatusDraft,
			TotalValue:     700,
		},
		{
			ID:             "q1",
			ServiceOrderID: "o1",
			Status:         domain.QuoteStatusApproved,
			TotalValue:     1500,
			PaymentMethod:  domain.PaymentMethodCash,
			CreatedAt:      time.Date(2025, time.January, 4, 9, 0, 0, 0, testLoc),
		},
		{
			ID:             "q2",
			ServiceOrderID: "o2",
			Status:         domain.QuoteStatusRejected,
			TotalValue:     2500,
			PaymentMethod:  domain.PaymentMethodInstallment,
			CreatedAt:      time.Date(2025, time.January, 5, 9, 0, 0, 0, testLoc),
		},
		{
			ID:             "q3",
			ServiceOrderID: "o3",
			Status:         domain.QuoteStatusApproved,
			TotalValue:     12000,
			PaymentMethod:  domain.PaymentMethodInstallment,
			CreatedAt:      time.Date(2025, time.January, 6, 9, 0, 0, 0, testLoc),
		},
		{
			// Ordem inexistente: entra nos totais com os rótulos de fallback
			ID:             "q4",
			ServiceOrderID: "zzz",
			Status:         domain.QuoteStatusSent,
			TotalValue:     800,
			CreatedAt:      time.Date(2025, time.January, 7, 9, 0, 0, 0, testLoc),
		},
	}
}

func TestAnalyzeConversion(t *testing.T) {
	data := AnalyzeConversion(funnelQuotes(), funnelOrders())

	// 4 relevantes (o rascunho fica fora), 2 aprovados
	assert.Equal(t, 4, data.TotalQuotes)
	assert.Equal(t, 50.0, data.OverallConversionRate)

	// Tipos ordenados por total, empate por nome
	require.Len(t, data.ByServiceType, 3)
	assert.Equal(t, "Pintura", data.ByServiceType[0].ServiceType)
	assert.Equal(t, 2, data.ByServiceType[0].Total)
	assert.Equal(t, 1, data.ByServiceType[0].Approved)
	assert.Equal(t, 1, data.ByServiceType[0].Rejected)
	assert.Equal(t, 50.0, data.ByServiceType[0].ConversionRate)
	assert.Equal(t, 2000.0, data.ByServiceType[0].AverageValue)

	assert.Equal(t, "Elétrica", data.ByServiceType[1].ServiceType)
	assert.Equal(t, 100.0, data.ByServiceType[1].ConversionRate)

	assert.Equal(t, domain.ServiceTypeUnknown, data.ByServiceType[2].ServiceType)
	assert.Equal(t, 0.0, data.ByServiceType[2].ConversionRate)

	// Faixas sem orçamentos são omitidas, a ordem das faixas é preservada
	require.Len(t, data.ByPriceRange, 3)
	assert.Equal(t, "Até R$ 2.000", data.ByPriceRange[0].Range)
	assert.Equal(t, 2, data.ByPriceRange[0].Total)
	assert.Equal(t, 50.0, data.ByPriceRange[0].ConversionRate)
	assert.Equal(t, "R$ 2.000 - 5.000", data.ByPriceRange[1].Range)
	assert.Equal(t, "Acima de R$ 10.000", data.ByPriceRange[2].Range)

	// Localidades com menos de 2 orçamentos são descartadas
	require.Len(t, data.ByLocation, 1)
	assert.Equal(t, "Centro", data.ByLocation[0].Location)
	assert.Equal(t, 2, data.ByLocation[0].Total)
	assert.Equal(t, 50.0, data.ByLocation[0].ConversionRate)

	// Follow-up: ordem ausente conta como sem follow-up
	assert.Equal(t, 2, data.ByFollowUp.WithFollowUp.Total)
	assert.Equal(t, 2, data.ByFollowUp.WithFollowUp.Approved)
	assert.Equal(t, 2, data.ByFollowUp.WithoutFollowUp.Total)
	assert.Equal(t, 0, data.ByFollowUp.WithoutFollowUp.Approved)

	// Forma de pagamento ausente cai no padrão à vista
	assert.Equal(t, 2, data.ByPaymentMethod.Installment.Total)
	assert.Equal(t, 1, data.ByPaymentMethod.Installment.Approved)
	assert.Equal(t, 2, data.ByPaymentMethod.Cash.Total)
	assert.Equal(t, 1, data.ByPaymentMethod.Cash.Approved)

	// q1 aprovado 3 dias após a ordem, q3 também: média 3
	assert.Equal(t, 3.0, data.AverageDaysToApproval)
}

func TestAnalyzeConversion_Empty(t *testing.T) {
	data := AnalyzeConversion(nil, nil)

	assert.Equal(t, 0, data.TotalQuotes)
	assert.Equal(t, 0.0, data.OverallConversionRate)
	assert.Empty(t, data.ByServiceType)
	assert.Empty(t, data.ByPriceRange)
	assert.Empty(t, data.ByLocation)
	assert.Equal(t, 0.0, data.AverageDaysToApproval)
}

func TestAnalyzeConversion_NegativeDaysDiscarded(t *testing.T) {
	orders := []*domain.ServiceOrder{
		{
			ID:          "o1",
			ServiceType: "Pintura",
			CreatedAt:   time.Date(2025, time.January, 10, 9, 0, 0, 0, testLoc),
		},
	}
	quotes := []*domain.Quote{
		{
			// Orçamento registrado antes da ordem: a diferença negativa sai da
			// estatística de tempo, não do funil
			ID:             "q1",
			ServiceOrderID: "o1",
			Status:         domain.QuoteStatusApproved,
			TotalValue:     1000,
			CreatedAt:      time.Date(2025, time.January, 8, 9, 0, 0, 0, testLoc),
		},
	}

	data := AnalyzeConversion(quotes, orders)

	assert.Equal(t, 1, data.TotalQuotes)
	assert.Equal(t, 100.0, data.OverallConversionRate)
	assert.Equal(t, 0.0, data.AverageDaysToApproval)
}

func TestAnalyzeConversion_LocationCap(t *testing.T) {
	orders := make([]*domain.ServiceOrder, 0)
	quotes := make([]*domain.Quote, 0)

	// 12 bairros com 2 orçamentos cada: só os 10 maiores ficam
	for i := 0; i < 12; i++ {
		orderID := fmt.Sprintf("o%02d", i)
		orders = append(orders, &domain.ServiceOrder{
			ID:           orderID,
			ServiceType:  "Pintura",
			Neighborhood: fmt.Sprintf("Bairro %02d", i),
			CreatedAt:    time.Date(2025, time.January, 1, 9, 0, 0, 0, testLoc),
		})
		for j := 0; j < 2; j++ {
			quotes = append(quotes, &domain.Quote{
				ID:             fmt.Sprintf("q%02d-%d", i, j),
				ServiceOrderID: orderID,
				Status:         domain.QuoteStatusSent,
				TotalValue:     1000,
				CreatedAt:      time.Date(2025, time.January, 2, 9, 0, 0, 0, testLoc),
			})
		}
	}

	data := AnalyzeConversion(quotes, orders)

	assert.Len(t, data.ByLocation, maxLocations)
}
