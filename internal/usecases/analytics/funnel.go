package analytics

import (
	"sort"

	"github.com/vlima/reforma-manager-api/internal/domain"
	"github.com/vlima/reforma-manager-api/pkg/utils"
)

const (
	minQuotesPerLocation = 2
	maxLocations         = 10
)

// Faixas fixas de preço do funil. Faixas sem orçamentos são omitidas da saída.
var priceBands = []struct {
	label string
	min   float64
	max   float64 // exclusivo; <0 significa sem teto
}{
	{"Até R$ 2.000", 0, 2000},
	{"R$ 2.000 - 5.000", 2000, 5000},
	{"R$ 5.000 - 10.000", 5000, 10000},
	{"Acima de R$ 10.000", 10000, -1},
}

type funnelAccumulator struct {
	total      int
	approved   int
	rejected   int
	totalValue float64
}

// AnalyzeConversion agrega os resultados dos orçamentos em cinco dimensões
// independentes sobre o conjunto relevante (status enviado, aprovado ou
// rejeitado; rascunhos ficam fora de tudo). Orçamentos cuja ordem de serviço
// não é encontrada entram nos totais com os rótulos de fallback, nunca são
// descartados.
func AnalyzeConversion(
	quotes []*domain.Quote,
	orders []*domain.ServiceOrder,
) *domain.ConversionData {
	orderIndex := indexOrders(orders)

	byServiceType := make(map[string]*funnelAccumulator)
	byBand := make([]*funnelAccumulator, len(priceBands))
	for i := range byBand {
		byBand[i] = &funnelAccumulator{}
	}
	byLocation := make(map[string]*funnelAccumulator)

	data := &domain.ConversionData{
		ByFollowUp:      &domain.FollowUpConversion{},
		ByPaymentMethod: &domain.PaymentMethodConversion{},
	}

	approvedDaysSum := 0.0
	approvedDaysCount := 0

	for _, quote := range quotes {
		if !quote.Relevant() {
			continue
		}

		approved := quote.Status == domain.QuoteStatusApproved
		rejected := quote.Status == domain.QuoteStatusRejected

		order, hasOrder := orderIndex[quote.ServiceOrderID]

		data.TotalQuotes++
		if approved {
			data.OverallConversionRate++ // contagem; vira taxa no final
		}

		// Dimensão 1: tipo de serviço
		serviceType := domain.ServiceTypeUnknown
		if hasOrder && order.ServiceType != "" {
			serviceType = order.ServiceType
		}
		acc := accumulatorFor(byServiceType, serviceType)
		acc.total++
		acc.totalValue += quote.TotalValue
		if approved {
			acc.approved++
		}
		if rejected {
			acc.rejected++
		}

		// Dimensão 2: faixa de preço
		for i, band := range priceBands {
			if quote.TotalValue >= band.min && (band.max < 0 || quote.TotalValue < band.max) {
				byBand[i].total++
				if approved {
					byBand[i].approved++
				}
				break
			}
		}

		// Dimensão 3: localidade (bairro, com fallback para cidade)
		location := domain.LocationUnknown
		if hasOrder {
			location = order.Location()
		}
		locAcc := accumulatorFor(byLocation, location)
		locAcc.total++
		if approved {
			locAcc.approved++
		}

		// Dimensão 4: presença de follow-up
		if hasOrder && order.FollowUpCount > 0 {
			count(&data.ByFollowUp.WithFollowUp, approved)
		} else {
			count(&data.ByFollowUp.WithoutFollowUp, approved)
		}

		// Dimensão 5: forma de pagamento (à vista é o padrão quando ausente)
		if quote.PaymentMethod == domain.PaymentMethodInstallment {
			count(&data.ByPaymentMethod.Installment, approved)
		} else {
			count(&data.ByPaymentMethod.Cash, approved)
		}

		// Tempo até aprovação: só orçamentos aprovados com ordem presente;
		// diferenças negativas são descartadas da estatística, não são erro
		if approved && hasOrder {
			days := quote.CreatedAt.Sub(order.CreatedAt).Hours() / 24
			if days >= 0 {
				approvedDaysSum += days
				approvedDaysCount++
			}
		}
	}

	data.ByServiceType = buildServiceTypeConversions(byServiceType)
	data.ByPriceRange = buildPriceRangeConversions(byBand)
	data.ByLocation = buildLocationConversions(byLocation)

	if approvedDaysCount > 0 {
		data.AverageDaysToApproval = utils.RoundWithTwoDecimalPlace(approvedDaysSum / float64(approvedDaysCount))
	}

	if data.TotalQuotes > 0 {
		data.OverallConversionRate = utils.RoundWithTwoDecimalPlace(data.OverallConversionRate / float64(data.TotalQuotes) * 100)
	}

	return data
}

func accumulatorFor(m map[string]*funnelAccumulator, key string) *funnelAccumulator {
	acc, ok := m[key]
	if !ok {
		acc = &funnelAccumulator{}
		m[key] = acc
	}
	return acc
}

func count(c *domain.ConversionCount, approved bool) {
	c.Total++
	if approved {
		c.Approved++
	}
}

func conversionRate(approved, total int) float64 {
	if total == 0 {
		return 0
	}
	return utils.RoundWithTwoDecimalPlace(float64(approved) / float64(total) * 100)
}

func buildServiceTypeConversions(byServiceType map[string]*funnelAccumulator) []*domain.ServiceTypeConversion {
	conversions := make([]*domain.ServiceTypeConversion, 0, len(byServiceType))
	for serviceType, acc := range byServiceType {
		averageValue := 0.0
		if acc.total > 0 {
			averageValue = utils.RoundWithTwoDecimalPlace(acc.totalValue / float64(acc.total))
		}
		conversions = append(conversions, &domain.ServiceTypeConversion{
			ServiceType:    serviceType,
			Total:          acc.total,
			Approved:       acc.approved,
			Rejected:       acc.rejected,
			ConversionRate: conversionRate(acc.approved, acc.total),
			AverageValue:   averageValue,
		})
	}

	sort.Slice(conversions, func(i, j int) bool {
		if conversions[i].Total != conversions[j].Total {
			return conversions[i].Total > conversions[j].Total
		}
		return conversions[i].ServiceType < conversions[j].ServiceType
	})

	return conversions
}

func buildPriceRangeConversions(byBand []*funnelAccumulator) []*domain.PriceRangeConversion {
	conversions := make([]*domain.PriceRangeConversion, 0, len(byBand))
	for i, acc := range byBand {
		if acc.total == 0 {
			continue
		}
		conversions = append(conversions, &domain.PriceRangeConversion{
			Range:          priceBands[i].label,
			Total:          acc.total,
			Approved:       acc.approved,
			ConversionRate: conversionRate(acc.approved, acc.total),
		})
	}
	return conversions
}

func buildLocationConversions(byLocation map[string]*funnelAccumulator) []*domain.LocationConversion {
	conversions := make([]*domain.LocationConversion, 0, len(byLocation))
	for location, acc := range byLocation {
		// Localidades com menos de 2 orçamentos não são representativas
		if acc.total < minQuotesPerLocation {
			continue
		}
		conversions = append(conversions, &domain.LocationConversion{
			Location:       location,
			Total:          acc.total,
			Approved:       acc.approved,
			ConversionRate: conversionRate(acc.approved, acc.total),
		})
	}

	sort.Slice(conversions, func(i, j int) bool {
		if conversions[i].Total != conversions[j].Total {
			return conversions[i].Total > conversions[j].Total
		}
		return conversions[i].Location < conversions[j].Location
	})

	if len(conversions) > maxLocations {
		conversions = conversions[:maxLocations]
	}

	return conversions
}
