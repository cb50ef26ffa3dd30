package analytics

import (
	"time"

	"github.com/vlima/reforma-manager-api/internal/domain"
	"github.com/vlima/reforma-manager-api/pkg/utils"
)

const monthKeyFormat = "2006-01"

// AggregateKPIs reduz os fechamentos incluídos na janela a um snapshot de
// KPIs. Janela nula significa "sem filtro". monthKey, quando não vazio
// (formato yyyy-mm), é um filtro adicional em AND por mês-calendário exato no
// fuso informado, usado no drill-down da tendência. Entrada vazia produz um
// snapshot todo zerado.
func AggregateKPIs(
	closures []*domain.FinancialClosure,
	window *domain.DateRange,
	monthKey string,
	loc *time.Location,
) *domain.KPISnapshot {
	snapshot := &domain.KPISnapshot{}

	for _, closure := range closures {
		if window != nil && !window.Contains(closure.CreatedAt) {
			continue
		}
		if monthKey != "" && closure.CreatedAt.In(loc).Format(monthKeyFormat) != monthKey {
			continue
		}

		snapshot.Revenue += closure.AmountReceived
		snapshot.Costs += closure.TotalCosts()
		snapshot.Profit += closure.FinalProfit
		snapshot.ProjectCount++
	}

	if snapshot.Revenue > 0 {
		snapshot.Margin = utils.RoundWithTwoDecimalPlace(snapshot.Profit / snapshot.Revenue * 100)
	}
	if snapshot.ProjectCount > 0 {
		snapshot.AverageTicket = utils.RoundWithTwoDecimalPlace(snapshot.Revenue / float64(snapshot.ProjectCount))
	}

	snapshot.Revenue = utils.RoundWithTwoDecimalPlace(snapshot.Revenue)
	snapshot.Costs = utils.RoundWithTwoDecimalPlace(snapshot.Costs)
	snapshot.Profit = utils.RoundWithTwoDecimalPlace(snapshot.Profit)

	return snapshot
}
