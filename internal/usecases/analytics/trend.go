package analytics

import (
	"fmt"
	"time"

	"github.com/vlima/reforma-manager-api/internal/domain"
	"github.com/vlima/reforma-manager-api/pkg/utils"
)

// TrendMonths é o tamanho fixo da série de tendência
const TrendMonths = 12

var shortMonthNames = []string{
	"Jan", "Fev", "Mar", "Abr", "Mai", "Jun",
	"Jul", "Ago", "Set", "Out", "Nov", "Dez",
}

// BuildTrendSeries monta a série de 12 meses-calendário terminando no mês que
// contém a referência, do mais antigo para o mais recente. O agrupamento é por
// mês-calendário exato no fuso informado, sem janelas; meses sem fechamentos
// entram zerados para que a série tenha sempre o mesmo tamanho.
func BuildTrendSeries(
	closures []*domain.FinancialClosure,
	now time.Time,
	loc *time.Location,
) []*domain.TrendMonth {
	local := now.In(loc)

	series := make([]*domain.TrendMonth, 0, TrendMonths)
	byKey := make(map[string]*domain.TrendMonth, TrendMonths)

	for i := TrendMonths - 1; i >= 0; i-- {
		month := time.Date(local.Year(), local.Month(), 1, 0, 0, 0, 0, loc).AddDate(0, -i, 0)
		entry := &domain.TrendMonth{
			Label:    fmt.Sprintf("%s/%s", shortMonthNames[int(month.Month())-1], month.Format("06")),
			MonthKey: month.Format(monthKeyFormat),
		}
		series = append(series, entry)
		byKey[entry.MonthKey] = entry
	}

	for _, closure := range closures {
		entry, ok := byKey[closure.CreatedAt.In(loc).Format(monthKeyFormat)]
		if !ok {
			continue
		}
		entry.Revenue += closure.AmountReceived
		entry.Costs += closure.TotalCosts()
		entry.Profit += closure.FinalProfit
	}

	for _, entry := range series {
		if entry.Revenue > 0 {
			entry.Margin = utils.RoundWithTwoDecimalPlace(entry.Profit / entry.Revenue * 100)
		}
		entry.Revenue = utils.RoundWithTwoDecimalPlace(entry.Revenue)
		entry.Costs = utils.RoundWithTwoDecimalPlace(entry.Costs)
		entry.Profit = utils.RoundWithTwoDecimalPlace(entry.Profit)
	}

	return series
}
