package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vlima/reforma-manager-api/internal/domain"
)

func TestAggregateKPIs(t *testing.T) {
	window := &domain.DateRange{
		Start: time.Date(2025, time.January, 1, 0, 0, 0, 0, testLoc),
		End:   time.Date(2025, time.January, 31, 23, 59, 59, 999000000, testLoc),
	}

	closures := []*domain.FinancialClosure{
		{
			ID:              "c1",
			CreatedAt:       time.Date(2025, time.January, 10, 14, 0, 0, 0, testLoc),
			AmountReceived:  1000,
			DistributorCost: 300,
			InstallerCost:   200,
			ExtraCosts:      50,
			FinalProfit:     450,
		},
		{
			ID:              "c2",
			CreatedAt:       time.Date(2025, time.January, 20, 9, 0, 0, 0, testLoc),
			AmountReceived:  2000,
			DistributorCost: 600,
			InstallerCost:   400,
			ExtraCosts:      100,
			FinalProfit:     900,
		},
		{
			// Fora da janela
			ID:             "c3",
			CreatedAt:      time.Date(2025, time.February, 2, 10, 0, 0, 0, testLoc),
			AmountReceived: 9999,
			FinalProfit:    9999,
		},
	}

	snapshot := AggregateKPIs(closures, window, "", testLoc)

	assert.Equal(t, 3000.0, snapshot.Revenue)
	assert.Equal(t, 1650.0, snapshot.Costs)
	assert.Equal(t, 1350.0, snapshot.Profit)
	assert.Equal(t, 45.0, snapshot.Margin)
	assert.Equal(t, 1500.0, snapshot.AverageTicket)
	assert.Equal(t, 2, snapshot.ProjectCount)
}

func TestAggregateKPIs_EmptyInput(t *testing.T) {
	snapshot := AggregateKPIs(nil, nil, "", testLoc)

	assert.Equal(t, 0.0, snapshot.Revenue)
	assert.Equal(t, 0.0, snapshot.Margin)
	assert.Equal(t, 0.0, snapshot.AverageTicket)
	assert.Equal(t, 0, snapshot.ProjectCount)
}

func TestAggregateKPIs_NilWindowIncludesEverything(t *testing.T) {
	closures := []*domain.FinancialClosure{
		{CreatedAt: time.Date(2020, time.May, 1, 0, 0, 0, 0, testLoc), AmountReceived: 100},
		{CreatedAt: time.Date(2025, time.May, 1, 0, 0, 0, 0, testLoc), AmountReceived: 200},
	}

	snapshot := AggregateKPIs(closures, nil, "", testLoc)

	assert.Equal(t, 300.0, snapshot.Revenue)
	assert.Equal(t, 2, snapshot.ProjectCount)
}

func TestAggregateKPIs_MonthBoundaryInCivilTimezone(t *testing.T) {
	// 2025-02-01 02:30 UTC ainda é 31 de janeiro 23:30 no fuso civil UTC-3
	closure := &domain.FinancialClosure{
		CreatedAt:      time.Date(2025, time.February, 1, 2, 30, 0, 0, time.UTC),
		AmountReceived: 500,
	}

	january := &domain.DateRange{
		Start: time.Date(2025, time.January, 1, 0, 0, 0, 0, testLoc),
		End:   time.Date(2025, time.January, 31, 23, 59, 59, 999000000, testLoc),
	}

	snapshot := AggregateKPIs([]*domain.FinancialClosure{closure}, january, "", testLoc)
	assert.Equal(t, 1, snapshot.ProjectCount)

	// E o filtro de mês-calendário também o coloca em janeiro
	snapshot = AggregateKPIs([]*domain.FinancialClosure{closure}, nil, "2025-01", testLoc)
	assert.Equal(t, 1, snapshot.ProjectCount)

	snapshot = AggregateKPIs([]*domain.FinancialClosure{closure}, nil, "2025-02", testLoc)
	assert.Equal(t, 0, snapshot.ProjectCount)
}

func TestAggregateKPIs_MonthKeyIsANDFilter(t *testing.T) {
	window := &domain.DateRange{
		Start: time.Date(2025, time.January, 1, 0, 0, 0, 0, testLoc),
		End:   time.Date(2025, time.March, 31, 23, 59, 59, 999000000, testLoc),
	}

	closures := []*domain.FinancialClosure{
		{CreatedAt: time.Date(2025, time.January, 15, 0, 0, 0, 0, testLoc), AmountReceived: 100},
		{CreatedAt: time.Date(2025, time.February, 15, 0, 0, 0, 0, testLoc), AmountReceived: 200},
	}

	// Janela de três meses restrita ao mês de fevereiro pelo drill-down
	snapshot := AggregateKPIs(closures, window, "2025-02", testLoc)

	assert.Equal(t, 200.0, snapshot.Revenue)
	assert.Equal(t, 1, snapshot.ProjectCount)
}
