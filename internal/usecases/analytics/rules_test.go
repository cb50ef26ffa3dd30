package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vlima/reforma-manager-api/internal/domain"
)

// trendWithRevenues monta uma série de tendência sintética com as receitas
// informadas, na ordem do mais antigo para o mais recente
func trendWithRevenues(revenues ...float64) []*domain.TrendMonth {
	trend := make([]*domain.TrendMonth, 0, len(revenues))
	for _, revenue := range revenues {
		trend = append(trend, &domain.TrendMonth{
			Label:   "M",
			Revenue: revenue,
		})
	}
	return trend
}

func TestGenerateInsights_OrderAndTruncation(t *testing.T) {
	// Cenário em que as seis regras disparam: a lista mantém a ordem de
	// avaliação e fica com os cinco primeiros
	current := &domain.KPISnapshot{Revenue: 1000, Profit: -100, Margin: 50}
	previous := &domain.KPISnapshot{Margin: 40}

	topClients := []*domain.ClientRevenue{
		{ClientName: "Construtora Alfa", Revenue: 500},
	}
	serviceRanking := []*domain.ServiceRevenue{
		{ServiceType: "Instalação de piso", Revenue: 700, Profit: 300},
		{ServiceType: "Pintura", Revenue: 300, Profit: 100},
	}
	trend := trendWithRevenues(0, 0, 0, 0, 0, 0, 100, 0, 0, 200, 100, 100)

	insights := GenerateInsights(current, previous, topClients, serviceRanking, trend)

	require.Len(t, insights, MaxInsights)
	assert.Equal(t, "margin_trend", insights[0].ID)
	assert.Equal(t, "negative_profit", insights[1].ID)
	assert.Equal(t, "best_month", insights[2].ID)
	assert.Equal(t, "client_concentration", insights[3].ID)
	assert.Equal(t, "top_service_profit", insights[4].ID)
}

func TestGenerateInsights_EmptyWhenNothingFires(t *testing.T) {
	insights := GenerateInsights(
		&domain.KPISnapshot{},
		&domain.KPISnapshot{},
		nil,
		nil,
		nil,
	)

	assert.Empty(t, insights)
}

func TestMarginTrendRule(t *testing.T) {
	tests := []struct {
		name         string
		current      float64
		previous     float64
		expectedKind domain.InsightKind
		expectNil    bool
	}{
		{
			name:         "alta acima do limiar dispara sucesso",
			current:      50,
			previous:     40,
			expectedKind: domain.InsightKindSuccess,
		},
		{
			name:         "queda abaixo do limiar dispara alerta",
			current:      30,
			previous:     40,
			expectedKind: domain.InsightKindWarning,
		},
		{
			name:      "variação dentro do limiar não dispara",
			current:   42,
			previous:  40,
			expectNil: true,
		},
		{
			name:      "margem anterior zero não avalia",
			current:   50,
			previous:  0,
			expectNil: true,
		},
		{
			name:      "margem atual negativa não avalia",
			current:   -10,
			previous:  40,
			expectNil: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			insight := marginTrendRule(
				&domain.KPISnapshot{Margin: tt.current},
				&domain.KPISnapshot{Margin: tt.previous},
			)

			if tt.expectNil {
				assert.Nil(t, insight)
				return
			}

			require.NotNil(t, insight)
			assert.Equal(t, "margin_trend", insight.ID)
			assert.Equal(t, tt.expectedKind, insight.Kind)
		})
	}
}

func TestBestMonthRule_RequiresTwoMonthsWithRevenue(t *testing.T) {
	// Um único mês com receita não é comparável
	assert.Nil(t, bestMonthRule(trendWithRevenues(0, 0, 100)))

	insight := bestMonthRule(trendWithRevenues(0, 300, 100))
	require.NotNil(t, insight)
	assert.Equal(t, "best_month", insight.ID)
	assert.Equal(t, domain.InsightKindInfo, insight.Kind)
}

func TestClientConcentrationRule(t *testing.T) {
	current := &domain.KPISnapshot{Revenue: 1000}

	// 35% não dispara
	assert.Nil(t, clientConcentrationRule(current, []*domain.ClientRevenue{
		{ClientName: "A", Revenue: 350},
	}))

	// 45% dispara
	insight := clientConcentrationRule(current, []*domain.ClientRevenue{
		{ClientName: "A", Revenue: 450},
	})
	require.NotNil(t, insight)
	assert.Equal(t, domain.InsightKindWarning, insight.Kind)
}

func TestTopServiceProfitRule(t *testing.T) {
	// Um único serviço ranqueado não dispara
	assert.Nil(t, topServiceProfitRule([]*domain.ServiceRevenue{
		{ServiceType: "Pintura", Profit: 100},
	}))

	// Lucro não positivo no topo não dispara
	assert.Nil(t, topServiceProfitRule([]*domain.ServiceRevenue{
		{ServiceType: "Pintura", Profit: -10},
		{ServiceType: "Elétrica", Profit: -20},
	}))

	insight := topServiceProfitRule([]*domain.ServiceRevenue{
		{ServiceType: "Pintura", Profit: 100},
		{ServiceType: "Elétrica", Profit: 400},
	})
	require.NotNil(t, insight)
	assert.Equal(t, "top_service_profit", insight.ID)
	assert.Contains(t, insight.Description, "Elétrica")
}

func TestRevenueGrowthRule(t *testing.T) {
	// Menos de seis meses na série não avalia
	assert.Nil(t, revenueGrowthRule(trendWithRevenues(100, 100, 100, 200, 200)))

	// Trimestre anterior zerado não avalia
	assert.Nil(t, revenueGrowthRule(trendWithRevenues(0, 0, 0, 100, 100, 100)))

	// Crescimento acima do limiar
	growth := revenueGrowthRule(trendWithRevenues(100, 100, 100, 200, 200, 200))
	require.NotNil(t, growth)
	assert.Equal(t, domain.InsightKindSuccess, growth.Kind)

	// Queda acima do limiar
	drop := revenueGrowthRule(trendWithRevenues(200, 200, 200, 100, 100, 100))
	require.NotNil(t, drop)
	assert.Equal(t, domain.InsightKindDanger, drop.Kind)

	// Variação dentro do limiar não dispara
	assert.Nil(t, revenueGrowthRule(trendWithRevenues(100, 100, 100, 105, 105, 105)))
}
