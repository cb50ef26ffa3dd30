package analytics

import (
	"fmt"
	"math"

	"github.com/vlima/reforma-manager-api/internal/domain"
)

const (
	// MaxInsights é o teto da lista de insights do painel
	MaxInsights = 5

	marginGapThreshold     = 5.0
	concentrationThreshold = 40.0
	growthThreshold        = 15.0
	growthWindowMonths     = 3
	growthMinTrendMonths   = 6
)

// GenerateInsights avalia as seis regras de insight em ordem fixa sobre os
// KPIs do período atual e anterior, os rankings e a série de tendência. Cada
// regra emite no máximo um insight; a saída mantém a ordem de avaliação das
// regras (nunca é reordenada por severidade) e é truncada aos 5 primeiros que
// dispararam.
func GenerateInsights(
	current, previous *domain.KPISnapshot,
	topClients []*domain.ClientRevenue,
	serviceRanking []*domain.ServiceRevenue,
	trend []*domain.TrendMonth,
) []*domain.Insight {
	insights := make([]*domain.Insight, 0, MaxInsights)

	rules := []func() *domain.Insight{
		func() *domain.Insight { return marginTrendRule(current, previous) },
		func() *domain.Insight { return negativeProfitRule(current) },
		func() *domain.Insight { return bestMonthRule(trend) },
		func() *domain.Insight { return clientConcentrationRule(current, topClients) },
		func() *domain.Insight { return topServiceProfitRule(serviceRanking) },
		func() *domain.Insight { return revenueGrowthRule(trend) },
	}

	for _, rule := range rules {
		if insight := rule(); insight != nil {
			insights = append(insights, insight)
		}
	}

	if len(insights) > MaxInsights {
		insights = insights[:MaxInsights]
	}

	return insights
}

// Regra 1: variação da margem entre períodos. Só avalia quando ambas as
// margens são estritamente positivas.
func marginTrendRule(current, previous *domain.KPISnapshot) *domain.Insight {
	if current.Margin <= 0 || previous.Margin <= 0 {
		return nil
	}

	gap := current.Margin - previous.Margin

	if gap > marginGapThreshold {
		return &domain.Insight{
			ID:          "margin_trend",
			Kind:        domain.InsightKindSuccess,
			Title:       "Margem em alta",
			Description: fmt.Sprintf("A margem de lucro subiu %.1f pontos em relação ao período anterior.", gap),
		}
	}

	if gap < -marginGapThreshold {
		return &domain.Insight{
			ID:          "margin_trend",
			Kind:        domain.InsightKindWarning,
			Title:       "Margem em queda",
			Description: fmt.Sprintf("A margem de lucro caiu %.1f pontos em relação ao período anterior.", math.Abs(gap)),
			Action:      "Revise os custos de material e instalação dos últimos fechamentos.",
		}
	}

	return nil
}

// Regra 2: lucro negativo no período
func negativeProfitRule(current *domain.KPISnapshot) *domain.Insight {
	if current.Profit >= 0 {
		return nil
	}

	return &domain.Insight{
		ID:          "negative_profit",
		Kind:        domain.InsightKindDanger,
		Title:       "Prejuízo no período",
		Description: fmt.Sprintf("O período fechou com prejuízo de R$ %.2f.", math.Abs(current.Profit)),
		Action:      "Verifique fechamentos com custos acima do recebido.",
	}
}

// Regra 3: melhor mês da série. Exige ao menos dois meses com receita.
func bestMonthRule(trend []*domain.TrendMonth) *domain.Insight {
	var best *domain.TrendMonth
	withRevenue := 0

	for _, month := range trend {
		if month.Revenue <= 0 {
			continue
		}
		withRevenue++
		if best == nil || month.Revenue > best.Revenue {
			best = month
		}
	}

	if withRevenue < 2 {
		return nil
	}

	return &domain.Insight{
		ID:          "best_month",
		Kind:        domain.InsightKindInfo,
		Title:       "Melhor mês do ano",
		Description: fmt.Sprintf("%s foi o mês de maior faturamento, com R$ %.2f.", best.Label, best.Revenue),
	}
}

// Regra 4: concentração de receita no maior cliente
func clientConcentrationRule(current *domain.KPISnapshot, topClients []*domain.ClientRevenue) *domain.Insight {
	if len(topClients) == 0 || current.Revenue <= 0 {
		return nil
	}

	top := topClients[0]
	share := top.Revenue / current.Revenue * 100
	if share <= concentrationThreshold {
		return nil
	}

	return &domain.Insight{
		ID:          "client_concentration",
		Kind:        domain.InsightKindWarning,
		Title:       "Receita concentrada",
		Description: fmt.Sprintf("%s responde por %.1f%% da receita do período.", top.ClientName, share),
		Action:      "Diversifique a carteira para reduzir a dependência de um único cliente.",
	}
}

// Regra 5: serviço mais lucrativo. Exige ao menos dois serviços ranqueados e
// lucro positivo no topo.
func topServiceProfitRule(serviceRanking []*domain.ServiceRevenue) *domain.Insight {
	if len(serviceRanking) < 2 {
		return nil
	}

	top := serviceRanking[0]
	for _, service := range serviceRanking[1:] {
		if service.Profit > top.Profit {
			top = service
		}
	}

	if top.Profit <= 0 {
		return nil
	}

	return &domain.Insight{
		ID:          "top_service_profit",
		Kind:        domain.InsightKindSuccess,
		Title:       "Serviço mais lucrativo",
		Description: fmt.Sprintf("%s é o serviço de maior lucro no período, com R$ %.2f.", top.ServiceType, top.Profit),
	}
}

// Regra 6: crescimento ou queda da receita no trimestre. Compara a soma dos 3
// meses mais recentes com a dos 3 anteriores.
func revenueGrowthRule(trend []*domain.TrendMonth) *domain.Insight {
	if len(trend) < growthMinTrendMonths {
		return nil
	}

	recent := 0.0
	prior := 0.0
	for _, month := range trend[len(trend)-growthWindowMonths:] {
		recent += month.Revenue
	}
	for _, month := range trend[len(trend)-2*growthWindowMonths : len(trend)-growthWindowMonths] {
		prior += month.Revenue
	}

	if prior == 0 {
		return nil
	}

	growth := (recent - prior) / prior * 100

	if growth > growthThreshold {
		return &domain.Insight{
			ID:          "revenue_growth",
			Kind:        domain.InsightKindSuccess,
			Title:       "Receita em crescimento",
			Description: fmt.Sprintf("A receita do último trimestre cresceu %.1f%% sobre o trimestre anterior.", growth),
		}
	}

	if growth < -growthThreshold {
		return &domain.Insight{
			ID:          "revenue_growth",
			Kind:        domain.InsightKindDanger,
			Title:       "Receita em queda",
			Description: fmt.Sprintf("A receita do último trimestre caiu %.1f%% sobre o trimestre anterior.", math.Abs(growth)),
			Action:      "Acompanhe o funil de orçamentos para entender a retração.",
		}
	}

	return nil
}
