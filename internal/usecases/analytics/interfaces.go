package analytics

import (
	"context"

	"github.com/vlima/reforma-manager-api/internal/domain"
)

// Analyzer define a interface do motor de análise financeira
type Analyzer interface {
	// GetDashboard monta o painel completo (KPIs, deltas, tendência, insights
	// e rankings) para os filtros informados
	GetDashboard(ctx context.Context, filters *domain.DashboardFilters) (*domain.DashboardResponse, error)

	// GetConversionFunnel calcula o funil de conversão de orçamentos sobre as
	// coleções completas de orçamentos e ordens de serviço
	GetConversionFunnel(ctx context.Context) (*domain.ConversionData, error)

	// ExportClosuresCSV serializa os fechamentos do período filtrado como CSV
	ExportClosuresCSV(ctx context.Context, filters *domain.DashboardFilters) ([]byte, error)
}
