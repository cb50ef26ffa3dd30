package analytics

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vlima/reforma-manager-api/internal/domain"
)

var csvHeader = []string{
	"id",
	"ordem_servico",
	"data",
	"valor_recebido",
	"custo_distribuidora",
	"custo_instalador",
	"custos_extras",
	"lucro_final",
	"observacoes",
}

// ExportClosuresCSV serializa os fechamentos do período filtrado como texto
// separado por vírgulas, na ordem em que foram lidos.
//
// Limitação conhecida: campos de texto livre não são escapados; observações
// contendo vírgulas ou aspas quebram o alinhamento das colunas.
func (s *Service) ExportClosuresCSV(ctx context.Context, filters *domain.DashboardFilters) ([]byte, error) {
	if filters == nil {
		filters = &domain.DashboardFilters{Period: domain.PeriodMonth}
	}
	if filters.Period == "" {
		filters.Period = domain.PeriodMonth
	}

	closures, err := s.closureRepo.ListClosures(ctx)
	if err != nil {
		logrus.WithError(err).Error("analytics: erro ao buscar fechamentos para exportação")
		return nil, err
	}

	window, err := ResolvePeriodRange(filters.Period, filters.StartDate, filters.EndDate, s.now(), false, s.loc)
	if err != nil {
		// Intervalo inválido exporta apenas o cabeçalho
		closures = nil
	}

	filtered := filterClosures(closures, window, filters.Month, s.loc)

	var sb strings.Builder
	sb.WriteString(strings.Join(csvHeader, ","))
	sb.WriteString("\n")

	for _, closure := range filtered {
		notes := ""
		if closure.Notes != nil {
			notes = *closure.Notes
		}

		sb.WriteString(fmt.Sprintf("%s,%s,%s,%.2f,%.2f,%.2f,%.2f,%.2f,%s\n",
			closure.ID,
			closure.ServiceOrderID,
			closure.CreatedAt.In(s.loc).Format(time.DateOnly),
			closure.AmountReceived,
			closure.DistributorCost,
			closure.InstallerCost,
			closure.ExtraCosts,
			closure.FinalProfit,
			notes,
		))
	}

	return []byte(sb.String()), nil
}
