package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/vlima/reforma-manager-api/internal/domain"
	"github.com/vlima/reforma-manager-api/internal/usecases/analytics"
	"github.com/vlima/reforma-manager-api/pkg/apiErrors"
	"github.com/vlima/reforma-manager-api/pkg/log"
	"github.com/vlima/reforma-manager-api/pkg/utils"
)

// GetDashboard monta o painel analítico a partir dos filtros da query string
func GetDashboard(service analytics.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		filters, err := parseDashboardFilters(r)
		if err != nil {
			logger.WithFields(log.Fields{
				"query": r.URL.RawQuery,
				"error": err.Error(),
			}).Warn("analytics: filtros de painel inválidos")

			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			return
		}

		logger.WithFields(log.Fields{
			"period": filters.Period,
			"month":  filters.Month,
		}).Debug("analytics: montando painel")

		dashboard, err := service.GetDashboard(r.Context(), filters)
		if err != nil {
			logger.WithError(err).Error("analytics: erro ao montar o painel")

			apiErrors.WriteError(w, apiErrors.ErrInternalServer, err.Error(), nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(dashboard); err != nil {
			logger.WithError(err).Error("analytics: erro ao serializar resposta do painel")

			apiErrors.WriteError(w, apiErrors.ErrInternalServer, err.Error(), nil)
		}
	})
}

// ExportClosures devolve os fechamentos do período filtrado como arquivo CSV
func ExportClosures(service analytics.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		filters, err := parseDashboardFilters(r)
		if err != nil {
			logger.WithFields(log.Fields{
				"query": r.URL.RawQuery,
				"error": err.Error(),
			}).Warn("analytics: filtros de exportação inválidos")

			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			return
		}

		csv, err := service.ExportClosuresCSV(r.Context(), filters)
		if err != nil {
			logger.WithError(err).Error("analytics: erro ao exportar fechamentos")

			apiErrors.WriteError(w, apiErrors.ErrInternalServer, err.Error(), nil)
			return
		}

		filename := fmt.Sprintf("fechamentos_%s.csv", time.Now().Format("2006-01-02"))

		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
		if _, err := w.Write(csv); err != nil {
			logger.WithError(err).Error("analytics: erro ao escrever CSV na resposta")
		}
	})
}

// parseDashboardFilters lê period, start_date, end_date e month da query
// string. Datas ausentes resultam em ponteiros nulos, nunca em data zero.
func parseDashboardFilters(r *http.Request) (*domain.DashboardFilters, error) {
	query := r.URL.Query()

	filters := &domain.DashboardFilters{
		Period: domain.PeriodKind(query.Get("period")),
		Month:  query.Get("month"),
	}

	if filters.Period == "" {
		filters.Period = domain.PeriodMonth
	}

	if raw := query.Get("start_date"); raw != "" {
		startDate, err := utils.ParseDate(raw)
		if err != nil {
			return nil, fmt.Errorf("start_date inválido: %w", err)
		}
		filters.StartDate = startDate
	}

	if raw := query.Get("end_date"); raw != "" {
		endDate, err := utils.ParseDate(raw)
		if err != nil {
			return nil, fmt.Errorf("end_date inválido: %w", err)
		}
		filters.EndDate = endDate
	}

	return filters, nil
}
