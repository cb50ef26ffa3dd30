package analytics

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vlima/reforma-manager-api/infrastructure/repository"
	"github.com/vlima/reforma-manager-api/internal/domain"
)

// Service implementa o Analyzer sobre os repositórios de leitura. Todos os
// cálculos são funções puras sobre coleções lidas uma única vez por
// requisição; o serviço não guarda estado entre chamadas.
type Service struct {
	closureRepo repository.ClosureRepository
	orderRepo   repository.ServiceOrderRepository
	quoteRepo   repository.QuoteRepository
	loc         *time.Location
	now         func() time.Time
}

// NewService cria uma nova instância do motor de análise. loc é o fuso civil
// fixo usado em toda a aritmética de calendário do motor.
func NewService(
	closureRepo repository.ClosureRepository,
	orderRepo repository.ServiceOrderRepository,
	quoteRepo repository.QuoteRepository,
	loc *time.Location,
) *Service {
	return &Service{
		closureRepo: closureRepo,
		orderRepo:   orderRepo,
		quoteRepo:   quoteRepo,
		loc:         loc,
		now:         time.Now,
	}
}

// GetDashboard monta o painel analítico completo para os filtros informados.
// Falha de leitura no armazenamento não interrompe o painel: o serviço segue
// com as coleções que conseguiu ler e sinaliza DataUnavailable na resposta.
func (s *Service) GetDashboard(ctx context.Context, filters *domain.DashboardFilters) (*domain.DashboardResponse, error) {
	if filters == nil {
		filters = &domain.DashboardFilters{Period: domain.PeriodMonth}
	}
	if filters.Period == "" {
		filters.Period = domain.PeriodMonth
	}

	now := s.now()

	response := &domain.DashboardResponse{
		Filters: filters,
		Deltas:  make(map[string]*domain.KPIDelta),
	}

	closures, orders := s.fetchClosuresAndOrders(ctx, response)

	currentRange, err := ResolvePeriodRange(filters.Period, filters.StartDate, filters.EndDate, now, false, s.loc)
	if err != nil {
		// Intervalo inválido: o painel responde com agregados vazios, nunca
		// com erro
		logrus.WithFields(logrus.Fields{
			"period": filters.Period,
		}).Warn("analytics: intervalo de datas inválido, agregando conjunto vazio")

		response.InvalidRange = true
		closures = nil
	}

	var previousRange *domain.DateRange
	if !response.InvalidRange {
		previousRange, _ = ResolvePeriodRange(filters.Period, filters.StartDate, filters.EndDate, now, true, s.loc)
	}

	response.CurrentRange = currentRange
	response.PreviousRange = previousRange

	response.Current = AggregateKPIs(closures, currentRange, filters.Month, s.loc)
	response.Previous = AggregateKPIs(closures, previousRange, "", s.loc)

	response.Deltas = buildDeltas(response.Current, response.Previous)
	response.Trend = BuildTrendSeries(closures, now, s.loc)

	filtered := filterClosures(closures, currentRange, filters.Month, s.loc)
	response.TopClients = TopClientsByRevenue(filtered, orders)
	response.RevenueByService = RevenueByServiceType(filtered, orders)

	response.Insights = GenerateInsights(
		response.Current,
		response.Previous,
		response.TopClients,
		response.RevenueByService,
		response.Trend,
	)

	return response, nil
}

// GetConversionFunnel calcula o funil de conversão sobre as coleções completas
func (s *Service) GetConversionFunnel(ctx context.Context) (*domain.ConversionData, error) {
	var (
		quotes   []*domain.Quote
		orders   []*domain.ServiceOrder
		quoteErr error
		orderErr error
	)

	// As coleções são independentes; as leituras podem ser concorrentes
	wg := sync.WaitGroup{}
	wg.Add(2)

	go func() {
		defer wg.Done()
		quotes, quoteErr = s.quoteRepo.ListQuotes(ctx)
	}()

	go func() {
		defer wg.Done()
		orders, orderErr = s.orderRepo.ListOrders(ctx)
	}()

	wg.Wait()

	if quoteErr != nil {
		logrus.WithError(quoteErr).Warn("analytics: erro ao buscar orçamentos, seguindo com coleção vazia")
	}
	if orderErr != nil {
		logrus.WithError(orderErr).Warn("analytics: erro ao buscar ordens de serviço, seguindo com coleção vazia")
	}

	return AnalyzeConversion(quotes, orders), nil
}

// fetchClosuresAndOrders faz as duas leituras em paralelo e sinaliza na
// resposta quando alguma delas falha
func (s *Service) fetchClosuresAndOrders(ctx context.Context, response *domain.DashboardResponse) ([]*domain.FinancialClosure, []*domain.ServiceOrder) {
	var (
		closures   []*domain.FinancialClosure
		orders     []*domain.ServiceOrder
		closureErr error
		orderErr   error
	)

	wg := sync.WaitGroup{}
	wg.Add(2)

	go func() {
		defer wg.Done()
		closures, closureErr = s.closureRepo.ListClosures(ctx)
	}()

	go func() {
		defer wg.Done()
		orders, orderErr = s.orderRepo.ListOrders(ctx)
	}()

	wg.Wait()

	if closureErr != nil {
		logrus.WithError(closureErr).Error("analytics: erro ao buscar fechamentos")
		response.DataUnavailable = true
	}
	if orderErr != nil {
		logrus.WithError(orderErr).Error("analytics: erro ao buscar ordens de serviço")
		response.DataUnavailable = true
	}

	return closures, orders
}

func buildDeltas(current, previous *domain.KPISnapshot) map[string]*domain.KPIDelta {
	return map[string]*domain.KPIDelta{
		domain.DeltaRevenue:       ComputeDelta(current.Revenue, previous.Revenue),
		domain.DeltaCosts:         ComputeDelta(current.Costs, previous.Costs),
		domain.DeltaProfit:        ComputeDelta(current.Profit, previous.Profit),
		domain.DeltaMargin:        ComputeDelta(current.Margin, previous.Margin),
		domain.DeltaAverageTicket: ComputeDelta(current.AverageTicket, previous.AverageTicket),
		domain.DeltaProjectCount:  ComputeDelta(float64(current.ProjectCount), float64(previous.ProjectCount)),
	}
}

// filterClosures aplica a mesma regra de inclusão da agregação e devolve o
// subconjunto, usado pelos rankings
func filterClosures(
	closures []*domain.FinancialClosure,
	window *domain.DateRange,
	monthKey string,
	loc *time.Location,
) []*domain.FinancialClosure {
	filtered := make([]*domain.FinancialClosure, 0, len(closures))
	for _, closure := range closures {
		if window != nil && !window.Contains(closure.CreatedAt) {
			continue
		}
		if monthKey != "" && closure.CreatedAt.In(loc).Format(monthKeyFormat) != monthKey {
			continue
		}
		filtered = append(filtered, closure)
	}
	return filtered
}
