// Package scheduler contém os serviços de agendamento do motor de análise
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vlima/reforma-manager-api/internal/config"
	"github.com/vlima/reforma-manager-api/internal/usecases/aiinsights"
	"github.com/vlima/reforma-manager-api/internal/usecases/analytics"
)

type AIInsightsWarmupConfig struct {
	CronSchedule string
	Enabled      bool
}

// AIInsightsWarmupService aquece periodicamente o cache de insights de
// inferência: calcula o funil atual e dispara a busca, deixando a resposta
// pronta para a primeira requisição do dia. O cooldown e o cache do serviço
// de insights continuam valendo normalmente.
type AIInsightsWarmupService struct {
	scheduler           *gocron.Scheduler
	analyzer            analytics.Analyzer
	fetcher             aiinsights.InsightFetcher
	config              AIInsightsWarmupConfig
	warmupRunning       bool
	warmupMutex         sync.Mutex
	lastWarmupStartedAt time.Time
	lastWarmupEndedAt   time.Time
}

func NewAIInsightsWarmupService(
	analyzer analytics.Analyzer,
	fetcher aiinsights.InsightFetcher,
	cfg *config.Config,
) *AIInsightsWarmupService {
	warmupConfig := AIInsightsWarmupConfig{
		CronSchedule: cfg.AIInsightsWarmup.CronSchedule, // Default: 5h da manhã todos os dias
		Enabled:      cfg.AIInsightsWarmup.Enabled,      // Default: desabilitado
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": warmupConfig.CronSchedule,
	}).Info("Configuração do agendador de aquecimento de insights carregada")

	return &AIInsightsWarmupService{
		scheduler: scheduler,
		analyzer:  analyzer,
		fetcher:   fetcher,
		config:    warmupConfig,
	}
}

func (s *AIInsightsWarmupService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Cron de aquecimento de insights de inferência desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de aquecimento de insights de inferência")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.WarmupInsights(ctx); err != nil {
			logrus.WithError(err).Error("Erro no aquecimento de insights de inferência")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar aquecimento de insights de inferência: %w", err)
	}

	// Executar o cron em uma goroutine separada
	s.scheduler.StartAsync()

	// Configurar o cancelamento do cron quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron de aquecimento de insights")
		s.scheduler.Stop()
	}()

	return nil
}

// WarmupInsights calcula o funil atual e dispara a busca de insights,
// populando o cache quando há dados suficientes
func (s *AIInsightsWarmupService) WarmupInsights(ctx context.Context) error {
	s.warmupMutex.Lock()
	defer s.warmupMutex.Unlock()

	if s.warmupRunning {
		logrus.Warn("Aquecimento de insights já está em execução")
		return nil
	}

	s.warmupRunning = true
	s.lastWarmupStartedAt = time.Now()
	defer func() {
		s.warmupRunning = false
		s.lastWarmupEndedAt = time.Now()
	}()

	logrus.Info("Iniciando aquecimento de insights de inferência")

	funnel, err := s.analyzer.GetConversionFunnel(ctx)
	if err != nil {
		return fmt.Errorf("erro ao calcular o funil para aquecimento: %w", err)
	}

	insights := s.fetcher.FetchInsights(ctx, funnel)

	logrus.WithFields(logrus.Fields{
		"total_quotes":  funnel.TotalQuotes,
		"insight_count": len(insights),
	}).Info("Aquecimento de insights de inferência concluído")

	return nil
}

// GetStatus retorna o status atual do agendador
func (s *AIInsightsWarmupService) GetStatus() map[string]any {
	return map[string]any{
		"enabled":                  s.config.Enabled,
		"cron":                     s.config.CronSchedule,
		"last_warmup_started_at":   s.lastWarmupStartedAt,
		"last_warmup_completed_at": s.lastWarmupEndedAt,
	}
}
