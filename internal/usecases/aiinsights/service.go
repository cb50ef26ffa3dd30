package aiinsights

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vlima/reforma-manager-api/infrastructure/integrator/inference"
	"github.com/vlima/reforma-manager-api/internal/domain"
	"github.com/vlima/reforma-manager-api/pkg/utils"
)

const (
	// CacheKey identifica a entrada de cache dos insights de inferência
	CacheKey = "ai_insights_cache"
	// LastAttemptKey identifica o marcador da última tentativa de chamada
	LastAttemptKey = "ai_insights_last_attempt"

	// MinQuotes é o mínimo de orçamentos relevantes para acionar a inferência
	MinQuotes = 5
	// CacheTTL é a validade da entrada de cache
	CacheTTL = 24 * time.Hour
	// CallCooldown é o intervalo mínimo entre tentativas de chamada externa
	CallCooldown = 60 * time.Second
)

// cacheEntry é o formato serializado da entrada de cache, privado ao motor
type cacheEntry struct {
	Insights    []*domain.Insight `json:"insights"`
	Timestamp   time.Time         `json:"timestamp"`
	Fingerprint string            `json:"fingerprint"`
}

// Service complementa os insights de regras com uma chamada ao serviço de
// inferência sobre o funil de conversão, protegida por cache com fingerprint
// de conteúdo e por um cooldown de chamadas independente do cache.
type Service struct {
	client inference.Client
	store  StateStore
	clock  Clock
}

// NewService cria o serviço de insights por inferência
func NewService(client inference.Client, store StateStore) *Service {
	return &Service{
		client: client,
		store:  store,
		clock:  realClock{},
	}
}

// WithClock substitui o relógio do serviço, usado nos testes de cooldown
func (s *Service) WithClock(clock Clock) *Service {
	s.clock = clock
	return s
}

// FetchInsights obtém insights complementares para o funil informado.
//
// Duas chamadas quase simultâneas podem ambas ler o marcador de cooldown
// antes de qualquer uma gravá-lo e disparar a chamada externa em dobro; o
// custo é uma chamada extra e o risco é aceito sem trava adicional.
func (s *Service) FetchInsights(ctx context.Context, funnel *domain.ConversionData) []*domain.Insight {
	if funnel == nil || funnel.TotalQuotes < MinQuotes {
		return []*domain.Insight{}
	}

	now := s.clock.Now()
	fingerprint := Fingerprint(funnel)

	if cached, ok := s.cachedInsights(ctx, fingerprint, now); ok {
		return cached
	}

	if s.inCooldown(ctx, now) {
		logrus.Debug("aiinsights: cooldown de chamadas ativo, pulando inferência")
		return []*domain.Insight{}
	}

	// O marcador é gravado antes da chamada: tentativas contam mesmo quando a
	// chamada falha
	s.writeLastAttempt(ctx, now)

	raw, err := s.client.GenerateInsights(ctx, funnel)
	if err != nil {
		logrus.WithError(err).Warn("aiinsights: erro na chamada ao serviço de inferência")
		return []*domain.Insight{}
	}

	insights := normalizeInsights(raw)
	s.writeCache(ctx, insights, fingerprint, now)

	return insights
}

// Fingerprint resume o funil em um digest barato usado para validar o cache.
// Colisões são possíveis e aceitas como contrapartida da simplicidade: dois
// funis com mesmo total, mesma taxa com uma casa e mesma contagem de tipos de
// serviço compartilham a entrada de cache.
func Fingerprint(funnel *domain.ConversionData) string {
	return fmt.Sprintf("%d:%.1f:%d",
		funnel.TotalQuotes,
		funnel.OverallConversionRate,
		len(funnel.ByServiceType),
	)
}

// cachedInsights devolve a lista em cache quando a entrada ainda vale: idade
// abaixo do TTL e fingerprint igual ao da entrada atual. Falha de leitura do
// armazenamento é tratada como cache-miss.
func (s *Service) cachedInsights(ctx context.Context, fingerprint string, now time.Time) ([]*domain.Insight, bool) {
	raw, found, err := s.store.Get(ctx, CacheKey)
	if err != nil {
		logrus.WithError(err).Warn("aiinsights: erro ao ler cache, tratando como ausente")
		return nil, false
	}
	if !found {
		return nil, false
	}

	var entry cacheEntry
	if err := json.Unmarshal(raw, &entry); err != nil {
		logrus.WithError(err).Warn("aiinsights: cache corrompido, tratando como ausente")
		return nil, false
	}

	if now.Sub(entry.Timestamp) >= CacheTTL || entry.Fingerprint != fingerprint {
		return nil, false
	}

	return entry.Insights, true
}

// inCooldown informa se a última tentativa de chamada foi há menos tempo que
// o cooldown. Falha de leitura é tratada como "sem cooldown".
func (s *Service) inCooldown(ctx context.Context, now time.Time) bool {
	raw, found, err := s.store.Get(ctx, LastAttemptKey)
	if err != nil {
		logrus.WithError(err).Warn("aiinsights: erro ao ler marcador de cooldown, seguindo sem cooldown")
		return false
	}
	if !found {
		return false
	}

	var lastAttempt time.Time
	if err := json.Unmarshal(raw, &lastAttempt); err != nil {
		return false
	}

	return now.Sub(lastAttempt) < CallCooldown
}

func (s *Service) writeLastAttempt(ctx context.Context, now time.Time) {
	raw, err := json.Marshal(now)
	if err != nil {
		return
	}
	if err := s.store.Set(ctx, LastAttemptKey, raw); err != nil {
		logrus.WithError(err).Warn("aiinsights: erro ao gravar marcador de cooldown")
	}
}

func (s *Service) writeCache(ctx context.Context, insights []*domain.Insight, fingerprint string, now time.Time) {
	raw, err := json.Marshal(cacheEntry{
		Insights:    insights,
		Timestamp:   now,
		Fingerprint: fingerprint,
	})
	if err != nil {
		return
	}
	if err := s.store.Set(ctx, CacheKey, raw); err != nil {
		logrus.WithError(err).Warn("aiinsights: erro ao gravar cache de insights")
	}
}

// normalizeInsights saneia os itens devolvidos pela inferência: tipo
// desconhecido vira info, título e descrição ausentes ganham fallbacks e
// itens sem identificador recebem um gerado
func normalizeInsights(raw []*domain.Insight) []*domain.Insight {
	insights := make([]*domain.Insight, 0, len(raw))

	for _, insight := range raw {
		if insight == nil {
			continue
		}

		normalized := *insight

		if !domain.ValidInsightKind(normalized.Kind) {
			normalized.Kind = domain.InsightKindInfo
		}
		if normalized.Title == "" {
			normalized.Title = "Observação"
		}
		if normalized.Description == "" {
			normalized.Description = "Sem detalhes adicionais."
		}
		if normalized.ID == "" {
			id, err := utils.GenerateID()
			if err == nil {
				normalized.ID = id
			}
		}

		insights = append(insights, &normalized)
	}

	return insights
}
