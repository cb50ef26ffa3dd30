package aiinsights

import (
	"context"
	"time"

	"github.com/vlima/reforma-manager-api/internal/domain"
)

// InsightFetcher define a interface do complemento de insights por inferência
type InsightFetcher interface {
	// FetchInsights obtém insights complementares para o funil informado.
	// Nunca devolve erro: qualquer falha de cache, cooldown ou chamada externa
	// resulta em lista vazia.
	FetchInsights(ctx context.Context, funnel *domain.ConversionData) []*domain.Insight
}

// StateStore abstrai o armazenamento chave-valor do estado persistido do
// motor (entrada de cache e marcador de rate-limit). Implementações de teste
// podem ser em memória ou falhar de propósito sem tocar na lógica do motor.
type StateStore interface {
	// Get devolve o valor da chave e um indicador de presença
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set grava o valor da chave, sobrescrevendo o anterior
	Set(ctx context.Context, key string, value []byte) error
}

// Clock abstrai a leitura do relógio, permitindo testes determinísticos da
// janela de cooldown e da expiração do cache
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time {
	return time.Now()
}
