package aiinsights

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vlima/reforma-manager-api/infrastructure/integrator/inference/mocks"
	"github.com/vlima/reforma-manager-api/internal/domain"
	"go.uber.org/mock/gomock"
)

// memStore é um StateStore em memória para os testes
type memStore struct {
	data map[string][]byte
}

func newMemStore() *memStore {
	return &memStore{data: make(map[string][]byte)}
}

func (s *memStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	value, ok := s.data[key]
	return value, ok, nil
}

func (s *memStore) Set(_ context.Context, key string, value []byte) error {
	s.data[key] = value
	return nil
}

// failingStore falha em todas as operações
type failingStore struct{}

func (failingStore) Get(context.Context, string) ([]byte, bool, error) {
	return nil, false, errors.New("armazenamento indisponível")
}

func (failingStore) Set(context.Context, string, []byte) error {
	return errors.New("armazenamento indisponível")
}

// fakeClock devolve sempre o mesmo instante
type fakeClock struct {
	now time.Time
}

func (c fakeClock) Now() time.Time {
	return c.now
}

func testFunnel() *domain.ConversionData {
	return &domain.ConversionData{
		TotalQuotes:           10,
		OverallConversionRate: 50.0,
		ByServiceType: []*domain.ServiceTypeConversion{
			{ServiceType: "Pintura", Total: 6},
			{ServiceType: "Elétrica", Total: 4},
		},
	}
}

var testNow = time.Date(2025, time.January, 20, 10, 0, 0, 0, time.UTC)

func seedCache(t *testing.T, store *memStore, insights []*domain.Insight, timestamp time.Time, fingerprint string) {
	t.Helper()

	raw, err := json.Marshal(cacheEntry{
		Insights:    insights,
		Timestamp:   timestamp,
		Fingerprint: fingerprint,
	})
	require.NoError(t, err)
	store.data[CacheKey] = raw
}

func seedLastAttempt(t *testing.T, store *memStore, at time.Time) {
	t.Helper()

	raw, err := json.Marshal(at)
	require.NoError(t, err)
	store.data[LastAttemptKey] = raw
}

func TestFetchInsights_BelowMinQuotes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Nenhuma chamada externa é esperada
	mockClient := mocks.NewMockClient(ctrl)
	store := newMemStore()

	service := NewService(mockClient, store).WithClock(fakeClock{now: testNow})

	funnel := testFunnel()
	funnel.TotalQuotes = MinQuotes - 1

	insights := service.FetchInsights(context.Background(), funnel)
	assert.Empty(t, insights)

	insights = service.FetchInsights(context.Background(), nil)
	assert.Empty(t, insights)
}

func TestFetchInsights_FreshCacheHit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)
	store := newMemStore()

	funnel := testFunnel()
	cached := []*domain.Insight{
		{ID: "abc123", Kind: domain.InsightKindInfo, Title: "Em cache"},
	}
	seedCache(t, store, cached, testNow.Add(-time.Hour), Fingerprint(funnel))

	service := NewService(mockClient, store).WithClock(fakeClock{now: testNow})

	insights := service.FetchInsights(context.Background(), funnel)

	require.Len(t, insights, 1)
	assert.Equal(t, "abc123", insights[0].ID)
}

func TestFetchInsights_ExpiredCacheTriggersNewCall(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	funnel := testFunnel()
	fresh := []*domain.Insight{
		{ID: "new001", Kind: domain.InsightKindSuccess, Title: "Novo", Description: "Detalhe"},
	}

	mockClient := mocks.NewMockClient(ctrl)
	mockClient.EXPECT().GenerateInsights(gomock.Any(), funnel).Return(fresh, nil)

	store := newMemStore()
	seedCache(t, store, []*domain.Insight{{ID: "old"}}, testNow.Add(-25*time.Hour), Fingerprint(funnel))

	service := NewService(mockClient, store).WithClock(fakeClock{now: testNow})

	insights := service.FetchInsights(context.Background(), funnel)

	require.Len(t, insights, 1)
	assert.Equal(t, "new001", insights[0].ID)

	// A nova entrada substitui a expirada
	var entry cacheEntry
	require.NoError(t, json.Unmarshal(store.data[CacheKey], &entry))
	assert.Equal(t, Fingerprint(funnel), entry.Fingerprint)
	assert.True(t, entry.Timestamp.Equal(testNow))
}

func TestFetchInsights_FingerprintMismatchTriggersNewCall(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	funnel := testFunnel()

	mockClient := mocks.NewMockClient(ctrl)
	mockClient.EXPECT().GenerateInsights(gomock.Any(), funnel).Return(nil, nil)

	store := newMemStore()
	seedCache(t, store, []*domain.Insight{{ID: "old"}}, testNow.Add(-time.Hour), "99:10.0:1")

	service := NewService(mockClient, store).WithClock(fakeClock{now: testNow})

	insights := service.FetchInsights(context.Background(), funnel)
	assert.Empty(t, insights)
}

func TestFetchInsights_Cooldown(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Tentativa há 30 segundos: dentro do cooldown, sem chamada externa
	mockClient := mocks.NewMockClient(ctrl)
	store := newMemStore()
	seedLastAttempt(t, store, testNow.Add(-30*time.Second))

	service := NewService(mockClient, store).WithClock(fakeClock{now: testNow})

	insights := service.FetchInsights(context.Background(), testFunnel())
	assert.Empty(t, insights)
}

func TestFetchInsights_CooldownExpired(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	funnel := testFunnel()

	mockClient := mocks.NewMockClient(ctrl)
	mockClient.EXPECT().GenerateInsights(gomock.Any(), funnel).Return(nil, nil)

	store := newMemStore()
	seedLastAttempt(t, store, testNow.Add(-61*time.Second))

	service := NewService(mockClient, store).WithClock(fakeClock{now: testNow})

	service.FetchInsights(context.Background(), funnel)

	// O marcador foi renovado com o instante da nova tentativa
	var lastAttempt time.Time
	require.NoError(t, json.Unmarshal(store.data[LastAttemptKey], &lastAttempt))
	assert.True(t, lastAttempt.Equal(testNow))
}

func TestFetchInsights_ClientErrorReturnsEmpty(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	funnel := testFunnel()

	mockClient := mocks.NewMockClient(ctrl)
	mockClient.EXPECT().GenerateInsights(gomock.Any(), funnel).Return(nil, errors.New("serviço fora do ar"))

	store := newMemStore()
	service := NewService(mockClient, store).WithClock(fakeClock{now: testNow})

	insights := service.FetchInsights(context.Background(), funnel)
	assert.Empty(t, insights)

	// O marcador é gravado antes da chamada: a tentativa conta mesmo falhando
	_, found := store.data[LastAttemptKey]
	assert.True(t, found)

	// Falha não popula o cache
	_, found = store.data[CacheKey]
	assert.False(t, found)
}

func TestFetchInsights_FailingStoreStillCalls(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	funnel := testFunnel()
	fresh := []*domain.Insight{
		{ID: "x1", Kind: domain.InsightKindInfo, Title: "T", Description: "D"},
	}

	// Falha de leitura é cache-miss e "sem cooldown"; falha de escrita não
	// derruba a resposta
	mockClient := mocks.NewMockClient(ctrl)
	mockClient.EXPECT().GenerateInsights(gomock.Any(), funnel).Return(fresh, nil)

	service := NewService(mockClient, failingStore{}).WithClock(fakeClock{now: testNow})

	insights := service.FetchInsights(context.Background(), funnel)
	require.Len(t, insights, 1)
	assert.Equal(t, "x1", insights[0].ID)
}

func TestFetchInsights_NormalizesMalformedItems(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	funnel := testFunnel()

	mockClient := mocks.NewMockClient(ctrl)
	mockClient.EXPECT().GenerateInsights(gomock.Any(), funnel).Return([]*domain.Insight{
		nil,
		{Kind: domain.InsightKind("urgent")},
		{ID: "ok1", Kind: domain.InsightKindSuccess, Title: "Completo", Description: "Tudo certo"},
	}, nil)

	store := newMemStore()
	service := NewService(mockClient, store).WithClock(fakeClock{now: testNow})

	insights := service.FetchInsights(context.Background(), funnel)

	require.Len(t, insights, 2)

	// Item malformado ganha os fallbacks
	assert.Equal(t, domain.InsightKindInfo, insights[0].Kind)
	assert.Equal(t, "Observação", insights[0].Title)
	assert.Equal(t, "Sem detalhes adicionais.", insights[0].Description)
	assert.NotEmpty(t, insights[0].ID)

	assert.Equal(t, "ok1", insights[1].ID)
	assert.Equal(t, domain.InsightKindSuccess, insights[1].Kind)
}

func TestFingerprint(t *testing.T) {
	assert.Equal(t, "10:50.0:2", Fingerprint(testFunnel()))

	// A taxa é resumida com uma casa decimal
	funnel := testFunnel()
	funnel.OverallConversionRate = 66.67
	assert.Equal(t, "10:66.7:2", Fingerprint(funnel))
}
