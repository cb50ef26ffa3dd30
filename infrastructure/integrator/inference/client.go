package inference

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"github.com/vlima/reforma-manager-api/internal/config"
	"github.com/vlima/reforma-manager-api/internal/domain"
)

// Client define a interface para o serviço externo de inferência de insights
type Client interface {
	// GenerateInsights envia o funil de conversão e devolve os insights
	// sugeridos pelo serviço
	GenerateInsights(ctx context.Context, funnel *domain.ConversionData) ([]*domain.Insight, error)
}

type HTTPClient struct {
	cfg        *config.Config
	httpClient *http.Client
}

// NewClient cria o cliente HTTP do serviço de inferência. O timeout do
// transporte é a única proteção de tempo da chamada; o motor não tem política
// de retry.
func NewClient(cfg *config.Config) Client {
	timeout := time.Duration(cfg.Inference.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &HTTPClient{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

type generateRequest struct {
	Model  string                 `json:"model,omitempty"`
	Funnel *domain.ConversionData `json:"funnel"`
}

type generateResponse struct {
	Insights []*domain.Insight `json:"insights"`
}

func (c *HTTPClient) GenerateInsights(ctx context.Context, funnel *domain.ConversionData) ([]*domain.Insight, error) {
	payload, err := json.Marshal(generateRequest{
		Model:  c.cfg.Inference.Model,
		Funnel: funnel,
	})
	if err != nil {
		return nil, errors.Wrap(err, "erro ao serializar o funil de conversão")
	}

	url := fmt.Sprintf("%s/v1/insights", c.cfg.Inference.URL)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, errors.Wrap(err, "erro ao montar a requisição de inferência")
	}

	req.Header.Set("Content-Type", "application/json")
	if c.cfg.Inference.AccessToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.cfg.Inference.AccessToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "erro na chamada ao serviço de inferência")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao ler a resposta de inferência")
	}

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("serviço de inferência respondeu %s: %s", resp.Status, string(body))
	}

	var parsed generateResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, errors.Wrap(err, "resposta de inferência mal formada")
	}

	return parsed.Insights, nil
}
