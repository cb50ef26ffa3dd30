package apiErrors

import (
	"encoding/json"
	"net/http"
)

// Códigos de erro da API
const (
	// Erros de autenticação (1000-1999)
	ErrInvalidToken = "AUTH_001" // Token inválido
	ErrExpiredToken = "AUTH_002" // Token expirado

	// Erros de validação (2000-2999)
	ErrInvalidRequest   = "VAL_001" // Requisição inválida
	ErrInvalidPeriod    = "VAL_002" // Período ou intervalo de datas inválido
	ErrInvalidFormat    = "VAL_003" // Formato de dados inválido
	ErrInsufficientData = "VAL_004" // Dados insuficientes para a análise

	// Erros do servidor (5000-5999)
	ErrInternalServer    = "SRV_001" // Erro interno do servidor
	ErrDatabaseOperation = "SRV_002" // Erro de operação de banco de dados
	ErrExternalService   = "SRV_003" // Erro em serviço externo
	ErrCommunication     = "SRV_004" // Erro de comunicação
)

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrInvalidToken:      http.StatusUnauthorized,
	ErrExpiredToken:      http.StatusUnauthorized,
	ErrInvalidRequest:    http.StatusBadRequest,
	ErrInvalidPeriod:     http.StatusBadRequest,
	ErrInvalidFormat:     http.StatusBadRequest,
	ErrInsufficientData:  http.StatusUnprocessableEntity,
	ErrInternalServer:    http.StatusInternalServerError,
	ErrDatabaseOperation: http.StatusInternalServerError,
	ErrExternalService:   http.StatusBadGateway,
	ErrCommunication:     http.StatusServiceUnavailable,
}

// APIError representa um erro de API padronizado
type APIError struct {
	Code    string `json:"code"`              // Código de erro para o cliente
	Message string `json:"message,omitempty"` // Mensagem descritiva (opcional)
	Details any    `json:"details,omitempty"` // Detalhes adicionais (opcional)
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	status, exists := httpStatusMap[code]
	if !exists {
		status = http.StatusInternalServerError
	}

	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(apiErr)
}

// FromError cria um erro de API a partir de um erro Go
func FromError(err error, code string) APIError {
	if err == nil {
		return APIError{
			Code:    ErrInternalServer,
			Message: "Erro desconhecido",
		}
	}

	return APIError{
		Code:    code,
		Message: err.Error(),
	}
}
