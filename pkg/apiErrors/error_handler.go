package apiErrors

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	// Erros de autenticação
	ErrInvalidCredentials    = "AUTH_001" // Credenciais inválidas
	ErrChallengeUnsolved     = "AUTH_002" // Desafio de verificação humana não resolvido
	ErrInvalidRole           = "AUTH_003" // Papel de acesso inválido
	ErrNotLoggedIn           = "AUTH_004" // Sessão encerrada
	ErrMissingToken          = "AUTH_005" // Header Authorization ausente
	ErrInvalidToken          = "AUTH_006" // Token inválido
	ErrExpiredToken          = "AUTH_007" // Token expirado
	ErrInsufficientPrivilege = "AUTH_008" // Privilégios insuficientes

	// Erros de validação
	ErrInvalidRequest      = "VAL_001" // Requisição inválida
	ErrMissingRequiredData = "VAL_002" // Dados obrigatórios ausentes
	ErrInvalidFormat       = "VAL_003" // Formato de dados inválido
	ErrImportFailed        = "VAL_004" // Falha ao interpretar planilha colada
	ErrIndexOutOfRange     = "VAL_005" // Índice de tarefa fora do intervalo
	ErrInvalidTransition   = "VAL_006" // Transição de status não permitida
	ErrUnknownTab          = "VAL_007" // Aba inexistente para o papel

	// Erros de recurso inexistente
	ErrClientNotFound   = "NFD_001" // Cliente não encontrado
	ErrApprovalNotFound = "NFD_002" // Aprovação não encontrada
	ErrRouteNotFound    = "NFD_003" // Rota não encontrada

	// Erros do servidor
	ErrInternalServer     = "SRV_001" // Erro interno do servidor
	ErrStorageOperation   = "SRV_002" // Erro no armazenamento
	ErrExternalService    = "SRV_003" // Erro em serviço externo
	ErrServiceUnavailable = "SRV_004" // Serviço indisponível
	ErrMethodNotAllowed   = "SRV_005" // Método não suportado
)

var httpStatusMap = map[string]int{
	ErrInvalidCredentials:    http.StatusUnauthorized,
	ErrChallengeUnsolved:     http.StatusUnauthorized,
	ErrInvalidRole:           http.StatusBadRequest,
	ErrNotLoggedIn:           http.StatusUnauthorized,
	ErrMissingToken:          http.StatusUnauthorized,
	ErrInvalidToken:          http.StatusUnauthorized,
	ErrExpiredToken:          http.StatusUnauthorized,
	ErrInsufficientPrivilege: http.StatusForbidden,
	ErrInvalidRequest:        http.StatusBadRequest,
	ErrMissingRequiredData:   http.StatusBadRequest,
	ErrInvalidFormat:         http.StatusBadRequest,
	ErrImportFailed:          http.StatusUnprocessableEntity,
	ErrIndexOutOfRange:       http.StatusBadRequest,
	ErrInvalidTransition:     http.StatusConflict,
	ErrUnknownTab:            http.StatusBadRequest,
	ErrClientNotFound:        http.StatusNotFound,
	ErrApprovalNotFound:      http.StatusNotFound,
	ErrRouteNotFound:         http.StatusNotFound,
	ErrInternalServer:        http.StatusInternalServerError,
	ErrStorageOperation:      http.StatusInternalServerError,
	ErrExternalService:       http.StatusBadGateway,
	ErrServiceUnavailable:    http.StatusServiceUnavailable,
	ErrMethodNotAllowed:      http.StatusMethodNotAllowed,
}

// APIError representa um erro de API padronizado
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message,omitempty"`
	Details any    `json:"details,omitempty"`
}

// StatusFor retorna o status HTTP do código (500 para códigos desconhecidos)
func StatusFor(code string) int {
	status, exists := httpStatusMap[code]
	if !exists {
		return http.StatusInternalServerError
	}
	return status
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(StatusFor(code))
	json.NewEncoder(w).Encode(apiErr)
}
