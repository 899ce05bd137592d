package managing

import (
	"errors"
	"fmt"
)

var (
	// Erros de validação
	ErrInvalidRequest         = errors.New("invalid request")
	ErrMissingRequiredData    = errors.New("missing required data")
	ErrTaskIndexOutOfRange    = errors.New("task index out of range")
	ErrInvalidApprovalStatus  = errors.New("approval status must be approved or rejected")
	ErrApprovalAlreadyDecided = errors.New("approval already decided")
	ErrUnknownService         = errors.New("unknown service")
	ErrUnknownDataset         = errors.New("unknown dataset kind")

	// Erros de recurso inexistente
	ErrClientNotFound     = errors.New("client not found")
	ErrApprovalNotFound   = errors.New("approval not found")
	ErrNoClientsAvailable = errors.New("no clients available")

	ErrGenerateID = errors.New("error generating id")
)

// ClientError é um erro com contexto adicional para operações sobre clientes
type ClientError struct {
	Err      error  // Erro base
	Code     string // Código de erro para API
	ClientID string // ID do cliente envolvido (quando aplicável)
	Details  string // Detalhes adicionais
}

func (e *ClientError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *ClientError) Unwrap() error {
	return e.Err
}

func NewClientError(err error, code string, details string) *ClientError {
	return &ClientError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

func NewClientErrorWithID(err error, code string, clientID string, details string) *ClientError {
	return &ClientError{
		Err:      err,
		Code:     code,
		ClientID: clientID,
		Details:  details,
	}
}

// IsNotFound indica erros de cliente ou aprovação inexistente
func IsNotFound(err error) bool {
	return errors.Is(err, ErrClientNotFound) ||
		errors.Is(err, ErrApprovalNotFound) ||
		errors.Is(err, ErrNoClientsAvailable)
}

// IsValidationError indica que a operação foi rejeitada sem alterar o estado
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidRequest) ||
		errors.Is(err, ErrMissingRequiredData) ||
		errors.Is(err, ErrTaskIndexOutOfRange) ||
		errors.Is(err, ErrInvalidApprovalStatus) ||
		errors.Is(err, ErrApprovalAlreadyDecided) ||
		errors.Is(err, ErrUnknownService) ||
		errors.Is(err, ErrUnknownDataset)
}
