package importing

import (
	"errors"
	"fmt"
)

// ParseFailedMessage é a mensagem exibida ao usuário para qualquer falha de importação
const ParseFailedMessage = "Error parsing data. Please ensure it is tab-separated (from Excel)."

var (
	ErrUnknownKind     = errors.New("unknown dataset kind")
	ErrInvalidEncoding = errors.New("input is not valid UTF-8")
	ErrNoRows          = errors.New("no data rows")
	ErrTooManyRows     = errors.New("too many rows")
	ErrSpreadsheet     = errors.New("error reading spreadsheet")
)

// ImportError carrega o tipo de dado e o detalhe técnico; o estado do cliente nunca é alterado
type ImportError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Kind    string // Tipo de dado importado
	Details string // Detalhes adicionais
}

func (e *ImportError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *ImportError) Unwrap() error {
	return e.Err
}

func NewImportError(err error, code string, kind string, details string) *ImportError {
	return &ImportError{
		Err:     err,
		Code:    code,
		Kind:    kind,
		Details: details,
	}
}

func IsImportError(err error) bool {
	var importErr *ImportError
	return errors.As(err, &importErr)
}
