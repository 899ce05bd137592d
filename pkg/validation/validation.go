package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/vfg2006/client-dashboard-api/internal/domain"
)

// New retorna um validador com as regras do domínio registradas:
// currency, service_tag, kyc_status e approval_decision
func New() *validator.Validate {
	v := validator.New()

	_ = v.RegisterValidation("currency", func(fl validator.FieldLevel) bool {
		return domain.IsSupportedCurrency(fl.Field().String())
	})
	_ = v.RegisterValidation("service_tag", func(fl validator.FieldLevel) bool {
		return domain.ServiceTag(fl.Field().String()).IsValid()
	})
	_ = v.RegisterValidation("kyc_status", func(fl validator.FieldLevel) bool {
		return domain.KYCStatus(fl.Field().String()).IsValid()
	})
	_ = v.RegisterValidation("approval_decision", func(fl validator.FieldLevel) bool {
		return domain.ApprovalStatus(fl.Field().String()).IsDecision()
	})

	return v
}

// Describe resume os erros de validação em uma linha ("Email: email; Currency: currency")
func Describe(err error) string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err.Error()
	}

	parts := make([]string, 0, len(validationErrors))
	for _, fe := range validationErrors {
		parts = append(parts, fmt.Sprintf("%s: %s", fe.Field(), fe.Tag()))
	}
	return strings.Join(parts, "; ")
}
