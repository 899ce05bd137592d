package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/vfg2006/client-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/client-dashboard-api/internal/usecases/importing"
	"github.com/vfg2006/client-dashboard-api/internal/usecases/managing"
	"github.com/vfg2006/client-dashboard-api/internal/usecases/navigating"
	"github.com/vfg2006/client-dashboard-api/internal/usecases/reporting"
	"github.com/vfg2006/client-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/client-dashboard-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.L.WithError(err).Error("Erro ao enviar resposta")
	}
}

// decodeBody escreve o erro de requisição inválida quando o corpo não decodifica
func decodeBody(w http.ResponseWriter, r *http.Request, target any) bool {
	if err := json.NewDecoder(r.Body).Decode(target); err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
		return false
	}
	return true
}

// writeServiceError traduz os erros dos casos de uso no erro padronizado da API
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	var authErr *authenticating.AuthError
	if errors.As(err, &authErr) {
		apiErrors.WriteError(w, authErr.Code, authErr.Error(), nil)
		return
	}

	var clientErr *managing.ClientError
	if errors.As(err, &clientErr) {
		var details any
		if clientErr.ClientID != "" {
			details = map[string]any{"client_id": clientErr.ClientID}
		}
		apiErrors.WriteError(w, clientErr.Code, clientErr.Error(), details)
		return
	}

	var importErr *importing.ImportError
	if errors.As(err, &importErr) {
		apiErrors.WriteError(w, importErr.Code, importing.ParseFailedMessage, map[string]any{
			"kind":   importErr.Kind,
			"reason": importErr.Error(),
		})
		return
	}

	var navErr *navigating.NavigationError
	if errors.As(err, &navErr) {
		apiErrors.WriteError(w, navErr.Code, navErr.Error(), nil)
		return
	}

	var reportErr *reporting.ReportError
	if errors.As(err, &reportErr) {
		apiErrors.WriteError(w, reportErr.Code, reportErr.Error(), nil)
		return
	}

	log.ForContext(r.Context()).WithError(err).Error(fallback)
	apiErrors.WriteError(w, apiErrors.ErrInternalServer, fallback, nil)
}
