package handler

import (
	"net/http"
	"strconv"

	"github.com/vfg2006/client-dashboard-api/internal/usecases/insighting"
	"github.com/vfg2006/client-dashboard-api/internal/usecases/managing"
)

// GetInsights sempre responde 200 com texto; cached=true reaproveita o último resultado
func GetInsights(service insighting.Insighter, manager managing.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		useCache, _ := strconv.ParseBool(r.URL.Query().Get("cached"))
		if useCache {
			if selected, err := manager.SelectedClient(); err == nil {
				if insight, ok := service.CachedInsights(selected.ID); ok {
					writeJSON(w, http.StatusOK, insight)
					return
				}
			}
		}

		insight, err := service.ForSelected(r.Context())
		if err != nil {
			writeServiceError(w, r, err, "Erro ao gerar insights")
			return
		}

		writeJSON(w, http.StatusOK, insight)
	}
}
