package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/vfg2006/client-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/client-dashboard-api/pkg/log"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthcheckHandler responde com o horário atual se o armazenamento responder
func HealthcheckHandler(store Pinger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if store != nil {
			ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
			defer cancel()

			if err := store.Ping(ctx); err != nil {
				log.L.WithError(err).Warn("Armazenamento indisponível no healthcheck")
				apiErrors.WriteError(w, apiErrors.ErrServiceUnavailable, "Armazenamento indisponível", nil)
				return
			}
		}

		if _, err := w.Write([]byte(time.Now().String())); err != nil {
			log.L.WithError(err).Warn("error responding to healthcheck")
		}
	})
}
