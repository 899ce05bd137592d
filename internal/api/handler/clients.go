package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/client-dashboard-api/internal/domain"
	"github.com/vfg2006/client-dashboard-api/internal/usecases/managing"
	"github.com/vfg2006/client-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/client-dashboard-api/pkg/log"
)

type SelectClientRequest struct {
	ClientID string `json:"clientId"`
}

func clientIDParam(w http.ResponseWriter, r *http.Request) (string, bool) {
	clientID := httprouter.ParamsFromContext(r.Context()).ByName("id")
	if clientID == "" {
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do cliente não fornecido", nil)
		return "", false
	}
	return clientID, true
}

func ListClients(service managing.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, service.ListClients())
	}
}

func CreateClient(service managing.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req managing.NewClientRequest
		if !decodeBody(w, r, &req) {
			return
		}

		client, err := service.AddClient(r.Context(), req)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao cadastrar cliente")
			return
		}

		log.ForContext(r.Context()).WithField("client_id", client.ID).Info("Cliente cadastrado")
		writeJSON(w, http.StatusCreated, client)
	}
}

func GetClient(service managing.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		clientID, ok := clientIDParam(w, r)
		if !ok {
			return
		}

		client, err := service.GetClient(clientID)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao buscar cliente")
			return
		}

		writeJSON(w, http.StatusOK, client)
	}
}

func UpdateClient(service managing.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		clientID, ok := clientIDParam(w, r)
		if !ok {
			return
		}

		var req managing.UpdateClientRequest
		if !decodeBody(w, r, &req) {
			return
		}

		client, err := service.UpdateClientProfile(r.Context(), clientID, req)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao atualizar cliente")
			return
		}

		writeJSON(w, http.StatusOK, client)
	}
}

// UpdateClientData substitui o conjunto de dados inteiro do cliente
func UpdateClientData(service managing.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		clientID, ok := clientIDParam(w, r)
		if !ok {
			return
		}

		var data domain.DashboardData
		if !decodeBody(w, r, &data) {
			return
		}

		client, err := service.UpdateClientData(r.Context(), clientID, data)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao atualizar dados do cliente")
			return
		}

		writeJSON(w, http.StatusOK, client)
	}
}

func ToggleService(service managing.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		clientID, ok := clientIDParam(w, r)
		if !ok {
			return
		}

		tag := domain.ServiceTag(httprouter.ParamsFromContext(r.Context()).ByName("service"))
		client, err := service.ToggleService(r.Context(), clientID, tag)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao alterar serviço do cliente")
			return
		}

		writeJSON(w, http.StatusOK, client)
	}
}

func SelectClient(service managing.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SelectClientRequest
		if !decodeBody(w, r, &req) {
			return
		}

		client, err := service.SelectClient(r.Context(), req.ClientID)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao selecionar cliente")
			return
		}

		writeJSON(w, http.StatusOK, client)
	}
}

// UpdateProfilePhoto é a ação do próprio cliente sobre o cliente selecionado
func UpdateProfilePhoto(service managing.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req managing.ProfilePhotoRequest
		if !decodeBody(w, r, &req) {
			return
		}

		selected, err := service.SelectedClient()
		if err != nil {
			writeServiceError(w, r, err, "Erro ao buscar cliente selecionado")
			return
		}

		client, err := service.UpdateProfilePhoto(r.Context(), selected.ID, req)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao atualizar foto de perfil")
			return
		}

		writeJSON(w, http.StatusOK, client)
	}
}

func GetSettings(service managing.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, service.GetSettings())
	}
}

func UpdateSettings(service managing.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req managing.UpdateSettingsRequest
		if !decodeBody(w, r, &req) {
			return
		}

		settings, err := service.UpdateSettings(r.Context(), req)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao atualizar configurações")
			return
		}

		writeJSON(w, http.StatusOK, settings)
	}
}
