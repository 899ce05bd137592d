package handler

import (
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/client-dashboard-api/internal/domain"
	"github.com/vfg2006/client-dashboard-api/internal/usecases/managing"
	"github.com/vfg2006/client-dashboard-api/pkg/apiErrors"
)

type ApprovalStatusRequest struct {
	Status domain.ApprovalStatus `json:"status"`
}

func taskIndexParam(w http.ResponseWriter, r *http.Request) (int, bool) {
	index, err := strconv.Atoi(httprouter.ParamsFromContext(r.Context()).ByName("index"))
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Índice da tarefa inválido", nil)
		return 0, false
	}
	return index, true
}

func CreateTask(service managing.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		clientID, ok := clientIDParam(w, r)
		if !ok {
			return
		}

		var task domain.TechnicalTask
		if !decodeBody(w, r, &task) {
			return
		}

		client, err := service.UpsertTask(r.Context(), clientID, task, nil)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao adicionar tarefa")
			return
		}

		writeJSON(w, http.StatusCreated, client.Data.OtherKPIs)
	}
}

func UpdateTask(service managing.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		clientID, ok := clientIDParam(w, r)
		if !ok {
			return
		}

		index, ok := taskIndexParam(w, r)
		if !ok {
			return
		}

		var task domain.TechnicalTask
		if !decodeBody(w, r, &task) {
			return
		}

		client, err := service.UpsertTask(r.Context(), clientID, task, &index)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao atualizar tarefa")
			return
		}

		writeJSON(w, http.StatusOK, client.Data.OtherKPIs)
	}
}

func DeleteTask(service managing.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		clientID, ok := clientIDParam(w, r)
		if !ok {
			return
		}

		index, ok := taskIndexParam(w, r)
		if !ok {
			return
		}

		client, err := service.DeleteTask(r.Context(), clientID, index)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao remover tarefa")
			return
		}

		writeJSON(w, http.StatusOK, client.Data.OtherKPIs)
	}
}

func CreateApproval(service managing.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		clientID, ok := clientIDParam(w, r)
		if !ok {
			return
		}

		var req managing.NewApprovalRequest
		if !decodeBody(w, r, &req) {
			return
		}

		approval, err := service.AddApproval(r.Context(), clientID, req)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao criar aprovação")
			return
		}

		writeJSON(w, http.StatusCreated, approval)
	}
}

func UpdateApprovalStatus(service managing.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		clientID, ok := clientIDParam(w, r)
		if !ok {
			return
		}

		decideApproval(service, w, r, clientID)
	}
}

// UpdateSelectedApprovalStatus decide uma aprovação do cliente selecionado
func UpdateSelectedApprovalStatus(service managing.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		selected, err := service.SelectedClient()
		if err != nil {
			writeServiceError(w, r, err, "Erro ao buscar cliente selecionado")
			return
		}

		decideApproval(service, w, r, selected.ID)
	}
}

func decideApproval(service managing.Manager, w http.ResponseWriter, r *http.Request, clientID string) {
	approvalID := httprouter.ParamsFromContext(r.Context()).ByName("approval_id")

	var req ApprovalStatusRequest
	if !decodeBody(w, r, &req) {
		return
	}

	approval, err := service.UpdateApprovalStatus(r.Context(), clientID, approvalID, req.Status)
	if err != nil {
		writeServiceError(w, r, err, "Erro ao atualizar aprovação")
		return
	}

	writeJSON(w, http.StatusOK, approval)
}
