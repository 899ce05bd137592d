package handler

import (
	"net/http"

	"github.com/vfg2006/client-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/client-dashboard-api/pkg/log"
)

type ChallengeAnswerRequest struct {
	Answer string `json:"answer"`
}

func GetSession(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, service.Session())
	}
}

func RegenerateChallenge(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, service.RegenerateChallenge())
	}
}

// AnswerChallenge recalcula o estado do desafio a cada resposta
func AnswerChallenge(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ChallengeAnswerRequest
		if !decodeBody(w, r, &req) {
			return
		}

		writeJSON(w, http.StatusOK, service.SubmitAnswer(req.Answer))
	}
}

func Login(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req authenticating.LoginRequest
		if !decodeBody(w, r, &req) {
			return
		}

		result, err := service.Login(r.Context(), req)
		if err != nil {
			log.ForContext(r.Context()).WithFields(log.Fields{
				"username": req.Username,
				"role":     req.Role,
			}).Info("Login recusado")
			writeServiceError(w, r, err, "Erro interno ao realizar login")
			return
		}

		writeJSON(w, http.StatusOK, result)
	}
}

func Logout(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := service.Logout(r.Context()); err != nil {
			writeServiceError(w, r, err, "Erro ao encerrar sessão")
			return
		}

		writeJSON(w, http.StatusOK, service.Session())
	}
}

func OpenAccountRequest(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, service.OpenAccountRequest())
	}
}

func CancelAccountRequest(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, service.CancelAccountRequest())
	}
}

func SubmitAccountRequest(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req authenticating.AccountRequest
		if !decodeBody(w, r, &req) {
			return
		}

		message, err := service.SubmitAccountRequest(r.Context(), req)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao enviar solicitação de conta")
			return
		}

		writeJSON(w, http.StatusAccepted, map[string]string{"message": message})
	}
}
