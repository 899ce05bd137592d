package handler

import (
	"io"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/client-dashboard-api/internal/domain"
	"github.com/vfg2006/client-dashboard-api/internal/usecases/importing"
	"github.com/vfg2006/client-dashboard-api/pkg/apiErrors"
)

const maxImportBytes = 10 << 20

func importKindParam(r *http.Request) domain.DatasetKind {
	return domain.DatasetKind(httprouter.ParamsFromContext(r.Context()).ByName("kind"))
}

// ImportText recebe o texto colado do Excel (separado por tabulação) como corpo da requisição
func ImportText(service importing.Importer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		clientID, ok := clientIDParam(w, r)
		if !ok {
			return
		}

		body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxImportBytes))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Não foi possível ler o corpo da requisição", nil)
			return
		}

		result, err := service.Import(r.Context(), clientID, importKindParam(r), string(body))
		if err != nil {
			writeServiceError(w, r, err, "Erro ao importar dados")
			return
		}

		writeJSON(w, http.StatusOK, result)
	}
}

// ImportSpreadsheet recebe um .xlsx no campo "file"; skipHeader=true ignora a primeira linha
func ImportSpreadsheet(service importing.Importer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		clientID, ok := clientIDParam(w, r)
		if !ok {
			return
		}

		r.Body = http.MaxBytesReader(w, r.Body, maxImportBytes)
		file, _, err := r.FormFile("file")
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Arquivo da planilha não enviado", nil)
			return
		}
		defer file.Close()

		skipHeader, _ := strconv.ParseBool(r.URL.Query().Get("skipHeader"))

		result, err := service.ImportSpreadsheet(r.Context(), clientID, importKindParam(r), file, skipHeader)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao importar planilha")
			return
		}

		writeJSON(w, http.StatusOK, result)
	}
}
