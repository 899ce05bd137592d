package importing

import (
	"context"
	"io"

	"github.com/vfg2006/client-dashboard-api/internal/domain"
	"github.com/vfg2006/client-dashboard-api/internal/usecases/managing"
	"github.com/vfg2006/client-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/client-dashboard-api/pkg/log"
	"github.com/vfg2006/client-dashboard-api/pkg/metrics"
	"github.com/xuri/excelize/v2"
)

type Importer interface {
	Import(ctx context.Context, clientID string, kind domain.DatasetKind, text string) (*Result, error)
	ImportSpreadsheet(ctx context.Context, clientID string, kind domain.DatasetKind, reader io.Reader, skipHeader bool) (*Result, error)
}

type Result struct {
	ClientID string             `json:"clientId"`
	Kind     domain.DatasetKind `json:"kind"`
	Rows     int                `json:"rows"`
}

type Service struct {
	manager managing.Manager
}

func NewService(manager managing.Manager) *Service {
	return &Service{manager: manager}
}

// Import interpreta o texto inteiro antes de trocar a lista do cliente
func (s *Service) Import(ctx context.Context, clientID string, kind domain.DatasetKind, text string) (*Result, error) {
	dataset, err := Parse(kind, text)
	if err != nil {
		return nil, s.fail(ctx, clientID, kind, err)
	}
	return s.apply(ctx, clientID, dataset)
}

// ImportSpreadsheet lê a primeira aba de um .xlsx e aplica o mesmo esquema posicional
func (s *Service) ImportSpreadsheet(ctx context.Context, clientID string, kind domain.DatasetKind, reader io.Reader, skipHeader bool) (*Result, error) {
	rows, err := readFirstSheet(reader)
	if err != nil {
		return nil, s.fail(ctx, clientID, kind, NewImportError(ErrSpreadsheet, apiErrors.ErrImportFailed, string(kind), err.Error()))
	}

	if skipHeader && len(rows) > 0 {
		rows = rows[1:]
	}

	dataset, err := MapRows(kind, rows)
	if err != nil {
		return nil, s.fail(ctx, clientID, kind, err)
	}
	return s.apply(ctx, clientID, dataset)
}

func (s *Service) apply(ctx context.Context, clientID string, dataset *domain.Dataset) (*Result, error) {
	if _, err := s.manager.ReplaceDataset(ctx, clientID, *dataset); err != nil {
		return nil, s.fail(ctx, clientID, dataset.Kind, err)
	}

	metrics.Imports.WithLabelValues(string(dataset.Kind), metrics.ResultSuccess).Inc()
	log.ForContext(ctx).WithFields(log.Fields{
		"client_id": clientID,
		"kind":      dataset.Kind,
		"rows":      dataset.Len(),
	}).Info("Importação concluída")

	return &Result{ClientID: clientID, Kind: dataset.Kind, Rows: dataset.Len()}, nil
}

func (s *Service) fail(ctx context.Context, clientID string, kind domain.DatasetKind, err error) error {
	label := string(kind)
	if !kind.IsValid() {
		label = "unknown"
	}
	metrics.Imports.WithLabelValues(label, metrics.ResultFailure).Inc()
	log.ForContext(ctx).WithFields(log.Fields{
		"client_id": clientID,
		"kind":      kind,
	}).WithError(err).Warn("Falha na importação")
	return err
}

func readFirstSheet(reader io.Reader) ([][]string, error) {
	file, err := excelize.OpenReader(reader)
	if err != nil {
		return nil, err
	}
	defer func() { _ = file.Close() }()

	sheetName := file.GetSheetName(0)
	if sheetName == "" {
		return nil, ErrNoRows
	}

	return file.GetRows(sheetName)
}
