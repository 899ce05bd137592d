package importing

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/vfg2006/client-dashboard-api/internal/domain"
	"github.com/vfg2006/client-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/client-dashboard-api/pkg/utils"
)

const MaxRows = 5000

// Parse interpreta texto colado do Excel: linhas separadas por \n, colunas por \t, sem cabeçalho
func Parse(kind domain.DatasetKind, text string) (*domain.Dataset, error) {
	if !kind.IsValid() {
		return nil, NewImportError(ErrUnknownKind, apiErrors.ErrInvalidRequest, string(kind), "")
	}
	if !utf8.ValidString(text) {
		return nil, NewImportError(ErrInvalidEncoding, apiErrors.ErrImportFailed, string(kind), "")
	}

	lines := strings.Split(strings.TrimSpace(text), "\n")
	rows := make([][]string, 0, len(lines))
	for _, line := range lines {
		rows = append(rows, strings.Split(strings.TrimSuffix(line, "\r"), "\t"))
	}

	return MapRows(kind, rows)
}

// MapRows aplica o esquema posicional do tipo às linhas; linhas totalmente em branco são ignoradas
func MapRows(kind domain.DatasetKind, rows [][]string) (*domain.Dataset, error) {
	if !kind.IsValid() {
		return nil, NewImportError(ErrUnknownKind, apiErrors.ErrInvalidRequest, string(kind), "")
	}

	data := make([][]string, 0, len(rows))
	for _, row := range rows {
		if isBlank(row) {
			continue
		}
		data = append(data, row)
	}

	if len(data) == 0 {
		return nil, NewImportError(ErrNoRows, apiErrors.ErrImportFailed, string(kind), "")
	}
	if len(data) > MaxRows {
		return nil, NewImportError(ErrTooManyRows, apiErrors.ErrImportFailed, string(kind), fmt.Sprintf("%d rows, limit %d", len(data), MaxRows))
	}

	dataset := &domain.Dataset{Kind: kind}
	switch kind {
	case domain.DatasetRankings:
		dataset.Rankings = make([]domain.SeoRanking, 0, len(data))
		for _, cols := range data {
			dataset.Rankings = append(dataset.Rankings, domain.NewSeoRanking(
				column(cols, 0),
				intColumn(cols, 1),
				intColumn(cols, 2),
				intColumn(cols, 3),
				column(cols, 4),
			))
		}
	case domain.DatasetKPIs:
		dataset.KPIs = make([]domain.KpiMetric, 0, len(data))
		for _, cols := range data {
			dataset.KPIs = append(dataset.KPIs, domain.NewKpiMetric(
				column(cols, 0),
				column(cols, 1),
				floatColumn(cols, 2),
				floatColumn(cols, 3),
			))
		}
	case domain.DatasetGoogle, domain.DatasetMeta:
		dataset.Ads = make([]domain.AdPerformance, 0, len(data))
		for _, cols := range data {
			dataset.Ads = append(dataset.Ads, domain.AdPerformance{
				Campaign:    column(cols, 0),
				Impressions: intColumn(cols, 1),
				Clicks:      intColumn(cols, 2),
				CTR:         floatColumn(cols, 3),
				CPC:         floatColumn(cols, 4),
				Spend:       floatColumn(cols, 5),
				Conversions: intColumn(cols, 6),
				ROAS:        floatColumn(cols, 7),
			})
		}
	}

	return dataset, nil
}

func isBlank(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

func column(cols []string, i int) string {
	if i < len(cols) {
		return cols[i]
	}
	return ""
}

// intColumn e floatColumn seguem parseInt/parseFloat: prefixo numérico ou 0
func intColumn(cols []string, i int) int {
	v, _ := utils.LeadingInt(column(cols, i))
	return v
}

func floatColumn(cols []string, i int) float64 {
	v, _ := utils.LeadingFloat(column(cols, i))
	return v
}
