package reporting

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/jung-kurt/gofpdf"
	"github.com/vfg2006/client-dashboard-api/internal/domain"
)

const (
	fontFamily   = "Helvetica"
	lineHeight   = 8
	headerHeight = 12
)

type renderOptions struct {
	images Images
}

type RenderOption func(*renderOptions)

// WithImages fornece o conteúdo da capa e do logo; URLs sem conteúdo são ignoradas
func WithImages(images Images) RenderOption {
	return func(o *renderOptions) {
		o.images = images
	}
}

// RenderPDF desenha uma página A4 por seção, com cabeçalho (empresa e página) e rodapé
func RenderPDF(report domain.Report, opts ...RenderOption) ([]byte, error) {
	options := renderOptions{}
	for _, opt := range opts {
		opt(&options)
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	r, g, b := hexToRGB(report.PrimaryColor)

	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont(fontFamily, "I", 8)
		pdf.SetTextColor(120, 120, 120)
		pdf.CellFormat(0, 10, tr(report.FooterCredit), "", 0, "C", false, 0, "")
	})

	for _, section := range report.Sections {
		pdf.AddPage()
		writeHeader(pdf, tr, report, section, r, g, b)

		switch section.Kind {
		case domain.SectionCover:
			writeCover(pdf, tr, section.Cover, options.images)
		case domain.SectionSecurity:
			writeSecurity(pdf, tr, section.Security)
		case domain.SectionOverview:
			writeOverview(pdf, tr, section.Overview)
		case domain.SectionSEO:
			writeSEO(pdf, tr, section.SEO)
		case domain.SectionPaidAds:
			writePaidAds(pdf, tr, section.PaidAds)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render report pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func writeHeader(pdf *gofpdf.Fpdf, tr func(string) string, report domain.Report, section domain.ReportSection, r, g, b int) {
	pdf.SetFillColor(r, g, b)
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont(fontFamily, "B", 10)
	pdf.CellFormat(150, headerHeight, tr(strings.ToUpper(report.CompanyName)), "", 0, "L", true, 0, "")
	pdf.CellFormat(0, headerHeight, fmt.Sprintf("%02d", section.Number), "", 1, "R", true, 0, "")
	pdf.Ln(6)
	pdf.SetTextColor(15, 23, 42)
}

func title(pdf *gofpdf.Fpdf, tr func(string) string, text string) {
	pdf.SetFont(fontFamily, "B", 22)
	pdf.MultiCell(0, 11, tr(strings.ToUpper(text)), "", "L", false)
	pdf.Ln(4)
}

func line(pdf *gofpdf.Fpdf, tr func(string) string, label, value string) {
	pdf.SetFont(fontFamily, "B", 11)
	pdf.CellFormat(70, lineHeight, tr(label), "", 0, "L", false, 0, "")
	pdf.SetFont(fontFamily, "", 11)
	pdf.CellFormat(0, lineHeight, tr(value), "", 1, "L", false, 0, "")
}

func writeCover(pdf *gofpdf.Fpdf, tr func(string) string, cover *domain.CoverSection, images Images) {
	if name, ok := registerImage(pdf, images, cover.CoverImage); ok {
		pdf.ImageOptions(name, pdf.GetX(), pdf.GetY(), 190, 0, true, gofpdf.ImageOptions{}, 0, "")
		pdf.Ln(6)
	}

	pdf.SetFont(fontFamily, "", 12)
	pdf.CellFormat(0, lineHeight, tr(cover.Heading), "", 1, "L", false, 0, "")
	title(pdf, tr, cover.SubHeading)
	pdf.SetFont(fontFamily, "B", 16)
	pdf.CellFormat(0, 10, tr(cover.MainTitle), "", 1, "L", false, 0, "")
	pdf.Ln(6)
	line(pdf, tr, "Prepared for", cover.CompanyName)
	line(pdf, tr, "Period", cover.Period)

	if name, ok := registerImage(pdf, images, cover.AgencyLogo); ok {
		pdf.Ln(10)
		pdf.ImageOptions(name, pdf.GetX(), pdf.GetY(), 0, 14, true, gofpdf.ImageOptions{}, 0, "")
	}
}

func writeSecurity(pdf *gofpdf.Fpdf, tr func(string) string, security *domain.SecuritySection) {
	title(pdf, tr, security.Heading)
	pdf.SetFont(fontFamily, "", 12)
	pdf.MultiCell(0, lineHeight, tr(security.Body), "", "L", false)
	pdf.Ln(4)
	pdf.SetFont(fontFamily, "B", 14)
	pdf.CellFormat(0, 10, tr(security.Agency), "", 1, "L", false, 0, "")
}

func writeOverview(pdf *gofpdf.Fpdf, tr func(string) string, overview *domain.OverviewSection) {
	title(pdf, tr, "Overview")
	line(pdf, tr, "Status", overview.Status)
	line(pdf, tr, "Total Ad Budget", fmt.Sprintf("%s %.2f", overview.Currency, overview.TotalAdSpend))
	line(pdf, tr, "Optimization Score", formatNumber(overview.OptimizationScore))

	if !overview.ShowKeyMetrics {
		return
	}

	pdf.Ln(6)
	pdf.SetFont(fontFamily, "B", 14)
	pdf.CellFormat(0, 10, "KEY METRICS", "B", 1, "L", false, 0, "")
	line(pdf, tr, "Leads Generated", strconv.Itoa(overview.TotalLeads))
	line(pdf, tr, "Site Visibility", formatNumber(overview.Visibility)+"%")
	line(pdf, tr, "Target Keywords", strconv.Itoa(overview.TargetKeywords))
	for _, kpi := range overview.KPIs {
		line(pdf, tr, kpi.Metric, fmt.Sprintf("%s / %s (%s)", formatNumber(kpi.Actual), formatNumber(kpi.Target), kpi.Status))
	}
}

func writeSEO(pdf *gofpdf.Fpdf, tr func(string) string, seo *domain.SeoSection) {
	title(pdf, tr, "Organic Growth")
	line(pdf, tr, "Average Position", formatNumber(seo.AverageCurrentRank))
	line(pdf, tr, "Search Volume", strconv.Itoa(seo.TotalVolume))
	pdf.Ln(4)

	widths := []float64{100, 30, 30}
	pdf.SetFont(fontFamily, "B", 10)
	for i, header := range []string{"Keyword", "Current", "Previous"} {
		pdf.CellFormat(widths[i], 8, header, "B", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont(fontFamily, "", 10)
	for _, r := range seo.TopRankings {
		pdf.CellFormat(widths[0], 7, tr(r.Keyword), "", 0, "L", false, 0, "")
		pdf.CellFormat(widths[1], 7, strconv.Itoa(r.CurrentRank), "", 0, "L", false, 0, "")
		pdf.CellFormat(widths[2], 7, strconv.Itoa(r.PreviousRank), "", 1, "L", false, 0, "")
	}
}

func writePaidAds(pdf *gofpdf.Fpdf, tr func(string) string, ads *domain.PaidAdsSection) {
	title(pdf, tr, "Performance Ads")
	if ads.Google != nil {
		line(pdf, tr, "Google Ads Spend", fmt.Sprintf("%s %.2f", ads.Currency, ads.Google.TotalSpend))
	}
	if ads.Meta != nil {
		line(pdf, tr, "Meta Ads Spend", fmt.Sprintf("%s %.2f", ads.Currency, ads.Meta.TotalSpend))
	}
	pdf.Ln(4)

	pdf.SetFont(fontFamily, "B", 10)
	pdf.CellFormat(130, 8, "Campaign", "B", 0, "L", false, 0, "")
	pdf.CellFormat(30, 8, "Conversions", "B", 1, "L", false, 0, "")
	pdf.SetFont(fontFamily, "", 10)
	for _, c := range ads.TopCampaigns {
		pdf.CellFormat(130, 7, tr(c.Campaign), "", 0, "L", false, 0, "")
		pdf.CellFormat(30, 7, strconv.Itoa(c.Conversions), "", 1, "L", false, 0, "")
	}
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// hexToRGB aceita "#rgb" e "#rrggbb"; qualquer outro valor cai no índigo padrão
func hexToRGB(hex string) (int, int, int) {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return 79, 70, 229
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 79, 70, 229
	}
	return int(v >> 16 & 0xff), int(v >> 8 & 0xff), int(v & 0xff)
}
