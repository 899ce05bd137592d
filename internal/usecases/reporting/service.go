package reporting

import (
	"context"

	"github.com/vfg2006/client-dashboard-api/internal/domain"
	"github.com/vfg2006/client-dashboard-api/internal/usecases/managing"
	"github.com/vfg2006/client-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/client-dashboard-api/pkg/log"
)

type Reporter interface {
	Build(clientID string, period domain.ReportingPeriod) (*domain.Report, error)
	BuildForSelected(period domain.ReportingPeriod) (*domain.Report, error)
	RenderPDF(ctx context.Context, report *domain.Report) ([]byte, error)
}

// ReportError indica falha ao gerar o PDF
type ReportError struct {
	Err  error
	Code string
}

func (e *ReportError) Error() string { return e.Err.Error() }
func (e *ReportError) Unwrap() error { return e.Err }

type Service struct {
	manager managing.Manager
	loader  ImageLoader
}

type Option func(*Service)

// WithImageLoader habilita a capa e o logo no PDF; sem loader o PDF sai só com texto
func WithImageLoader(loader ImageLoader) Option {
	return func(s *Service) {
		s.loader = loader
	}
}

func NewService(manager managing.Manager, opts ...Option) *Service {
	s := &Service{manager: manager}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) Build(clientID string, period domain.ReportingPeriod) (*domain.Report, error) {
	client, err := s.manager.GetClient(clientID)
	if err != nil {
		return nil, err
	}

	report := Compose(client, s.manager.GetSettings(), period.WithDefaults())
	return &report, nil
}

func (s *Service) BuildForSelected(period domain.ReportingPeriod) (*domain.Report, error) {
	client, err := s.manager.SelectedClient()
	if err != nil {
		return nil, err
	}

	report := Compose(client, s.manager.GetSettings(), period.WithDefaults())
	return &report, nil
}

func (s *Service) RenderPDF(ctx context.Context, report *domain.Report) ([]byte, error) {
	content, err := RenderPDF(*report, WithImages(s.loadImages(ctx, report)))
	if err != nil {
		log.ForContext(ctx).WithField("client_id", report.ClientID).WithError(err).Error("Erro ao gerar PDF do relatório")
		return nil, &ReportError{Err: err, Code: apiErrors.ErrInternalServer}
	}
	return content, nil
}

// loadImages baixa capa e logo; falhas viram apenas um aviso e a imagem some do PDF
func (s *Service) loadImages(ctx context.Context, report *domain.Report) Images {
	images := Images{}
	if s.loader == nil {
		return images
	}

	for _, section := range report.Sections {
		if section.Cover == nil {
			continue
		}
		for _, url := range []string{section.Cover.CoverImage, section.Cover.AgencyLogo} {
			if url == "" {
				continue
			}
			if _, done := images[url]; done {
				continue
			}
			content, err := s.loader.Load(ctx, url)
			if err != nil {
				log.ForContext(ctx).WithFields(log.Fields{
					"client_id": report.ClientID,
					"image_url": url,
				}).WithError(err).Warn("Imagem ignorada no PDF do relatório")
				continue
			}
			images[url] = content
		}
	}
	return images
}
