package managing

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/vfg2006/client-dashboard-api/internal/appstate"
	"github.com/vfg2006/client-dashboard-api/internal/domain"
	"github.com/vfg2006/client-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/client-dashboard-api/pkg/log"
	"github.com/vfg2006/client-dashboard-api/pkg/utils"
	"github.com/vfg2006/client-dashboard-api/pkg/validation"
)

var initialRoadmap = []domain.RoadmapItem{
	{Phase: "Phase 1", Title: "Strategy Setup", Status: domain.RoadmapStatusCurrent, Date: "Month 1"},
}

type Manager interface {
	ListClients() []*domain.ClientProfile
	GetClient(clientID string) (*domain.ClientProfile, error)
	SelectedClient() (*domain.ClientProfile, error)
	SelectClient(ctx context.Context, clientID string) (*domain.ClientProfile, error)
	AddClient(ctx context.Context, request NewClientRequest) (*domain.ClientProfile, error)
	UpdateClientProfile(ctx context.Context, clientID string, request UpdateClientRequest) (*domain.ClientProfile, error)
	UpdateProfilePhoto(ctx context.Context, clientID string, request ProfilePhotoRequest) (*domain.ClientProfile, error)
	UpdateClientData(ctx context.Context, clientID string, data domain.DashboardData) (*domain.ClientProfile, error)
	ReplaceDataset(ctx context.Context, clientID string, dataset domain.Dataset) (*domain.ClientProfile, error)
	ToggleService(ctx context.Context, clientID string, service domain.ServiceTag) (*domain.ClientProfile, error)
	UpsertTask(ctx context.Context, clientID string, task domain.TechnicalTask, index *int) (*domain.ClientProfile, error)
	DeleteTask(ctx context.Context, clientID string, index int) (*domain.ClientProfile, error)
	AddApproval(ctx context.Context, clientID string, request NewApprovalRequest) (*domain.ContentApproval, error)
	UpdateApprovalStatus(ctx context.Context, clientID, approvalID string, status domain.ApprovalStatus) (*domain.ContentApproval, error)
	GetSettings() domain.AdminSettings
	UpdateSettings(ctx context.Context, request UpdateSettingsRequest) (domain.AdminSettings, error)
}

type Service struct {
	state    *appstate.AppState
	validate *validator.Validate
}

func NewService(state *appstate.AppState) *Service {
	return &Service{
		state:    state,
		validate: validation.New(),
	}
}

func (s *Service) ListClients() []*domain.ClientProfile {
	return s.state.Snapshot().Clients
}

func (s *Service) GetClient(clientID string) (*domain.ClientProfile, error) {
	client, _ := s.state.Snapshot().Client(clientID)
	if client == nil {
		return nil, NewClientErrorWithID(ErrClientNotFound, apiErrors.ErrClientNotFound, clientID, "")
	}
	return client, nil
}

// SelectedClient é o cliente exibido nas telas do papel client
func (s *Service) SelectedClient() (*domain.ClientProfile, error) {
	client := s.state.Snapshot().SelectedClient()
	if client == nil {
		return nil, NewClientError(ErrNoClientsAvailable, apiErrors.ErrClientNotFound, "Nenhum cliente cadastrado")
	}
	return client, nil
}

func (s *Service) SelectClient(ctx context.Context, clientID string) (*domain.ClientProfile, error) {
	var selected *domain.ClientProfile
	_, err := s.state.Mutate(ctx, func(draft *appstate.Snapshot) error {
		client, _ := draft.Client(clientID)
		if client == nil {
			return NewClientErrorWithID(ErrClientNotFound, apiErrors.ErrClientNotFound, clientID, "")
		}
		draft.SelectedClientID = clientID
		selected = client.Clone()
		return nil
	})
	return selected, err
}

func (s *Service) AddClient(ctx context.Context, request NewClientRequest) (*domain.ClientProfile, error) {
	request.CompanyName = strings.TrimSpace(request.CompanyName)
	request.ContactPerson = strings.TrimSpace(request.ContactPerson)
	request.Email = strings.TrimSpace(request.Email)

	if err := s.validate.Struct(request); err != nil {
		return nil, NewClientError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, validation.Describe(err))
	}

	id, err := utils.GeneratePrefixedID("client")
	if err != nil {
		return nil, NewClientError(ErrGenerateID, apiErrors.ErrInternalServer, err.Error())
	}

	var created *domain.ClientProfile
	_, err = s.state.Mutate(ctx, func(draft *appstate.Snapshot) error {
		currency := request.Currency
		if currency == "" {
			currency = draft.Settings.DefaultCurrency
		}

		services := uniqueServices(request.Services)
		if request.Services == nil {
			services = append([]domain.ServiceTag{}, domain.AllServices...)
		}

		data := domain.EmptyDashboardData()
		data.Roadmap = append([]domain.RoadmapItem{}, initialRoadmap...)

		client := &domain.ClientProfile{
			ID: id,
			KYC: domain.KYCData{
				CompanyName:        request.CompanyName,
				ContactPerson:      request.ContactPerson,
				Email:              request.Email,
				Phone:              request.Phone,
				ContractSigned:     true,
				RegistrationDate:   domain.Today(),
				ContractStartDate:  request.ContractStartDate,
				ContractExpiryDate: request.ContractExpiryDate,
				Status:             domain.KYCStatusApproved,
				Currency:           currency,
			},
			AssignedServices: services,
			Data:             data,
			ContentApprovals: []domain.ContentApproval{},
		}

		draft.Clients = append(draft.Clients, client)
		draft.SelectedClientID = client.ID
		created = client.Clone()
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"client_id":      created.ID,
		"client_company": created.KYC.CompanyName,
	}).Info("Cliente cadastrado")

	return created, nil
}

func (s *Service) UpdateClientProfile(ctx context.Context, clientID string, request UpdateClientRequest) (*domain.ClientProfile, error) {
	request.CompanyName = trimmed(request.CompanyName)
	request.ContactPerson = trimmed(request.ContactPerson)
	request.Email = trimmed(request.Email)

	if err := s.validate.Struct(request); err != nil {
		return nil, NewClientErrorWithID(ErrInvalidRequest, apiErrors.ErrInvalidRequest, clientID, validation.Describe(err))
	}

	return s.mutateClient(ctx, clientID, func(client *domain.ClientProfile) error {
		kyc := &client.KYC

		if request.CompanyName != nil {
			kyc.CompanyName = *request.CompanyName
		}
		if request.ContactPerson != nil {
			kyc.ContactPerson = *request.ContactPerson
		}
		if request.Email != nil {
			kyc.Email = *request.Email
		}
		if request.Phone != nil {
			kyc.Phone = *request.Phone
		}
		if request.TradeLicenseURL != nil {
			kyc.TradeLicenseURL = *request.TradeLicenseURL
		}
		if request.BrandBookURL != nil {
			kyc.BrandBookURL = *request.BrandBookURL
		}
		if request.VATCertificateURL != nil {
			kyc.VATCertificateURL = *request.VATCertificateURL
		}
		if request.ProfilePhotoURL != nil {
			kyc.ProfilePhotoURL = *request.ProfilePhotoURL
		}
		if request.ContractSigned != nil {
			kyc.ContractSigned = *request.ContractSigned
		}
		if request.ContractStartDate != nil {
			kyc.ContractStartDate = *request.ContractStartDate
		}
		if request.ContractExpiryDate != nil {
			kyc.ContractExpiryDate = *request.ContractExpiryDate
		}
		if request.Status != nil {
			kyc.Status = *request.Status
		}
		if request.Currency != nil {
			kyc.Currency = *request.Currency
		}
		if request.AssignedServices != nil {
			client.AssignedServices = uniqueServices(request.AssignedServices)
		}
		return nil
	})
}

func trimmed(value *string) *string {
	if value == nil {
		return nil
	}
	v := strings.TrimSpace(*value)
	return &v
}

func (s *Service) UpdateProfilePhoto(ctx context.Context, clientID string, request ProfilePhotoRequest) (*domain.ClientProfile, error) {
	if err := s.validate.Struct(request); err != nil {
		return nil, NewClientErrorWithID(ErrInvalidRequest, apiErrors.ErrInvalidRequest, clientID, validation.Describe(err))
	}

	return s.mutateClient(ctx, clientID, func(client *domain.ClientProfile) error {
		client.KYC.ProfilePhotoURL = request.ProfilePhotoURL
		return nil
	})
}

// UpdateClientData substitui o bloco de dados inteiro
func (s *Service) UpdateClientData(ctx context.Context, clientID string, data domain.DashboardData) (*domain.ClientProfile, error) {
	if !domain.IsPercentage(data.Visibility) {
		return nil, NewClientErrorWithID(ErrInvalidRequest, apiErrors.ErrInvalidRequest, clientID, "visibility must be between 0 and 100")
	}
	if !domain.IsPercentage(data.OptimizationScore) {
		return nil, NewClientErrorWithID(ErrInvalidRequest, apiErrors.ErrInvalidRequest, clientID, "optimizationScore must be between 0 and 100")
	}

	return s.mutateClient(ctx, clientID, func(client *domain.ClientProfile) error {
		client.Data = data.Normalized()
		return nil
	})
}

func (s *Service) ReplaceDataset(ctx context.Context, clientID string, dataset domain.Dataset) (*domain.ClientProfile, error) {
	if !dataset.Kind.IsValid() {
		return nil, NewClientErrorWithID(ErrUnknownDataset, apiErrors.ErrInvalidRequest, clientID, string(dataset.Kind))
	}

	return s.mutateClient(ctx, clientID, func(client *domain.ClientProfile) error {
		client.Data.ReplaceDataset(dataset)
		return nil
	})
}

func (s *Service) ToggleService(ctx context.Context, clientID string, service domain.ServiceTag) (*domain.ClientProfile, error) {
	if !service.IsValid() {
		return nil, NewClientErrorWithID(ErrUnknownService, apiErrors.ErrInvalidRequest, clientID, string(service))
	}

	return s.mutateClient(ctx, clientID, func(client *domain.ClientProfile) error {
		if client.HasService(service) {
			kept := make([]domain.ServiceTag, 0, len(client.AssignedServices))
			for _, assigned := range client.AssignedServices {
				if assigned != service {
					kept = append(kept, assigned)
				}
			}
			client.AssignedServices = kept
			return nil
		}

		client.AssignedServices = append(client.AssignedServices, service)
		return nil
	})
}

// UpsertTask substitui a tarefa na posição index ou, com index nil, adiciona ao final
func (s *Service) UpsertTask(ctx context.Context, clientID string, task domain.TechnicalTask, index *int) (*domain.ClientProfile, error) {
	task.Task = strings.TrimSpace(task.Task)
	if task.Task == "" {
		return nil, NewClientErrorWithID(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, clientID, "task is required")
	}

	return s.mutateClient(ctx, clientID, func(client *domain.ClientProfile) error {
		tasks := client.Data.OtherKPIs
		if index == nil {
			client.Data.OtherKPIs = append(tasks, task)
			return nil
		}

		if *index < 0 || *index >= len(tasks) {
			return NewClientErrorWithID(ErrTaskIndexOutOfRange, apiErrors.ErrIndexOutOfRange, clientID, fmt.Sprintf("index %d, tasks %d", *index, len(tasks)))
		}
		tasks[*index] = task
		return nil
	})
}

func (s *Service) DeleteTask(ctx context.Context, clientID string, index int) (*domain.ClientProfile, error) {
	return s.mutateClient(ctx, clientID, func(client *domain.ClientProfile) error {
		tasks := client.Data.OtherKPIs
		if index < 0 || index >= len(tasks) {
			return NewClientErrorWithID(ErrTaskIndexOutOfRange, apiErrors.ErrIndexOutOfRange, clientID, fmt.Sprintf("index %d, tasks %d", index, len(tasks)))
		}

		client.Data.OtherKPIs = append(tasks[:index:index], tasks[index+1:]...)
		return nil
	})
}

func (s *Service) AddApproval(ctx context.Context, clientID string, request NewApprovalRequest) (*domain.ContentApproval, error) {
	request.Title = strings.TrimSpace(request.Title)
	request.CanvaLink = strings.TrimSpace(request.CanvaLink)

	if err := s.validate.Struct(request); err != nil {
		return nil, NewClientErrorWithID(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, clientID, validation.Describe(err))
	}

	suffix, err := utils.GenerateID()
	if err != nil {
		return nil, NewClientError(ErrGenerateID, apiErrors.ErrInternalServer, err.Error())
	}

	approval := domain.ContentApproval{
		ID:          "app-" + suffix,
		Title:       request.Title,
		CanvaLink:   request.CanvaLink,
		Status:      domain.ApprovalStatusPending,
		DateCreated: domain.Today(),
		Notes:       request.Notes,
	}

	_, err = s.mutateClient(ctx, clientID, func(client *domain.ClientProfile) error {
		client.ContentApprovals = append(client.ContentApprovals, approval)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &approval, nil
}

// UpdateApprovalStatus só decide itens pendentes; repetir a mesma decisão não é erro
func (s *Service) UpdateApprovalStatus(ctx context.Context, clientID, approvalID string, status domain.ApprovalStatus) (*domain.ContentApproval, error) {
	if err := s.validate.Var(status, "required,approval_decision"); err != nil {
		return nil, NewClientErrorWithID(ErrInvalidApprovalStatus, apiErrors.ErrInvalidRequest, clientID, string(status))
	}

	var decided domain.ContentApproval
	_, err := s.mutateClient(ctx, clientID, func(client *domain.ClientProfile) error {
		idx := client.ApprovalIndex(approvalID)
		if idx < 0 {
			return NewClientErrorWithID(ErrApprovalNotFound, apiErrors.ErrApprovalNotFound, clientID, approvalID)
		}

		approval := &client.ContentApprovals[idx]
		switch approval.Status {
		case domain.ApprovalStatusPending:
			approval.Status = status
		case status:
		default:
			return NewClientErrorWithID(ErrApprovalAlreadyDecided, apiErrors.ErrInvalidTransition, clientID,
				fmt.Sprintf("%s is %s", approvalID, approval.Status))
		}

		decided = *approval
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"client_id":   clientID,
		"approval_id": approvalID,
		"status":      status,
	}).Info("Aprovação de criativo atualizada")

	return &decided, nil
}

func (s *Service) GetSettings() domain.AdminSettings {
	return s.state.Snapshot().Settings
}

func (s *Service) UpdateSettings(ctx context.Context, request UpdateSettingsRequest) (domain.AdminSettings, error) {
	if err := s.validate.Struct(request); err != nil {
		return domain.AdminSettings{}, NewClientError(ErrInvalidRequest, apiErrors.ErrInvalidRequest, validation.Describe(err))
	}

	snapshot, err := s.state.Mutate(ctx, func(draft *appstate.Snapshot) error {
		applySettings(&draft.Settings, request)
		return nil
	})
	if err != nil {
		return domain.AdminSettings{}, err
	}

	return snapshot.Settings, nil
}

func applySettings(settings *domain.AdminSettings, request UpdateSettingsRequest) {
	if request.AgencyLogo != nil {
		settings.AgencyLogo = *request.AgencyLogo
	}
	if request.URLSlug != nil {
		settings.URLSlug = *request.URLSlug
	}
	if request.FooterCredit != nil {
		settings.FooterCredit = *request.FooterCredit
	}
	if request.PrimaryColor != nil {
		settings.PrimaryColor = *request.PrimaryColor
	}
	if request.DefaultCurrency != nil {
		settings.DefaultCurrency = *request.DefaultCurrency
	}

	report := request.ReportSettings
	if report == nil {
		return
	}
	if report.MainTitle != nil {
		settings.ReportSettings.MainTitle = *report.MainTitle
	}
	if report.CoverImage != nil {
		settings.ReportSettings.CoverImage = *report.CoverImage
	}
	// os títulos da capa são sempre gravados em maiúsculas
	if report.P1Heading != nil {
		settings.ReportSettings.P1Heading = strings.ToUpper(*report.P1Heading)
	}
	if report.P1SubHeading != nil {
		settings.ReportSettings.P1SubHeading = strings.ToUpper(*report.P1SubHeading)
	}
	if report.P2Heading != nil {
		settings.ReportSettings.P2Heading = *report.P2Heading
	}
	if report.P2Body != nil {
		settings.ReportSettings.P2Body = *report.P2Body
	}
	if report.ShowSecurityPage != nil {
		settings.ReportSettings.ShowSecurityPage = *report.ShowSecurityPage
	}
}

func (s *Service) mutateClient(ctx context.Context, clientID string, fn func(client *domain.ClientProfile) error) (*domain.ClientProfile, error) {
	var updated *domain.ClientProfile
	_, err := s.state.Mutate(ctx, func(draft *appstate.Snapshot) error {
		client, _ := draft.Client(clientID)
		if client == nil {
			return NewClientErrorWithID(ErrClientNotFound, apiErrors.ErrClientNotFound, clientID, "")
		}
		if err := fn(client); err != nil {
			return err
		}
		updated = client.Clone()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func uniqueServices(services []domain.ServiceTag) []domain.ServiceTag {
	seen := make(map[domain.ServiceTag]struct{}, len(services))
	unique := make([]domain.ServiceTag, 0, len(services))
	for _, service := range services {
		if _, ok := seen[service]; ok {
			continue
		}
		seen[service] = struct{}{}
		unique = append(unique, service)
	}
	return unique
}
