package clients

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SalonCalendar/internal/domain"
	clientRepo "github.com/m04kA/SMC-SalonCalendar/internal/infra/storage/client"
	"github.com/m04kA/SMC-SalonCalendar/internal/service/clients/models"
)

// Service сервис справочника клиентов.
// Если репозиторий задан, источник правды - postgres, а справочник в памяти
// зеркалирует его для календаря. Без репозитория клиенты живут только в памяти.
type Service struct {
	repo      ClientRepository
	directory ClientDirectory
	logger    Logger
}

// NewService создает новый экземпляр сервиса клиентов. repo может быть nil.
func NewService(repo ClientRepository, directory ClientDirectory, logger Logger) *Service {
	return &Service{
		repo:      repo,
		directory: directory,
		logger:    logger,
	}
}

// Sync загружает всех клиентов из базы в справочник
func (s *Service) Sync(ctx context.Context) error {
	if s.repo == nil {
		return nil
	}

	clients, err := s.repo.GetAll(ctx)
	if err != nil {
		s.logger.Error("Sync: repository error: %v", err)
		return fmt.Errorf("%w: Sync - repository error: %v", ErrInternal, err)
	}

	for _, c := range clients {
		s.directory.PutClient(*c)
	}

	s.logger.Info("Sync: mirrored %d clients into directory", len(clients))
	return nil
}

// List возвращает всех клиентов
func (s *Service) List(ctx context.Context) (*models.ClientListResponse, error) {
	if s.repo == nil {
		clients := s.directory.Clients()
		result := make([]*domain.Client, len(clients))
		for i := range clients {
			result[i] = &clients[i]
		}
		return models.FromDomainClientList(result), nil
	}

	clients, err := s.repo.GetAll(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	for _, c := range clients {
		s.directory.PutClient(*c)
	}

	return models.FromDomainClientList(clients), nil
}

// GetByID возвращает клиента: сначала из справочника, затем из базы
func (s *Service) GetByID(ctx context.Context, id domain.ClientID) (*models.ClientResponse, error) {
	if c, ok := s.directory.LookupClient(id); ok {
		return models.FromDomainClient(&c), nil
	}

	if s.repo == nil {
		s.logger.Warn("GetByID: client id=%s not found", id)
		return nil, ErrClientNotFound
	}

	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, clientRepo.ErrClientNotFound) {
			s.logger.Warn("GetByID: client id=%s not found", id)
			return nil, ErrClientNotFound
		}
		s.logger.Error("GetByID: repository error for client id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	s.directory.PutClient(*c)
	return models.FromDomainClient(c), nil
}

// Create создает клиента и сразу делает его доступным календарю
func (s *Service) Create(ctx context.Context, req *models.CreateClientRequest) (*models.ClientResponse, error) {
	client := req.ToDomain()
	if err := validateClient(client); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	if s.repo == nil {
		return s.createInMemory(client)
	}

	created, err := s.repo.Create(ctx, client)
	if err != nil {
		if errors.Is(err, clientRepo.ErrEmailTaken) {
			s.logger.Warn("Create: email=%s already taken", client.Email)
			return nil, ErrEmailTaken
		}
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.directory.PutClient(*created)
	s.logger.Info("Create: client id=%s created", created.ID)
	return models.FromDomainClient(created), nil
}

func (s *Service) createInMemory(client *domain.Client) (*models.ClientResponse, error) {
	for _, existing := range s.directory.Clients() {
		if strings.EqualFold(existing.Email, client.Email) {
			s.logger.Warn("Create: email=%s already taken", client.Email)
			return nil, ErrEmailTaken
		}
	}

	client.ID = domain.ClientID(uuid.NewString())
	s.directory.PutClient(*client)

	s.logger.Info("Create: client id=%s created in memory", client.ID)
	return models.FromDomainClient(client), nil
}
