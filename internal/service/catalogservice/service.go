// Package catalogservice mantém o catálogo de serviços oferecidos pelo petshop.
package catalogservice

import (
	"context"
	"fmt"
	"strings"

	"petshop/internal/domain"
	apperror "petshop/internal/errors"
	"petshop/internal/pkg/identifier"
	"petshop/internal/pkg/logger"
)

// ServiceRepository define o que o catálogo espera da persistência.
type ServiceRepository interface {
	Create(ctx context.Context, service domain.Service) (domain.Service, error)
	FindByID(ctx context.Context, id string) (domain.Service, error)
	FindByType(ctx context.Context, typeService string) (domain.Service, error)
	List(ctx context.Context, page domain.Page) ([]domain.Service, error)
	Update(ctx context.Context, service domain.Service) (domain.Service, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

type Service struct {
	repo   ServiceRepository
	logger logger.Logger
}

func NewService(repo ServiceRepository, log logger.Logger) *Service {
	return &Service{repo: repo, logger: log}
}

// CreateService cadastra um serviço. O tipo é único no catálogo.
func (s *Service) CreateService(ctx context.Context, service domain.Service) (domain.Service, error) {
	s.logger.Debug("Iniciando criação de serviço no catálogo.", map[string]interface{}{"type_service": service.TypeService})

	service.ID = ""
	if err := validateService(service); err != nil {
		s.logger.Warn("Falha na validação do serviço.", map[string]interface{}{"error": err.Error()})
		return domain.Service{}, err
	}
	if err := s.ensureTypeAvailable(ctx, service.TypeService, ""); err != nil {
		return domain.Service{}, err
	}

	created, err := s.repo.Create(ctx, service)
	if err != nil {
		s.logger.Error("Falha ao criar serviço no repositório.", err)
		return domain.Service{}, err
	}

	s.logger.Info("Serviço criado com sucesso.", map[string]interface{}{"id": created.ID})
	return created, nil
}

func (s *Service) GetServiceByID(ctx context.Context, id string) (domain.Service, error) {
	if err := identifier.Require("service_id", id); err != nil {
		return domain.Service{}, err
	}
	return s.repo.FindByID(ctx, id)
}

func (s *Service) ListServices(ctx context.Context, page domain.Page) ([]domain.Service, error) {
	if err := page.Validate(); err != nil {
		return nil, apperror.NewValidationError(err.Error())
	}
	services, err := s.repo.List(ctx, page)
	if err != nil {
		s.logger.Error("Falha ao listar serviços no repositório.", err)
		return nil, err
	}
	return services, nil
}

// UpdateService aplica apenas os campos presentes no patch.
func (s *Service) UpdateService(ctx context.Context, id string, patch domain.ServicePatch) (domain.Service, error) {
	if err := identifier.Require("service_id", id); err != nil {
		return domain.Service{}, err
	}

	current, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Service{}, err
	}
	if patch.IsEmpty() {
		return current, nil
	}

	updated := patch.Apply(current)
	if err := validateService(updated); err != nil {
		return domain.Service{}, err
	}
	if updated.TypeService != current.TypeService {
		if err := s.ensureTypeAvailable(ctx, updated.TypeService, id); err != nil {
			return domain.Service{}, err
		}
	}

	saved, err := s.repo.Update(ctx, updated)
	if err != nil {
		s.logger.Error("Falha ao atualizar serviço no repositório.", err)
		return domain.Service{}, err
	}
	s.logger.Info("Serviço atualizado com sucesso.", map[string]interface{}{"id": id})
	return saved, nil
}

// DeleteService remove o serviço do catálogo. Agendamentos que o referenciam não são alterados.
func (s *Service) DeleteService(ctx context.Context, id string) error {
	if err := identifier.Require("service_id", id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		if !apperror.IsNotFound(err) {
			s.logger.Error("Falha ao deletar serviço no repositório.", err)
		}
		return err
	}
	s.logger.Info("Serviço deletado com sucesso.", map[string]interface{}{"id": id})
	return nil
}

func (s *Service) ensureTypeAvailable(ctx context.Context, typeService, ownerID string) error {
	existing, err := s.repo.FindByType(ctx, typeService)
	switch {
	case apperror.IsNotFound(err):
		return nil
	case err != nil:
		s.logger.Error("Falha ao verificar tipo de serviço no repositório.", err)
		return err
	case existing.ID == ownerID:
		return nil
	}
	return apperror.NewConflictError(fmt.Sprintf("Serviço %s já existe!", typeService))
}

func validateService(svc domain.Service) error {
	if strings.TrimSpace(svc.TypeService) == "" {
		return apperror.NewValidationError("O tipo do serviço não pode ser vazio.")
	}
	if svc.Price < 0 {
		return apperror.NewValidationError("O preço do serviço não pode ser negativo.")
	}
	if svc.DurationInMinutes <= 0 {
		return apperror.NewValidationError("A duração do serviço deve ser maior que zero.")
	}
	return nil
}
