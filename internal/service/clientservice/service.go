package clientservice

import (
	"context"
	"fmt"
	"strings"

	"petshop/internal/domain"
	apperror "petshop/internal/errors"
	"petshop/internal/pkg/identifier"
	"petshop/internal/pkg/logger"
)

// ClientRepository define o que o serviço de clientes espera da persistência.
type ClientRepository interface {
	Create(ctx context.Context, client domain.Client) (domain.Client, error)
	FindByID(ctx context.Context, id string) (domain.Client, error)
	FindByCPF(ctx context.Context, cpf string) (domain.Client, error)
	List(ctx context.Context, page domain.Page) ([]domain.Client, error)
	Update(ctx context.Context, client domain.Client) (domain.Client, error)
	Delete(ctx context.Context, id string) error
}

// PetRepository cobre a parte dos pets usada na exclusão em cascata.
type PetRepository interface {
	ListByClient(ctx context.Context, clientID string) ([]domain.Pet, error)
	DeleteByClient(ctx context.Context, clientID string) (int64, error)
}

// ScheduleRepository cobre a parte dos agendamentos usada na exclusão em cascata.
type ScheduleRepository interface {
	DeleteByClient(ctx context.Context, clientID string) (int64, error)
	DeleteByPet(ctx context.Context, petID string) (int64, error)
}

// Etapas da exclusão em cascata de um cliente, na ordem em que rodam.
const (
	StagePets      = "pets"
	StageSchedules = "schedules"
	StageClient    = "client"
)

// Service implementa as regras de negócio de clientes.
type Service struct {
	clients   ClientRepository
	pets      PetRepository
	schedules ScheduleRepository
	logger    logger.Logger
}

// NewService cria e retorna uma nova instância do Serviço de Clientes.
func NewService(clients ClientRepository, pets PetRepository, schedules ScheduleRepository, log logger.Logger) *Service {
	return &Service{clients: clients, pets: pets, schedules: schedules, logger: log}
}

// CreateClient cadastra um cliente; o CPF não pode estar em uso.
func (s *Service) CreateClient(ctx context.Context, client domain.Client) (domain.Client, error) {
	s.logger.Debug("Iniciando criação de cliente no serviço.", map[string]interface{}{"cpf": client.CPF})

	client.ID = ""
	if err := validateClient(client); err != nil {
		s.logger.Warn("Falha na validação do cliente.", map[string]interface{}{"error": err.Error()})
		return domain.Client{}, err
	}

	if err := s.ensureCPFAvailable(ctx, client.CPF, ""); err != nil {
		return domain.Client{}, err
	}

	created, err := s.clients.Create(ctx, client)
	if err != nil {
		s.logger.Error("Falha ao criar cliente no repositório.", err)
		return domain.Client{}, err
	}

	s.logger.Info("Cliente criado com sucesso.", map[string]interface{}{"id": created.ID})
	return created, nil
}

// GetClientByID busca um cliente pelo ID.
func (s *Service) GetClientByID(ctx context.Context, id string) (domain.Client, error) {
	if err := identifier.Require("client_id", id); err != nil {
		return domain.Client{}, err
	}
	return s.clients.FindByID(ctx, id)
}

// ListClients lista clientes com paginação.
func (s *Service) ListClients(ctx context.Context, page domain.Page) ([]domain.Client, error) {
	if err := page.Validate(); err != nil {
		return nil, apperror.NewValidationError(err.Error())
	}

	clients, err := s.clients.List(ctx, page)
	if err != nil {
		s.logger.Error("Falha ao listar clientes no repositório.", err)
		return nil, err
	}
	return clients, nil
}

// UpdateClient aplica apenas os campos presentes no patch.
func (s *Service) UpdateClient(ctx context.Context, id string, patch domain.ClientPatch) (domain.Client, error) {
	if err := identifier.Require("client_id", id); err != nil {
		return domain.Client{}, err
	}

	current, err := s.clients.FindByID(ctx, id)
	if err != nil {
		return domain.Client{}, err
	}
	if patch.IsEmpty() {
		return current, nil
	}

	updated := patch.Apply(current)
	if err := validateClient(updated); err != nil {
		return domain.Client{}, err
	}
	if updated.CPF != current.CPF {
		if err := s.ensureCPFAvailable(ctx, updated.CPF, id); err != nil {
			return domain.Client{}, err
		}
	}

	saved, err := s.clients.Update(ctx, updated)
	if err != nil {
		s.logger.Error("Falha ao atualizar cliente no repositório.", err)
		return domain.Client{}, err
	}

	s.logger.Info("Cliente atualizado com sucesso.", map[string]interface{}{"id": id})
	return saved, nil
}

// DeleteClient remove o cliente, seus pets e todos os agendamentos ligados a
// ele ou aos seus pets. As etapas não são atômicas: uma falha interrompe a
// cascata e o erro informa a etapa. Repetir a exclusão completa o que faltou.
func (s *Service) DeleteClient(ctx context.Context, id string) error {
	if err := identifier.Require("client_id", id); err != nil {
		return err
	}

	if _, err := s.clients.FindByID(ctx, id); err != nil {
		return err
	}

	pets, err := s.pets.ListByClient(ctx, id)
	if err != nil {
		return s.cascadeFailed(id, StagePets, err)
	}
	petsRemoved, err := s.pets.DeleteByClient(ctx, id)
	if err != nil {
		return s.cascadeFailed(id, StagePets, err)
	}

	schedulesRemoved, err := s.schedules.DeleteByClient(ctx, id)
	if err != nil {
		return s.cascadeFailed(id, StageSchedules, err)
	}
	for _, pet := range pets {
		n, err := s.schedules.DeleteByPet(ctx, pet.ID)
		if err != nil {
			return s.cascadeFailed(id, StageSchedules, err)
		}
		schedulesRemoved += n
	}

	if err := s.clients.Delete(ctx, id); err != nil {
		return s.cascadeFailed(id, StageClient, err)
	}

	s.logger.Info("Cliente deletado com sucesso.", map[string]interface{}{
		"id":                id,
		"pets_removed":      petsRemoved,
		"schedules_removed": schedulesRemoved,
	})
	return nil
}

func (s *Service) cascadeFailed(id, stage string, err error) error {
	s.logger.Error(fmt.Sprintf("Exclusão em cascata do cliente %s falhou na etapa %s.", id, stage), err)
	return apperror.NewPartialCascadeError("cliente", id, stage, err)
}

// ensureCPFAvailable falha com ConflictError se o CPF pertence a outro cliente.
func (s *Service) ensureCPFAvailable(ctx context.Context, cpf, ownerID string) error {
	existing, err := s.clients.FindByCPF(ctx, cpf)
	switch {
	case apperror.IsNotFound(err):
		return nil
	case err != nil:
		s.logger.Error("Falha ao verificar CPF no repositório.", err)
		return err
	case existing.ID == ownerID:
		return nil
	}
	s.logger.Warn("CPF já cadastrado.", map[string]interface{}{"cpf": cpf})
	return apperror.NewConflictError(fmt.Sprintf("O Cliente com o cpf %s já foi cadastrado", cpf))
}

func validateClient(c domain.Client) error {
	if strings.TrimSpace(c.Name) == "" {
		return apperror.NewValidationError("O nome do cliente não pode ser vazio.")
	}
	if strings.TrimSpace(c.CPF) == "" {
		return apperror.NewValidationError("O CPF do cliente é obrigatório.")
	}
	if c.Age < 0 {
		return apperror.NewValidationError("A idade do cliente não pode ser negativa.")
	}
	return nil
}
