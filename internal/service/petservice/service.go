package petservice

import (
	"context"
	"fmt"
	"strings"

	"petshop/internal/domain"
	apperror "petshop/internal/errors"
	"petshop/internal/pkg/identifier"
	"petshop/internal/pkg/logger"
)

// PetRepository define o que o serviço de pets espera da persistência.
type PetRepository interface {
	Create(ctx context.Context, pet domain.Pet) (domain.Pet, error)
	FindByID(ctx context.Context, id string) (domain.Pet, error)
	FindByName(ctx context.Context, name string) (domain.Pet, error)
	List(ctx context.Context, page domain.Page) ([]domain.Pet, error)
	ListByClient(ctx context.Context, clientID string) ([]domain.Pet, error)
	Search(ctx context.Context, filter domain.PetFilter) ([]domain.Pet, error)
	Update(ctx context.Context, pet domain.Pet) (domain.Pet, error)
	Delete(ctx context.Context, id string) error
}

// ClientFinder confirma a existência do dono.
type ClientFinder interface {
	FindByID(ctx context.Context, id string) (domain.Client, error)
}

// ScheduleRemover apaga os agendamentos de um pet.
type ScheduleRemover interface {
	DeleteByPet(ctx context.Context, petID string) (int64, error)
}

// Etapas da exclusão de um pet.
const (
	StageSchedules = "schedules"
	StagePet       = "pet"
)

// Service implementa as regras de negócio de pets.
type Service struct {
	pets      PetRepository
	clients   ClientFinder
	schedules ScheduleRemover
	logger    logger.Logger
}

func NewService(pets PetRepository, clients ClientFinder, schedules ScheduleRemover, log logger.Logger) *Service {
	return &Service{pets: pets, clients: clients, schedules: schedules, logger: log}
}

// CreatePet cadastra um pet para um cliente existente. O nome é único no sistema.
func (s *Service) CreatePet(ctx context.Context, clientID string, pet domain.Pet) (domain.Pet, error) {
	s.logger.Debug("Iniciando criação de pet no serviço.", map[string]interface{}{"client_id": clientID, "name": pet.Name})

	if err := identifier.Require("client_id", clientID); err != nil {
		return domain.Pet{}, err
	}
	pet.ID = ""
	pet.ClientID = clientID
	if err := validatePet(pet); err != nil {
		return domain.Pet{}, err
	}

	if _, err := s.clients.FindByID(ctx, clientID); err != nil {
		s.logger.Warn("Cliente do pet não encontrado.", map[string]interface{}{"client_id": clientID})
		return domain.Pet{}, err
	}
	if err := s.ensureNameAvailable(ctx, pet.Name, ""); err != nil {
		return domain.Pet{}, err
	}

	created, err := s.pets.Create(ctx, pet)
	if err != nil {
		s.logger.Error("Falha ao criar pet no repositório.", err)
		return domain.Pet{}, err
	}

	s.logger.Info("Pet criado com sucesso.", map[string]interface{}{"id": created.ID, "client_id": clientID})
	return created, nil
}

// GetPetByID busca um pet pelo ID.
func (s *Service) GetPetByID(ctx context.Context, id string) (domain.Pet, error) {
	if err := identifier.Require("pet_id", id); err != nil {
		return domain.Pet{}, err
	}
	return s.pets.FindByID(ctx, id)
}

// ListPets lista pets com paginação.
func (s *Service) ListPets(ctx context.Context, page domain.Page) ([]domain.Pet, error) {
	if err := page.Validate(); err != nil {
		return nil, apperror.NewValidationError(err.Error())
	}
	pets, err := s.pets.List(ctx, page)
	if err != nil {
		s.logger.Error("Falha ao listar pets no repositório.", err)
		return nil, err
	}
	return pets, nil
}

// ListPetsByClient lista os pets de um cliente existente.
func (s *Service) ListPetsByClient(ctx context.Context, clientID string) ([]domain.Pet, error) {
	if err := identifier.Require("client_id", clientID); err != nil {
		return nil, err
	}
	if _, err := s.clients.FindByID(ctx, clientID); err != nil {
		return nil, err
	}
	return s.pets.ListByClient(ctx, clientID)
}

// SearchPets busca pets por trecho do nome, opcionalmente só os de um cliente.
func (s *Service) SearchPets(ctx context.Context, filter domain.PetFilter) ([]domain.Pet, error) {
	filter.Name = strings.TrimSpace(filter.Name)
	if filter.Name == "" {
		return nil, apperror.NewValidationError("O termo de busca do nome do pet não pode ser vazio.")
	}
	if err := filter.Page.Validate(); err != nil {
		return nil, apperror.NewValidationError(err.Error())
	}
	if filter.ClientID != "" {
		if err := identifier.Require("client_id", filter.ClientID); err != nil {
			return nil, err
		}
		if _, err := s.clients.FindByID(ctx, filter.ClientID); err != nil {
			return nil, err
		}
	}

	pets, err := s.pets.Search(ctx, filter)
	if err != nil {
		s.logger.Error("Falha ao buscar pets por nome.", err)
		return nil, err
	}
	return pets, nil
}

// UpdatePet aplica o patch a um pet do cliente informado.
func (s *Service) UpdatePet(ctx context.Context, clientID, petID string, patch domain.PetPatch) (domain.Pet, error) {
	current, err := s.ownedPet(ctx, clientID, petID)
	if err != nil {
		return domain.Pet{}, err
	}
	if patch.IsEmpty() {
		return current, nil
	}

	updated := patch.Apply(current)
	if err := validatePet(updated); err != nil {
		return domain.Pet{}, err
	}
	if updated.Name != current.Name {
		if err := s.ensureNameAvailable(ctx, updated.Name, petID); err != nil {
			return domain.Pet{}, err
		}
	}

	saved, err := s.pets.Update(ctx, updated)
	if err != nil {
		s.logger.Error("Falha ao atualizar pet no repositório.", err)
		return domain.Pet{}, err
	}

	s.logger.Info("Pet atualizado com sucesso.", map[string]interface{}{"id": petID})
	return saved, nil
}

// DeletePet remove os agendamentos do pet e depois o pet.
func (s *Service) DeletePet(ctx context.Context, clientID, petID string) error {
	if _, err := s.ownedPet(ctx, clientID, petID); err != nil {
		return err
	}

	removed, err := s.schedules.DeleteByPet(ctx, petID)
	if err != nil {
		return s.cascadeFailed(petID, StageSchedules, err)
	}
	if err := s.pets.Delete(ctx, petID); err != nil {
		return s.cascadeFailed(petID, StagePet, err)
	}

	s.logger.Info("Pet deletado com sucesso.", map[string]interface{}{"id": petID, "schedules_removed": removed})
	return nil
}

// ownedPet busca o pet e confirma que ele pertence ao cliente.
// Um pet de outro cliente é tratado como inexistente.
func (s *Service) ownedPet(ctx context.Context, clientID, petID string) (domain.Pet, error) {
	if err := identifier.Require("client_id", clientID); err != nil {
		return domain.Pet{}, err
	}
	if err := identifier.Require("pet_id", petID); err != nil {
		return domain.Pet{}, err
	}

	pet, err := s.pets.FindByID(ctx, petID)
	if err != nil {
		return domain.Pet{}, err
	}
	if pet.ClientID != clientID {
		return domain.Pet{}, apperror.NewNotFoundError(fmt.Sprintf("Pet com o id %s não encontrado para o cliente %s", petID, clientID))
	}
	return pet, nil
}

func (s *Service) ensureNameAvailable(ctx context.Context, name, ownerID string) error {
	existing, err := s.pets.FindByName(ctx, name)
	switch {
	case apperror.IsNotFound(err):
		return nil
	case err != nil:
		s.logger.Error("Falha ao verificar nome do pet no repositório.", err)
		return err
	case existing.ID == ownerID:
		return nil
	}
	s.logger.Warn("Nome de pet já cadastrado.", map[string]interface{}{"name": name})
	return apperror.NewConflictError(fmt.Sprintf("O pet com o nome %s já foi cadastrado", name))
}

func (s *Service) cascadeFailed(id, stage string, err error) error {
	s.logger.Error(fmt.Sprintf("Exclusão do pet %s falhou na etapa %s.", id, stage), err)
	return apperror.NewPartialCascadeError("pet", id, stage, err)
}

func validatePet(p domain.Pet) error {
	if strings.TrimSpace(p.Name) == "" {
		return apperror.NewValidationError("O nome do pet não pode ser vazio.")
	}
	if p.Age < 0 {
		return apperror.NewValidationError("A idade do pet não pode ser negativa.")
	}
	if p.SizeInCentimeters < 0 {
		return apperror.NewValidationError("O tamanho do pet não pode ser negativo.")
	}
	return nil
}
