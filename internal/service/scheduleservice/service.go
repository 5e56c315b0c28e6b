package scheduleservice

import (
	"context"
	"fmt"

	"petshop/internal/domain"
	apperror "petshop/internal/errors"
	"petshop/internal/pkg/identifier"
	"petshop/internal/pkg/logger"
)

// ScheduleRepository define o que o serviço de agendamentos espera da persistência.
type ScheduleRepository interface {
	Create(ctx context.Context, schedule domain.Schedule) (domain.Schedule, error)
	FindByID(ctx context.Context, id string) (domain.Schedule, error)
	List(ctx context.Context, page domain.Page) ([]domain.Schedule, error)
	Update(ctx context.Context, schedule domain.Schedule) (domain.Schedule, error)
	Delete(ctx context.Context, id string) error
}

type ClientFinder interface {
	FindByID(ctx context.Context, id string) (domain.Client, error)
}

type PetFinder interface {
	FindByID(ctx context.Context, id string) (domain.Pet, error)
}

type ServiceFinder interface {
	FindByID(ctx context.Context, id string) (domain.Service, error)
}

// Service implementa as regras de integridade dos agendamentos.
type Service struct {
	schedules ScheduleRepository
	clients   ClientFinder
	pets      PetFinder
	services  ServiceFinder
	logger    logger.Logger
}

func NewService(schedules ScheduleRepository, clients ClientFinder, pets PetFinder, services ServiceFinder, log logger.Logger) *Service {
	return &Service{schedules: schedules, clients: clients, pets: pets, services: services, logger: log}
}

// CreateSchedule grava o agendamento somente se cliente, pet e todos os
// serviços existirem e o pet pertencer ao cliente. Nada é gravado em caso de erro.
func (s *Service) CreateSchedule(ctx context.Context, schedule domain.Schedule) (domain.Schedule, error) {
	s.logger.Debug("Iniciando criação de agendamento no serviço.", map[string]interface{}{
		"client_id": schedule.ClientID,
		"pet_id":    schedule.PetID,
	})

	schedule.ID = ""
	if err := identifier.Require("client_id", schedule.ClientID); err != nil {
		return domain.Schedule{}, err
	}
	if err := identifier.Require("pet_id", schedule.PetID); err != nil {
		return domain.Schedule{}, err
	}
	if err := requireServiceIDs(schedule.ServiceIDs); err != nil {
		return domain.Schedule{}, err
	}
	if schedule.DateSchedule.IsZero() {
		return domain.Schedule{}, apperror.NewValidationError("A data do agendamento é obrigatória.")
	}
	schedule.DateSchedule = schedule.DateSchedule.UTC()

	if _, err := s.clients.FindByID(ctx, schedule.ClientID); err != nil {
		return domain.Schedule{}, err
	}
	if err := s.checkPetOwner(ctx, schedule.PetID, schedule.ClientID); err != nil {
		return domain.Schedule{}, err
	}
	if err := s.checkServices(ctx, schedule.ServiceIDs); err != nil {
		return domain.Schedule{}, err
	}

	created, err := s.schedules.Create(ctx, schedule)
	if err != nil {
		s.logger.Error("Falha ao criar agendamento no repositório.", err)
		return domain.Schedule{}, err
	}

	s.logger.Info("Agendamento criado com sucesso.", map[string]interface{}{"id": created.ID})
	return created, nil
}

func (s *Service) GetScheduleByID(ctx context.Context, id string) (domain.Schedule, error) {
	if err := identifier.Require("schedule_id", id); err != nil {
		return domain.Schedule{}, err
	}
	return s.schedules.FindByID(ctx, id)
}

func (s *Service) ListSchedules(ctx context.Context, page domain.Page) ([]domain.Schedule, error) {
	if err := page.Validate(); err != nil {
		return nil, apperror.NewValidationError(err.Error())
	}
	schedules, err := s.schedules.List(ctx, page)
	if err != nil {
		s.logger.Error("Falha ao listar agendamentos no repositório.", err)
		return nil, err
	}
	return schedules, nil
}

// UpdateSchedule aplica o patch. O cliente do agendamento não muda; um novo
// pet precisa pertencer a ele e os novos serviços precisam existir.
func (s *Service) UpdateSchedule(ctx context.Context, id string, patch domain.SchedulePatch) (domain.Schedule, error) {
	if err := identifier.Require("schedule_id", id); err != nil {
		return domain.Schedule{}, err
	}

	current, err := s.schedules.FindByID(ctx, id)
	if err != nil {
		return domain.Schedule{}, err
	}
	if patch.IsEmpty() {
		return current, nil
	}

	if patch.PetID != nil && *patch.PetID != current.PetID {
		if err := identifier.Require("pet_id", *patch.PetID); err != nil {
			return domain.Schedule{}, err
		}
		if err := s.checkPetOwner(ctx, *patch.PetID, current.ClientID); err != nil {
			return domain.Schedule{}, err
		}
	}
	if patch.ServiceIDs != nil {
		if err := requireServiceIDs(patch.ServiceIDs); err != nil {
			return domain.Schedule{}, err
		}
		if err := s.checkServices(ctx, patch.ServiceIDs); err != nil {
			return domain.Schedule{}, err
		}
	}
	if patch.DateSchedule != nil && patch.DateSchedule.IsZero() {
		return domain.Schedule{}, apperror.NewValidationError("A data do agendamento é obrigatória.")
	}

	saved, err := s.schedules.Update(ctx, patch.Apply(current))
	if err != nil {
		s.logger.Error("Falha ao atualizar agendamento no repositório.", err)
		return domain.Schedule{}, err
	}
	s.logger.Info("Agendamento atualizado com sucesso.", map[string]interface{}{"id": id})
	return saved, nil
}

func (s *Service) DeleteSchedule(ctx context.Context, id string) error {
	if err := identifier.Require("schedule_id", id); err != nil {
		return err
	}
	if err := s.schedules.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("Agendamento deletado com sucesso.", map[string]interface{}{"id": id})
	return nil
}

func (s *Service) checkPetOwner(ctx context.Context, petID, clientID string) error {
	pet, err := s.pets.FindByID(ctx, petID)
	if err != nil {
		return err
	}
	if pet.ClientID != clientID {
		s.logger.Warn("Pet não pertence ao cliente do agendamento.", map[string]interface{}{
			"pet_id":    petID,
			"client_id": clientID,
		})
		return apperror.NewOwnershipMismatchError(petID, clientID)
	}
	return nil
}

// checkServices para no primeiro serviço inexistente.
func (s *Service) checkServices(ctx context.Context, ids []string) error {
	for _, id := range ids {
		if _, err := s.services.FindByID(ctx, id); err != nil {
			if apperror.IsNotFound(err) {
				return apperror.NewNotFoundError(fmt.Sprintf("Serviço com o ID %s não foi encontrado", id))
			}
			return err
		}
	}
	return nil
}

func requireServiceIDs(ids []string) error {
	if len(ids) == 0 {
		return apperror.NewValidationError("O agendamento precisa de ao menos um serviço.")
	}
	for _, id := range ids {
		if err := identifier.Require("service_id", id); err != nil {
			return err
		}
	}
	return nil
}
