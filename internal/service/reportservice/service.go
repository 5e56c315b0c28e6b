// Package reportservice monta as visões compostas e os relatórios da API.
// Nada é guardado entre chamadas: cada relatório é recalculado a partir do
// conteúdo atual dos repositórios.
package reportservice

import (
	"context"
	"time"

	"petshop/internal/domain"
	apperror "petshop/internal/errors"
	"petshop/internal/pkg/identifier"
	"petshop/internal/pkg/logger"
)

type ClientFinder interface {
	FindByID(ctx context.Context, id string) (domain.Client, error)
}

type PetFinder interface {
	FindByID(ctx context.Context, id string) (domain.Pet, error)
}

// ServiceReader cobre as leituras do catálogo usadas nos relatórios.
type ServiceReader interface {
	ListByIDs(ctx context.Context, ids []string) ([]domain.Service, error)
	ListByPriceRange(ctx context.Context, priceRange domain.PriceRange) ([]domain.Service, error)
	Count(ctx context.Context) (int64, error)
}

// ScheduleReader cobre as leituras de agendamentos usadas nos relatórios.
type ScheduleReader interface {
	FindByID(ctx context.Context, id string) (domain.Schedule, error)
	ListByClient(ctx context.Context, clientID string) ([]domain.Schedule, error)
	ListByDateRange(ctx context.Context, start, end time.Time) ([]domain.Schedule, error)
	Count(ctx context.Context) (int64, error)
	CountByClient(ctx context.Context) ([]domain.ClientScheduleTotal, error)
}

type Service struct {
	clients   ClientFinder
	pets      PetFinder
	services  ServiceReader
	schedules ScheduleReader
	logger    logger.Logger
}

func NewService(clients ClientFinder, pets PetFinder, services ServiceReader, schedules ScheduleReader, log logger.Logger) *Service {
	return &Service{clients: clients, pets: pets, services: services, schedules: schedules, logger: log}
}

// ScheduleDetail resolve cliente, pet e serviços de um agendamento.
// Cliente ou pet ausentes são NotFound; serviços removidos do catálogo são omitidos.
func (s *Service) ScheduleDetail(ctx context.Context, id string) (domain.ScheduleDetail, error) {
	if err := identifier.Require("schedule_id", id); err != nil {
		return domain.ScheduleDetail{}, err
	}

	schedule, err := s.schedules.FindByID(ctx, id)
	if err != nil {
		return domain.ScheduleDetail{}, err
	}
	client, err := s.clients.FindByID(ctx, schedule.ClientID)
	if err != nil {
		return domain.ScheduleDetail{}, err
	}
	pet, err := s.pets.FindByID(ctx, schedule.PetID)
	if err != nil {
		return domain.ScheduleDetail{}, err
	}
	return s.compose(ctx, schedule, client, pet)
}

// ClientSchedules devolve a visão detalhada de todos os agendamentos do cliente.
// Agendamentos cujo pet já não existe são ignorados e registrados no log.
func (s *Service) ClientSchedules(ctx context.Context, clientID string) ([]domain.ScheduleDetail, error) {
	if err := identifier.Require("client_id", clientID); err != nil {
		return nil, err
	}

	client, err := s.clients.FindByID(ctx, clientID)
	if err != nil {
		return nil, err
	}
	schedules, err := s.schedules.ListByClient(ctx, clientID)
	if err != nil {
		s.logger.Error("Falha ao listar agendamentos do cliente.", err)
		return nil, err
	}

	details := make([]domain.ScheduleDetail, 0, len(schedules))
	for _, schedule := range schedules {
		pet, err := s.pets.FindByID(ctx, schedule.PetID)
		if apperror.IsNotFound(err) {
			s.logger.Warn("Pet do agendamento não encontrado, agendamento ignorado.", map[string]interface{}{
				"schedule_id": schedule.ID,
				"pet_id":      schedule.PetID,
			})
			continue
		}
		if err != nil {
			return nil, err
		}

		detail, err := s.compose(ctx, schedule, client, pet)
		if err != nil {
			return nil, err
		}
		details = append(details, detail)
	}
	return details, nil
}

// ClientTotals conta os agendamentos por cliente, do maior para o menor total.
// A ordem entre clientes empatados depende do backend.
func (s *Service) ClientTotals(ctx context.Context) ([]domain.ClientScheduleTotal, error) {
	totals, err := s.schedules.CountByClient(ctx)
	if err != nil {
		s.logger.Error("Falha ao agrupar agendamentos por cliente.", err)
		return nil, err
	}
	return totals, nil
}

// ServicesByPriceBand filtra o catálogo pela faixa de preço informada.
func (s *Service) ServicesByPriceBand(ctx context.Context, category string) ([]domain.Service, error) {
	band, err := domain.ParsePriceBand(category)
	if err != nil {
		return nil, apperror.NewValidationError(err.Error())
	}
	priceRange, err := band.Range()
	if err != nil {
		return nil, apperror.NewValidationError(err.Error())
	}

	services, err := s.services.ListByPriceRange(ctx, priceRange)
	if err != nil {
		s.logger.Error("Falha ao filtrar serviços por faixa de preço.", err)
		return nil, err
	}
	s.logger.Debug("Serviços filtrados por faixa de preço.", map[string]interface{}{
		"category": string(band),
		"total":    len(services),
	})
	return services, nil
}

// SchedulesByMonth devolve os agendamentos com data em [início do mês, início do mês seguinte).
func (s *Service) SchedulesByMonth(ctx context.Context, month, year int) ([]domain.Schedule, error) {
	start, end, err := domain.MonthRange(month, year)
	if err != nil {
		return nil, apperror.NewValidationError(err.Error())
	}

	schedules, err := s.schedules.ListByDateRange(ctx, start, end)
	if err != nil {
		s.logger.Error("Falha ao listar agendamentos do mês.", err)
		return nil, err
	}
	return schedules, nil
}

func (s *Service) CountSchedules(ctx context.Context) (domain.ScheduleCount, error) {
	total, err := s.schedules.Count(ctx)
	if err != nil {
		return domain.ScheduleCount{}, err
	}
	return domain.ScheduleCount{TotalSchedules: total}, nil
}

func (s *Service) CountServices(ctx context.Context) (domain.ServiceCount, error) {
	total, err := s.services.Count(ctx)
	if err != nil {
		return domain.ServiceCount{}, err
	}
	return domain.ServiceCount{TotalServices: total}, nil
}

// compose monta a visão detalhada mantendo a ordem dos serviços do agendamento.
func (s *Service) compose(ctx context.Context, schedule domain.Schedule, client domain.Client, pet domain.Pet) (domain.ScheduleDetail, error) {
	found, err := s.services.ListByIDs(ctx, schedule.ServiceIDs)
	if err != nil {
		s.logger.Error("Falha ao buscar serviços do agendamento.", err)
		return domain.ScheduleDetail{}, err
	}

	byID := make(map[string]domain.Service, len(found))
	for _, svc := range found {
		byID[svc.ID] = svc
	}

	services := make([]domain.Service, 0, len(schedule.ServiceIDs))
	for _, id := range schedule.ServiceIDs {
		svc, ok := byID[id]
		if !ok {
			s.logger.Warn("Serviço do agendamento não encontrado, item ignorado.", map[string]interface{}{
				"schedule_id": schedule.ID,
				"service_id":  id,
			})
			continue
		}
		services = append(services, svc)
	}

	return domain.ScheduleDetail{
		ID:           schedule.ID,
		DateSchedule: schedule.DateSchedule.UTC().Format(time.RFC3339),
		Client:       client,
		Pet:          pet,
		Services:     services,
	}, nil
}
