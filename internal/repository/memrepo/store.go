package memrepo

import (
	"context"

	"petshop/internal/domain"
)

// NewStore cria os quatro repositórios em memória.
// O repositório de agendamentos consulta os clientes para o relatório de totais.
func NewStore() domain.Store {
	clients := NewClientRepository()
	return domain.Store{
		Clients:   clients,
		Pets:      NewPetRepository(),
		Services:  NewServiceRepository(),
		Schedules: NewScheduleRepository(clients),
		Close:     func(context.Context) error { return nil },
	}
}
