package domain

import (
	"context"
	"time"
)

// --- Contratos de Persistência ---
//
// Cada backend (MongoDB, PostgreSQL, memória) implementa os quatro contratos.
// Falhas seguem a taxonomia de internal/errors: NotFoundError quando o
// documento não existe, ConflictError em violação de campo único e
// InternalError para o resto.

// ClientRepository persiste clientes.
type ClientRepository interface {
	Create(ctx context.Context, client Client) (Client, error)
	FindByID(ctx context.Context, id string) (Client, error)
	FindByCPF(ctx context.Context, cpf string) (Client, error)
	List(ctx context.Context, page Page) ([]Client, error)
	Update(ctx context.Context, client Client) (Client, error)
	Delete(ctx context.Context, id string) error
}

// PetRepository persiste pets.
type PetRepository interface {
	Create(ctx context.Context, pet Pet) (Pet, error)
	FindByID(ctx context.Context, id string) (Pet, error)
	FindByName(ctx context.Context, name string) (Pet, error)
	List(ctx context.Context, page Page) ([]Pet, error)
	ListByClient(ctx context.Context, clientID string) ([]Pet, error)
	Search(ctx context.Context, filter PetFilter) ([]Pet, error)
	Update(ctx context.Context, pet Pet) (Pet, error)
	Delete(ctx context.Context, id string) error
	DeleteByClient(ctx context.Context, clientID string) (int64, error)
}

// ServiceRepository persiste o catálogo de serviços.
type ServiceRepository interface {
	Create(ctx context.Context, service Service) (Service, error)
	FindByID(ctx context.Context, id string) (Service, error)
	FindByType(ctx context.Context, typeService string) (Service, error)
	List(ctx context.Context, page Page) ([]Service, error)
	ListByIDs(ctx context.Context, ids []string) ([]Service, error)
	ListByPriceRange(ctx context.Context, priceRange PriceRange) ([]Service, error)
	Update(ctx context.Context, service Service) (Service, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

// ScheduleRepository persiste agendamentos.
// ListByDateRange usa o intervalo semiaberto [start, end).
type ScheduleRepository interface {
	Create(ctx context.Context, schedule Schedule) (Schedule, error)
	FindByID(ctx context.Context, id string) (Schedule, error)
	List(ctx context.Context, page Page) ([]Schedule, error)
	ListByClient(ctx context.Context, clientID string) ([]Schedule, error)
	ListByDateRange(ctx context.Context, start, end time.Time) ([]Schedule, error)
	Update(ctx context.Context, schedule Schedule) (Schedule, error)
	Delete(ctx context.Context, id string) error
	DeleteByClient(ctx context.Context, clientID string) (int64, error)
	DeleteByPet(ctx context.Context, petID string) (int64, error)
	Count(ctx context.Context) (int64, error)
	CountByClient(ctx context.Context) ([]ClientScheduleTotal, error)
}

// Store agrupa os repositórios de um backend.
type Store struct {
	Clients   ClientRepository
	Pets      PetRepository
	Services  ServiceRepository
	Schedules ScheduleRepository
	// Close libera a conexão do backend.
	Close func(ctx context.Context) error
}
