package memrepo

import (
	"context"
	"fmt"

	"petshop/internal/domain"
	apperror "petshop/internal/errors"
	"petshop/internal/pkg/identifier"
)

var _ domain.ServiceRepository = (*ServiceRepository)(nil)

// ServiceRepository guarda o catálogo de serviços em memória.
type ServiceRepository struct {
	rows *table[domain.Service]
}

func NewServiceRepository() *ServiceRepository {
	return &ServiceRepository{rows: newTable[domain.Service](nil)}
}

func (r *ServiceRepository) Create(ctx context.Context, service domain.Service) (domain.Service, error) {
	if service.ID == "" {
		service.ID = identifier.New()
	}
	err := r.rows.insert(service.ID, service, func(s domain.Service) bool { return s.TypeService == service.TypeService })
	if err != nil {
		return domain.Service{}, apperror.NewConflictError(fmt.Sprintf("Serviço %s já existe!", service.TypeService))
	}
	return service, nil
}

func (r *ServiceRepository) FindByID(ctx context.Context, id string) (domain.Service, error) {
	s, ok := r.rows.get(id)
	if !ok {
		return domain.Service{}, apperror.NewNotFoundError(fmt.Sprintf("Serviço com o ID %s não foi encontrado", id))
	}
	return s, nil
}

func (r *ServiceRepository) FindByType(ctx context.Context, typeService string) (domain.Service, error) {
	s, ok := r.rows.first(func(s domain.Service) bool { return s.TypeService == typeService })
	if !ok {
		return domain.Service{}, apperror.NewNotFoundError(fmt.Sprintf("Serviço %s não foi encontrado", typeService))
	}
	return s, nil
}

func (r *ServiceRepository) List(ctx context.Context, page domain.Page) ([]domain.Service, error) {
	return paginate(r.rows.find(nil), page), nil
}

// ListByIDs devolve os serviços existentes; IDs ausentes são ignorados.
func (r *ServiceRepository) ListByIDs(ctx context.Context, ids []string) ([]domain.Service, error) {
	out := make([]domain.Service, 0, len(ids))
	for _, id := range ids {
		if s, ok := r.rows.get(id); ok {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *ServiceRepository) ListByPriceRange(ctx context.Context, priceRange domain.PriceRange) ([]domain.Service, error) {
	return r.rows.find(func(s domain.Service) bool { return priceRange.Contains(s.Price) }), nil
}

func (r *ServiceRepository) Update(ctx context.Context, service domain.Service) (domain.Service, error) {
	err := r.rows.replace(service.ID, service, func(s domain.Service) bool { return s.TypeService == service.TypeService })
	switch err {
	case errMissing:
		return domain.Service{}, apperror.NewNotFoundError(fmt.Sprintf("Serviço com o ID %s não foi encontrado", service.ID))
	case errDuplicate:
		return domain.Service{}, apperror.NewConflictError(fmt.Sprintf("Serviço %s já existe!", service.TypeService))
	}
	return service, nil
}

func (r *ServiceRepository) Delete(ctx context.Context, id string) error {
	if !r.rows.remove(id) {
		return apperror.NewNotFoundError(fmt.Sprintf("Serviço com o ID %s não foi encontrado", id))
	}
	return nil
}

func (r *ServiceRepository) Count(ctx context.Context) (int64, error) {
	return r.rows.count(), nil
}
