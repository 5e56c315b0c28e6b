package pgrepo

import (
	"context"
	"fmt"

	"github.com/lib/pq"

	"petshop/internal/domain"
	apperror "petshop/internal/errors"
	"petshop/internal/pkg/identifier"
)

var _ domain.ServiceRepository = (*ServiceRepository)(nil)

// ServiceRepository persiste o catálogo na tabela services.
type ServiceRepository struct {
	rows table[domain.Service]
}

func serviceNotFound(id string) error {
	return apperror.NewNotFoundError(fmt.Sprintf("Serviço com o ID %s não foi encontrado", id))
}

func serviceConflict(typeService string) string {
	return fmt.Sprintf("Serviço %s já existe!", typeService)
}

func (r *ServiceRepository) Create(ctx context.Context, service domain.Service) (domain.Service, error) {
	if service.ID == "" {
		service.ID = identifier.New()
	}
	if err := r.rows.insert(ctx, service.ID, service, serviceConflict(service.TypeService)); err != nil {
		return domain.Service{}, err
	}
	return service, nil
}

func (r *ServiceRepository) FindByID(ctx context.Context, id string) (domain.Service, error) {
	s, ok, err := r.rows.findOne(ctx, `id = $1`, id)
	if err != nil {
		return domain.Service{}, err
	}
	if !ok {
		return domain.Service{}, serviceNotFound(id)
	}
	return s, nil
}

func (r *ServiceRepository) FindByType(ctx context.Context, typeService string) (domain.Service, error) {
	s, ok, err := r.rows.findOne(ctx, `doc->>'type_service' = $1`, typeService)
	if err != nil {
		return domain.Service{}, err
	}
	if !ok {
		return domain.Service{}, apperror.NewNotFoundError(fmt.Sprintf("Serviço %s não foi encontrado", typeService))
	}
	return s, nil
}

func (r *ServiceRepository) List(ctx context.Context, page domain.Page) ([]domain.Service, error) {
	return r.rows.find(ctx, `TRUE`, pageClause(1), page.Skip, page.Limit)
}

// ListByIDs devolve os serviços existentes na ordem dos IDs pedidos.
func (r *ServiceRepository) ListByIDs(ctx context.Context, ids []string) ([]domain.Service, error) {
	if len(ids) == 0 {
		return []domain.Service{}, nil
	}
	found, err := r.rows.find(ctx, `id = ANY($1)`, "", pq.Array(ids))
	if err != nil {
		return nil, err
	}

	byID := make(map[string]domain.Service, len(found))
	for _, s := range found {
		byID[s.ID] = s
	}
	out := make([]domain.Service, 0, len(found))
	for _, id := range ids {
		if s, ok := byID[id]; ok {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *ServiceRepository) ListByPriceRange(ctx context.Context, priceRange domain.PriceRange) ([]domain.Service, error) {
	where, args := priceWhere(priceRange)
	return r.rows.find(ctx, where, insertionOrder, args...)
}

// priceWhere traduz a faixa (Min, Max] para SQL sobre o campo price do documento.
func priceWhere(pr domain.PriceRange) (string, []interface{}) {
	if pr.Min == nil {
		return `(doc->>'price')::numeric <= $1`, []interface{}{pr.Max}
	}
	return `(doc->>'price')::numeric <= $1 AND (doc->>'price')::numeric > $2`, []interface{}{pr.Max, *pr.Min}
}

func (r *ServiceRepository) Update(ctx context.Context, service domain.Service) (domain.Service, error) {
	found, err := r.rows.replace(ctx, service.ID, service, serviceConflict(service.TypeService))
	if err != nil {
		return domain.Service{}, err
	}
	if !found {
		return domain.Service{}, serviceNotFound(service.ID)
	}
	return service, nil
}

func (r *ServiceRepository) Delete(ctx context.Context, id string) error {
	n, err := r.rows.deleteWhere(ctx, `id = $1`, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return serviceNotFound(id)
	}
	return nil
}

func (r *ServiceRepository) Count(ctx context.Context) (int64, error) {
	return r.rows.count(ctx)
}
