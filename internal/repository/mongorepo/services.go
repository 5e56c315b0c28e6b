package mongorepo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"

	"petshop/internal/domain"
	apperror "petshop/internal/errors"
)

var _ domain.ServiceRepository = (*ServiceRepository)(nil)

// ServiceRepository persiste o catálogo na coleção "services".
type ServiceRepository struct {
	collection
}

func serviceNotFound(id string) error {
	return apperror.NewNotFoundError(fmt.Sprintf("Serviço com o ID %s não foi encontrado", id))
}

func serviceConflict(typeService string) string {
	return fmt.Sprintf("Serviço %s já existe!", typeService)
}

func servicesToDomain(docs []serviceDoc) []domain.Service {
	out := make([]domain.Service, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.toDomain())
	}
	return out
}

func (r *ServiceRepository) Create(ctx context.Context, service domain.Service) (domain.Service, error) {
	doc, err := toServiceDoc(service)
	if err != nil {
		return domain.Service{}, err
	}

	insCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	if _, err := r.coll.InsertOne(insCtx, doc); err != nil {
		return domain.Service{}, r.writeErr(err, serviceConflict(service.TypeService), "inserir serviço")
	}
	return doc.toDomain(), nil
}

func (r *ServiceRepository) FindByID(ctx context.Context, id string) (domain.Service, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return domain.Service{}, serviceNotFound(id)
	}
	doc, ok, err := findOne[serviceDoc](ctx, r.collection, bson.M{"_id": oid})
	if err != nil {
		return domain.Service{}, err
	}
	if !ok {
		return domain.Service{}, serviceNotFound(id)
	}
	return doc.toDomain(), nil
}

func (r *ServiceRepository) FindByType(ctx context.Context, typeService string) (domain.Service, error) {
	doc, ok, err := findOne[serviceDoc](ctx, r.collection, bson.M{"type_service": typeService})
	if err != nil {
		return domain.Service{}, err
	}
	if !ok {
		return domain.Service{}, apperror.NewNotFoundError(fmt.Sprintf("Serviço %s não foi encontrado", typeService))
	}
	return doc.toDomain(), nil
}

func (r *ServiceRepository) List(ctx context.Context, page domain.Page) ([]domain.Service, error) {
	docs, err := findMany[serviceDoc](ctx, r.collection, bson.M{}, pageOptions(page))
	if err != nil {
		return nil, err
	}
	return servicesToDomain(docs), nil
}

// ListByIDs devolve os serviços existentes na ordem dos IDs pedidos.
func (r *ServiceRepository) ListByIDs(ctx context.Context, ids []string) ([]domain.Service, error) {
	oids := make([]bson.ObjectID, 0, len(ids))
	for _, id := range ids {
		if oid, err := bson.ObjectIDFromHex(id); err == nil {
			oids = append(oids, oid)
		}
	}
	if len(oids) == 0 {
		return []domain.Service{}, nil
	}

	docs, err := findMany[serviceDoc](ctx, r.collection, bson.M{"_id": bson.M{"$in": oids}}, nil)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]domain.Service, len(docs))
	for _, d := range docs {
		byID[d.ID.Hex()] = d.toDomain()
	}
	out := make([]domain.Service, 0, len(docs))
	for _, id := range ids {
		if s, ok := byID[id]; ok {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *ServiceRepository) ListByPriceRange(ctx context.Context, priceRange domain.PriceRange) ([]domain.Service, error) {
	docs, err := findMany[serviceDoc](ctx, r.collection, priceFilter(priceRange), nil)
	if err != nil {
		return nil, err
	}
	return servicesToDomain(docs), nil
}

func (r *ServiceRepository) Update(ctx context.Context, service domain.Service) (domain.Service, error) {
	if service.ID == "" {
		return domain.Service{}, serviceNotFound(service.ID)
	}
	doc, err := toServiceDoc(service)
	if err != nil {
		return domain.Service{}, err
	}
	matched, err := r.replace(ctx, doc.ID, doc, serviceConflict(service.TypeService))
	if err != nil {
		return domain.Service{}, err
	}
	if !matched {
		return domain.Service{}, serviceNotFound(service.ID)
	}
	return doc.toDomain(), nil
}

func (r *ServiceRepository) Delete(ctx context.Context, id string) error {
	deleted, err := r.deleteOne(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return serviceNotFound(id)
	}
	return nil
}

func (r *ServiceRepository) Count(ctx context.Context) (int64, error) {
	return r.count(ctx, bson.M{})
}
