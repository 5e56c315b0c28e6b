package mongorepo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"

	"petshop/internal/domain"
	apperror "petshop/internal/errors"
)

var _ domain.PetRepository = (*PetRepository)(nil)

// PetRepository persiste pets na coleção "pet".
type PetRepository struct {
	collection
}

func petNotFound(id string) error {
	return apperror.NewNotFoundError(fmt.Sprintf("Pet com o id %s não encontrado", id))
}

func petConflict(name string) string {
	return fmt.Sprintf("Já existe um pet com o nome %s", name)
}

func petsToDomain(docs []petDoc) []domain.Pet {
	out := make([]domain.Pet, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.toDomain())
	}
	return out
}

func (r *PetRepository) Create(ctx context.Context, pet domain.Pet) (domain.Pet, error) {
	doc, err := toPetDoc(pet)
	if err != nil {
		return domain.Pet{}, err
	}

	insCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	if _, err := r.coll.InsertOne(insCtx, doc); err != nil {
		return domain.Pet{}, r.writeErr(err, petConflict(pet.Name), "inserir pet")
	}
	return doc.toDomain(), nil
}

func (r *PetRepository) FindByID(ctx context.Context, id string) (domain.Pet, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return domain.Pet{}, petNotFound(id)
	}
	doc, ok, err := findOne[petDoc](ctx, r.collection, bson.M{"_id": oid})
	if err != nil {
		return domain.Pet{}, err
	}
	if !ok {
		return domain.Pet{}, petNotFound(id)
	}
	return doc.toDomain(), nil
}

func (r *PetRepository) FindByName(ctx context.Context, name string) (domain.Pet, error) {
	doc, ok, err := findOne[petDoc](ctx, r.collection, bson.M{"name": name})
	if err != nil {
		return domain.Pet{}, err
	}
	if !ok {
		return domain.Pet{}, apperror.NewNotFoundError(fmt.Sprintf("Pet com o nome %s não encontrado", name))
	}
	return doc.toDomain(), nil
}

func (r *PetRepository) List(ctx context.Context, page domain.Page) ([]domain.Pet, error) {
	docs, err := findMany[petDoc](ctx, r.collection, bson.M{}, pageOptions(page))
	if err != nil {
		return nil, err
	}
	return petsToDomain(docs), nil
}

func (r *PetRepository) ListByClient(ctx context.Context, clientID string) ([]domain.Pet, error) {
	owner, err := bson.ObjectIDFromHex(clientID)
	if err != nil {
		return []domain.Pet{}, nil
	}
	docs, err := findMany[petDoc](ctx, r.collection, bson.M{"client": owner}, nil)
	if err != nil {
		return nil, err
	}
	return petsToDomain(docs), nil
}

func (r *PetRepository) Search(ctx context.Context, filter domain.PetFilter) ([]domain.Pet, error) {
	query := bson.M{"name": nameContains(filter.Name)}
	if filter.ClientID != "" {
		owner, err := bson.ObjectIDFromHex(filter.ClientID)
		if err != nil {
			return []domain.Pet{}, nil
		}
		query["client"] = owner
	}
	docs, err := findMany[petDoc](ctx, r.collection, query, pageOptions(filter.Page))
	if err != nil {
		return nil, err
	}
	return petsToDomain(docs), nil
}

func (r *PetRepository) Update(ctx context.Context, pet domain.Pet) (domain.Pet, error) {
	if pet.ID == "" {
		return domain.Pet{}, petNotFound(pet.ID)
	}
	doc, err := toPetDoc(pet)
	if err != nil {
		return domain.Pet{}, err
	}
	matched, err := r.replace(ctx, doc.ID, doc, petConflict(pet.Name))
	if err != nil {
		return domain.Pet{}, err
	}
	if !matched {
		return domain.Pet{}, petNotFound(pet.ID)
	}
	return doc.toDomain(), nil
}

func (r *PetRepository) Delete(ctx context.Context, id string) error {
	deleted, err := r.deleteOne(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return petNotFound(id)
	}
	return nil
}

func (r *PetRepository) DeleteByClient(ctx context.Context, clientID string) (int64, error) {
	owner, err := bson.ObjectIDFromHex(clientID)
	if err != nil {
		return 0, nil
	}
	return r.deleteMany(ctx, bson.M{"client": owner})
}
