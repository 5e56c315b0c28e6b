package pgrepo

import (
	"context"
	"fmt"

	"petshop/internal/domain"
	apperror "petshop/internal/errors"
	"petshop/internal/pkg/identifier"
)

var _ domain.PetRepository = (*PetRepository)(nil)

// PetRepository persiste pets na tabela pets.
type PetRepository struct {
	rows table[domain.Pet]
}

func petNotFound(id string) error {
	return apperror.NewNotFoundError(fmt.Sprintf("Pet com o id %s não encontrado", id))
}

func petConflict(name string) string {
	return fmt.Sprintf("Já existe um pet com o nome %s", name)
}

func (r *PetRepository) Create(ctx context.Context, pet domain.Pet) (domain.Pet, error) {
	if pet.ID == "" {
		pet.ID = identifier.New()
	}
	if err := r.rows.insert(ctx, pet.ID, pet, petConflict(pet.Name)); err != nil {
		return domain.Pet{}, err
	}
	return pet, nil
}

func (r *PetRepository) FindByID(ctx context.Context, id string) (domain.Pet, error) {
	p, ok, err := r.rows.findOne(ctx, `id = $1`, id)
	if err != nil {
		return domain.Pet{}, err
	}
	if !ok {
		return domain.Pet{}, petNotFound(id)
	}
	return p, nil
}

func (r *PetRepository) FindByName(ctx context.Context, name string) (domain.Pet, error) {
	p, ok, err := r.rows.findOne(ctx, `doc->>'name' = $1`, name)
	if err != nil {
		return domain.Pet{}, err
	}
	if !ok {
		return domain.Pet{}, apperror.NewNotFoundError(fmt.Sprintf("Pet com o nome %s não encontrado", name))
	}
	return p, nil
}

func (r *PetRepository) List(ctx context.Context, page domain.Page) ([]domain.Pet, error) {
	return r.rows.find(ctx, `TRUE`, pageClause(1), page.Skip, page.Limit)
}

func (r *PetRepository) ListByClient(ctx context.Context, clientID string) ([]domain.Pet, error) {
	return r.rows.find(ctx, `doc->>'client_id' = $1`, insertionOrder, clientID)
}

func (r *PetRepository) Search(ctx context.Context, filter domain.PetFilter) ([]domain.Pet, error) {
	pattern := "%" + escapeLike(filter.Name) + "%"
	if filter.ClientID == "" {
		return r.rows.find(ctx, `doc->>'name' ILIKE $1 ESCAPE '\'`, pageClause(2),
			pattern, filter.Page.Skip, filter.Page.Limit)
	}
	return r.rows.find(ctx, `doc->>'name' ILIKE $1 ESCAPE '\' AND doc->>'client_id' = $2`, pageClause(3),
		pattern, filter.ClientID, filter.Page.Skip, filter.Page.Limit)
}

func (r *PetRepository) Update(ctx context.Context, pet domain.Pet) (domain.Pet, error) {
	found, err := r.rows.replace(ctx, pet.ID, pet, petConflict(pet.Name))
	if err != nil {
		return domain.Pet{}, err
	}
	if !found {
		return domain.Pet{}, petNotFound(pet.ID)
	}
	return pet, nil
}

func (r *PetRepository) Delete(ctx context.Context, id string) error {
	n, err := r.rows.deleteWhere(ctx, `id = $1`, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return petNotFound(id)
	}
	return nil
}

func (r *PetRepository) DeleteByClient(ctx context.Context, clientID string) (int64, error) {
	return r.rows.deleteWhere(ctx, `doc->>'client_id' = $1`, clientID)
}
