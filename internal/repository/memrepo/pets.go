package memrepo

import (
	"context"
	"fmt"
	"strings"

	"petshop/internal/domain"
	apperror "petshop/internal/errors"
	"petshop/internal/pkg/identifier"
)

var _ domain.PetRepository = (*PetRepository)(nil)

// PetRepository guarda pets em memória.
type PetRepository struct {
	rows *table[domain.Pet]
}

func NewPetRepository() *PetRepository {
	return &PetRepository{rows: newTable[domain.Pet](nil)}
}

func (r *PetRepository) Create(ctx context.Context, pet domain.Pet) (domain.Pet, error) {
	if pet.ID == "" {
		pet.ID = identifier.New()
	}
	if err := r.rows.insert(pet.ID, pet, func(p domain.Pet) bool { return p.Name == pet.Name }); err != nil {
		return domain.Pet{}, apperror.NewConflictError(fmt.Sprintf("Já existe um pet com o nome %s", pet.Name))
	}
	return pet, nil
}

func (r *PetRepository) FindByID(ctx context.Context, id string) (domain.Pet, error) {
	p, ok := r.rows.get(id)
	if !ok {
		return domain.Pet{}, apperror.NewNotFoundError(fmt.Sprintf("Pet com o id %s não encontrado", id))
	}
	return p, nil
}

func (r *PetRepository) FindByName(ctx context.Context, name string) (domain.Pet, error) {
	p, ok := r.rows.first(func(p domain.Pet) bool { return p.Name == name })
	if !ok {
		return domain.Pet{}, apperror.NewNotFoundError(fmt.Sprintf("Pet com o nome %s não encontrado", name))
	}
	return p, nil
}

func (r *PetRepository) List(ctx context.Context, page domain.Page) ([]domain.Pet, error) {
	return paginate(r.rows.find(nil), page), nil
}

func (r *PetRepository) ListByClient(ctx context.Context, clientID string) ([]domain.Pet, error) {
	return r.rows.find(func(p domain.Pet) bool { return p.ClientID == clientID }), nil
}

func (r *PetRepository) Search(ctx context.Context, filter domain.PetFilter) ([]domain.Pet, error) {
	term := strings.ToLower(filter.Name)
	found := r.rows.find(func(p domain.Pet) bool {
		if filter.ClientID != "" && p.ClientID != filter.ClientID {
			return false
		}
		return strings.Contains(strings.ToLower(p.Name), term)
	})
	return paginate(found, filter.Page), nil
}

func (r *PetRepository) Update(ctx context.Context, pet domain.Pet) (domain.Pet, error) {
	err := r.rows.replace(pet.ID, pet, func(p domain.Pet) bool { return p.Name == pet.Name })
	switch err {
	case errMissing:
		return domain.Pet{}, apperror.NewNotFoundError(fmt.Sprintf("Pet com o id %s não encontrado", pet.ID))
	case errDuplicate:
		return domain.Pet{}, apperror.NewConflictError(fmt.Sprintf("Já existe um pet com o nome %s", pet.Name))
	}
	return pet, nil
}

func (r *PetRepository) Delete(ctx context.Context, id string) error {
	if !r.rows.remove(id) {
		return apperror.NewNotFoundError(fmt.Sprintf("Pet com o id %s não encontrado", id))
	}
	return nil
}

func (r *PetRepository) DeleteByClient(ctx context.Context, clientID string) (int64, error) {
	return r.rows.removeWhere(func(p domain.Pet) bool { return p.ClientID == clientID }), nil
}
