package memrepo

import (
	"context"
	"fmt"

	"petshop/internal/domain"
	apperror "petshop/internal/errors"
	"petshop/internal/pkg/identifier"
)

var _ domain.ClientRepository = (*ClientRepository)(nil)

// ClientRepository guarda clientes em memória.
type ClientRepository struct {
	rows *table[domain.Client]
}

func NewClientRepository() *ClientRepository {
	return &ClientRepository{rows: newTable[domain.Client](nil)}
}

func (r *ClientRepository) Create(ctx context.Context, client domain.Client) (domain.Client, error) {
	if client.ID == "" {
		client.ID = identifier.New()
	}
	err := r.rows.insert(client.ID, client, func(c domain.Client) bool { return c.CPF == client.CPF })
	if err != nil {
		return domain.Client{}, apperror.NewConflictError(fmt.Sprintf("O Cliente com o cpf %s já foi cadastrado", client.CPF))
	}
	return client, nil
}

func (r *ClientRepository) FindByID(ctx context.Context, id string) (domain.Client, error) {
	c, ok := r.rows.get(id)
	if !ok {
		return domain.Client{}, apperror.NewNotFoundError(fmt.Sprintf("Cliente com o id %s não encontrado", id))
	}
	return c, nil
}

func (r *ClientRepository) FindByCPF(ctx context.Context, cpf string) (domain.Client, error) {
	c, ok := r.rows.first(func(c domain.Client) bool { return c.CPF == cpf })
	if !ok {
		return domain.Client{}, apperror.NewNotFoundError(fmt.Sprintf("Cliente com o cpf %s não encontrado", cpf))
	}
	return c, nil
}

func (r *ClientRepository) List(ctx context.Context, page domain.Page) ([]domain.Client, error) {
	return paginate(r.rows.find(nil), page), nil
}

func (r *ClientRepository) Update(ctx context.Context, client domain.Client) (domain.Client, error) {
	err := r.rows.replace(client.ID, client, func(c domain.Client) bool { return c.CPF == client.CPF })
	switch err {
	case errMissing:
		return domain.Client{}, apperror.NewNotFoundError(fmt.Sprintf("Cliente com o id %s não encontrado", client.ID))
	case errDuplicate:
		return domain.Client{}, apperror.NewConflictError(fmt.Sprintf("O Cliente com o cpf %s já foi cadastrado", client.CPF))
	}
	return client, nil
}

func (r *ClientRepository) Delete(ctx context.Context, id string) error {
	if !r.rows.remove(id) {
		return apperror.NewNotFoundError(fmt.Sprintf("Cliente com o id %s não encontrado", id))
	}
	return nil
}

func (r *ClientRepository) name(id string) (string, bool) {
	c, ok := r.rows.get(id)
	return c.Name, ok
}
