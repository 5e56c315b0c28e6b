package pgrepo

import (
	"context"
	"fmt"

	"petshop/internal/domain"
	apperror "petshop/internal/errors"
	"petshop/internal/pkg/identifier"
)

var _ domain.ClientRepository = (*ClientRepository)(nil)

// ClientRepository persiste clientes na tabela clients.
type ClientRepository struct {
	rows table[domain.Client]
}

func clientNotFound(id string) error {
	return apperror.NewNotFoundError(fmt.Sprintf("Cliente com o id %s não encontrado", id))
}

func cpfConflict(cpf string) string {
	return fmt.Sprintf("O Cliente com o cpf %s já foi cadastrado", cpf)
}

func (r *ClientRepository) Create(ctx context.Context, client domain.Client) (domain.Client, error) {
	if client.ID == "" {
		client.ID = identifier.New()
	}
	if err := r.rows.insert(ctx, client.ID, client, cpfConflict(client.CPF)); err != nil {
		return domain.Client{}, err
	}
	return client, nil
}

func (r *ClientRepository) FindByID(ctx context.Context, id string) (domain.Client, error) {
	c, ok, err := r.rows.findOne(ctx, `id = $1`, id)
	if err != nil {
		return domain.Client{}, err
	}
	if !ok {
		return domain.Client{}, clientNotFound(id)
	}
	return c, nil
}

func (r *ClientRepository) FindByCPF(ctx context.Context, cpf string) (domain.Client, error) {
	c, ok, err := r.rows.findOne(ctx, `doc->>'cpf' = $1`, cpf)
	if err != nil {
		return domain.Client{}, err
	}
	if !ok {
		return domain.Client{}, apperror.NewNotFoundError(fmt.Sprintf("Cliente com o cpf %s não encontrado", cpf))
	}
	return c, nil
}

func (r *ClientRepository) List(ctx context.Context, page domain.Page) ([]domain.Client, error) {
	return r.rows.find(ctx, `TRUE`, pageClause(1), page.Skip, page.Limit)
}

func (r *ClientRepository) Update(ctx context.Context, client domain.Client) (domain.Client, error) {
	found, err := r.rows.replace(ctx, client.ID, client, cpfConflict(client.CPF))
	if err != nil {
		return domain.Client{}, err
	}
	if !found {
		return domain.Client{}, clientNotFound(client.ID)
	}
	return client, nil
}

func (r *ClientRepository) Delete(ctx context.Context, id string) error {
	n, err := r.rows.deleteWhere(ctx, `id = $1`, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return clientNotFound(id)
	}
	return nil
}
