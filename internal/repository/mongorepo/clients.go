package mongorepo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"

	"petshop/internal/domain"
	apperror "petshop/internal/errors"
)

var _ domain.ClientRepository = (*ClientRepository)(nil)

// ClientRepository persiste clientes na coleção "client".
type ClientRepository struct {
	collection
}

func clientNotFound(id string) error {
	return apperror.NewNotFoundError(fmt.Sprintf("Cliente com o id %s não encontrado", id))
}

func (r *ClientRepository) Create(ctx context.Context, client domain.Client) (domain.Client, error) {
	doc, err := toClientDoc(client)
	if err != nil {
		return domain.Client{}, err
	}

	insCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	if _, err := r.coll.InsertOne(insCtx, doc); err != nil {
		return domain.Client{}, r.writeErr(err, fmt.Sprintf("O Cliente com o cpf %s já foi cadastrado", client.CPF), "inserir cliente")
	}
	return doc.toDomain(), nil
}

func (r *ClientRepository) FindByID(ctx context.Context, id string) (domain.Client, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return domain.Client{}, clientNotFound(id)
	}
	doc, ok, err := findOne[clientDoc](ctx, r.collection, bson.M{"_id": oid})
	if err != nil {
		return domain.Client{}, err
	}
	if !ok {
		return domain.Client{}, clientNotFound(id)
	}
	return doc.toDomain(), nil
}

func (r *ClientRepository) FindByCPF(ctx context.Context, cpf string) (domain.Client, error) {
	doc, ok, err := findOne[clientDoc](ctx, r.collection, bson.M{"cpf": cpf})
	if err != nil {
		return domain.Client{}, err
	}
	if !ok {
		return domain.Client{}, apperror.NewNotFoundError(fmt.Sprintf("Cliente com o cpf %s não encontrado", cpf))
	}
	return doc.toDomain(), nil
}

func (r *ClientRepository) List(ctx context.Context, page domain.Page) ([]domain.Client, error) {
	docs, err := findMany[clientDoc](ctx, r.collection, bson.M{}, pageOptions(page))
	if err != nil {
		return nil, err
	}
	out := make([]domain.Client, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.toDomain())
	}
	return out, nil
}

func (r *ClientRepository) Update(ctx context.Context, client domain.Client) (domain.Client, error) {
	if client.ID == "" {
		return domain.Client{}, clientNotFound(client.ID)
	}
	doc, err := toClientDoc(client)
	if err != nil {
		return domain.Client{}, err
	}
	matched, err := r.replace(ctx, doc.ID, doc, fmt.Sprintf("O Cliente com o cpf %s já foi cadastrado", client.CPF))
	if err != nil {
		return domain.Client{}, err
	}
	if !matched {
		return domain.Client{}, clientNotFound(client.ID)
	}
	return doc.toDomain(), nil
}

func (r *ClientRepository) Delete(ctx context.Context, id string) error {
	deleted, err := r.deleteOne(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return clientNotFound(id)
	}
	return nil
}
