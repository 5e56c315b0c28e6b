// Package mongorepo implementa os repositórios sobre o MongoDB, o backend
// principal da API. Cada entidade vive numa coleção própria; a integridade
// entre coleções é garantida pela camada de serviço.
package mongorepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"petshop/internal/domain"
	apperror "petshop/internal/errors"
	"petshop/internal/pkg/logger"
)

const (
	clientCollection   = "client"
	petCollection      = "pet"
	serviceCollection  = "services"
	scheduleCollection = "schedule"
)

// collection concentra o que todos os repositórios Mongo compartilham.
type collection struct {
	coll    *mongo.Collection
	timeout time.Duration
	log     logger.Logger
}

func (c collection) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, c.timeout)
}

// writeErr traduz falhas de escrita: chave duplicada vira ConflictError.
func (c collection) writeErr(err error, conflictMsg, op string) error {
	if mongo.IsDuplicateKeyError(err) {
		return apperror.NewConflictError(conflictMsg)
	}
	c.log.Error(fmt.Sprintf("Falha no MongoDB ao %s (%s).", op, c.coll.Name()), err)
	return apperror.NewDBError(fmt.Sprintf("Falha ao %s", op), err)
}

func (c collection) readErr(err error, op string) error {
	c.log.Error(fmt.Sprintf("Falha no MongoDB ao %s (%s).", op, c.coll.Name()), err)
	return apperror.NewDBError(fmt.Sprintf("Falha ao %s", op), err)
}

// findOne decodifica o primeiro documento de filter; ok é false quando não há nenhum.
func findOne[D any](ctx context.Context, c collection, filter interface{}) (doc D, ok bool, err error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	err = c.coll.FindOne(ctx, filter).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return doc, false, nil
	}
	if err != nil {
		return doc, false, c.readErr(err, "buscar documento")
	}
	return doc, true, nil
}

// findMany decodifica todos os documentos de filter com as opções informadas.
func findMany[D any](ctx context.Context, c collection, filter interface{}, opts *options.FindOptionsBuilder) ([]D, error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	if opts == nil {
		opts = options.Find()
	}
	cursor, err := c.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, c.readErr(err, "listar documentos")
	}
	docs := make([]D, 0)
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, c.readErr(err, "decodificar documentos")
	}
	return docs, nil
}

func (c collection) replace(ctx context.Context, id bson.ObjectID, doc interface{}, conflictMsg string) (bool, error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	res, err := c.coll.ReplaceOne(ctx, bson.M{"_id": id}, doc)
	if err != nil {
		return false, c.writeErr(err, conflictMsg, "atualizar documento")
	}
	return res.MatchedCount > 0, nil
}

func (c collection) deleteOne(ctx context.Context, id string) (bool, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return false, nil
	}
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	res, err := c.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return false, c.writeErr(err, "", "remover documento")
	}
	return res.DeletedCount > 0, nil
}

func (c collection) deleteMany(ctx context.Context, filter interface{}) (int64, error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	res, err := c.coll.DeleteMany(ctx, filter)
	if err != nil {
		return 0, c.writeErr(err, "", "remover documentos")
	}
	return res.DeletedCount, nil
}

func (c collection) count(ctx context.Context, filter interface{}) (int64, error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	n, err := c.coll.CountDocuments(ctx, filter)
	if err != nil {
		return 0, c.readErr(err, "contar documentos")
	}
	return n, nil
}

func pageOptions(page domain.Page) *options.FindOptionsBuilder {
	return options.Find().
		SetSkip(int64(page.Skip)).
		SetLimit(int64(page.Limit)).
		SetSort(bson.D{{Key: "_id", Value: 1}})
}

// NewStore monta os repositórios sobre o banco dbName e garante os índices únicos.
func NewStore(ctx context.Context, client *mongo.Client, dbName string, timeout time.Duration, log logger.Logger) (domain.Store, error) {
	db := client.Database(dbName)
	newColl := func(name string) collection {
		return collection{coll: db.Collection(name), timeout: timeout, log: log}
	}

	clients := newColl(clientCollection)
	pets := newColl(petCollection)
	services := newColl(serviceCollection)
	schedules := newColl(scheduleCollection)

	if err := ensureIndexes(ctx, timeout, []indexSet{
		{clients, []mongo.IndexModel{
			{Keys: bson.D{{Key: "cpf", Value: 1}}, Options: options.Index().SetUnique(true)},
		}},
		{pets, []mongo.IndexModel{
			{Keys: bson.D{{Key: "name", Value: 1}}, Options: options.Index().SetUnique(true)},
			{Keys: bson.D{{Key: "client", Value: 1}}},
		}},
		{services, []mongo.IndexModel{
			{Keys: bson.D{{Key: "type_service", Value: 1}}, Options: options.Index().SetUnique(true)},
			{Keys: bson.D{{Key: "price", Value: 1}}},
		}},
		{schedules, []mongo.IndexModel{
			{Keys: bson.D{{Key: "client", Value: 1}}},
			{Keys: bson.D{{Key: "pet", Value: 1}}},
			{Keys: bson.D{{Key: "date_schedule", Value: 1}}},
		}},
	}); err != nil {
		return domain.Store{}, err
	}

	log.Info("Repositórios MongoDB prontos.", map[string]interface{}{"database": dbName})
	return domain.Store{
		Clients:   &ClientRepository{clients},
		Pets:      &PetRepository{pets},
		Services:  &ServiceRepository{services},
		Schedules: &ScheduleRepository{schedules},
		Close:     client.Disconnect,
	}, nil
}

type indexSet struct {
	c      collection
	models []mongo.IndexModel
}

func ensureIndexes(ctx context.Context, timeout time.Duration, sets []indexSet) error {
	for _, set := range sets {
		idxCtx, cancel := context.WithTimeout(ctx, timeout)
		_, err := set.c.coll.Indexes().CreateMany(idxCtx, set.models)
		cancel()
		if err != nil {
			return fmt.Errorf("falha ao criar índices em %s: %w", set.c.coll.Name(), err)
		}
	}
	return nil
}
