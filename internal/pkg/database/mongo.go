package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"petshop/internal/pkg/logger"
)

// NewMongoClient conecta ao MongoDB e confirma o acesso com um ping.
// O chamador é responsável por Disconnect.
func NewMongoClient(ctx context.Context, uri string, log logger.Logger) (*mongo.Client, error) {
	opts := options.Client().
		ApplyURI(uri).
		SetMaxPoolSize(25).
		SetMaxConnIdleTime(2 * time.Minute)

	client, err := mongo.Connect(opts)
	if err != nil {
		return nil, fmt.Errorf("falha ao abrir a conexão com o MongoDB: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("falha ao realizar o ping inicial no MongoDB: %w", err)
	}

	log.Info("Conexão com o MongoDB pronta.", map[string]interface{}{"max_pool_size": 25})
	return client, nil
}
