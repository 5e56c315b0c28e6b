// Package repository escolhe o backend de persistência a partir da string de conexão.
package repository

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"petshop/internal/domain"
	"petshop/internal/pkg/database"
	"petshop/internal/pkg/logger"
	"petshop/internal/repository/memrepo"
	"petshop/internal/repository/mongorepo"
	"petshop/internal/repository/pgrepo"
)

// Options configura a abertura do backend.
type Options struct {
	URL          string
	DatabaseName string // banco do MongoDB
	Timeout      time.Duration
	AutoMigrate  bool // aplica as migrações do PostgreSQL na abertura
}

// Backend identifica o tipo de armazenamento de uma URL.
type Backend string

const (
	BackendMongo    Backend = "mongodb"
	BackendPostgres Backend = "postgres"
	BackendMemory   Backend = "memory"
)

// BackendFor devolve o backend correspondente ao esquema da URL.
func BackendFor(rawURL string) (Backend, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("DATABASE_URL inválida: %w", err)
	}
	switch strings.ToLower(u.Scheme) {
	case "mongodb", "mongodb+srv":
		return BackendMongo, nil
	case "postgres", "postgresql":
		return BackendPostgres, nil
	case "memory":
		return BackendMemory, nil
	}
	return "", fmt.Errorf("esquema '%s' não suportado em DATABASE_URL (use mongodb, postgres ou memory)", u.Scheme)
}

// Open conecta ao backend indicado por opts.URL e devolve os repositórios.
func Open(ctx context.Context, opts Options, log logger.Logger) (domain.Store, error) {
	backend, err := BackendFor(opts.URL)
	if err != nil {
		return domain.Store{}, err
	}

	switch backend {
	case BackendMongo:
		client, err := database.NewMongoClient(ctx, opts.URL, log)
		if err != nil {
			return domain.Store{}, err
		}
		store, err := mongorepo.NewStore(ctx, client, opts.DatabaseName, opts.Timeout, log)
		if err != nil {
			_ = client.Disconnect(context.Background())
			return domain.Store{}, err
		}
		return store, nil

	case BackendPostgres:
		db, err := database.NewPostgresDB(ctx, opts.URL, log)
		if err != nil {
			return domain.Store{}, err
		}
		if opts.AutoMigrate {
			if err := database.RunMigrations(db, "up"); err != nil {
				db.Close()
				return domain.Store{}, err
			}
			log.Info("Migrações aplicadas.", nil)
		}
		return pgrepo.NewStore(db, opts.Timeout, log), nil
	}

	log.Warn("Usando armazenamento em memória: os dados somem ao reiniciar.", nil)
	return memrepo.NewStore(), nil
}
