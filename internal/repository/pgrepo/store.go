package pgrepo

import (
	"context"
	"database/sql"
	"time"

	"petshop/internal/domain"
	"petshop/internal/pkg/logger"
)

// NewStore monta os repositórios sobre db. O schema deve estar migrado.
func NewStore(db *sql.DB, timeout time.Duration, log logger.Logger) domain.Store {
	return domain.Store{
		Clients:   &ClientRepository{rows: newTable[domain.Client](db, "clients", timeout, log)},
		Pets:      &PetRepository{rows: newTable[domain.Pet](db, "pets", timeout, log)},
		Services:  &ServiceRepository{rows: newTable[domain.Service](db, "services", timeout, log)},
		Schedules: &ScheduleRepository{rows: newTable[domain.Schedule](db, "schedules", timeout, log)},
		Close:     func(context.Context) error { return db.Close() },
	}
}
