package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/joho/godotenv"

	"petshop/config"
	"petshop/internal/pkg/database"
	"petshop/internal/pkg/logger"
	"petshop/internal/repository"
)

// Aplica as migrações embutidas do backend PostgreSQL.
// Uso: migrate [up|down|status|version|redo|reset] [args]
func main() {
	_ = godotenv.Load()
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.NewLogger("info").Fatal("Configuração inválida.", err)
	}
	log := logger.NewLogger(cfg.LogLevel)

	backend, err := repository.BackendFor(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("DATABASE_URL inválida.", err)
	}
	if backend != repository.BackendPostgres {
		log.Info("Backend sem migrações SQL, nada a fazer.", map[string]interface{}{"backend": string(backend)})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db, err := database.NewPostgresDB(ctx, cfg.DatabaseURL, log)
	if err != nil {
		log.Fatal("goose: falha ao conectar ao banco.", err)
	}
	defer db.Close()

	arguments := flag.Args()
	if len(arguments) == 0 {
		arguments = []string{"up"}
	}
	command, args := arguments[0], arguments[1:]

	if err := database.RunMigrations(db, command, args...); err != nil {
		log.Fatal(fmt.Sprintf("goose %s falhou.", command), err)
	}
	log.Info(fmt.Sprintf("goose %s concluído.", command), nil)
}
