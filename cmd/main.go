package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"petshop/config"
	"petshop/internal/api/router"
	"petshop/internal/pkg/cache"
	"petshop/internal/pkg/logger"
	"petshop/internal/pkg/middleware"
	"petshop/internal/pkg/token"
	"petshop/internal/repository"
	"petshop/internal/service/authservice"
)

func main() {
	// Sem .env seguimos só com o ambiente do sistema (ex: Docker).
	envErr := godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.NewLogger("info").Fatal("Configuração inválida.", err)
	}
	log := logger.NewLogger(cfg.LogLevel)
	if envErr != nil {
		log.Debug("Arquivo .env não encontrado. Usando apenas o ambiente do sistema.", nil)
	}
	log.Info("Inicializando API do petshop...", map[string]interface{}{"env": cfg.Environment})

	// 1. Persistência: o backend vem do esquema de DATABASE_URL
	startCtx, cancelStart := context.WithTimeout(context.Background(), 30*time.Second)
	store, err := repository.Open(startCtx, repository.Options{
		URL:          cfg.DatabaseURL,
		DatabaseName: cfg.DatabaseName,
		Timeout:      cfg.DBTimeout,
		AutoMigrate:  cfg.AutoMigrate,
	}, log)
	if err != nil {
		cancelStart()
		log.Fatal("Falha ao abrir o banco de dados.", err)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	opts := router.Options{Logger: log, Registry: registry}

	// 2. Rate limiting (Redis), opcional
	if cfg.RateLimitEnabled() {
		cacheClient, err := cache.NewRedisClient(startCtx, cfg.RedisAddr, cfg.CacheTimeout)
		if err != nil {
			log.Error("Redis indisponível, rate limiting desligado.", err)
		} else {
			defer cacheClient.Close()
			opts.RateLimit = middleware.RateLimiter(cacheClient, cfg.RateLimitMaxRequests, cfg.RateLimitPeriod, cfg.CacheTimeout, log)
			log.Info("Rate limiting ativo.", map[string]interface{}{"max_requests": cfg.RateLimitMaxRequests})
		}
	}
	cancelStart()

	// 3. Injeção de dependências: Repository -> Service -> Handler
	operator := authservice.Operator{Email: cfg.AdminEmail, PasswordHash: cfg.AdminPasswordHash}
	var handlers router.Handlers
	if cfg.AuthEnabled() {
		tokenSvc := token.NewService(cfg.JWTSecretKey, cfg.TokenExpiry)
		handlers = router.NewHandlers(store, tokenSvc, operator, log)
		opts.Tokens = tokenSvc
	} else {
		log.Warn("JWT_SECRET_KEY vazia: rotas de escrita sem autenticação.", nil)
		handlers = router.NewHandlers(store, nil, operator, log)
	}

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router.NewRouter(handlers, opts),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// 4. Execução e Graceful Shutdown
	go func() {
		log.Info("Servidor ouvindo na porta", map[string]interface{}{"port": cfg.Port})
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Servidor falhou.", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Sinal de encerramento recebido. Desligando servidor...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Desligamento do servidor forçado.", err)
	}
	if err := store.Close(ctx); err != nil {
		log.Error("Falha ao fechar o banco de dados.", err)
	}

	log.Info("Servidor encerrado com sucesso.", nil)
}
