package config

import (
	"errors"
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config armazena todas as configurações da API do petshop.
type Config struct {
	// Geral
	Port        string
	Environment string
	LogLevel    string

	// Persistência: o esquema da URL escolhe o backend (mongodb, postgres, memory)
	DatabaseURL  string
	DatabaseName string
	DBTimeout    time.Duration
	AutoMigrate  bool

	// Cache (Redis). Vazio desliga o rate limiting.
	RedisAddr    string
	CacheTimeout time.Duration

	// Segurança (JWT). Chave vazia desliga a autenticação das rotas de escrita.
	JWTSecretKey      string
	TokenExpiry       time.Duration
	AdminEmail        string
	AdminPasswordHash string

	// Rate Limiting
	RateLimitMaxRequests int
	RateLimitPeriod      time.Duration
}

// ErrMissingDatabaseURL é devolvido quando DATABASE_URL não está definida.
var ErrMissingDatabaseURL = errors.New("a variável de ambiente DATABASE_URL deve ser definida")

// LoadConfig carrega as configurações a partir das variáveis de ambiente.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		Environment: getEnv("ENV", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),

		DatabaseURL:  getEnv("DATABASE_URL", ""),
		DatabaseName: getEnv("DATABASE_NAME", "petshop_db"),
		DBTimeout:    getDurationEnv("DB_TIMEOUT_SEC", 5) * time.Second,
		AutoMigrate:  getBoolEnv("AUTO_MIGRATE", true),

		RedisAddr:    getEnv("REDIS_ADDR", ""),
		CacheTimeout: getDurationEnv("CACHE_TIMEOUT_SEC", 2) * time.Second,

		JWTSecretKey:      getEnv("JWT_SECRET_KEY", ""),
		TokenExpiry:       getDurationEnv("JWT_EXPIRY_MIN", 60) * time.Minute,
		AdminEmail:        getEnv("ADMIN_EMAIL", ""),
		AdminPasswordHash: getEnv("ADMIN_PASSWORD_HASH", ""),

		RateLimitMaxRequests: getIntEnv("RATE_LIMIT_MAX_REQUESTS", 100),
		RateLimitPeriod:      getDurationEnv("RATE_LIMIT_PERIOD_MIN", 1) * time.Minute,
	}

	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		return nil, ErrMissingDatabaseURL
	}
	return cfg, nil
}

// AuthEnabled informa se as rotas de escrita exigem token.
func (c *Config) AuthEnabled() bool { return c.JWTSecretKey != "" }

// RateLimitEnabled informa se há Redis configurado para o rate limiting.
func (c *Config) RateLimitEnabled() bool { return c.RedisAddr != "" }

// Funções Helpers (Auxiliares)

// getEnv lê a variável de ambiente ou retorna um valor padrão.
// Variável definida mas vazia (PORT= no .env) conta como ausente.
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}

// getDurationEnv lê uma variável de ambiente numérica e retorna-a como time.Duration.
func getDurationEnv(key string, defaultValue int) time.Duration {
	return time.Duration(getIntEnv(key, defaultValue))
}

// getIntEnv lê uma variável de ambiente numérica e retorna-a como int.
func getIntEnv(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Aviso: valor de %s ('%s') não é um número inteiro válido. Usando padrão (%d).", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}

func getBoolEnv(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Printf("Aviso: valor de %s ('%s') não é booleano. Usando padrão (%t).", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}
