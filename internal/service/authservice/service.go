// Package authservice autentica o operador da API e emite o token de acesso
// exigido pelas rotas de escrita.
package authservice

import (
	"context"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"petshop/internal/domain"
	apperror "petshop/internal/errors"
	"petshop/internal/pkg/logger"
)

// TokenIssuer é a parte de internal/pkg/token usada no login.
type TokenIssuer interface {
	GenerateToken(userID string, userRole string) (string, error)
	Expiry() time.Duration
}

// Operator é a credencial configurada por ambiente (ADMIN_EMAIL / ADMIN_PASSWORD_HASH).
type Operator struct {
	Email        string
	PasswordHash string
}

type Service struct {
	operator Operator
	tokens   TokenIssuer
	logger   logger.Logger
}

func NewService(operator Operator, tokens TokenIssuer, log logger.Logger) *Service {
	return &Service{operator: operator, tokens: tokens, logger: log}
}

// Login confere e-mail e senha (bcrypt) e devolve um JWT com papel admin.
func (s *Service) Login(ctx context.Context, email, password string) (domain.TokenResponse, error) {
	if email == "" || password == "" {
		return domain.TokenResponse{}, apperror.NewUnauthorizedError("Email e senha são obrigatórios.")
	}
	if s.operator.Email == "" || s.operator.PasswordHash == "" {
		s.logger.Warn("Tentativa de login sem operador configurado.", nil)
		return domain.TokenResponse{}, apperror.NewUnauthorizedError("Credenciais inválidas.")
	}

	// e-mail errado e senha errada devolvem a mesma resposta
	if !strings.EqualFold(strings.TrimSpace(email), s.operator.Email) {
		s.logger.Warn("Login recusado.", map[string]interface{}{"email": email})
		return domain.TokenResponse{}, apperror.NewUnauthorizedError("Credenciais inválidas.")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(s.operator.PasswordHash), []byte(password)); err != nil {
		s.logger.Warn("Login recusado.", map[string]interface{}{"email": email})
		return domain.TokenResponse{}, apperror.NewUnauthorizedError("Credenciais inválidas.")
	}

	tokenString, err := s.tokens.GenerateToken(s.operator.Email, string(domain.RoleAdmin))
	if err != nil {
		return domain.TokenResponse{}, apperror.NewInternalError("Falha ao gerar token de autenticação.", err)
	}

	s.logger.Info("Login do operador realizado.", map[string]interface{}{"email": s.operator.Email})
	return domain.TokenResponse{
		AccessToken: tokenString,
		TokenType:   "Bearer",
		ExpiresIn:   int64(s.tokens.Expiry().Seconds()),
	}, nil
}
