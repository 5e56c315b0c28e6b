package authservice_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"petshop/internal/domain"
	apperror "petshop/internal/errors"
	"petshop/internal/pkg/logger"
	"petshop/internal/pkg/token"
	"petshop/internal/service/authservice"
)

func newService(t *testing.T) (*authservice.Service, *token.Service) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("s3nha"), bcrypt.MinCost)
	require.NoError(t, err)

	tokens := token.NewService("segredo-de-teste", time.Hour)
	op := authservice.Operator{Email: "admin@petshop.com", PasswordHash: string(hash)}
	return authservice.NewService(op, tokens, logger.Nop()), tokens
}

func TestLogin_Success(t *testing.T) {
	svc, tokens := newService(t)

	resp, err := svc.Login(context.Background(), "Admin@Petshop.com", "s3nha")

	require.NoError(t, err)
	assert.Equal(t, "Bearer", resp.TokenType)
	assert.Equal(t, int64(3600), resp.ExpiresIn)

	claims, err := tokens.ValidateToken(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, string(domain.RoleAdmin), claims.Role)
	assert.Equal(t, "admin@petshop.com", claims.UserID)
}

func TestLogin_Rejected(t *testing.T) {
	svc, _ := newService(t)

	for name, creds := range map[string][2]string{
		"senha errada":  {"admin@petshop.com", "errada"},
		"e-mail errado": {"outro@petshop.com", "s3nha"},
		"vazio":         {"", ""},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := svc.Login(context.Background(), creds[0], creds[1])
			assert.IsType(t, &apperror.UnauthorizedError{}, err)
		})
	}
}

func TestLogin_NoOperatorConfigured(t *testing.T) {
	svc := authservice.NewService(authservice.Operator{}, token.NewService("x", time.Minute), logger.Nop())

	_, err := svc.Login(context.Background(), "admin@petshop.com", "s3nha")

	assert.IsType(t, &apperror.UnauthorizedError{}, err)
}
