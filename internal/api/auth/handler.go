package auth

import (
	"context"
	"net/http"

	"petshop/internal/domain"
	"petshop/internal/pkg/httpresp"
)

// AuthService define o contrato do login do operador.
type AuthService interface {
	Login(ctx context.Context, email, password string) (domain.TokenResponse, error)
}

type Handler struct {
	Service AuthService
	resp    *httpresp.Responder
}

func NewHandler(svc AuthService, resp *httpresp.Responder) *Handler {
	return &Handler{Service: svc, resp: resp}
}

// LoginHandler lida com a requisição POST /auth/login.
// @Summary Login do operador
// @Description Devolve o token JWT exigido pelas rotas de escrita.
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body domain.LoginRequest true "E-mail e senha"
// @Success 200 {object} domain.TokenResponse
// @Failure 400 {object} domain.ErrorResponse "Payload inválido"
// @Failure 401 {object} domain.ErrorResponse "Credenciais inválidas"
// @Router /auth/login [post]
func (h *Handler) LoginHandler(w http.ResponseWriter, r *http.Request) {
	var req domain.LoginRequest
	if err := h.resp.Decode(r, &req); err != nil {
		h.resp.Error(w, r, err)
		return
	}

	token, err := h.Service.Login(r.Context(), req.Email, req.Password)
	h.resp.Respond(w, r, token, err, http.StatusOK)
}
