package client

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"petshop/internal/domain"
	"petshop/internal/pkg/httpresp"
	"petshop/internal/pkg/middleware"
)

// ClientService define o contrato que o Handler espera da camada de Serviço.
type ClientService interface {
	CreateClient(ctx context.Context, client domain.Client) (domain.Client, error)
	GetClientByID(ctx context.Context, id string) (domain.Client, error)
	ListClients(ctx context.Context, page domain.Page) ([]domain.Client, error)
	UpdateClient(ctx context.Context, id string, patch domain.ClientPatch) (domain.Client, error)
	DeleteClient(ctx context.Context, id string) error
}

// ReportService cobre os relatórios servidos sob /clients.
type ReportService interface {
	ClientSchedules(ctx context.Context, clientID string) ([]domain.ScheduleDetail, error)
	ClientTotals(ctx context.Context) ([]domain.ClientScheduleTotal, error)
}

// Handler agrupa todos os métodos de Handler de clientes.
type Handler struct {
	Service ClientService
	Reports ReportService
	resp    *httpresp.Responder
}

// NewHandler cria uma nova instância do Handler, injetando os serviços e o Responder.
func NewHandler(svc ClientService, reports ReportService, resp *httpresp.Responder) *Handler {
	return &Handler{Service: svc, Reports: reports, resp: resp}
}

// CreateClientHandler lida com a requisição POST /clients.
// @Summary Cadastra um cliente
// @Description Cadastra um novo cliente. O CPF não pode estar em uso.
// @Tags clients
// @Accept json
// @Produce json
// @Param client body domain.Client true "Dados do cliente"
// @Success 201 {object} domain.Client "Cliente criado com sucesso"
// @Failure 400 {object} domain.ErrorResponse "Payload inválido ou CPF já cadastrado"
// @Failure 500 {object} domain.ErrorResponse "Erro interno do servidor"
// @Security ApiKeyAuth
// @Router /clients [post]
func (h *Handler) CreateClientHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if claims, ok := middleware.GetUserClaimsFromContext(ctx); ok {
		h.resp.Logger.Debug("Criação de cliente solicitada.", map[string]interface{}{"user_id": claims.UserID})
	}

	var input domain.Client
	if err := h.resp.Decode(r, &input); err != nil {
		h.resp.Error(w, r, err)
		return
	}

	created, err := h.Service.CreateClient(ctx, input)
	h.resp.Respond(w, r, created, err, http.StatusCreated)
}

// ListClientsHandler lida com a requisição GET /clients.
// @Summary Lista clientes
// @Tags clients
// @Produce json
// @Param skip query int false "Quantidade a pular" default(0)
// @Param limit query int false "Quantidade máxima (1 a 100)" default(10)
// @Success 200 {array} domain.Client "Lista de clientes"
// @Failure 400 {object} domain.ErrorResponse "Paginação inválida"
// @Router /clients [get]
func (h *Handler) ListClientsHandler(w http.ResponseWriter, r *http.Request) {
	page, err := httpresp.ParsePage(r)
	if err != nil {
		h.resp.Error(w, r, err)
		return
	}

	clients, err := h.Service.ListClients(r.Context(), page)
	h.resp.Respond(w, r, clients, err, http.StatusOK)
}

// GetClientByIDHandler lida com a requisição GET /clients/{clientID}.
// @Summary Obtém um cliente por ID
// @Tags clients
// @Produce json
// @Param clientID path string true "ID do cliente"
// @Success 200 {object} domain.Client "Cliente encontrado"
// @Failure 400 {object} domain.ErrorResponse "ID inválido"
// @Failure 404 {object} domain.ErrorResponse "Cliente não encontrado"
// @Router /clients/{clientID} [get]
func (h *Handler) GetClientByIDHandler(w http.ResponseWriter, r *http.Request) {
	client, err := h.Service.GetClientByID(r.Context(), chi.URLParam(r, "clientID"))
	h.resp.Respond(w, r, client, err, http.StatusOK)
}

// UpdateClientHandler lida com PUT e PATCH /clients/{clientID}.
// Apenas os campos enviados são alterados.
// @Summary Atualiza um cliente
// @Tags clients
// @Accept json
// @Produce json
// @Param clientID path string true "ID do cliente"
// @Param client body domain.ClientPatch true "Campos a alterar"
// @Success 200 {object} domain.Client "Cliente atualizado"
// @Failure 400 {object} domain.ErrorResponse "Payload inválido"
// @Failure 404 {object} domain.ErrorResponse "Cliente não encontrado"
// @Security ApiKeyAuth
// @Router /clients/{clientID} [patch]
func (h *Handler) UpdateClientHandler(w http.ResponseWriter, r *http.Request) {
	var patch domain.ClientPatch
	if err := h.resp.Decode(r, &patch); err != nil {
		h.resp.Error(w, r, err)
		return
	}

	updated, err := h.Service.UpdateClient(r.Context(), chi.URLParam(r, "clientID"), patch)
	h.resp.Respond(w, r, updated, err, http.StatusOK)
}

// DeleteClientHandler lida com a requisição DELETE /clients/{clientID}.
// @Summary Exclui um cliente
// @Description Exclui o cliente, seus pets e todos os agendamentos associados.
// @Tags clients
// @Produce json
// @Param clientID path string true "ID do cliente"
// @Success 200 {object} domain.MessageResponse "Cliente excluído"
// @Failure 404 {object} domain.ErrorResponse "Cliente não encontrado"
// @Failure 500 {object} domain.ErrorResponse "Exclusão em cascata interrompida"
// @Security ApiKeyAuth
// @Router /clients/{clientID} [delete]
func (h *Handler) DeleteClientHandler(w http.ResponseWriter, r *http.Request) {
	if err := h.Service.DeleteClient(r.Context(), chi.URLParam(r, "clientID")); err != nil {
		h.resp.Error(w, r, err)
		return
	}
	h.resp.JSON(w, http.StatusOK, domain.MessageResponse{Message: "Cliente e dados associados excluídos com sucesso"})
}

// ClientSchedulesHandler lida com a requisição GET /clients/{clientID}/schedules.
// @Summary Agendamentos detalhados de um cliente
// @Tags clients
// @Produce json
// @Param clientID path string true "ID do cliente"
// @Success 200 {array} domain.ScheduleDetail "Agendamentos do cliente"
// @Failure 404 {object} domain.ErrorResponse "Cliente não encontrado"
// @Router /clients/{clientID}/schedules [get]
func (h *Handler) ClientSchedulesHandler(w http.ResponseWriter, r *http.Request) {
	details, err := h.Reports.ClientSchedules(r.Context(), chi.URLParam(r, "clientID"))
	h.resp.Respond(w, r, details, err, http.StatusOK)
}

// ClientTotalsHandler lida com a requisição GET /clients/total/schedules/by/client.
// @Summary Total de agendamentos por cliente
// @Description Ordenado do maior para o menor total. A ordem entre empates não é garantida.
// @Tags clients
// @Produce json
// @Success 200 {array} domain.ClientScheduleTotal "Totais por cliente"
// @Router /clients/total/schedules/by/client [get]
func (h *Handler) ClientTotalsHandler(w http.ResponseWriter, r *http.Request) {
	totals, err := h.Reports.ClientTotals(r.Context())
	h.resp.Respond(w, r, totals, err, http.StatusOK)
}
