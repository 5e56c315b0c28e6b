package catalog

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"petshop/internal/domain"
	"petshop/internal/pkg/httpresp"
)

// CatalogService define o contrato que o Handler espera da camada de Serviço.
type CatalogService interface {
	CreateService(ctx context.Context, service domain.Service) (domain.Service, error)
	GetServiceByID(ctx context.Context, id string) (domain.Service, error)
	ListServices(ctx context.Context, page domain.Page) ([]domain.Service, error)
	UpdateService(ctx context.Context, id string, patch domain.ServicePatch) (domain.Service, error)
	DeleteService(ctx context.Context, id string) error
}

type ReportService interface {
	ServicesByPriceBand(ctx context.Context, category string) ([]domain.Service, error)
	CountServices(ctx context.Context) (domain.ServiceCount, error)
}

// Handler agrupa os métodos de Handler do catálogo de serviços.
type Handler struct {
	Service CatalogService
	Reports ReportService
	resp    *httpresp.Responder
}

func NewHandler(svc CatalogService, reports ReportService, resp *httpresp.Responder) *Handler {
	return &Handler{Service: svc, Reports: reports, resp: resp}
}

// CreateServiceHandler lida com a requisição POST /services.
// @Summary Cadastra um serviço
// @Description O tipo do serviço é único no catálogo.
// @Tags services
// @Accept json
// @Produce json
// @Param service body domain.Service true "Dados do serviço"
// @Success 201 {object} domain.Service "Serviço criado com sucesso"
// @Failure 400 {object} domain.ErrorResponse "Payload inválido ou serviço já existente"
// @Security ApiKeyAuth
// @Router /services [post]
func (h *Handler) CreateServiceHandler(w http.ResponseWriter, r *http.Request) {
	var input domain.Service
	if err := h.resp.Decode(r, &input); err != nil {
		h.resp.Error(w, r, err)
		return
	}

	created, err := h.Service.CreateService(r.Context(), input)
	h.resp.Respond(w, r, created, err, http.StatusCreated)
}

// ListServicesHandler lida com a requisição GET /services.
// @Summary Lista serviços
// @Tags services
// @Produce json
// @Param skip query int false "Quantidade a pular" default(0)
// @Param limit query int false "Quantidade máxima (1 a 100)" default(10)
// @Success 200 {array} domain.Service "Lista de serviços"
// @Router /services [get]
func (h *Handler) ListServicesHandler(w http.ResponseWriter, r *http.Request) {
	page, err := httpresp.ParsePage(r)
	if err != nil {
		h.resp.Error(w, r, err)
		return
	}

	services, err := h.Service.ListServices(r.Context(), page)
	h.resp.Respond(w, r, services, err, http.StatusOK)
}

// ServicesByPriceBandHandler lida com a requisição GET /services/category-price.
// @Summary Filtra serviços por faixa de preço
// @Description cheap: preço ≤ 50; medium: 50 < preço ≤ 100; expensive: 100 < preço ≤ 500.
// @Tags services
// @Produce json
// @Param category_price query string true "cheap services, medium services ou expensive services"
// @Success 200 {array} domain.Service "Serviços da faixa"
// @Failure 400 {object} domain.ErrorResponse "Categoria inválida"
// @Router /services/category-price [get]
func (h *Handler) ServicesByPriceBandHandler(w http.ResponseWriter, r *http.Request) {
	services, err := h.Reports.ServicesByPriceBand(r.Context(), r.URL.Query().Get("category_price"))
	h.resp.Respond(w, r, services, err, http.StatusOK)
}

// CountServicesHandler lida com a requisição GET /services/total-services.
// @Summary Total de serviços cadastrados
// @Tags services
// @Produce json
// @Success 200 {object} domain.ServiceCount
// @Router /services/total-services [get]
func (h *Handler) CountServicesHandler(w http.ResponseWriter, r *http.Request) {
	count, err := h.Reports.CountServices(r.Context())
	h.resp.Respond(w, r, count, err, http.StatusOK)
}

// GetServiceByIDHandler lida com a requisição GET /services/{serviceID}.
// @Summary Obtém um serviço por ID
// @Tags services
// @Produce json
// @Param serviceID path string true "ID do serviço"
// @Success 200 {object} domain.Service "Serviço encontrado"
// @Failure 404 {object} domain.ErrorResponse "Serviço não encontrado"
// @Router /services/{serviceID} [get]
func (h *Handler) GetServiceByIDHandler(w http.ResponseWriter, r *http.Request) {
	service, err := h.Service.GetServiceByID(r.Context(), chi.URLParam(r, "serviceID"))
	h.resp.Respond(w, r, service, err, http.StatusOK)
}

// UpdateServiceHandler lida com PUT e PATCH /services/{serviceID}.
// @Summary Atualiza um serviço
// @Tags services
// @Accept json
// @Produce json
// @Param serviceID path string true "ID do serviço"
// @Param service body domain.ServicePatch true "Campos a alterar"
// @Success 200 {object} domain.Service "Serviço atualizado"
// @Failure 400 {object} domain.ErrorResponse "Payload inválido"
// @Failure 404 {object} domain.ErrorResponse "Serviço não encontrado"
// @Security ApiKeyAuth
// @Router /services/{serviceID} [patch]
func (h *Handler) UpdateServiceHandler(w http.ResponseWriter, r *http.Request) {
	var patch domain.ServicePatch
	if err := h.resp.Decode(r, &patch); err != nil {
		h.resp.Error(w, r, err)
		return
	}

	updated, err := h.Service.UpdateService(r.Context(), chi.URLParam(r, "serviceID"), patch)
	h.resp.Respond(w, r, updated, err, http.StatusOK)
}

// DeleteServiceHandler lida com a requisição DELETE /services/{serviceID}.
// @Summary Exclui um serviço
// @Tags services
// @Produce json
// @Param serviceID path string true "ID do serviço"
// @Success 200 {object} domain.MessageResponse "Serviço excluído"
// @Failure 404 {object} domain.ErrorResponse "Serviço não encontrado"
// @Security ApiKeyAuth
// @Router /services/{serviceID} [delete]
func (h *Handler) DeleteServiceHandler(w http.ResponseWriter, r *http.Request) {
	if err := h.Service.DeleteService(r.Context(), chi.URLParam(r, "serviceID")); err != nil {
		h.resp.Error(w, r, err)
		return
	}
	h.resp.JSON(w, http.StatusOK, domain.MessageResponse{Message: "Serviço deletado com sucesso"})
}
