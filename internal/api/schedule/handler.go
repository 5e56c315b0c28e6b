package schedule

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"petshop/internal/domain"
	apperror "petshop/internal/errors"
	"petshop/internal/pkg/httpresp"
)

// ScheduleService define o contrato que o Handler espera da camada de Serviço.
type ScheduleService interface {
	CreateSchedule(ctx context.Context, schedule domain.Schedule) (domain.Schedule, error)
	GetScheduleByID(ctx context.Context, id string) (domain.Schedule, error)
	ListSchedules(ctx context.Context, page domain.Page) ([]domain.Schedule, error)
	UpdateSchedule(ctx context.Context, id string, patch domain.SchedulePatch) (domain.Schedule, error)
	DeleteSchedule(ctx context.Context, id string) error
}

type ReportService interface {
	ScheduleDetail(ctx context.Context, id string) (domain.ScheduleDetail, error)
	SchedulesByMonth(ctx context.Context, month, year int) ([]domain.Schedule, error)
	CountSchedules(ctx context.Context) (domain.ScheduleCount, error)
}

// Handler agrupa os métodos de Handler de agendamentos.
type Handler struct {
	Service ScheduleService
	Reports ReportService
	resp    *httpresp.Responder
}

func NewHandler(svc ScheduleService, reports ReportService, resp *httpresp.Responder) *Handler {
	return &Handler{Service: svc, Reports: reports, resp: resp}
}

// CreateScheduleHandler lida com a requisição POST /schedules.
// @Summary Cria um agendamento
// @Description Cliente, pet e serviços precisam existir e o pet precisa pertencer ao cliente.
// @Tags schedules
// @Accept json
// @Produce json
// @Param schedule body domain.ScheduleRequest true "Dados do agendamento"
// @Success 201 {object} domain.Schedule "Agendamento criado"
// @Failure 400 {object} domain.ErrorResponse "Payload inválido ou pet de outro cliente"
// @Failure 404 {object} domain.ErrorResponse "Cliente, pet ou serviço não encontrado"
// @Security ApiKeyAuth
// @Router /schedules [post]
func (h *Handler) CreateScheduleHandler(w http.ResponseWriter, r *http.Request) {
	var req domain.ScheduleRequest
	if err := h.resp.Decode(r, &req); err != nil {
		h.resp.Error(w, r, err)
		return
	}
	input, err := req.ToSchedule()
	if err != nil {
		h.resp.Error(w, r, apperror.NewValidationError(err.Error()))
		return
	}

	created, err := h.Service.CreateSchedule(r.Context(), input)
	h.resp.Respond(w, r, created, err, http.StatusCreated)
}

// ListSchedulesHandler lida com a requisição GET /schedules.
// Com month e year, devolve os agendamentos do mês; sem eles, a listagem paginada.
// @Summary Lista agendamentos
// @Tags schedules
// @Produce json
// @Param month query int false "Mês (1 a 12), exige year"
// @Param year query int false "Ano, exige month"
// @Param skip query int false "Quantidade a pular" default(0)
// @Param limit query int false "Quantidade máxima (1 a 100)" default(10)
// @Success 200 {array} domain.Schedule "Agendamentos"
// @Failure 400 {object} domain.ErrorResponse "Parâmetros inválidos"
// @Router /schedules [get]
func (h *Handler) ListSchedulesHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	if q.Has("month") || q.Has("year") {
		h.schedulesByMonth(w, r)
		return
	}

	page, err := httpresp.ParsePage(r)
	if err != nil {
		h.resp.Error(w, r, err)
		return
	}
	schedules, err := h.Service.ListSchedules(r.Context(), page)
	h.resp.Respond(w, r, schedules, err, http.StatusOK)
}

func (h *Handler) schedulesByMonth(w http.ResponseWriter, r *http.Request) {
	month, err := httpresp.QueryInt(r, "month")
	if err != nil {
		h.resp.Error(w, r, err)
		return
	}
	year, err := httpresp.QueryInt(r, "year")
	if err != nil {
		h.resp.Error(w, r, err)
		return
	}

	schedules, err := h.Reports.SchedulesByMonth(r.Context(), month, year)
	h.resp.Respond(w, r, schedules, err, http.StatusOK)
}

// CountSchedulesHandler lida com a requisição GET /schedules/total/schedules.
// @Summary Total de agendamentos
// @Tags schedules
// @Produce json
// @Success 200 {object} domain.ScheduleCount
// @Router /schedules/total/schedules [get]
func (h *Handler) CountSchedulesHandler(w http.ResponseWriter, r *http.Request) {
	count, err := h.Reports.CountSchedules(r.Context())
	h.resp.Respond(w, r, count, err, http.StatusOK)
}

// GetScheduleByIDHandler lida com a requisição GET /schedules/{scheduleID}.
// @Summary Obtém um agendamento por ID
// @Tags schedules
// @Produce json
// @Param scheduleID path string true "ID do agendamento"
// @Success 200 {object} domain.Schedule
// @Failure 404 {object} domain.ErrorResponse "Agendamento não encontrado"
// @Router /schedules/{scheduleID} [get]
func (h *Handler) GetScheduleByIDHandler(w http.ResponseWriter, r *http.Request) {
	schedule, err := h.Service.GetScheduleByID(r.Context(), chi.URLParam(r, "scheduleID"))
	h.resp.Respond(w, r, schedule, err, http.StatusOK)
}

// ScheduleDetailHandler lida com a requisição GET /schedules/{scheduleID}/detail.
// @Summary Visão detalhada de um agendamento
// @Description Cliente, pet e serviços resolvidos. Serviços removidos do catálogo são omitidos.
// @Tags schedules
// @Produce json
// @Param scheduleID path string true "ID do agendamento"
// @Success 200 {object} domain.ScheduleDetail
// @Failure 404 {object} domain.ErrorResponse "Agendamento, cliente ou pet não encontrado"
// @Router /schedules/{scheduleID}/detail [get]
func (h *Handler) ScheduleDetailHandler(w http.ResponseWriter, r *http.Request) {
	detail, err := h.Reports.ScheduleDetail(r.Context(), chi.URLParam(r, "scheduleID"))
	h.resp.Respond(w, r, detail, err, http.StatusOK)
}

// UpdateScheduleHandler lida com PUT e PATCH /schedules/{scheduleID}.
// @Summary Atualiza um agendamento
// @Tags schedules
// @Accept json
// @Produce json
// @Param scheduleID path string true "ID do agendamento"
// @Param schedule body domain.SchedulePatchRequest true "Campos a alterar"
// @Success 200 {object} domain.Schedule "Agendamento atualizado"
// @Failure 400 {object} domain.ErrorResponse "Payload inválido"
// @Failure 404 {object} domain.ErrorResponse "Agendamento não encontrado"
// @Security ApiKeyAuth
// @Router /schedules/{scheduleID} [patch]
func (h *Handler) UpdateScheduleHandler(w http.ResponseWriter, r *http.Request) {
	var req domain.SchedulePatchRequest
	if err := h.resp.Decode(r, &req); err != nil {
		h.resp.Error(w, r, err)
		return
	}
	patch, err := req.ToPatch()
	if err != nil {
		h.resp.Error(w, r, apperror.NewValidationError(err.Error()))
		return
	}

	updated, err := h.Service.UpdateSchedule(r.Context(), chi.URLParam(r, "scheduleID"), patch)
	h.resp.Respond(w, r, updated, err, http.StatusOK)
}

// DeleteScheduleHandler lida com a requisição DELETE /schedules/{scheduleID}.
// @Summary Exclui um agendamento
// @Tags schedules
// @Produce json
// @Param scheduleID path string true "ID do agendamento"
// @Success 200 {object} domain.MessageResponse "Agendamento excluído"
// @Failure 404 {object} domain.ErrorResponse "Agendamento não encontrado"
// @Security ApiKeyAuth
// @Router /schedules/{scheduleID} [delete]
func (h *Handler) DeleteScheduleHandler(w http.ResponseWriter, r *http.Request) {
	if err := h.Service.DeleteSchedule(r.Context(), chi.URLParam(r, "scheduleID")); err != nil {
		h.resp.Error(w, r, err)
		return
	}
	h.resp.JSON(w, http.StatusOK, domain.MessageResponse{Message: "Agendamento deletado com sucesso"})
}
