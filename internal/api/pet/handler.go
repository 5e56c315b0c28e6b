package pet

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"petshop/internal/domain"
	apperror "petshop/internal/errors"
	"petshop/internal/pkg/httpresp"
)

// PetService define o contrato que o Handler espera da camada de Serviço.
type PetService interface {
	CreatePet(ctx context.Context, clientID string, pet domain.Pet) (domain.Pet, error)
	ListPets(ctx context.Context, page domain.Page) ([]domain.Pet, error)
	ListPetsByClient(ctx context.Context, clientID string) ([]domain.Pet, error)
	SearchPets(ctx context.Context, filter domain.PetFilter) ([]domain.Pet, error)
	UpdatePet(ctx context.Context, clientID, petID string, patch domain.PetPatch) (domain.Pet, error)
	DeletePet(ctx context.Context, clientID, petID string) error
}

// Handler agrupa todos os métodos de Handler de pets.
type Handler struct {
	Service PetService
	resp    *httpresp.Responder
}

func NewHandler(svc PetService, resp *httpresp.Responder) *Handler {
	return &Handler{Service: svc, resp: resp}
}

// CreatePetHandler lida com a requisição POST /pets/{clientID}/pet.
// @Summary Cadastra um pet para um cliente
// @Description O cliente precisa existir e o nome do pet é único no sistema.
// @Tags pets
// @Accept json
// @Produce json
// @Param clientID path string true "ID do cliente dono"
// @Param pet body domain.Pet true "Dados do pet"
// @Success 201 {object} domain.Pet "Pet criado com sucesso"
// @Failure 400 {object} domain.ErrorResponse "Payload inválido ou nome já cadastrado"
// @Failure 404 {object} domain.ErrorResponse "Cliente não encontrado"
// @Security ApiKeyAuth
// @Router /pets/{clientID}/pet [post]
func (h *Handler) CreatePetHandler(w http.ResponseWriter, r *http.Request) {
	var input domain.Pet
	if err := h.resp.Decode(r, &input); err != nil {
		h.resp.Error(w, r, err)
		return
	}

	created, err := h.Service.CreatePet(r.Context(), chi.URLParam(r, "clientID"), input)
	h.resp.Respond(w, r, created, err, http.StatusCreated)
}

// ListPetsHandler lida com a requisição GET /pets.
// @Summary Lista pets
// @Tags pets
// @Produce json
// @Param skip query int false "Quantidade a pular (offset também é aceito)" default(0)
// @Param limit query int false "Quantidade máxima (1 a 100)" default(10)
// @Success 200 {array} domain.Pet "Lista de pets"
// @Failure 400 {object} domain.ErrorResponse "Paginação inválida"
// @Router /pets [get]
func (h *Handler) ListPetsHandler(w http.ResponseWriter, r *http.Request) {
	page, err := httpresp.ParsePage(r)
	if err != nil {
		h.resp.Error(w, r, err)
		return
	}

	pets, err := h.Service.ListPets(r.Context(), page)
	h.resp.Respond(w, r, pets, err, http.StatusOK)
}

// SearchPetsHandler lida com a requisição GET /pets/{petName}/pet-name.
// @Summary Busca pets pelo nome
// @Description Busca por trecho do nome, sem diferenciar maiúsculas.
// @Tags pets
// @Produce json
// @Param petName path string true "Trecho do nome"
// @Param client_id query string false "Restringe aos pets do cliente"
// @Param skip query int false "Quantidade a pular" default(0)
// @Param limit query int false "Quantidade máxima (1 a 100)" default(10)
// @Success 200 {array} domain.Pet "Pets encontrados"
// @Failure 400 {object} domain.ErrorResponse "Parâmetros inválidos"
// @Failure 404 {object} domain.ErrorResponse "Cliente não encontrado"
// @Router /pets/{petName}/pet-name [get]
func (h *Handler) SearchPetsHandler(w http.ResponseWriter, r *http.Request) {
	page, err := httpresp.ParsePage(r)
	if err != nil {
		h.resp.Error(w, r, err)
		return
	}

	// o chi roteia por RawPath quando ele existe, então o parâmetro pode chegar escapado
	rawName := chi.URLParam(r, "petName")
	name, err := url.PathUnescape(rawName)
	if err != nil {
		h.resp.Error(w, r, apperror.NewValidationError(fmt.Sprintf("Nome de pet mal codificado: %s", rawName)))
		return
	}

	filter := domain.PetFilter{
		Name:     name,
		ClientID: r.URL.Query().Get("client_id"),
		Page:     page,
	}
	pets, err := h.Service.SearchPets(r.Context(), filter)
	h.resp.Respond(w, r, pets, err, http.StatusOK)
}

// ListPetsByClientHandler lida com a requisição GET /pets/{clientID}.
// @Summary Lista os pets de um cliente
// @Tags pets
// @Produce json
// @Param clientID path string true "ID do cliente"
// @Success 200 {array} domain.Pet "Pets do cliente"
// @Failure 404 {object} domain.ErrorResponse "Cliente não encontrado"
// @Router /pets/{clientID} [get]
func (h *Handler) ListPetsByClientHandler(w http.ResponseWriter, r *http.Request) {
	pets, err := h.Service.ListPetsByClient(r.Context(), chi.URLParam(r, "clientID"))
	h.resp.Respond(w, r, pets, err, http.StatusOK)
}

// UpdatePetHandler lida com PUT e PATCH /pets/{clientID}/pets/{petID}.
// @Summary Atualiza um pet
// @Tags pets
// @Accept json
// @Produce json
// @Param clientID path string true "ID do cliente dono"
// @Param petID path string true "ID do pet"
// @Param pet body domain.PetPatch true "Campos a alterar"
// @Success 200 {object} domain.Pet "Pet atualizado"
// @Failure 400 {object} domain.ErrorResponse "Payload inválido"
// @Failure 404 {object} domain.ErrorResponse "Pet não encontrado para o cliente"
// @Security ApiKeyAuth
// @Router /pets/{clientID}/pets/{petID} [patch]
func (h *Handler) UpdatePetHandler(w http.ResponseWriter, r *http.Request) {
	var patch domain.PetPatch
	if err := h.resp.Decode(r, &patch); err != nil {
		h.resp.Error(w, r, err)
		return
	}

	updated, err := h.Service.UpdatePet(r.Context(), chi.URLParam(r, "clientID"), chi.URLParam(r, "petID"), patch)
	h.resp.Respond(w, r, updated, err, http.StatusOK)
}

// DeletePetHandler lida com a requisição DELETE /pets/{clientID}/pets/{petID}.
// @Summary Exclui um pet
// @Description Exclui o pet e todos os seus agendamentos.
// @Tags pets
// @Produce json
// @Param clientID path string true "ID do cliente dono"
// @Param petID path string true "ID do pet"
// @Success 200 {object} domain.MessageResponse "Pet excluído"
// @Failure 404 {object} domain.ErrorResponse "Pet não encontrado para o cliente"
// @Failure 500 {object} domain.ErrorResponse "Exclusão em cascata interrompida"
// @Security ApiKeyAuth
// @Router /pets/{clientID}/pets/{petID} [delete]
func (h *Handler) DeletePetHandler(w http.ResponseWriter, r *http.Request) {
	if err := h.Service.DeletePet(r.Context(), chi.URLParam(r, "clientID"), chi.URLParam(r, "petID")); err != nil {
		h.resp.Error(w, r, err)
		return
	}
	h.resp.JSON(w, http.StatusOK, domain.MessageResponse{Message: "Pet deletado com sucesso"})
}
