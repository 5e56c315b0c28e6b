// Package httpresp centraliza o formato das respostas HTTP da API:
// JSON de sucesso, corpo de erro padronizado {code, category, message},
// decodificação de payloads e leitura de paginação.
package httpresp

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"petshop/internal/domain"
	apperror "petshop/internal/errors"
	"petshop/internal/pkg/logger"
	"petshop/internal/pkg/validation"
)

// Responder escreve respostas e registra falhas com o logger injetado.
type Responder struct {
	Logger    logger.Logger
	Validator *validation.Validator
}

// New cria um Responder.
func New(log logger.Logger, v *validation.Validator) *Responder {
	return &Responder{Logger: log, Validator: v}
}

// Respond envia data com successStatus, ou o erro mapeado quando err != nil.
func (rs *Responder) Respond(w http.ResponseWriter, r *http.Request, data interface{}, err error, successStatus int) {
	if err != nil {
		rs.Error(w, r, err)
		return
	}
	rs.JSON(w, successStatus, data)
}

// JSON escreve data como JSON.
func (rs *Responder) JSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(data); err != nil {
		rs.Logger.Error("Falha ao codificar JSON de resposta", err)
	}
}

// Error traduz err pela taxonomia de apperror e escreve o corpo padronizado.
func (rs *Responder) Error(w http.ResponseWriter, r *http.Request, err error) {
	status, category, message := apperror.MapToHTTPStatus(err)

	if status >= http.StatusInternalServerError {
		rs.Logger.Error(fmt.Sprintf("Erro de Servidor: %s em %s %s", category, r.Method, r.URL.Path), err)
	} else {
		rs.Logger.Debug(fmt.Sprintf("Requisição rejeitada com status %d. Categoria: %s", status, category),
			map[string]interface{}{"path": r.URL.Path, "method": r.Method})
	}

	rs.JSON(w, status, domain.ErrorResponse{Code: status, Category: category, Message: message})
}

// Decode lê o corpo JSON em dst e aplica as tags de validação.
func (rs *Responder) Decode(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return apperror.NewValidationError("Payload inválido. Verifique o formato JSON.")
	}
	if rs.Validator == nil {
		return nil
	}
	if err := rs.Validator.Struct(dst); err != nil {
		return apperror.NewValidationError(err.Error())
	}
	return nil
}

// ParsePage lê skip e limit da query string. "offset" é aceito como sinônimo de skip.
func ParsePage(r *http.Request) (domain.Page, error) {
	page := domain.DefaultPage()
	q := r.URL.Query()

	skipRaw := q.Get("skip")
	if skipRaw == "" {
		skipRaw = q.Get("offset")
	}
	if skipRaw != "" {
		skip, err := strconv.Atoi(skipRaw)
		if err != nil {
			return domain.Page{}, apperror.NewValidationError(fmt.Sprintf("skip '%s' não é um número inteiro.", skipRaw))
		}
		page.Skip = skip
	}

	if limitRaw := q.Get("limit"); limitRaw != "" {
		limit, err := strconv.Atoi(limitRaw)
		if err != nil {
			return domain.Page{}, apperror.NewValidationError(fmt.Sprintf("limit '%s' não é um número inteiro.", limitRaw))
		}
		page.Limit = limit
	}

	if err := page.Validate(); err != nil {
		return domain.Page{}, apperror.NewValidationError(err.Error())
	}
	return page, nil
}

// QueryInt lê um inteiro obrigatório da query string.
func QueryInt(r *http.Request, key string) (int, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return 0, apperror.NewValidationError(fmt.Sprintf("O parâmetro '%s' é obrigatório.", key))
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, apperror.NewValidationError(fmt.Sprintf("O parâmetro '%s' deve ser um número inteiro.", key))
	}
	return v, nil
}
