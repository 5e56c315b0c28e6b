package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError é a interface central para todos os erros customizados do petshop.
// Ela permite que o Handler acesse a Categoria e o status HTTP sugerido.
type AppError interface {
	Error() string    // Implementa a interface error padrão do Go
	Category() string // Categoria do erro (e.g., "VALIDATION_ERROR", "NOT_FOUND")
	HTTPStatus() int  // Código HTTP sugerido para o Handler
	Unwrap() error    // Erro original, quando houver
}

// --- Erros de Domínio ---

// ValidationError representa falhas de validação de dados de entrada.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string    { return fmt.Sprintf("Erro de Validação: %s", e.Msg) }
func (e *ValidationError) Category() string { return "VALIDATION_ERROR" }
func (e *ValidationError) HTTPStatus() int  { return http.StatusBadRequest }
func (e *ValidationError) Unwrap() error    { return nil }

// NewValidationError cria um novo erro de validação.
func NewValidationError(msg string) AppError {
	return &ValidationError{Msg: msg}
}

// NotFoundError representa a ausência de um recurso solicitado.
type NotFoundError struct {
	Msg string
}

func (e *NotFoundError) Error() string    { return fmt.Sprintf("Recurso não encontrado: %s", e.Msg) }
func (e *NotFoundError) Category() string { return "NOT_FOUND" }
func (e *NotFoundError) HTTPStatus() int  { return http.StatusNotFound }
func (e *NotFoundError) Unwrap() error    { return nil }

// NewNotFoundError cria um novo erro de recurso não encontrado.
func NewNotFoundError(msg string) AppError {
	return &NotFoundError{Msg: msg}
}

// ConflictError representa a violação de um campo único (cpf, nome do pet, tipo de serviço).
// A API responde 400, como os clientes existentes esperam.
type ConflictError struct {
	Msg string
}

func (e *ConflictError) Error() string    { return fmt.Sprintf("Conflito: %s", e.Msg) }
func (e *ConflictError) Category() string { return "CONFLICT" }
func (e *ConflictError) HTTPStatus() int  { return http.StatusBadRequest }
func (e *ConflictError) Unwrap() error    { return nil }

// NewConflictError cria um novo erro de conflito.
func NewConflictError(msg string) AppError {
	return &ConflictError{Msg: msg}
}

// InvalidIdentifierError indica um identificador malformado, antes de qualquer busca.
type InvalidIdentifierError struct {
	Field string
	Value string
}

func (e *InvalidIdentifierError) Error() string {
	return fmt.Sprintf("Identificador inválido: %s '%s' não é um ID válido", e.Field, e.Value)
}
func (e *InvalidIdentifierError) Category() string { return "INVALID_IDENTIFIER" }
func (e *InvalidIdentifierError) HTTPStatus() int  { return http.StatusBadRequest }
func (e *InvalidIdentifierError) Unwrap() error    { return nil }

// NewInvalidIdentifierError cria um erro de identificador malformado.
func NewInvalidIdentifierError(field, value string) AppError {
	return &InvalidIdentifierError{Field: field, Value: value}
}

// OwnershipMismatchError indica que o pet informado não pertence ao cliente informado.
type OwnershipMismatchError struct {
	PetID    string
	ClientID string
}

func (e *OwnershipMismatchError) Error() string {
	return fmt.Sprintf("Pet %s não pertence ao cliente %s", e.PetID, e.ClientID)
}
func (e *OwnershipMismatchError) Category() string { return "OWNERSHIP_MISMATCH" }
func (e *OwnershipMismatchError) HTTPStatus() int  { return http.StatusBadRequest }
func (e *OwnershipMismatchError) Unwrap() error    { return nil }

// NewOwnershipMismatchError cria um erro de posse pet/cliente.
func NewOwnershipMismatchError(petID, clientID string) AppError {
	return &OwnershipMismatchError{PetID: petID, ClientID: clientID}
}

// PartialCascadeError indica que uma exclusão em cascata parou no meio.
// Stage identifica a etapa que falhou; as etapas anteriores já foram aplicadas.
type PartialCascadeError struct {
	Entity string
	ID     string
	Stage  string
	Err    error
}

func (e *PartialCascadeError) Error() string {
	return fmt.Sprintf("Exclusão em cascata de %s %s interrompida na etapa '%s': %v", e.Entity, e.ID, e.Stage, e.Err)
}
func (e *PartialCascadeError) Category() string { return "PARTIAL_CASCADE_FAILURE" }
func (e *PartialCascadeError) HTTPStatus() int  { return http.StatusInternalServerError }
func (e *PartialCascadeError) Unwrap() error    { return e.Err }

// NewPartialCascadeError cria um erro de cascata parcial.
func NewPartialCascadeError(entity, id, stage string, err error) AppError {
	return &PartialCascadeError{Entity: entity, ID: id, Stage: stage, Err: err}
}

// UnauthorizedError representa credenciais ausentes ou inválidas.
type UnauthorizedError struct {
	Msg string
}

func (e *UnauthorizedError) Error() string    { return fmt.Sprintf("Não autorizado: %s", e.Msg) }
func (e *UnauthorizedError) Category() string { return "UNAUTHORIZED" }
func (e *UnauthorizedError) HTTPStatus() int  { return http.StatusUnauthorized }
func (e *UnauthorizedError) Unwrap() error    { return nil }

// NewUnauthorizedError cria um erro 401.
func NewUnauthorizedError(msg string) AppError {
	return &UnauthorizedError{Msg: msg}
}

// ForbiddenError representa um usuário autenticado sem a permissão necessária.
type ForbiddenError struct {
	Msg string
}

func (e *ForbiddenError) Error() string    { return fmt.Sprintf("Acesso negado: %s", e.Msg) }
func (e *ForbiddenError) Category() string { return "FORBIDDEN" }
func (e *ForbiddenError) HTTPStatus() int  { return http.StatusForbidden }
func (e *ForbiddenError) Unwrap() error    { return nil }

// NewForbiddenError cria um erro 403.
func NewForbiddenError(msg string) AppError {
	return &ForbiddenError{Msg: msg}
}

// --- Erros de Infraestrutura ---

// InternalError representa falhas inesperadas no servidor, serviço ou repositório.
type InternalError struct {
	Msg string
	Err error // Erro original (e.g., erro do driver)
}

func (e *InternalError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("Erro Interno: %s: %v", e.Msg, e.Err)
	}
	return fmt.Sprintf("Erro Interno: %s", e.Msg)
}
func (e *InternalError) Category() string { return "INTERNAL_ERROR" }
func (e *InternalError) HTTPStatus() int  { return http.StatusInternalServerError }
func (e *InternalError) Unwrap() error    { return e.Err }

// NewInternalError cria um erro de servidor.
func NewInternalError(msg string, err error) AppError {
	return &InternalError{Msg: msg, Err: err}
}

// NewDBError é um atalho para InternalError vindo da camada de persistência.
func NewDBError(msg string, err error) AppError {
	return NewInternalError(fmt.Sprintf("%s (DB)", msg), err)
}

// --- Helpers ---

// IsNotFound informa se algum erro da cadeia é um NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// IsConflict informa se algum erro da cadeia é um ConflictError.
func IsConflict(err error) bool {
	var c *ConflictError
	return errors.As(err, &c)
}

// MapToHTTPStatus traduz um erro para status HTTP, categoria e mensagem.
func MapToHTTPStatus(err error) (int, string, string) {
	var appErr AppError
	if errors.As(err, &appErr) {
		if appErr.HTTPStatus() >= http.StatusInternalServerError {
			// Não expõe detalhes do driver para o cliente
			if pc, ok := appErr.(*PartialCascadeError); ok {
				return pc.HTTPStatus(), pc.Category(),
					fmt.Sprintf("Erro ao excluir %s e seus dados associados (etapa '%s').", pc.Entity, pc.Stage)
			}
			return appErr.HTTPStatus(), appErr.Category(), "Ocorreu um erro interno."
		}
		return appErr.HTTPStatus(), appErr.Category(), appErr.Error()
	}

	return http.StatusInternalServerError, "UNKNOWN_ERROR", "Ocorreu um erro inesperado."
}
