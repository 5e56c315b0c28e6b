// Package pgrepo guarda as entidades como documentos JSONB no PostgreSQL,
// uma tabela por coleção (id, doc, created_at). O schema vem das migrações
// embutidas em internal/pkg/database.
package pgrepo

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lib/pq"

	apperror "petshop/internal/errors"
	"petshop/internal/pkg/logger"
)

const uniqueViolation = "23505"

// table encapsula o acesso genérico a uma tabela de documentos.
type table[T any] struct {
	db      *sql.DB
	name    string
	timeout time.Duration
	log     logger.Logger
}

func newTable[T any](db *sql.DB, name string, timeout time.Duration, log logger.Logger) table[T] {
	return table[T]{db: db, name: name, timeout: timeout, log: log}
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}

// escapeLike escapa os curingas de LIKE para busca literal do trecho.
func escapeLike(term string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(term)
}

func (t table[T]) dbErr(err error, op string) error {
	t.log.Error(fmt.Sprintf("Falha no PostgreSQL ao %s (%s).", op, t.name), err)
	return apperror.NewDBError(fmt.Sprintf("Falha ao %s", op), err)
}

func (t table[T]) insert(ctx context.Context, id string, v T, conflictMsg string) error {
	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()

	doc, err := json.Marshal(v)
	if err != nil {
		return apperror.NewInternalError("Falha ao serializar documento", err)
	}
	query := fmt.Sprintf(`INSERT INTO %s (id, doc) VALUES ($1, $2::jsonb)`, t.name)
	if _, err := t.db.ExecContext(ctx, query, id, string(doc)); err != nil {
		if isUniqueViolation(err) {
			return apperror.NewConflictError(conflictMsg)
		}
		return t.dbErr(err, "inserir documento")
	}
	return nil
}

// findOne devolve o primeiro documento que satisfaz where; ok é false se não houver.
func (t table[T]) findOne(ctx context.Context, where string, args ...interface{}) (v T, ok bool, err error) {
	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()

	var raw []byte
	query := fmt.Sprintf(`SELECT doc FROM %s WHERE %s ORDER BY created_at, id LIMIT 1`, t.name, where)
	err = t.db.QueryRowContext(ctx, query, args...).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return v, false, nil
	}
	if err != nil {
		return v, false, t.dbErr(err, "buscar documento")
	}
	if err := json.Unmarshal(raw, &v); err != nil {
		return v, false, apperror.NewInternalError("Falha ao decodificar documento", err)
	}
	return v, true, nil
}

// find executa SELECT doc ... WHERE where suffix. suffix carrega ORDER BY/OFFSET/LIMIT.
func (t table[T]) find(ctx context.Context, where, suffix string, args ...interface{}) ([]T, error) {
	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()

	query := fmt.Sprintf(`SELECT doc FROM %s WHERE %s %s`, t.name, where, suffix)
	rows, err := t.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, t.dbErr(err, "listar documentos")
	}
	defer rows.Close()

	out := make([]T, 0)
	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			return nil, t.dbErr(err, "ler documento")
		}
		var v T
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, apperror.NewInternalError("Falha ao decodificar documento", err)
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, t.dbErr(err, "listar documentos")
	}
	return out, nil
}

func (t table[T]) replace(ctx context.Context, id string, v T, conflictMsg string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()

	doc, err := json.Marshal(v)
	if err != nil {
		return false, apperror.NewInternalError("Falha ao serializar documento", err)
	}
	query := fmt.Sprintf(`UPDATE %s SET doc = $2::jsonb WHERE id = $1`, t.name)
	res, err := t.db.ExecContext(ctx, query, id, string(doc))
	if err != nil {
		if isUniqueViolation(err) {
			return false, apperror.NewConflictError(conflictMsg)
		}
		return false, t.dbErr(err, "atualizar documento")
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, t.dbErr(err, "atualizar documento")
	}
	return n > 0, nil
}

func (t table[T]) deleteWhere(ctx context.Context, where string, args ...interface{}) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()

	res, err := t.db.ExecContext(ctx, fmt.Sprintf(`DELETE FROM %s WHERE %s`, t.name, where), args...)
	if err != nil {
		return 0, t.dbErr(err, "remover documentos")
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, t.dbErr(err, "remover documentos")
	}
	return n, nil
}

func (t table[T]) count(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()

	var n int64
	if err := t.db.QueryRowContext(ctx, fmt.Sprintf(`SELECT COUNT(*) FROM %s`, t.name)).Scan(&n); err != nil {
		return 0, t.dbErr(err, "contar documentos")
	}
	return n, nil
}

// pageClause pagina a partir do placeholder $first (skip) e $first+1 (limit).
func pageClause(first int) string {
	return fmt.Sprintf(`ORDER BY created_at, id OFFSET $%d LIMIT $%d`, first, first+1)
}

const insertionOrder = `ORDER BY created_at, id`
