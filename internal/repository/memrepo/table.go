// Package memrepo implementa os repositórios em memória. Cada coleção é um
// mapa protegido por mutex que preserva a ordem de inserção, de modo que
// listagens e relatórios são determinísticos.
package memrepo

import (
	"errors"
	"sync"

	"petshop/internal/domain"
)

var (
	errMissing   = errors.New("documento não encontrado")
	errDuplicate = errors.New("campo único duplicado")
)

type table[T any] struct {
	mu    sync.RWMutex
	rows  map[string]T
	order []string
	clone func(T) T
}

func newTable[T any](clone func(T) T) *table[T] {
	if clone == nil {
		clone = func(v T) T { return v }
	}
	return &table[T]{rows: make(map[string]T), clone: clone}
}

// insert grava v se nenhum documento existente satisfizer conflict.
func (t *table[T]) insert(id string, v T, conflict func(T) bool) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, exists := t.rows[id]; exists {
		return errDuplicate
	}
	if conflict != nil {
		for _, row := range t.rows {
			if conflict(row) {
				return errDuplicate
			}
		}
	}
	t.rows[id] = t.clone(v)
	t.order = append(t.order, id)
	return nil
}

func (t *table[T]) get(id string) (T, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	v, ok := t.rows[id]
	if !ok {
		var zero T
		return zero, false
	}
	return t.clone(v), true
}

// find devolve cópias dos documentos que satisfazem match, na ordem de inserção.
func (t *table[T]) find(match func(T) bool) []T {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make([]T, 0)
	for _, id := range t.order {
		v := t.rows[id]
		if match == nil || match(v) {
			out = append(out, t.clone(v))
		}
	}
	return out
}

func (t *table[T]) first(match func(T) bool) (T, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	for _, id := range t.order {
		if v := t.rows[id]; match(v) {
			return t.clone(v), true
		}
	}
	var zero T
	return zero, false
}

// replace substitui o documento id; conflict recebe os demais documentos.
func (t *table[T]) replace(id string, v T, conflict func(T) bool) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.rows[id]; !ok {
		return errMissing
	}
	if conflict != nil {
		for otherID, row := range t.rows {
			if otherID != id && conflict(row) {
				return errDuplicate
			}
		}
	}
	t.rows[id] = t.clone(v)
	return nil
}

func (t *table[T]) remove(id string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.rows[id]; !ok {
		return false
	}
	delete(t.rows, id)
	t.dropFromOrder(map[string]struct{}{id: {}})
	return true
}

func (t *table[T]) removeWhere(match func(T) bool) int64 {
	t.mu.Lock()
	defer t.mu.Unlock()

	removed := make(map[string]struct{})
	for id, row := range t.rows {
		if match(row) {
			delete(t.rows, id)
			removed[id] = struct{}{}
		}
	}
	t.dropFromOrder(removed)
	return int64(len(removed))
}

func (t *table[T]) dropFromOrder(ids map[string]struct{}) {
	if len(ids) == 0 {
		return
	}
	kept := t.order[:0]
	for _, id := range t.order {
		if _, gone := ids[id]; !gone {
			kept = append(kept, id)
		}
	}
	t.order = kept
}

func (t *table[T]) count() int64 {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return int64(len(t.rows))
}

func paginate[T any](items []T, page domain.Page) []T {
	if page.Skip >= len(items) {
		return make([]T, 0)
	}
	end := len(items)
	if page.Limit > 0 && page.Skip+page.Limit < end {
		end = page.Skip + page.Limit
	}
	return items[page.Skip:end]
}
