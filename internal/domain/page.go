package domain

import "fmt"

const (
	DefaultPageLimit = 10
	MaxPageLimit     = 100
)

// Page define a paginação das listagens: skip ≥ 0 e 0 < limit ≤ 100.
type Page struct {
	Skip  int
	Limit int
}

// DefaultPage devolve skip 0 e limit 10.
func DefaultPage() Page {
	return Page{Skip: 0, Limit: DefaultPageLimit}
}

// Validate confere os limites da paginação.
func (p Page) Validate() error {
	if p.Skip < 0 {
		return fmt.Errorf("skip deve ser maior ou igual a 0 (recebido %d)", p.Skip)
	}
	if p.Limit <= 0 || p.Limit > MaxPageLimit {
		return fmt.Errorf("limit deve estar entre 1 e %d (recebido %d)", MaxPageLimit, p.Limit)
	}
	return nil
}
