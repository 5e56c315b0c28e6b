package domain

import (
	"fmt"
	"strings"
)

// PriceBand é uma faixa de preço fixa usada no filtro de serviços.
type PriceBand string

const (
	PriceBandCheap     PriceBand = "cheap services"
	PriceBandMedium    PriceBand = "medium services"
	PriceBandExpensive PriceBand = "expensive services"
)

// Limites das faixas. Acima de PriceCeiling nenhum serviço é classificado.
const (
	CheapCeiling  = 50.0
	MediumCeiling = 100.0
	PriceCeiling  = 500.0
)

// PriceRange é o intervalo (Min, Max]. Min nil significa sem limite inferior.
type PriceRange struct {
	Min *float64
	Max float64
}

// Contains aplica as regras de inclusão/exclusão do intervalo.
func (r PriceRange) Contains(price float64) bool {
	if r.Min != nil && price <= *r.Min {
		return false
	}
	return price <= r.Max
}

// ParsePriceBand aceita o nome completo ("cheap services") ou o curto ("cheap").
func ParsePriceBand(value string) (PriceBand, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "cheap services", "cheap":
		return PriceBandCheap, nil
	case "medium services", "medium":
		return PriceBandMedium, nil
	case "expensive services", "expensive":
		return PriceBandExpensive, nil
	}
	return "", fmt.Errorf("categoria de preço '%s' inválida", value)
}

// Range devolve o intervalo de preço da faixa.
func (b PriceBand) Range() (PriceRange, error) {
	switch b {
	case PriceBandCheap:
		return PriceRange{Max: CheapCeiling}, nil
	case PriceBandMedium:
		return PriceRange{Min: floatPtr(CheapCeiling), Max: MediumCeiling}, nil
	case PriceBandExpensive:
		return PriceRange{Min: floatPtr(MediumCeiling), Max: PriceCeiling}, nil
	}
	return PriceRange{}, fmt.Errorf("categoria de preço '%s' inválida", string(b))
}

// ClassifyPrice devolve a faixa do preço; ok é false acima de 500.
func ClassifyPrice(price float64) (band PriceBand, ok bool) {
	switch {
	case price <= CheapCeiling:
		return PriceBandCheap, true
	case price <= MediumCeiling:
		return PriceBandMedium, true
	case price <= PriceCeiling:
		return PriceBandExpensive, true
	}
	return "", false
}

func floatPtr(v float64) *float64 { return &v }
