package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"petshop/internal/domain"
)

func TestClassifyPrice_Boundaries(t *testing.T) {
	cases := []struct {
		price float64
		band  domain.PriceBand
		ok    bool
	}{
		{0, domain.PriceBandCheap, true},
		{50.00, domain.PriceBandCheap, true},
		{50.01, domain.PriceBandMedium, true},
		{100.00, domain.PriceBandMedium, true},
		{100.01, domain.PriceBandExpensive, true},
		{500.00, domain.PriceBandExpensive, true},
		{500.01, "", false},
	}

	for _, tc := range cases {
		band, ok := domain.ClassifyPrice(tc.price)
		assert.Equal(t, tc.ok, ok, "preço %.2f", tc.price)
		assert.Equal(t, tc.band, band, "preço %.2f", tc.price)
	}
}

func TestPriceBandRange_AgreesWithClassify(t *testing.T) {
	prices := []float64{0, 25, 50, 50.01, 75, 100, 100.01, 250, 500, 500.01, 1000}
	bands := []domain.PriceBand{domain.PriceBandCheap, domain.PriceBandMedium, domain.PriceBandExpensive}

	for _, band := range bands {
		r, err := band.Range()
		require.NoError(t, err)
		for _, p := range prices {
			classified, ok := domain.ClassifyPrice(p)
			assert.Equal(t, ok && classified == band, r.Contains(p), "faixa %s, preço %.2f", band, p)
		}
	}
}

func TestParsePriceBand(t *testing.T) {
	b, err := domain.ParsePriceBand("Cheap Services")
	require.NoError(t, err)
	assert.Equal(t, domain.PriceBandCheap, b)

	b, err = domain.ParsePriceBand("expensive")
	require.NoError(t, err)
	assert.Equal(t, domain.PriceBandExpensive, b)

	_, err = domain.ParsePriceBand("luxury")
	assert.Error(t, err)

	_, err = domain.PriceBand("luxury").Range()
	assert.Error(t, err)
}
