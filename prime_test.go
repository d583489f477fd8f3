package dhash

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsPrime(t *testing.T) {
	testCases := []struct {
		x    int
		want Primality
	}{
		{-7, PrimalityUndefined},
		{0, PrimalityUndefined},
		{1, PrimalityUndefined},
		{2, PrimalityPrime},
		{3, PrimalityPrime},
		{4, PrimalityComposite},
		{9, PrimalityComposite},
		{25, PrimalityComposite},
		{49, PrimalityComposite},
		{53, PrimalityPrime},
		{91, PrimalityComposite},
		{97, PrimalityPrime},
		{106, PrimalityComposite},
		{107, PrimalityPrime},
		{7919, PrimalityPrime},
		{7921, PrimalityComposite}, // 89*89
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.want, IsPrime(tc.x), "IsPrime(%d)", tc.x)
	}
}

func TestNextPrime(t *testing.T) {
	testCases := []struct {
		x    int
		want int
	}{
		{-3, 2},
		{0, 2},
		{2, 2},
		{4, 5},
		{26, 29},
		{53, 53},
		{54, 59},
		{106, 107},
		{212, 223},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.want, NextPrime(tc.x), "NextPrime(%d)", tc.x)
	}
}

func TestNextPrimeIsSmallest(t *testing.T) {
	for x := 2; x < 2000; x++ {
		p := NextPrime(x)
		require.Equal(t, PrimalityPrime, IsPrime(p))
		for y := x; y < p; y++ {
			require.NotEqual(t, PrimalityPrime, IsPrime(y), "%d skipped by NextPrime(%d)", y, x)
		}
	}
}

func TestPrimalityText(t *testing.T) {
	assert.Equal(t, "Prime", PrimalityPrime.String())
	assert.Equal(t, "Primality(9)", Primality(9).String())

	p, err := PrimalityString("composite")
	require.NoError(t, err)
	assert.Equal(t, PrimalityComposite, p)

	_, err = PrimalityString("maybe")
	assert.Error(t, err)
}
