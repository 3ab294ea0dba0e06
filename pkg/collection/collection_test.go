package collection

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestMapAndUnique(t *testing.T) {
	ids := Unique(Map([]int{3, 1, 3, 2, 1}, func(n int) uint { return uint(n) }))
	assert.Equal(t, []uint{3, 1, 2}, ids)
	assert.Empty(t, Unique([]string(nil)))
}

func TestKeyBy(t *testing.T) {
	type row struct {
		id   uint
		name string
	}
	got := KeyBy([]row{{1, "a"}, {2, "b"}, {1, "c"}}, func(r row) uint { return r.id })
	assert.Len(t, got, 2)
	assert.Equal(t, "c", got[1].name)
}

func TestSumDecimal(t *testing.T) {
	sum := SumDecimal([]float64{0.1, 0.2, 1500.5}, decimal.NewFromFloat)
	assert.Equal(t, "1500.8", sum.String())
	assert.True(t, SumDecimal(nil, decimal.NewFromFloat).IsZero())
}
