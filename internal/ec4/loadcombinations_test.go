package ec4

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGoverningCombination(t *testing.T) {
	loads, combo := Governing(Actions{Permanent: 1000, Variable: 500}, Combinations)

	assert.Equal(t, "6.10", combo.ID)
	assert.InDelta(t, 2100, loads.NEd, 1e-9)
	assert.InDelta(t, 1350, loads.NGd, 1e-9)
}

func TestCombinationFactored(t *testing.T) {
	a := Actions{Permanent: 100, Variable: 100}
	assert.InDelta(t, 240, Combinations[1].Factored(a), 1e-9)
	assert.InDelta(t, 264.75, Combinations[2].Factored(a), 1e-9)
}
