package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"gridsheet/contracts"
)

func TestResolveRange(t *testing.T) {
	t.Run("single_cell", func(t *testing.T) {
		assert.Equal(t, []contracts.Address{"B2"}, ResolveRange("B2"))
		assert.Equal(t, []contracts.Address{"B2"}, ResolveRange("b2"))
	})

	t.Run("rectangle_column_outer_row_inner", func(t *testing.T) {
		assert.Equal(t,
			[]contracts.Address{"A1", "A2", "A3", "B1", "B2", "B3", "C1", "C2", "C3"},
			ResolveRange("A1:C3"),
		)
	})

	t.Run("corner_order_is_irrelevant", func(t *testing.T) {
		expected := ResolveRange("A1:C3")

		assert.Equal(t, expected, ResolveRange("C3:A1"))
		assert.Equal(t, expected, ResolveRange("A3:C1"))
		assert.Equal(t, expected, ResolveRange("C1:A3"))
	})

	t.Run("row_and_column_vectors", func(t *testing.T) {
		assert.Equal(t, []contracts.Address{"A1", "A2", "A3"}, ResolveRange("A1:A3"))
		assert.Equal(t, []contracts.Address{"A1", "B1", "C1"}, ResolveRange("A1:C1"))
	})

	t.Run("malformed_ranges_silently_yield_no_cells", func(t *testing.T) {
		for _, spec := range []string{"", ":", "A1:", "1A:B2", "A1:B", "A1:B2:C3", "hello"} {
			assert.Empty(t, ResolveRange(spec), "spec %q", spec)
		}
	})

	t.Run("out_of_bounds_corner_yields_no_cells", func(t *testing.T) {
		assert.Empty(t, ResolveRange("A1:AAA1"))
		assert.Empty(t, ResolveRange("A1:A100001"))
	})
}
