// Package sequencematcher implements fuzzy sub-sequence search: matching
// a query bigram multiset against contiguous runs of a token sequence's
// own per-token bigram multisets, scored by Sørensen-Dice coefficient.
//
// Ported from libsdcxx (https://github.com/vencik/libsdcxx), Copyright (c)
// 2023, Václav Krpec. Redistribution and use in source and binary forms,
// with or without modification, are permitted under a BSD 3-Clause
// license; see the original project for full terms.
package sequencematcher

import (
	"fmt"

	"github.com/vencik/libsdcxx/pkg/bigram"
)

// cellState is the tag of a matrix cell's three-state value, per
// spec.md §3 "MatrixCell". Transitions are monotone: empty -> size ->
// bigrams, or empty -> bigrams directly. There is no downgrade.
type cellState int

const (
	cellEmpty cellState = iota
	cellSize
	cellBigrams
)

// cell is one entry of the triangular matrix. Reified as a small tagged
// struct, per spec.md §9, rather than a pair of "has size?"/"has
// bigrams?" booleans, so that the monotone state machine is a single
// checkable invariant instead of four reachable boolean combinations.
type cell[T bigram.Unit] struct {
	state   cellState
	size    int
	bigrams bigram.Multiset[T]
}

// setSize stores the cell's cardinality without materializing its
// bigrams. It is a programming error to call this on a cell that already
// knows its size.
func (c *cell[T]) setSize(n int) {
	if c.state != cellEmpty {
		panic(fmt.Sprintf("sequencematcher: setSize on cell already in state %d", c.state))
	}
	c.size = n
	c.state = cellSize
}

// setBigrams materializes the cell's union multiset. It is a programming
// error to call this on a cell that already holds materialized bigrams.
func (c *cell[T]) setBigrams(b bigram.Multiset[T]) {
	if c.state == cellBigrams {
		panic("sequencematcher: setBigrams on cell that already holds bigrams")
	}
	c.bigrams = b
	c.state = cellBigrams
}

// cellSizeOf returns a cell's cardinality; it must already be in state
// cellSize or cellBigrams.
func cellSizeOf[T bigram.Unit](c *cell[T]) int {
	switch c.state {
	case cellSize:
		return c.size
	case cellBigrams:
		return c.bigrams.Len()
	default:
		panic("sequencematcher: size requested on an empty cell")
	}
}
