// Package bigram implements ordered bigram multisets and the
// Sørensen-Dice coefficient over them.
//
// Ported from libsdcxx (https://github.com/vencik/libsdcxx), Copyright (c)
// 2023, Václav Krpec. Redistribution and use in source and binary forms,
// with or without modification, are permitted under a BSD 3-Clause
// license; see the original project for full terms.
package bigram

import (
	"cmp"
	"fmt"
)

// Unit is the constraint on code units a Bigram may be built from. The
// two required instantiations are byte (ASCII/ANSI strings) and rune
// (Unicode strings); the type is left open to any ordered type so callers
// with a different code-unit representation can still use the algorithms.
type Unit interface {
	cmp.Ordered
}

// Bigram is an ordered pair of adjacent code units drawn from a string.
// It is totally ordered lexicographically: First is compared before
// Second.
type Bigram[T Unit] struct {
	First  T
	Second T
}

// Compare orders b against other lexicographically, First then Second.
// It returns a negative number, zero, or a positive number as b is less
// than, equal to, or greater than other.
func (b Bigram[T]) Compare(other Bigram[T]) int {
	if c := cmp.Compare(b.First, other.First); c != 0 {
		return c
	}
	return cmp.Compare(b.Second, other.Second)
}

// Less reports whether b sorts strictly before other.
func (b Bigram[T]) Less(other Bigram[T]) bool {
	return b.Compare(other) < 0
}

// String renders the two code units as a 2-character string, e.g. "ab".
// It is a debug aid, not a parseable form.
func (b Bigram[T]) String() string {
	return fmt.Sprintf("%c%c", b.First, b.Second)
}
