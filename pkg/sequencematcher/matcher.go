package sequencematcher

import "github.com/vencik/libsdcxx/pkg/bigram"

// Matcher owns the triangular matrix of lazily computed bigram unions
// over an appended sequence of per-token bigram multisets, plus the set
// of "strip" token indices, per spec.md §3/§4.3.
//
// A Matcher is mutated only by appending: tokens are pushed one at a
// time and never removed or reordered. The zero value is an empty,
// ready-to-use Matcher.
//
// A Matcher is not safe for concurrent match iteration, because
// Iterator.Next mutates the matrix via memoization even though matches
// are read-only at the API level — see spec.md §5. Two iterations over a
// fully pre-populated matrix (every reachable cell already holding
// materialized bigrams) would be safe concurrently, but no such guarantee
// is made by construction.
type Matcher[T bigram.Unit] struct {
	rows     [][]cell[T]
	stripIxs map[int]struct{}
}

// ByteMatcher is the ASCII/ANSI instantiation of Matcher.
type ByteMatcher = Matcher[byte]

// RuneMatcher is the Unicode instantiation of Matcher.
type RuneMatcher = Matcher[rune]

// Option configures a Matcher at construction time, following the
// teacher's preference for descriptive, named construction over bare
// positional arguments (see SPEC_FULL.md "Configuration").
type Option[T bigram.Unit] func(*Matcher[T])

// WithReserve pre-sizes the matcher's row storage for an expected token
// count. It is purely a capacity hint: it changes nothing observable.
func WithReserve[T bigram.Unit](n int) Option[T] {
	return func(m *Matcher[T]) { m.Reserve(n) }
}

// New builds an empty Matcher, applying any Options.
func New[T bigram.Unit](opts ...Option[T]) *Matcher[T] {
	m := &Matcher[T]{}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Reserve pre-sizes the matcher's row storage for an expected token
// count n. It is a hint only; PushBack works correctly without it.
func (m *Matcher[T]) Reserve(n int) {
	if n <= cap(m.rows) {
		return
	}
	grown := make([][]cell[T], len(m.rows), n)
	copy(grown, m.rows)
	m.rows = grown
}

// Len returns the current token count.
func (m *Matcher[T]) Len() int { return len(m.rows) }

// addRow grows every existing row by one (empty) cell, then appends a new
// row holding a single (empty) cell, per spec.md §4.3 "Triangular matrix
// construction (append path)".
func (m *Matcher[T]) addRow() {
	for i := range m.rows {
		m.rows[i] = append(m.rows[i], cell[T]{})
	}
	m.rows = append(m.rows, make([]cell[T], 1))
}

// PushBack appends a token's bigram multiset to the sequence. If strip is
// true, the token is recorded as a "strip" token: a valid match may
// contain it but may not begin or end on it.
func (m *Matcher[T]) PushBack(bigrams bigram.Multiset[T], strip bool) {
	idx := m.Len()
	if strip {
		if m.stripIxs == nil {
			m.stripIxs = make(map[int]struct{})
		}
		m.stripIxs[idx] = struct{}{}
	}
	m.addRow()
	m.rows[0][idx].setBigrams(bigrams)
}

// EmplaceBack constructs a bigram multiset from units and appends it,
// equivalent to PushBack(bigram.New(units), strip).
func (m *Matcher[T]) EmplaceBack(units []T, strip bool) {
	m.PushBack(bigram.New(units), strip)
}

// PushByteString appends the bigrams of the raw bytes of s to m,
// equivalent to libsdcxx's emplace_back(string) for the ASCII/ANSI
// instantiation.
func PushByteString(m *ByteMatcher, s string, strip bool) {
	m.EmplaceBack([]byte(s), strip)
}

// PushRuneString appends the bigrams of the runes (code points) of s to
// m, equivalent to libsdcxx's emplace_back(string) for the Unicode
// instantiation.
func PushRuneString(m *RuneMatcher, s string, strip bool) {
	m.EmplaceBack([]rune(s), strip)
}

func (m *Matcher[T]) isStrip(idx int) bool {
	_, ok := m.stripIxs[idx]
	return ok
}

// subIndices computes the two child cells whose union covers the same
// token span as (i, j), per spec.md §4.3's divide-and-combine recurrence:
//
//	k  = i/2
//	i1 = k,     j1 = j            (covers [j, j+k], length k+1)
//	i2 = i-k-1, j2 = j+k+1         (covers [j+k+1, j+i], length i-k)
func subIndices(i, j int) (i1, j1, i2, j2 int) {
	k := i / 2
	i1, j1 = k, j
	i2, j2 = i-k-1, j+k+1
	return i1, j1, i2, j2
}

// bigramsSize returns the cardinality of the bigram union covering the
// length-(i+1) sub-sequence starting at j, computing and memoizing it
// (without necessarily materializing the union) if not already known.
func (m *Matcher[T]) bigramsSize(i, j int) int {
	c := &m.rows[i][j]
	if c.state != cellEmpty {
		return cellSizeOf(c)
	}

	i1, j1, i2, j2 := subIndices(i, j)
	size := m.bigramsSize(i1, j1) + m.bigramsSize(i2, j2)
	c.setSize(size)
	return size
}

// bigrams returns the materialized bigram union covering the
// length-(i+1) sub-sequence starting at j, computing and memoizing it if
// not already materialized.
func (m *Matcher[T]) bigrams(i, j int) bigram.Multiset[T] {
	c := &m.rows[i][j]
	if c.state == cellBigrams {
		return c.bigrams
	}

	i1, j1, i2, j2 := subIndices(i, j)
	left := m.bigrams(i1, j1)
	right := m.bigrams(i2, j2)

	combined := &bigram.SortedSet[T]{}
	combined.UnionInPlace(left)
	combined.UnionInPlace(right)

	c.setBigrams(combined)
	return combined
}
