package bigram

import "slices"

// HashSet is the alternative, hash-bag bigram-multiset representation:
// an unordered bag of bigrams keyed by hash, provided as a reference
// implementation and benchmark baseline alongside SortedSet (spec.md
// §4.2). Construction is O(n); UnionInPlace is O(n); IntersectSize and
// Entries fall back to a sorted snapshot (O(n log n)) so that, per
// Testable Property 7, the two representations agree exactly on |A|,
// |A ∩ B| and SDC(A, B) for any mix of the two.
//
// The zero value is a valid empty HashSet.
type HashSet[T Unit] struct {
	bag map[Bigram[T]]int
}

// ByteHashSet is the ASCII/ANSI instantiation of HashSet.
type ByteHashSet = HashSet[byte]

// RuneHashSet is the Unicode instantiation of HashSet.
type RuneHashSet = HashSet[rune]

// NewHash builds a HashSet from a sequence of code units. A sequence
// shorter than 2 units produces an empty multiset.
func NewHash[T Unit](units []T) *HashSet[T] {
	h := &HashSet[T]{}
	if len(units) < 2 {
		return h
	}
	h.bag = make(map[Bigram[T]]int, len(units)-1)
	for i := 0; i < len(units)-1; i++ {
		h.bag[Bigram[T]{First: units[i], Second: units[i+1]}]++
	}
	return h
}

// NewHashBytes builds a ByteHashSet from the raw bytes of s.
func NewHashBytes(s string) *ByteHashSet {
	return NewHash([]byte(s))
}

// NewHashRunes builds a RuneHashSet from the runes (code points) of s.
func NewHashRunes(s string) *RuneHashSet {
	return NewHash([]rune(s))
}

// Len returns the multiset's cardinality.
func (h *HashSet[T]) Len() int {
	total := 0
	for _, c := range h.bag {
		total += c
	}
	return total
}

// sortedRuns builds a fresh bigram-ordered snapshot of the bag. Unlike
// SortedSet.sortedRuns this is O(n log n), not O(1): a hash bag has no
// intrinsic order to hand back.
func (h *HashSet[T]) sortedRuns() []Entry[T] {
	out := make([]Entry[T], 0, len(h.bag))
	for b, c := range h.bag {
		out = append(out, Entry[T]{Bigram: b, Count: c})
	}
	slices.SortFunc(out, func(a, b Entry[T]) int { return a.Bigram.Compare(b.Bigram) })
	return out
}

// UnionInPlace merges other into h, adding counts for shared bigrams and
// inserting bigrams unique to other.
func (h *HashSet[T]) UnionInPlace(other Multiset[T]) {
	for _, e := range sortedEntriesOf[T](other) {
		if h.bag == nil {
			h.bag = make(map[Bigram[T]]int)
		}
		h.bag[e.Bigram] += e.Count
	}
}

// IntersectSize returns |h ∩ other| by walking stable sorted snapshots of
// both bags in lockstep, so that counts (multiplicities) are respected
// exactly as the sorted-run variant's merge would compute them.
func (h *HashSet[T]) IntersectSize(other Multiset[T]) int {
	mine := h.sortedRuns()
	theirs := sortedEntriesOf[T](other)

	size := 0
	i, j := 0, 0
	for i < len(mine) && j < len(theirs) {
		switch c := mine[i].Bigram.Compare(theirs[j].Bigram); {
		case c < 0:
			i++
		case c == 0:
			if mine[i].Count < theirs[j].Count {
				size += mine[i].Count
			} else {
				size += theirs[j].Count
			}
			i++
			j++
		default:
			j++
		}
	}
	return size
}

// Entries calls yield for each (bigram, count) pair in ascending bigram
// order (a sorted snapshot is taken first so that iteration is stable and
// restartable, matching SortedSet's contract), stopping early if yield
// returns false.
func (h *HashSet[T]) Entries(yield func(Entry[T]) bool) {
	for _, e := range h.sortedRuns() {
		if !yield(e) {
			return
		}
	}
}

// String renders the same debug form as SortedSet, named "bigram_bag" to
// distinguish the representation in logs.
func (h *HashSet[T]) String() string {
	runs := h.sortedRuns()
	return serialiseMultiset("bigram_bag", h.Len(), runs)
}
