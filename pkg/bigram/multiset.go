package bigram

import "slices"

// Entry pairs a Bigram with its multiplicity in a Multiset.
type Entry[T Unit] struct {
	Bigram Bigram[T]
	Count  int
}

// Multiset is the capability set shared by every bigram-multiset
// representation: cardinality, in-place union, intersection size and
// ordered iteration. SequenceMatcher is written against this interface
// and is agnostic to which representation backs it.
type Multiset[T Unit] interface {
	// Len returns the multiset's cardinality (sum of entry counts).
	Len() int

	// UnionInPlace merges other into the receiver (A ⊕= B). It is a
	// monoidal, additive merge: counts of shared bigrams add, bigrams
	// present only in other are inserted. Never removes anything.
	UnionInPlace(other Multiset[T])

	// IntersectSize returns |receiver ∩ other| without materializing the
	// intersection.
	IntersectSize(other Multiset[T]) int

	// Entries iterates the multiset's (bigram, count) pairs in bigram
	// order, calling yield for each. It stops early if yield returns
	// false. Entries is restartable and read-only.
	Entries(yield func(Entry[T]) bool)
}

// SorensenDice computes the Sørensen-Dice coefficient of a and b:
//
//	SDC(A, B) = 2|A ∩ B| / (|A| + |B|)
//
// SDC is 0 whenever the intersection is empty, including when both
// multisets are empty (rather than the undefined 0/0). The result is
// always in [0, 1].
func SorensenDice[T Unit](a, b Multiset[T]) float64 {
	isect := a.IntersectSize(b)
	if isect == 0 {
		return 0
	}
	return 2 * float64(isect) / float64(a.Len()+b.Len())
}

// sortedSnapshot is implemented by every concrete Multiset representation
// in this package; it hands back the representation's own bigram-ordered
// entries, avoiding an Entries callback round-trip on the fast path.
type sortedSnapshot[T Unit] interface {
	sortedRuns() []Entry[T]
}

// sortedEntriesOf returns m's entries in ascending bigram order. Concrete
// types in this package supply their own sorted runs directly (SortedSet
// hands back its runs in O(1); HashSet builds a sorted snapshot in
// O(n log n)); a foreign Multiset[T] implementation falls back to draining
// Entries into a slice and sorting it, which is still correct (per the
// Multiset.Entries contract) even though it is no longer O(n).
func sortedEntriesOf[T Unit](m Multiset[T]) []Entry[T] {
	if snap, ok := m.(sortedSnapshot[T]); ok {
		return snap.sortedRuns()
	}

	var out []Entry[T]
	m.Entries(func(e Entry[T]) bool {
		out = append(out, e)
		return true
	})
	slices.SortFunc(out, func(a, b Entry[T]) int { return a.Bigram.Compare(b.Bigram) })
	return out
}
