package bigram

import (
	"slices"
	"strconv"
	"strings"
)

// SortedSet is the primary, recommended bigram-multiset representation: a
// strictly ascending, run-length-compressed sequence of (bigram, count)
// entries. Construction is O(n log n); UnionInPlace and IntersectSize are
// O(m+n).
//
// The zero value is a valid empty SortedSet.
type SortedSet[T Unit] struct {
	runs []Entry[T] // strictly ascending by Bigram, no two entries share one
	size int        // cached cardinality, equal to the sum of run counts
}

// ByteSet is the ASCII/ANSI instantiation: bigrams of raw bytes.
type ByteSet = SortedSet[byte]

// RuneSet is the Unicode instantiation: bigrams of runes (code points).
type RuneSet = SortedSet[rune]

// New builds a SortedSet from a sequence of code units. A sequence
// shorter than 2 units produces an empty multiset.
func New[T Unit](units []T) *SortedSet[T] {
	if len(units) < 2 {
		return &SortedSet[T]{}
	}

	pairs := make([]Bigram[T], 0, len(units)-1)
	for i := 0; i < len(units)-1; i++ {
		pairs = append(pairs, Bigram[T]{First: units[i], Second: units[i+1]})
	}
	slices.SortFunc(pairs, func(a, b Bigram[T]) int { return a.Compare(b) })

	runs := make([]Entry[T], 0, len(pairs))
	runs = append(runs, Entry[T]{Bigram: pairs[0], Count: 1})
	for _, p := range pairs[1:] {
		last := &runs[len(runs)-1]
		if last.Bigram == p {
			last.Count++
			continue
		}
		runs = append(runs, Entry[T]{Bigram: p, Count: 1})
	}

	return &SortedSet[T]{runs: runs, size: len(pairs)}
}

// NewBytes builds a ByteSet from the raw bytes of s.
func NewBytes(s string) *ByteSet {
	return New([]byte(s))
}

// NewRunes builds a RuneSet from the runes (code points) of s.
func NewRunes(s string) *RuneSet {
	return New([]rune(s))
}

// Len returns the multiset's cardinality.
func (s *SortedSet[T]) Len() int { return s.size }

// sortedRuns returns the set's own run-length entries, already in bigram
// order; callers must not mutate the returned slice.
func (s *SortedSet[T]) sortedRuns() []Entry[T] { return s.runs }

// UnionInPlace merges other into s (A ⊕= B), per the monoidal merge
// described in spec.md §4.1: advance through both runs in lockstep,
// merging counts of shared bigrams and splicing in bigrams unique to
// other, then appending whatever tail remains.
func (s *SortedSet[T]) UnionInPlace(other Multiset[T]) {
	otherRuns := sortedEntriesOf[T](other)
	if len(otherRuns) == 0 {
		return
	}
	if s.size == 0 { // optimisation: empty multiset, just adopt other's runs
		s.runs = slices.Clone(otherRuns)
		s.size = other.Len()
		return
	}

	merged := make([]Entry[T], 0, len(s.runs)+len(otherRuns))
	i, j := 0, 0
	for i < len(s.runs) && j < len(otherRuns) {
		switch c := s.runs[i].Bigram.Compare(otherRuns[j].Bigram); {
		case c < 0:
			merged = append(merged, s.runs[i])
			i++
		case c == 0:
			merged = append(merged, Entry[T]{
				Bigram: s.runs[i].Bigram,
				Count:  s.runs[i].Count + otherRuns[j].Count,
			})
			i++
			j++
		default:
			merged = append(merged, otherRuns[j])
			j++
		}
	}
	merged = append(merged, s.runs[i:]...)
	merged = append(merged, otherRuns[j:]...)

	s.runs = merged
	s.size += other.Len()
}

// Unite returns the union of one or more bigram multisets. The union is
// constructed right-to-left into a fresh SortedSet, starting from the
// right-most argument; no argument is modified. Since union is commutative and associative this has no effect on the
// result and only matters for allocation efficiency, mirroring
// libsdcxx's own variadic unite().
func Unite[T Unit](arg1 Multiset[T], args ...Multiset[T]) *SortedSet[T] {
	var acc *SortedSet[T]
	if len(args) == 0 {
		acc = &SortedSet[T]{}
	} else {
		acc = Unite(args[0], args[1:]...)
	}
	acc.UnionInPlace(arg1)
	return acc
}

// IntersectSize returns |s ∩ other| without materializing the
// intersection: a linear merge walk over both sorted run sequences,
// accumulating min(count1, count2) at each matching bigram.
func (s *SortedSet[T]) IntersectSize(other Multiset[T]) int {
	otherRuns := sortedEntriesOf[T](other)

	size := 0
	i, j := 0, 0
	for i < len(s.runs) && j < len(otherRuns) {
		switch c := s.runs[i].Bigram.Compare(otherRuns[j].Bigram); {
		case c < 0:
			i++
		case c == 0:
			if s.runs[i].Count < otherRuns[j].Count {
				size += s.runs[i].Count
			} else {
				size += otherRuns[j].Count
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
// order, stopping early if yield returns false.
func (s *SortedSet[T]) Entries(yield func(Entry[T]) bool) {
	for _, e := range s.runs {
		if !yield(e) {
			return
		}
	}
}

// String renders the debug form described in spec.md §6:
// "<name>(size: <N>, {c1c2: k, c3c4: k, ...})".
func (s *SortedSet[T]) String() string {
	return serialiseMultiset("bigrams", s.size, s.runs)
}

func serialiseMultiset[T Unit](name string, size int, runs []Entry[T]) string {
	var b strings.Builder
	b.WriteString(name)
	b.WriteString("(size: ")
	b.WriteString(strconv.Itoa(size))
	b.WriteString(", {")
	for i, e := range runs {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(e.Bigram.String())
		b.WriteString(": ")
		b.WriteString(strconv.Itoa(e.Count))
	}
	b.WriteString("})")
	return b.String()
}
