package sequencematcher

import (
	"fmt"

	"github.com/vencik/libsdcxx/pkg/bigram"
)

// Match is a single reported sub-sequence match: tokens [Begin, End)
// (length Size = End - Begin) whose bigram union scored SDC against the
// query.
type Match[T bigram.Unit] struct {
	Begin int
	End   int
	Size  int
	SDC   float64
}

// String renders the debug form from spec.md §6:
// "match(begin: <j>, end: <j+i+1>, size: <i+1>, SDC: <sdc>)".
func (mm Match[T]) String() string {
	return fmt.Sprintf("match(begin: %d, end: %d, size: %d, SDC: %v)",
		mm.Begin, mm.End, mm.Size, mm.SDC)
}

// Iterator is a lazy, pull-style cursor over a Matcher's matches, in the
// idiom of database/sql.Rows: call Next until it returns false, reading
// Current (and Bigrams, if needed) in between. It is not a coroutine and
// has no suspension points — each call to Next runs the nested
// start/length loops described in spec.md §4.3 until the next match is
// found or the sequence is exhausted.
//
// An Iterator borrows its Matcher for its entire lifetime and mutates the
// matrix via memoization as it advances; see Matcher's doc comment for
// the concurrency implications.
type Iterator[T bigram.Unit] struct {
	m              *Matcher[T]
	query          bigram.Multiset[T]
	queryLen       int
	sdcThreshold   float64
	ratioThreshold float64

	i, j       int
	hasCurrent bool
	exhausted  bool

	cur        Match[T]
	curBigrams bigram.Multiset[T]
}

// Match begins a lazy search for sub-sequences of m whose bigram union
// scores a Sørensen-Dice coefficient of at least threshold against query.
// threshold must be in (0, 1]; any other value is a programming error
// and panics.
//
// Matches are yielded by the returned Iterator in ascending (begin,
// size) lexicographic order. The stream is finite; a fresh Iterator
// restarts the search from the beginning.
func (m *Matcher[T]) Match(query bigram.Multiset[T], threshold float64) *Iterator[T] {
	if threshold <= 0 || threshold > 1 {
		panic(fmt.Sprintf("sequencematcher: threshold %v outside (0, 1]", threshold))
	}

	queryLen := query.Len()
	it := &Iterator[T]{
		m:              m,
		query:          query,
		queryLen:       queryLen,
		sdcThreshold:   threshold,
		ratioThreshold: 2/threshold - 1,
	}
	if queryLen == 0 || m.Len() == 0 {
		// An empty query can never have a non-empty intersection with
		// anything (spec.md §4.3: "treating |Q| = 0 as non-matching"),
		// and an empty matcher has no sub-sequences to offer at all.
		it.exhausted = true
	}
	return it
}

// Next advances to the next match, returning false once the stream is
// exhausted. Current (and Bigrams) are only valid after a call to Next
// returned true.
func (it *Iterator[T]) Next() bool {
	if it.exhausted {
		return false
	}
	if it.hasCurrent {
		it.i++
		it.hasCurrent = false
	}

	n := it.m.Len()
	for ; it.j < n; it.j++ {
		if it.m.isStrip(it.j) { // sub-sequence may not begin on a strip token
			continue
		}

		for ; it.i < n-it.j; it.i++ {
			if it.m.isStrip(it.j + it.i) { // nor end on one
				continue
			}

			s := it.m.bigramsSize(it.i, it.j)
			ratio, short := cardinalityRatio(s, it.queryLen)
			if ratio > it.ratioThreshold {
				if short {
					continue // sub-sequence may still grow into range
				}
				break // only grows further out of range from here; try next j
			}

			subseq := it.m.bigrams(it.i, it.j)
			isect := subseq.IntersectSize(it.query)
			if isect == 0 {
				continue // zero intersection never matches, regardless of threshold
			}
			sdc := 2 * float64(isect) / float64(s+it.queryLen)
			if sdc < it.sdcThreshold {
				continue
			}

			it.cur = Match[T]{Begin: it.j, End: it.j + it.i + 1, Size: it.i + 1, SDC: sdc}
			it.curBigrams = subseq
			it.hasCurrent = true
			return true
		}
		it.i = 0
	}

	it.exhausted = true
	return false
}

// cardinalityRatio computes max(s,q)/min(s,q) and reports whether s was
// the smaller (sub-sequence shorter than the query), per spec.md §4.3's
// cardinality-ratio prune. Division by zero when s is 0 yields +Inf,
// which correctly compares greater than any finite ratioThreshold.
func cardinalityRatio(s, q int) (ratio float64, subseqShort bool) {
	if s < q {
		return float64(q) / float64(s), true
	}
	return float64(s) / float64(q), false
}

// Current returns the match found by the most recent call to Next that
// returned true.
func (it *Iterator[T]) Current() Match[T] { return it.cur }

// Bigrams returns the matched sub-sequence's own bigram multiset, as
// materialized to compute its SDC. Valid only after a call to Next that
// returned true.
func (it *Iterator[T]) Bigrams() bigram.Multiset[T] { return it.curBigrams }
