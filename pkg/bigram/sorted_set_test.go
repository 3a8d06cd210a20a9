package bigram

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBytes_CardinalityLaw(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		wantSize int
	}{
		{name: "empty", input: "", wantSize: 0},
		{name: "single char", input: "a", wantSize: 0},
		{name: "abcd", input: "abcd", wantSize: 3},
		{name: "bcd", input: "bcd", wantSize: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := NewBytes(tt.input)
			assert.Equal(t, tt.wantSize, got.Len(), "size of Bigrams(%q)", tt.input)
		})
	}
}

func TestNewBytes_RunContents(t *testing.T) {
	t.Parallel()

	abcd := NewBytes("abcd")
	require.Len(t, abcd.runs, 3)
	assert.Equal(t, []Entry[byte]{
		{Bigram: Bigram[byte]{'a', 'b'}, Count: 1},
		{Bigram: Bigram[byte]{'b', 'c'}, Count: 1},
		{Bigram: Bigram[byte]{'c', 'd'}, Count: 1},
	}, abcd.runs)
}

func TestSortInvariant(t *testing.T) {
	t.Parallel()

	// "banana" has repeated bigrams ("an" twice, "na" twice) so the
	// run-length compression and sort-order invariant both get exercised.
	s := NewBytes("banana")
	for i := 1; i < len(s.runs); i++ {
		assert.True(t, s.runs[i-1].Bigram.Less(s.runs[i].Bigram),
			"runs[%d]=%v must sort strictly before runs[%d]=%v", i-1, s.runs[i-1], i, s.runs[i])
	}
}

func TestUnite(t *testing.T) {
	t.Parallel()

	abcd := NewBytes("abcd")
	bcd := NewBytes("bcd")

	union := Unite[byte](abcd, bcd)
	assert.Equal(t, 5, union.Len())
	assert.Equal(t, []Entry[byte]{
		{Bigram: Bigram[byte]{'a', 'b'}, Count: 1},
		{Bigram: Bigram[byte]{'b', 'c'}, Count: 2},
		{Bigram: Bigram[byte]{'c', 'd'}, Count: 2},
	}, union.runs)
}

func TestUnite_EmptyIsIdentity(t *testing.T) {
	t.Parallel()

	abcd := NewBytes("abcd")
	empty := &ByteSet{}

	union := Unite[byte](abcd, empty)
	assert.Equal(t, abcd.Len(), union.Len())
	assert.Equal(t, abcd.runs, union.runs)
}

func TestUnionInPlace_IntoEmptyAdoptsOther(t *testing.T) {
	t.Parallel()

	dst := &ByteSet{}
	src := NewBytes("abcd")
	dst.UnionInPlace(src)

	assert.Equal(t, src.Len(), dst.Len())
	assert.Equal(t, src.runs, dst.runs)
}

func TestIntersectSize(t *testing.T) {
	t.Parallel()

	abcd := NewBytes("abcd")
	bcd := NewBytes("bcd")
	assert.Equal(t, 2, abcd.IntersectSize(bcd))
	assert.Equal(t, 2, bcd.IntersectSize(abcd), "intersection size is symmetric")
}

func TestSorensenDice(t *testing.T) {
	t.Parallel()

	abcd := NewBytes("abcd")
	bcd := NewBytes("bcd")

	// SDC(abcd, bcd) = 2*2 / (3+2) = 0.8 exactly.
	assert.InDelta(t, 0.8, SorensenDice[byte](abcd, bcd), 1e-9)
}

func TestSorensenDice_SelfIsOne(t *testing.T) {
	t.Parallel()

	abcd := NewBytes("abcd")
	assert.InDelta(t, 1.0, SorensenDice[byte](abcd, abcd), 1e-9)
}

func TestSorensenDice_EmptyIsZero(t *testing.T) {
	t.Parallel()

	a, b := &ByteSet{}, &ByteSet{}
	assert.Equal(t, 0.0, SorensenDice[byte](a, b))

	nonEmpty := NewBytes("ab")
	assert.Equal(t, 0.0, SorensenDice[byte](a, nonEmpty))
}

func TestNewRunes_WideCharacters(t *testing.T) {
	t.Parallel()

	// "Sørensen" has 8 code points, so 7 bigrams.
	s := NewRunes("Sørensen")
	assert.Equal(t, 7, s.Len())
}

func TestString_DebugForm(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "bigrams(size: 0, {})", (&ByteSet{}).String())

	s := NewBytes("ab")
	assert.Equal(t, "bigrams(size: 1, {ab: 1})", s.String())
}
