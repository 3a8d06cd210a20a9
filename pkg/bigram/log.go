package bigram

import "github.com/rs/zerolog"

// MarshalZerologObject lets a SortedSet be attached to a structured log
// line with log.Debug().Object("bigrams", s).Msg("..."), mirroring the
// teacher's convention of logging similarity-matching internals
// (pkg/database/matcher/fuzzy.go) without the library itself performing
// any logging I/O — only the caller decides whether, and where, to log.
func (s *SortedSet[T]) MarshalZerologObject(e *zerolog.Event) {
	e.Int("size", s.size)
	if len(s.runs) > 0 {
		arr := zerolog.Arr()
		for _, r := range s.runs {
			arr.Str(r.Bigram.String())
		}
		e.Array("bigrams", arr)
	}
}

// MarshalZerologObject lets a HashSet be attached to a structured log
// line the same way SortedSet can.
func (h *HashSet[T]) MarshalZerologObject(e *zerolog.Event) {
	runs := h.sortedRuns()
	e.Int("size", h.Len())
	if len(runs) > 0 {
		arr := zerolog.Arr()
		for _, r := range runs {
			arr.Str(r.Bigram.String())
		}
		e.Array("bigrams", arr)
	}
}
