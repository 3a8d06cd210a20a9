package sequencematcher

import "github.com/rs/zerolog"

// MarshalZerologObject lets a Match be logged directly, e.g.
// log.Debug().Object("match", m). The core matching algorithm never logs
// itself; this only gives callers a convenient, structured way to.
func (mm Match[T]) MarshalZerologObject(e *zerolog.Event) {
	e.Int("begin", mm.Begin).
		Int("end", mm.End).
		Int("size", mm.Size).
		Float64("sdc", mm.SDC)
}
