package store

import (
	"strconv"
	"strings"
	"sync/atomic"
	"time"
)

// idGenerator hands out unique numeric identifiers for submission records.
// The counter is seeded once from wall-clock milliseconds so ids stay
// roughly time-ordered across restarts, but uniqueness within a process
// comes from the atomic increment, not from clock ticks.
type idGenerator struct {
	last atomic.Int64
}

func newIDGenerator() *idGenerator {
	g := &idGenerator{}
	g.last.Store(time.Now().UnixMilli())
	return g
}

func (g *idGenerator) next() int64 {
	return g.last.Add(1)
}

// code derives the human-facing form of an id: a record-kind prefix plus
// the numeric id rendered as uppercase base-36.
func code(prefix string, id int64) string {
	return prefix + "_" + strings.ToUpper(strconv.FormatInt(id, 36))
}
