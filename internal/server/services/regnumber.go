package services

import (
	"fmt"
	"math/rand"
	"time"
)

// RegNumberGenerator produces human-presentable tracking tokens: a fixed
// prefix, the last four digits of the millisecond timestamp, and a random
// number in [100,999]. Best-effort uniqueness only: a same-millisecond
// collision with the same draw surfaces as a unique violation at insert
// time and is never pre-checked.
type RegNumberGenerator struct {
	prefix string
	now    func() time.Time
	intn   func(n int) int
}

func NewRegNumberGenerator(prefix string) *RegNumberGenerator {
	return &RegNumberGenerator{
		prefix: prefix,
		now:    time.Now,
		intn:   rand.Intn,
	}
}

// Next returns a fresh token, e.g. "MPC261234567" for prefix "MPC26".
func (g *RegNumberGenerator) Next() string {
	ts := g.now().UnixMilli() % 10000
	random := 100 + g.intn(900)
	return fmt.Sprintf("%s%04d%03d", g.prefix, ts, random)
}
