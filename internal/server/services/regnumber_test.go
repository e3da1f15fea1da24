package services

import (
	"fmt"
	"regexp"
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
)

func fixedGenerator(ms int64, draw int) *RegNumberGenerator {
	g := NewRegNumberGenerator("MPC26")
	g.now = func() time.Time { return time.UnixMilli(ms) }
	g.intn = func(n int) int { return draw % n }
	return g
}

func TestRegNumber_Format(t *testing.T) {
	g := fixedGenerator(1767225600123, 0)
	got := g.Next()

	assert.Len(t, got, 12)
	assert.Equal(t, "MPC260123100", got)
}

func TestRegNumber_PadsShortTimestampSegment(t *testing.T) {
	// ms % 10000 == 7 must render as "0007", keeping the length fixed.
	g := fixedGenerator(1767220000007, 899)
	assert.Equal(t, "MPC260007999", g.Next())
}

func TestRegNumber_Properties(t *testing.T) {
	format := regexp.MustCompile(`^MPC26\d{7}$`)

	properties := gopter.NewProperties(nil)

	properties.Property("every token matches the fixed format", prop.ForAll(
		func(ms int64, draw int) bool {
			g := fixedGenerator(ms, draw)
			return format.MatchString(g.Next())
		},
		gen.Int64Range(0, 1<<52),
		gen.IntRange(0, 1<<30),
	))

	properties.Property("distinct millisecond/draw pairs yield distinct tokens", prop.ForAll(
		func(base int64) bool {
			seen := make(map[string]struct{})
			// Walk across millisecond boundaries with varying draws; each
			// (ms%10000, draw) pair must produce a unique token.
			for i := 0; i < 500; i++ {
				g := fixedGenerator(base+int64(i), i%900)
				token := g.Next()
				if _, dup := seen[token]; dup {
					return false
				}
				seen[token] = struct{}{}
			}
			return true
		},
		gen.Int64Range(0, 1<<40),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestRegNumber_RandomSegmentRange(t *testing.T) {
	g := NewRegNumberGenerator("MPC26")
	for i := 0; i < 1000; i++ {
		token := g.Next()
		var ts, random int
		_, err := fmt.Sscanf(token, "MPC26%4d%3d", &ts, &random)
		assert.NoError(t, err)
		assert.GreaterOrEqual(t, random, 100)
		assert.LessOrEqual(t, random, 999)
	}
}
