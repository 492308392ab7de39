package order

import (
	"fmt"
	"math/rand"
	"strings"
	"time"
)

const base36 = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// NumberGenerator makes human-readable order numbers: "FF", the last 8 digits of the
// Unix millisecond clock, then 4 random base-36 characters. Numbers are not guaranteed
// unique.
type NumberGenerator struct {
	now func() time.Time
	rnd *rand.Rand
}

func NewNumberGenerator(now func() time.Time, rnd *rand.Rand) *NumberGenerator {
	if now == nil {
		now = time.Now
	}
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &NumberGenerator{now: now, rnd: rnd}
}

func (g *NumberGenerator) Next() string {
	ms := fmt.Sprintf("%08d", g.now().UnixMilli())
	ms = ms[len(ms)-8:]

	var sb strings.Builder
	sb.WriteString("FF")
	sb.WriteString(ms)
	for range 4 {
		sb.WriteByte(base36[g.rnd.Intn(len(base36))])
	}
	return sb.String()
}
