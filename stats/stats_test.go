package stats

import "testing"
import "github.com/stretchr/testify/assert"

import (
	"math/rand"
	"sort"
	"strings"
)

func TestSrange(t *testing.T) {
	x := assert.New(t)
	x.Equal([]int{0, 1, 2, 3}, Srange(4))
	x.Empty(Srange(0))
}

func TestPickDrainsItems(t *testing.T) {
	x := assert.New(t)
	rnd := rand.New(rand.NewSource(3))
	items := Srange(6)
	picked := make([]int, 0, 6)
	for len(items) > 0 {
		var item int
		items, item = Pick(rnd, items)
		picked = append(picked, item)
	}
	sort.Ints(picked)
	x.Equal(Srange(6), picked)
}

func TestMinMax(t *testing.T) {
	x := assert.New(t)
	weights := map[int]float64{3: 2, 5: 7, 8: 7, 9: 1}
	f := func(i int) float64 { return weights[i] }
	arg, min := Min([]int{3, 5, 8, 9}, f)
	x.Equal(9, arg)
	x.Equal(1.0, min)
	arg, max := Max([]int{3, 5, 8, 9}, f)
	x.Equal(5, arg)
	x.Equal(7.0, max)
	arg, _ = Min(nil, f)
	x.Equal(-1, arg)
	x.Panics(func() { Max(nil, f) })
}

func TestRecord(t *testing.T) {
	x := assert.New(t)
	r := &Record{Patterns: 4, Infrequent: 2, PeakMemory: 1.5}
	s := r.String()
	x.True(strings.Contains(s, "patterns: 4"))
	x.True(strings.Contains(s, "infrequent extensions: 2"))
	x.True(strings.Contains(s, "peak memory: 1.50 mb"))
	r.Reset()
	x.Equal(Record{}, *r)
}

func TestMemorySampler(t *testing.T) {
	x := assert.New(t)
	m := &MemorySampler{Every: 2}
	m.Check()
	x.True(m.PeakMB() > 0)
	m.Reset()
	x.Equal(0.0, m.PeakMB())
}
