package status

import (
	"math"
	"sync/atomic"
)

// Gauge is an atomic float64; the zero value reads 0.0
type Gauge struct {
	bits atomic.Uint64
}

func (g *Gauge) Set(val float64) {
	g.bits.Store(math.Float64bits(val))
}

func (g *Gauge) Get() float64 {
	return math.Float64frombits(g.bits.Load())
}

// Max raises the gauge to val if val is larger
func (g *Gauge) Max(val float64) {
	for {
		old := g.bits.Load()
		if math.Float64frombits(old) >= val {
			return
		}
		if g.bits.CompareAndSwap(old, math.Float64bits(val)) {
			return
		}
	}
}
