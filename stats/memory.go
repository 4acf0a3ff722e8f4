package stats

import (
	"runtime"
)

// MemorySampler tracks the peak heap size of a run. Reading the memory
// statistics stops the world, so only every Every-th Check samples.
type MemorySampler struct {
	Every int
	peak  uint64
	calls int
}

func (m *MemorySampler) Reset() {
	m.peak = 0
	m.calls = 0
}

func (m *MemorySampler) Check() {
	every := m.Every
	if every <= 0 {
		every = 64
	}
	m.calls++
	if m.calls != 1 && m.calls%every != 0 {
		return
	}
	m.Sample()
}

func (m *MemorySampler) Sample() {
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	if ms.HeapAlloc > m.peak {
		m.peak = ms.HeapAlloc
	}
}

func (m *MemorySampler) PeakMB() float64 {
	return float64(m.peak) / 1024 / 1024
}
