package runner

import "github.com/vovakirdan/tui-runner/internal/config"

// SpeedCurve maps score to scroll speed: flat until RampStart, then linear.
type SpeedCurve struct {
	Base      float64
	RampStart float64
	Slope     float64
}

// NewSpeedCurve converts a speed config.
func NewSpeedCurve(cfg config.SpeedConfig) SpeedCurve {
	return SpeedCurve{Base: cfg.Base, RampStart: cfg.RampStart, Slope: cfg.Slope}
}

// Speed returns the scroll speed in pixels per tick.
func (c SpeedCurve) Speed(score float64) float64 {
	if score < c.RampStart {
		return c.Base
	}
	return c.Base + (score-c.RampStart)*c.Slope
}

// ScoreGain returns the score earned over dt milliseconds.
func ScoreGain(dt int, rate, multiplier float64) float64 {
	return float64(dt) * rate * multiplier
}

// BestStore persists a single best score. Implementations swallow their
// own I/O failures: Load returns 0 and Save does nothing. Save must never
// lower a stored best.
type BestStore interface {
	Load() int
	Save(best int)
}

// MemoryBest is a BestStore that lives only as long as the process.
type MemoryBest struct {
	best int
}

// Load returns the stored value.
func (m *MemoryBest) Load() int { return m.best }

// Save stores the value if it is higher.
func (m *MemoryBest) Save(best int) { m.best = max(m.best, best) }

// BestScore tracks the best completed run. It only ever grows.
type BestScore struct {
	store BestStore
	value int
}

// NewBestScore loads the persisted best from store. A nil store keeps the
// best in memory.
func NewBestScore(store BestStore) *BestScore {
	if store == nil {
		store = &MemoryBest{}
	}
	return &BestScore{store: store, value: max(0, store.Load())}
}

// Value returns the current best.
func (b *BestScore) Value() int {
	return b.value
}

// Commit records a finished run and persists the best. The store is read
// again first, since other sessions may share it and have raised it since.
// It reports whether the run set a new record.
func (b *BestScore) Commit(score int) bool {
	b.value = max(b.value, b.store.Load())
	record := score > b.value
	b.value = max(b.value, score)
	b.store.Save(b.value)
	return record
}
