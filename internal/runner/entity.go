// Package runner holds the simulation pieces shared by the runner games:
// entities, the player state machine, spawn timers, collision policy and
// the score-driven speed curve. Everything here is deterministic given a
// seed and contains no rendering or platform code.
package runner

import (
	"math"

	"github.com/vovakirdan/tui-runner/internal/core"
)

// Kind identifies what an entity is.
type Kind uint8

const (
	KindRock Kind = iota
	KindFox
	KindBox
	KindTall
	KindBird
	KindCarrot
	KindCoin
	KindWings
	KindShield
	KindHellPortal
	KindHeavenPortal
)

// Category groups kinds by how collisions with them are resolved.
type Category uint8

const (
	CategoryObstacle Category = iota
	CategoryPickup
	CategoryPower
	CategoryPortal
)

// Category returns the collision category of the kind.
func (k Kind) Category() Category {
	switch k {
	case KindRock, KindFox, KindBox, KindTall, KindBird:
		return CategoryObstacle
	case KindCarrot, KindCoin:
		return CategoryPickup
	case KindWings, KindShield:
		return CategoryPower
	case KindHellPortal, KindHeavenPortal:
		return CategoryPortal
	default:
		panic("runner: unknown entity kind")
	}
}

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindRock:
		return "rock"
	case KindFox:
		return "fox"
	case KindBox:
		return "box"
	case KindTall:
		return "tall"
	case KindBird:
		return "bird"
	case KindCarrot:
		return "carrot"
	case KindCoin:
		return "coin"
	case KindWings:
		return "wings"
	case KindShield:
		return "shield"
	case KindHellPortal:
		return "hell portal"
	case KindHeavenPortal:
		return "heaven portal"
	default:
		return "unknown"
	}
}

// Entity is anything that scrolls through the world.
type Entity struct {
	Kind  Kind
	Rect  core.Rect
	Phase float64 // Oscillation offset, radians
	BaseY int     // Resting Y for kinds that bob around a fixed line
}

// NewEntity creates an entity resting at the rect's Y.
func NewEntity(kind Kind, rect core.Rect, phase float64) Entity {
	return Entity{Kind: kind, Rect: rect, Phase: phase, BaseY: rect.Y}
}

// ScrollDelta converts a scroll speed into the whole-pixel shift applied
// to every entity in one tick.
func ScrollDelta(speed float64) int {
	return int(math.Round(speed))
}

// Advance scrolls the entity left by dx and applies its own motion at
// simulation time t (ms).
func (e *Entity) Advance(dx int, t float64) {
	e.Rect.X -= dx

	switch e.Kind {
	case KindFox:
		e.Rect.Y = e.BaseY + int(3*math.Sin(t*0.02+e.Phase))
	case KindBird:
		e.Rect.Y += int(2 * math.Sin(t*0.01+e.Phase))
	case KindTall:
		e.Rect.X += int(1.5 * math.Sin(t*0.008+e.Phase))
	case KindWings:
		e.Rect.Y += int(1.4 * math.Sin(t*0.01+e.Phase))
	case KindRock, KindBox, KindCarrot, KindCoin, KindShield, KindHellPortal, KindHeavenPortal:
		// Straight scroll only
	}
}

// List is an ordered set of live entities of one category.
type List struct {
	items []Entity
}

// NewList creates an empty list with room for n entities.
func NewList(n int) *List {
	return &List{items: make([]Entity, 0, n)}
}

// Add appends an entity.
func (l *List) Add(e Entity) {
	l.items = append(l.items, e)
}

// Items returns the live entities. The slice is only valid until the
// next mutating call.
func (l *List) Items() []Entity {
	return l.items
}

// Len returns the number of live entities.
func (l *List) Len() int {
	return len(l.items)
}

// Reset removes every entity.
func (l *List) Reset() {
	l.items = l.items[:0]
}

// Advance moves every entity by one tick.
func (l *List) Advance(dx int, t float64) {
	for i := range l.items {
		l.items[i].Advance(dx, t)
	}
}

// Cull drops entities whose right edge is at or past -margin and returns
// how many were removed.
func (l *List) Cull(margin int) int {
	kept := l.items[:0]
	for _, e := range l.items {
		if e.Rect.Right() > -margin {
			kept = append(kept, e)
		}
	}
	removed := len(l.items) - len(kept)
	l.items = kept
	return removed
}

// Remove deletes the entity at index i, keeping order.
func (l *List) Remove(i int) Entity {
	e := l.items[i]
	l.items = append(l.items[:i], l.items[i+1:]...)
	return e
}

// FirstHit returns the index of the first entity overlapping r, or -1.
func (l *List) FirstHit(r core.Rect) int {
	for i, e := range l.items {
		if r.Intersects(e.Rect) {
			return i
		}
	}
	return -1
}

// TakeHits removes and returns every entity overlapping r.
func (l *List) TakeHits(r core.Rect) []Entity {
	var hits []Entity
	kept := l.items[:0]
	for _, e := range l.items {
		if r.Intersects(e.Rect) {
			hits = append(hits, e)
			continue
		}
		kept = append(kept, e)
	}
	l.items = kept
	return hits
}

// RightmostX returns the largest right edge in the list, or 0 if empty.
func (l *List) RightmostX() int {
	right := 0
	for _, e := range l.items {
		right = max(right, e.Rect.Right())
	}
	return right
}

// Rects returns the collision rectangles of all entities.
func (l *List) Rects() []core.Rect {
	rects := make([]core.Rect, len(l.items))
	for i, e := range l.items {
		rects[i] = e.Rect
	}
	return rects
}
