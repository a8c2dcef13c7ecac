package engine

import (
	"github.com/lixenwraith/ballista/component"
	"github.com/lixenwraith/ballista/level"
)

// World is the session's entity arena, indexed by stable EntityID
// Entities are never removed; consumption is deactivation
type World struct {
	entities   []*component.Entity
	pairs      []component.Pair
	indicators []component.EntityID
	ball       *component.Entity
}

func newWorld(a *level.Arena) *World {
	w := &World{
		entities:   a.Entities,
		pairs:      a.Pairs,
		indicators: a.Indicators,
	}
	for _, e := range a.Entities {
		if e.Kind == component.KindBall {
			w.ball = e
			break
		}
	}
	return w
}

// Ball returns the single projectile
func (w *World) Ball() *component.Entity {
	return w.ball
}

// Get returns the entity with id, or nil if out of range
func (w *World) Get(id component.EntityID) *component.Entity {
	if id < 0 || int(id) >= len(w.entities) {
		return nil
	}
	return w.entities[id]
}

// Entities returns the arena in creation order; callers must not append
func (w *World) Entities() []*component.Entity {
	return w.entities
}

// Len returns the entity count
func (w *World) Len() int {
	return len(w.entities)
}

// Pairs returns the platform/rider relation
func (w *World) Pairs() []component.Pair {
	return w.pairs
}

// Each calls fn for every entity of kind in creation order
func (w *World) Each(kind component.Kind, fn func(e *component.Entity)) {
	for _, e := range w.entities {
		if e.Kind == kind {
			fn(e)
		}
	}
}

// HideIndicator hides the most recently created visible chance pip
// Returns the hidden pip's ID, or NoEntity when none remain
func (w *World) HideIndicator() component.EntityID {
	for i := len(w.indicators) - 1; i >= 0; i-- {
		e := w.entities[w.indicators[i]]
		if e.Visible {
			e.Visible = false
			return e.ID
		}
	}
	return component.NoEntity
}

// VisibleIndicators counts remaining chance pips
func (w *World) VisibleIndicators() int {
	n := 0
	for _, id := range w.indicators {
		if w.entities[id].Visible {
			n++
		}
	}
	return n
}
