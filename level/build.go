package level

import (
	"github.com/lixenwraith/ballista/component"
)

// Arena is the constructed entity list plus the pair relation
// Entities[0] is the ball; IDs equal slice indices
type Arena struct {
	Entities   []*component.Entity
	Pairs      []component.Pair
	Indicators []component.EntityID
}

// Build validates l and constructs every entity in creation order
func Build(l Layout) (*Arena, error) {
	if err := Validate(l); err != nil {
		return nil, err
	}

	a := &Arena{
		Entities: make([]*component.Entity, 0, 1+len(l.Pieces)+len(l.Indicators)),
	}
	byName := make(map[string]*component.Entity, len(l.Pieces))

	add := func(e *component.Entity) {
		e.ID = component.EntityID(len(a.Entities))
		a.Entities = append(a.Entities, e)
	}

	add(component.NewBall("ball", l.Ball.X, l.Ball.Y, l.Ball.Radius))

	for _, p := range l.Pieces {
		e := newPiece(p)
		add(e)
		byName[p.Name] = e
	}

	for _, p := range l.Indicators {
		e := newPiece(p)
		e.Collidable = false
		e.Movable = false
		add(e)
		a.Indicators = append(a.Indicators, e.ID)
	}

	for _, pr := range l.Pairs {
		platform := byName[pr.Platform]
		rider := byName[pr.Rider]
		profile := component.MotionProfile{Axis: pr.Axis, Lower: pr.Lower, Upper: pr.Upper}

		profile.Partner = rider.ID
		platform.SetMotion(profile, pr.Speed)
		profile.Partner = platform.ID
		rider.SetMotion(profile, pr.Speed)

		a.Pairs = append(a.Pairs, component.Pair{Platform: platform.ID, Rider: rider.ID})
	}

	return a, nil
}

func newPiece(p PieceSpec) *component.Entity {
	var e *component.Entity
	switch p.Kind {
	case component.KindRectangle:
		e = component.NewRectangle(p.Name, p.X, p.Y, p.Length, p.Width)
	case component.KindObstacle:
		e = component.NewObstacle(p.Name, p.X, p.Y)
		e.Radius = p.Radius
	default:
		e = component.NewTarget(p.Name, p.X, p.Y, p.Radius)
	}
	if p.Fixed {
		e.Movable = false
	}
	return e
}
