package level

import (
	"errors"
	"testing"

	"github.com/lixenwraith/ballista/component"
)

func TestDefaultLayoutBuilds(t *testing.T) {
	a, err := Build(Default())
	if err != nil {
		t.Fatalf("Build(Default()) failed: %v", err)
	}

	if got := len(a.Entities); got != 25 {
		t.Fatalf("entity count = %d, want 25", got)
	}
	if a.Entities[0].Kind != component.KindBall {
		t.Fatalf("entity 0 is %s, want ball", a.Entities[0].Kind)
	}

	balls := 0
	for i, e := range a.Entities {
		if int(e.ID) != i {
			t.Errorf("entity %q has ID %d at index %d", e.Name, e.ID, i)
		}
		if e.Kind == component.KindBall {
			balls++
		}
	}
	if balls != 1 {
		t.Errorf("ball count = %d, want 1", balls)
	}

	// Authored pieces collide, indicator pips do not
	for _, e := range a.Entities[:18] {
		if !e.Collidable {
			t.Errorf("authored piece %q should be collidable", e.Name)
		}
	}
	for _, id := range a.Indicators {
		if a.Entities[id].Collidable {
			t.Errorf("indicator %q should not be collidable", a.Entities[id].Name)
		}
	}
	if len(a.Indicators) != 7 {
		t.Errorf("indicator count = %d, want 7", len(a.Indicators))
	}

	if a.Entities[1].Movable {
		t.Error("ground strip should not be movable")
	}
}

func TestDefaultPairsLinked(t *testing.T) {
	a, err := Build(Default())
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if len(a.Pairs) != 3 {
		t.Fatalf("pair count = %d, want 3", len(a.Pairs))
	}

	wantAxis := []component.Axis{component.AxisX, component.AxisX, component.AxisY}
	for i, pr := range a.Pairs {
		platform := a.Entities[pr.Platform]
		rider := a.Entities[pr.Rider]
		if platform.Kind != component.KindRectangle || rider.Kind != component.KindTarget {
			t.Errorf("pair %d: platform %s rider %s", i, platform.Kind, rider.Kind)
		}
		if platform.Motion.Partner != rider.ID || rider.Motion.Partner != platform.ID {
			t.Errorf("pair %d: partners not cross-linked", i)
		}
		if platform.Motion.Axis != wantAxis[i] {
			t.Errorf("pair %d: axis %s, want %s", i, platform.Motion.Axis, wantAxis[i])
		}
		if platform.AxisSpeed() != 0.5 || rider.AxisSpeed() != 0.5 {
			t.Errorf("pair %d: speeds %f/%f, want 0.5", i, platform.AxisSpeed(), rider.AxisSpeed())
		}
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Layout)
	}{
		{"zero radius target", func(l *Layout) { l.Pieces[3].Radius = 0 }},
		{"negative ball radius", func(l *Layout) { l.Ball.Radius = -1 }},
		{"flat rectangle", func(l *Layout) { l.Pieces[1].Width = 0 }},
		{"inverted bounds", func(l *Layout) { l.Pairs[0].Lower, l.Pairs[0].Upper = 1, 1 }},
		{"unknown rider", func(l *Layout) { l.Pairs[1].Rider = "nope" }},
		{"self pair", func(l *Layout) { l.Pairs[2].Rider = l.Pairs[2].Platform }},
		{"shared member", func(l *Layout) { l.Pairs[1].Rider = l.Pairs[0].Rider }},
		{"obstacle rider", func(l *Layout) { l.Pairs[0].Rider = "bar-low" }},
		{"indicator rider", func(l *Layout) { l.Pairs[0].Rider = "pip-1" }},
		{"duplicate name", func(l *Layout) { l.Pieces[2].Name = l.Pieces[1].Name }},
		{"second ball", func(l *Layout) { l.Pieces[2].Kind = component.KindBall }},
		{"unnamed", func(l *Layout) { l.Indicators[0].Name = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := Default()
			tt.mutate(&l)
			err := Validate(l)
			if err == nil {
				t.Fatal("Validate accepted invalid layout")
			}
			if !errors.Is(err, ErrInvalidLevel) {
				t.Fatalf("error %v does not wrap ErrInvalidLevel", err)
			}
			if _, err := Build(l); err == nil {
				t.Fatal("Build accepted invalid layout")
			}
		})
	}
}
