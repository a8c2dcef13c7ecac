package level

import (
	"github.com/pkg/errors"

	"github.com/lixenwraith/ballista/component"
)

// ErrInvalidLevel is wrapped by every construction-time level error
var ErrInvalidLevel = errors.New("invalid level")

func invalid(format string, args ...any) error {
	return errors.Wrapf(ErrInvalidLevel, format, args...)
}

// Validate rejects layouts the simulation cannot run
func Validate(l Layout) error {
	if l.Ball.Radius <= 0 {
		return invalid("ball radius %v must be positive", l.Ball.Radius)
	}

	names := make(map[string]component.Kind, len(l.Pieces)+len(l.Indicators))
	check := func(p PieceSpec, section string) error {
		if p.Name == "" {
			return invalid("%s piece at (%v,%v) has no name", section, p.X, p.Y)
		}
		if _, dup := names[p.Name]; dup {
			return invalid("duplicate name %q", p.Name)
		}
		names[p.Name] = p.Kind

		switch p.Kind {
		case component.KindRectangle:
			if p.Length <= 0 || p.Width <= 0 {
				return invalid("rectangle %q size %vx%v must be positive", p.Name, p.Length, p.Width)
			}
		case component.KindTarget, component.KindObstacle:
			if p.Radius <= 0 {
				return invalid("%s %q radius %v must be positive", p.Kind, p.Name, p.Radius)
			}
		case component.KindBall:
			return invalid("%s piece %q: the layout holds exactly one ball", section, p.Name)
		default:
			return invalid("%s piece %q has unknown kind %d", section, p.Name, p.Kind)
		}
		return nil
	}

	for _, p := range l.Pieces {
		if err := check(p, "level"); err != nil {
			return err
		}
	}
	pieces := make(map[string]component.Kind, len(names))
	for name, kind := range names {
		pieces[name] = kind
	}
	for _, p := range l.Indicators {
		if err := check(p, "indicator"); err != nil {
			return err
		}
	}

	paired := make(map[string]bool)
	for i, pr := range l.Pairs {
		if pr.Lower >= pr.Upper {
			return invalid("pair %d bounds [%v,%v]: lower must be below upper", i, pr.Lower, pr.Upper)
		}
		if pr.Platform == pr.Rider {
			return invalid("pair %d uses %q as both platform and rider", i, pr.Platform)
		}
		for _, name := range []string{pr.Platform, pr.Rider} {
			kind, ok := pieces[name]
			if !ok {
				return invalid("pair %d references unknown piece %q", i, name)
			}
			if kind != component.KindRectangle && kind != component.KindTarget {
				return invalid("pair %d member %q is a %s, want rectangle or target", i, name, kind)
			}
			if paired[name] {
				return invalid("piece %q belongs to more than one pair", name)
			}
			paired[name] = true
		}
	}
	return nil
}
