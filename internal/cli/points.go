package cli

import (
	"fmt"
	"strings"

	"github.com/akmonengine/lownerjohn/internal/prompt"
	"github.com/akmonengine/lownerjohn/polygon"
	"github.com/go-gl/mathgl/mgl64"
)

// pointsFlag collects repeated --point x,y values
type pointsFlag struct {
	points polygon.Polygon
}

func (f *pointsFlag) String() string {
	parts := make([]string, len(f.points))
	for i, p := range f.points {
		parts[i] = formatPoint(p)
	}
	return strings.Join(parts, " ")
}

func (f *pointsFlag) Set(value string) error {
	p, err := prompt.ParsePoint(value)
	if err != nil {
		return err
	}
	f.points = append(f.points, p)
	return nil
}

func (f *pointsFlag) Type() string {
	return "x,y"
}

func formatPoint(p mgl64.Vec2) string {
	return fmt.Sprintf("(%g, %g)", p.X(), p.Y())
}
