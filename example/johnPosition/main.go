package main

import (
	"fmt"
	"log"
	"math"

	"github.com/akmonengine/lownerjohn/ellipsoid"
	"github.com/akmonengine/lownerjohn/halfplane"
	"github.com/akmonengine/lownerjohn/john"
	"github.com/akmonengine/lownerjohn/polygon"
	"github.com/akmonengine/lownerjohn/render"
)

const samples = 400

// SetupPolygon returns the hexagon of the demo, vertices in clockwise order
func SetupPolygon() polygon.Polygon {
	return polygon.Polygon{{0, 0}, {1, 3}, {5.5, 4.5}, {7, 4}, {7, 1}, {3, -2}}
}

func printEllipse(name string, e ellipsoid.Ellipsoid) {
	major, minor, angle := e.Axes()
	fmt.Printf("  %s:\n", name)
	fmt.Printf("    Center: %v\n", e.Center)
	fmt.Printf("    Semi-axes: %.6f, %.6f (angle %.4f rad)\n", major, minor, angle)
	fmt.Printf("    Area: %.6f\n", e.Area())
}

func RunJohnPosition() error {
	fmt.Println("John position of a hexagon")
	fmt.Println("==========================")

	p := SetupPolygon()
	fmt.Printf("Polygon: %d vertices, area %.6f\n", len(p), p.Area())

	outer, err := ellipsoid.Outer(p, nil)
	if err != nil {
		return err
	}

	r, err := john.Normalize(p, nil)
	if err != nil {
		return err
	}

	fmt.Println("Ellipses:")
	printEllipse("Inner", r.Inner)
	printEllipse("Outer", outer)
	fmt.Printf("  Outer/inner area: %.6f\n", outer.Area()/r.Inner.Area())
	fmt.Println()

	fmt.Println("Map T(x) = C⁻¹(x - d):")
	fmt.Printf("  Linear: %v\n", r.Map.Linear)
	fmt.Printf("  Translation: %v\n", r.Map.Translation)
	fmt.Println()

	fmt.Println("Normalized vertices:")
	for i, v := range r.Normalized {
		fmt.Printf("  %v -> %v (|v|=%.4f)\n", r.Original[i], v, v.Len())
	}
	fmt.Printf("Deviation of the normalized inner ellipse: %.2e\n", r.Deviation())
	fmt.Printf("Enclosed by radius 2: %v, by radius √2: %v\n", r.Enclosed(2), r.Enclosed(math.Sqrt2))
	fmt.Printf("Normalized halfplanes: %d\n", halfplane.FromPolygon(r.Normalized).Len())

	original := render.NewPanel("Original")
	if err := original.AddPolygon("Polygon", r.Original, render.Red); err != nil {
		return err
	}
	if err := original.AddEllipse("Inner", r.Inner, samples, render.Green, false); err != nil {
		return err
	}
	if err := original.AddEllipse("Outer", outer, samples, render.Blue, false); err != nil {
		return err
	}

	normalized := render.NewPanel("John Normalized")
	if err := normalized.AddPolygon("Normalized polygon", r.Normalized, render.Blue); err != nil {
		return err
	}
	if err := normalized.AddEllipse("Unit disc", r.NormalizedInner, samples, render.Green, false); err != nil {
		return err
	}
	if err := normalized.AddEllipse("Radius 2", ellipsoid.Unit().Scale(2), samples, render.Gray, true); err != nil {
		return err
	}

	if err := render.SaveRow("john_position.png", render.Inches(6), render.Inches(6), original, normalized); err != nil {
		return err
	}
	fmt.Println("Figure written to john_position.png")
	return nil
}

func main() {
	if err := RunJohnPosition(); err != nil {
		log.Fatal(err)
	}
}
