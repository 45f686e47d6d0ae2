package sim

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r2"
)

func pt(x, y float64) r2.Vec { return r2.Vec{X: x, Y: y} }

// DefaultObstacles builds the stock course: four walls framing a
// width x height world and the fixed interior pieces. Only the walls and
// the two pillars that reach the floor depend on the world size.
func DefaultObstacles(width, height float64) ([]Obstacle, error) {
	if !(width > 0 && height > 0) {
		return nil, fmt.Errorf("world size %vx%v must be positive", width, height)
	}
	o := WallOverhang
	outlines := [][]r2.Vec{
		// floor, left, right, ceiling
		{pt(-o, height-50), pt(width+o, height-50), pt(width+o, height), pt(-o, height)},
		{pt(-o, -o), pt(0, -o), pt(0, height), pt(-o, height)},
		{pt(width, -o), pt(width+o, -o), pt(width+o, height), pt(width, height)},
		{pt(-o, -o), pt(width+o, -o), pt(width+o, 0), pt(-o, 0)},

		{pt(50, 400), pt(200, 350), pt(350, 400), pt(300, 600), pt(100, 600)},
		{pt(700, -100), pt(800, -100), pt(800, height-80), pt(700, height-80)},
		{pt(800, 300), pt(1100, 280), pt(1100, 400), pt(800, 350)},
		{pt(1150, 500), pt(1300, 400), pt(1450, 500), pt(1300, 600)},
		{pt(1000, 1200), pt(1800, 1100), pt(1800, 1200), pt(1000, 1300)},
		{pt(800, 1500), pt(1600, 1600), pt(1600, 1700), pt(800, 1600)},
	}

	// pegboard of diamonds
	for _, c := range []r2.Vec{
		pt(2000, 500), pt(2350, 500), pt(2700, 500), pt(3050, 500),
		pt(2175, 750), pt(2525, 750), pt(2875, 750),
		pt(2350, 1000), pt(2700, 1000),
		pt(2525, 1250),
	} {
		outlines = append(outlines, diamond(c, 100))
	}

	outlines = append(outlines,
		[]r2.Vec{pt(2000, 2000), pt(3200, 2000), pt(3200, 2100), pt(2000, 2100)},
		[]r2.Vec{pt(1650, 650), pt(1700, 650), pt(1700, 900), pt(1650, 900)},
		diamond(pt(500, 1100), 100),
	)

	obstacles := make([]Obstacle, 0, len(outlines))
	for i, verts := range outlines {
		pg, err := NewPolygon(verts...)
		if err != nil {
			return nil, fmt.Errorf("obstacle %d: %w", i, err)
		}
		obstacles = append(obstacles, pg)
	}
	return obstacles, nil
}

// diamond lists top, right, bottom, left around c.
func diamond(c r2.Vec, r float64) []r2.Vec {
	return []r2.Vec{pt(c.X, c.Y-r), pt(c.X+r, c.Y), pt(c.X, c.Y+r), pt(c.X-r, c.Y)}
}
