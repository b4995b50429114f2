// Package raster provides the stateless cell-rasterization primitives
// behind the drawing tools: lines, rectangles, ellipses, and flood fill.
// All functions return cell lists; merging into a layer is the caller's
// concern (last-write-wins at colliding cells).
package raster

import (
	"stitch-designer/internal/pattern"
	"stitch-designer/pkg/geometry"
)

// Line rasterizes the segment from (x1, y1) to (x2, y2) inclusive of both
// endpoints using Bresenham stepping. Cells outside the canvas are
// silently dropped.
func Line(x1, y1, x2, y2 int, canvas pattern.CanvasConfig) []geometry.PointInt {
	dx := abs(x2 - x1)
	dy := -abs(y2 - y1)
	sx := 1
	if x1 > x2 {
		sx = -1
	}
	sy := 1
	if y1 > y2 {
		sy = -1
	}
	err := dx + dy

	var cells []geometry.PointInt
	x, y := x1, y1
	for {
		if canvas.Contains(x, y) {
			cells = append(cells, geometry.PointInt{X: x, Y: y})
		}
		if x == x2 && y == y2 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x += sx
		}
		if e2 <= dx {
			err += dx
			y += sy
		}
	}
	return cells
}

// Rectangle rasterizes the axis-aligned box spanning the two corners,
// clamped to the canvas. Filled mode emits every cell in the box; outline
// mode emits only the border, without duplicate corners on degenerate
// 1-cell-wide or 1-cell-tall boxes.
func Rectangle(x1, y1, x2, y2 int, filled bool, canvas pattern.CanvasConfig) []geometry.PointInt {
	r := geometry.RectFromCorners(x1, y1, x2, y2).Clamp(canvas.Width, canvas.Height)
	if r.Empty() {
		return nil
	}

	var cells []geometry.PointInt
	if filled {
		for y := r.Y; y <= r.MaxY(); y++ {
			for x := r.X; x <= r.MaxX(); x++ {
				cells = append(cells, geometry.PointInt{X: x, Y: y})
			}
		}
		return cells
	}

	for x := r.X; x <= r.MaxX(); x++ {
		cells = append(cells, geometry.PointInt{X: x, Y: r.Y})
	}
	if r.Height > 1 {
		for x := r.X; x <= r.MaxX(); x++ {
			cells = append(cells, geometry.PointInt{X: x, Y: r.MaxY()})
		}
	}
	if r.Width > 1 {
		for y := r.Y + 1; y < r.MaxY(); y++ {
			cells = append(cells, geometry.PointInt{X: r.X, Y: y})
			cells = append(cells, geometry.PointInt{X: r.MaxX(), Y: y})
		}
	} else {
		for y := r.Y + 1; y < r.MaxY(); y++ {
			cells = append(cells, geometry.PointInt{X: r.X, Y: y})
		}
	}
	return cells
}

// Ellipse rasterizes the ellipse inscribed in the box spanning the two
// corners. Filled mode tests every bounding-box cell center against the
// normalized ellipse inequality; outline mode walks the four-way
// symmetric midpoint algorithm. Either radius below half a cell degrades
// to a single point (or line of points along the longer axis).
func Ellipse(x1, y1, x2, y2 int, filled bool, canvas pattern.CanvasConfig) []geometry.PointInt {
	box := geometry.RectFromCorners(x1, y1, x2, y2)
	cx := float64(box.X) + float64(box.Width)/2
	cy := float64(box.Y) + float64(box.Height)/2
	rx := float64(box.Width) / 2
	ry := float64(box.Height) / 2

	if filled {
		var cells []geometry.PointInt
		for y := box.Y; y <= box.MaxY(); y++ {
			for x := box.X; x <= box.MaxX(); x++ {
				nx := (float64(x) + 0.5 - cx) / rx
				ny := (float64(y) + 0.5 - cy) / ry
				if nx*nx+ny*ny <= 1.0 {
					if canvas.Contains(x, y) {
						cells = append(cells, geometry.PointInt{X: x, Y: y})
					}
				}
			}
		}
		return cells
	}
	return ellipseOutline(cx, cy, rx, ry, canvas)
}

// ellipseOutline walks the midpoint ellipse algorithm with four-way
// symmetry around the center (cx, cy).
func ellipseOutline(cx, cy, rx, ry float64, canvas pattern.CanvasConfig) []geometry.PointInt {
	seen := make(map[pattern.CellKey]struct{})
	var cells []geometry.PointInt
	plot := func(x, y int) {
		if !canvas.Contains(x, y) {
			return
		}
		k := pattern.Key(x, y)
		if _, dup := seen[k]; dup {
			return
		}
		seen[k] = struct{}{}
		cells = append(cells, geometry.PointInt{X: x, Y: y})
	}

	// Work in integer semi-axes measured in cells from the center cell.
	a := int(rx - 0.5)
	b := int(ry - 0.5)
	icx := int(cx - 0.5)
	icy := int(cy - 0.5)
	if a < 1 && b < 1 {
		plot(icx, icy)
		return cells
	}
	if a < 1 {
		for y := -b; y <= b; y++ {
			plot(icx, icy+y)
		}
		return cells
	}
	if b < 1 {
		for x := -a; x <= a; x++ {
			plot(icx+x, icy)
		}
		return cells
	}

	a2 := a * a
	b2 := b * b

	// Region 1: slope > -1.
	x, y := 0, b
	d1 := b2 - a2*b + a2/4
	for b2*x <= a2*y {
		plot(icx+x, icy+y)
		plot(icx-x, icy+y)
		plot(icx+x, icy-y)
		plot(icx-x, icy-y)
		if d1 < 0 {
			d1 += b2 * (2*x + 3)
		} else {
			d1 += b2*(2*x+3) + a2*(-2*y+2)
			y--
		}
		x++
	}

	// Region 2: slope <= -1.
	d2 := b2*(x*x+x) + b2/4 + a2*(y-1)*(y-1) - a2*b2
	for y >= 0 {
		plot(icx+x, icy+y)
		plot(icx-x, icy+y)
		plot(icx+x, icy-y)
		plot(icx-x, icy-y)
		if d2 < 0 {
			d2 += b2*(2*x+2) + a2*(-2*y+3)
			x++
		} else {
			d2 += a2 * (-2*y + 3)
		}
		y--
	}
	return cells
}

// FloodFill computes the maximal 4-connected region of cells sharing the
// seed cell's pre-fill color on the given layer (or sharing "empty" when
// the seed cell has no stitch). Only the target layer's own stitches are
// examined; other layers never influence the region. The walk is a
// breadth-first search bounded by the canvas, never recursion.
func FloodFill(seedX, seedY int, layer *pattern.Layer, canvas pattern.CanvasConfig) []geometry.PointInt {
	if !canvas.Contains(seedX, seedY) {
		return nil
	}

	targetColor := ""
	if s, ok := layer.StitchAt(seedX, seedY); ok {
		targetColor = s.ColorID
	}
	matches := func(x, y int) bool {
		s, ok := layer.StitchAt(x, y)
		if !ok {
			return targetColor == ""
		}
		return s.ColorID == targetColor
	}

	visited := make(map[pattern.CellKey]struct{})
	queue := []geometry.PointInt{{X: seedX, Y: seedY}}
	visited[pattern.Key(seedX, seedY)] = struct{}{}

	var region []geometry.PointInt
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		region = append(region, c)

		for _, n := range [4]geometry.PointInt{
			{X: c.X + 1, Y: c.Y},
			{X: c.X - 1, Y: c.Y},
			{X: c.X, Y: c.Y + 1},
			{X: c.X, Y: c.Y - 1},
		} {
			if !canvas.Contains(n.X, n.Y) {
				continue
			}
			k := pattern.Key(n.X, n.Y)
			if _, seen := visited[k]; seen {
				continue
			}
			if !matches(n.X, n.Y) {
				continue
			}
			visited[k] = struct{}{}
			queue = append(queue, n)
		}
	}
	return region
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
