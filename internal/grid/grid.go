package grid

import "sort"

// Cell is a single grid coordinate. It is comparable and used directly as a map key.
type Cell struct {
	X int
	Y int
}

// Grid is a bounded width x height coordinate space with a set of blocked cells.
// Obstacles are added during setup and the grid is read-only afterwards.
type Grid struct {
	width     int
	height    int
	obstacles map[Cell]struct{}
}

// NewGrid creates an empty grid
func NewGrid(width, height int) *Grid {
	return &Grid{
		width:     width,
		height:    height,
		obstacles: make(map[Cell]struct{}),
	}
}

// Width returns the number of columns
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows
func (g *Grid) Height() int {
	return g.height
}

// AddObstacle marks a cell as impassable. Coordinates outside the grid are
// accepted and never affect a move.
func (g *Grid) AddObstacle(x, y int) {
	g.obstacles[Cell{X: x, Y: y}] = struct{}{}
}

// IsObstacle reports whether the cell was added as an obstacle
func (g *Grid) IsObstacle(x, y int) bool {
	_, blocked := g.obstacles[Cell{X: x, Y: y}]
	return blocked
}

// InBounds reports whether the cell lies inside [0,width) x [0,height)
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// IsValidMove reports whether a rover may occupy the cell
func (g *Grid) IsValidMove(x, y int) bool {
	return g.InBounds(x, y) && !g.IsObstacle(x, y)
}

// Obstacles returns the obstacle cells ordered by X then Y
func (g *Grid) Obstacles() []Cell {
	cells := make([]Cell, 0, len(g.obstacles))
	for c := range g.obstacles {
		cells = append(cells, c)
	}
	sort.Slice(cells, func(i, j int) bool {
		if cells[i].X != cells[j].X {
			return cells[i].X < cells[j].X
		}
		return cells[i].Y < cells[j].Y
	})
	return cells
}
