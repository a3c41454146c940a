// pkg/tunnelmap/map.go
package tunnelmap

import "math"

// Cell is one grid tile.
type Cell uint8

const (
	Tunnel Cell = 0
	Dirt   Cell = 1
)

// WalkLength is the number of steps a single dig carves.
const WalkLength = 5

// Rand is the draw a dig needs.
type Rand interface {
	Intn(n int) int
}

// TunnelMap is a fixed W×H grid of dirt and tunnel cells. Grid coordinates map
// to world coordinates through CellSize.
type TunnelMap struct {
	Width    int
	Height   int
	CellSize float64
	cells    []Cell
}

// New builds a map filled with dirt.
func New(width, height int, cellSize float64) *TunnelMap {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	m := &TunnelMap{
		Width:    width,
		Height:   height,
		CellSize: cellSize,
		cells:    make([]Cell, width*height),
	}
	m.Fill(Dirt)
	return m
}

// Fill sets every cell to c.
func (m *TunnelMap) Fill(c Cell) {
	for i := range m.cells {
		m.cells[i] = c
	}
}

// InBounds reports whether (gx, gy) is a grid cell.
func (m *TunnelMap) InBounds(gx, gy int) bool {
	return gx >= 0 && gx < m.Width && gy >= 0 && gy < m.Height
}

// At returns the cell at (gx, gy). Out-of-bounds cells read as dirt.
func (m *TunnelMap) At(gx, gy int) Cell {
	if !m.InBounds(gx, gy) {
		return Dirt
	}
	return m.cells[gy*m.Width+gx]
}

// Set writes a cell. Out-of-bounds writes are ignored.
func (m *TunnelMap) Set(gx, gy int, c Cell) bool {
	if !m.InBounds(gx, gy) {
		return false
	}
	m.cells[gy*m.Width+gx] = c
	return true
}

// WorldToGrid converts a world position to the grid cell containing it.
func (m *TunnelMap) WorldToGrid(x, y float64) (int, int) {
	return int(math.Floor(x / m.CellSize)), int(math.Floor(y / m.CellSize))
}

// IsTunnelAt reports whether the world position lies on a tunnel cell.
func (m *TunnelMap) IsTunnelAt(x, y float64) bool {
	gx, gy := m.WorldToGrid(x, y)
	return m.InBounds(gx, gy) && m.At(gx, gy) == Tunnel
}

// DigRandomTunnel carves a WalkLength step random walk from a uniform start
// cell. Each step moves by an independent delta in {-1,0,+1} per axis.
// The walk ends as soon as it steps off the grid. It returns the number of
// cells carved, revisits included.
func (m *TunnelMap) DigRandomTunnel(r Rand) int {
	x := r.Intn(m.Width)
	y := r.Intn(m.Height)
	carved := 0
	for i := 0; i < WalkLength; i++ {
		if !m.Set(x, y, Tunnel) {
			break
		}
		carved++
		x += r.Intn(3) - 1
		y += r.Intn(3) - 1
	}
	return carved
}

// TunnelCount is the number of tunnel cells.
func (m *TunnelMap) TunnelCount() int {
	n := 0
	for _, c := range m.cells {
		if c == Tunnel {
			n++
		}
	}
	return n
}

// Cells returns a row-major copy of the grid.
func (m *TunnelMap) Cells() []Cell {
	out := make([]Cell, len(m.cells))
	copy(out, m.cells)
	return out
}
