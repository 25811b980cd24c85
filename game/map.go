package game

// Size is the width and height of the coordinate grid the board is drawn on.
const Size = 7

// Point is a grid coordinate. Only the 24 points listed in Tiles are part of the board.
type Point struct {
	X int
	Y int
}

// Tile describes one board position and its neighbours.
type Tile struct {
	ID          int   // Index into Tiles
	Point       Point // Grid coordinate
	AdjacentIDs []int // IDs of directly connected tiles
	MillIDs     []int // Indices into Mills of the lines through this tile
}

// Map is the static board graph.
type Map struct {
	Tiles []*Tile
	ids   [Size][Size]int // -1 for off-graph cells
}

// Mill is a line of three tiles.
type Mill [3]Point

// newMap creates an empty graph holding the given points.
func newMap(points []Point) *Map {
	m := &Map{}
	for y := range m.ids {
		for x := range m.ids[y] {
			m.ids[y][x] = -1
		}
	}
	for id, p := range points {
		m.Tiles = append(m.Tiles, &Tile{ID: id, Point: p, AdjacentIDs: []int{}})
		m.ids[p.Y][p.X] = id
	}
	return m
}

// AddBorder adds a bidirectional edge between two tiles.
func (m *Map) AddBorder(a, b Point) {
	id1, id2 := m.ID(a), m.ID(b)
	if !contains(m.Tiles[id1].AdjacentIDs, id2) {
		m.Tiles[id1].AdjacentIDs = append(m.Tiles[id1].AdjacentIDs, id2)
	}
	if !contains(m.Tiles[id2].AdjacentIDs, id1) {
		m.Tiles[id2].AdjacentIDs = append(m.Tiles[id2].AdjacentIDs, id1)
	}
}

// ID returns the tile index of p, or -1 if p is not on the board.
func (m *Map) ID(p Point) int {
	if p.X < 0 || p.X >= Size || p.Y < 0 || p.Y >= Size {
		return -1
	}
	return m.ids[p.Y][p.X]
}

func contains(slice []int, item int) bool {
	for _, v := range slice {
		if v == item {
			return true
		}
	}
	return false
}

// createMap builds the board graph. Every mill line contributes its two segments
// as borders, which yields exactly the board's adjacency.
func createMap() *Map {
	m := newMap(tilePoints)
	for i, mill := range millLines {
		m.AddBorder(mill[0], mill[1])
		m.AddBorder(mill[1], mill[2])
		for _, p := range mill {
			t := m.Tiles[m.ID(p)]
			t.MillIDs = append(t.MillIDs, i)
		}
	}
	return m
}

var tilePoints = []Point{
	{0, 0}, {0, 3}, {0, 6},
	{1, 1}, {1, 3}, {1, 5},
	{2, 2}, {2, 3}, {2, 4},
	{3, 0}, {3, 1}, {3, 2}, {3, 4}, {3, 5}, {3, 6},
	{4, 2}, {4, 3}, {4, 4},
	{5, 1}, {5, 3}, {5, 5},
	{6, 0}, {6, 3}, {6, 6},
}

var millLines = []Mill{
	// Rows
	{{0, 0}, {3, 0}, {6, 0}},
	{{1, 1}, {3, 1}, {5, 1}},
	{{2, 2}, {3, 2}, {4, 2}},
	{{0, 3}, {1, 3}, {2, 3}},
	{{4, 3}, {5, 3}, {6, 3}},
	{{2, 4}, {3, 4}, {4, 4}},
	{{1, 5}, {3, 5}, {5, 5}},
	{{0, 6}, {3, 6}, {6, 6}},
	// Columns
	{{0, 0}, {0, 3}, {0, 6}},
	{{1, 1}, {1, 3}, {1, 5}},
	{{2, 2}, {2, 3}, {2, 4}},
	{{3, 0}, {3, 1}, {3, 2}},
	{{3, 4}, {3, 5}, {3, 6}},
	{{4, 2}, {4, 3}, {4, 4}},
	{{5, 1}, {5, 3}, {5, 5}},
	{{6, 0}, {6, 3}, {6, 6}},
}

// Graph is the single static board graph shared by every game state.
var Graph = createMap()

// Tiles lists the valid positions in enumeration order.
var Tiles = tilePoints

// Mills lists the 16 lines of three.
var Mills = millLines

// IsTile reports whether p is one of the 24 valid positions.
func IsTile(p Point) bool {
	return Graph.ID(p) >= 0
}

// Neighbors returns the tiles directly connected to p, or nil if p is off the board.
func Neighbors(p Point) []Point {
	id := Graph.ID(p)
	if id < 0 {
		return nil
	}
	adj := Graph.Tiles[id].AdjacentIDs
	out := make([]Point, len(adj))
	for i, a := range adj {
		out[i] = Graph.Tiles[a].Point
	}
	return out
}

// AreAdjacent checks if two tiles share an edge.
func AreAdjacent(a, b Point) bool {
	id1, id2 := Graph.ID(a), Graph.ID(b)
	if id1 < 0 || id2 < 0 {
		return false
	}
	return contains(Graph.Tiles[id1].AdjacentIDs, id2)
}

// millsThrough returns the indices of the lines through p.
func millsThrough(p Point) []int {
	return Graph.Tiles[Graph.ID(p)].MillIDs
}
