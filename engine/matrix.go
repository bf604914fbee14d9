package engine

// Position is a cell coordinate. X grows rightward, Y grows downward.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Size is the width and height of a grid in cells.
type Size struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// GridSize returns the dimensions of a row-major grid. An empty grid has
// zero width and height.
func GridSize[T any](grid [][]T) Size {
	if len(grid) == 0 {
		return Size{}
	}
	return Size{Width: len(grid[0]), Height: len(grid)}
}

// RotateClockwise returns a new grid rotated 90 degrees clockwise.
func RotateClockwise[T any](grid [][]T) [][]T {
	if len(grid) == 0 {
		return nil
	}
	w, h := len(grid[0]), len(grid)
	out := make([][]T, w)
	for x := 0; x < w; x++ {
		row := make([]T, h)
		for y := 0; y < h; y++ {
			row[y] = grid[h-1-y][x]
		}
		out[x] = row
	}
	return out
}

// RotateCounterclockwise returns a new grid rotated 90 degrees
// counterclockwise.
func RotateCounterclockwise[T any](grid [][]T) [][]T {
	if len(grid) == 0 {
		return nil
	}
	w, h := len(grid[0]), len(grid)
	out := make([][]T, w)
	for x := 0; x < w; x++ {
		row := make([]T, h)
		for y := 0; y < h; y++ {
			row[y] = grid[y][w-1-x]
		}
		out[x] = row
	}
	return out
}

// RotateBy rotates a grid clockwise by the given rotation.
func RotateBy[T any](grid [][]T, rotation Rotation) [][]T {
	switch rotation {
	case Rotation90:
		return RotateClockwise(grid)
	case Rotation180:
		return RotateClockwise(RotateClockwise(grid))
	case Rotation270:
		return RotateCounterclockwise(grid)
	default:
		return grid
	}
}

// Slice returns the cells between start and end, both inclusive. The
// requested region is clamped to the grid, so the result may be smaller
// than requested. A region entirely outside the grid, or with start past
// end, yields an empty slice.
func Slice[T any](grid [][]T, start, end Position) [][]T {
	if start.X > end.X || start.Y > end.Y {
		return nil
	}
	size := GridSize(grid)
	y1, y2 := clamp(start.Y, 0, size.Height), clamp(end.Y+1, 0, size.Height)
	x1, x2 := clamp(start.X, 0, size.Width), clamp(end.X+1, 0, size.Width)
	if y1 >= y2 || x1 >= x2 {
		return nil
	}
	out := make([][]T, 0, y2-y1)
	for y := y1; y < y2; y++ {
		row := make([]T, x2-x1)
		copy(row, grid[y][x1:x2])
		out = append(out, row)
	}
	return out
}

// SlicePadded is Slice without clamping: the result is always exactly the
// requested size, and cells outside the grid hold the placeholder value.
func SlicePadded[T any](grid [][]T, start, end Position, placeholder T) [][]T {
	size := GridSize(grid)
	out := make([][]T, 0, absInt(end.Y-start.Y)+1)
	for y := start.Y; y <= end.Y; y++ {
		row := make([]T, 0, absInt(end.X-start.X)+1)
		for x := start.X; x <= end.X; x++ {
			if y < 0 || y >= size.Height || x < 0 || x >= size.Width {
				row = append(row, placeholder)
			} else {
				row = append(row, grid[y][x])
			}
		}
		out = append(out, row)
	}
	return out
}

// Any reports whether any cell satisfies the predicate.
func Any[T any](grid [][]T, pred func(cell T, pos Position) bool) bool {
	for y, row := range grid {
		for x, cell := range row {
			if pred(cell, Position{X: x, Y: y}) {
				return true
			}
		}
	}
	return false
}

// All reports whether every cell satisfies the predicate. An empty grid
// satisfies All.
func All[T any](grid [][]T, pred func(cell T, pos Position) bool) bool {
	for y, row := range grid {
		for x, cell := range row {
			if !pred(cell, Position{X: x, Y: y}) {
				return false
			}
		}
	}
	return true
}

// Count returns the number of cells satisfying the predicate.
func Count[T any](grid [][]T, pred func(cell T) bool) int {
	n := 0
	for _, row := range grid {
		for _, cell := range row {
			if pred(cell) {
				n++
			}
		}
	}
	return n
}

// ForEach calls fn for every cell in row-major order.
func ForEach[T any](grid [][]T, fn func(cell T, pos Position)) {
	for y, row := range grid {
		for x, cell := range row {
			fn(cell, Position{X: x, Y: y})
		}
	}
}

// Filled builds a grid of the given size with every cell set to value.
func Filled[T any](width, height int, value T) [][]T {
	out := make([][]T, height)
	for y := range out {
		row := make([]T, width)
		for x := range row {
			row[x] = value
		}
		out[y] = row
	}
	return out
}

// CopyGrid returns a deep copy of the grid.
func CopyGrid[T any](grid [][]T) [][]T {
	out := make([][]T, len(grid))
	for y, row := range grid {
		out[y] = make([]T, len(row))
		copy(out[y], row)
	}
	return out
}

// FindFirst scans the grid in row-major order and returns the position of
// the first matching cell.
//
// Quirk: a match in column 0 is never reported, and skips the rest of its
// row. Peer clients share this behavior, so changing it would desync start
// positions; every shipped map keeps its special squares away from the
// left edge.
func FindFirst[T any](grid [][]T, pred func(cell T) bool) (Position, bool) {
	for y, row := range grid {
		for x, cell := range row {
			if pred(cell) {
				if x > 0 {
					return Position{X: x, Y: y}, true
				}
				break
			}
		}
	}
	return Position{}, false
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
