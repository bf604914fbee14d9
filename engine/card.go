package engine

// CardGridSize is the side length of the fixed grid card patterns are
// authored on.
const CardGridSize = 8

// Rotation is a clockwise card rotation in degrees.
type Rotation uint16

const (
	Rotation0   Rotation = 0
	Rotation90  Rotation = 90
	Rotation180 Rotation = 180
	Rotation270 Rotation = 270
)

// Next returns the rotation one clockwise step further.
func (r Rotation) Next() Rotation {
	if r == Rotation270 {
		return Rotation0
	}
	return r + 90
}

// Previous returns the rotation one counterclockwise step back.
func (r Rotation) Previous() Rotation {
	if r == Rotation0 {
		return Rotation270
	}
	return r - 90
}

// Flipped returns the rotation turned half a circle.
func (r Rotation) Flipped() Rotation {
	return (r + 180) % 360
}

// Card is one playable card: its catalog metadata and its normalized ink
// pattern. Squares is trimmed of empty outer rows and columns.
type Card struct {
	Category    string
	Name        string
	Number      int
	Rarity      string
	Season      int
	SpecialCost int
	Squares     [][]CardSquare
}

// SquareCount returns the number of non-empty cells in the pattern.
func (c *Card) SquareCount() int {
	return Count(c.Squares, func(sq CardSquare) bool { return sq != CardSquareEmpty })
}

// NormalizeCardSquares converts a card's flat fixed-grid pattern into a
// trimmed two-dimensional pattern. Empty rows and columns are dropped and
// the row order is reversed, as the flat form stores rows bottom-up.
func NormalizeCardSquares(flat []CardSquare, gridSize int) [][]CardSquare {
	emptyColumns := make(map[int]bool)
	for col := 0; col < gridSize; col++ {
		empty := true
		for i := col; i < len(flat); i += gridSize {
			if flat[i] != CardSquareEmpty {
				empty = false
				break
			}
		}
		if empty {
			emptyColumns[col] = true
		}
	}

	var rows [][]CardSquare
	for start := 0; start < len(flat); start += gridSize {
		end := start + gridSize
		if end > len(flat) {
			end = len(flat)
		}
		row := flat[start:end]

		rowEmpty := true
		for _, sq := range row {
			if sq != CardSquareEmpty {
				rowEmpty = false
				break
			}
		}
		if rowEmpty {
			continue
		}

		trimmed := make([]CardSquare, 0, len(row))
		for col, sq := range row {
			if !emptyColumns[col] {
				trimmed = append(trimmed, sq)
			}
		}
		rows = append(rows, trimmed)
	}

	for i, j := 0, len(rows)-1; i < j; i, j = i+1, j-1 {
		rows[i], rows[j] = rows[j], rows[i]
	}
	return rows
}

// CardOrigin returns the cell treated as the handle of a pattern of the
// given size. Positions reported to callers are relative to this cell.
func CardOrigin(size Size) Position {
	return Position{
		X: ceilDiv(size.Width-2, 2),
		Y: size.Height / 2,
	}
}

// RotationOffset returns the positional nudge a card picks up at the given
// rotation so that it appears to spin around a stable center. The exact
// values match the way cards move in-game. size is the card's footprint at
// rotation 0.
func RotationOffset(rotation Rotation, size Size) Position {
	if rotation == Rotation0 {
		return Position{}
	}
	w, h := size.Width, size.Height
	if w == h {
		return Position{}
	}

	switch rotation {
	case Rotation90:
		x := ceilDiv(w-h, 2)
		y := ceilDiv(h-w, 2)
		if h%2 == 1 && w%2 == 0 {
			x--
		}
		return Position{X: x, Y: y}
	case Rotation180:
		if h%2 == 0 && w%2 == 1 {
			return Position{Y: (h + w) % 2}
		}
		return Position{X: -((h + w) % 2)}
	case Rotation270:
		x := floorDiv(w-h, 2)
		y := -x
		if h%2 == 1 && w%2 == 0 {
			y--
		}
		return Position{X: x, Y: y}
	default:
		return Position{}
	}
}

// ceilDiv divides rounding toward positive infinity, matching Math.ceil
// on a fractional quotient.
func ceilDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) == (b < 0) {
		q++
	}
	return q
}

// floorDiv divides rounding toward negative infinity, matching Math.floor
// on a fractional quotient.
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
