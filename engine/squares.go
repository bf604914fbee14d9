package engine

import "fmt"

// CardSquare is a single cell of a card's ink pattern.
type CardSquare uint8

const (
	CardSquareEmpty CardSquare = iota
	CardSquareFill
	CardSquareSpecial
)

// BoardSquare is a single cell of the game board.
type BoardSquare uint8

const (
	BoardSquareEmpty BoardSquare = iota
	BoardSquareDisabled
	// BoardSquareOutOfBounds never appears on a stored board. It is produced
	// by padded slices to mark cells that fall outside the board.
	BoardSquareOutOfBounds
	BoardSquareFillAlpha
	BoardSquareFillBravo
	BoardSquareInactiveSpecialAlpha
	BoardSquareActiveSpecialAlpha
	BoardSquareInactiveSpecialBravo
	BoardSquareActiveSpecialBravo
	BoardSquareNeutral
)

// Team identifies one of the two players in a game.
type Team uint8

const (
	TeamAlpha Team = iota
	TeamBravo
)

func (t Team) String() string {
	if t == TeamAlpha {
		return "Alpha"
	}
	return "Bravo"
}

// MarshalText lets Team serve as a JSON object key.
func (t Team) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Team) UnmarshalText(text []byte) error {
	switch string(text) {
	case "Alpha":
		*t = TeamAlpha
	case "Bravo":
		*t = TeamBravo
	default:
		return fmt.Errorf("unknown team %q", text)
	}
	return nil
}

// Opponent returns the other team.
func (t Team) Opponent() Team {
	if t == TeamAlpha {
		return TeamBravo
	}
	return TeamAlpha
}

// BoardSquareFromCardSquare converts a card cell into the board cell it
// produces when placed by the given team. Special squares start inactive.
func BoardSquareFromCardSquare(square CardSquare, team Team) BoardSquare {
	switch square {
	case CardSquareFill:
		if team == TeamAlpha {
			return BoardSquareFillAlpha
		}
		return BoardSquareFillBravo
	case CardSquareSpecial:
		if team == TeamAlpha {
			return BoardSquareInactiveSpecialAlpha
		}
		return BoardSquareInactiveSpecialBravo
	default:
		return BoardSquareEmpty
	}
}

// IsFill reports whether the square is filled by either team.
func (s BoardSquare) IsFill() bool {
	return s == BoardSquareFillAlpha || s == BoardSquareFillBravo
}

// IsSpecial reports whether the square is a special square of either team,
// active or not.
func (s BoardSquare) IsSpecial() bool {
	return s == BoardSquareInactiveSpecialAlpha || s == BoardSquareActiveSpecialAlpha ||
		s == BoardSquareInactiveSpecialBravo || s == BoardSquareActiveSpecialBravo
}

// IsInactiveSpecial reports whether the square is a special square that has
// not been activated yet.
func (s BoardSquare) IsInactiveSpecial() bool {
	return s == BoardSquareInactiveSpecialAlpha || s == BoardSquareInactiveSpecialBravo
}
