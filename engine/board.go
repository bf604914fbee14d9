package engine

import (
	"fmt"
	"sort"
)

// GameMap is a static board layout from the map catalog.
type GameMap struct {
	Name    string
	Squares [][]BoardSquare
}

// CardProvider resolves card names against a catalog.
type CardProvider interface {
	Card(name string) (*Card, bool)
}

// Board is the shared game board plus the per-team special point counters
// derived from it. The board's dimensions never change during a game.
type Board struct {
	Name    string
	Squares [][]BoardSquare

	// SpecialPoints counts each team's activated special squares.
	// UsedSpecialPoints accumulates the cost of every special placement a
	// team has made.
	SpecialPoints     map[Team]int
	UsedSpecialPoints map[Team]int
}

func newScoreCounter() map[Team]int {
	return map[Team]int{TeamAlpha: 0, TeamBravo: 0}
}

// NewBoard builds a board from a map layout. The layout is copied.
func NewBoard(m GameMap) *Board {
	return &Board{
		Name:              m.Name,
		Squares:           CopyGrid(m.Squares),
		SpecialPoints:     newScoreCounter(),
		UsedSpecialPoints: newScoreCounter(),
	}
}

// Size returns the board's dimensions.
func (b *Board) Size() Size {
	return GridSize(b.Squares)
}

// SquaresUnderCard returns the board cells a card footprint of the given
// size covers at the given position. Cells outside the board are reported
// as BoardSquareOutOfBounds.
func (b *Board) SquaresUnderCard(pos Position, cardSize Size) [][]BoardSquare {
	return SlicePadded(
		b.Squares,
		pos,
		Position{X: pos.X + cardSize.Width - 1, Y: pos.Y + cardSize.Height - 1},
		BoardSquareOutOfBounds)
}

// CardIsOutOfBounds reports whether any part of a card footprint of the
// given size sticks out of the board at the given position.
func (b *Board) CardIsOutOfBounds(pos Position, cardSize Size) bool {
	size := b.Size()
	return pos.X < 0 || pos.Y < 0 ||
		pos.X+cardSize.Width > size.Width ||
		pos.Y+cardSize.Height > size.Height
}

// IsPlaceable reports whether the given card pattern may legally be placed
// at pos by team. A regular placement must cover only empty squares; a
// special placement may additionally cover either team's fill. In both
// cases at least one card square must sit within one cell of the team's
// own ink: special squares always count, fill only for regular placements.
func (b *Board) IsPlaceable(pos Position, cardSquares [][]CardSquare, team Team, special bool) bool {
	if cardSquares == nil || b.Squares == nil {
		return false
	}

	cardSize := GridSize(cardSquares)
	if cardSize.Height == 0 || cardSize.Width == 0 {
		return false
	}
	under := Slice(b.Squares, pos, Position{
		X: pos.X + cardSize.Width - 1,
		Y: pos.Y + cardSize.Height - 1,
	})
	// A smaller slice than the card means part of it is off the board.
	if len(under) != cardSize.Height || len(under[0]) != cardSize.Width {
		return false
	}

	coveringAccepted := func(sq BoardSquare) bool {
		if sq == BoardSquareEmpty {
			return true
		}
		return special && (sq == BoardSquareFillAlpha || sq == BoardSquareFillBravo)
	}

	nearbyAccepted := func(sq BoardSquare) bool {
		if team == TeamAlpha {
			if sq == BoardSquareInactiveSpecialAlpha || sq == BoardSquareActiveSpecialAlpha {
				return true
			}
			return !special && sq == BoardSquareFillAlpha
		}
		if sq == BoardSquareInactiveSpecialBravo || sq == BoardSquareActiveSpecialBravo {
			return true
		}
		return !special && sq == BoardSquareFillBravo
	}

	coversOnlyAllowed := All(cardSquares, func(sq CardSquare, p Position) bool {
		if sq == CardSquareEmpty {
			return true
		}
		return coveringAccepted(under[p.Y][p.X])
	})
	if !coversOnlyAllowed {
		return false
	}

	return Any(cardSquares, func(sq CardSquare, p Position) bool {
		if sq == CardSquareEmpty {
			return false
		}
		around := Slice(b.Squares,
			Position{X: pos.X + p.X - 1, Y: pos.Y + p.Y - 1},
			Position{X: pos.X + p.X + 1, Y: pos.Y + p.Y + 1})
		return Any(around, func(boardSq BoardSquare, _ Position) bool {
			return nearbyAccepted(boardSq)
		})
	})
}

// PlaceCard writes a single card pattern onto the board if the placement is
// legal, then re-activates special squares. It reports whether anything was
// placed.
func (b *Board) PlaceCard(pos Position, cardSquares [][]CardSquare, team Team, special bool) bool {
	if !b.IsPlaceable(pos, cardSquares, team, special) {
		return false
	}

	ForEach(cardSquares, func(sq CardSquare, p Position) {
		if sq == CardSquareEmpty {
			return
		}
		b.Squares[pos.Y+p.Y][pos.X+p.X] = BoardSquareFromCardSquare(sq, team)
	})
	b.refresh()
	return true
}

type resolvedMove struct {
	team        Team
	move        Move
	squares     [][]CardSquare
	specialCost int
	squareCount int
}

// ApplyMoves resolves one turn's move bundle onto the board. Pass moves
// leave the board untouched. Cards are written largest first onto a scratch
// grid; when both cards are the same size, contested cells turn neutral,
// and a special square is never overwritten by plain fill. The scratch grid
// is then merged onto the board and special squares are re-activated.
func (b *Board) ApplyMoves(moves TeamMoves, cards CardProvider) error {
	updates := Filled(b.Size().Width, b.Size().Height, BoardSquareEmpty)

	resolved := make([]resolvedMove, 0, len(moves))
	for team, move := range moves {
		if move.Type != MovePlaceCard {
			continue
		}
		card, ok := cards.Card(move.CardName)
		if !ok {
			return fmt.Errorf("%w: %q", ErrUnknownCard, move.CardName)
		}
		squares := RotateBy(CopyGrid(card.Squares), move.Rotation)
		resolved = append(resolved, resolvedMove{
			team:        team,
			move:        move,
			squares:     squares,
			specialCost: card.SpecialCost,
			squareCount: Count(squares, func(sq CardSquare) bool { return sq != CardSquareEmpty }),
		})
	}

	sort.SliceStable(resolved, func(i, j int) bool {
		if resolved[i].squareCount != resolved[j].squareCount {
			return resolved[i].squareCount > resolved[j].squareCount
		}
		return resolved[i].team < resolved[j].team
	})

	squareCountsMatch := len(resolved) == len(moves) && len(resolved) > 0
	for _, r := range resolved {
		if r.squareCount != resolved[0].squareCount {
			squareCountsMatch = false
		}
	}

	for _, r := range resolved {
		if r.move.Special {
			b.UsedSpecialPoints[r.team] += r.specialCost
		}

		ForEach(r.squares, func(sq CardSquare, p Position) {
			if sq == CardSquareEmpty {
				return
			}
			boardPos := Position{X: r.move.Position.X + p.X, Y: r.move.Position.Y + p.Y}
			existing := updates[boardPos.Y][boardPos.X]
			newSquare := BoardSquareFromCardSquare(sq, r.team)

			if existing.IsSpecial() && newSquare.IsFill() {
				return
			}
			if squareCountsMatch &&
				((existing.IsFill() && newSquare.IsFill()) ||
					(existing.IsSpecial() && newSquare.IsSpecial())) {
				newSquare = BoardSquareNeutral
			}
			updates[boardPos.Y][boardPos.X] = newSquare
		})
	}

	newBoard := CopyGrid(b.Squares)
	ForEach(updates, func(sq BoardSquare, p Position) {
		if sq == BoardSquareEmpty {
			return
		}
		newBoard[p.Y][p.X] = sq
	})
	b.Squares = newBoard
	b.refresh()
	return nil
}

// refresh activates any special square whose full neighborhood is covered
// and recomputes the per-team special point counts from the activated
// squares.
func (b *Board) refresh() {
	ActivateSpecialSquares(b.Squares)

	points := newScoreCounter()
	ForEach(b.Squares, func(sq BoardSquare, _ Position) {
		switch sq {
		case BoardSquareActiveSpecialAlpha:
			points[TeamAlpha]++
		case BoardSquareActiveSpecialBravo:
			points[TeamBravo]++
		}
	})
	b.SpecialPoints = points
}

// AvailableSpecialPoints returns how many special points the team can still
// spend.
func (b *Board) AvailableSpecialPoints(team Team) int {
	available := b.SpecialPoints[team] - b.UsedSpecialPoints[team]
	if available < 0 {
		return 0
	}
	return available
}

// Score counts each team's filled and special squares.
func (b *Board) Score() map[Team]int {
	result := newScoreCounter()
	ForEach(b.Squares, func(sq BoardSquare, _ Position) {
		switch sq {
		case BoardSquareFillAlpha, BoardSquareInactiveSpecialAlpha, BoardSquareActiveSpecialAlpha:
			result[TeamAlpha]++
		case BoardSquareFillBravo, BoardSquareInactiveSpecialBravo, BoardSquareActiveSpecialBravo:
			result[TeamBravo]++
		}
	})
	return result
}

// StartPosition returns the location of the team's starting special square,
// if the map defines one.
func (b *Board) StartPosition(team Team) (Position, bool) {
	want := BoardSquareInactiveSpecialAlpha
	if team == TeamBravo {
		want = BoardSquareInactiveSpecialBravo
	}
	return FindFirst(b.Squares, func(sq BoardSquare) bool { return sq == want })
}

// ActivateSpecialSquares converts every inactive special square whose 3x3
// neighborhood holds no empty squares into an active one. The neighborhood
// is clamped at the board edge, so edge squares only need their on-board
// neighbors covered.
func ActivateSpecialSquares(board [][]BoardSquare) {
	ForEach(board, func(sq BoardSquare, pos Position) {
		if !sq.IsInactiveSpecial() {
			return
		}

		around := Slice(board,
			Position{X: pos.X - 1, Y: pos.Y - 1},
			Position{X: pos.X + 1, Y: pos.Y + 1})
		if !All(around, func(s BoardSquare, _ Position) bool { return s != BoardSquareEmpty }) {
			return
		}

		if sq == BoardSquareInactiveSpecialAlpha {
			board[pos.Y][pos.X] = BoardSquareActiveSpecialAlpha
		} else {
			board[pos.Y][pos.X] = BoardSquareActiveSpecialBravo
		}
	})
}
