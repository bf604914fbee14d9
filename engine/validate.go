package engine

// ValidateMove checks a proposed move against the current board and the
// proposing team's deck. It mirrors the server's checks so that obviously
// bad moves are rejected before a round-trip. A nil deck skips the hand
// checks.
func ValidateMove(board *Board, availableSpecialPoints int, team Team, move Move, deck *Deck, cards CardProvider) error {
	card, ok := cards.Card(move.CardName)
	if !ok {
		return &InvalidMoveError{Reason: ReasonCardNotFound}
	}
	if deck != nil && !deck.InHand(move.CardName) {
		return &InvalidMoveError{Reason: ReasonCardNotInHand}
	}

	if move.Type == MovePass {
		return nil
	}

	if move.Special && card.SpecialCost > availableSpecialPoints {
		return &InvalidMoveError{Reason: ReasonCannotAffordSpecial}
	}

	squares := RotateBy(CopyGrid(card.Squares), move.Rotation)
	if board.CardIsOutOfBounds(move.Position, GridSize(squares)) {
		return &InvalidMoveError{Reason: ReasonCardOutOfBounds}
	}
	if !coversOnlyAllowedSquares(board, move.Position, squares, move.Special) {
		return &InvalidMoveError{Reason: ReasonCardOnDisallowedSquares}
	}
	if !hasExpectedSquaresNearby(board, move.Position, squares, team, move.Special) {
		return &InvalidMoveError{Reason: ReasonNoExpectedSquaresNearCard}
	}
	return nil
}

func coversOnlyAllowedSquares(board *Board, pos Position, squares [][]CardSquare, special bool) bool {
	return All(squares, func(sq CardSquare, p Position) bool {
		if sq == CardSquareEmpty {
			return true
		}
		boardSq := board.Squares[pos.Y+p.Y][pos.X+p.X]
		if boardSq == BoardSquareEmpty {
			return true
		}
		return special && boardSq.IsFill()
	})
}

func hasExpectedSquaresNearby(board *Board, pos Position, squares [][]CardSquare, team Team, special bool) bool {
	accepted := func(sq BoardSquare) bool {
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

	return Any(squares, func(sq CardSquare, p Position) bool {
		if sq == CardSquareEmpty {
			return false
		}
		around := Slice(board.Squares,
			Position{X: pos.X + p.X - 1, Y: pos.Y + p.Y - 1},
			Position{X: pos.X + p.X + 1, Y: pos.Y + p.Y + 1})
		return Any(around, func(boardSq BoardSquare, _ Position) bool {
			return accepted(boardSq)
		})
	})
}
