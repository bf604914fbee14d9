package engine

// ActiveCard is a card picked up by the player, annotated with the origin
// cell that positions are measured from.
type ActiveCard struct {
	Card
	Origin Position
}

// Selection tracks the move the local player is lining up: the card being
// held, where it sits over the board and at which rotation, plus the
// special and pass flags. Once a move has been proposed the selection is
// locked until the server confirms or rejects it.
type Selection struct {
	ActiveCard *ActiveCard
	Position   Position
	Rotation   Rotation
	Special    bool
	Pass       bool
	Locked     bool
}

// CardSizeWithoutRotation returns the held card's footprint at rotation 0,
// regardless of its current rotation.
func (s *Selection) CardSizeWithoutRotation() Size {
	if s.ActiveCard == nil {
		return Size{}
	}
	size := GridSize(s.ActiveCard.Squares)
	if s.Rotation == Rotation90 || s.Rotation == Rotation270 {
		size.Width, size.Height = size.Height, size.Width
	}
	return size
}

// PositionIsValid reports whether the held card may move to pos. Card
// squares already hanging over the board edge may keep moving around, but
// no square that is currently on the board may be pushed off it.
func (s *Selection) PositionIsValid(board *Board, pos Position) bool {
	if s.ActiveCard == nil {
		return false
	}

	squares := s.ActiveCard.Squares
	cardSize := GridSize(squares)
	if !board.CardIsOutOfBounds(pos, cardSize) {
		return true
	}

	underCurrent := board.SquaresUnderCard(s.Position, cardSize)
	underNew := board.SquaresUnderCard(pos, cardSize)
	for y := range squares {
		for x := range squares[y] {
			if squares[y][x] == CardSquareEmpty {
				continue
			}
			if underCurrent[y][x] != BoardSquareOutOfBounds && underNew[y][x] == BoardSquareOutOfBounds {
				return false
			}
		}
	}
	return true
}

// SetActiveCard switches the held card, keeping the selection anchored to
// the same spot on the board: the position is adjusted for the difference
// between the old and new cards' origins and rotation offsets, then nudged
// back toward the board if the new card would sit entirely outside it.
// Passing nil clears the selection. No-op while locked.
func (s *Selection) SetActiveCard(board *Board, card *Card) {
	if s.Locked {
		return
	}

	if card == nil {
		s.ActiveCard = nil
		return
	}

	squares := CopyGrid(card.Squares)

	oldOrigin := Position{}
	if s.ActiveCard != nil {
		oldOrigin = s.ActiveCard.Origin
	}

	newSize := GridSize(squares)
	newOrigin := CardOrigin(newSize)

	oldOffset := RotationOffset(s.Rotation, s.CardSizeWithoutRotation())
	newOffset := RotationOffset(Rotation0, newSize)

	s.Position = WithinBoardBounds(board, Position{
		X: s.Position.X + oldOrigin.X - newOrigin.X - oldOffset.X + newOffset.X,
		Y: s.Position.Y + oldOrigin.Y - newOrigin.Y - oldOffset.Y + newOffset.Y,
	}, squares)
	s.Rotation = Rotation0

	s.ActiveCard = &ActiveCard{Card: *card, Origin: newOrigin}
	s.ActiveCard.Squares = squares
}

func (s *Selection) updateRotation(board *Board, rotation Rotation) {
	oldRotation := s.Rotation
	s.Rotation = rotation

	size := s.CardSizeWithoutRotation()
	oldOffset := RotationOffset(oldRotation, size)
	newOffset := RotationOffset(rotation, size)

	s.Position = WithinBoardBounds(board, Position{
		X: s.Position.X - oldOffset.X + newOffset.X,
		Y: s.Position.Y - oldOffset.Y + newOffset.Y,
	}, s.ActiveCard.Squares)
}

// NextRotationStep turns the held card a quarter turn clockwise.
func (s *Selection) NextRotationStep(board *Board) {
	if s.ActiveCard == nil {
		return
	}
	s.ActiveCard.Squares = RotateClockwise(s.ActiveCard.Squares)
	s.updateRotation(board, s.Rotation.Next())
}

// PreviousRotationStep turns the held card a quarter turn
// counterclockwise.
func (s *Selection) PreviousRotationStep(board *Board) {
	if s.ActiveCard == nil {
		return
	}
	s.ActiveCard.Squares = RotateCounterclockwise(s.ActiveCard.Squares)
	s.updateRotation(board, s.Rotation.Previous())
}

// PositionFromCardOrigin translates a board cell into the card position
// that puts the card's origin on that cell, accounting for the current
// rotation offset.
func (s *Selection) PositionFromCardOrigin(pos Position) Position {
	origin := Position{}
	if s.ActiveCard != nil {
		origin = s.ActiveCard.Origin
	}
	offset := RotationOffset(s.Rotation, s.CardSizeWithoutRotation())
	return Position{
		X: pos.X - origin.X + offset.X,
		Y: pos.Y - origin.Y + offset.Y,
	}
}

// SetPositionFromCardOrigin moves the card so its origin cell lands on pos.
func (s *Selection) SetPositionFromCardOrigin(pos Position) {
	s.Position = s.PositionFromCardOrigin(pos)
}

// normalizeIfMovementAllowed translates pos and reports whether a move to
// it should be attempted at all. Movement is refused without a held card,
// while locked, or when the target equals the current position.
func (s *Selection) normalizeIfMovementAllowed(pos Position, fromOrigin bool) (Position, bool) {
	if s.ActiveCard == nil || s.Locked {
		return Position{}, false
	}

	normalized := pos
	if fromOrigin {
		normalized = s.PositionFromCardOrigin(pos)
	}
	if normalized == s.Position {
		return Position{}, false
	}
	return normalized, true
}

// SetPositionInsideBoard moves the card toward pos, clamping each axis so
// the card cannot travel further out of bounds than it already is. Used
// for absolute pointer positioning.
func (s *Selection) SetPositionInsideBoard(board *Board, pos Position, fromOrigin bool) {
	normalized, ok := s.normalizeIfMovementAllowed(pos, fromOrigin)
	if !ok {
		return
	}

	cardSize := GridSize(s.ActiveCard.Squares)
	boardSize := board.Size()

	s.Position = Position{
		X: maxInt(minInt(normalized.X, boardSize.Width-cardSize.Width), minInt(s.Position.X, 0)),
		Y: maxInt(minInt(normalized.Y, boardSize.Height-cardSize.Height), minInt(s.Position.Y, 0)),
	}
}

// SetPositionIfPossible moves the card to pos when PositionIsValid allows
// it.
func (s *Selection) SetPositionIfPossible(board *Board, pos Position, fromOrigin bool) {
	normalized, ok := s.normalizeIfMovementAllowed(pos, fromOrigin)
	if !ok {
		return
	}
	if s.PositionIsValid(board, normalized) {
		s.Position = normalized
	}
}

// ApplyDeltaIfPossible moves the card by the given delta when allowed.
func (s *Selection) ApplyDeltaIfPossible(board *Board, delta Position) {
	if delta.X == 0 && delta.Y == 0 {
		return
	}
	s.SetPositionIfPossible(board, Position{
		X: s.Position.X + delta.X,
		Y: s.Position.Y + delta.Y,
	}, false)
}

func (s *Selection) MoveUp(board *Board)    { s.ApplyDeltaIfPossible(board, Position{Y: -1}) }
func (s *Selection) MoveDown(board *Board)  { s.ApplyDeltaIfPossible(board, Position{Y: 1}) }
func (s *Selection) MoveLeft(board *Board)  { s.ApplyDeltaIfPossible(board, Position{X: -1}) }
func (s *Selection) MoveRight(board *Board) { s.ApplyDeltaIfPossible(board, Position{X: 1}) }

// SetSpecial sets the special flag. Special and pass are mutually
// exclusive. No-op while locked.
func (s *Selection) SetSpecial(special bool) {
	if s.Locked {
		return
	}
	if special {
		s.Pass = false
	}
	s.Special = special
}

// SetPass sets the pass flag. Special and pass are mutually exclusive.
// No-op while locked.
func (s *Selection) SetPass(pass bool) {
	if s.Locked {
		return
	}
	if pass {
		s.Special = false
	}
	s.Pass = pass
}

// OnNewMove resets the selection after a turn has resolved.
func (s *Selection) OnNewMove(board *Board) {
	s.Locked = false
	s.Pass = false
	s.Special = false
	s.SetActiveCard(board, nil)
}

// FlippedPosition mirrors a card position through the board center, for
// players who view the board upside down.
func (s *Selection) FlippedPosition(board *Board, pos Position) Position {
	boardSize := board.Size()
	cardSize := Size{}
	if s.ActiveCard != nil {
		cardSize = GridSize(s.ActiveCard.Squares)
	}
	return Position{
		X: boardSize.Width - pos.X - cardSize.Width,
		Y: boardSize.Height - pos.Y - cardSize.Height,
	}
}

// FlipPosition turns the whole selection half a circle in place, squares
// included.
func (s *Selection) FlipPosition(board *Board) {
	if s.ActiveCard != nil {
		s.ActiveCard.Squares = RotateBy(s.ActiveCard.Squares, Rotation180)
	}
	s.Rotation = s.Rotation.Flipped()
	s.Position = s.FlippedPosition(board, s.Position)
}

// WithinBoardBounds nudges pos back toward the board until at least one
// non-empty card square sits on it. Cards already overlapping the board
// are left alone. The card is walked back one column at a time before one
// row at a time, matching the in-game drift.
func WithinBoardBounds(board *Board, pos Position, squares [][]CardSquare) Position {
	if squares == nil {
		return pos
	}

	cardSize := GridSize(squares)
	newPos := pos
	if (cardSize.Width == 0 && cardSize.Height == 0) || !board.CardIsOutOfBounds(newPos, cardSize) {
		return pos
	}

	someWithinBounds := func() bool {
		under := board.SquaresUnderCard(newPos, cardSize)
		return Any(under, func(sq BoardSquare, p Position) bool {
			return squares[p.Y][p.X] != CardSquareEmpty && sq != BoardSquareOutOfBounds
		})
	}

	boardSize := board.Size()
	for !someWithinBounds() {
		if newPos.X < 0 {
			newPos.X++
		} else if newPos.X+cardSize.Width-1 >= boardSize.Width {
			newPos.X--
		}

		if someWithinBounds() {
			break
		}
		if newPos.Y < 0 {
			newPos.Y++
		} else if newPos.Y+cardSize.Height-1 >= boardSize.Height {
			newPos.Y--
		}
	}

	return newPos
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
