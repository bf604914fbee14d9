package engine

import (
	"reflect"
	"testing"
)

func selectionCard1() *Card {
	return &Card{Name: "card_1", SpecialCost: 2, Squares: [][]CardSquare{
		{cE, cF},
		{cE, cS},
		{cF, cF},
	}}
}

func selectionCard2() *Card {
	return &Card{Name: "card_2", SpecialCost: 4, Squares: [][]CardSquare{
		{cF, cF},
		{cF, cS},
	}}
}

func TestCardSizeWithoutRotation(t *testing.T) {
	s := &Selection{ActiveCard: &ActiveCard{Card: Card{Squares: [][]CardSquare{
		{cF, cF},
		{cF, cF},
		{cF, cF},
	}}}}

	tests := []struct {
		rotation Rotation
		want     Size
	}{
		{Rotation0, Size{Width: 2, Height: 3}},
		{Rotation90, Size{Width: 3, Height: 2}},
		{Rotation180, Size{Width: 2, Height: 3}},
		{Rotation270, Size{Width: 3, Height: 2}},
	}
	for _, tt := range tests {
		s.Rotation = tt.rotation
		if got := s.CardSizeWithoutRotation(); got != tt.want {
			t.Errorf("rotation %d: size = %v, want %v", tt.rotation, got, tt.want)
		}
	}

	empty := &Selection{}
	if got := empty.CardSizeWithoutRotation(); got != (Size{}) {
		t.Errorf("size without a card = %v", got)
	}
}

// ---------------------------------------------------------------------------
// WithinBoardBounds
// ---------------------------------------------------------------------------

func TestWithinBoardBounds(t *testing.T) {
	b := emptyBoard(5, 5)
	single := [][]CardSquare{{cF}}

	tests := []struct {
		name    string
		pos     Position
		squares [][]CardSquare
		want    Position
	}{
		{"already on the board", Position{2, 2}, single, Position{2, 2}},
		{"off the left edge", Position{-3, 0}, single, Position{0, 0}},
		{"off the bottom right corner", Position{6, 7}, single, Position{4, 4}},
		{"stops once a non-empty square lands", Position{-2, 3}, [][]CardSquare{{cE, cF}}, Position{-1, 3}},
		{"partially overlapping is left alone", Position{4, 0}, [][]CardSquare{{cF, cF}}, Position{4, 0}},
		{"nil squares", Position{9, 9}, nil, Position{9, 9}},
	}
	for _, tt := range tests {
		if got := WithinBoardBounds(b, tt.pos, tt.squares); got != tt.want {
			t.Errorf("%s: got %v, want %v", tt.name, got, tt.want)
		}
	}
}

// ---------------------------------------------------------------------------
// SetActiveCard
// ---------------------------------------------------------------------------

func TestSetActiveCard(t *testing.T) {
	b := emptyBoard(5, 5)
	s := &Selection{Position: Position{X: 2, Y: 2}}

	s.SetActiveCard(b, selectionCard1())

	if s.ActiveCard == nil || s.ActiveCard.Name != "card_1" {
		t.Fatalf("ActiveCard = %+v", s.ActiveCard)
	}
	if s.ActiveCard.Origin != (Position{X: 0, Y: 1}) {
		t.Errorf("Origin = %v", s.ActiveCard.Origin)
	}
	// The position shifts so the same board cell stays under the origin.
	if s.Position != (Position{X: 2, Y: 1}) {
		t.Errorf("Position = %v", s.Position)
	}
	if s.Rotation != Rotation0 {
		t.Errorf("Rotation = %d", s.Rotation)
	}
}

func TestSetActiveCardDoesNotShareSquaresWithTheCatalog(t *testing.T) {
	b := emptyBoard(5, 5)
	card := selectionCard1()
	s := &Selection{}
	s.SetActiveCard(b, card)

	s.NextRotationStep(b)
	if !reflect.DeepEqual(card.Squares, selectionCard1().Squares) {
		t.Error("rotating the selection mutated the catalog card")
	}
}

func TestSetActiveCardAfterRotation(t *testing.T) {
	b := emptyBoard(5, 5)
	s := &Selection{Position: Position{X: 2, Y: 2}}
	s.SetActiveCard(b, selectionCard1())
	s.NextRotationStep(b)

	if s.Position != (Position{X: 1, Y: 2}) {
		t.Fatalf("Position after rotation = %v", s.Position)
	}

	// Switching cards unwinds the rotation offset along with the origin
	// difference.
	s.SetActiveCard(b, selectionCard2())
	if s.Position != (Position{X: 2, Y: 1}) {
		t.Errorf("Position = %v", s.Position)
	}
	if s.Rotation != Rotation0 {
		t.Errorf("Rotation = %d", s.Rotation)
	}
}

func TestSetActiveCardNilClears(t *testing.T) {
	b := emptyBoard(5, 5)
	s := &Selection{}
	s.SetActiveCard(b, selectionCard1())
	s.SetActiveCard(b, nil)
	if s.ActiveCard != nil {
		t.Errorf("ActiveCard = %+v", s.ActiveCard)
	}
}

func TestSetActiveCardLockedIsNoOp(t *testing.T) {
	b := emptyBoard(5, 5)
	s := &Selection{}
	s.SetActiveCard(b, selectionCard1())
	s.Locked = true
	s.SetActiveCard(b, selectionCard2())
	if s.ActiveCard.Name != "card_1" {
		t.Errorf("ActiveCard = %q", s.ActiveCard.Name)
	}
}

// ---------------------------------------------------------------------------
// Rotation steps
// ---------------------------------------------------------------------------

func TestRotationStepsAdjustPosition(t *testing.T) {
	b := emptyBoard(5, 5)
	s := &Selection{Position: Position{X: 2, Y: 2}}
	s.SetActiveCard(b, selectionCard1())
	start := s.Position
	startSquares := CopyGrid(s.ActiveCard.Squares)

	wantPositions := []Position{{1, 2}, {1, 1}, {1, 1}, {2, 1}}
	for i, want := range wantPositions {
		s.NextRotationStep(b)
		if s.Position != want {
			t.Errorf("step %d: Position = %v, want %v", i+1, s.Position, want)
		}
	}

	if s.Rotation != Rotation0 {
		t.Errorf("Rotation after four steps = %d", s.Rotation)
	}
	if s.Position != start {
		t.Errorf("Position after four steps = %v, want %v", s.Position, start)
	}
	if !reflect.DeepEqual(s.ActiveCard.Squares, startSquares) {
		t.Errorf("Squares after four steps = %v", s.ActiveCard.Squares)
	}
}

func TestPreviousRotationStepUndoesNext(t *testing.T) {
	b := emptyBoard(5, 5)
	s := &Selection{Position: Position{X: 2, Y: 2}}
	s.SetActiveCard(b, selectionCard1())
	start := s.Position

	s.NextRotationStep(b)
	s.PreviousRotationStep(b)

	if s.Rotation != Rotation0 || s.Position != start {
		t.Errorf("Rotation = %d, Position = %v", s.Rotation, s.Position)
	}
}

// ---------------------------------------------------------------------------
// Movement
// ---------------------------------------------------------------------------

func TestPositionIsValid(t *testing.T) {
	b := emptyBoard(5, 5)
	square := [][]CardSquare{
		{cF, cF},
		{cF, cF},
	}
	s := &Selection{ActiveCard: &ActiveCard{Card: Card{Squares: square}}}

	if !s.PositionIsValid(b, Position{X: 1, Y: 1}) {
		t.Error("expected in-bounds position to be valid")
	}
	if s.PositionIsValid(b, Position{X: -1, Y: 0}) {
		t.Error("expected pushing squares off the board to be invalid")
	}

	// Squares that already hang over the edge may keep moving, as long as
	// no on-board square leaves the board.
	s.Position = Position{X: -1, Y: 0}
	if !s.PositionIsValid(b, Position{X: -1, Y: 1}) {
		t.Error("expected sliding along the edge to be valid")
	}
	if s.PositionIsValid(b, Position{X: -2, Y: 0}) {
		t.Error("expected moving further off the board to be invalid")
	}
}

func TestPositionIsValidWithoutCard(t *testing.T) {
	b := emptyBoard(5, 5)
	s := &Selection{}
	if s.PositionIsValid(b, Position{X: 1, Y: 1}) {
		t.Error("expected false without a held card")
	}
}

func TestApplyDeltaIfPossible(t *testing.T) {
	b := emptyBoard(4, 4)
	s := &Selection{ActiveCard: &ActiveCard{Card: Card{Squares: [][]CardSquare{{cF}}}}}

	s.MoveLeft(b)
	if s.Position != (Position{X: 0, Y: 0}) {
		t.Errorf("Position = %v after blocked MoveLeft", s.Position)
	}

	for i := 0; i < 4; i++ {
		s.MoveRight(b)
	}
	if s.Position != (Position{X: 3, Y: 0}) {
		t.Errorf("Position = %v, want to stop at the right edge", s.Position)
	}

	s.MoveUp(b)
	if s.Position != (Position{X: 3, Y: 0}) {
		t.Errorf("Position = %v after blocked MoveUp", s.Position)
	}

	s.MoveDown(b)
	if s.Position != (Position{X: 3, Y: 1}) {
		t.Errorf("Position = %v after MoveDown", s.Position)
	}

	s.ApplyDeltaIfPossible(b, Position{})
	if s.Position != (Position{X: 3, Y: 1}) {
		t.Errorf("Position = %v after zero delta", s.Position)
	}
}

func TestApplyDeltaIfPossibleLocked(t *testing.T) {
	b := emptyBoard(4, 4)
	s := &Selection{
		ActiveCard: &ActiveCard{Card: Card{Squares: [][]CardSquare{{cF}}}},
		Locked:     true,
	}
	s.MoveRight(b)
	if s.Position != (Position{}) {
		t.Errorf("Position = %v while locked", s.Position)
	}
}

func TestSetPositionInsideBoard(t *testing.T) {
	b := emptyBoard(5, 5)
	square := [][]CardSquare{
		{cF, cF},
		{cF, cF},
	}
	s := &Selection{ActiveCard: &ActiveCard{Card: Card{Squares: square}}}

	s.SetPositionInsideBoard(b, Position{X: 10, Y: 10}, false)
	if s.Position != (Position{X: 3, Y: 3}) {
		t.Errorf("Position = %v, want clamped to the far corner", s.Position)
	}

	s.SetPositionInsideBoard(b, Position{X: -5, Y: -5}, false)
	if s.Position != (Position{X: 0, Y: 0}) {
		t.Errorf("Position = %v, want clamped to the origin", s.Position)
	}

	// A card already hanging over the edge keeps its overhang as the floor.
	s.Position = Position{X: -1, Y: 0}
	s.SetPositionInsideBoard(b, Position{X: -4, Y: 2}, false)
	if s.Position != (Position{X: -1, Y: 2}) {
		t.Errorf("Position = %v", s.Position)
	}
}

func TestSetPositionFromCardOrigin(t *testing.T) {
	b := emptyBoard(5, 5)
	s := &Selection{}
	s.SetActiveCard(b, selectionCard1())

	s.SetPositionFromCardOrigin(Position{X: 2, Y: 2})
	if s.Position != (Position{X: 2, Y: 1}) {
		t.Errorf("Position = %v", s.Position)
	}
}

func TestSetPositionIfPossibleRefusesSamePosition(t *testing.T) {
	b := emptyBoard(5, 5)
	s := &Selection{ActiveCard: &ActiveCard{Card: Card{Squares: [][]CardSquare{{cF}}}}}
	s.Position = Position{X: 2, Y: 2}

	s.SetPositionIfPossible(b, Position{X: 2, Y: 2}, false)
	if s.Position != (Position{X: 2, Y: 2}) {
		t.Errorf("Position = %v", s.Position)
	}
}

// ---------------------------------------------------------------------------
// Flags and turn reset
// ---------------------------------------------------------------------------

func TestSpecialAndPassAreMutuallyExclusive(t *testing.T) {
	s := &Selection{}

	s.SetSpecial(true)
	if !s.Special || s.Pass {
		t.Errorf("Special = %v, Pass = %v", s.Special, s.Pass)
	}

	s.SetPass(true)
	if s.Special || !s.Pass {
		t.Errorf("Special = %v, Pass = %v", s.Special, s.Pass)
	}

	s.SetSpecial(true)
	if !s.Special || s.Pass {
		t.Errorf("Special = %v, Pass = %v", s.Special, s.Pass)
	}

	s.SetSpecial(false)
	if s.Special {
		t.Error("Special still set")
	}
}

func TestFlagsAreLockedWithTheSelection(t *testing.T) {
	s := &Selection{Locked: true}
	s.SetSpecial(true)
	s.SetPass(true)
	if s.Special || s.Pass {
		t.Errorf("Special = %v, Pass = %v while locked", s.Special, s.Pass)
	}
}

func TestOnNewMove(t *testing.T) {
	b := emptyBoard(5, 5)
	s := &Selection{}
	s.SetActiveCard(b, selectionCard1())
	s.SetSpecial(true)
	s.Locked = true

	s.OnNewMove(b)

	if s.Locked || s.Special || s.Pass || s.ActiveCard != nil {
		t.Errorf("selection not reset: %+v", s)
	}
}

// ---------------------------------------------------------------------------
// Flipping
// ---------------------------------------------------------------------------

func TestFlippedPosition(t *testing.T) {
	b := emptyBoard(5, 4)
	s := &Selection{ActiveCard: &ActiveCard{Card: Card{Squares: [][]CardSquare{{cF, cF}}}}}

	if got := s.FlippedPosition(b, Position{X: 1, Y: 1}); got != (Position{X: 2, Y: 2}) {
		t.Errorf("FlippedPosition = %v", got)
	}
}

func TestFlipPosition(t *testing.T) {
	b := emptyBoard(5, 4)
	s := &Selection{
		ActiveCard: &ActiveCard{Card: Card{Squares: [][]CardSquare{
			{cS, cF},
		}}},
		Position: Position{X: 1, Y: 1},
		Rotation: Rotation90,
	}

	s.FlipPosition(b)

	if s.Position != (Position{X: 2, Y: 2}) {
		t.Errorf("Position = %v", s.Position)
	}
	if s.Rotation != Rotation270 {
		t.Errorf("Rotation = %d", s.Rotation)
	}
	want := [][]CardSquare{{cF, cS}}
	if !reflect.DeepEqual(s.ActiveCard.Squares, want) {
		t.Errorf("Squares = %v, want %v", s.ActiveCard.Squares, want)
	}
}
