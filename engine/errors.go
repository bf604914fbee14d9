package engine

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownCard is returned when a move names a card missing from the
	// card catalog.
	ErrUnknownCard = errors.New("unknown card")
	// ErrUnknownMap is returned when a board is requested by a name missing
	// from the map catalog.
	ErrUnknownMap = errors.New("unknown map")
	// ErrGameEnded rejects moves proposed after the last turn has resolved.
	ErrGameEnded = errors.New("game has ended")
	// ErrIncorrectDeckSize rejects decks that do not hold exactly DeckSize
	// cards.
	ErrIncorrectDeckSize = errors.New("incorrect deck size")
)

// InvalidMoveReason classifies why a proposed move was rejected.
type InvalidMoveReason string

const (
	ReasonCardNotFound              InvalidMoveReason = "CardNotFound"
	ReasonCardNotInHand             InvalidMoveReason = "CardNotInHand"
	ReasonCannotAffordSpecial       InvalidMoveReason = "CannotAffordSpecial"
	ReasonCardOutOfBounds           InvalidMoveReason = "CardOutOfBounds"
	ReasonCardOnDisallowedSquares   InvalidMoveReason = "CardOnDisallowedSquares"
	ReasonNoExpectedSquaresNearCard InvalidMoveReason = "NoExpectedSquaresNearCard"
)

// InvalidMoveError reports a move that failed validation.
type InvalidMoveError struct {
	Reason InvalidMoveReason
}

func (e *InvalidMoveError) Error() string {
	return fmt.Sprintf("invalid move: %s", e.Reason)
}

// IsInvalidMove extracts the rejection reason from an error chain.
func IsInvalidMove(err error) (InvalidMoveReason, bool) {
	var invalid *InvalidMoveError
	if errors.As(err, &invalid) {
		return invalid.Reason, true
	}
	return "", false
}
