// Package agent picks moves automatically, for unattended play and for
// exercising full games in tests.
package agent

import (
	"github.com/inkfarer/Tableturfer/engine"
)

// Agent chooses moves greedily: the legal placement covering the most
// squares wins, with the seeded generator breaking ties.
type Agent struct {
	rng uint64
}

// New creates an agent. The seed drives tie-breaking.
func New(seed uint64) *Agent {
	if seed == 0 {
		seed = 1 // xorshift can't start at 0
	}
	return &Agent{rng: seed}
}

// xorshift64
func (a *Agent) nextRand() uint64 {
	x := a.rng
	x ^= x << 13
	x ^= x >> 7
	x ^= x << 17
	a.rng = x
	return x
}

type candidate struct {
	move    engine.Move
	squares int
}

// ChooseMove returns the team's move for the current turn: the highest
// scoring legal placement of any card in hand, or a pass discarding the
// smallest card when nothing can be placed.
func (a *Agent) ChooseMove(board *engine.Board, deck *engine.Deck, team engine.Team, cards engine.CardProvider) engine.Move {
	best := candidate{}
	ties := 0

	boardSize := board.Size()
	for _, name := range deck.CurrentHand {
		card, ok := cards.Card(name)
		if !ok {
			continue
		}

		squares := engine.CopyGrid(card.Squares)
		for _, rotation := range []engine.Rotation{engine.Rotation0, engine.Rotation90, engine.Rotation180, engine.Rotation270} {
			rotated := engine.RotateBy(squares, rotation)
			size := engine.GridSize(rotated)

			for y := 0; y <= boardSize.Height-size.Height; y++ {
				for x := 0; x <= boardSize.Width-size.Width; x++ {
					pos := engine.Position{X: x, Y: y}
					if !board.IsPlaceable(pos, rotated, team, false) {
						continue
					}

					next := candidate{
						move: engine.Move{
							Type:     engine.MovePlaceCard,
							CardName: name,
							Position: pos,
							Rotation: rotation,
						},
						squares: card.SquareCount(),
					}
					if next.squares > best.squares {
						best = next
						ties = 1
					} else if next.squares == best.squares && best.squares > 0 {
						// Reservoir sampling keeps each tied placement
						// equally likely.
						ties++
						if a.nextRand()%uint64(ties) == 0 {
							best = next
						}
					}
				}
			}
		}
	}

	if best.squares > 0 {
		return best.move
	}
	return engine.Move{Type: engine.MovePass, CardName: a.smallestCard(deck, cards)}
}

func (a *Agent) smallestCard(deck *engine.Deck, cards engine.CardProvider) string {
	name := ""
	smallest := 0
	for _, held := range deck.CurrentHand {
		card, ok := cards.Card(held)
		if !ok {
			continue
		}
		if name == "" || card.SquareCount() < smallest {
			name = held
			smallest = card.SquareCount()
		}
	}
	if name == "" && len(deck.CurrentHand) > 0 {
		name = deck.CurrentHand[0]
	}
	return name
}
