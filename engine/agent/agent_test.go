package agent

import (
	"testing"

	"github.com/inkfarer/Tableturfer/engine"
	"github.com/inkfarer/Tableturfer/internal/catalog"
)

type stubCards map[string]*engine.Card

func (s stubCards) Card(name string) (*engine.Card, bool) {
	card, ok := s[name]
	return card, ok
}

func agentCards() stubCards {
	return stubCards{
		"small": {Name: "small", SpecialCost: 1, Squares: [][]engine.CardSquare{
			{engine.CardSquareSpecial},
		}},
		"big": {Name: "big", SpecialCost: 2, Squares: [][]engine.CardSquare{
			{engine.CardSquareFill, engine.CardSquareFill},
			{engine.CardSquareFill, engine.CardSquareSpecial},
		}},
	}
}

func agentDeck(hand ...string) *engine.Deck {
	d := engine.NewDeck(hand, 7)
	d.CurrentHand = hand
	return d
}

func TestChooseMovePrefersLargerPlacements(t *testing.T) {
	squares := engine.Filled(5, 5, engine.BoardSquareEmpty)
	squares[2][2] = engine.BoardSquareFillAlpha
	board := engine.NewBoard(engine.GameMap{Name: "test", Squares: squares})

	move := New(7).ChooseMove(board, agentDeck("small", "big"), engine.TeamAlpha, agentCards())

	if move.Type != engine.MovePlaceCard {
		t.Fatalf("move = %+v", move)
	}
	if move.CardName != "big" {
		t.Errorf("card = %q, want the larger card", move.CardName)
	}

	card, _ := agentCards().Card(move.CardName)
	rotated := engine.RotateBy(engine.CopyGrid(card.Squares), move.Rotation)
	if !board.IsPlaceable(move.Position, rotated, engine.TeamAlpha, false) {
		t.Errorf("chose an illegal placement: %+v", move)
	}
}

func TestChooseMovePassesWhenNothingFits(t *testing.T) {
	board := engine.NewBoard(engine.GameMap{
		Name:    "test",
		Squares: engine.Filled(3, 3, engine.BoardSquareDisabled),
	})

	move := New(7).ChooseMove(board, agentDeck("big", "small"), engine.TeamAlpha, agentCards())

	if move.Type != engine.MovePass {
		t.Fatalf("move = %+v, want a pass", move)
	}
	if move.CardName != "small" {
		t.Errorf("card = %q, want the smallest card discarded", move.CardName)
	}
}

func TestChooseMoveIsDeterministicForASeed(t *testing.T) {
	squares := engine.Filled(6, 6, engine.BoardSquareEmpty)
	squares[3][3] = engine.BoardSquareFillAlpha
	board := engine.NewBoard(engine.GameMap{Name: "test", Squares: squares})

	a := New(99).ChooseMove(board, agentDeck("small"), engine.TeamAlpha, agentCards())
	b := New(99).ChooseMove(board, agentDeck("small"), engine.TeamAlpha, agentCards())
	if a != b {
		t.Errorf("moves differ: %+v vs %+v", a, b)
	}
}

// Two agents play a full game on a real map with the default deck.
func TestFullGameBetweenAgents(t *testing.T) {
	cards := catalog.NewCards()
	maps := catalog.NewMaps()
	m, ok := maps.Map(catalog.DefaultMapName)
	if !ok {
		t.Fatal("default map missing")
	}

	board := engine.NewBoard(m)
	decks := map[engine.Team]*engine.Deck{
		engine.TeamAlpha: engine.NewDeck(catalog.DefaultDeckCards, 11),
		engine.TeamBravo: engine.NewDeck(catalog.DefaultDeckCards, 22),
	}
	agents := map[engine.Team]*Agent{
		engine.TeamAlpha: New(33),
		engine.TeamBravo: New(44),
	}
	for _, deck := range decks {
		deck.AssignHand()
	}

	for turn := 0; turn < engine.TurnCount; turn++ {
		moves := engine.TeamMoves{}
		for team, a := range agents {
			move := a.ChooseMove(board, decks[team], team, cards)
			if move.CardName == "" {
				t.Fatalf("turn %d: no card chosen for %v", turn, team)
			}
			if err := engine.ValidateMove(board, 0, team, move, decks[team], cards); err != nil {
				t.Fatalf("turn %d: %v proposed an invalid move %+v: %v", turn, team, move, err)
			}
			moves[team] = move
		}

		if err := board.ApplyMoves(moves, cards); err != nil {
			t.Fatalf("turn %d: ApplyMoves: %v", turn, err)
		}
		for team, move := range moves {
			decks[team].DrawNewCard(move.CardName)
		}
	}

	score := board.Score()
	if score[engine.TeamAlpha] == 0 || score[engine.TeamBravo] == 0 {
		t.Errorf("score = %v, want both teams on the board", score)
	}
}
