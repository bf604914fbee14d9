package engine

import (
	"fmt"

	"github.com/google/uuid"
)

// MapProvider resolves map names against a catalog.
type MapProvider interface {
	Map(name string) (GameMap, bool)
}

// GameSession is the local player's view of one game: the shared board,
// the move being lined up, both decks as far as they are known, and the
// per-turn bookkeeping that pairs up move events arriving from the server.
type GameSession struct {
	ID           uuid.UUID
	PlayerTeam   Team
	BoardFlipped bool

	Board     *Board
	Selection Selection
	Decks     map[Team]*Deck

	// MoveHistory holds every resolved move bundle, oldest first.
	MoveHistory []TeamMoves
	LastMoves   TeamMoves
	// NextMoveCompleted marks teams whose move for the current turn has
	// been acknowledged by the server but not yet applied.
	NextMoveCompleted map[Team]bool
	RemainingTurns    int

	cards CardProvider
	maps  MapProvider
}

// NewGameSession creates a session for the given team.
func NewGameSession(playerTeam Team, cards CardProvider, maps MapProvider) *GameSession {
	return &GameSession{
		ID:                uuid.New(),
		PlayerTeam:        playerTeam,
		Decks:             make(map[Team]*Deck),
		NextMoveCompleted: map[Team]bool{TeamAlpha: false, TeamBravo: false},
		RemainingTurns:    TurnCount,
		cards:             cards,
		maps:              maps,
	}
}

// SetDeck registers a team's deck. The local player's deck must hold
// exactly DeckSize cards; the opponent's deck may be partial knowledge.
func (g *GameSession) SetDeck(team Team, cards []string, seed uint64) error {
	if team == g.PlayerTeam && len(cards) != DeckSize {
		return fmt.Errorf("%w: got %d cards, want %d", ErrIncorrectDeckSize, len(cards), DeckSize)
	}
	for _, name := range cards {
		if _, ok := g.cards.Card(name); !ok {
			return fmt.Errorf("%w: %q", ErrUnknownCard, name)
		}
	}
	g.Decks[team] = NewDeck(cards, seed)
	return nil
}

// SetBoardByName looks the map up in the catalog and installs it.
func (g *GameSession) SetBoardByName(name string) error {
	m, ok := g.maps.Map(name)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownMap, name)
	}
	g.SetBoard(m)
	return nil
}

// SetBoard installs a fresh board and drops the selection onto the
// player's starting special square.
func (g *GameSession) SetBoard(m GameMap) {
	g.Board = NewBoard(m)

	if start, ok := g.Board.StartPosition(g.PlayerTeam); ok {
		g.Selection.SetPositionFromCardOrigin(start)
	}
}

// ProposeMove builds the outbound move from the current selection,
// validates it, and locks the selection until the server answers. The
// returned move is in canonical board coordinates: for a player viewing
// the board flipped, position and rotation are mirrored back.
func (g *GameSession) ProposeMove() (Move, error) {
	if g.RemainingTurns <= 0 {
		return Move{}, ErrGameEnded
	}
	if g.Selection.ActiveCard == nil {
		return Move{}, fmt.Errorf("no card selected")
	}

	var move Move
	if g.Selection.Pass {
		move = Move{Type: MovePass, CardName: g.Selection.ActiveCard.Name}
	} else {
		position := g.Selection.Position
		rotation := g.Selection.Rotation
		if g.BoardFlipped {
			position = g.Selection.FlippedPosition(g.Board, position)
			rotation = rotation.Flipped()
		}
		move = Move{
			Type:     MovePlaceCard,
			CardName: g.Selection.ActiveCard.Name,
			Position: position,
			Rotation: rotation,
			Special:  g.Selection.Special,
		}
	}

	err := ValidateMove(
		g.Board,
		g.Board.AvailableSpecialPoints(g.PlayerTeam),
		g.PlayerTeam,
		move,
		g.Decks[g.PlayerTeam],
		g.cards)
	if err != nil {
		return Move{}, err
	}

	g.Selection.Locked = true
	return move, nil
}

// HandleMoveReceived records that a team's move for the current turn has
// reached the server. The notification carries the turn counter it was
// sent at; a stale notification from an already-resolved turn is ignored.
func (g *GameSession) HandleMoveReceived(team Team, remainingTurns int) {
	if remainingTurns != g.RemainingTurns {
		return
	}
	g.NextMoveCompleted[team] = true
}

// HandleMoveRejected unlocks the selection so the player can amend and
// resubmit.
func (g *GameSession) HandleMoveRejected() {
	g.Selection.Locked = false
}

// ApplyMoves resolves a turn: the per-team ready flags are cleared, the
// bundle is appended to the history, the selection resets, the board
// applies both moves, played cards are drawn out of the decks, and the
// turn counter ticks down once.
func (g *GameSession) ApplyMoves(moves TeamMoves) error {
	g.NextMoveCompleted = map[Team]bool{TeamAlpha: false, TeamBravo: false}
	g.MoveHistory = append(g.MoveHistory, moves)
	g.LastMoves = moves

	g.Selection.OnNewMove(g.Board)

	if err := g.Board.ApplyMoves(moves, g.cards); err != nil {
		return err
	}

	for team, move := range moves {
		if deck := g.Decks[team]; deck != nil {
			deck.DrawNewCard(move.CardName)
		}
	}

	g.RemainingTurns--
	return nil
}

// Completed reports whether all turns have been played.
func (g *GameSession) Completed() bool {
	return g.RemainingTurns <= 0
}

// Score counts each team's squares on the board.
func (g *GameSession) Score() map[Team]int {
	if g.Board == nil {
		return newScoreCounter()
	}
	return g.Board.Score()
}
