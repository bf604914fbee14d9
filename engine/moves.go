package engine

import (
	"encoding/json"
	"fmt"
)

// MoveType discriminates the two kinds of move a player can submit.
type MoveType string

const (
	MovePlaceCard MoveType = "PlaceCard"
	MovePass      MoveType = "Pass"
)

// Move is one player's move for a turn. A Pass move carries only the card
// being discarded; a PlaceCard move also carries where and how the card is
// placed.
type Move struct {
	Type     MoveType
	CardName string
	Position Position
	Rotation Rotation
	Special  bool
}

// TeamMoves is the paired move bundle resolved at the end of each turn.
type TeamMoves map[Team]Move

type placeCardJSON struct {
	Type     MoveType `json:"type"`
	CardName string   `json:"cardName"`
	Position Position `json:"position"`
	Rotation Rotation `json:"rotation"`
	Special  bool     `json:"special"`
}

type passJSON struct {
	Type     MoveType `json:"type"`
	CardName string   `json:"cardName"`
}

// MarshalJSON encodes the move as a tagged union: Pass moves omit the
// placement fields entirely.
func (m Move) MarshalJSON() ([]byte, error) {
	if m.Type == MovePass {
		return json.Marshal(passJSON{Type: MovePass, CardName: m.CardName})
	}
	return json.Marshal(placeCardJSON{
		Type:     MovePlaceCard,
		CardName: m.CardName,
		Position: m.Position,
		Rotation: m.Rotation,
		Special:  m.Special,
	})
}

func (m *Move) UnmarshalJSON(data []byte) error {
	var raw placeCardJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch raw.Type {
	case MovePlaceCard, MovePass:
	default:
		return fmt.Errorf("unknown move type %q", raw.Type)
	}
	*m = Move{
		Type:     raw.Type,
		CardName: raw.CardName,
		Position: raw.Position,
		Rotation: raw.Rotation,
		Special:  raw.Special,
	}
	return nil
}
