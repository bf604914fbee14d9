// Package transport speaks the game server's websocket protocol: outbound
// messages are {action, args} pairs, inbound ones {event, detail} pairs
// with the detail shape keyed by the event name.
package transport

import (
	"encoding/json"

	"github.com/inkfarer/Tableturfer/engine"
)

// Outbound action names.
const (
	ActionSetMap       = "SetMap"
	ActionStartGame    = "StartGame"
	ActionProposeMove  = "ProposeMove"
	ActionSetDeck      = "SetDeck"
	ActionReturnToRoom = "ReturnToRoom"
)

// Inbound event names.
const (
	EventError     = "Error"
	EventWelcome   = "Welcome"
	EventRoomEvent = "RoomEvent"
)

// Room event names, nested inside EventRoomEvent.
const (
	RoomEventUserJoin       = "UserJoin"
	RoomEventUserLeave      = "UserLeave"
	RoomEventOwnerChange    = "OwnerChange"
	RoomEventMapChange      = "MapChange"
	RoomEventOpponentChange = "OpponentChange"
	RoomEventStartGame      = "StartGame"
	RoomEventMoveReceived   = "MoveReceived"
	RoomEventMovesApplied   = "MovesApplied"
)

// Error codes the server may send at the top level of an Error event.
const (
	ErrorCodeMessageParsingFailed = "MessageParsingFailed"
	ErrorCodeUserNotRoomOwner     = "UserNotRoomOwner"
	ErrorCodeUserNotPlaying       = "UserNotPlaying"
	ErrorCodeRoomNotFound         = "RoomNotFound"
	ErrorCodeMissingOpponent      = "MissingOpponent"
	ErrorCodeRoomStarted          = "RoomStarted"
	ErrorCodeRoomNotStarted       = "RoomNotStarted"
	ErrorCodeDecksNotChosen       = "DecksNotChosen"
	ErrorCodeGameError            = "GameError"
)

// Game error codes, nested inside a GameError.
const (
	GameErrorInvalidMove       = "InvalidMove"
	GameErrorCardNotFound      = "CardNotFound"
	GameErrorMapNotFound       = "MapNotFound"
	GameErrorIncorrectDeckSize = "IncorrectDeckSize"
	GameErrorGameEnded         = "GameEnded"
)

// ClientMessage is an outbound {action, args} pair.
type ClientMessage struct {
	Action string `json:"action"`
	Args   any    `json:"args,omitempty"`
}

// ServerMessage is an inbound {event, detail} pair. The detail is decoded
// once the event name is known.
type ServerMessage struct {
	Event  string          `json:"event"`
	Detail json.RawMessage `json:"detail"`
}

// ServerError is the detail of an Error event. For GameError codes the
// nested detail holds another error of the same shape.
type ServerError struct {
	Code   string          `json:"code"`
	Detail json.RawMessage `json:"detail"`
}

// Nested decodes the error wrapped inside this one.
func (e ServerError) Nested() (ServerError, bool) {
	if len(e.Detail) == 0 {
		return ServerError{}, false
	}
	var nested ServerError
	if err := json.Unmarshal(e.Detail, &nested); err != nil || nested.Code == "" {
		return ServerError{}, false
	}
	return nested, true
}

// SocketUser is another user in the room.
type SocketUser struct {
	Username string          `json:"username"`
	JoinedAt string          `json:"joinedAt"`
	Deck     *SocketUserDeck `json:"deck"`
}

// SocketUserDeck is a user's chosen deck as the server reports it.
type SocketUserDeck struct {
	ID    string   `json:"id"`
	Cards []string `json:"cards"`
}

// WelcomeDetail is the room snapshot sent when a connection is accepted.
type WelcomeDetail struct {
	ID       string                `json:"id"`
	RoomCode string                `json:"roomCode"`
	Users    map[string]SocketUser `json:"users"`
	Owner    string                `json:"owner"`
	Opponent *string               `json:"opponent"`
	Map      string                `json:"map"`
	Started  bool                  `json:"started"`
}

// RoomEvent is the detail of a RoomEvent message, itself an {event, detail}
// pair.
type RoomEvent struct {
	Event  string          `json:"event"`
	Detail json.RawMessage `json:"detail"`
}

// UserJoinDetail announces a user joining the room.
type UserJoinDetail struct {
	ID   string     `json:"id"`
	User SocketUser `json:"user"`
}

// MoveReceivedDetail announces that a team's move reached the server. The
// turn counter lets stale notifications be told apart from current ones.
type MoveReceivedDetail struct {
	Team           engine.Team `json:"team"`
	RemainingTurns int         `json:"remainingTurns"`
}

// MovesAppliedDetail carries a resolved turn: both moves and the score
// after applying them.
type MovesAppliedDetail struct {
	Moves map[engine.Team]engine.Move `json:"moves"`
	Score map[engine.Team]int         `json:"score"`
}
