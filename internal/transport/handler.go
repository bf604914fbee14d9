package transport

import (
	"encoding/json"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/inkfarer/Tableturfer/engine"
)

// Room mirrors the server's view of the room the player is in.
type Room struct {
	Code     string
	Users    map[string]SocketUser
	Owner    string
	Opponent *string
	MapName  string
	Started  bool
}

// Handler applies server messages to the game session and the room state.
type Handler struct {
	Session *engine.GameSession
	Room    Room

	log *logrus.Entry
}

// NewHandler wraps a game session.
func NewHandler(session *engine.GameSession) *Handler {
	return &Handler{
		Session: session,
		Room:    Room{Users: make(map[string]SocketUser)},
		log:     logrus.WithField("component", "transport"),
	}
}

// HandleMessage dispatches one server message.
func (h *Handler) HandleMessage(msg ServerMessage) error {
	switch msg.Event {
	case EventWelcome:
		var detail WelcomeDetail
		if err := json.Unmarshal(msg.Detail, &detail); err != nil {
			return fmt.Errorf("decoding welcome: %w", err)
		}
		return h.handleWelcome(detail)
	case EventRoomEvent:
		var event RoomEvent
		if err := json.Unmarshal(msg.Detail, &event); err != nil {
			return fmt.Errorf("decoding room event: %w", err)
		}
		return h.handleRoomEvent(event)
	case EventError:
		var serverErr ServerError
		if err := json.Unmarshal(msg.Detail, &serverErr); err != nil {
			return fmt.Errorf("decoding error event: %w", err)
		}
		h.handleServerError(serverErr)
		return nil
	default:
		h.log.WithField("event", msg.Event).Debug("ignoring unknown event")
		return nil
	}
}

func (h *Handler) handleWelcome(detail WelcomeDetail) error {
	h.Room = Room{
		Code:     detail.RoomCode,
		Users:    detail.Users,
		Owner:    detail.Owner,
		Opponent: detail.Opponent,
		MapName:  detail.Map,
		Started:  detail.Started,
	}
	if h.Room.Users == nil {
		h.Room.Users = make(map[string]SocketUser)
	}
	h.log.WithField("room", detail.RoomCode).Info("joined room")
	return h.Session.SetBoardByName(detail.Map)
}

func (h *Handler) handleRoomEvent(event RoomEvent) error {
	switch event.Event {
	case RoomEventUserJoin:
		var detail UserJoinDetail
		if err := json.Unmarshal(event.Detail, &detail); err != nil {
			return fmt.Errorf("decoding user join: %w", err)
		}
		h.Room.Users[detail.ID] = detail.User
	case RoomEventUserLeave:
		var id string
		if err := json.Unmarshal(event.Detail, &id); err != nil {
			return fmt.Errorf("decoding user leave: %w", err)
		}
		delete(h.Room.Users, id)
	case RoomEventOwnerChange:
		if err := json.Unmarshal(event.Detail, &h.Room.Owner); err != nil {
			return fmt.Errorf("decoding owner change: %w", err)
		}
	case RoomEventOpponentChange:
		if err := json.Unmarshal(event.Detail, &h.Room.Opponent); err != nil {
			return fmt.Errorf("decoding opponent change: %w", err)
		}
	case RoomEventMapChange:
		if err := json.Unmarshal(event.Detail, &h.Room.MapName); err != nil {
			return fmt.Errorf("decoding map change: %w", err)
		}
		return h.Session.SetBoardByName(h.Room.MapName)
	case RoomEventStartGame:
		h.Room.Started = true
	case RoomEventMoveReceived:
		var detail MoveReceivedDetail
		if err := json.Unmarshal(event.Detail, &detail); err != nil {
			return fmt.Errorf("decoding move received: %w", err)
		}
		h.Session.HandleMoveReceived(detail.Team, detail.RemainingTurns)
	case RoomEventMovesApplied:
		var detail MovesAppliedDetail
		if err := json.Unmarshal(event.Detail, &detail); err != nil {
			return fmt.Errorf("decoding moves applied: %w", err)
		}
		if err := h.Session.ApplyMoves(engine.TeamMoves(detail.Moves)); err != nil {
			return fmt.Errorf("applying moves: %w", err)
		}
		h.log.WithFields(logrus.Fields{
			"alpha": detail.Score[engine.TeamAlpha],
			"bravo": detail.Score[engine.TeamBravo],
		}).Info("turn resolved")
	default:
		h.log.WithField("event", event.Event).Debug("ignoring unknown room event")
	}
	return nil
}

// handleServerError logs the error and, when the server rejected the
// proposed move, unlocks the selection so the player can amend it.
func (h *Handler) handleServerError(serverErr ServerError) {
	entry := h.log.WithField("code", serverErr.Code)

	nested, ok := serverErr.Nested()
	if serverErr.Code == ErrorCodeGameError && ok {
		entry = entry.WithField("gameError", nested.Code)
		if nested.Code == GameErrorInvalidMove {
			if reason, ok := nested.Nested(); ok {
				entry = entry.WithField("reason", reason.Code)
			}
			h.Session.HandleMoveRejected()
		}
	}
	entry.Warn("server reported an error")
}
