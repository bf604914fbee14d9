package transport

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"

	"github.com/coder/websocket"
	"github.com/sirupsen/logrus"

	"github.com/inkfarer/Tableturfer/engine"
)

// MessageHandler consumes decoded server messages.
type MessageHandler interface {
	HandleMessage(msg ServerMessage) error
}

// Client is a websocket connection to the game server.
type Client struct {
	conn *websocket.Conn
	log  *logrus.Entry
}

// Dial connects to the server. A non-empty roomCode joins an existing room
// instead of opening a new one.
func Dial(ctx context.Context, serverURL, roomCode string) (*Client, error) {
	target, err := dialURL(serverURL, roomCode)
	if err != nil {
		return nil, err
	}

	conn, _, err := websocket.Dial(ctx, target, nil)
	if err != nil {
		return nil, fmt.Errorf("dialing %s: %w", target, err)
	}

	return &Client{
		conn: conn,
		log:  logrus.WithField("server", serverURL),
	}, nil
}

func dialURL(serverURL, roomCode string) (string, error) {
	parsed, err := url.Parse(serverURL)
	if err != nil {
		return "", fmt.Errorf("parsing server url: %w", err)
	}
	if roomCode != "" {
		query := parsed.Query()
		query.Set("room", roomCode)
		parsed.RawQuery = query.Encode()
	}
	return parsed.String(), nil
}

// Close shuts the connection down.
func (c *Client) Close() error {
	return c.conn.Close(websocket.StatusNormalClosure, "")
}

// Send writes one {action, args} message.
func (c *Client) Send(ctx context.Context, action string, args any) error {
	data, err := json.Marshal(ClientMessage{Action: action, Args: args})
	if err != nil {
		return fmt.Errorf("encoding %s: %w", action, err)
	}
	c.log.WithField("action", action).Debug("sending message")
	return c.conn.Write(ctx, websocket.MessageText, data)
}

// SetMap asks the server to switch the room's map.
func (c *Client) SetMap(ctx context.Context, name string) error {
	return c.Send(ctx, ActionSetMap, name)
}

// SetDeck submits the player's deck.
func (c *Client) SetDeck(ctx context.Context, cards []string) error {
	return c.Send(ctx, ActionSetDeck, cards)
}

// StartGame asks the server to start the game. Only the room owner may.
func (c *Client) StartGame(ctx context.Context) error {
	return c.Send(ctx, ActionStartGame, nil)
}

// ProposeMove submits the player's move for the current turn.
func (c *Client) ProposeMove(ctx context.Context, move engine.Move) error {
	return c.Send(ctx, ActionProposeMove, move)
}

// ReturnToRoom asks the server to bring the room back to its lobby once a
// game has finished.
func (c *Client) ReturnToRoom(ctx context.Context) error {
	return c.Send(ctx, ActionReturnToRoom, nil)
}

// Listen reads messages until the context is cancelled or the connection
// drops, passing each decoded message to the handler. Messages that fail to
// decode or to be handled are logged and skipped.
func (c *Client) Listen(ctx context.Context, handler MessageHandler) error {
	for {
		_, data, err := c.conn.Read(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				return nil
			}
			var closeErr websocket.CloseError
			if errors.As(err, &closeErr) && closeErr.Code == websocket.StatusNormalClosure {
				return nil
			}
			return fmt.Errorf("reading message: %w", err)
		}

		var msg ServerMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			c.log.WithError(err).Error("could not parse message from server")
			continue
		}
		if err := handler.HandleMessage(msg); err != nil {
			c.log.WithError(err).WithField("event", msg.Event).Error("could not handle message")
		}
	}
}
