package realtime

import (
	"log/slog"
	"sync"
	"time"

	"devconnects/config"

	"github.com/fasthttp/websocket"
	"github.com/google/uuid"
)

// Client is one websocket connection. It has one reader and one writer goroutine.
type Client struct {
	id     string
	userID string
	hub    *Hub
	conn   *websocket.Conn
	cfg    *config.RealtimeConfig
	logger *slog.Logger

	send      chan []byte
	done      chan struct{}
	closeOnce sync.Once

	stateMu sync.Mutex
	state   State

	rooms map[string]struct{} // guarded by hub.mu
}

func newClient(hub *Hub, conn *websocket.Conn, identity *Identity, cfg *config.RealtimeConfig, logger *slog.Logger) *Client {
	id := uuid.NewString()

	return &Client{
		id:     id,
		userID: identity.UserID,
		hub:    hub,
		conn:   conn,
		cfg:    cfg,
		logger: logger.With(slog.String("conn_id", id), slog.String("user_id", identity.UserID)),
		send:   make(chan []byte, cfg.SendBuffer),
		done:   make(chan struct{}),
		state:  StateConnecting,
		rooms:  make(map[string]struct{}),
	}
}

func (c *Client) ID() string {
	return c.id
}

func (c *Client) UserID() string {
	return c.userID
}

func (c *Client) State() State {
	c.stateMu.Lock()
	defer c.stateMu.Unlock()

	return c.state
}

func (c *Client) transition(trigger Trigger) ([]Effect, error) {
	c.stateMu.Lock()
	defer c.stateMu.Unlock()

	next, effects, err := Transition(c.state, trigger)
	if err != nil {
		return nil, err
	}
	c.state = next

	return effects, nil
}

// enqueue never blocks. A full buffer closes the connection as a slow consumer.
func (c *Client) enqueue(frame []byte) bool {
	select {
	case <-c.done:
		return false
	default:
	}

	select {
	case c.send <- frame:
		return true
	default:
		c.hub.slowConsumer(c)
		return false
	}
}

func (c *Client) sendError(message string) {
	frame, err := encodeFrame(EventError, ErrorPayload{Message: message})
	if err != nil {
		return
	}
	c.enqueue(frame)
}

// shutdown stops the writer, which closes the socket and in turn ends the reader.
func (c *Client) shutdown() {
	c.closeOnce.Do(func() {
		close(c.done)
	})
}

func (c *Client) readPump() {
	defer c.hub.unregister(c)

	c.conn.SetReadLimit(c.cfg.MaxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(c.cfg.PongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(c.cfg.PongWait))
	})

	for {
		messageType, raw, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure, websocket.CloseNoStatusReceived) {
				c.logger.Debug("Realtime read failed", slog.Any("error", err))
			}
			return
		}
		if messageType != websocket.TextMessage {
			c.sendError(msgMalformedEvent)
			continue
		}

		c.hub.dispatch(c, raw)
	}
}

func (c *Client) writePump() {
	ticker := time.NewTicker(c.cfg.PingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case frame := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(c.cfg.WriteWait))
			if err := c.conn.WriteMessage(websocket.TextMessage, frame); err != nil {
				c.logger.Debug("Realtime write failed", slog.Any("error", err))
				c.shutdown()
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(c.cfg.WriteWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				c.shutdown()
				return
			}
		case <-c.done:
			_ = c.conn.WriteControl(
				websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
				time.Now().Add(c.cfg.WriteWait),
			)
			return
		}
	}
}
