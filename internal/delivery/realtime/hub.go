package realtime

import (
	"context"
	"log/slog"
	"sync"

	"devconnects/internal/domain/entity"
	"devconnects/internal/domain/service"
	"devconnects/internal/errors"
	"devconnects/internal/infra/metrics"
	"devconnects/internal/infra/ratelimit"

	"go.uber.org/fx"
)

// ErrHubClosed is returned when a connection arrives during shutdown.
var ErrHubClosed = errors.New("realtime hub closed")

// Hub owns every open connection and the rooms they joined. It implements service.RealtimePusher.
type Hub struct {
	presence service.PresenceRegistry
	limiters *ratelimit.Limiters
	metrics  *metrics.Collector
	logger   *slog.Logger

	// presenceMu serializes open and close transitions so each presence change and the
	// getOnlineUsers snapshot it triggers are queued in the order the changes happened.
	presenceMu sync.Mutex

	mu     sync.RWMutex
	conns  map[string]*Client            // connID -> client
	rooms  map[string]map[string]*Client // roomID -> connID -> client
	closed bool
}

type HubParams struct {
	fx.In

	Lc       fx.Lifecycle
	Presence service.PresenceRegistry
	Limiters *ratelimit.Limiters
	Metrics  *metrics.Collector
	Logger   *slog.Logger
}

func NewHub(params HubParams) *Hub {
	hub := newHub(params.Presence, params.Limiters, params.Metrics, params.Logger)

	params.Lc.Append(fx.Hook{
		OnStop: hub.Close,
	})

	return hub
}

func newHub(presence service.PresenceRegistry, limiters *ratelimit.Limiters, collector *metrics.Collector, logger *slog.Logger) *Hub {
	return &Hub{
		presence: presence,
		limiters: limiters,
		metrics:  collector,
		logger:   logger.With(slog.String("component", "realtime")),
		conns:    make(map[string]*Client),
		rooms:    make(map[string]map[string]*Client),
	}
}

// NewRealtimePusher exposes the hub to the usecases.
func NewRealtimePusher(hub *Hub) service.RealtimePusher {
	return hub
}

func (h *Hub) register(c *Client) error {
	h.presenceMu.Lock()
	defer h.presenceMu.Unlock()

	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return ErrHubClosed
	}
	h.conns[c.id] = c
	h.mu.Unlock()

	effects, err := c.transition(TriggerHandshakeAccepted)
	if err != nil {
		return err
	}
	h.metrics.ConnectionOpened()
	h.apply(c, effects)

	c.logger.Info("Realtime connection opened")

	return nil
}

// unregister is safe to call more than once; only the first call after open has effects.
func (h *Hub) unregister(c *Client) {
	c.shutdown()

	h.presenceMu.Lock()
	defer h.presenceMu.Unlock()

	effects, err := c.transition(TriggerDisconnect)
	if err != nil {
		return
	}

	h.mu.Lock()
	delete(h.conns, c.id)
	h.mu.Unlock()

	h.apply(c, effects)
	h.metrics.ConnectionClosed()

	c.logger.Info("Realtime connection closed")
}

func (h *Hub) apply(c *Client, effects []Effect) {
	for _, effect := range effects {
		switch effect {
		case EffectRecordPresence:
			h.presence.Record(c.userID, c.id)
		case EffectJoinUserRoom:
			h.join(c, c.userID)
		case EffectBroadcastOnline:
			h.broadcastOnline()
		case EffectLeaveRooms:
			h.leaveAll(c)
		case EffectRemovePresence:
			h.presence.RemoveConnection(c.userID, c.id)
		}
	}
}

func (h *Hub) broadcastOnline() {
	online := h.presence.ListOnline()
	h.metrics.SetOnlineUsers(len(online))

	frame, err := encodeFrame(EventGetOnlineUsers, online)
	if err != nil {
		h.logger.Error("Failed to encode online users", slog.Any("error", err))
		return
	}

	h.emit(h.allClients(), frame)
}

func (h *Hub) allClients() []*Client {
	h.mu.RLock()
	defer h.mu.RUnlock()

	clients := make([]*Client, 0, len(h.conns))
	for _, c := range h.conns {
		clients = append(clients, c)
	}

	return clients
}

func (h *Hub) client(connID string) *Client {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return h.conns[connID]
}

func (h *Hub) join(c *Client, roomID string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	members, ok := h.rooms[roomID]
	if !ok {
		members = make(map[string]*Client)
		h.rooms[roomID] = members
	}
	members[c.id] = c
	c.rooms[roomID] = struct{}{}
}

func (h *Hub) isMember(c *Client, roomID string) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()

	_, ok := c.rooms[roomID]

	return ok
}

func (h *Hub) leaveAll(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for roomID := range c.rooms {
		members := h.rooms[roomID]
		delete(members, c.id)
		if len(members) == 0 {
			delete(h.rooms, roomID)
		}
	}
	c.rooms = make(map[string]struct{})
}

// roomMembers snapshots a room, leaving out exceptConnID.
func (h *Hub) roomMembers(roomID, exceptConnID string) []*Client {
	h.mu.RLock()
	defer h.mu.RUnlock()

	members := h.rooms[roomID]
	clients := make([]*Client, 0, len(members))
	for id, c := range members {
		if id != exceptConnID {
			clients = append(clients, c)
		}
	}

	return clients
}

// emit queues frame on every client and returns how many accepted it.
func (h *Hub) emit(clients []*Client, frame []byte) int {
	delivered := 0
	for _, c := range clients {
		if c.enqueue(frame) {
			delivered++
		}
	}

	return delivered
}

func (h *Hub) slowConsumer(c *Client) {
	h.metrics.SlowConsumer()
	c.logger.Warn("Closing slow realtime consumer", slog.Int("buffered", len(c.send)))
	c.shutdown()
}

// PushMessage sends newMessage to the receiver's recorded connection, receiveMessage to the
// conversation room and newMessage to the sender's own room. An offline receiver is not an error.
func (h *Hub) PushMessage(ctx context.Context, m *entity.Message) (service.PushReport, error) {
	if m == nil {
		return service.PushReport{}, errors.New("push of nil message")
	}

	newMessage, err := encodeFrame(EventNewMessage, m)
	if err != nil {
		return service.PushReport{}, err
	}
	receiveMessage, err := encodeFrame(EventReceiveMessage, m)
	if err != nil {
		return service.PushReport{}, err
	}

	var report service.PushReport
	reached := ""
	if connID, ok := h.presence.Lookup(m.Receiver.ID.Hex()); ok {
		report.ReceiverOnline = true
		reached = connID
		if c := h.client(connID); c != nil && c.enqueue(newMessage) {
			report.Delivered++
		}
	}
	report.Delivered += h.emit(h.roomMembers(m.RoomID(), ""), receiveMessage)
	// A message to oneself must not reach the receiver's connection twice.
	report.Delivered += h.emit(h.roomMembers(m.Sender.ID.Hex(), reached), newMessage)

	h.metrics.Pushed(EventNewMessage, pushOutcome(report))

	return report, nil
}

// PushNotification sends newNotification to every connection of the recipient.
func (h *Hub) PushNotification(ctx context.Context, n *entity.Notification) (service.PushReport, error) {
	if n == nil {
		return service.PushReport{}, errors.New("push of nil notification")
	}

	frame, err := encodeFrame(EventNewNotification, n)
	if err != nil {
		return service.PushReport{}, err
	}

	recipient := n.To.ID.Hex()
	var report service.PushReport
	_, report.ReceiverOnline = h.presence.Lookup(recipient)
	report.Delivered = h.emit(h.roomMembers(recipient, ""), frame)

	h.metrics.Pushed(EventNewNotification, pushOutcome(report))

	return report, nil
}

func pushOutcome(report service.PushReport) string {
	if report.ReceiverOnline {
		return "delivered"
	}

	return "offline"
}

// Close refuses new connections and shuts down the open ones.
func (h *Hub) Close(ctx context.Context) error {
	h.mu.Lock()
	h.closed = true
	h.mu.Unlock()

	clients := h.allClients()
	for _, c := range clients {
		c.shutdown()
	}

	h.logger.Info("Realtime hub stopped", slog.Int("connections", len(clients)))

	return nil
}

// Len returns the number of open connections.
func (h *Hub) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.conns)
}
