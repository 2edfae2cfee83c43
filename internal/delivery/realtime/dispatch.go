package realtime

import (
	"encoding/json"
	"log/slog"

	"devconnects/internal/domain/entity"
)

// Error event messages.
const (
	msgMalformedEvent = "Malformed event"
	msgUnknownEvent   = "Unknown event"
	msgRateLimited    = "Too many events, slow down"
	msgCannotJoin     = "You cannot join this room"
	msgNotInRoom      = "Join the room first"
	msgRoomRequired   = "roomId is required"
)

// dispatch handles one inbound frame on the connection's read goroutine.
func (h *Hub) dispatch(c *Client, raw []byte) {
	frame, err := decodeFrame(raw)
	if err != nil {
		c.logger.Debug("Dropping malformed frame", slog.Any("error", err))
		c.sendError(msgMalformedEvent)
		return
	}

	limiter, kind := h.limiters.Events, "event"
	if frame.Event == EventSendMessage {
		limiter, kind = h.limiters.Messages, "message"
	}
	if !limiter.Allow(c.userID) {
		h.metrics.RateLimited("realtime_" + kind)
		c.sendError(msgRateLimited)
		return
	}

	h.metrics.EventReceived(frame.Event)

	switch frame.Event {
	case EventJoinRoom:
		h.handleJoinRoom(c, frame.Data)
	case EventTyping:
		h.handleTyping(c, frame.Data)
	case EventSendMessage:
		h.handleSendMessage(c, frame.Data)
	default:
		c.sendError(msgUnknownEvent)
	}
}

// canJoin allows the caller's own room and canonical conversation rooms the caller takes part in.
func canJoin(userID, roomID string) bool {
	if roomID == userID {
		return true
	}

	a, b, ok := entity.ConversationParticipants(roomID)
	if !ok || entity.ConversationRoomID(a, b) != roomID {
		return false
	}

	return a == userID || b == userID
}

func (h *Hub) handleJoinRoom(c *Client, data json.RawMessage) {
	var roomID string
	if err := json.Unmarshal(data, &roomID); err != nil {
		c.sendError(msgMalformedEvent)
		return
	}
	if roomID == "" {
		c.sendError(msgRoomRequired)
		return
	}
	if !canJoin(c.userID, roomID) {
		c.logger.Debug("Refused room join", slog.String("room", roomID))
		c.sendError(msgCannotJoin)
		return
	}

	h.join(c, roomID)
}

func (h *Hub) handleTyping(c *Client, data json.RawMessage) {
	var payload TypingPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		c.sendError(msgMalformedEvent)
		return
	}
	if !h.requireMembership(c, payload.RoomID) {
		return
	}

	frame, err := encodeFrame(EventTyping, TypingBroadcast{
		SocketID: c.id,
		SenderID: c.userID,
		IsTyping: payload.IsTyping,
	})
	if err != nil {
		c.logger.Error("Failed to encode typing event", slog.Any("error", err))
		return
	}

	h.emit(h.roomMembers(payload.RoomID, c.id), frame)
}

// handleSendMessage relays the client's message to the rest of the room. Nothing is persisted here;
// durable messages go through the REST send path.
func (h *Hub) handleSendMessage(c *Client, data json.RawMessage) {
	var payload SendMessagePayload
	if err := json.Unmarshal(data, &payload); err != nil || len(payload.Message) == 0 {
		c.sendError(msgMalformedEvent)
		return
	}
	if !h.requireMembership(c, payload.RoomID) {
		return
	}

	frame, err := encodeFrame(EventReceiveMessage, payload.Message)
	if err != nil {
		c.logger.Error("Failed to encode relayed message", slog.Any("error", err))
		return
	}

	h.emit(h.roomMembers(payload.RoomID, c.id), frame)
}

func (h *Hub) requireMembership(c *Client, roomID string) bool {
	if roomID == "" {
		c.sendError(msgRoomRequired)
		return false
	}
	if !h.isMember(c, roomID) {
		c.sendError(msgNotInRoom)
		return false
	}

	return true
}
