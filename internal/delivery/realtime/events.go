// Package realtime implements the authenticated websocket channel: presence, rooms and push delivery.
package realtime

import (
	"encoding/json"

	"devconnects/internal/errors"
)

// Event names carried in the "event" field of every frame.
const (
	EventGetOnlineUsers  = "getOnlineUsers"
	EventJoinRoom        = "joinRoom"
	EventNewMessage      = "newMessage"
	EventReceiveMessage  = "receiveMessage"
	EventSendMessage     = "sendMessage"
	EventTyping          = "typing"
	EventNewNotification = "newNotification"
	EventError           = "error"
)

// Frame is the envelope of every text frame in both directions.
type Frame struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data,omitempty"`
}

type outboundFrame struct {
	Event string `json:"event"`
	Data  any    `json:"data"`
}

// SendMessagePayload relays a client-built message to the other members of a room.
type SendMessagePayload struct {
	RoomID  string          `json:"roomId"`
	Message json.RawMessage `json:"message"`
}

type TypingPayload struct {
	RoomID   string `json:"roomId"`
	IsTyping bool   `json:"isTyping"`
}

type TypingBroadcast struct {
	SocketID string `json:"socketId"`
	SenderID string `json:"senderId"`
	IsTyping bool   `json:"isTyping"`
}

type ErrorPayload struct {
	Message string `json:"message"`
}

func encodeFrame(event string, data any) ([]byte, error) {
	b, err := json.Marshal(outboundFrame{Event: event, Data: data})
	if err != nil {
		return nil, errors.Wrapf(err, "encode %s frame", event)
	}

	return b, nil
}

func decodeFrame(raw []byte) (*Frame, error) {
	var frame Frame
	if err := json.Unmarshal(raw, &frame); err != nil {
		return nil, errors.Wrap(err, "decode frame")
	}
	if frame.Event == "" {
		return nil, errors.New("frame without event")
	}

	return &frame, nil
}
