package realtime

import (
	"devconnects/internal/errors"
)

// State is the lifecycle position of a single connection.
type State int

const (
	StateConnecting State = iota
	StateOpen
	StateClosed
)

func (s State) String() string {
	switch s {
	case StateConnecting:
		return "connecting"
	case StateOpen:
		return "open"
	case StateClosed:
		return "closed"
	default:
		return "unknown"
	}
}

type Trigger int

const (
	TriggerHandshakeAccepted Trigger = iota
	TriggerHandshakeRejected
	TriggerDisconnect
)

func (t Trigger) String() string {
	switch t {
	case TriggerHandshakeAccepted:
		return "handshake_accepted"
	case TriggerHandshakeRejected:
		return "handshake_rejected"
	case TriggerDisconnect:
		return "disconnect"
	default:
		return "unknown"
	}
}

// Effect is a side effect the hub applies, in order, after a transition.
type Effect int

const (
	EffectRecordPresence Effect = iota
	EffectJoinUserRoom
	EffectBroadcastOnline
	EffectReject
	EffectLeaveRooms
	EffectRemovePresence
)

var (
	ErrConnectionClosed  = errors.New("connection closed")
	ErrInvalidTransition = errors.New("invalid connection transition")
)

// Transition is the connection state machine. It has no side effects of its own.
// Presence is always recorded before the online broadcast and removed before the one sent on close.
func Transition(from State, trigger Trigger) (State, []Effect, error) {
	switch from {
	case StateConnecting:
		switch trigger {
		case TriggerHandshakeAccepted:
			return StateOpen, []Effect{EffectRecordPresence, EffectJoinUserRoom, EffectBroadcastOnline}, nil
		case TriggerHandshakeRejected:
			return StateClosed, []Effect{EffectReject}, nil
		case TriggerDisconnect:
			return StateClosed, nil, nil
		}
	case StateOpen:
		if trigger == TriggerDisconnect {
			return StateClosed, []Effect{EffectLeaveRooms, EffectRemovePresence, EffectBroadcastOnline}, nil
		}

		return StateOpen, nil, errors.Wrapf(ErrInvalidTransition, "%s on %s", trigger, from)
	case StateClosed:
		return StateClosed, nil, ErrConnectionClosed
	}

	return from, nil, errors.Wrapf(ErrInvalidTransition, "%s on %s", trigger, from)
}
