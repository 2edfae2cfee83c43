package realtime

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransition(t *testing.T) {
	tests := []struct {
		name    string
		from    State
		trigger Trigger
		want    State
		effects []Effect
		err     error
	}{
		{
			name: "accept records presence before broadcasting", from: StateConnecting, trigger: TriggerHandshakeAccepted,
			want: StateOpen, effects: []Effect{EffectRecordPresence, EffectJoinUserRoom, EffectBroadcastOnline},
		},
		{
			name: "reject", from: StateConnecting, trigger: TriggerHandshakeRejected,
			want: StateClosed, effects: []Effect{EffectReject},
		},
		{
			name: "disconnect while connecting", from: StateConnecting, trigger: TriggerDisconnect,
			want: StateClosed,
		},
		{
			name: "disconnect removes presence before broadcasting", from: StateOpen, trigger: TriggerDisconnect,
			want: StateClosed, effects: []Effect{EffectLeaveRooms, EffectRemovePresence, EffectBroadcastOnline},
		},
		{
			name: "second accept", from: StateOpen, trigger: TriggerHandshakeAccepted,
			want: StateOpen, err: ErrInvalidTransition,
		},
		{
			name: "late reject", from: StateOpen, trigger: TriggerHandshakeRejected,
			want: StateOpen, err: ErrInvalidTransition,
		},
		{
			name: "closed is terminal", from: StateClosed, trigger: TriggerDisconnect,
			want: StateClosed, err: ErrConnectionClosed,
		},
		{
			name: "closed ignores accept", from: StateClosed, trigger: TriggerHandshakeAccepted,
			want: StateClosed, err: ErrConnectionClosed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, effects, err := Transition(tt.from, tt.trigger)

			assert.Equal(t, tt.want, next)
			assert.Equal(t, tt.effects, effects)
			if tt.err != nil {
				require.ErrorIs(t, err, tt.err)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestStateAndTriggerNames(t *testing.T) {
	assert.Equal(t, "open", StateOpen.String())
	assert.Equal(t, "unknown", State(42).String())
	assert.Equal(t, "disconnect", TriggerDisconnect.String())
}
