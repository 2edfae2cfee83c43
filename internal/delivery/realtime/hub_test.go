package realtime

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"devconnects/config"
	"devconnects/internal/domain/entity"
	domainerrors "devconnects/internal/domain/errors"
	"devconnects/internal/infra/metrics"
	"devconnects/internal/infra/presence"
	"devconnects/internal/infra/ratelimit"
	mockSvc "devconnects/internal/mocks/service"

	"github.com/fasthttp/websocket"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const tokenPrefix = "tok-"

type hubTestEnv struct {
	server   *httptest.Server
	hub      *Hub
	registry *presence.Registry
	limiters *ratelimit.Limiters
}

func newHubTestEnv(t *testing.T) *hubTestEnv {
	t.Helper()

	cfg := &config.Config{}
	cfg.ApplyDefaults()
	cfg.Realtime.SendBuffer = 16

	tokens := mockSvc.NewMockTokenService(t)
	tokens.EXPECT().Verify(mock.Anything).RunAndReturn(func(token string) (*entity.SessionClaims, error) {
		if !strings.HasPrefix(token, tokenPrefix) {
			return nil, domainerrors.ErrInvalidToken
		}
		return &entity.SessionClaims{UserID: strings.TrimPrefix(token, tokenPrefix)}, nil
	}).Maybe()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	collector := metrics.NewCollector(prometheus.NewRegistry())
	registry := presence.NewRegistry()
	limiters := &ratelimit.Limiters{
		Messages: ratelimit.New(100, 100, time.Minute),
		Events:   ratelimit.New(100, 100, time.Minute),
	}
	t.Cleanup(func() {
		limiters.Messages.Stop()
		limiters.Events.Stop()
	})

	hub := newHub(presence.NewPresenceRegistry(registry), limiters, collector, logger)
	handler := NewHandler(HandlerParams{
		Config:       cfg,
		Hub:          hub,
		TokenService: tokens,
		Metrics:      collector,
		Logger:       logger,
	})

	e := echo.New()
	e.GET(cfg.Realtime.Path, handler.Serve)
	server := httptest.NewServer(e)
	t.Cleanup(func() {
		_ = hub.Close(context.Background())
		server.Close()
	})

	return &hubTestEnv{server: server, hub: hub, registry: registry, limiters: limiters}
}

func (env *hubTestEnv) url() string {
	return "ws" + strings.TrimPrefix(env.server.URL, "http") + "/ws"
}

func (env *hubTestEnv) dial(t *testing.T, userID string) *websocket.Conn {
	t.Helper()

	header := http.Header{}
	header.Set("Cookie", "token="+tokenPrefix+userID)
	conn, _, err := websocket.DefaultDialer.Dial(env.url(), header)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return conn
}

func (env *hubTestEnv) waitMember(t *testing.T, userID, roomID string) {
	t.Helper()

	require.Eventually(t, func() bool {
		for _, c := range env.hub.allClients() {
			if c.userID == userID && env.hub.isMember(c, roomID) {
				return true
			}
		}
		return false
	}, 2*time.Second, 10*time.Millisecond)
}

func send(t *testing.T, conn *websocket.Conn, event string, data any) {
	t.Helper()

	frame, err := encodeFrame(event, data)
	require.NoError(t, err)
	require.NoError(t, conn.WriteMessage(websocket.TextMessage, frame))
}

// readEvent returns the next frame with the given event, skipping any others.
func readEvent(t *testing.T, conn *websocket.Conn, event string) json.RawMessage {
	t.Helper()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	for {
		_, raw, err := conn.ReadMessage()
		require.NoError(t, err)

		frame, err := decodeFrame(raw)
		require.NoError(t, err)
		if frame.Event == event {
			return frame.Data
		}
	}
}

func readOnline(t *testing.T, conn *websocket.Conn) []string {
	t.Helper()

	var online []string
	require.NoError(t, json.Unmarshal(readEvent(t, conn, EventGetOnlineUsers), &online))

	return online
}

func readError(t *testing.T, conn *websocket.Conn) string {
	t.Helper()

	var payload ErrorPayload
	require.NoError(t, json.Unmarshal(readEvent(t, conn, EventError), &payload))

	return payload.Message
}

func TestHandler_RejectsBeforeUpgrade(t *testing.T) {
	env := newHubTestEnv(t)

	resp, err := http.Get(env.server.URL + "/ws")
	require.NoError(t, err)
	defer resp.Body.Close()

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, MessageNoToken, body["message"])

	header := http.Header{}
	header.Set("Cookie", "token=forged")
	_, resp, err = websocket.DefaultDialer.Dial(env.url(), header)
	require.ErrorIs(t, err, websocket.ErrBadHandshake)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Zero(t, env.hub.Len())
}

func TestHub_OnlineSnapshotOnOpenAndClose(t *testing.T) {
	env := newHubTestEnv(t)
	alice, bob := entity.NewID().Hex(), entity.NewID().Hex()

	aliceConn := env.dial(t, alice)
	assert.Equal(t, []string{alice}, readOnline(t, aliceConn))

	bobConn := env.dial(t, bob)
	want := presence.NewRegistry()
	want.Record(alice, "a")
	want.Record(bob, "b")
	assert.Equal(t, want.ListOnline(), readOnline(t, bobConn))
	assert.Equal(t, want.ListOnline(), readOnline(t, aliceConn))

	require.NoError(t, bobConn.Close())
	assert.Equal(t, []string{alice}, readOnline(t, aliceConn))

	_, ok := env.registry.Lookup(bob)
	assert.False(t, ok)
}

func TestHub_PushMessage(t *testing.T) {
	env := newHubTestEnv(t)
	alice, bob := entity.NewID(), entity.NewID()
	room := entity.ConversationRoomID(alice.Hex(), bob.Hex())

	aliceConn := env.dial(t, alice.Hex())
	readOnline(t, aliceConn)
	bobConn := env.dial(t, bob.Hex())
	readOnline(t, bobConn)

	send(t, aliceConn, EventJoinRoom, room)
	env.waitMember(t, alice.Hex(), room)

	msg := &entity.Message{
		ID:       entity.NewID(),
		Sender:   entity.UserSummary{ID: alice, Name: "Alice"},
		Receiver: entity.UserSummary{ID: bob, Name: "Bob"},
		Text:     "hello",
	}
	report, err := env.hub.PushMessage(context.Background(), msg)

	require.NoError(t, err)
	assert.True(t, report.ReceiverOnline)
	assert.Equal(t, 3, report.Delivered)

	var got entity.Message
	require.NoError(t, json.Unmarshal(readEvent(t, bobConn, EventNewMessage), &got))
	assert.Equal(t, "hello", got.Text)
	assert.Equal(t, "Alice", got.Sender.Name)

	require.NoError(t, json.Unmarshal(readEvent(t, aliceConn, EventReceiveMessage), &got))
	assert.Equal(t, msg.ID, got.ID)
	readEvent(t, aliceConn, EventNewMessage)
}

func TestHub_PushMessage_OfflineReceiver(t *testing.T) {
	env := newHubTestEnv(t)

	report, err := env.hub.PushMessage(context.Background(), &entity.Message{
		ID:       entity.NewID(),
		Sender:   entity.UserSummary{ID: entity.NewID()},
		Receiver: entity.UserSummary{ID: entity.NewID()},
		Text:     "are you there",
	})

	require.NoError(t, err)
	assert.False(t, report.ReceiverOnline)
	assert.Zero(t, report.Delivered)
}

func TestHub_PushNotification_ReachesEveryTab(t *testing.T) {
	env := newHubTestEnv(t)
	bob := entity.NewID()

	first := env.dial(t, bob.Hex())
	second := env.dial(t, bob.Hex())
	require.Eventually(t, func() bool {
		return len(env.hub.roomMembers(bob.Hex(), "")) == 2
	}, 2*time.Second, 10*time.Millisecond)

	report, err := env.hub.PushNotification(context.Background(), &entity.Notification{
		ID:   entity.NewID(),
		To:   entity.UserSummary{ID: bob},
		Type: entity.NotificationFollow,
	})

	require.NoError(t, err)
	assert.True(t, report.ReceiverOnline)
	assert.Equal(t, 2, report.Delivered)
	readEvent(t, first, EventNewNotification)
	readEvent(t, second, EventNewNotification)
}

func TestHub_TypingIsRelayedToOtherMembers(t *testing.T) {
	env := newHubTestEnv(t)
	alice, bob := entity.NewID().Hex(), entity.NewID().Hex()
	room := entity.ConversationRoomID(alice, bob)

	aliceConn := env.dial(t, alice)
	bobConn := env.dial(t, bob)
	send(t, aliceConn, EventJoinRoom, room)
	send(t, bobConn, EventJoinRoom, room)
	env.waitMember(t, alice, room)
	env.waitMember(t, bob, room)

	send(t, aliceConn, EventTyping, TypingPayload{RoomID: room, IsTyping: true})

	var typing TypingBroadcast
	require.NoError(t, json.Unmarshal(readEvent(t, bobConn, EventTyping), &typing))
	assert.Equal(t, alice, typing.SenderID)
	assert.True(t, typing.IsTyping)
	assert.NotEmpty(t, typing.SocketID)
}

func TestHub_SendMessageRelaysToRoom(t *testing.T) {
	env := newHubTestEnv(t)
	alice, bob := entity.NewID().Hex(), entity.NewID().Hex()
	room := entity.ConversationRoomID(alice, bob)

	aliceConn := env.dial(t, alice)
	bobConn := env.dial(t, bob)
	send(t, aliceConn, EventJoinRoom, room)
	send(t, bobConn, EventJoinRoom, room)
	env.waitMember(t, alice, room)
	env.waitMember(t, bob, room)

	send(t, aliceConn, EventSendMessage, map[string]any{"roomId": room, "message": map[string]string{"text": "hi"}})

	var relayed map[string]string
	require.NoError(t, json.Unmarshal(readEvent(t, bobConn, EventReceiveMessage), &relayed))
	assert.Equal(t, "hi", relayed["text"])
}

func TestHub_RoomGuards(t *testing.T) {
	env := newHubTestEnv(t)
	alice := entity.NewID().Hex()
	conn := env.dial(t, alice)

	send(t, conn, EventJoinRoom, entity.ConversationRoomID(entity.NewID().Hex(), entity.NewID().Hex()))
	assert.Equal(t, msgCannotJoin, readError(t, conn))

	send(t, conn, EventTyping, TypingPayload{RoomID: entity.ConversationRoomID(alice, entity.NewID().Hex()), IsTyping: true})
	assert.Equal(t, msgNotInRoom, readError(t, conn))

	send(t, conn, "dance", nil)
	assert.Equal(t, msgUnknownEvent, readError(t, conn))

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("{not json")))
	assert.Equal(t, msgMalformedEvent, readError(t, conn))
}

func TestHub_RateLimitsEvents(t *testing.T) {
	env := newHubTestEnv(t)
	env.limiters.Events.Stop()
	env.limiters.Events = ratelimit.New(0.001, 1, time.Minute)
	alice := entity.NewID().Hex()
	conn := env.dial(t, alice)

	send(t, conn, EventJoinRoom, alice)
	send(t, conn, EventJoinRoom, alice)

	assert.Equal(t, msgRateLimited, readError(t, conn))
}

func TestHub_OlderTabClosingKeepsNewerPresence(t *testing.T) {
	env := newHubTestEnv(t)
	alice := entity.NewID().Hex()

	older := env.dial(t, alice)
	readOnline(t, older)
	newer := env.dial(t, alice)
	readOnline(t, newer)
	newerConnID, _ := env.registry.Lookup(alice)

	require.NoError(t, older.Close())
	require.Eventually(t, func() bool { return env.hub.Len() == 1 }, 2*time.Second, 10*time.Millisecond)

	connID, ok := env.registry.Lookup(alice)
	assert.True(t, ok)
	assert.Equal(t, newerConnID, connID)
	assert.Equal(t, []string{alice}, readOnline(t, newer))
}

func TestHub_CloseShutsDownConnections(t *testing.T) {
	env := newHubTestEnv(t)
	conn := env.dial(t, entity.NewID().Hex())
	require.Eventually(t, func() bool { return env.hub.Len() == 1 }, 2*time.Second, 10*time.Millisecond)

	require.NoError(t, env.hub.Close(context.Background()))

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
	require.Eventually(t, func() bool { return env.hub.Len() == 0 }, 2*time.Second, 10*time.Millisecond)
	assert.Zero(t, env.registry.Len())
}

func TestClient_FullBufferClosesSlowConsumer(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	hub := newHub(presence.NewPresenceRegistry(presence.NewRegistry()), nil, metrics.NewCollector(prometheus.NewRegistry()), logger)
	cfg := &config.RealtimeConfig{SendBuffer: 1}
	c := newClient(hub, nil, &Identity{UserID: entity.NewID().Hex()}, cfg, logger)

	assert.True(t, c.enqueue([]byte("one")))
	assert.False(t, c.enqueue([]byte("two")))

	select {
	case <-c.done:
	default:
		t.Fatal("slow consumer was not shut down")
	}
	assert.False(t, c.enqueue([]byte("three")))
}

// gatedRegistry parks the first ListOnline call made after arm until release is closed.
type gatedRegistry struct {
	*presence.Registry

	armed   atomic.Bool
	once    sync.Once
	entered chan struct{}
	release chan struct{}
}

func (g *gatedRegistry) ListOnline() []string {
	online := g.Registry.ListOnline()
	if g.armed.Load() {
		g.once.Do(func() {
			close(g.entered)
			<-g.release
		})
	}

	return online
}

func newBareClient(hub *Hub, userID string) *Client {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return newClient(hub, nil, &Identity{UserID: userID}, &config.RealtimeConfig{SendBuffer: 16}, logger)
}

// drain returns every frame queued on c without blocking.
func drain(t *testing.T, c *Client) []Frame {
	t.Helper()

	var frames []Frame
	for {
		select {
		case raw := <-c.send:
			frame, err := decodeFrame(raw)
			require.NoError(t, err)
			frames = append(frames, *frame)
		default:
			return frames
		}
	}
}

func TestHub_InterleavedOpenAndCloseLeaveLatestSnapshot(t *testing.T) {
	registry := &gatedRegistry{
		Registry: presence.NewRegistry(),
		entered:  make(chan struct{}),
		release:  make(chan struct{}),
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	hub := newHub(registry, nil, metrics.NewCollector(prometheus.NewRegistry()), logger)

	observer := newBareClient(hub, entity.NewID().Hex())
	leaving := newBareClient(hub, entity.NewID().Hex())
	joining := newBareClient(hub, entity.NewID().Hex())
	require.NoError(t, hub.register(observer))
	require.NoError(t, hub.register(leaving))

	registry.armed.Store(true)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		assert.NoError(t, hub.register(joining))
	}()
	<-registry.entered
	go func() {
		defer wg.Done()
		hub.unregister(leaving)
	}()

	// Give the close a chance to overtake the parked open.
	time.Sleep(50 * time.Millisecond)
	close(registry.release)
	wg.Wait()

	var last []string
	for _, frame := range drain(t, observer) {
		if frame.Event == EventGetOnlineUsers {
			last = nil
			require.NoError(t, json.Unmarshal(frame.Data, &last))
		}
	}
	assert.Equal(t, registry.Registry.ListOnline(), last)
	assert.NotContains(t, last, leaving.userID)
	assert.Contains(t, last, joining.userID)
}

func TestHub_PushMessage_ToSelfDeliversOnce(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	hub := newHub(presence.NewPresenceRegistry(presence.NewRegistry()), nil, metrics.NewCollector(prometheus.NewRegistry()), logger)
	self := entity.NewID()

	c := newBareClient(hub, self.Hex())
	require.NoError(t, hub.register(c))
	drain(t, c)

	report, err := hub.PushMessage(context.Background(), &entity.Message{
		ID:       entity.NewID(),
		Sender:   entity.UserSummary{ID: self},
		Receiver: entity.UserSummary{ID: self},
		Text:     "note to self",
	})
	require.NoError(t, err)
	assert.True(t, report.ReceiverOnline)
	assert.Equal(t, 1, report.Delivered)

	count := 0
	for _, frame := range drain(t, c) {
		if frame.Event == EventNewMessage {
			count++
		}
	}
	assert.Equal(t, 1, count)
}
