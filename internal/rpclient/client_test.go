package rpclient

import (
	"context"
	"errors"
	"net"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"google.golang.org/protobuf/encoding/protowire"
	"google.golang.org/protobuf/proto"

	"github.com/alexemanuelol/rustplus-go/internal/camera"
	"github.com/alexemanuelol/rustplus-go/internal/protocol"
	"github.com/alexemanuelol/rustplus-go/internal/tokens"
)

// fakeTransport — транспорт в памяти: запись копится в sent, чтение
// отдаёт байты из inbox. Закрытие канала означает обрыв.
type fakeTransport struct {
	mu    sync.Mutex
	open  bool
	fail  error
	sent  [][]byte
	inbox chan []byte
}

func newFakeTransport() *fakeTransport {
	return &fakeTransport{open: true, inbox: make(chan []byte, 16)}
}

func (t *fakeTransport) IsOpen() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.open
}

func (t *fakeTransport) SendBytes(data []byte) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.fail != nil {
		return t.fail
	}
	t.sent = append(t.sent, data)
	return nil
}

func (t *fakeTransport) ReadMessage() ([]byte, error) {
	data, ok := <-t.inbox
	if !ok {
		return nil, errors.New("use of closed connection")
	}
	return data, nil
}

func (t *fakeTransport) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.open {
		t.open = false
		close(t.inbox)
	}
	return nil
}

func (t *fakeTransport) sentCount() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.sent)
}

func newTestClient(opts ...Option) (*Client, *fakeTransport) {
	c := New(Config{Server: "localhost", Port: 28012}, opts...)
	tr := newFakeTransport()
	c.setConn(tr)
	return c, tr
}

var testID = Identity{PlayerID: 76561198000000001, PlayerToken: 555}

// respMsg собирает ответ сервера с данным seq.
func respMsg(seq uint32) *protocol.AppMessage {
	return &protocol.AppMessage{Response: &protocol.AppResponse{
		Seq:     proto.Uint32(seq),
		Success: &protocol.AppSuccess{},
	}}
}

func errMsg(seq uint32, tag string) *protocol.AppMessage {
	return &protocol.AppMessage{Response: &protocol.AppResponse{
		Seq:   proto.Uint32(seq),
		Error: &protocol.AppError{Error: proto.String(tag)},
	}}
}

func TestSendAttachesIdentity(t *testing.T) {
	t.Parallel()

	c, tr := newTestClient()
	var got *protocol.AppRequest
	c.OnRequest = func(r *protocol.AppRequest) { got = r }

	seq, err := c.send(&protocol.AppRequest{GetInfo: &protocol.AppEmpty{}}, testID, noopCB)
	if err != nil {
		t.Fatalf("send: %v", err)
	}
	if got.GetSeq() != seq || got.GetPlayerID() != testID.PlayerID || got.GetPlayerToken() != testID.PlayerToken {
		t.Errorf("request fields = %d/%d/%d", got.GetSeq(), got.GetPlayerID(), got.GetPlayerToken())
	}
	if tr.sentCount() != 1 {
		t.Errorf("sent %d frames", tr.sentCount())
	}
	if c.pend.len() != 1 {
		t.Errorf("pending = %d", c.pend.len())
	}
}

func TestSendNotConnected(t *testing.T) {
	t.Parallel()

	c, tr := newTestClient()
	tr.Close()
	if err := c.SendRequest(&protocol.AppRequest{GetInfo: &protocol.AppEmpty{}}, testID, nil); !errors.Is(err, ErrNotConnected) {
		t.Errorf("err = %v, want ErrNotConnected", err)
	}
}

// запись снимается сразу же, если сокет не принял запрос
func TestSendCleanupOnWriteFailure(t *testing.T) {
	t.Parallel()

	c, tr := newTestClient()
	tr.fail = errors.New("broken pipe")
	err := c.SendRequest(&protocol.AppRequest{GetInfo: &protocol.AppEmpty{}}, testID, noopCB)
	if err == nil {
		t.Fatal("want error")
	}
	if c.pend.len() != 0 {
		t.Errorf("pending = %d, want 0", c.pend.len())
	}
}

func TestSendRequestAsyncSuccess(t *testing.T) {
	t.Parallel()

	c, _ := newTestClient()
	seqCh := make(chan uint32, 1)
	c.OnRequest = func(r *protocol.AppRequest) { seqCh <- r.GetSeq() }

	go func() {
		c.handleIncoming(respMsg(<-seqCh))
	}()

	resp, err := c.SendRequestAsync(context.Background(),
		&protocol.AppRequest{GetTime: &protocol.AppEmpty{}}, testID, time.Second)
	if err != nil {
		t.Fatalf("SendRequestAsync: %v", err)
	}
	if resp.GetSuccess() == nil {
		t.Error("success payload missing")
	}
	if c.pend.len() != 0 {
		t.Errorf("pending = %d, want 0", c.pend.len())
	}
}

func TestSendRequestAsyncRemoteError(t *testing.T) {
	t.Parallel()

	c, _ := newTestClient()
	seqCh := make(chan uint32, 1)
	c.OnRequest = func(r *protocol.AppRequest) { seqCh <- r.GetSeq() }
	go func() {
		c.handleIncoming(errMsg(<-seqCh, "rate_limit"))
	}()

	_, err := c.SendRequestAsync(context.Background(),
		&protocol.AppRequest{GetMap: &protocol.AppEmpty{}}, testID, time.Second)
	var re *protocol.RemoteError
	if !errors.As(err, &re) {
		t.Fatalf("err = %v, want RemoteError", err)
	}
	if re.Code != protocol.ErrorRateLimit {
		t.Errorf("code = %v", re.Code)
	}
}

// таймаут освобождает слот; опоздавший ответ уходит наблюдателям
func TestSendRequestAsyncTimeout(t *testing.T) {
	t.Parallel()

	c, _ := newTestClient()
	seqCh := make(chan uint32, 1)
	c.OnRequest = func(r *protocol.AppRequest) { seqCh <- r.GetSeq() }

	_, err := c.SendRequestAsync(context.Background(),
		&protocol.AppRequest{GetInfo: &protocol.AppEmpty{}}, testID, 30*time.Millisecond)
	if !errors.Is(err, ErrTimeout) {
		t.Fatalf("err = %v, want ErrTimeout", err)
	}
	if c.pend.len() != 0 {
		t.Error("slot must be freed by the timeout")
	}

	// «поздний» ответ никем не ожидается — должен стать ничейным
	c.handleIncoming(respMsg(<-seqCh))
	select {
	case <-c.Observe().Unhandled:
	case <-time.After(time.Second):
		t.Error("late response must reach the Unhandled channel")
	}
}

func TestSendRequestAsyncContextCancel(t *testing.T) {
	t.Parallel()

	c, _ := newTestClient()
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()
	_, err := c.SendRequestAsync(ctx,
		&protocol.AppRequest{GetInfo: &protocol.AppEmpty{}}, testID, time.Minute)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
	if c.pend.len() != 0 {
		t.Error("slot must be freed on cancellation")
	}
}

// паника в обработчике не валит диспетчеризацию
func TestCallbackPanicIsolated(t *testing.T) {
	t.Parallel()

	c, _ := newTestClient()
	seq, err := c.send(&protocol.AppRequest{GetInfo: &protocol.AppEmpty{}}, testID,
		func(*protocol.AppMessage) bool { panic("handler bug") })
	if err != nil {
		t.Fatalf("send: %v", err)
	}

	c.handleIncoming(respMsg(seq))

	select {
	case e := <-c.Observe().Errors:
		if e == nil {
			t.Error("nil error published")
		}
	case <-time.After(time.Second):
		t.Fatal("panic must surface on the Errors channel")
	}
	if c.pend.len() != 0 {
		t.Error("entry must be resolved despite the panic")
	}
}

// false от обработчика отдаёт сообщение дальше по конвейеру
func TestCallbackDeclinesMessage(t *testing.T) {
	t.Parallel()

	c, _ := newTestClient()
	seq, _ := c.send(&protocol.AppRequest{GetInfo: &protocol.AppEmpty{}}, testID,
		func(*protocol.AppMessage) bool { return false })
	c.handleIncoming(respMsg(seq))

	select {
	case <-c.Observe().Unhandled:
	case <-time.After(time.Second):
		t.Error("declined message must reach Unhandled")
	}
}

func TestFailPendingSynthesizesErrors(t *testing.T) {
	t.Parallel()

	c, _ := newTestClient()
	got := make(chan *protocol.AppMessage, 1)
	seq, err := c.send(&protocol.AppRequest{GetInfo: &protocol.AppEmpty{}}, testID,
		func(m *protocol.AppMessage) bool {
			got <- m
			return true
		})
	if err != nil {
		t.Fatalf("send: %v", err)
	}

	c.failPending(errors.New("connection lost"))

	select {
	case m := <-got:
		r := m.GetResponse()
		if r.GetSeq() != seq {
			t.Errorf("seq = %d, want %d", r.GetSeq(), seq)
		}
		if r.GetError().GetError() != "connection lost" {
			t.Errorf("error = %q", r.GetError().GetError())
		}
	case <-time.After(time.Second):
		t.Fatal("callback not invoked")
	}
	if c.pend.len() != 0 {
		t.Error("table must be empty after failPending")
	}
}

// срезанный лимитером запрос не доходит до сокета
func TestTokenAdmission(t *testing.T) {
	t.Parallel()

	cfg := tokens.DefaultConfig()
	cfg.ConnectionMax = 1
	cfg.ConnectionPerSec = 0
	c, tr := newTestClient(WithTokenConfig(cfg))

	err := c.GetMap(testID, nil) // стоимость 5 при потолке 1
	var te *TokenError
	if !errors.As(err, &te) {
		t.Fatalf("err = %v, want TokenError", err)
	}
	if te.Result != tokens.InsufficientConnection {
		t.Errorf("result = %v", te.Result)
	}
	if tr.sentCount() != 0 {
		t.Error("refused request must not hit the wire")
	}
}

func TestTokenAdmissionIdentityScope(t *testing.T) {
	t.Parallel()

	cfg := tokens.DefaultConfig()
	cfg.IdentityMax = 1
	cfg.IdentityPerSec = 0
	c, _ := newTestClient(WithTokenConfig(cfg))

	err := c.SendTeamMessage(testID, "hi", nil) // стоимость 2
	var te *TokenError
	if !errors.As(err, &te) {
		t.Fatalf("err = %v, want TokenError", err)
	}
	if te.Result != tokens.InsufficientIdentity {
		t.Errorf("result = %v", te.Result)
	}
}

func raysMsg(offset int32, data []byte) *protocol.AppMessage {
	return &protocol.AppMessage{Broadcast: &protocol.AppBroadcast{
		CameraRays: &protocol.AppCameraRays{
			SampleOffset: proto.Int32(offset),
			RayData:      data,
		},
	}}
}

func subscribedCamera(c *Client, w, h int) *Camera {
	cam := &Camera{c: c, id: "CAM1", identity: testID, sub: true, kind: KindCCTV,
		comp: camera.NewCompositor(w, h, 0.1, 100)}
	c.setCamera(cam)
	return cam
}

// кадры камеры потребляются сессией и не попадают в Unhandled
func TestCameraFeedRenders(t *testing.T) {
	t.Parallel()

	c, _ := newTestClient()
	subscribedCamera(c, 1, 1)

	sky := []byte{0xFF, 0xFF, 0xC0, 0x00}
	for i := 0; i < 10; i++ {
		c.handleIncoming(raysMsg(0, sky))
	}

	select {
	case img := <-c.Observe().Renders:
		if img.Bounds().Dx() != 1 || img.Bounds().Dy() != 1 {
			t.Errorf("bounds = %v", img.Bounds())
		}
	case <-time.After(time.Second):
		t.Fatal("render not published")
	}
	select {
	case m := <-c.Observe().Unhandled:
		t.Errorf("camera frame leaked to Unhandled: %+v", m)
	default:
	}
}

// без подписки кадры — ничейные сообщения
func TestCameraFeedWithoutSession(t *testing.T) {
	t.Parallel()

	c, _ := newTestClient()
	c.handleIncoming(raysMsg(0, []byte{0xFF, 0xFF, 0xC0, 0x00}))
	select {
	case <-c.Observe().Unhandled:
	case <-time.After(time.Second):
		t.Error("orphan frame must reach Unhandled")
	}
}

func TestDisconnectClearsCamera(t *testing.T) {
	t.Parallel()

	c, _ := newTestClient()
	cam := subscribedCamera(c, 1, 1)

	c.Disconnect()
	if cam.Subscribed() {
		t.Error("camera session must be reset on disconnect")
	}
	if c.IsConnected() {
		t.Error("client must report disconnected state")
	}
}

func TestCameraInputRequiresSubscription(t *testing.T) {
	t.Parallel()

	c, _ := newTestClient()
	cam := c.GetCamera("CAM1")
	if err := cam.Input(protocol.ButtonForward, 0, 0); !errors.Is(err, ErrCameraNotSubscribed) {
		t.Errorf("err = %v, want ErrCameraNotSubscribed", err)
	}
}

func TestCameraPressWrongKind(t *testing.T) {
	t.Parallel()

	c, _ := newTestClient()
	cam := subscribedCamera(c, 1, 1) // CCTV
	if err := cam.Shoot(context.Background()); !errors.Is(err, ErrWrongCameraKind) {
		t.Errorf("err = %v, want ErrWrongCameraKind", err)
	}
}

func TestKindFromFlags(t *testing.T) {
	t.Parallel()

	cases := []struct {
		flags int32
		want  CameraKind
	}{
		{0, KindCCTV},
		{protocol.ControlZoom, KindPTZ},
		{protocol.ControlMovement | protocol.ControlZoom, KindDrone},
		{protocol.ControlFire | protocol.ControlMovement, KindAutoTurret},
		{protocol.ControlCrosshair, KindAutoTurret},
	}
	for _, c := range cases {
		if got := kindFromFlags(c.flags); got != c.want {
			t.Errorf("kindFromFlags(%#x) = %v, want %v", c.flags, got, c.want)
		}
	}
}

func TestWsURL(t *testing.T) {
	t.Parallel()

	direct := wsURL(Config{Server: "203.0.113.7", Port: 28082})
	if direct != "ws://203.0.113.7:28082" {
		t.Errorf("direct = %q", direct)
	}
	proxied := wsURL(Config{Server: "203.0.113.7", Port: 28082, UseProxy: true})
	if proxied != "wss://companion-rust.facepunch.com/game/203.0.113.7/28082" {
		t.Errorf("proxied = %q", proxied)
	}
}

// смена транспорта при реконнекте не должна гоняться с конкурентными
// читателями (IsConnected/send); проверяется под -race
func TestReconnectTransportPublication(t *testing.T) {
	t.Parallel()

	upgrader := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}))
	defer srv.Close()

	u, err := url.Parse(srv.URL)
	if err != nil {
		t.Fatal(err)
	}
	host, portStr, err := net.SplitHostPort(u.Host)
	if err != nil {
		t.Fatal(err)
	}
	port, _ := strconv.Atoi(portStr)

	c := New(Config{Server: host, Port: port})
	tr := newFakeTransport()
	c.setConn(tr)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go c.readLoop(ctx)

	// конкурентные читатели на всё время реконнекта
	stop := make(chan struct{})
	hammered := make(chan struct{})
	go func() {
		defer close(hammered)
		for {
			select {
			case <-stop:
				return
			default:
				c.IsConnected()
				_ = c.SendRequest(&protocol.AppRequest{GetInfo: &protocol.AppEmpty{}}, testID, nil)
			}
		}
	}()

	tr.Close() // обрыв: цикл уходит в реконнект к тестовому серверу

	deadline := time.Now().Add(5 * time.Second)
	for !c.IsConnected() {
		if time.Now().After(deadline) {
			t.Fatal("reconnect to the local server did not happen")
		}
		time.Sleep(20 * time.Millisecond)
	}

	close(stop)
	<-hammered
	c.Disconnect()
}

// интеграция: цикл чтения разбирает байты с провода и матчит ответ
func TestReadLoopDispatch(t *testing.T) {
	t.Parallel()

	c, tr := newTestClient()
	// Disconnect и выход цикла чтения оба зовут OnDisconnected
	done := make(chan struct{}, 2)
	c.OnDisconnected = func() { done <- struct{}{} }

	got := make(chan *protocol.AppMessage, 1)
	seq, err := c.send(&protocol.AppRequest{GetInfo: &protocol.AppEmpty{}}, testID,
		func(m *protocol.AppMessage) bool {
			got <- m
			return true
		})
	if err != nil {
		t.Fatalf("send: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go c.readLoop(ctx)

	// ответ в wire-формате: AppMessage{ response { seq, success{} } }
	body := protowire.AppendTag(nil, 1, protowire.VarintType)
	body = protowire.AppendVarint(body, uint64(seq))
	body = protowire.AppendTag(body, 4, protowire.BytesType)
	body = protowire.AppendBytes(body, nil)
	frame := protowire.AppendTag(nil, 1, protowire.BytesType)
	frame = protowire.AppendBytes(frame, body)
	tr.inbox <- frame

	select {
	case m := <-got:
		if m.GetResponse().GetSeq() != seq {
			t.Errorf("seq = %d, want %d", m.GetResponse().GetSeq(), seq)
		}
	case <-time.After(time.Second):
		t.Fatal("response not dispatched")
	}

	// штатное закрытие: цикл обязан выйти без реконнекта
	c.Disconnect()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("read loop did not exit")
	}
}
