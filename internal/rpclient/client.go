package rpclient

import (
	"context"
	"errors"
	"fmt"
	"image"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"google.golang.org/protobuf/proto"

	"github.com/alexemanuelol/rustplus-go/internal/protocol"
	"github.com/alexemanuelol/rustplus-go/internal/tokens"
)

var (
	ErrNotConnected = errors.New("not connected")
	ErrTimeout      = errors.New("timeout waiting for response")
)

// Identity — от чьего имени уходит запрос: steam id игрока и его
// player token с сервера. По PlayerID же ведётся персональный бакет.
type Identity struct {
	PlayerID    uint64
	PlayerToken int32
}

// TokenError — запрос срезан клиентским лимитером, на сервер не уходил.
type TokenError struct {
	Op     string
	Result tokens.Result
}

func (e *TokenError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Result)
}

type Config struct {
	Server   string `yaml:"server" json:"server"`
	Port     int    `yaml:"port" json:"port"`
	UseProxy bool   `yaml:"use_proxy" json:"use_proxy"`

	// TokenWait — ждать пополнения бакетов (в пределах таймаута
	// операции) вместо мгновенного отказа.
	TokenWait bool `yaml:"token_wait" json:"token_wait"`
}

type Option func(*Client)

func WithLogger(log *zap.Logger) Option {
	return func(c *Client) { c.log = log }
}

func WithTokenConfig(cfg tokens.Config) Option {
	return func(c *Client) { c.tokCfg = cfg }
}

// WithTokenWait включает блокирующий режим списания токенов независимо
// от конфигурации.
func WithTokenWait() Option {
	return func(c *Client) { c.cfg.TokenWait = true }
}

type Client struct {
	cfg    Config
	tokCfg tokens.Config
	log    *zap.Logger
	id     string // для корреляции логов одного инстанса

	trMu   sync.RWMutex
	tr     transport // доступ только через conn/setConn
	pend   *pendingTable
	ledger atomic.Pointer[tokens.Ledger]
	closed atomic.Bool
	obs    *Observers

	camMu sync.Mutex
	cam   *Camera

	// "События" (аналог EventEmitter)
	OnConnecting   func()
	OnConnected    func()
	OnMessage      func(*protocol.AppMessage)
	OnDisconnected func()
	OnError        func(error)
	OnRequest      func(*protocol.AppRequest)
	OnCameraRender func(*image.RGBA)
}

func New(cfg Config, opts ...Option) *Client {
	c := &Client{
		cfg:    cfg,
		tokCfg: tokens.DefaultConfig(),
		log:    zap.NewNop(),
		id:     uuid.NewString(),
		pend:   newPendingTable(),
		obs:    newObservers(),
	}
	for _, o := range opts {
		o(c)
	}
	c.log = c.log.With(zap.String("client", c.id))
	c.ledger.Store(tokens.NewLedger(c.tokCfg))
	return c
}

// conn/setConn — единственная точка доступа к транспорту: его
// переустанавливает горутина реконнекта, пока остальные шлют запросы.
func (c *Client) conn() transport {
	c.trMu.RLock()
	defer c.trMu.RUnlock()
	return c.tr
}

func (c *Client) setConn(tr transport) {
	c.trMu.Lock()
	c.tr = tr
	c.trMu.Unlock()
}

// Observe — каналы-наблюдатели клиента.
func (c *Client) Observe() *Observers { return c.obs }

// Ledger — текущие балансы токенов (живут от коннекта до обрыва).
func (c *Client) Ledger() *tokens.Ledger { return c.ledger.Load() }

// Connect — устанавливает WebSocket и запускает readLoop.
// Контекст можно отменить для мягкого выхода из readLoop.
func (c *Client) Connect(ctx context.Context) error {
	if c.OnConnecting != nil {
		c.OnConnecting()
	}
	c.obs.signal(c.obs.Connecting)

	tr, err := dialTransport(c.cfg)
	if err != nil {
		return err
	}
	c.setConn(tr)
	c.closed.Store(false)
	c.ledger.Store(tokens.NewLedger(c.tokCfg))
	c.log.Info("connected", zap.String("server", c.cfg.Server), zap.Int("port", c.cfg.Port))

	if c.OnConnected != nil {
		c.OnConnected()
	}
	c.obs.signal(c.obs.Connected)

	go c.readLoop(ctx)
	return nil
}

func (c *Client) Disconnect() {
	c.closed.Store(true)
	c.clearCamera()
	c.closeTransport()
	if c.OnDisconnected != nil {
		c.OnDisconnected()
	}
	c.obs.signal(c.obs.Disconnected)
}

func (c *Client) IsConnected() bool {
	tr := c.conn()
	return tr != nil && tr.IsOpen() && !c.closed.Load()
}

// SendRequest — отправляет AppRequest, привязывая seq и identity.
// Обработчик регистрируется до попытки отправки; если кодирование или
// запись в сокет не удались, запись тут же снимается — осиротевших
// ожиданий не остаётся.
func (c *Client) SendRequest(req *protocol.AppRequest, id Identity, cb Callback) error {
	_, err := c.send(req, id, cb)
	return err
}

func (c *Client) send(req *protocol.AppRequest, id Identity, cb Callback) (uint32, error) {
	tr := c.conn()
	if tr == nil || !tr.IsOpen() {
		return 0, ErrNotConnected
	}

	seq := c.pend.alloc(cb)
	req.Seq = proto.Uint32(seq)
	req.PlayerID = proto.Uint64(id.PlayerID)
	req.PlayerToken = proto.Int32(id.PlayerToken)

	data, err := protocol.EncodeRequest(req)
	if err != nil {
		c.pend.take(seq)
		return 0, err
	}

	if c.OnRequest != nil {
		c.OnRequest(req)
	}

	if werr := tr.SendBytes(data); werr != nil {
		// сеть упала между подготовкой и записью — подчищаем запись
		c.pend.take(seq)
		return 0, werr
	}
	c.log.Debug("request sent", zap.Uint32("seq", seq))
	return seq, nil
}

// SendRequestAsync — как промис в JS-версии: ответ, удалённая ошибка или
// таймаут приходят одним каналом. Сработавший таймаут освобождает
// sequence-слот; опоздавший ответ уйдёт наблюдателям как «ничейный».
func (c *Client) SendRequestAsync(ctx context.Context, req *protocol.AppRequest, id Identity, timeout time.Duration) (*protocol.AppResponse, error) {
	type outcome struct {
		resp *protocol.AppResponse
		err  error
	}
	ch := make(chan outcome, 1)

	seq, err := c.send(req, id, func(m *protocol.AppMessage) bool {
		r := m.GetResponse()
		if r == nil {
			return false
		}
		if e := r.GetError(); e != nil {
			ch <- outcome{err: protocol.NewRemoteError(e.GetError())}
			return true
		}
		ch <- outcome{resp: r}
		return true
	})
	if err != nil {
		return nil, err
	}

	c.pend.armTimer(seq, timeout, func() {
		if c.pend.take(seq) != nil {
			ch <- outcome{err: ErrTimeout}
		}
	})

	select {
	case o := <-ch:
		return o.resp, o.err
	case <-ctx.Done():
		c.pend.take(seq)
		return nil, ctx.Err()
	}
}

// invoke вызывает обработчик с изоляцией паник: упавший обработчик
// уходит в канал ошибок и не валит цикл чтения.
func (c *Client) invoke(cb Callback, m *protocol.AppMessage) (consumed bool) {
	if cb == nil {
		return false
	}
	defer func() {
		if r := recover(); r != nil {
			c.reportError(fmt.Errorf("completion handler panic: %v", r))
			consumed = true
		}
	}()
	return cb(m)
}

func (c *Client) reportError(err error) {
	c.log.Error("client error", zap.Error(err))
	if c.OnError != nil && !c.closed.Load() {
		c.OnError(err)
	}
	c.obs.publishError(err)
}

func (c *Client) closeTransport() {
	if tr := c.conn(); tr != nil {
		_ = tr.Close()
	}
}

func (c *Client) admit(ctx context.Context, op opSpec, id Identity) error {
	res := c.Ledger().Consume(ctx, id.PlayerID, op.cost, c.cfg.TokenWait, op.timeout)
	if res != tokens.Granted {
		c.log.Warn("request not admitted", zap.String("op", op.name), zap.String("reason", res.String()))
		return &TokenError{Op: op.name, Result: res}
	}
	return nil
}

func (c *Client) sendOp(op opSpec, id Identity, req *protocol.AppRequest, cb Callback) error {
	if err := c.admit(context.Background(), op, id); err != nil {
		return err
	}
	return c.SendRequest(req, id, cb)
}

func (c *Client) awaitOp(ctx context.Context, op opSpec, id Identity, req *protocol.AppRequest) (*protocol.AppResponse, error) {
	if err := c.admit(ctx, op, id); err != nil {
		return nil, err
	}
	return c.SendRequestAsync(ctx, req, id, op.timeout)
}
