package rpclient

import (
	"fmt"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// ========================= low-level =========================

// transport — то, что клиенту нужно от соединения. Продакшен-реализация
// одна (gorilla/websocket), интерфейс нужен тестам.
type transport interface {
	IsOpen() bool
	SendBytes(data []byte) error
	ReadMessage() ([]byte, error)
	Close() error
}

// формирует адрес ws/wss по текущей конфигурации
func wsURL(cfg Config) string {
	if cfg.UseProxy {
		return fmt.Sprintf("wss://companion-rust.facepunch.com/game/%s/%d", cfg.Server, cfg.Port)
	}
	return fmt.Sprintf("ws://%s:%d", cfg.Server, cfg.Port)
}

type wsTransport struct {
	conn *websocket.Conn

	wmu      sync.Mutex    // сериализует запись в websocket
	pingStop chan struct{} // стоп-канал для ping-горутины
	closed   bool
}

// dialTransport — dial с установкой pong-handler'а, дедлайнов и пингов.
// Через прокси Facepunch pong есть — держим read-deadline; при прямом
// коннекте pong обычно нет, дедлайн не ставим, пинги шлём вхолостую как
// keep-alive.
func dialTransport(cfg Config) (*wsTransport, error) {
	conn, _, err := websocket.DefaultDialer.Dial(wsURL(cfg), nil)
	if err != nil {
		return nil, err
	}
	conn.SetReadLimit(64 << 20)

	t := &wsTransport{conn: conn, pingStop: make(chan struct{})}
	if cfg.UseProxy {
		_ = conn.SetReadDeadline(time.Now().Add(30 * time.Second))
		conn.SetPongHandler(func(string) error {
			return conn.SetReadDeadline(time.Now().Add(30 * time.Second))
		})
	}
	go t.pingLoop()
	return t, nil
}

func (t *wsTransport) pingLoop() {
	tick := time.NewTicker(10 * time.Second)
	defer tick.Stop()
	for {
		select {
		case <-tick.C:
			t.wmu.Lock()
			_ = t.conn.WriteControl(websocket.PingMessage, []byte("ping"), time.Now().Add(5*time.Second))
			t.wmu.Unlock()
		case <-t.pingStop:
			return
		}
	}
}

func (t *wsTransport) IsOpen() bool {
	t.wmu.Lock()
	defer t.wmu.Unlock()
	return !t.closed
}

// SendBytes — запись строго через один мьютекс + write-deadline.
func (t *wsTransport) SendBytes(data []byte) error {
	t.wmu.Lock()
	defer t.wmu.Unlock()
	_ = t.conn.SetWriteDeadline(time.Now().Add(5 * time.Second))
	return t.conn.WriteMessage(websocket.BinaryMessage, data)
}

func (t *wsTransport) ReadMessage() ([]byte, error) {
	_, data, err := t.conn.ReadMessage()
	return data, err
}

func (t *wsTransport) Close() error {
	t.wmu.Lock()
	if t.closed {
		t.wmu.Unlock()
		return nil
	}
	t.closed = true
	close(t.pingStop)
	_ = t.conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, "closing"),
		time.Now().Add(500*time.Millisecond))
	t.wmu.Unlock()
	return t.conn.Close()
}
