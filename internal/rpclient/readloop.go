package rpclient

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"google.golang.org/protobuf/proto"

	"github.com/alexemanuelol/rustplus-go/internal/protocol"
	"github.com/alexemanuelol/rustplus-go/internal/tokens"
)

func (c *Client) readLoop(ctx context.Context) {
	defer func() {
		c.closed.Store(true)
		c.clearCamera()
		c.closeTransport()
		if c.OnDisconnected != nil {
			c.OnDisconnected()
		}
		c.obs.signal(c.obs.Disconnected)
	}()

	// закрыть по отмене контекста
	go func() {
		<-ctx.Done()
		c.closeTransport()
	}()

	backoff := time.Second

	for {
		tr := c.conn()
		if tr == nil {
			if !c.closed.Load() {
				c.reportError(errors.New("connection is nil"))
			}
			// пойдём в реконнект ниже
		} else {
			data, err := tr.ReadMessage()
			if err == nil {
				msg, derr := protocol.DecodeMessage(data)
				if derr != nil {
					c.reportError(derr)
					continue
				}
				c.handleIncoming(msg)
				backoff = time.Second
				continue
			}

			// ошибка чтения
			if !c.closed.Load() {
				c.reportError(err)
			}
			if c.closed.Load() {
				return
			}
		}

		// обрыв: сначала сбрасываем камеру, чтобы новые кадры не
		// принимались, потом фейлим ожидающие запросы
		c.clearCamera()
		c.closeTransport()
		c.failPending(errors.New("connection lost"))

		// реконнект с backoff
		for !c.closed.Load() {
			select {
			case <-ctx.Done():
				return
			case <-time.After(backoff):
				tr2, derr := dialTransport(c.cfg)
				if derr != nil {
					c.reportError(fmt.Errorf("reconnect failed (wait %v): %w", backoff, derr))
					if backoff < 30*time.Second {
						backoff *= 2
						if backoff > 30*time.Second {
							backoff = 30 * time.Second
						}
					}
					continue
				}
				c.setConn(tr2)
				// балансы identity через реконнект не переживают
				c.ledger.Store(tokens.NewLedger(c.tokCfg))
				c.log.Info("reconnected")
				if c.OnConnected != nil {
					c.OnConnected()
				}
				c.obs.signal(c.obs.Connected)
				backoff = time.Second
				goto CONTINUE_READ
			}
		}
	CONTINUE_READ:
		continue
	}
}

// handleIncoming — единственная точка диспетчеризации входящих.
// Ответы матчатся по seq к ожидающим записям; кадры камеры уходят в
// компоновщик; всё остальное — наблюдателям как «ничейное».
func (c *Client) handleIncoming(msg *protocol.AppMessage) {
	if protocol.ValidCameraRays(msg) && c.feedCamera(msg.GetBroadcast().GetCameraRays()) {
		return
	}

	if protocol.ValidResponse(msg) {
		seq := msg.GetResponse().GetSeq()
		if e := c.pend.take(seq); e != nil {
			if c.invoke(e.cb, msg) {
				return
			}
		}
	}

	if c.OnMessage != nil {
		c.OnMessage(msg)
	}
	c.obs.publishUnhandled(msg)
}

// failPending помечает все ожидающие запросы ошибкой при обрыве.
// Каждому колбэку синтезируется AppResponse с его же seq.
func (c *Client) failPending(err error) {
	drained := c.pend.drain()
	if len(drained) == 0 {
		return
	}
	c.log.Warn("failing pending requests", zap.Int("count", len(drained)), zap.Error(err))
	for seq, cb := range drained {
		if cb == nil {
			continue
		}
		msg := &protocol.AppMessage{
			Response: &protocol.AppResponse{
				Seq:   proto.Uint32(seq),
				Error: &protocol.AppError{Error: proto.String(err.Error())},
			},
		}
		c.invoke(cb, msg)
	}
}
