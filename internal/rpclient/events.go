package rpclient

import (
	"image"

	"github.com/alexemanuelol/rustplus-go/internal/protocol"
)

// Observers — типизированные каналы-наблюдатели: по одному на событие
// жизненного цикла, один для «ничейных» сообщений и один для готовых
// кадров камеры. Публикация не блокирует читателя: если канал полон,
// новое событие отбрасывается (drop-new).
type Observers struct {
	Connecting   chan struct{}
	Connected    chan struct{}
	Disconnected chan struct{}
	Errors       chan error
	Unhandled    chan *protocol.AppMessage
	Renders      chan *image.RGBA
}

func newObservers() *Observers {
	return &Observers{
		Connecting:   make(chan struct{}, 1),
		Connected:    make(chan struct{}, 1),
		Disconnected: make(chan struct{}, 1),
		Errors:       make(chan error, 16),
		Unhandled:    make(chan *protocol.AppMessage, 64),
		Renders:      make(chan *image.RGBA, 4),
	}
}

func (o *Observers) signal(ch chan struct{}) {
	select {
	case ch <- struct{}{}:
	default:
	}
}

func (o *Observers) publishError(err error) {
	select {
	case o.Errors <- err:
	default:
	}
}

func (o *Observers) publishUnhandled(m *protocol.AppMessage) {
	select {
	case o.Unhandled <- m:
	default:
	}
}

func (o *Observers) publishRender(img *image.RGBA) {
	select {
	case o.Renders <- img:
	default:
	}
}
