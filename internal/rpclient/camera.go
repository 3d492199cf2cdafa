package rpclient

import (
	"context"
	"errors"
	"image"
	"sync"
	"time"

	"github.com/alexemanuelol/rustplus-go/internal/camera"
	"github.com/alexemanuelol/rustplus-go/internal/protocol"
)

var (
	ErrCameraNotSubscribed = errors.New("camera not subscribed")
	ErrWrongCameraKind     = errors.New("camera does not support this control")
	ErrBadCameraInfo       = errors.New("camera info missing dimensions")
)

// CameraKind выводится из контрольных флагов, которые сервер присылает
// при подписке.
type CameraKind int

const (
	KindUnknown CameraKind = iota
	KindCCTV
	KindPTZ
	KindDrone
	KindAutoTurret
)

func (k CameraKind) String() string {
	switch k {
	case KindCCTV:
		return "cctv"
	case KindPTZ:
		return "ptz"
	case KindDrone:
		return "drone"
	case KindAutoTurret:
		return "autoturret"
	}
	return "unknown"
}

func kindFromFlags(flags int32) CameraKind {
	switch {
	case flags&(protocol.ControlFire|protocol.ControlReload|protocol.ControlCrosshair) != 0:
		return KindAutoTurret
	case flags&protocol.ControlMovement != 0:
		return KindDrone
	case flags&protocol.ControlZoom != 0:
		return KindPTZ
	default:
		return KindCCTV
	}
}

// pressHold — пауза между нажатием и отпусканием скриптованной кнопки.
const pressHold = 250 * time.Millisecond

// Camera — сессия одной камеры. Кадры принимаются только пока есть
// подписка; Unsubscribe и обрыв соединения сбрасывают флаг подписки,
// размеры и окно кадров атомарно.
type Camera struct {
	c *Client

	mu       sync.Mutex
	id       string
	identity Identity
	sub      bool
	kind     CameraKind
	comp     *camera.Compositor
}

// GetCamera — удобный враппер вокруг camera-subscribe/-input/-unsubscribe.
func (c *Client) GetCamera(identifier string) *Camera {
	return &Camera{c: c, id: identifier}
}

// Subscribe подписывается и запоминает размеры кадра и вид камеры из
// ответа сервера. Identity сохраняется для последующих input-запросов.
func (cam *Camera) Subscribe(ctx context.Context, id Identity) error {
	resp, err := cam.c.CameraSubscribeAsync(ctx, id, cam.id)
	if err != nil {
		return err
	}
	info := resp.GetCameraSubscribeInfo()
	if !protocol.ValidCameraInfo(info) {
		return ErrBadCameraInfo
	}

	cam.mu.Lock()
	cam.identity = id
	cam.sub = true
	cam.kind = kindFromFlags(info.GetControlFlags())
	cam.comp = camera.NewCompositor(
		int(info.GetWidth()), int(info.GetHeight()),
		float64(info.GetNearPlane()), float64(info.GetFarPlane()),
	)
	cam.mu.Unlock()

	cam.c.setCamera(cam)
	return nil
}

// Unsubscribe снимает подписку. Состояние чистится до отправки запроса,
// чтобы ни один кадр не проскочил после снятия флага.
func (cam *Camera) Unsubscribe() error {
	cam.mu.Lock()
	if !cam.sub {
		cam.mu.Unlock()
		return nil
	}
	id := cam.identity
	cam.resetLocked()
	cam.mu.Unlock()

	cam.c.setCamera(nil)
	return cam.c.CameraUnsubscribe(id, nil)
}

func (cam *Camera) Kind() CameraKind {
	cam.mu.Lock()
	defer cam.mu.Unlock()
	return cam.kind
}

func (cam *Camera) Subscribed() bool {
	cam.mu.Lock()
	defer cam.mu.Unlock()
	return cam.sub
}

// Input шлёт сырое состояние кнопок и дельту мыши.
func (cam *Camera) Input(buttons int32, dx, dy float32) error {
	cam.mu.Lock()
	id, sub := cam.identity, cam.sub
	cam.mu.Unlock()
	if !sub {
		return ErrCameraNotSubscribed
	}
	return cam.c.CameraInput(id, buttons, dx, dy, nil)
}

// Zoom — скриптованное нажатие зума; валидно только для PTZ-камер.
func (cam *Camera) Zoom(ctx context.Context) error {
	return cam.press(ctx, KindPTZ, protocol.ButtonFireSecondary)
}

// Shoot — выстрел турели.
func (cam *Camera) Shoot(ctx context.Context) error {
	return cam.press(ctx, KindAutoTurret, protocol.ButtonFirePrimary)
}

// Reload — перезарядка турели.
func (cam *Camera) Reload(ctx context.Context) error {
	return cam.press(ctx, KindAutoTurret, protocol.ButtonReload)
}

// press — нажать и отпустить: маска кнопки, пауза, пустая маска.
func (cam *Camera) press(ctx context.Context, want CameraKind, button int32) error {
	cam.mu.Lock()
	kind := cam.kind
	cam.mu.Unlock()
	if kind != want {
		return ErrWrongCameraKind
	}
	if err := cam.Input(button, 0, 0); err != nil {
		return err
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(pressHold):
	}
	return cam.Input(protocol.ButtonNone, 0, 0)
}

func (cam *Camera) pushRays(r *protocol.AppCameraRays) *image.RGBA {
	cam.mu.Lock()
	defer cam.mu.Unlock()
	if !cam.sub || cam.comp == nil {
		return nil
	}
	return cam.comp.PushFrame(camera.RawFrame{
		SampleOffset: int(r.GetSampleOffset()),
		RayBytes:     r.GetRayData(),
	})
}

func (cam *Camera) resetLocked() {
	cam.sub = false
	cam.kind = KindUnknown
	cam.comp = nil
}

func (cam *Camera) reset() {
	cam.mu.Lock()
	cam.resetLocked()
	cam.mu.Unlock()
}

// ----- привязка сессии к клиенту -----

func (c *Client) setCamera(cam *Camera) {
	c.camMu.Lock()
	c.cam = cam
	c.camMu.Unlock()
}

// feedCamera отдаёт кадр активной сессии; true — кадр принят камерой.
func (c *Client) feedCamera(r *protocol.AppCameraRays) bool {
	c.camMu.Lock()
	cam := c.cam
	c.camMu.Unlock()
	if cam == nil {
		return false
	}
	img := cam.pushRays(r)
	if img != nil {
		if c.OnCameraRender != nil {
			c.OnCameraRender(img)
		}
		c.obs.publishRender(img)
	}
	return cam.Subscribed()
}

// clearCamera принудительно сбрасывает сессию (обрыв/Disconnect).
func (c *Client) clearCamera() {
	c.camMu.Lock()
	cam := c.cam
	c.cam = nil
	c.camMu.Unlock()
	if cam != nil {
		cam.reset()
	}
}
