package camera

import (
	"image"
	"image/color"
)

// frameWindow — сколько последних частичных кадров участвует в рендере.
const frameWindow = 10

// RawFrame — один AppCameraRays: смещение курсора и байты лучей.
type RawFrame struct {
	SampleOffset int
	RayBytes     []byte
}

// Palette — таблица цветов материалов, RGB в [0,1]. Передаётся
// компоновщику при создании и после этого не меняется.
type Palette [8][3]float64

// defaultPalette — палитра по умолчанию. Каналы масштабируются
// выравниванием сэмпла.
var defaultPalette = Palette{
	{0.50, 0.50, 0.50}, // 0 — по умолчанию (камень, земля)
	{0.30, 0.50, 0.80}, // 1 — вода
	{0.25, 0.45, 0.20}, // 2 — листва
	{0.55, 0.40, 0.25}, // 3 — дерево
	{0.60, 0.60, 0.65}, // 4 — металл
	{0.75, 0.65, 0.45}, // 5 — песок
	{0.80, 0.25, 0.20}, // 6 — цель/игрок
	{0.90, 0.90, 0.90}, // 7 — снег
}

// skyColor — специальный случай: сэмпл «небо» (дистанция 1, выравнивание
// и материал нулевые) рисуется этим цветом, минуя палитру.
var skyColor = color.RGBA{R: 0x90, G: 0xb8, B: 0xe0, A: 0xff}

// Option настраивает компоновщик при создании.
type Option func(*Compositor)

// WithPalette подменяет палитру материалов и цвет неба.
func WithPalette(p Palette, sky color.RGBA) Option {
	return func(c *Compositor) {
		c.palette = p
		c.sky = sky
	}
}

type cell struct {
	distance  float64
	alignment float64
	material  int
	set       bool
}

// Compositor накапливает частичные кадры одной камеры и собирает из
// них растр. Не потокобезопасен — вызывающий сериализует доступ.
type Compositor struct {
	width   int
	height  int
	near    float64
	far     float64
	palette Palette // зафиксированы при создании
	sky     color.RGBA
	table   []int16
	window  []RawFrame
}

func NewCompositor(width, height int, near, far float64, opts ...Option) *Compositor {
	c := &Compositor{
		width:   width,
		height:  height,
		near:    near,
		far:     far,
		palette: defaultPalette,
		sky:     skyColor,
		table:   samplePositions(width, height),
		window:  make([]RawFrame, 0, frameWindow),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

func (c *Compositor) Width() int  { return c.width }
func (c *Compositor) Height() int { return c.height }

// PushFrame добавляет кадр в окно (FIFO). Пока окно не заполнено,
// возвращает nil; с десятого кадра — собранный растр, после чего
// старейший кадр вытесняется.
func (c *Compositor) PushFrame(f RawFrame) *image.RGBA {
	c.window = append(c.window, f)
	if len(c.window) < frameWindow {
		return nil
	}
	img := c.render()
	c.window = c.window[1:]
	return img
}

// Len — текущая длина окна (для тестов и диагностики).
func (c *Compositor) Len() int { return len(c.window) }

func (c *Compositor) render() *image.RGBA {
	cells := make([]cell, c.width*c.height)
	for _, f := range c.window {
		c.paint(cells, f)
	}

	// строки перевёрнуты: нулевая строка растра — нижний край картинки
	img := image.NewRGBA(image.Rect(0, 0, c.width, c.height))
	for i, cl := range cells {
		if !cl.set {
			continue
		}
		x := i % c.width
		y := c.height - 1 - i/c.width
		img.SetRGBA(x, y, c.colorFor(cl))
	}
	return img
}

// paint прогоняет один кадр через декодер и раскладывает сэмплы по
// пикселям. Курсор берётся из кадра, два элемента таблицы на пиксель.
func (c *Compositor) paint(cells []cell, f RawFrame) {
	mod := 2 * c.width * c.height
	if f.SampleOffset < 0 || mod == 0 {
		return
	}
	dec := &rayDecoder{}
	cursor := f.SampleOffset
	buf := f.RayBytes
	for {
		op, ok := parseRayOp(buf)
		if !ok {
			return
		}
		s := dec.apply(op)
		ci := (cursor % mod) &^ 1 // нечётное смещение выравниваем на пару
		x := int(c.table[ci])
		y := int(c.table[ci+1])
		cells[x+y*c.width] = cell{
			distance:  float64(s.Horizontal) / 1023,
			alignment: float64(s.Vertical) / 63,
			material:  s.Material,
			set:       true,
		}
		cursor += 2
		buf = buf[op.size:]
	}
}

func (c *Compositor) colorFor(cl cell) color.RGBA {
	if cl.distance == 1 && cl.alignment == 0 && cl.material == 0 {
		return c.sky
	}
	p := c.palette[cl.material&7]
	return color.RGBA{
		R: clampChannel(p[0] * cl.alignment),
		G: clampChannel(p[1] * cl.alignment),
		B: clampChannel(p[2] * cl.alignment),
		A: 0xff,
	}
}

func clampChannel(v float64) uint8 {
	v *= 255
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v)
}
