package camera

import "testing"

func TestParseRayOpForms(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   []byte
		want rayOp
	}{
		{
			// 0xFF: 8 старших бит дистанции, 2 младших + 6 бит
			// выравнивания, материал отдельным байтом
			name: "marker",
			in:   []byte{0xFF, 0x40, 0x3F, 0x05},
			want: rayOp{kind: opMarker, h: 256, v: 63, m: 5, size: 4},
		},
		{
			name: "repeat",
			in:   []byte{0x2A, 0x00},
			want: rayOp{kind: opRepeat, slot: 42, size: 1},
		},
		{
			// дельты смещены: 5 бит -15..16, 3 бита -3..4
			name: "delta small",
			in:   []byte{0x40 | 0x0A, 0x00},
			want: rayOp{kind: opDeltaSmall, slot: 10, dh: -15, dv: -3, size: 2},
		},
		{
			name: "delta small positive",
			in:   []byte{0x40 | 0x0A, 0xFF},
			want: rayOp{kind: opDeltaSmall, slot: 10, dh: 16, dv: 4, size: 2},
		},
		{
			name: "delta long",
			in:   []byte{0x80 | 0x3F, 0x00},
			want: rayOp{kind: opDeltaLong, slot: 63, dh: -127, size: 2},
		},
		{
			name: "delta long positive",
			in:   []byte{0x80, 0xFF},
			want: rayOp{kind: opDeltaLong, slot: 0, dh: 128, size: 2},
		},
		{
			// материал дублирует младшие 6 бит ведущего байта
			name: "baseline",
			in:   []byte{0xC5, 0x7F},
			want: rayOp{kind: opBaseline, h: 0xC5<<2 | 1, v: 0x3F, m: 5, size: 2},
		},
	}
	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()
			got, ok := parseRayOp(c.in)
			if !ok {
				t.Fatal("parseRayOp: !ok")
			}
			if got != c.want {
				t.Errorf("got %+v, want %+v", got, c.want)
			}
		})
	}
}

func TestParseRayOpTruncated(t *testing.T) {
	t.Parallel()

	cases := [][]byte{
		nil,
		{0x00},
		{0xFF},
		{0xFF, 0x40},
		{0xFF, 0x40, 0x3F}, // маркеру нужно четыре байта
	}
	for _, c := range cases {
		if _, ok := parseRayOp(c); ok {
			t.Errorf("parseRayOp(%x): want !ok", c)
		}
	}
}

func TestCacheSlot(t *testing.T) {
	t.Parallel()

	cases := []struct {
		h, v, m, want int
	}{
		{0, 0, 0, 0},
		{256, 63, 5, 56}, // 3*2 + 5*3 + 7*5 = 56
		{1023, 63, 7, (3*7 + 5*3 + 7*7) % 64},
		{128, 16, 0, 8},
	}
	for _, c := range cases {
		if got := cacheSlot(c.h, c.v, c.m); got != c.want {
			t.Errorf("cacheSlot(%d,%d,%d) = %d, want %d", c.h, c.v, c.m, got, c.want)
		}
	}
}

func TestDecoderBaselineThenDeltas(t *testing.T) {
	t.Parallel()

	d := &rayDecoder{}

	// полная тройка пишет базу в свой слот
	op, ok := parseRayOp([]byte{0xFF, 0x40, 0x3F, 0x05})
	if !ok {
		t.Fatal("parse marker")
	}
	base := d.apply(op)
	if base != (Sample{Horizontal: 256, Vertical: 63, Material: 5}) {
		t.Fatalf("base = %+v", base)
	}
	slot := cacheSlot(256, 63, 5)

	// повтор возвращает базу слота как есть
	got := d.apply(rayOp{kind: opRepeat, slot: slot})
	if got != base {
		t.Errorf("repeat = %+v, want %+v", got, base)
	}

	// малая дельта прибавляется к слоту, кэш не меняется
	got = d.apply(rayOp{kind: opDeltaSmall, slot: slot, dh: 3, dv: -2})
	if got != (Sample{Horizontal: 259, Vertical: 61, Material: 5}) {
		t.Errorf("delta small = %+v", got)
	}
	if d.cache[slot] != base {
		t.Error("delta must not mutate the cache")
	}

	// длинная дельта двигает только дистанцию
	got = d.apply(rayOp{kind: opDeltaLong, slot: slot, dh: -100})
	if got != (Sample{Horizontal: 156, Vertical: 63, Material: 5}) {
		t.Errorf("delta long = %+v", got)
	}

	// слот, в который никто не писал, хранит нулевую тройку
	if d.apply(rayOp{kind: opRepeat, slot: (slot + 1) % 64}) != (Sample{}) {
		t.Error("untouched slot must stay zero")
	}
}
