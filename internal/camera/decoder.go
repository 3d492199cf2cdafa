package camera

// Sample — один декодированный луч в единицах упакованного формата:
// 10 бит дистанции, 6 бит выравнивания, индекс материала.
type Sample struct {
	Horizontal int // 0..1023, нормализуется делением на 1023
	Vertical   int // 0..63, нормализуется делением на 63
	Material   int
}

// Грамматика потока лучей. Маркер 0xFF несёт полную тройку; иначе два
// старших бита байта выбирают форму:
//
//	00 — повтор слота кэша как есть;
//	01 — малая 2D-дельта к слоту (5 бит по горизонтали, 3 по вертикали);
//	10 — длинная дельта только по горизонтали;
//	11 — двухбайтовая база, где младшие 6 бит первого байта — материал.
type opKind int

const (
	opRepeat opKind = iota
	opDeltaSmall
	opDeltaLong
	opBaseline
	opMarker
)

type rayOp struct {
	kind opKind
	slot int // номер слота кэша для repeat/delta
	h    int // абсолютные значения для marker/baseline
	v    int
	m    int
	dh   int // дельты для delta-форм
	dv   int
	size int // сколько байт съела форма
}

// parseRayOp разбирает одну форму с начала буфера. ok == false — байтов
// не хватает (меньше двух либо усечённый маркер): обработка потока
// останавливается, за конец буфера не читаем.
func parseRayOp(b []byte) (rayOp, bool) {
	if len(b) < 2 {
		return rayOp{}, false
	}
	c := b[0]
	if c == 0xFF {
		if len(b) < 4 {
			return rayOp{}, false
		}
		return rayOp{
			kind: opMarker,
			h:    int(b[1])<<2 | int(b[2])>>6,
			v:    int(b[2]) & 0x3F,
			m:    int(b[3]),
			size: 4,
		}, true
	}
	switch c & 0xC0 {
	case 0x00:
		return rayOp{kind: opRepeat, slot: int(c & 0x3F), size: 1}, true
	case 0x40:
		g := b[1]
		return rayOp{
			kind: opDeltaSmall,
			slot: int(c & 0x3F),
			dh:   int(g>>3) - 15,
			dv:   int(g&7) - 3,
			size: 2,
		}, true
	case 0x80:
		return rayOp{
			kind: opDeltaLong,
			slot: int(c & 0x3F),
			dh:   int(b[1]) - 127,
			size: 2,
		}, true
	default: // 0xC0, кроме 0xFF
		// Асимметрия протокола: материал берётся прямо из младших 6 бит
		// ведущего байта и он же идёт в формулу слота. Так ведёт себя
		// сервер — не «чинить» без сверки с реальным трафиком.
		return rayOp{
			kind: opBaseline,
			h:    int(c)<<2 | int(b[1])>>6,
			v:    int(b[1]) & 0x3F,
			m:    int(c) & 0x3F,
			size: 2,
		}, true
	}
}

// cacheSlot — формула слота lookback-кэша для полных троек.
func cacheSlot(h, v, m int) int {
	return (3*(h/128) + 5*(v/16) + 7*m) % 64
}

// rayDecoder — lookback-кэш из 64 слотов; нулевое значение (все слоты
// (0,0,0)) и есть стартовое состояние.
type rayDecoder struct {
	cache [64]Sample
}

// apply выполняет форму против кэша и возвращает полученный сэмпл.
// Полные тройки (marker/baseline) записывают новую базу в свой слот,
// повторы и дельты кэш не трогают.
func (d *rayDecoder) apply(op rayOp) Sample {
	switch op.kind {
	case opRepeat:
		return d.cache[op.slot]
	case opDeltaSmall:
		c := d.cache[op.slot]
		return Sample{Horizontal: c.Horizontal + op.dh, Vertical: c.Vertical + op.dv, Material: c.Material}
	case opDeltaLong:
		c := d.cache[op.slot]
		return Sample{Horizontal: c.Horizontal + op.dh, Vertical: c.Vertical, Material: c.Material}
	default: // opMarker, opBaseline
		s := Sample{Horizontal: op.h, Vertical: op.v, Material: op.m}
		d.cache[cacheSlot(op.h, op.v, op.m)] = s
		return s
	}
}
