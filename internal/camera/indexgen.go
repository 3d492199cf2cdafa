package camera

// shuffleSeed — константа сида перестановки. Совпадает с серверной,
// иначе сэмплы лягут не в свои пиксели.
const shuffleSeed uint32 = 1337

// indexGenerator — 32-битный xorshift. Значение в [0, bound) получается
// масштабированием состояния до шага: state * bound / 2^32.
type indexGenerator struct {
	state uint32
}

func newIndexGenerator(seed uint32) *indexGenerator {
	g := &indexGenerator{state: seed}
	g.advance()
	return g
}

func (g *indexGenerator) nextInt(bound uint32) uint32 {
	r := uint32(uint64(g.state) * uint64(bound) >> 32)
	g.advance()
	return r
}

func (g *indexGenerator) advance() {
	x := g.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	g.state = x
}

// samplePositions строит таблицу координат (x,y) в растровом порядке и
// перемешивает её обратным Фишером–Йетсом поверх пар. Таблица одинакова
// для каждого рендера при одних и тех же размерах.
func samplePositions(width, height int) []int16 {
	table := make([]int16, 2*width*height)
	i := 0
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			table[i] = int16(x)
			table[i+1] = int16(y)
			i += 2
		}
	}
	g := newIndexGenerator(shuffleSeed)
	for p := width*height - 1; p >= 1; p-- {
		q := int(g.nextInt(uint32(p + 1)))
		table[2*p], table[2*q] = table[2*q], table[2*p]
		table[2*p+1], table[2*q+1] = table[2*q+1], table[2*p+1]
	}
	return table
}
