package camera

import "testing"

func TestIndexGeneratorBound(t *testing.T) {
	t.Parallel()

	g := newIndexGenerator(shuffleSeed)
	for i := 0; i < 10000; i++ {
		bound := uint32(i%97 + 1)
		if v := g.nextInt(bound); v >= bound {
			t.Fatalf("nextInt(%d) = %d", bound, v)
		}
	}
}

func TestIndexGeneratorDeterministic(t *testing.T) {
	t.Parallel()

	a := newIndexGenerator(shuffleSeed)
	b := newIndexGenerator(shuffleSeed)
	for i := 0; i < 1000; i++ {
		if x, y := a.nextInt(64), b.nextInt(64); x != y {
			t.Fatalf("streams diverged at step %d: %d vs %d", i, x, y)
		}
	}
}

// перестановка обязана быть биекцией: каждый пиксель ровно один раз
func TestSamplePositionsBijection(t *testing.T) {
	t.Parallel()

	sizes := []struct{ w, h int }{
		{1, 1}, {8, 8}, {31, 17}, {160, 90},
	}
	for _, sz := range sizes {
		table := samplePositions(sz.w, sz.h)
		if len(table) != 2*sz.w*sz.h {
			t.Fatalf("%dx%d: len = %d", sz.w, sz.h, len(table))
		}
		seen := make(map[[2]int16]bool, sz.w*sz.h)
		for i := 0; i < len(table); i += 2 {
			x, y := table[i], table[i+1]
			if int(x) < 0 || int(x) >= sz.w || int(y) < 0 || int(y) >= sz.h {
				t.Fatalf("%dx%d: out of range (%d,%d)", sz.w, sz.h, x, y)
			}
			k := [2]int16{x, y}
			if seen[k] {
				t.Fatalf("%dx%d: duplicate (%d,%d)", sz.w, sz.h, x, y)
			}
			seen[k] = true
		}
	}
}

func TestSamplePositionsStable(t *testing.T) {
	t.Parallel()

	a := samplePositions(16, 9)
	b := samplePositions(16, 9)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("tables differ at %d", i)
		}
	}
}
