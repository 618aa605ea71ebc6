package radialmenu

import (
	"math"
	"testing"
)

const eps = 1e-9

func TestDefaultAngleStartsAtTwelveOClock(t *testing.T) {
	for _, count := range []int{1, 2, 3, 4, 8, 13} {
		if got := DefaultAngle(0, count); math.Abs(got-(-math.Pi/2)) > eps {
			t.Fatalf("DefaultAngle(0, %d) = %v, want -pi/2", count, got)
		}
	}
}

func TestDefaultAngleEvenSpacing(t *testing.T) {
	cases := []struct {
		name  string
		count int
	}{
		{"single", 1},
		{"pair", 2},
		{"quad", 4},
		{"many", 9},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			step := 2 * math.Pi / float64(c.count)
			seen := make(map[int64]bool, c.count)
			for i := 0; i < c.count; i++ {
				a := DefaultAngle(i, c.count)
				if i > 0 {
					prev := DefaultAngle(i-1, c.count)
					if math.Abs((a-prev)-step) > eps {
						t.Fatalf("spacing between %d and %d = %v, want %v", i-1, i, a-prev, step)
					}
				}
				// distinct modulo 2pi
				norm := math.Mod(a+4*math.Pi, 2*math.Pi)
				key := int64(math.Round(norm * 1e9))
				if seen[key] {
					t.Fatalf("angle for index %d collides modulo 2pi", i)
				}
				seen[key] = true
			}
		})
	}
}

func TestCustomAngleFuncIsHonored(t *testing.T) {
	// fan layout over a half circle instead of the full ring
	fan := func(index, count int) float64 {
		if count < 2 {
			return 0
		}
		return -math.Pi + float64(index)*(math.Pi/float64(count-1))
	}

	m := New([]Item[string]{{Value: "a"}, {Value: "b"}, {Value: "c"}},
		WithAngleFunc[string](fan),
	)
	m.Toggle()
	settle(m, 600)
	m.Select(1)
	l := m.Layout(center())
	if l.Arc == nil {
		t.Fatalf("expected arc during activation")
	}
	if math.Abs(l.Arc.StartAngle-fan(1, 3)) > eps {
		t.Fatalf("arc start angle = %v, want custom fan angle %v", l.Arc.StartAngle, fan(1, 3))
	}
}
