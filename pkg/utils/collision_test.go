package utils

import "testing"

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name     string
		centerA  Vec2
		sizeA    Vec2
		centerB  Vec2
		sizeB    Vec2
		expected bool
	}{
		{"same centre", Vec2{0, 0}, Vec2{10, 10}, Vec2{0, 0}, Vec2{10, 10}, true},
		{"partial overlap", Vec2{0, 0}, Vec2{10, 10}, Vec2{6, 6}, Vec2{4, 4}, true},
		{"contained", Vec2{0, 0}, Vec2{100, 100}, Vec2{5, -5}, Vec2{2, 2}, true},
		{"separated on x", Vec2{0, 0}, Vec2{10, 10}, Vec2{20, 0}, Vec2{10, 10}, false},
		{"separated on y", Vec2{0, 0}, Vec2{10, 10}, Vec2{0, -20}, Vec2{10, 10}, false},
		{"edge touching on x", Vec2{0, 0}, Vec2{10, 10}, Vec2{10, 0}, Vec2{10, 10}, false},
		{"edge touching on y", Vec2{0, 0}, Vec2{10, 10}, Vec2{0, 10}, Vec2{10, 10}, false},
		{"corner touching", Vec2{0, 0}, Vec2{10, 10}, Vec2{10, 10}, Vec2{10, 10}, false},
		{"overlap on x only", Vec2{0, 0}, Vec2{10, 10}, Vec2{2, 30}, Vec2{10, 10}, false},
		{"player and enemy", Vec2{0, 0}, Vec2{160, 120.5}, Vec2{0, 0}, Vec2{66.9, 48.9}, true},
		{"zero sized inside", Vec2{0, 0}, Vec2{10, 10}, Vec2{1, 1}, Vec2{0, 0}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Overlaps(tt.centerA, tt.sizeA, tt.centerB, tt.sizeB)
			if result != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, result)
			}
		})
	}
}

func TestOverlapsIsSymmetric(t *testing.T) {
	prng := NewPRNGService(42)
	for i := 0; i < 2000; i++ {
		a := Vec2{prng.Range(-50, 50), prng.Range(-50, 50)}
		b := Vec2{prng.Range(-50, 50), prng.Range(-50, 50)}
		sa := Vec2{prng.Range(0, 40), prng.Range(0, 40)}
		sb := Vec2{prng.Range(0, 40), prng.Range(0, 40)}

		if Overlaps(a, sa, b, sb) != Overlaps(b, sb, a, sa) {
			t.Fatalf("Overlaps not symmetric for a=%v sa=%v b=%v sb=%v", a, sa, b, sb)
		}
	}
}

func TestOutOfBounds(t *testing.T) {
	tests := []struct {
		name     string
		p        Vec2
		expected bool
	}{
		{"origin", Vec2{0, 0}, false},
		{"on right border", Vec2{900, 0}, false},
		{"past right border", Vec2{901, 0}, true},
		{"past left border", Vec2{-901, 0}, true},
		{"past top border", Vec2{0, 601}, true},
		{"past bottom border", Vec2{0, -601}, true},
		{"on corner", Vec2{-900, 600}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := OutOfBounds(tt.p, 900, 600); got != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}
