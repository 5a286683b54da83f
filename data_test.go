package radial

import "testing"

func TestValues(t *testing.T) {
	s := Values(10, 2, 4, 3)
	if len(s) != 4 {
		t.Fatalf("got %d values, want 4", len(s))
	}
	if s[0].Value != 10 || s[3].Value != 3 {
		t.Errorf("values out of order: %+v", s)
	}
	if s[0].Label != "" || s[0].ClassName != "" {
		t.Errorf("Values must not invent labels or class names: %+v", s[0])
	}
}

func TestSeriesSum(t *testing.T) {
	tests := []struct {
		name   string
		series Series
		want   float64
	}{
		{"empty", nil, 0},
		{"positive", Values(10, 2, 4, 3), 19},
		{"with negatives", Values(10, -4), 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.series.Sum(); got != tt.want {
				t.Errorf("Sum() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSeriesFloats(t *testing.T) {
	s := Series{{Value: 1, Label: "a"}, {Value: 2}}
	got := s.Floats()
	if len(got) != 2 || got[0] != 1 || got[1] != 2 {
		t.Errorf("Floats() = %v, want [1 2]", got)
	}
}
