package radial

import "testing"

func TestAlphaNumerate(t *testing.T) {
	tests := []struct {
		index int
		want  string
	}{
		{0, "a"},
		{1, "b"},
		{25, "z"},
		{26, "aa"},
		{27, "ab"},
		{51, "az"},
		{52, "ba"},
		{701, "zz"},
		{702, "aaa"},
		{-3, "a"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := AlphaNumerate(tt.index); got != tt.want {
				t.Errorf("AlphaNumerate(%d) = %q, want %q", tt.index, got, tt.want)
			}
		})
	}
}
