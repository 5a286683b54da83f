package radial

import "testing"

func TestParseQuery(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		wantErr bool
		terms   int
	}{
		{"min-width", "(min-width: 600px)", false, 1},
		{"max-width", "(max-width: 1024px)", false, 1},
		{"min-height", "(min-height: 200px)", false, 1},
		{"fractional", "(max-height: 480.5px)", false, 1},
		{"combined", "(min-width: 600px) and (max-width: 1024px)", false, 2},
		{"extra whitespace", "( min-width : 600px )", false, 1},
		{"empty", "", true, 0},
		{"missing unit", "(min-width: 600)", true, 0},
		{"unknown feature", "(orientation: landscape)", true, 0},
		{"bare number", "600px", true, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			terms, err := parseQuery(tt.query)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseQuery(%q) error = %v, wantErr %v", tt.query, err, tt.wantErr)
			}
			if !tt.wantErr && len(terms) != tt.terms {
				t.Errorf("parseQuery(%q) = %d terms, want %d", tt.query, len(terms), tt.terms)
			}
		})
	}
}

func TestViewportMatches(t *testing.T) {
	vp := NewViewport(800, 600)

	tests := []struct {
		name  string
		query string
		want  bool
	}{
		{"min-width holds", "(min-width: 600px)", true},
		{"min-width boundary", "(min-width: 800px)", true},
		{"min-width fails", "(min-width: 900px)", false},
		{"max-width holds", "(max-width: 1024px)", true},
		{"max-width fails", "(max-width: 700px)", false},
		{"min-height holds", "(min-height: 600px)", true},
		{"max-height fails", "(max-height: 500px)", false},
		{"combined holds", "(min-width: 600px) and (max-width: 1024px)", true},
		{"combined fails one term", "(min-width: 600px) and (max-height: 100px)", false},
		{"invalid never holds", "(orientation: landscape)", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := vp.Matches(tt.query); got != tt.want {
				t.Errorf("Matches(%q) = %v, want %v", tt.query, got, tt.want)
			}
		})
	}
}

func TestViewportSetSizeNotifies(t *testing.T) {
	vp := NewViewport(800, 600)

	var calls int
	cancel := vp.Subscribe(func() { calls++ })
	defer cancel()

	vp.SetSize(400, 300)
	if calls != 1 {
		t.Fatalf("got %d notifications, want 1", calls)
	}

	w, h := vp.Size()
	if w != 400 || h != 300 {
		t.Errorf("Size() = %vx%v, want 400x300", w, h)
	}

	// Unchanged size notifies nobody.
	vp.SetSize(400, 300)
	if calls != 1 {
		t.Errorf("unchanged size notified, got %d calls", calls)
	}
}

func TestViewportSubscribeCancel(t *testing.T) {
	vp := NewViewport(800, 600)

	var calls int
	cancel := vp.Subscribe(func() { calls++ })
	cancel()

	vp.SetSize(500, 500)
	if calls != 0 {
		t.Errorf("cancelled subscriber was notified %d times", calls)
	}

	// Cancel is idempotent.
	cancel()
}

func TestViewportNotificationOrder(t *testing.T) {
	vp := NewViewport(800, 600)

	var order []int
	for i := range 3 {
		vp.Subscribe(func() { order = append(order, i) })
	}

	vp.SetSize(100, 100)
	for i, got := range order {
		if got != i {
			t.Fatalf("notification order %v, want subscription order", order)
		}
	}
	if len(order) != 3 {
		t.Fatalf("got %d notifications, want 3", len(order))
	}
}
