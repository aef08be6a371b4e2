package expogo

import (
	"errors"
	"testing"
)

func TestParseDirection(t *testing.T) {
	for _, r := range "NESWnesw" {
		d, err := ParseDirection(r)
		if err != nil {
			t.Fatalf("ParseDirection(%q) error = %v", r, err)
		}
		if !d.Valid() {
			t.Fatalf("ParseDirection(%q) = %v, want valid direction", r, d)
		}
	}
	if _, err := ParseDirection('X'); !errors.Is(err, ErrInvalidDirection) {
		t.Fatalf("ParseDirection('X') error = %v, want %v", err, ErrInvalidDirection)
	}
}

func TestDirectionDelta(t *testing.T) {
	tests := []struct {
		d      Direction
		dx, dy int64
	}{
		{North, 0, 1},
		{East, 1, 0},
		{South, 0, -1},
		{West, -1, 0},
		{Direction('Q'), 0, 0},
	}
	for _, tt := range tests {
		dx, dy := tt.d.Delta()
		if dx != tt.dx || dy != tt.dy {
			t.Errorf("%s.Delta() = (%d, %d), want (%d, %d)", tt.d, dx, dy, tt.dx, tt.dy)
		}
	}
}

func TestParsePath(t *testing.T) {
	path, err := ParsePath(" sEn ")
	if err != nil {
		t.Fatalf("ParsePath error = %v", err)
	}
	if got := path.String(); got != "SEN" {
		t.Fatalf("ParsePath = %q, want %q", got, "SEN")
	}

	empty, err := ParsePath("")
	if err != nil {
		t.Fatalf("ParsePath(\"\") error = %v", err)
	}
	if len(empty) != 0 {
		t.Fatalf("ParsePath(\"\") = %q, want empty", empty)
	}

	if _, err := ParsePath("NEX"); !errors.Is(err, ErrInvalidDirection) {
		t.Fatalf("ParsePath(NEX) error = %v, want %v", err, ErrInvalidDirection)
	}
}

func TestParseTrialOrder(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    TrialOrder
		wantErr bool
	}{
		{"default", "NESW", DefaultTrialOrder, false},
		{"lowercase", "wsen", TrialOrder{West, South, East, North}, false},
		{"padded", " SNWE ", TrialOrder{South, North, West, East}, false},
		{"too short", "NES", TrialOrder{}, true},
		{"repeat", "NNSW", TrialOrder{}, true},
		{"unknown letter", "NESX", TrialOrder{}, true},
		{"empty", "", TrialOrder{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTrialOrder(tt.value)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidTrialOrder) {
					t.Fatalf("ParseTrialOrder(%q) error = %v, want %v", tt.value, err, ErrInvalidTrialOrder)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseTrialOrder(%q) error = %v", tt.value, err)
			}
			if got != tt.want {
				t.Fatalf("ParseTrialOrder(%q) = %s, want %s", tt.value, got, tt.want)
			}
		})
	}
}

func TestTrialOrderValid(t *testing.T) {
	if !DefaultTrialOrder.Valid() {
		t.Fatal("expected default trial order to be valid")
	}
	if (TrialOrder{}).Valid() {
		t.Fatal("expected zero trial order to be invalid")
	}
	if (TrialOrder{North, North, South, West}).Valid() {
		t.Fatal("expected repeated direction to be invalid")
	}
}
