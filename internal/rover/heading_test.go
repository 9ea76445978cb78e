package rover

import "testing"

var allHeadings = []Heading{North, East, South, West}

func TestTurnsAreInverse(t *testing.T) {
	for _, h := range allHeadings {
		if got := h.Right().Left(); got != h {
			t.Errorf("Left(Right(%s)) = %s", h, got)
		}
		if got := h.Left().Right(); got != h {
			t.Errorf("Right(Left(%s)) = %s", h, got)
		}
	}
}

func TestFourTurnsReturnToStart(t *testing.T) {
	for _, h := range allHeadings {
		left, right := h, h
		for i := 0; i < 4; i++ {
			left = left.Left()
			right = right.Right()
		}
		if left != h {
			t.Errorf("Expected four left turns from %s to return to %s, got %s", h, h, left)
		}
		if right != h {
			t.Errorf("Expected four right turns from %s to return to %s, got %s", h, h, right)
		}
	}
}

func TestTurnLeftCycle(t *testing.T) {
	tests := map[Heading]Heading{
		North: West,
		West:  South,
		South: East,
		East:  North,
	}
	for from, want := range tests {
		if got := from.Left(); got != want {
			t.Errorf("Left(%s) = %s, want %s", from, got, want)
		}
	}
}

func TestTurnRightCycle(t *testing.T) {
	tests := map[Heading]Heading{
		North: East,
		East:  South,
		South: West,
		West:  North,
	}
	for from, want := range tests {
		if got := from.Right(); got != want {
			t.Errorf("Right(%s) = %s, want %s", from, got, want)
		}
	}
}

func TestUnknownHeadingUnchanged(t *testing.T) {
	h := Heading(42)
	if h.Valid() {
		t.Error("Expected Heading(42) to be invalid")
	}
	if h.Left() != h || h.Right() != h {
		t.Error("Expected turns to leave an unknown heading unchanged")
	}
	if dx, dy := h.Delta(); dx != 0 || dy != 0 {
		t.Errorf("Expected zero delta for unknown heading, got (%d,%d)", dx, dy)
	}
}

func TestParseHeading(t *testing.T) {
	tests := []struct {
		in      string
		want    Heading
		wantErr bool
	}{
		{"N", North, false},
		{"s", South, false},
		{" East ", East, false},
		{"WEST", West, false},
		{"north", North, false},
		{"", 0, true},
		{"NE", 0, true},
		{"up", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseHeading(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseHeading(%q): expected error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseHeading(%q): unexpected error %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseHeading(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestHeadingString(t *testing.T) {
	want := []string{"N", "E", "S", "W"}
	for i, h := range allHeadings {
		if h.String() != want[i] {
			t.Errorf("Expected %s, got %s", want[i], h.String())
		}
	}
}
