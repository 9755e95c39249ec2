package wheel

import (
	"math"
	"testing"
)

func TestRenderCommandCounts(t *testing.T) {
	l, err := NewLayout(DefaultSlices(), Even)
	if err != nil {
		t.Fatal(err)
	}
	f := Render(l, Model{Mode: Flick, State: Stopped{}}, 0, 300)

	var bg, polys, texts, markers, highlights int
	for _, c := range f.Commands {
		switch c.(type) {
		case Background:
			bg++
		case Polygon:
			polys++
		case Text:
			texts++
		case Marker:
			markers++
		case Highlight:
			highlights++
		}
	}

	if bg != 1 || markers != 1 || highlights != 1 {
		t.Errorf("background/marker/highlight = %d/%d/%d, want 1/1/1", bg, markers, highlights)
	}
	if polys != l.Len() {
		t.Errorf("polygons = %d, want %d", polys, l.Len())
	}
	// one label per slice plus the winner caption
	if texts != l.Len()+1 {
		t.Errorf("texts = %d, want %d", texts, l.Len()+1)
	}
	if _, ok := f.Commands[0].(Background); !ok {
		t.Errorf("first command = %T, want Background", f.Commands[0])
	}
}

func TestRenderNoHighlightWhileSpinning(t *testing.T) {
	l, err := NewLayout(DefaultSlices(), Even)
	if err != nil {
		t.Fatal(err)
	}
	f := Render(l, Model{Mode: Flick, State: Spinning{Momentum: 10, Angle: 1}}, 0.5, 300)
	for _, c := range f.Commands {
		if _, ok := c.(Highlight); ok {
			t.Fatal("spinning wheel should not highlight a winner")
		}
	}
}

func TestRenderWinnerSitsUnderMarker(t *testing.T) {
	l, err := NewLayout(makeSlices(5), Remainder)
	if err != nil {
		t.Fatal(err)
	}

	// turn the wheel so the middle of slice 2 (180 degrees) is at the top
	rot := math.Pi
	f := Render(l, Model{Mode: Flick, State: Stopped{Angle: rot}}, 0, 300)
	if f.Winner != 2 {
		t.Fatalf("Winner = %d, want 2", f.Winner)
	}

	// the label of the winning slice is drawn straight above the hub
	var labels []Text
	for _, c := range f.Commands {
		if txt, ok := c.(Text); ok {
			labels = append(labels, txt)
		}
	}
	w := labels[2]
	if math.Abs(w.X) > 1e-9 || math.Abs(w.Y-150) > 1e-9 {
		t.Errorf("winner label at (%v, %v), want (0, 150)", w.X, w.Y)
	}

	caption := labels[len(labels)-1]
	if caption.Text != l.Slice(2).Label {
		t.Errorf("caption = %q, want %q", caption.Text, l.Slice(2).Label)
	}
}

func TestRenderTimerUsesDecayAngle(t *testing.T) {
	l, err := NewLayout(DefaultSlices(), Even)
	if err != nil {
		t.Fatal(err)
	}
	m := Model{Mode: Timer, State: Spinning{Start: 1, Momentum: TimerMomentum}}
	f := Render(l, m, 3, 300)
	if f.Rotation != 5 {
		t.Errorf("Rotation = %v, want 10/2 = 5", f.Rotation)
	}
}
