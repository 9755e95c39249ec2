package wheel

import (
	"errors"
	"math"
	"testing"
)

func makeSlices(n int) []Slice {
	out := make([]Slice, n)
	for i := range out {
		out[i] = Slice{Label: "s", Color: PaletteColor(i, n)}
	}
	return out
}

func TestNewLayoutRequiresSlices(t *testing.T) {
	if _, err := NewLayout(nil, Even); !errors.Is(err, ErrNoSlices) {
		t.Errorf("NewLayout(nil) error = %v, want ErrNoSlices", err)
	}
}

func TestRemainderWidthsCoverFullTurn(t *testing.T) {
	for n := 1; n <= 400; n++ {
		l, err := NewLayout(makeSlices(n), Remainder)
		if err != nil {
			t.Fatalf("NewLayout(%d): %v", n, err)
		}

		sum := 0
		for _, w := range l.Widths() {
			sum += w
		}
		if sum != FullTurn {
			t.Errorf("n=%d: sum of widths = %d, want %d", n, sum, FullTurn)
		}

		if _, end := l.Boundaries(n - 1); end != FullTurn {
			t.Errorf("n=%d: last slice end = %d, want %d", n, end, FullTurn)
		}

		// slices are contiguous
		prevEnd := 0
		for i := 0; i < n; i++ {
			start, end := l.Boundaries(i)
			if start != prevEnd {
				t.Errorf("n=%d slice %d: start = %d, want %d", n, i, start, prevEnd)
			}
			prevEnd = end
		}
	}
}

func TestRemainderNeverWidensLastSlice(t *testing.T) {
	l, err := NewLayout(makeSlices(7), Remainder)
	if err != nil {
		t.Fatal(err)
	}
	// 360 = 7*51 + 3
	want := []int{52, 52, 52, 51, 51, 51, 51}
	got := l.Widths()
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Widths()[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestEvenLeavesTruncationGap(t *testing.T) {
	l, err := NewLayout(makeSlices(7), Even)
	if err != nil {
		t.Fatal(err)
	}
	start, end := l.Boundaries(6)
	if start != 306 || end != 357 {
		t.Errorf("Boundaries(6) = (%d, %d), want (306, 357)", start, end)
	}
	if got := l.WinningIndex(358); got != 6 {
		t.Errorf("WinningIndex(358) = %d, want 6 (gap belongs to last slice)", got)
	}
}

func TestWidthOf(t *testing.T) {
	tests := []struct {
		count, want int
	}{
		{1, 360},
		{5, 72},
		{7, 51},
		{10, 36},
		{360, 1},
		{361, 0},
	}
	for _, tt := range tests {
		if got := WidthOf(FullTurn, tt.count); got != tt.want {
			t.Errorf("WidthOf(360, %d) = %d, want %d", tt.count, got, tt.want)
		}
	}
}

func TestWinningIndexFiveSlices(t *testing.T) {
	for _, dist := range []Distribution{Even, Remainder} {
		l, err := NewLayout(makeSlices(5), dist)
		if err != nil {
			t.Fatal(err)
		}
		if l.Width() != 72 {
			t.Fatalf("Width() = %d, want 72", l.Width())
		}

		tests := []struct {
			deg  float64
			want int
		}{
			{0, 0},
			{71, 0},
			{72, 1},
			{359, 4},
			{-1, 4},
			{-72, 4},
			{720, 0},
		}
		for _, tt := range tests {
			if got := l.WinningIndex(tt.deg); got != tt.want {
				t.Errorf("%v: WinningIndex(%v) = %d, want %d", dist, tt.deg, got, tt.want)
			}
		}
	}
}

func TestWinningIndexStableUnderFullTurn(t *testing.T) {
	for _, n := range []int{1, 3, 5, 7, 10, 13} {
		for _, dist := range []Distribution{Even, Remainder} {
			l, err := NewLayout(makeSlices(n), dist)
			if err != nil {
				t.Fatal(err)
			}
			for a := -720.0; a < 720; a += 7.25 {
				if l.WinningIndex(a) != l.WinningIndex(a+360) {
					t.Errorf("n=%d %v: WinningIndex(%v) != WinningIndex(%v)", n, dist, a, a+360)
				}
			}
		}
	}
}

func TestVertices(t *testing.T) {
	pts := Vertices(0, 90, 100)

	if len(pts) != 91+2 {
		t.Fatalf("len(Vertices) = %d, want 93", len(pts))
	}
	if pts[0] != (Point{}) || pts[len(pts)-1] != (Point{}) {
		t.Errorf("polygon must start and end at the hub, got %v and %v", pts[0], pts[len(pts)-1])
	}

	// 0 degrees is straight up, 90 degrees is to the right
	assertPoint(t, "first rim point", pts[1], Point{X: 0, Y: 100})
	assertPoint(t, "last rim point", pts[len(pts)-2], Point{X: 100, Y: 0})

	for i, p := range pts[1 : len(pts)-1] {
		if r := math.Hypot(p.X, p.Y); math.Abs(r-100) > 1e-9 {
			t.Errorf("rim point %d at radius %v, want 100", i, r)
		}
	}
}

func TestLabelAnchor(t *testing.T) {
	tests := []struct {
		name       string
		start, end int
		wantPos    Point
		wantMid    float64
		wantRotDeg float64
	}{
		{"top", -36, 36, Point{X: 0, Y: 150}, 0, 90},
		{"right", 72, 108, Point{X: 150, Y: 0}, 90, 0},
		{"bottom", 144, 216, Point{X: 0, Y: -150}, 180, -90},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := LabelAnchor(tt.start, tt.end, 300)
			assertPoint(t, "anchor", a.Point, tt.wantPos)
			if a.MidDeg != tt.wantMid {
				t.Errorf("MidDeg = %v, want %v", a.MidDeg, tt.wantMid)
			}
			if got := RadToDeg(a.Rotation); math.Abs(got-tt.wantRotDeg) > 1e-9 {
				t.Errorf("Rotation = %v deg, want %v", got, tt.wantRotDeg)
			}
		})
	}
}

func TestNormalizeDeg(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{360, 0},
		{370, 10},
		{-10, 350},
		{-360, 0},
		{-1e-20, 0},
	}
	for _, tt := range tests {
		if got := NormalizeDeg(tt.in); got != tt.want {
			t.Errorf("NormalizeDeg(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func assertPoint(t *testing.T, what string, got, want Point) {
	t.Helper()
	if math.Abs(got.X-want.X) > 1e-9 || math.Abs(got.Y-want.Y) > 1e-9 {
		t.Errorf("%s = %v, want %v", what, got, want)
	}
}
