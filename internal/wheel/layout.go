package wheel

import (
	"errors"
	"image/color"
	"math"
)

// FullTurn is the number of degrees in one revolution of the wheel.
const FullTurn = 360

var ErrNoSlices = errors.New("wheel: at least one slice is required")

// Slice is one labeled, colored segment of the wheel. Its position in the
// layout defines where it sits on the circle.
type Slice struct {
	Label string
	Color color.RGBA
}

// Distribution controls how the 360 degrees are shared between slices.
type Distribution int

const (
	// Even gives every slice 360/N degrees. When 360 is not divisible by N
	// a small gap is left after the last slice.
	Even Distribution = iota
	// Remainder hands the 360%N leftover degrees to the leading slices and
	// pins the last slice's end to 360, so the circle is always closed.
	Remainder
)

func (d Distribution) String() string {
	switch d {
	case Even:
		return "even"
	case Remainder:
		return "remainder"
	default:
		return "unknown"
	}
}

// Point is a position in wheel space: origin at the hub, y pointing up.
type Point struct {
	X, Y float64
}

// Anchor is where and how a slice label is placed.
type Anchor struct {
	Point
	// MidDeg is the compass angle through the middle of the slice.
	MidDeg float64
	// Rotation counter-rotates the text so it reads along the radius.
	Rotation float64
}

// Layout is an immutable partition of the circle into slices.
type Layout struct {
	slices []Slice
	dist   Distribution
	width  int
	starts []int
	ends   []int
}

// NewLayout copies slices and precomputes every boundary.
func NewLayout(slices []Slice, dist Distribution) (*Layout, error) {
	if len(slices) == 0 {
		return nil, ErrNoSlices
	}

	l := &Layout{
		slices: append([]Slice(nil), slices...),
		dist:   dist,
		width:  WidthOf(FullTurn, len(slices)),
		starts: make([]int, len(slices)),
		ends:   make([]int, len(slices)),
	}

	start := 0
	for i, w := range l.Widths() {
		l.starts[i] = start
		l.ends[i] = start + w
		start += w
	}
	if dist == Remainder {
		l.ends[len(l.ends)-1] = FullTurn
	}
	return l, nil
}

// WidthOf returns the integer number of degrees each of count slices gets
// out of total. count must be at least 1.
func WidthOf(total, count int) int {
	return total / count
}

func (l *Layout) Len() int                   { return len(l.slices) }
func (l *Layout) Slice(i int) Slice          { return l.slices[i] }
func (l *Layout) Width() int                 { return l.width }
func (l *Layout) Distribution() Distribution { return l.dist }

// Widths returns the angular width of every slice in order.
func (l *Layout) Widths() []int {
	n := len(l.slices)
	out := make([]int, n)
	extra := 0
	if l.dist == Remainder {
		extra = FullTurn % n
	}
	for i := range out {
		out[i] = l.width
		// the last slice never takes a leftover degree
		if i < extra && i < n-1 {
			out[i]++
		}
	}
	return out
}

// Boundaries returns the start and end degree of slice index.
func (l *Layout) Boundaries(index int) (start, end int) {
	return l.starts[index], l.ends[index]
}

// Vertices builds a fan polygon for the arc between startDeg and endDeg:
// the hub, one rim point per whole degree (inclusive), then the hub again.
// 0 degrees points up and angles grow clockwise.
func Vertices(startDeg, endDeg int, radius float64) []Point {
	pts := make([]Point, 0, endDeg-startDeg+3)
	pts = append(pts, Point{})
	for d := startDeg; d <= endDeg; d++ {
		rad := degToRad(float64(d))
		pts = append(pts, Point{
			X: math.Sin(rad) * radius,
			Y: math.Cos(rad) * radius,
		})
	}
	pts = append(pts, Point{})
	return pts
}

// LabelAnchor places a label halfway out along the middle of the arc.
func LabelAnchor(startDeg, endDeg int, radius float64) Anchor {
	mid := middleBetween(startDeg, endDeg)
	rad := degToRad(mid)
	return Anchor{
		Point: Point{
			X: math.Sin(rad) * (radius / 2),
			Y: math.Cos(rad) * (radius / 2),
		},
		MidDeg:   mid,
		Rotation: -degToRad(mid - 90),
	}
}

// WinningIndex reports which slice sits under the fixed marker when the
// wheel has turned rotationDeg degrees.
func (l *Layout) WinningIndex(rotationDeg float64) int {
	deg := NormalizeDeg(rotationDeg)

	if l.dist == Even && l.width > 0 {
		i := int(math.Floor(deg / float64(l.width)))
		// degrees in the trailing gap belong to the last slice
		if i >= len(l.slices) {
			i = len(l.slices) - 1
		}
		return i
	}

	for i, end := range l.ends {
		if deg < float64(end) {
			return i
		}
	}
	return len(l.slices) - 1
}

// NormalizeDeg maps any angle into [0, 360).
func NormalizeDeg(deg float64) float64 {
	deg = math.Mod(deg, FullTurn)
	if deg < 0 {
		deg += FullTurn
	}
	// Mod of a tiny negative value can round up to exactly 360
	if deg >= FullTurn {
		deg = 0
	}
	return deg
}

func middleBetween(a, b int) float64 {
	fa, fb := float64(a), float64(b)
	return fa + (fb-fa)/2
}

func degToRad(deg float64) float64 { return deg * math.Pi / 180 }

// RadToDeg converts a wheel rotation in radians to degrees.
func RadToDeg(rad float64) float64 { return rad * 180 / math.Pi }
