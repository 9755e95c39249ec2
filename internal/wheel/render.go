package wheel

import (
	"image/color"
	"math"
)

// Command is one drawing instruction in wheel space. The set is closed:
// Background, Polygon, Highlight, Text and Marker.
type Command interface {
	isCommand()
}

// Background fills the whole surface.
type Background struct {
	Color color.RGBA
}

// Polygon is a filled polygon.
type Polygon struct {
	Points []Point
	Color  color.RGBA
}

// Highlight outlines a polygon, used for the winning slice.
type Highlight struct {
	Points []Point
	Color  color.RGBA
	Width  float64
}

// Text is a label centered on (X, Y) and rotated counter-clockwise by
// Rotation radians.
type Text struct {
	Text     string
	X, Y     float64
	Rotation float64
	Color    color.RGBA
	Scale    float64
}

// Marker is the fixed pointer that picks the winner.
type Marker struct {
	Points []Point
	Color  color.RGBA
}

func (Background) isCommand() {}
func (Polygon) isCommand()    {}
func (Highlight) isCommand()  {}
func (Text) isCommand()       {}
func (Marker) isCommand()     {}

var (
	Black     = color.RGBA{A: 0xff}
	White     = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	SteelBlue = color.RGBA{R: 0x46, G: 0x82, B: 0xb4, A: 0xff}
	Red       = color.RGBA{R: 0xff, A: 0xff}
	Green     = color.RGBA{G: 0x80, A: 0xff}
	Gold      = color.RGBA{R: 0xff, G: 0xd7, A: 0xff}
)

// Frame is the result of rendering a model: the draw list plus the
// rotation and winner it was built from.
type Frame struct {
	Commands []Command
	Rotation float64
	Winner   int
}

// Render turns a model into draw commands. Slice geometry is rotated
// counter-clockwise by the current angle so the slice under the marker at
// the top of the wheel is the one WinningIndex reports.
func Render(l *Layout, m Model, now, radius float64) Frame {
	rot := CurrentAngle(m, now)
	winner := l.WinningIndex(RadToDeg(rot))
	cos, sin := math.Cos(rot), math.Sin(rot)

	cmds := make([]Command, 0, 2*l.Len()+4)
	cmds = append(cmds, Background{Color: Black})

	var winPoly []Point
	for i := 0; i < l.Len(); i++ {
		s := l.Slice(i)
		start, end := l.Boundaries(i)

		pts := Vertices(start, end, radius)
		for j := range pts {
			pts[j] = rotate(pts[j], cos, sin)
		}
		cmds = append(cmds, Polygon{Points: pts, Color: s.Color})
		if i == winner {
			winPoly = pts
		}
	}

	// labels go on top of every slice so neighbours never cover them
	for i := 0; i < l.Len(); i++ {
		start, end := l.Boundaries(i)
		a := LabelAnchor(start, end, radius)
		p := rotate(a.Point, cos, sin)
		cmds = append(cmds, Text{
			Text:     l.Slice(i).Label,
			X:        p.X,
			Y:        p.Y,
			Rotation: a.Rotation + rot,
			Color:    White,
			Scale:    1,
		})
	}

	if winPoly != nil && !m.IsSpinning() {
		cmds = append(cmds, Highlight{Points: winPoly, Color: Gold, Width: 3})
	}

	cmds = append(cmds, Marker{Points: markerPoints(radius), Color: Gold})
	cmds = append(cmds, Text{
		Text:  l.Slice(winner).Label,
		X:     0,
		Y:     -(radius + 30),
		Color: White,
		Scale: 2,
	})

	return Frame{Commands: cmds, Rotation: rot, Winner: winner}
}

// markerPoints is a downward triangle whose tip touches the rim at the top.
func markerPoints(radius float64) []Point {
	return []Point{
		{X: 0, Y: radius - 8},
		{X: -12, Y: radius + 14},
		{X: 12, Y: radius + 14},
	}
}

func rotate(p Point, cos, sin float64) Point {
	return Point{
		X: p.X*cos - p.Y*sin,
		Y: p.X*sin + p.Y*cos,
	}
}
