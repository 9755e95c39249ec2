package game

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/spinning-wheel/internal/config"
	"github.com/iburimskiy/spinning-wheel/internal/wheel"
)

var whiteSubImage *ebiten.Image

// whiteSource is the 1x1 white texture every filled path is drawn from.
func whiteSource() *ebiten.Image {
	if whiteSubImage == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		whiteSubImage = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return whiteSubImage
}

func (g *Game) Draw(screen *ebiten.Image) {
	glow := g.sounds.Level() * 4

	for _, c := range g.frame.Commands {
		switch c := c.(type) {
		case wheel.Background:
			screen.Fill(c.Color)
		case wheel.Polygon:
			fillPolygon(screen, c.Points, c.Color)
		case wheel.Highlight:
			strokePolygon(screen, c.Points, c.Width, c.Color)
		case wheel.Marker:
			fillPolygon(screen, c.Points, mix(c.Color, wheel.White, glow))
		case wheel.Text:
			g.drawLabel(screen, c)
		}
	}

	g.drawButton(screen)

	status := g.status()
	if g.lastErr != nil {
		status += " | Error: " + g.lastErr.Error()
	}
	ebitenutil.DebugPrintAt(screen, status, 12, 6)
}

func (g *Game) status() string {
	now := g.clock()
	switch {
	case g.model.Gesture != nil:
		return "Drag and release to spin"
	case g.model.IsSpinning():
		return "Spinning " + formatDuration(g.tracker.elapsed(now))
	case g.cfg.Mode == wheel.Timer:
		return "Stopped - click to spin"
	default:
		return "Stopped - flick the wheel or press Space"
	}
}

func pathOf(points []wheel.Point) *vector.Path {
	var path vector.Path
	for i, p := range points {
		x, y := toScreen(p)
		if i == 0 {
			path.MoveTo(x, y)
			continue
		}
		path.LineTo(x, y)
	}
	path.Close()
	return &path
}

func fillPolygon(dst *ebiten.Image, points []wheel.Point, clr color.RGBA) {
	if len(points) < 3 {
		return
	}
	vs, is := pathOf(points).AppendVerticesAndIndicesForFilling(nil, nil)
	drawVertices(dst, vs, is, clr)
}

func strokePolygon(dst *ebiten.Image, points []wheel.Point, width float64, clr color.RGBA) {
	if len(points) < 2 {
		return
	}
	op := &vector.StrokeOptions{
		Width:    float32(width),
		LineJoin: vector.LineJoinRound,
	}
	vs, is := pathOf(points).AppendVerticesAndIndicesForStroke(nil, nil, op)
	drawVertices(dst, vs, is, clr)
}

func drawVertices(dst *ebiten.Image, vs []ebiten.Vertex, is []uint16, clr color.RGBA) {
	r := float32(clr.R) / 0xff
	gr := float32(clr.G) / 0xff
	b := float32(clr.B) / 0xff
	a := float32(clr.A) / 0xff
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = r
		vs[i].ColorG = gr
		vs[i].ColorB = b
		vs[i].ColorA = a
	}
	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	dst.DrawTriangles(vs, is, whiteSource(), op)
}

// drawLabel draws text centered on its anchor. Screen y points down, so the
// counter-clockwise wheel rotation becomes a negative GeoM rotation.
func (g *Game) drawLabel(dst *ebiten.Image, t wheel.Text) {
	img := g.labelImage(t.Text)
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	x, y := toScreen(wheel.Point{X: t.X, Y: t.Y})

	scale := t.Scale
	if scale <= 0 {
		scale = 1
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-float64(w)/2, -float64(h)/2)
	op.GeoM.Scale(scale, scale)
	op.GeoM.Rotate(-t.Rotation)
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(t.Color)
	op.Filter = ebiten.FilterLinear
	dst.DrawImage(img, op)
}

// labelImage renders text once with the debug font and caches it.
func (g *Game) labelImage(text string) *ebiten.Image {
	if img, ok := g.labels[text]; ok {
		return img
	}
	w := len(text) * config.LabelCharWidth
	if w == 0 {
		w = 1
	}
	img := ebiten.NewImage(w, config.LabelHeight)
	ebitenutil.DebugPrint(img, text)
	g.labels[text] = img
	return img
}

func (g *Game) drawButton(screen *ebiten.Image) {
	// Button background
	var bgColor color.Color
	if g.buttonPressed {
		bgColor = color.RGBA{R: 60, G: 80, B: 120, A: 255} // Pressed
	} else if g.buttonHovered {
		bgColor = color.RGBA{R: 80, G: 100, B: 140, A: 255} // Hovered
	} else {
		bgColor = color.RGBA{R: 100, G: 120, B: 160, A: 255} // Normal
	}

	vector.DrawFilledRect(screen, config.ButtonX, config.ButtonY, config.ButtonWidth, config.ButtonHeight, bgColor, false)

	borderColor := color.RGBA{R: 150, G: 170, B: 200, A: 255}
	vector.StrokeRect(screen, config.ButtonX, config.ButtonY, config.ButtonWidth, config.ButtonHeight, 2, borderColor, false)

	text := "Open Wheel"
	textWidth := len(text) * config.LabelCharWidth
	textX := config.ButtonX + (config.ButtonWidth-textWidth)/2
	textY := config.ButtonY + (config.ButtonHeight-config.LabelHeight)/2
	ebitenutil.DebugPrintAt(screen, text, textX, textY)
}
