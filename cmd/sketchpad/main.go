// Sketchpad is a minimal scene editor: rectangles and ellipses you can
// select, move, scale, rotate, multi-select with shift, and rubber-band
// select on empty space. It drives a canvaskit.Editor from Ebitengine input
// and renders the scene with the vector package. No external assets are
// required.
package main

import (
	"image/color"
	"log"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/phanxgames/canvaskit"
)

var palette = []color.RGBA{
	{R: 230, G: 76, B: 76, A: 255},  // red
	{R: 76, G: 178, B: 230, A: 255}, // blue
	{R: 76, G: 230, B: 127, A: 255}, // green
	{R: 255, G: 178, B: 51, A: 255}, // orange
}

func main() {
	cfg, err := loadConfig()
	if err != nil {
		log.Fatal(err)
	}

	root := canvaskit.NewGroup("root")
	for i, c := range palette {
		var s *canvaskit.Shape
		if i%2 == 0 {
			s = canvaskit.NewRect("box", 120, 80)
		} else {
			s = canvaskit.NewEllipse("blob", 100, 100)
		}
		s.X = float64(120 + i*180)
		s.Y = float64(160 + (i%2)*140)
		s.UserData = c
		root.AddChild(s)
	}

	ed := canvaskit.NewEditor(root, canvaskit.InteractionConfig{
		DragDeadZone:              cfg.Editor.DragDeadZone,
		RegionSelection:           cfg.Editor.RegionSelection,
		GroupSelectFullyContained: cfg.Editor.FullyContained,
		PreserveObjectStacking:    cfg.Editor.PreserveObjectStacking,
		RebindDelay:               cfg.Editor.RebindDelay(),
	})
	ed.SetDebugMode(cfg.Editor.Debug)
	ed.RegisterListeners()

	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	if err := ebiten.RunGame(&game{editor: ed}); err != nil {
		log.Fatal(err)
	}
}

type game struct {
	editor *canvaskit.Editor

	lastX, lastY int
	touches      []ebiten.TouchID
}

func (g *game) Update() error {
	g.pollMouse()
	g.pollTouches()
	g.editor.Advance(1.0 / float32(ebiten.TPS()))
	return nil
}

func (g *game) pollMouse() {
	x, y := ebiten.CursorPosition()
	mods := readModifiers()

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.editor.HandleRaw(rawMouse(canvaskit.EventDown, x, y, mods))
	}
	if x != g.lastX || y != g.lastY {
		g.editor.HandleRaw(rawMouse(canvaskit.EventMove, x, y, mods))
		g.lastX, g.lastY = x, y
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		g.editor.HandleRaw(rawMouse(canvaskit.EventUp, x, y, mods))
	}
	if dx, dy := ebiten.Wheel(); dx != 0 || dy != 0 {
		raw := rawMouse(canvaskit.EventWheel, x, y, mods)
		raw.WheelDX, raw.WheelDY = dx, dy
		g.editor.HandleRaw(raw)
	}

	g.updateCursor(x, y, mods)
}

func (g *game) pollTouches() {
	mods := readModifiers()

	for _, id := range inpututil.AppendJustPressedTouchIDs(nil) {
		x, y := ebiten.TouchPosition(id)
		g.editor.HandleRaw(rawTouch(canvaskit.EventDown, id, x, y, mods, len(ebiten.AppendTouchIDs(nil))))
	}
	g.touches = ebiten.AppendTouchIDs(g.touches[:0])
	for _, id := range g.touches {
		x, y := ebiten.TouchPosition(id)
		g.editor.HandleRaw(rawTouch(canvaskit.EventMove, id, x, y, mods, len(g.touches)))
	}
	for _, id := range inpututil.AppendJustReleasedTouchIDs(nil) {
		x, y := inpututil.TouchPositionInPreviousTick(id)
		g.editor.HandleRaw(rawTouch(canvaskit.EventUp, id, x, y, mods, len(ebiten.AppendTouchIDs(nil))))
	}
}

func (g *game) updateCursor(x, y int, mods canvaskit.KeyModifiers) {
	raw := rawMouse(canvaskit.EventMove, x, y, mods)
	ev := &canvaskit.PointerEvent{
		Raw:      &raw,
		Viewport: canvaskit.Point{X: float64(x), Y: float64(y)},
		Scene:    canvaskit.Point{X: float64(x), Y: float64(y)},
	}
	switch g.editor.CursorFor(ev) {
	case "move":
		ebiten.SetCursorShape(ebiten.CursorShapeMove)
	case "nwse-resize":
		ebiten.SetCursorShape(ebiten.CursorShapeNWSEResize)
	case "nesw-resize":
		ebiten.SetCursorShape(ebiten.CursorShapeNESWResize)
	case "crosshair":
		ebiten.SetCursorShape(ebiten.CursorShapeCrosshair)
	case "pointer":
		ebiten.SetCursorShape(ebiten.CursorShapePointer)
	default:
		ebiten.SetCursorShape(ebiten.CursorShapeDefault)
	}
}

func rawMouse(kind canvaskit.EventKind, x, y int, mods canvaskit.KeyModifiers) canvaskit.RawEvent {
	return canvaskit.RawEvent{
		Kind: kind, Device: canvaskit.DeviceMouse,
		X: float64(x), Y: float64(y),
		Button: canvaskit.MouseButtonLeft, Modifiers: mods,
		IsPrimary: true,
	}
}

func rawTouch(kind canvaskit.EventKind, id ebiten.TouchID, x, y int, mods canvaskit.KeyModifiers, remaining int) canvaskit.RawEvent {
	return canvaskit.RawEvent{
		Kind: kind, Device: canvaskit.DeviceTouch,
		X: float64(x), Y: float64(y),
		Modifiers: mods,
		TouchID:   int64(id), TouchesRemaining: remaining,
	}
}

func readModifiers() canvaskit.KeyModifiers {
	var mods canvaskit.KeyModifiers
	if ebiten.IsKeyPressed(ebiten.KeyShift) {
		mods |= canvaskit.ModShift
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) {
		mods |= canvaskit.ModCtrl
	}
	if ebiten.IsKeyPressed(ebiten.KeyAlt) {
		mods |= canvaskit.ModAlt
	}
	if ebiten.IsKeyPressed(ebiten.KeyMeta) {
		mods |= canvaskit.ModMeta
	}
	return mods
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 35, G: 30, B: 45, A: 255})
	g.drawShape(screen, g.editor.Root())
	g.drawSelection(screen)
	g.drawBand(screen)
}

func (g *game) drawShape(screen *ebiten.Image, s *canvaskit.Shape) {
	if !s.Visible {
		return
	}
	if s.Kind != canvaskit.ShapeGroup {
		b := s.Bounds()
		fill, _ := s.UserData.(color.RGBA)
		if fill.A == 0 {
			fill = color.RGBA{R: 128, G: 128, B: 128, A: 255}
		}
		if pulse := g.editor.DropHighlight(); pulse != nil && pulse.Target == s {
			fill.A = uint8(255 - 128*pulse.Value())
		}
		switch s.Kind {
		case canvaskit.ShapeEllipse:
			cx := float32(b.X + b.Width/2)
			cy := float32(b.Y + b.Height/2)
			vector.DrawFilledCircle(screen, cx, cy, float32(b.Width/2), fill, true)
		default:
			vector.DrawFilledRect(screen, float32(b.X), float32(b.Y), float32(b.Width), float32(b.Height), fill, true)
		}
	}
	for _, c := range s.Children() {
		g.drawShape(screen, c)
	}
}

func (g *game) drawSelection(screen *ebiten.Image) {
	active := g.editor.ActiveShape()
	if active == nil {
		return
	}
	b := active.Bounds()
	outline := color.RGBA{R: 102, G: 178, B: 255, A: 255}
	vector.StrokeRect(screen, float32(b.X), float32(b.Y), float32(b.Width), float32(b.Height), 1.5, outline, true)

	if !active.HasControls {
		return
	}
	const handle = 8
	corners := [][2]float64{
		{b.X, b.Y}, {b.X + b.Width, b.Y},
		{b.X, b.Y + b.Height}, {b.X + b.Width, b.Y + b.Height},
		{b.X + b.Width/2, b.Y - 24}, // rotate handle
	}
	for _, c := range corners {
		vector.DrawFilledRect(screen,
			float32(c[0]-handle/2), float32(c[1]-handle/2), handle, handle,
			color.White, true)
	}
}

func (g *game) drawBand(screen *ebiten.Image) {
	r, ok := g.editor.GroupSelectorRect()
	if !ok {
		return
	}
	alpha := g.editor.BandOpacity()
	if alpha <= 0 {
		return
	}
	fill := color.RGBA{R: 102, G: 178, B: 255, A: uint8(48 * alpha)}
	line := color.RGBA{R: 102, G: 178, B: 255, A: uint8(math.Min(255, 200*float64(alpha)))}
	vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height), fill, true)
	vector.StrokeRect(screen, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height), 1, line, true)
}

func (g *game) Layout(w, h int) (int, int) { return w, h }
