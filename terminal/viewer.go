// Package terminal shows a rendered frame in the terminal and lets the user
// poke at it: click to select an element or relationship, drag to marquee a
// region, q or Escape to quit.
package terminal

import (
	"fmt"
	"slices"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"archdraw/geometry"
	"archdraw/hittest"
	"archdraw/render"
)

// Terminal cells are roughly twice as tall as wide, so a world unit maps to
// twice as many columns as rows.
const cellAspect = 2.0

// clickTolerance is the world-space slack for hitting a relationship path.
const clickTolerance = 12.0

// Viewer displays one frame. It owns no screen until Run.
type Viewer struct {
	frame *render.Frame

	// world-to-cell transform, fitted in Run
	origin geometry.Point
	unit   float64 // world units per terminal row

	selectedElements []string
	selectedPaths    []string
	status           string
}

// NewViewer wraps a rendered frame for display.
func NewViewer(frame *render.Frame) *Viewer {
	return &Viewer{frame: frame}
}

// Run opens the terminal screen and blocks until the user quits.
func (v *Viewer) Run() error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("open screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse()

	var dragStart *geometry.Point
	for {
		v.fit(screen.Size())
		v.draw(screen)
		screen.Show()

		switch ev := screen.PollEvent().(type) {
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Rune() == 'q' {
				return nil
			}
		case *tcell.EventMouse:
			x, y := ev.Position()
			world := v.toWorld(x, y)
			switch {
			case ev.Buttons()&tcell.Button1 != 0:
				if dragStart == nil {
					p := world
					dragStart = &p
				}
			case dragStart != nil:
				if dragStart.Distance(world) < v.unit {
					v.selectPoint(world)
				} else {
					v.selectRegion(geometry.RectFromPoints(*dragStart, world))
				}
				dragStart = nil
			}
		}
	}
}

// fit recomputes the world-to-cell transform so the frame fills the screen
// above the status line.
func (v *Viewer) fit(cols, rows int) {
	bounds := v.frame.Bounds().Expand(20)
	rows-- // status line
	if cols < 1 || rows < 1 || bounds.IsDegenerate() {
		v.origin = geometry.Point{X: bounds.Left, Y: bounds.Top}
		v.unit = 1
		return
	}
	unitY := bounds.Height / float64(rows)
	unitX := bounds.Width / (float64(cols) / cellAspect)
	v.unit = max(unitX, unitY)
	v.origin = geometry.Point{X: bounds.Left, Y: bounds.Top}
}

func (v *Viewer) toCell(p geometry.Point) (int, int) {
	return int((p.X - v.origin.X) / v.unit * cellAspect), int((p.Y - v.origin.Y) / v.unit)
}

func (v *Viewer) toWorld(x, y int) geometry.Point {
	return geometry.Point{
		X: v.origin.X + float64(x)/cellAspect*v.unit,
		Y: v.origin.Y + float64(y)*v.unit,
	}
}

func (v *Viewer) selectPoint(p geometry.Point) {
	v.selectedElements = nil
	v.selectedPaths = nil
	hit := v.frame.HitPoint(p, clickTolerance)
	switch hit.Kind {
	case hittest.KindElement:
		v.selectedElements = []string{hit.ID}
		v.status = fmt.Sprintf("element %s", hit.ID)
	case hittest.KindRelationship:
		v.selectedPaths = []string{hit.ID}
		v.status = fmt.Sprintf("relationship %s", hit.ID)
	default:
		v.status = "nothing here"
	}
}

func (v *Viewer) selectRegion(r geometry.Rect) {
	sel := v.frame.HitRegion(r)
	v.selectedElements = sel.ElementIDs
	v.selectedPaths = sel.RelationshipIDs
	v.status = fmt.Sprintf("selected %d elements, %d relationships",
		len(sel.ElementIDs), len(sel.RelationshipIDs))
}

func (v *Viewer) draw(screen tcell.Screen) {
	screen.Clear()

	base := tcell.StyleDefault
	selected := base.Foreground(tcell.ColorYellow).Bold(true)

	for _, el := range v.frame.Elements {
		style := base
		if slices.Contains(v.selectedElements, el.ID) {
			style = selected
		}
		v.drawBox(screen, el.Rect, el.ID, style)
	}
	for _, p := range v.frame.Paths {
		style := base.Foreground(tcell.ColorGray)
		if slices.Contains(v.selectedPaths, p.ID) {
			style = selected
		}
		v.drawPath(screen, p.Path, style)
	}
	v.drawStatus(screen)
}

func (v *Viewer) drawBox(screen tcell.Screen, r geometry.Rect, label string, style tcell.Style) {
	x0, y0 := v.toCell(geometry.Point{X: r.Left, Y: r.Top})
	x1, y1 := v.toCell(geometry.Point{X: r.Right(), Y: r.Bottom()})
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}

	for x := x0 + 1; x < x1; x++ {
		screen.SetContent(x, y0, '─', nil, style)
		screen.SetContent(x, y1, '─', nil, style)
	}
	for y := y0 + 1; y < y1; y++ {
		screen.SetContent(x0, y, '│', nil, style)
		screen.SetContent(x1, y, '│', nil, style)
	}
	screen.SetContent(x0, y0, '┌', nil, style)
	screen.SetContent(x1, y0, '┐', nil, style)
	screen.SetContent(x0, y1, '└', nil, style)
	screen.SetContent(x1, y1, '┘', nil, style)

	// Label centered on the top row, clipped to the box width.
	width := runewidth.StringWidth(label)
	if inner := x1 - x0 - 1; width > inner {
		label = runewidth.Truncate(label, inner, "…")
		width = runewidth.StringWidth(label)
	}
	col := x0 + 1 + (x1-x0-1-width)/2
	for _, ch := range label {
		screen.SetContent(col, y0, ch, nil, style)
		col += runewidth.RuneWidth(ch)
	}
}

func (v *Viewer) drawPath(screen tcell.Screen, path geometry.Path, style tcell.Style) {
	pts := path.Flatten(16)
	for i := 1; i < len(pts); i++ {
		v.drawSegment(screen, pts[i-1], pts[i], style)
	}
}

// drawSegment walks cells along a world segment and plots a glyph matching
// the dominant direction.
func (v *Viewer) drawSegment(screen tcell.Screen, a, b geometry.Point, style tcell.Style) {
	x0, y0 := v.toCell(a)
	x1, y1 := v.toCell(b)

	dx, dy := abs(x1-x0), abs(y1-y0)
	glyph := '·'
	switch {
	case dy == 0:
		glyph = '─'
	case dx == 0:
		glyph = '│'
	}

	steps := max(dx, dy)
	if steps == 0 {
		screen.SetContent(x0, y0, glyph, nil, style)
		return
	}
	for i := 0; i <= steps; i++ {
		x := x0 + (x1-x0)*i/steps
		y := y0 + (y1-y0)*i/steps
		screen.SetContent(x, y, glyph, nil, style)
	}
}

func (v *Viewer) drawStatus(screen tcell.Screen) {
	cols, rows := screen.Size()
	msg := v.status
	if msg == "" {
		msg = "click to select, drag to marquee, q to quit"
	}
	style := tcell.StyleDefault.Reverse(true)
	col := 0
	for _, r := range msg {
		if col >= cols {
			break
		}
		screen.SetContent(col, rows-1, r, nil, style)
		col += runewidth.RuneWidth(r)
	}
	for ; col < cols; col++ {
		screen.SetContent(col, rows-1, ' ', nil, style)
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
