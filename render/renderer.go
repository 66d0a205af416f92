package render

import (
	"fmt"
	"math"
	"sort"

	"github.com/charmbracelet/log"

	"archdraw/boundary"
	"archdraw/bounds"
	"archdraw/diagram"
	"archdraw/geometry"
	"archdraw/routing"
)

// Arrowhead geometry: two strokes splayed around the terminal angle.
const (
	arrowLength = 12.0
	arrowSplay  = 150.0 * math.Pi / 180
)

// Renderer runs complete layout passes. It is stateless between passes;
// the bounds cache and routing context live only for the duration of one
// Render call.
type Renderer struct {
	// DefaultStyle is the base style merged under any per-element style
	// the view carries.
	DefaultStyle diagram.Style
	// Padding is the boundary clearance around nested children.
	Padding float64
	// Router computes relationship paths.
	Router *routing.Router

	logger *log.Logger
}

// NewRenderer creates a renderer with default tuning and the given logger.
// A nil logger falls back to the global default.
func NewRenderer(logger *log.Logger) *Renderer {
	if logger == nil {
		logger = log.Default()
	}
	return &Renderer{
		DefaultStyle: diagram.Style{
			Shape:    diagram.ShapeBox,
			Stroke:   "#1168bd",
			Fill:     "#ffffff",
			Border:   diagram.BorderSolid,
			FontSize: bounds.DefaultFontSize,
			Routing:  "direct",
		},
		Padding: boundary.DefaultPadding,
		Router:  routing.NewRouter(),
		logger:  logger,
	}
}

// Render runs one pass over the view and draws it onto the surface. The
// returned frame carries the rendered geometry for hit-testing plus any
// soft warnings; only structurally broken views produce an error.
func (r *Renderer) Render(view *diagram.View, surface Surface) (*Frame, error) {
	if view == nil {
		return nil, fmt.Errorf("render: nil view")
	}
	frame := &Frame{}

	styles := make(map[string]diagram.Style, len(view.Elements))
	for _, el := range view.Elements {
		styles[el.ID] = r.DefaultStyle.Merge(view.Styles[el.ID])
	}

	cache, levels := r.buildCache(view, styles, frame)
	r.drawElements(view, styles, cache, levels, frame, surface)
	r.drawRelationships(view, cache, frame, surface)

	for _, w := range frame.Warnings {
		r.logger.Warn(w)
	}
	return frame, nil
}

// buildCache computes every element's definitive rectangle: leaf bounds
// first, then container boundaries bottom-up. The cache must be complete
// before routing starts; this is the single-writer phase of the pass.
func (r *Renderer) buildCache(view *diagram.View, styles map[string]diagram.Style, frame *Frame) (*bounds.Cache, map[string]int) {
	cache := bounds.NewCache()
	children := view.Children()
	levels := make(map[string]int, len(view.Elements))

	for _, el := range view.Elements {
		if len(children[el.ID]) > 0 {
			continue // container rectangles come from their children
		}
		placement, ok := view.Placement(el.ID)
		if !ok {
			frame.Warnings = append(frame.Warnings,
				fmt.Sprintf("element %q has no placement, using defaults", el.ID))
			placement = diagram.Placement{ID: el.ID}
		}
		cache.Set(el.ID, bounds.Calculate(el, placement, styles[el.ID]))
	}

	for _, el := range view.Elements {
		if el.ParentID != "" || len(children[el.ID]) == 0 {
			continue
		}
		res := boundary.Hierarchy(cache, children, el.ID, r.Padding)
		for _, id := range res.Cycles {
			frame.Warnings = append(frame.Warnings,
				fmt.Sprintf("containment cycle at %q, boundary is partial", id))
		}
		for id, level := range res.Levels {
			levels[id] = level
		}
	}

	// A cycle where every member has a parent leaves no root for the loop
	// above to start from. Seed a traversal from each still-uncached
	// element so the cycle members get rectangles and the cycle is
	// reported instead of silently dropping them.
	for _, el := range view.Elements {
		if _, ok := cache.Get(el.ID); ok {
			continue
		}
		res := boundary.Hierarchy(cache, children, el.ID, r.Padding)
		for _, id := range res.Cycles {
			frame.Warnings = append(frame.Warnings,
				fmt.Sprintf("containment cycle at %q, boundary is partial", id))
		}
		for id, level := range res.Levels {
			levels[id] = level
		}
	}
	return cache, levels
}

// drawElements paints elements in nesting order, outermost first, so that
// nested elements end up topmost both on screen and in z-order.
func (r *Renderer) drawElements(view *diagram.View, styles map[string]diagram.Style, cache *bounds.Cache, levels map[string]int, frame *Frame, surface Surface) {
	children := view.Children()

	ordered := make([]diagram.Element, len(view.Elements))
	copy(ordered, view.Elements)
	sort.SliceStable(ordered, func(i, j int) bool {
		li, lj := levels[ordered[i].ID], levels[ordered[j].ID]
		if li != lj {
			return li < lj
		}
		return ordered[i].ID < ordered[j].ID
	})

	for _, el := range ordered {
		rect, ok := cache.Get(el.ID)
		if !ok {
			continue
		}
		style := styles[el.ID]
		level := levels[el.ID]
		frame.Elements = append(frame.Elements, RenderedElement{
			ID: el.ID, Rect: rect, Shape: style.Shape, Level: level,
		})

		if len(children[el.ID]) > 0 {
			r.drawBoundary(rect, style, level, surface)
			continue
		}
		r.drawShape(rect, style, surface)
	}
}

// drawBoundary paints a container outline with a per-depth stroke pattern.
func (r *Renderer) drawBoundary(rect geometry.Rect, style diagram.Style, level int, surface Surface) {
	surface.DrawRect(rect, Paint{
		Stroke:    style.Stroke,
		Thickness: strokeThickness(style),
		Dash:      levelDash(level),
	})
}

// drawShape paints a leaf element according to its shape, composed from
// the primitive surface capabilities.
func (r *Renderer) drawShape(rect geometry.Rect, style diagram.Style, surface Surface) {
	paint := Paint{
		Stroke:    style.Stroke,
		Fill:      style.Fill,
		Thickness: strokeThickness(style),
		Dash:      borderDash(style.Border),
	}

	switch style.Shape {
	case diagram.ShapeRoundedBox, diagram.ShapeComponent:
		surface.DrawRoundedRect(rect, 10, paint)
	case diagram.ShapeEllipse:
		surface.DrawCircle(rect.Center(), math.Min(rect.Width, rect.Height)/2, paint)
	case diagram.ShapePerson:
		headRadius := bounds.PersonHeadAllowance / 2
		body := geometry.NewRect(rect.Left, rect.Top+headRadius, rect.Width, rect.Height-headRadius)
		surface.DrawRoundedRect(body, headRadius, paint)
		head := geometry.Point{X: rect.Center().X, Y: rect.Top + headRadius}
		surface.DrawCircle(head, headRadius, paint)
	case diagram.ShapeCylinder:
		surface.DrawRect(rect, paint)
		capY := rect.Top + rect.Height*0.12
		surface.DrawLine(geometry.Point{X: rect.Left, Y: capY}, geometry.Point{X: rect.Right(), Y: capY}, paint)
	default:
		surface.DrawRect(rect, paint)
	}
}

// drawRelationships routes and paints every relationship. Missing cache
// entries skip the relationship with a warning instead of aborting the
// pass.
func (r *Renderer) drawRelationships(view *diagram.View, cache *bounds.Cache, frame *Frame, surface Surface) {
	ctx := routing.BuildContext(view.Relationships)
	paint := Paint{Stroke: "#707070", Thickness: 1}

	for _, rel := range view.Relationships {
		src, okSrc := cache.Get(rel.SourceID)
		dst, okDst := cache.Get(rel.DestinationID)
		if !okSrc || !okDst {
			frame.Warnings = append(frame.Warnings,
				fmt.Sprintf("relationship %q references unplaced element, skipped", rel.ID))
			continue
		}

		strategy := routing.Select(rel, r.DefaultStyle)
		// Endpoints and their enclosing boundaries are not obstacles: a
		// route between siblings must be free to cross the containers it
		// already lives inside.
		exclude := []string{rel.SourceID, rel.DestinationID}
		exclude = append(exclude, ancestorIDs(view, rel.SourceID)...)
		exclude = append(exclude, ancestorIDs(view, rel.DestinationID)...)
		obstacles := cache.Obstacles(exclude...)
		path := r.Router.Route(rel, src, dst, strategy, obstacles, ctx.LateralOffset(rel.ID))

		frame.Paths = append(frame.Paths, RenderedPath{ID: rel.ID, Path: path})
		surface.DrawPath(path, paint)
		r.drawArrowhead(path, paint, surface)
	}
}

// ancestorIDs returns the chain of containers enclosing an element, nearest
// first. A cyclic parent chain terminates at the first repeat.
func ancestorIDs(view *diagram.View, id string) []string {
	var out []string
	seen := map[string]bool{id: true}
	for {
		el, ok := view.Element(id)
		if !ok || el.ParentID == "" || seen[el.ParentID] {
			return out
		}
		out = append(out, el.ParentID)
		seen[el.ParentID] = true
		id = el.ParentID
	}
}

// drawArrowhead paints two strokes splayed around the path's terminal angle.
func (r *Renderer) drawArrowhead(path geometry.Path, paint Paint, surface Surface) {
	if path.IsEmpty() {
		return
	}
	end := path.End()
	angle := path.EndAngle()
	for _, side := range []float64{arrowSplay, -arrowSplay} {
		tip := geometry.Point{
			X: end.X + arrowLength*math.Cos(angle+side),
			Y: end.Y + arrowLength*math.Sin(angle+side),
		}
		surface.DrawLine(end, tip, paint)
	}
}

func strokeThickness(style diagram.Style) float64 {
	if style.Thickness > 0 {
		return style.Thickness
	}
	return 2
}

func borderDash(border diagram.Border) []float64 {
	switch border {
	case diagram.BorderDashed:
		return dashedPattern
	case diagram.BorderDotted:
		return dottedPattern
	default:
		return nil
	}
}
