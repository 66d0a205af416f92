package render

import "archdraw/geometry"

// Op names a recorded draw call.
type Op string

const (
	OpRect        Op = "rect"
	OpRoundedRect Op = "rounded-rect"
	OpPath        Op = "path"
	OpCircle      Op = "circle"
	OpLine        Op = "line"
)

// Call is one recorded draw operation with whichever arguments applied.
type Call struct {
	Op     Op
	Rect   geometry.Rect
	Path   geometry.Path
	Center geometry.Point
	Radius float64
	A, B   geometry.Point
	Paint  Paint
}

// Recorder is a Surface that records every draw call instead of drawing.
// Tests assert against the captured call list; it also backs the CLI's
// hit-query mode, which needs a frame but no visual output.
type Recorder struct {
	Calls []Call
}

func (r *Recorder) DrawRect(rect geometry.Rect, p Paint) {
	r.Calls = append(r.Calls, Call{Op: OpRect, Rect: rect, Paint: p})
}

func (r *Recorder) DrawRoundedRect(rect geometry.Rect, radius float64, p Paint) {
	r.Calls = append(r.Calls, Call{Op: OpRoundedRect, Rect: rect, Radius: radius, Paint: p})
}

func (r *Recorder) DrawPath(path geometry.Path, p Paint) {
	r.Calls = append(r.Calls, Call{Op: OpPath, Path: path, Paint: p})
}

func (r *Recorder) DrawCircle(center geometry.Point, radius float64, p Paint) {
	r.Calls = append(r.Calls, Call{Op: OpCircle, Center: center, Radius: radius, Paint: p})
}

func (r *Recorder) DrawLine(a, b geometry.Point, p Paint) {
	r.Calls = append(r.Calls, Call{Op: OpLine, A: a, B: b, Paint: p})
}

// CountOp returns how many recorded calls used the given operation.
func (r *Recorder) CountOp(op Op) int {
	n := 0
	for _, c := range r.Calls {
		if c.Op == op {
			n++
		}
	}
	return n
}
