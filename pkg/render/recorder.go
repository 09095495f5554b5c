package render

import (
	"image/color"

	"github.com/philipparndt/gogarment/pkg/geometry"
)

// OpKind identifies a recorded drawing operation
type OpKind int

const (
	OpClear OpKind = iota
	OpPolyline
	OpDisc
	OpText
)

// Op is one recorded drawing operation
type Op struct {
	Kind   OpKind
	Points []geometry.Vector2 // Polyline vertices, or the single center/position
	Closed bool
	Radius float64
	Width  float64
	Color  color.Color
	Text   string
}

// Recorder is a Surface that keeps the last frame as a display list.
// Clear starts a new frame.
type Recorder struct {
	width, height int
	ops           []Op
	frames        int
}

// NewRecorder creates a display-list surface of the given size
func NewRecorder(width, height int) *Recorder {
	return &Recorder{width: width, height: height}
}

func (r *Recorder) Size() (int, int) {
	return r.width, r.height
}

func (r *Recorder) Clear(background color.Color) {
	r.ops = append(r.ops[:0], Op{Kind: OpClear, Color: background})
	r.frames++
}

func (r *Recorder) Polyline(points []geometry.Vector2, closed bool, stroke color.Color, width float64) error {
	pts := make([]geometry.Vector2, len(points))
	copy(pts, points)
	r.ops = append(r.ops, Op{Kind: OpPolyline, Points: pts, Closed: closed, Color: stroke, Width: width})
	return nil
}

func (r *Recorder) Disc(center geometry.Vector2, radius float64, fill color.Color) error {
	r.ops = append(r.ops, Op{Kind: OpDisc, Points: []geometry.Vector2{center}, Radius: radius, Color: fill})
	return nil
}

func (r *Recorder) Text(s string, pos geometry.Vector2, c color.Color) {
	r.ops = append(r.ops, Op{Kind: OpText, Points: []geometry.Vector2{pos}, Color: c, Text: s})
}

// Ops returns a copy of the current frame
func (r *Recorder) Ops() []Op {
	ops := make([]Op, len(r.ops))
	copy(ops, r.ops)
	return ops
}

// Count returns how many operations of a kind the current frame holds
func (r *Recorder) Count(kind OpKind) int {
	n := 0
	for _, op := range r.ops {
		if op.Kind == kind {
			n++
		}
	}
	return n
}

// Frames returns how many frames have been started
func (r *Recorder) Frames() int {
	return r.frames
}

// Replay sends the current frame to another surface
func (r *Recorder) Replay(dst Surface) error {
	for _, op := range r.ops {
		switch op.Kind {
		case OpClear:
			dst.Clear(op.Color)
		case OpPolyline:
			if err := dst.Polyline(op.Points, op.Closed, op.Color, op.Width); err != nil {
				return err
			}
		case OpDisc:
			if err := dst.Disc(op.Points[0], op.Radius, op.Color); err != nil {
				return err
			}
		case OpText:
			dst.Text(op.Text, op.Points[0], op.Color)
		}
	}
	return nil
}
