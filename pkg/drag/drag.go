// Package drag tracks a pointer dragging an overlay by its handle.
//
// The controller is a two state machine: idle, and dragging with the offset
// between the pointer and the overlay's top-left corner captured on
// pointer-down. While dragging, every move places the overlay at
// pointer - grab. Release or leaving the tracked surface ends the drag.
package drag

// Point is a position on the screen.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Sub returns p - o.
func (p Point) Sub(o Point) Point {
	return Point{X: p.X - o.X, Y: p.Y - o.Y}
}

// Rect is the overlay's current box.
type Rect struct {
	X, Y, Width, Height float64
}

// TopLeft is the rect's origin.
func (r Rect) TopLeft() Point {
	return Point{X: r.X, Y: r.Y}
}

// Contains reports whether p is inside r. The right and bottom edges are
// exclusive.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.Width && p.Y >= r.Y && p.Y < r.Y+r.Height
}

// Target is what the pointer went down on.
type Target int

const (
	// TargetOther is anything that is not the handle.
	TargetOther Target = iota
	// TargetHandle is the drag handle, usually a title bar.
	TargetHandle
	// TargetClose is the close control sitting on the handle. It never
	// starts a drag.
	TargetClose
)

// Position is where the overlay is drawn: centered by default or placed at
// explicit coordinates once it has been dragged.
type Position struct {
	placed bool
	at     Point
}

// Centered is the default layout.
func Centered() Position { return Position{} }

// PlacedAt pins the overlay's top-left corner to p.
func PlacedAt(p Point) Position { return Position{placed: true, at: p} }

// IsCentered reports whether no placement has been made.
func (p Position) IsCentered() bool { return !p.placed }

// Coordinates returns the placement and true, or false when centered.
func (p Position) Coordinates() (Point, bool) {
	return p.at, p.placed
}

// Session is an in-flight drag.
type Session struct {
	Active bool
	Grab   Point
}

// State is what every controller transition returns.
type State struct {
	Session  Session
	Position Position
}

// Dragging reports whether a session is active.
func (s State) Dragging() bool { return s.Session.Active }

// Controller owns the drag state of one overlay. The zero value is idle and
// centered. It is not safe for concurrent use; callers drive it from their
// event loop.
type Controller struct {
	state State
}

// State returns the current state.
func (c *Controller) State() State { return c.state }

// HandleDown starts a drag when the pointer goes down on the handle.
func (c *Controller) HandleDown(pointer Point, overlay Rect, target Target) State {
	if target != TargetHandle {
		return c.state
	}
	c.state.Session = Session{Active: true, Grab: pointer.Sub(overlay.TopLeft())}
	return c.state
}

// Move repositions the overlay while dragging. consumed is true when the
// move belonged to the drag and should not be handled further.
func (c *Controller) Move(pointer Point) (State, bool) {
	if !c.state.Session.Active {
		return c.state, false
	}
	c.state.Position = PlacedAt(pointer.Sub(c.state.Session.Grab))
	return c.state, true
}

// Release ends the drag, keeping the last placement.
func (c *Controller) Release() State {
	c.state.Session = Session{}
	return c.state
}

// Leave is a release caused by the pointer leaving the tracked surface.
func (c *Controller) Leave() State {
	return c.Release()
}

// Open shows the overlay again, discarding any earlier placement.
func (c *Controller) Open() State {
	c.state = State{Position: Centered()}
	return c.state
}

// Close hides the overlay and abandons any drag.
func (c *Controller) Close() State {
	c.state.Session = Session{}
	return c.state
}
