package reveal

import (
	"errors"
	"image/color"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default tint.
var ColorWhite = Color{1, 1, 1, 1}

var colorWhiteRGBA = color.RGBA{255, 255, 255, 255}

// rgba converts to a premultiplied color.RGBA.
func (c Color) rgba() color.RGBA {
	return color.RGBA{
		R: uint8(c.R*c.A*255 + 0.5),
		G: uint8(c.G*c.A*255 + 0.5),
		B: uint8(c.B*c.A*255 + 0.5),
		A: uint8(c.A*255 + 0.5),
	}
}

// Rect is an axis-aligned rectangle in page space. The origin is the top-left
// of the document, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Intersects reports whether r and other overlap.
// Adjacent rectangles (sharing only an edge) are considered intersecting.
func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.Width &&
		r.X+r.Width >= other.X &&
		r.Y <= other.Y+other.Height &&
		r.Y+r.Height >= other.Y
}

// Bottom returns the Y coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// Right returns the X coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.Width }

// MobileBreakpoint is the viewport width below which views select their mobile
// animation strategy.
const MobileBreakpoint = 768.0

// IsMobileWidth reports whether a viewport of the given width is on the mobile
// side of MobileBreakpoint.
func IsMobileWidth(width float64) bool {
	return width < MobileBreakpoint
}

// Errors reported by the engine. None of them reach the end user; they are
// returned from builders and logged by the runtime paths.
var (
	// ErrMissingTarget means an element was nil, disposed or detached.
	ErrMissingTarget = errors.New("reveal: missing target")
	// ErrInvalidRange means a trigger resolved end <= start.
	ErrInvalidRange = errors.New("reveal: invalid scroll range")
	// ErrStaleBinding means an event reached a trigger or context that was
	// already torn down.
	ErrStaleBinding = errors.New("reveal: stale binding")
	// ErrUnknownProperty is returned by ParseProperty.
	ErrUnknownProperty = errors.New("reveal: unknown property")
	// ErrUnknownEase is returned by ParseEase.
	ErrUnknownEase = errors.New("reveal: unknown ease")
	// ErrBadOffset is returned by ParseOffset.
	ErrBadOffset = errors.New("reveal: bad offset")
	// ErrBadToggleActions is returned by ParseToggleActions.
	ErrBadToggleActions = errors.New("reveal: bad toggle actions")
)

// EventType identifies a trigger transition.
type EventType uint8

const (
	EventEnter     EventType = iota // scroll passed start moving forward
	EventLeave                      // scroll passed end moving forward
	EventEnterBack                  // scroll re-entered through end moving backward
	EventLeaveBack                  // scroll passed back above start
	EventRefresh                    // offsets recomputed after resize
)

var eventNames = [...]string{"enter", "leave", "enterBack", "leaveBack", "refresh"}

func (t EventType) String() string {
	if int(t) < len(eventNames) {
		return eventNames[t]
	}
	return "unknown"
}

// EventSink is the interface for optional ECS integration.
// When set on a Page, trigger events are forwarded to it.
type EventSink interface {
	EmitEvent(event TriggerEvent)
}

// TriggerEvent carries trigger transition data for the ECS bridge.
type TriggerEvent struct {
	Type      EventType
	TriggerID uint32
	ElementID uint32
	Name      string
	Progress  float64
	ScrollY   float64
}
