package reveal

import (
	"math"
	"strconv"
)

// elementIDCounter is a plain counter; reveal is single-threaded.
var elementIDCounter uint32

func nextElementID() uint32 {
	elementIDCounter++
	return elementIDCounter
}

// Element is one presentational box of the page. Layout geometry (Bounds,
// ScrollWidth) is owned by whoever builds the page; the presentation fields
// below it are what animations mutate.
type Element struct {
	// Identity
	ID   uint32
	Name string

	// Hierarchy
	Parent   *Element
	children []*Element

	// Layout, in page space, before any presentation offsets.
	Bounds Rect
	// ScrollWidth is the width of the element's content. Zero means the
	// content fits in Bounds.
	ScrollWidth float64

	// Presentation
	X, Y, Z     float64
	ScaleX      float64
	ScaleY      float64
	Rotation    float64 // degrees, around the element center
	RotationY   float64 // degrees, perspective tilt
	Alpha       float64
	BackgroundY float64 // background-position Y, percent

	// Width is layout-affecting; only pinned horizontal sequences touch it.
	Width float64

	// Numeric text content. Text is rendered as Value followed by Suffix
	// whenever Value is animated.
	Value  float64
	Suffix string
	Text   string

	// PinOffset is the vertical distance the element travels with the
	// viewport while pinned by a scroll trigger.
	PinOffset float64

	Color   Color
	Visible bool

	// Fixed elements ignore the scroll position when drawn.
	Fixed    bool
	UserData any

	worldTransform [6]float64
	worldAlpha     float64

	root     bool
	disposed bool
	dirty    bool
}

// NewElement creates an element with the given page-space layout box.
func NewElement(name string, bounds Rect) *Element {
	return &Element{
		ID:      nextElementID(),
		Name:    name,
		Bounds:  bounds,
		ScaleX:  1,
		ScaleY:  1,
		Alpha:   1,
		Width:   bounds.Width,
		Color:   ColorWhite,
		Visible: true,
		dirty:   true,
	}
}

// newRoot creates the document element a Page owns. Elements are attached
// only while they hang off a root.
func newRoot(width, height float64) *Element {
	e := NewElement("document", Rect{Width: width, Height: height})
	e.root = true
	return e
}

// --- Tree manipulation ---

// AddChild appends child to this element's children.
// If child already has a parent, it is removed from that parent first.
// Panics if child is nil or child is an ancestor of this element (cycle).
func (e *Element) AddChild(child *Element) {
	if child == nil {
		panic("reveal: cannot add nil child")
	}
	if globalDebug {
		debugCheckDisposed(e, "AddChild (parent)")
		debugCheckDisposed(child, "AddChild (child)")
	}
	if isAncestor(child, e) {
		panic("reveal: adding child would create a cycle")
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
	}
	child.Parent = e
	e.children = append(e.children, child)
	child.MarkDirty()
	if globalDebug {
		debugCheckTreeDepth(child)
		debugCheckChildCount(e)
	}
}

// RemoveChild detaches child from this element.
// Panics if child.Parent != e.
func (e *Element) RemoveChild(child *Element) {
	if child.Parent != e {
		panic("reveal: child's parent is not this element")
	}
	e.removeChildByPtr(child)
	child.Parent = nil
}

// RemoveFromParent detaches this element from its parent.
// No-op if this element has no parent.
func (e *Element) RemoveFromParent() {
	if e.Parent == nil {
		return
	}
	e.Parent.RemoveChild(e)
}

// RemoveChildren detaches all children. Children are NOT disposed.
func (e *Element) RemoveChildren() {
	for _, child := range e.children {
		child.Parent = nil
	}
	e.children = e.children[:0]
}

// Children returns the child list. The returned slice MUST NOT be mutated by the caller.
func (e *Element) Children() []*Element {
	return e.children
}

// NumChildren returns the number of children.
func (e *Element) NumChildren() int {
	return len(e.children)
}

// Find returns the first descendant (depth-first, self included) with the
// given name, or nil.
func (e *Element) Find(name string) *Element {
	if e.Name == name {
		return e
	}
	for _, c := range e.children {
		if f := c.Find(name); f != nil {
			return f
		}
	}
	return nil
}

// FindAll returns every descendant whose name has the given prefix, in tree
// order. The element itself is not included.
func (e *Element) FindAll(prefix string) []*Element {
	var out []*Element
	var walk func(n *Element)
	walk = func(n *Element) {
		for _, c := range n.children {
			if len(c.Name) >= len(prefix) && c.Name[:len(prefix)] == prefix {
				out = append(out, c)
			}
			walk(c)
		}
	}
	walk(e)
	return out
}

// --- Disposal ---

// Dispose removes this element from its parent, marks it as disposed,
// and recursively disposes all descendants.
func (e *Element) Dispose() {
	if e.disposed {
		return
	}
	e.RemoveFromParent()
	e.dispose()
}

func (e *Element) dispose() {
	e.disposed = true
	for _, child := range e.children {
		child.Parent = nil
		child.dispose()
	}
	e.children = nil
	e.Parent = nil
	e.UserData = nil
}

// IsDisposed returns true if this element has been disposed.
func (e *Element) IsDisposed() bool {
	return e.disposed
}

// IsAttached reports whether the element hangs off a live document root.
// Animations never write to an element that is not attached.
func (e *Element) IsAttached() bool {
	if e == nil || e.disposed {
		return false
	}
	p := e
	for p.Parent != nil {
		p = p.Parent
	}
	return p.root && !p.disposed
}

// --- Presentation helpers ---

// MarkDirty flags the element for re-render.
func (e *Element) MarkDirty() {
	e.dirty = true
}

// Dirty reports whether the element changed since the last ClearDirty.
func (e *Element) Dirty() bool {
	return e.dirty
}

// ClearDirty resets the dirty flag. Renderers call it after a repaint.
func (e *Element) ClearDirty() {
	e.dirty = false
}

// SetBounds moves the layout box and resets Width to match it.
func (e *Element) SetBounds(r Rect) {
	e.Bounds = r
	e.Width = r.Width
	e.dirty = true
}

// ContentWidth returns ScrollWidth, or the layout width when no wider content
// was declared.
func (e *Element) ContentWidth() float64 {
	if e.ScrollWidth > 0 {
		return e.ScrollWidth
	}
	return e.Bounds.Width
}

// SetValue sets the numeric text content and refreshes Text.
func (e *Element) SetValue(v float64) {
	e.Value = v
	e.syncText()
	e.dirty = true
}

func (e *Element) syncText() {
	e.Text = strconv.FormatInt(int64(math.Floor(e.Value)), 10) + e.Suffix
}

// --- Helpers ---

// isAncestor reports whether candidate is an ancestor of element.
func isAncestor(candidate, element *Element) bool {
	for p := element; p != nil; p = p.Parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// removeChildByPtr removes child from e.children without clearing child.Parent.
// Uses copy+nil to avoid retaining a dangling pointer in the backing array.
func (e *Element) removeChildByPtr(child *Element) {
	for i, c := range e.children {
		if c == child {
			copy(e.children[i:], e.children[i+1:])
			e.children[len(e.children)-1] = nil
			e.children = e.children[:len(e.children)-1]
			return
		}
	}
}
