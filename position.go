package reveal

import (
	"fmt"
	"strconv"
	"strings"
)

// ScrollOffset locates a trigger boundary. The absolute form pairs a point on
// the trigger element with a point on the viewport: "top 80%" means the
// boundary is crossed when the trigger's top edge reaches 80% of the viewport
// height. The relative form ("+=500", or a function) measures a distance from
// the trigger's resolved start.
type ScrollOffset struct {
	Element    float64 // fraction of trigger height: top 0, center 0.5, bottom 1
	ElementPx  float64
	Viewport   float64 // fraction of viewport height
	ViewportPx float64

	Relative bool
	Distance float64
	Func     func() float64 // added to Distance on every refresh

	set bool
}

// IsZero reports whether the offset was left unset.
func (o ScrollOffset) IsZero() bool { return !o.set }

// Edge builds an absolute offset from fractions.
func Edge(element, viewport float64) ScrollOffset {
	return ScrollOffset{Element: element, Viewport: viewport, set: true}
}

// After builds a relative offset distance pixels past the start.
func After(distance float64) ScrollOffset {
	return ScrollOffset{Relative: true, Distance: distance, set: true}
}

// AfterFunc builds a relative offset recomputed by fn on every refresh.
func AfterFunc(fn func() float64) ScrollOffset {
	return ScrollOffset{Relative: true, Func: fn, set: true}
}

// ParseOffset parses "top 80%", "center top", "bottom 100px", "top" or
// "+=500".
func ParseOffset(s string) (ScrollOffset, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return ScrollOffset{}, fmt.Errorf("%w: empty", ErrBadOffset)
	}
	if strings.HasPrefix(s, "+=") || strings.HasPrefix(s, "-=") {
		v, err := parseLength(s[2:])
		if err != nil {
			return ScrollOffset{}, fmt.Errorf("%w: %q", ErrBadOffset, s)
		}
		if s[0] == '-' {
			v = -v
		}
		return After(v), nil
	}
	parts := strings.Fields(s)
	if len(parts) > 2 {
		return ScrollOffset{}, fmt.Errorf("%w: %q", ErrBadOffset, s)
	}
	o := ScrollOffset{set: true}
	var err error
	if o.Element, o.ElementPx, err = parseEdge(parts[0]); err != nil {
		return ScrollOffset{}, fmt.Errorf("%w: %q", ErrBadOffset, s)
	}
	if len(parts) == 2 {
		if o.Viewport, o.ViewportPx, err = parseEdge(parts[1]); err != nil {
			return ScrollOffset{}, fmt.Errorf("%w: %q", ErrBadOffset, s)
		}
	}
	return o, nil
}

// MustOffset is ParseOffset for constant strings. Panics on error.
func MustOffset(s string) ScrollOffset {
	o, err := ParseOffset(s)
	if err != nil {
		panic(err)
	}
	return o
}

// parseEdge returns (fraction, pixels) for a keyword, percentage or length.
func parseEdge(tok string) (float64, float64, error) {
	switch tok {
	case "top", "left":
		return 0, 0, nil
	case "center":
		return 0.5, 0, nil
	case "bottom", "right":
		return 1, 0, nil
	}
	if strings.HasSuffix(tok, "%") {
		v, err := strconv.ParseFloat(strings.TrimSuffix(tok, "%"), 64)
		if err != nil {
			return 0, 0, err
		}
		return v / 100, 0, nil
	}
	v, err := parseLength(tok)
	return 0, v, err
}

func parseLength(tok string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSuffix(tok, "px"), 64)
}

// resolve converts the offset to a page scroll position. start is only used
// by relative offsets.
func (o ScrollOffset) resolve(trigger Rect, viewportHeight, start float64) float64 {
	if o.Relative {
		d := o.Distance
		if o.Func != nil {
			d += o.Func()
		}
		return start + d
	}
	return trigger.Y + o.Element*trigger.Height + o.ElementPx -
		(o.Viewport*viewportHeight + o.ViewportPx)
}

// String renders the offset back to its textual form.
func (o ScrollOffset) String() string {
	if o.Relative {
		return "+=" + strconv.FormatFloat(o.Distance, 'f', -1, 64)
	}
	return edgeString(o.Element, o.ElementPx) + " " + edgeString(o.Viewport, o.ViewportPx)
}

func edgeString(frac, px float64) string {
	if px != 0 {
		return strconv.FormatFloat(px, 'f', -1, 64) + "px"
	}
	switch frac {
	case 0:
		return "top"
	case 0.5:
		return "center"
	case 1:
		return "bottom"
	}
	return strconv.FormatFloat(frac*100, 'f', -1, 64) + "%"
}
