package reveal

import (
	"fmt"
	"sort"
)

// Property names one animatable presentation field of an Element.
type Property uint8

const (
	PropX           Property = iota // horizontal offset
	PropY                           // vertical offset
	PropZ                           // depth offset
	PropScale                       // ScaleX and ScaleY together
	PropScaleX                      // horizontal scale
	PropScaleY                      // vertical scale
	PropRotation                    // in-plane rotation, degrees
	PropRotationY                   // perspective tilt, degrees
	PropAlpha                       // opacity
	PropBackgroundY                 // background-position Y, percent
	PropWidth                       // layout width (layout-affecting)
	PropValue                       // numeric text content
	numProperties
)

var propertyNames = [numProperties]string{
	"x", "y", "z", "scale", "scaleX", "scaleY", "rotation", "rotationY",
	"opacity", "backgroundPositionY", "width", "value",
}

func (p Property) String() string {
	if p < numProperties {
		return propertyNames[p]
	}
	return fmt.Sprintf("Property(%d)", uint8(p))
}

// propertyAliases accepts the CSS-flavored spellings content authors use.
var propertyAliases = map[string]Property{
	"rotate":      PropRotation,
	"rotateY":     PropRotationY,
	"alpha":       PropAlpha,
	"backgroundY": PropBackgroundY,
}

// ParseProperty resolves a property name such as "opacity" or "rotateY".
func ParseProperty(name string) (Property, error) {
	for i, n := range propertyNames {
		if n == name {
			return Property(i), nil
		}
	}
	if p, ok := propertyAliases[name]; ok {
		return p, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownProperty, name)
}

// Props maps properties to values. It is used for both the from and the to
// side of a keyframe.
type Props map[Property]float64

// Sorted returns the keys in declaration order so tweens build
// deterministically.
func (p Props) Sorted() []Property {
	keys := make([]Property, 0, len(p))
	for k := range p {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// ParseProps converts a string-keyed map (as decoded from YAML) to Props.
func ParseProps(m map[string]float64) (Props, error) {
	out := make(Props, len(m))
	for k, v := range m {
		p, err := ParseProperty(k)
		if err != nil {
			return nil, err
		}
		out[p] = v
	}
	return out, nil
}

// fields returns pointers to the float64 fields backing p. PropScale expands
// to both scale axes.
func (e *Element) fields(p Property) []*float64 {
	switch p {
	case PropX:
		return []*float64{&e.X}
	case PropY:
		return []*float64{&e.Y}
	case PropZ:
		return []*float64{&e.Z}
	case PropScale:
		return []*float64{&e.ScaleX, &e.ScaleY}
	case PropScaleX:
		return []*float64{&e.ScaleX}
	case PropScaleY:
		return []*float64{&e.ScaleY}
	case PropRotation:
		return []*float64{&e.Rotation}
	case PropRotationY:
		return []*float64{&e.RotationY}
	case PropAlpha:
		return []*float64{&e.Alpha}
	case PropBackgroundY:
		return []*float64{&e.BackgroundY}
	case PropWidth:
		return []*float64{&e.Width}
	case PropValue:
		return []*float64{&e.Value}
	}
	return nil
}

// Get returns the current value of p. PropScale reads ScaleX.
func (e *Element) Get(p Property) float64 {
	f := e.fields(p)
	if len(f) == 0 {
		return 0
	}
	return *f[0]
}

// Set writes v to p immediately.
func (e *Element) Set(p Property, v float64) {
	for _, f := range e.fields(p) {
		*f = v
	}
	if p == PropValue {
		e.syncText()
	}
	e.dirty = true
}

// Apply writes every entry of props.
func (e *Element) Apply(props Props) {
	for _, p := range props.Sorted() {
		e.Set(p, props[p])
	}
}
