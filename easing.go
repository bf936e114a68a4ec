package reveal

import (
	"fmt"
	"strings"

	"github.com/tanema/gween/ease"
)

// DefaultEase is used when Vars.Ease is nil.
var DefaultEase ease.TweenFunc = ease.OutQuad

// easeFamilies maps a curve family to its in/out/inOut gween functions.
// The powerN names follow the usual convention: power1 = quad, power2 = cubic,
// power3 = quart, power4 = quint.
// gween evaluates these in float32, so an interpolated value can differ from
// the exact curve by about one part in 10^7 (33.333336 for a third of 100).
var easeFamilies = map[string][3]ease.TweenFunc{
	"power1":  {ease.InQuad, ease.OutQuad, ease.InOutQuad},
	"quad":    {ease.InQuad, ease.OutQuad, ease.InOutQuad},
	"power2":  {ease.InCubic, ease.OutCubic, ease.InOutCubic},
	"cubic":   {ease.InCubic, ease.OutCubic, ease.InOutCubic},
	"power3":  {ease.InQuart, ease.OutQuart, ease.InOutQuart},
	"quart":   {ease.InQuart, ease.OutQuart, ease.InOutQuart},
	"power4":  {ease.InQuint, ease.OutQuint, ease.InOutQuint},
	"quint":   {ease.InQuint, ease.OutQuint, ease.InOutQuint},
	"sine":    {ease.InSine, ease.OutSine, ease.InOutSine},
	"expo":    {ease.InExpo, ease.OutExpo, ease.InOutExpo},
	"circ":    {ease.InCirc, ease.OutCirc, ease.InOutCirc},
	"back":    {ease.InBack, ease.OutBack, ease.InOutBack},
	"elastic": {ease.InElastic, ease.OutElastic, ease.InOutElastic},
	"bounce":  {ease.InBounce, ease.OutBounce, ease.InOutBounce},
}

// ParseEase resolves an ease name such as "power3.out", "sine.inOut" or
// "back.out(1.7)". Parameters in parentheses are accepted and ignored; the
// gween curves use their standard constants. A bare family name means ".out".
func ParseEase(name string) (ease.TweenFunc, error) {
	name = strings.TrimSpace(name)
	if i := strings.IndexByte(name, '('); i >= 0 {
		name = name[:i]
	}
	switch name {
	case "", "none", "linear":
		return ease.Linear, nil
	}
	family, dir, found := strings.Cut(name, ".")
	if !found {
		dir = "out"
	}
	fns, ok := easeFamilies[family]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEase, name)
	}
	switch dir {
	case "in":
		return fns[0], nil
	case "out":
		return fns[1], nil
	case "inOut":
		return fns[2], nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownEase, name)
}

// MustEase is ParseEase for compile-time constant names. Panics on error.
func MustEase(name string) ease.TweenFunc {
	fn, err := ParseEase(name)
	if err != nil {
		panic(err)
	}
	return fn
}
