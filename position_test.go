package reveal

import (
	"errors"
	"testing"
)

func TestParseOffset(t *testing.T) {
	cases := []struct {
		in   string
		want ScrollOffset
	}{
		{"top 80%", Edge(0, 0.8)},
		{"top top", Edge(0, 0)},
		{"center center", Edge(0.5, 0.5)},
		{"bottom top", Edge(1, 0)},
		{"top", Edge(0, 0)},
		{"25% 75%", Edge(0.25, 0.75)},
		{"  top 90%  ", Edge(0, 0.9)},
	}
	for _, c := range cases {
		got, err := ParseOffset(c.in)
		if err != nil {
			t.Errorf("ParseOffset(%q): %v", c.in, err)
			continue
		}
		if got.Element != c.want.Element || got.Viewport != c.want.Viewport || got.Relative {
			t.Errorf("ParseOffset(%q) = %+v, want %+v", c.in, got, c.want)
		}
	}
}

func TestParseOffsetPixelsAndRelative(t *testing.T) {
	o := MustOffset("bottom 100px")
	if o.Element != 1 || o.ViewportPx != 100 {
		t.Errorf("bottom 100px = %+v", o)
	}
	o = MustOffset("+=500")
	if !o.Relative || o.Distance != 500 {
		t.Errorf("+=500 = %+v", o)
	}
	o = MustOffset("-=120px")
	if !o.Relative || o.Distance != -120 {
		t.Errorf("-=120px = %+v", o)
	}
}

func TestParseOffsetErrors(t *testing.T) {
	for _, in := range []string{"", "top 80% extra", "middle 50%", "top tall", "+=far"} {
		if _, err := ParseOffset(in); !errors.Is(err, ErrBadOffset) {
			t.Errorf("ParseOffset(%q) err = %v, want ErrBadOffset", in, err)
		}
	}
}

func TestMustOffsetPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	MustOffset("nowhere")
}

func TestOffsetResolve(t *testing.T) {
	trigger := Rect{Y: 1000, Height: 400}

	assertNear(t, "top 80%", MustOffset("top 80%").resolve(trigger, 800, 0), 360)
	assertNear(t, "top top", MustOffset("top top").resolve(trigger, 800, 0), 1000)
	assertNear(t, "bottom top", MustOffset("bottom top").resolve(trigger, 800, 0), 1400)
	assertNear(t, "center center", MustOffset("center center").resolve(trigger, 800, 0), 800)
	assertNear(t, "bottom 100px", MustOffset("bottom 100px").resolve(trigger, 800, 0), 1300)
	assertNear(t, "+=500", MustOffset("+=500").resolve(trigger, 800, 1000), 1500)
}

func TestAfterFuncRecomputes(t *testing.T) {
	width := 2000.0
	o := AfterFunc(func() float64 { return width })
	assertNear(t, "first", o.resolve(Rect{}, 800, 100), 2100)
	width = 1500
	assertNear(t, "second", o.resolve(Rect{}, 800, 100), 1600)
}

func TestOffsetString(t *testing.T) {
	for _, s := range []string{"top 80%", "center top", "bottom 100px", "+=500"} {
		if got := MustOffset(s).String(); got != s {
			t.Errorf("String(%q) = %q", s, got)
		}
	}
	if got := MustOffset("top").String(); got != "top top" {
		t.Errorf("String(top) = %q", got)
	}
}

func TestOffsetIsZero(t *testing.T) {
	if !(ScrollOffset{}).IsZero() {
		t.Error("zero value should report IsZero")
	}
	if Edge(0, 0).IsZero() {
		t.Error("Edge(0, 0) is set")
	}
}
