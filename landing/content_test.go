package landing

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultContent(t *testing.T) {
	c := DefaultContent()
	if c.Brand == "" {
		t.Error("brand missing")
	}
	if len(c.Features.Items) != 6 || len(c.Stats) != 4 || len(c.Testimonials.Items) != 3 {
		t.Errorf("features %d, stats %d, testimonials %d",
			len(c.Features.Items), len(c.Stats), len(c.Testimonials.Items))
	}
	if c.Stats[1].Value != 98 || c.Stats[1].Unit != "%" {
		t.Errorf("stat 1 = %+v", c.Stats[1])
	}
}

const minimalContent = `
features:
  items: [{title: One}]
stats: [{value: 5, unit: X}]
testimonials:
  items: [{quote: Hi, author: A}]
footer:
  columns: [{title: Company}]
`

func TestLoadContentDefaultsOverlays(t *testing.T) {
	c, err := LoadContent([]byte(minimalContent))
	if err != nil {
		t.Fatal(err)
	}
	if c.Hero.Overlays != 3 {
		t.Errorf("Overlays = %d, want 3", c.Hero.Overlays)
	}
}

func TestLoadContentMissingLists(t *testing.T) {
	cases := map[string]string{
		"features":     `stats: [{value: 1}]`,
		"stats":        "features:\n  items: [{title: One}]",
		"testimonials": "features:\n  items: [{title: One}]\nstats: [{value: 1}]",
	}
	for name, data := range cases {
		if _, err := LoadContent([]byte(data)); !errors.Is(err, ErrInvalidContent) {
			t.Errorf("%s: err = %v, want ErrInvalidContent", name, err)
		}
	}
}

func TestLoadContentBadYAML(t *testing.T) {
	if _, err := LoadContent([]byte("features: [")); err == nil {
		t.Error("expected parse error")
	}
}

func TestReadContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "content.yaml")
	if err := os.WriteFile(path, []byte(minimalContent), 0o644); err != nil {
		t.Fatal(err)
	}
	c, err := ReadContent(path)
	if err != nil {
		t.Fatal(err)
	}
	if c.Features.Items[0].Title != "One" {
		t.Errorf("title = %q", c.Features.Items[0].Title)
	}
	if _, err := ReadContent(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for a missing file")
	}
}
