package landing

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed content.yaml
var defaultContent []byte

// ErrInvalidContent is returned when content is missing a required list.
var ErrInvalidContent = errors.New("landing: invalid content")

// Content is the copy the page is built from.
type Content struct {
	Brand        string              `yaml:"brand"`
	Nav          []string            `yaml:"nav"`
	Hero         HeroContent         `yaml:"hero"`
	Features     FeaturesContent     `yaml:"features"`
	Stats        []Stat              `yaml:"stats"`
	Testimonials TestimonialsContent `yaml:"testimonials"`
	CTA          CTAContent          `yaml:"cta"`
	Footer       FooterContent       `yaml:"footer"`
}

type HeroContent struct {
	Heading   string `yaml:"heading"`
	Paragraph string `yaml:"paragraph"`
	Button    string `yaml:"button"`
	Overlays  int    `yaml:"overlays"`
	Floating  int    `yaml:"floating"`
}

type FeaturesContent struct {
	Heading     string    `yaml:"heading"`
	Decorations int       `yaml:"decorations"`
	Items       []Feature `yaml:"items"`
}

type Feature struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

// Stat is one counted figure; Unit is appended to the number ("98%").
type Stat struct {
	Value       float64 `yaml:"value"`
	Unit        string  `yaml:"unit"`
	Description string  `yaml:"description"`
}

type TestimonialsContent struct {
	Layers int           `yaml:"layers"`
	Items  []Testimonial `yaml:"items"`
}

type Testimonial struct {
	Quote  string `yaml:"quote"`
	Author string `yaml:"author"`
	Role   string `yaml:"role"`
}

type CTAContent struct {
	Heading   string `yaml:"heading"`
	Paragraph string `yaml:"paragraph"`
	Button    string `yaml:"button"`
}

type FooterContent struct {
	Tagline   string         `yaml:"tagline"`
	Columns   []FooterColumn `yaml:"columns"`
	Copyright string         `yaml:"copyright"`
}

type FooterColumn struct {
	Title string   `yaml:"title"`
	Links []string `yaml:"links"`
}

// LoadContent parses YAML content and checks that every animated list is
// present.
func LoadContent(data []byte) (*Content, error) {
	var c Content
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("load content: %w", err)
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// ReadContent loads content from a YAML file.
func ReadContent(path string) (*Content, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read content: %w", err)
	}
	return LoadContent(data)
}

// DefaultContent returns the embedded content. Panics if it does not parse.
func DefaultContent() *Content {
	c, err := LoadContent(defaultContent)
	if err != nil {
		panic(err)
	}
	return c
}

func (c *Content) validate() error {
	switch {
	case len(c.Features.Items) == 0:
		return fmt.Errorf("%w: no features", ErrInvalidContent)
	case len(c.Stats) == 0:
		return fmt.Errorf("%w: no stats", ErrInvalidContent)
	case len(c.Testimonials.Items) == 0:
		return fmt.Errorf("%w: no testimonials", ErrInvalidContent)
	case len(c.Footer.Columns) == 0:
		return fmt.Errorf("%w: no footer columns", ErrInvalidContent)
	}
	if c.Hero.Overlays <= 0 {
		c.Hero.Overlays = 3
	}
	return nil
}
