package reveal

import (
	"fmt"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// testStep represents a single action in a test script.
type testStep struct {
	Action string  `yaml:"action"`
	Label  string  `yaml:"label,omitempty"`
	Y      float64 `yaml:"y,omitempty"`
	From   float64 `yaml:"from,omitempty"`
	To     float64 `yaml:"to,omitempty"`
	Width  float64 `yaml:"width,omitempty"`
	Height float64 `yaml:"height,omitempty"`
	Frames int     `yaml:"frames,omitempty"`
}

// testScript is the top-level structure for a test script. YAML is the
// native format; JSON scripts parse too.
type testScript struct {
	Steps []testStep `yaml:"steps"`
}

// Checkpoint is the page state recorded by a "checkpoint" step.
type Checkpoint struct {
	Label    string  `yaml:"label"`
	ScrollY  float64 `yaml:"scrollY"`
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	Triggers int     `yaml:"triggers"`
	Reloads  int     `yaml:"reloads"`
}

// TestRunner sequences injected scroll and resize events across frames for
// automated testing. Attach to a Page via SetTestRunner.
type TestRunner struct {
	steps       []testStep
	cursor      int
	waitCount   int
	done        bool
	checkpoints []Checkpoint
}

// LoadTestScript parses a test script and returns a TestRunner ready to be
// attached to a Page via SetTestRunner.
func LoadTestScript(data []byte) (*TestRunner, error) {
	var script testScript
	if err := yaml.Unmarshal(data, &script); err != nil {
		return nil, fmt.Errorf("parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse test script: no steps")
	}
	for i, st := range script.Steps {
		switch st.Action {
		case "scroll", "scrollBy", "sweep", "resize", "wait", "checkpoint":
		default:
			return nil, fmt.Errorf("parse test script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &TestRunner{steps: script.Steps}, nil
}

// SetTestRunner attaches a TestRunner to the page. The runner's step method
// is called from Page.Update before injected input is processed each frame.
func (p *Page) SetTestRunner(runner *TestRunner) {
	p.testRunner = runner
}

// Done reports whether all steps in the test script have been executed.
func (r *TestRunner) Done() bool {
	return r.done
}

// Checkpoints returns the states recorded so far.
func (r *TestRunner) Checkpoints() []Checkpoint {
	return r.checkpoints
}

// step advances the test runner by one frame. Called from Page.Update.
func (r *TestRunner) step(p *Page) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if len(p.injectQueue) > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "checkpoint":
		cp := Checkpoint{
			Label:    st.Label,
			ScrollY:  p.viewport.ScrollY,
			Width:    p.viewport.Width,
			Height:   p.viewport.Height,
			Triggers: p.Triggers(),
			Reloads:  p.reloads,
		}
		r.checkpoints = append(r.checkpoints, cp)
		p.engine.logger.Info("checkpoint",
			zap.String("label", cp.Label),
			zap.Float64("scrollY", cp.ScrollY),
			zap.Int("triggers", cp.Triggers))
	case "scroll":
		p.InjectScroll(st.Y)
	case "scrollBy":
		p.InjectScrollBy(st.Y)
	case "sweep":
		p.InjectSweep(st.From, st.To, st.Frames)
	case "resize":
		p.InjectResize(st.Width, st.Height)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(p.injectQueue) == 0 {
		r.done = true
	}
}
