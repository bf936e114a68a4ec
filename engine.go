package reveal

import (
	"sync"

	"go.uber.org/zap"
)

// ticker is anything the per-frame loop advances. tick returns false once the
// ticker is finished for good; the engine then drops it.
type ticker interface {
	tick(dt float64) bool
}

// Engine is the animation runtime: the per-frame tick loop over timelines,
// counters and carousels, and the registry of scroll-bound triggers. One
// process-wide instance is available through Default; tests and programs
// that host several isolated pages create their own with NewEngine.
type Engine struct {
	logger   *zap.Logger
	tickers  []ticker
	ticking  bool
	registry *Registry
	clock    float64
}

// NewEngine creates an engine. A nil logger disables logging.
func NewEngine(logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.Named("reveal")
	return &Engine{
		logger:   logger,
		registry: newRegistry(logger),
	}
}

var (
	defaultEngine     *Engine
	defaultEngineOnce sync.Once
)

// Default returns the process-wide engine, creating it on first use.
func Default() *Engine {
	defaultEngineOnce.Do(func() {
		defaultEngine = NewEngine(nil)
	})
	return defaultEngine
}

// Logger returns the engine logger.
func (e *Engine) Logger() *zap.Logger { return e.logger }

// SetLogger replaces the engine logger. A nil logger disables logging.
func (e *Engine) SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	e.logger = l.Named("reveal")
	e.registry.logger = e.logger
}

// Registry returns the trigger registry.
func (e *Engine) Registry() *Registry { return e.registry }

// Clock returns the total time advanced through Update, in seconds.
func (e *Engine) Clock() float64 { return e.clock }

// Active returns the number of live tickers.
func (e *Engine) Active() int { return len(e.tickers) }

func (e *Engine) add(t ticker) {
	e.tickers = append(e.tickers, t)
}

// remove drops t immediately unless a tick is in progress, in which case the
// ticker's own finished flag makes the loop skip and drop it.
func (e *Engine) remove(t ticker) {
	if e.ticking {
		return
	}
	for i, c := range e.tickers {
		if c == t {
			copy(e.tickers[i:], e.tickers[i+1:])
			e.tickers[len(e.tickers)-1] = nil
			e.tickers = e.tickers[:len(e.tickers)-1]
			return
		}
	}
}

// Timeline creates a stopped timeline driven by this engine's tick loop.
func (e *Engine) Timeline(defaults Vars) *Timeline {
	tl := NewTimeline(defaults)
	e.add(tl)
	return tl
}

// FromTo creates and plays a single-group timeline.
func (e *Engine) FromTo(targets []*Element, from, to Props, v Vars) *Timeline {
	tl := e.Timeline(Vars{}).FromTo(targets, from, to, v)
	tl.Play()
	return tl
}

// To creates and plays a single-group timeline that starts from the targets'
// current values.
func (e *Engine) To(targets []*Element, to Props, v Vars) *Timeline {
	tl := e.Timeline(Vars{}).To(targets, to, v)
	tl.Play()
	return tl
}

// Update advances every ticker by dt seconds, then scrub smoothing. Tickers
// added during the pass start on the next frame.
func (e *Engine) Update(dt float64) {
	e.clock += dt
	e.ticking = true
	n := len(e.tickers)
	alive := e.tickers[:0]
	for i := 0; i < n; i++ {
		t := e.tickers[i]
		if t.tick(dt) {
			alive = append(alive, t)
		}
	}
	// Tickers appended during the loop live past index n.
	alive = append(alive, e.tickers[n:]...)
	for i := len(alive); i < len(e.tickers); i++ {
		e.tickers[i] = nil
	}
	e.tickers = alive
	e.ticking = false
	e.registry.tick(dt)
}
