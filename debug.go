package reveal

import (
	"fmt"

	"go.uber.org/zap"
)

// globalDebug mirrors the most recently set Page debug flag so that element
// operations (which lack a Page pointer) can check it cheaply. Only valid
// with a single Page; multiple Pages with differing debug modes will
// reflect whichever called SetDebugMode last.
var globalDebug bool

// debugLogger receives the tree warnings emitted while globalDebug is set.
var debugLogger = zap.NewNop()

// debugCheckDisposed panics with a descriptive message when a disposed element
// is used in a tree operation. In release mode callers skip this entirely.
func debugCheckDisposed(e *Element, op string) {
	if e.disposed {
		panic(fmt.Sprintf("reveal debug: %s on disposed element %q (ID %d)", op, e.Name, e.ID))
	}
}

// debugCheckTreeDepth warns if tree depth exceeds the threshold.
const debugMaxTreeDepth = 32

func debugCheckTreeDepth(e *Element) {
	depth := 0
	for p := e; p != nil; p = p.Parent {
		depth++
	}
	if depth > debugMaxTreeDepth {
		debugLogger.Warn("tree depth exceeds threshold",
			zap.Int("depth", depth),
			zap.Int("threshold", debugMaxTreeDepth),
			zap.String("element", e.Name))
	}
}

// debugCheckChildCount warns if an element has more than 1000 children.
const debugMaxChildCount = 1000

func debugCheckChildCount(e *Element) {
	if len(e.children) > debugMaxChildCount {
		debugLogger.Warn("child count exceeds threshold",
			zap.String("element", e.Name),
			zap.Int("children", len(e.children)),
			zap.Int("threshold", debugMaxChildCount))
	}
}

// frameStats holds per-frame counters. Only logged when the page is in
// debug mode.
type frameStats struct {
	tickers  int
	triggers int
	contexts int
}

func (p *Page) debugLog(stats frameStats) {
	if !p.debug {
		return
	}
	p.engine.logger.Debug("frame",
		zap.Int("tickers", stats.tickers),
		zap.Int("triggers", stats.triggers),
		zap.Int("contexts", stats.contexts),
		zap.Float64("scrollY", p.viewport.ScrollY))
}
