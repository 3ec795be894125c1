package sideaxes

import (
	"io"

	"github.com/charmbracelet/log"
)

// debugLog traces synchronization passes. Discarded unless enabled with
// SetDebugOutput.
var debugLog = newDebugLogger(io.Discard)

func newDebugLogger(w io.Writer) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Level:  log.DebugLevel,
		Prefix: "sideaxes",
	})
}

// SetDebugOutput directs synchronization tracing to w, e.g. os.Stderr.
// A nil w turns tracing off again.
func SetDebugOutput(w io.Writer) {
	if w == nil {
		w = io.Discard
	}
	debugLog = newDebugLogger(w)
}

// A Link keeps one screen coordinate of a child view synchronized with
// its parent: after every change of the parent's limits, scale,
// direction or rotation the corresponding state is copied onto the
// child, with the range direction reversed if the net orientation of the
// two views differs. A link only ever reads the parent and writes the
// child, so update flow is acyclic even across chains of side views.
type Link struct {
	parent, child *View
	shared        ScreenCoord
	sub           *Subscription
}

// newLink runs one synchronization pass and then subscribes to the
// parent's changes.
func newLink(parent, child *View, shared ScreenCoord) *Link {
	l := &Link{parent: parent, child: child, shared: shared}
	l.Sync()
	l.sub = parent.OnChange(l.onChange)
	return l
}

func (l *Link) onChange(c Change) {
	switch c.Prop {
	case PropLimits, PropScale, PropDirection, PropRotation:
		l.Sync()
	}
}

// Sync performs one synchronization pass. It is idempotent, and a silent
// no-op once parent or child is gone.
func (l *Link) Sync() {
	if l.parent == nil || !l.parent.Alive() || !l.child.Alive() {
		return
	}

	// Which semantic axis renders along the shared coordinate can change
	// with every rotation, so it is resolved anew on every pass, for
	// parent and child independently.
	pAx, pSign := findAxis(l.parent.rot, l.shared)
	cAx, cSign := findAxis(l.child.rot, l.shared)

	pa := l.parent.axes[pAx]
	dir := pa.Dir
	if pSign*cSign < 0 {
		dir = dir.Flip()
	}

	// Going through the setters notifies the child's own subscribers, so
	// side views of side views stay synchronized too.
	l.child.SetScale(cAx, pa.Scale)
	l.child.SetLimits(cAx, pa.Limits)
	l.child.SetDir(cAx, dir)

	debugLog.Debug("sync",
		"shared", l.shared,
		"parent", pAx, "child", cAx,
		"limits", pa.Limits, "scale", pa.Scale, "dir", dir)
}

// Close detaches l from its parent; subsequent parent changes no longer
// reach the child. Close is idempotent.
func (l *Link) Close() {
	if l.sub != nil {
		l.sub.Close()
		l.sub = nil
	}
	l.parent = nil
}
