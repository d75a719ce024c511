package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type pointerKind int

const (
	pointerDown pointerKind = iota
	pointerMove
	pointerUp
)

func (k pointerKind) String() string {
	switch k {
	case pointerDown:
		return "down"
	case pointerMove:
		return "move"
	case pointerUp:
		return "up"
	}
	return "unknown"
}

type pointerEvent struct {
	kind pointerKind
	x, y float64

	// atLast resolves the position when the event is consumed.
	atLast bool
}

// pointerTracker turns mouse and touch state into down/move/up events for a
// single pointer. The left mouse button wins; otherwise the first touch that
// lands is followed until it lifts.
type pointerTracker struct {
	held         bool
	touch        bool
	touchID      ebiten.TouchID
	lastX, lastY float64

	// Synthetic events are consumed one per frame and replace real input
	// for that frame.
	injected []pointerEvent

	// releaseEdge reports a real release of the held pointer this frame.
	// Nil reads it from inpututil.
	releaseEdge func(touch bool, id ebiten.TouchID) bool

	touchBuf []ebiten.TouchID
}

// inject queues a synthetic event.
func (p *pointerTracker) inject(evt pointerEvent) {
	p.injected = append(p.injected, evt)
}

// pendingInjected reports how many synthetic events are still queued.
func (p *pointerTracker) pendingInjected() int {
	return len(p.injected)
}

// poll returns the pointer events of the current frame.
func (p *pointerTracker) poll(out []pointerEvent) []pointerEvent {
	if len(p.injected) > 0 {
		// A real release is only reported for one tick, so it is honored
		// even in frames that replay a synthetic event.
		if p.held && p.realRelease() {
			out = p.track(out, pointerEvent{kind: pointerUp, x: p.lastX, y: p.lastY})
		}
		evt := p.injected[0]
		copy(p.injected, p.injected[1:])
		p.injected = p.injected[:len(p.injected)-1]
		if evt.atLast {
			evt.x, evt.y, evt.atLast = p.lastX, p.lastY, false
		}
		return p.track(out, evt)
	}

	if !p.held || !p.touch {
		mx, my := ebiten.CursorPosition()
		x, y := float64(mx), float64(my)
		switch {
		case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
			return p.track(out, pointerEvent{kind: pointerDown, x: x, y: y})
		case p.held && inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft):
			return p.track(out, pointerEvent{kind: pointerUp, x: x, y: y})
		case p.held && (x != p.lastX || y != p.lastY):
			return p.track(out, pointerEvent{kind: pointerMove, x: x, y: y})
		}
	}

	if p.held && p.touch {
		if inpututil.IsTouchJustReleased(p.touchID) {
			return p.track(out, pointerEvent{kind: pointerUp, x: p.lastX, y: p.lastY})
		}
		tx, ty := ebiten.TouchPosition(p.touchID)
		x, y := float64(tx), float64(ty)
		if x != p.lastX || y != p.lastY {
			return p.track(out, pointerEvent{kind: pointerMove, x: x, y: y})
		}
		return out
	}

	if !p.held {
		p.touchBuf = inpututil.AppendJustPressedTouchIDs(p.touchBuf[:0])
		if len(p.touchBuf) > 0 {
			id := p.touchBuf[0]
			tx, ty := ebiten.TouchPosition(id)
			out = p.track(out, pointerEvent{kind: pointerDown, x: float64(tx), y: float64(ty)})
			p.touch = true
			p.touchID = id
		}
	}
	return out
}

func (p *pointerTracker) realRelease() bool {
	if p.releaseEdge != nil {
		return p.releaseEdge(p.touch, p.touchID)
	}
	if p.touch {
		return inpututil.IsTouchJustReleased(p.touchID)
	}
	return inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)
}

// track updates the held state for evt and appends it to out. A second down
// while held is reported as a release first so that the consumer always sees
// balanced pairs.
func (p *pointerTracker) track(out []pointerEvent, evt pointerEvent) []pointerEvent {
	switch evt.kind {
	case pointerDown:
		if p.held {
			out = append(out, pointerEvent{kind: pointerUp, x: p.lastX, y: p.lastY})
		}
		p.held = true
		p.touch = false
	case pointerMove:
		if !p.held {
			p.lastX, p.lastY = evt.x, evt.y
			return out
		}
	case pointerUp:
		if !p.held {
			return out
		}
		p.held = false
		p.touch = false
	}
	p.lastX, p.lastY = evt.x, evt.y
	return append(out, evt)
}
