package ripple

import (
	"math"
	"time"
)

// MaxCatchUp bounds how many overdue spawns a single Poll may fire. Spawns
// further behind than that are skipped, keeping the schedule on its grid.
const MaxCatchUp = 32

// Spawner receives the waves created by a Scheduler.
type Spawner interface {
	Spawn(x, y float64)
}

// Origin is the live pointer position of a session.
type Origin struct {
	X, Y float64
}

// Set moves the origin.
func (o *Origin) Set(x, y float64) {
	o.X, o.Y = x, y
}

// Session is one continuous press.
type Session struct {
	ID     uint64
	Start  time.Time
	Origin *Origin

	anchor   time.Time
	interval time.Duration
	fired    int
}

// pendingSpawn is the single queued emission. It remembers which session
// queued it so a spawn outliving its session can be recognised and dropped.
type pendingSpawn struct {
	session uint64
	due     time.Time
}

// Scheduler emits waves into a Spawner at a fixed frequency while a session
// is active. Spawn k of a session is due at Start + k*interval; lateness of
// one Poll never shifts the later ones.
type Scheduler struct {
	sink    Spawner
	nextID  uint64
	active  *Session
	pending *pendingSpawn
}

// NewScheduler returns an idle scheduler feeding sink.
func NewScheduler(sink Spawner) *Scheduler {
	return &Scheduler{sink: sink}
}

// Interval returns the spacing between spawns for a frequency in Hz. It
// reports false for frequencies that cannot drive a schedule.
func Interval(frequency float64) (time.Duration, bool) {
	if !(frequency > 0) || math.IsInf(frequency, 1) {
		return 0, false
	}
	d := time.Duration(float64(time.Second) / frequency)
	if d <= 0 {
		return 0, false
	}
	return d, true
}

// Start opens a new session at (x, y), superseding any active one, and
// emits the first wave immediately.
func (s *Scheduler) Start(now time.Time, x, y, frequency float64) *Session {
	s.Stop()

	s.nextID++
	sess := &Session{
		ID:     s.nextID,
		Start:  now,
		Origin: &Origin{X: x, Y: y},
		anchor: now,
	}
	s.active = sess
	s.sink.Spawn(x, y)

	if interval, ok := Interval(frequency); ok {
		sess.interval = interval
		s.pending = &pendingSpawn{session: sess.ID, due: now.Add(interval)}
	}
	return sess
}

// Move updates the origin used by later spawns of the active session.
// Waves already emitted keep their own origin.
func (s *Scheduler) Move(x, y float64) {
	if s.active == nil {
		return
	}
	s.active.Origin.Set(x, y)
}

// Stop ends the active session. The queued spawn is dropped with it, so
// nothing is emitted for that session afterwards.
func (s *Scheduler) Stop() {
	if s.active != nil {
		s.active.Origin.Set(0, 0)
	}
	s.active = nil
	s.pending = nil
}

// Active reports whether a session is in progress.
func (s *Scheduler) Active() bool {
	return s.active != nil
}

// Session returns the active session, or nil when idle.
func (s *Scheduler) Session() *Session {
	return s.active
}

// NextDue returns when the queued spawn fires.
func (s *Scheduler) NextDue() (time.Time, bool) {
	if s.pending == nil || s.active == nil {
		return time.Time{}, false
	}
	return s.pending.due, true
}

// Poll fires every spawn that is due at now and returns how many waves it
// emitted. A frequency change applies from the next scheduling decision: the
// grid is re-anchored at the spawn that was just fired.
func (s *Scheduler) Poll(now time.Time, frequency float64) int {
	sess := s.active
	if sess == nil {
		return 0
	}
	interval, ok := Interval(frequency)
	if !ok {
		// Hold the queued spawn until a usable frequency returns.
		return 0
	}
	if s.pending == nil {
		// The session started with an unusable frequency; begin the grid now.
		sess.anchor, sess.fired, sess.interval = now, 0, interval
		s.pending = &pendingSpawn{session: sess.ID, due: now.Add(interval)}
		return 0
	}

	emitted := 0
	for s.pending != nil && !now.Before(s.pending.due) {
		if s.pending.session != sess.ID {
			s.pending = nil
			break
		}
		if emitted == MaxCatchUp {
			s.skipOverdue(now)
			break
		}
		s.sink.Spawn(sess.Origin.X, sess.Origin.Y)
		emitted++
		s.schedule(interval)
	}
	return emitted
}

// schedule queues the spawn after the one that just fired.
func (s *Scheduler) schedule(interval time.Duration) {
	sess := s.active
	fired := s.pending.due
	sess.fired++
	if interval != sess.interval {
		sess.anchor = fired
		sess.fired = 0
		sess.interval = interval
	}
	s.pending.due = sess.anchor.Add(time.Duration(sess.fired+1) * sess.interval)
}

// skipOverdue moves the queued spawn to the first grid slot after now
// without emitting the ones in between.
func (s *Scheduler) skipOverdue(now time.Time) {
	sess := s.active
	behind := int(now.Sub(sess.anchor) / sess.interval)
	if behind > sess.fired {
		sess.fired = behind
	}
	s.pending.due = sess.anchor.Add(time.Duration(sess.fired+1) * sess.interval)
}
