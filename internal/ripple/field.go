package ripple

import "math"

// Wave is a growing ring centered on the point where it was emitted.
type Wave struct {
	X, Y   float64
	Radius float64
}

// Field holds the live waves and the bounds of the surface they are drawn on.
// Waves are kept in creation order.
type Field struct {
	width, height float64
	waves         []Wave
}

// NewField returns an empty field for a surface of the given size.
func NewField(width, height float64) *Field {
	f := &Field{}
	f.Resize(width, height)
	return f
}

// Spawn adds a wave with zero radius at (x, y). Nothing is added while the
// surface has no area, since such a wave would already be past the cull bound.
func (f *Field) Spawn(x, y float64) {
	if f.Diagonal() <= 0 {
		return
	}
	f.waves = append(f.waves, Wave{X: x, Y: y})
}

// Advance grows every wave by dr and drops the ones that reached the diagonal.
func (f *Field) Advance(dr float64) {
	if dr < 0 || math.IsNaN(dr) {
		dr = 0
	}
	limit := f.Diagonal()

	// Filter in place so the order of survivors is kept.
	kept := f.waves[:0]
	for _, w := range f.waves {
		w.Radius += dr
		if w.Radius < limit {
			kept = append(kept, w)
		}
	}
	for i := len(kept); i < len(f.waves); i++ {
		f.waves[i] = Wave{}
	}
	f.waves = kept
}

// Resize changes the surface bounds. Existing waves are left untouched; only
// the cull threshold used by later calls to Advance changes.
func (f *Field) Resize(width, height float64) {
	f.width = math.Max(0, width)
	f.height = math.Max(0, height)
}

// Size returns the current surface bounds.
func (f *Field) Size() (width, height float64) {
	return f.width, f.height
}

// Diagonal is the cull bound: past this radius no part of a ring is visible.
func (f *Field) Diagonal() float64 {
	return math.Hypot(f.width, f.height)
}

// Waves returns the live waves in creation order. The slice is owned by the
// field and is only valid until the next call that mutates it.
func (f *Field) Waves() []Wave {
	return f.waves
}

// Len returns the number of live waves.
func (f *Field) Len() int {
	return len(f.waves)
}

// Clear removes every wave.
func (f *Field) Clear() {
	clear(f.waves)
	f.waves = f.waves[:0]
}
