package placement

// toleranceIterator yields the displacements tried around a label
// position: 0, -d, +d, -2d, +2d and so on, up to the tolerance. Since d is
// at least a hundredth of the tolerance, at most 201 positions are tried.
type toleranceIterator struct {
	tolerance float64
	step      float64
	value     float64
	count     int
	done      bool
}

// newToleranceIterator returns an iterator for the given tolerance. A
// tolerance of zero or less falls back to half the spacing. The step is a
// hundredth of the tolerance but at least one pixel.
func newToleranceIterator(tolerance, spacing float64) *toleranceIterator {
	if tolerance <= 0 {
		tolerance = spacing / 2
	}
	return &toleranceIterator{
		tolerance: tolerance,
		step:      max(1, tolerance/100),
	}
}

// Get returns the current displacement.
func (t *toleranceIterator) Get() float64 { return -t.value }

// Next advances to the next displacement and reports whether it is
// within the tolerance.
func (t *toleranceIterator) Next() bool {
	if t.done {
		return false
	}
	t.count++
	if t.count > 1 {
		if t.value > 0 {
			t.value = -t.value
		} else {
			t.value = -t.value + t.step
		}
		if t.value > t.tolerance {
			t.done = true
			return false
		}
	}
	return true
}
