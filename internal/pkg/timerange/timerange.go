package timerange

import (
	"errors"
	"math/rand/v2"
	"time"
)

var ErrInvalidRange = errors.New("invalid time range: lower bound after upper bound")

// Window is the global simulation interval every generated timestamp must fall in.
type Window struct {
	Start time.Time
	End   time.Time
}

func NewWindow(start, end time.Time) (Window, error) {
	if start.After(end) {
		return Window{}, ErrInvalidRange
	}
	return Window{Start: start, End: end}, nil
}

func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && !t.After(w.End)
}

// Clamp saturates t into the window.
func (w Window) Clamp(t time.Time) time.Time {
	if t.Before(w.Start) {
		return w.Start
	}
	if t.After(w.End) {
		return w.End
	}
	return t
}

func (w Window) Duration() time.Duration {
	return w.End.Sub(w.Start)
}

// RandomInstant draws a uniform instant in [lower, upper], second resolution.
func RandomInstant(rng *rand.Rand, lower, upper time.Time) (time.Time, error) {
	if lower.After(upper) {
		return time.Time{}, ErrInvalidRange
	}
	span := upper.Unix() - lower.Unix()
	if span == 0 {
		return lower, nil
	}
	return time.Unix(lower.Unix()+rng.Int64N(span+1), 0).In(lower.Location()), nil
}

// NextAfter draws a follow-up instant strictly after prev, delayed by a uniform
// duration in [minDelta, maxDelta] and saturated at ceiling. The result always
// advances by at least one second even when prev sits at the ceiling, so update
// chains stay strictly monotonic.
func NextAfter(rng *rand.Rand, prev time.Time, minDelta, maxDelta time.Duration, ceiling time.Time) (time.Time, error) {
	if minDelta <= 0 || maxDelta < minDelta {
		return time.Time{}, ErrInvalidRange
	}
	delta := minDelta
	if spread := maxDelta - minDelta; spread > 0 {
		delta += time.Duration(rng.Int64N(int64(spread) + 1))
	}
	next := prev.Add(delta)
	if next.After(ceiling) {
		next = ceiling
	}
	if !next.After(prev) {
		next = prev.Add(time.Second)
	}
	return next, nil
}

// SequentialInstant returns the index-th of total evenly spaced instants in
// [start, end]. Index is zero-based; total must be positive.
func SequentialInstant(start, end time.Time, total, index int) (time.Time, error) {
	if start.After(end) {
		return time.Time{}, ErrInvalidRange
	}
	if total <= 0 || index < 0 || index >= total {
		return time.Time{}, ErrInvalidRange
	}
	if total == 1 {
		return start, nil
	}
	step := end.Sub(start) / time.Duration(total-1)
	return start.Add(step * time.Duration(index)), nil
}
