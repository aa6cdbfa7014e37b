package app

import "time"

// quitDetector ends a live session after enough Escape taps land
// inside a rolling window. A tap is a just-pressed edge, so holding
// Escape counts once.
type quitDetector struct {
	taps   int
	window time.Duration
	now    func() time.Time
	times  []time.Time
}

func newQuitDetector(taps int, window time.Duration) *quitDetector {
	return &quitDetector{taps: taps, window: window, now: time.Now}
}

// observe feeds one frame's Escape edge and reports whether the tap
// threshold was met.
func (q *quitDetector) observe(tapped bool) bool {
	if !tapped {
		return false
	}
	now := q.now()
	keep := q.times[:0]
	for _, t := range q.times {
		if now.Sub(t) < q.window {
			keep = append(keep, t)
		}
	}
	q.times = append(keep, now)
	return len(q.times) >= q.taps
}
