package game

import "time"

// countdown steps through its labels on wall-clock time, independent of the
// simulation delta.
type countdown struct {
	labels  []string
	tick    time.Duration
	started time.Duration
}

func newCountdown(labels []string, tick time.Duration) countdown {
	return countdown{labels: labels, tick: tick}
}

func (c *countdown) Reset(now time.Duration) {
	c.started = now
}

// Label returns the label to show at now, and done once every label has had
// its full tick.
func (c *countdown) Label(now time.Duration) (string, bool) {
	if c.tick <= 0 {
		return "", true
	}
	elapsed := now - c.started
	if elapsed < 0 {
		elapsed = 0
	}
	index := int(elapsed / c.tick)
	if index >= len(c.labels) {
		return "", true
	}
	return c.labels[index], false
}
