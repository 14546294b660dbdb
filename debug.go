package polysandbox

import "time"

// loopStats holds per-tick timing counters. Summaries are logged at debug
// level roughly once per second of nominal ticks.
type loopStats struct {
	ticks     int
	overruns  int
	lastFrame time.Duration
	maxFrame  time.Duration
	sumFrame  time.Duration
	window    int
}

// record folds one measured frame into the stats.
func (l *Loop) record(dt time.Duration) {
	st := &l.stats
	st.ticks++
	st.lastFrame = dt
	st.sumFrame += dt
	st.window++
	if dt > st.maxFrame {
		st.maxFrame = dt
	}
	if dt > 2*l.interval {
		st.overruns++
	}

	if st.window < l.ticksPerSecond() {
		return
	}
	l.log.Debug("tick stats",
		"ticks", st.ticks,
		"avg", st.sumFrame/time.Duration(st.window),
		"max", st.maxFrame,
		"overruns", st.overruns,
		"active", l.sim.ActiveIndex())
	st.sumFrame, st.maxFrame, st.window = 0, 0, 0
}

func (l *Loop) ticksPerSecond() int {
	n := int(time.Second / l.interval)
	if n < 1 {
		return 1
	}
	return n
}

// LastFrame returns the measured duration of the most recent iteration.
func (l *Loop) LastFrame() time.Duration { return l.stats.lastFrame }

// Overruns returns how many iterations took more than twice the interval.
func (l *Loop) Overruns() int { return l.stats.overruns }
