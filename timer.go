package kerbee

import "time"

// Timer counts frame time toward a duration. Repeating timers wrap and keep going.
type Timer struct {
	duration  time.Duration
	elapsed   time.Duration
	repeating bool
	paused    bool
	finished  bool
	times     int
}

func NewTimer(d time.Duration, repeating bool) *Timer {
	return &Timer{duration: d, repeating: repeating}
}

// Tick advances the timer by dt and returns it so calls can be chained.
func (t *Timer) Tick(dt time.Duration) *Timer {
	if t.paused {
		t.times = 0
		return t
	}
	if !t.repeating && t.finished {
		t.times = 0
		return t
	}

	t.elapsed += dt
	t.finished = t.elapsed >= t.duration
	t.times = 0

	if !t.finished {
		return t
	}
	if !t.repeating {
		t.times = 1
		t.elapsed = t.duration
		return t
	}
	if t.duration <= 0 {
		t.times = 1
		t.elapsed = 0
		return t
	}
	t.times = int(t.elapsed / t.duration)
	t.elapsed %= t.duration
	return t
}

// Finished reports whether the last tick reached the duration. A one-shot timer stays finished.
func (t *Timer) Finished() bool { return t.finished }

// JustFinished reports whether the duration was reached during the last tick.
func (t *Timer) JustFinished() bool { return t.times > 0 }

// TimesFinished is how many times a repeating timer wrapped during the last tick.
func (t *Timer) TimesFinished() int { return t.times }

func (t *Timer) Pause()       { t.paused = true }
func (t *Timer) Unpause()     { t.paused = false }
func (t *Timer) Paused() bool { return t.paused }

func (t *Timer) Reset() {
	t.elapsed = 0
	t.finished = false
	t.times = 0
}

func (t *Timer) Elapsed() time.Duration  { return t.elapsed }
func (t *Timer) Duration() time.Duration { return t.duration }

// SetDuration changes the duration without touching the elapsed time.
func (t *Timer) SetDuration(d time.Duration) { t.duration = d }

func seconds(dt float32) time.Duration {
	return time.Duration(float64(dt) * float64(time.Second))
}
