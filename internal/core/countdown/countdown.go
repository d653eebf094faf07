package countdown

import "time"

// Status is the running state of a Countdown.
type Status int

const (
	StatusStopped Status = iota
	StatusRunning
	StatusPaused
)

func (status Status) String() string {
	switch status {
	case StatusStopped:
		return "stopped"
	case StatusRunning:
		return "running"
	case StatusPaused:
		return "paused"
	default:
		return "unknown"
	}
}

// Countdown counts a duration down in fixed ticks and reports when it runs
// out. It is driven by Tick and is not safe for concurrent use.
type Countdown struct {
	interval  time.Duration
	duration  time.Duration
	remaining time.Duration
	status    Status
	onTimeout func()
}

// New creates a stopped countdown advancing by interval per tick.
func New(interval time.Duration) *Countdown {
	if interval <= 0 {
		interval = time.Second
	}
	return &Countdown{interval: interval}
}

// SetOnTimeout registers the handler called when the countdown reaches zero.
func (countdown *Countdown) SetOnTimeout(handler func()) {
	countdown.onTimeout = handler
}

// SetDuration sets the phase length and refills the remaining time.
// The running status is left untouched.
func (countdown *Countdown) SetDuration(duration time.Duration) {
	if duration < 0 {
		duration = 0
	}
	countdown.duration = duration
	countdown.remaining = duration
}

// Start runs the countdown. A stopped countdown starts from its full
// duration, a paused one continues where it was.
func (countdown *Countdown) Start() {
	switch countdown.status {
	case StatusStopped:
		countdown.remaining = countdown.duration
		countdown.status = StatusRunning
	case StatusPaused:
		countdown.status = StatusRunning
	}
}

// Resume continues a paused countdown.
func (countdown *Countdown) Resume() {
	if countdown.status == StatusPaused {
		countdown.status = StatusRunning
	}
}

// Pause freezes a running countdown.
func (countdown *Countdown) Pause() {
	if countdown.status == StatusRunning {
		countdown.status = StatusPaused
	}
}

// Reset stops the countdown and refills the remaining time.
func (countdown *Countdown) Reset() {
	countdown.status = StatusStopped
	countdown.remaining = countdown.duration
}

// Tick advances a running countdown by one interval. It returns true when
// this tick ran the countdown out; the timeout handler has run by then.
func (countdown *Countdown) Tick() bool {
	if countdown.status != StatusRunning {
		return false
	}

	countdown.remaining -= countdown.interval
	if countdown.remaining > 0 {
		return false
	}

	countdown.remaining = 0
	countdown.status = StatusStopped
	if countdown.onTimeout != nil {
		countdown.onTimeout()
	}
	return true
}

// Status returns the running state.
func (countdown *Countdown) Status() Status { return countdown.status }

// Running reports whether ticks currently advance the countdown.
func (countdown *Countdown) Running() bool { return countdown.status == StatusRunning }

// Duration returns the configured phase length.
func (countdown *Countdown) Duration() time.Duration { return countdown.duration }

// Remaining returns the time left.
func (countdown *Countdown) Remaining() time.Duration { return countdown.remaining }

// Interval returns the time a single tick accounts for.
func (countdown *Countdown) Interval() time.Duration { return countdown.interval }

// Progress returns the elapsed fraction of the duration in [0, 1].
func (countdown *Countdown) Progress() float64 {
	if countdown.duration <= 0 {
		return 1
	}
	return float64(countdown.duration-countdown.remaining) / float64(countdown.duration)
}
