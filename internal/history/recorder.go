package history

import (
	"context"

	"impulse/internal/core/session"

	"github.com/charmbracelet/log"
)

// Store persists phase records.
type Store interface {
	Create(record *PhaseRecord) error
}

// Recorder writes every completed phase reported by a session to a Store.
type Recorder struct {
	store  Store
	logger *log.Logger
}

// NewRecorder creates a recorder. A nil logger uses the default one.
func NewRecorder(store Store, logger *log.Logger) *Recorder {
	if logger == nil {
		logger = log.Default()
	}
	return &Recorder{store: store, logger: logger}
}

// Run consumes events until the channel closes or ctx is done.
func (recorder *Recorder) Run(ctx context.Context, events <-chan session.Event) {
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-events:
			if !ok {
				return
			}
			recorder.Handle(event)
		}
	}
}

// Handle stores event when it marks a completed phase. Storage failures are
// logged and dropped.
func (recorder *Recorder) Handle(event session.Event) {
	if event.Type != session.EventPhaseComplete {
		return
	}
	kind, ok := kindOf(event.State)
	if !ok {
		return
	}

	record := &PhaseRecord{
		Kind:        kind,
		Task:        event.Task,
		Duration:    int64(event.Duration.Seconds()),
		WorkShift:   event.WorkShift,
		CompletedAt: event.At,
	}
	if err := recorder.store.Create(record); err != nil {
		recorder.logger.Warn("record phase", "kind", kind, "err", err)
		return
	}
	recorder.logger.Debug("phase recorded", "kind", kind, "task", event.Task, "work_shift", event.WorkShift)
}

func kindOf(state session.State) (string, bool) {
	switch state {
	case session.StateWorkShift:
		return KindWork, true
	case session.StateShortBreak:
		return KindShortBreak, true
	case session.StateLongBreak:
		return KindLongBreak, true
	default:
		return "", false
	}
}
