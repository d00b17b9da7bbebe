package events

import "time"

// DomainEvent is implemented by aggregate lifecycle events published to the
// broker after the aggregate has been persisted.
type DomainEvent interface {
	EventName() string
	AggregateID() string
	OccurredAt() time.Time
}

// Recorder collects events raised by an aggregate until a service drains them.
type Recorder struct {
	pending []DomainEvent
}

func (r *Recorder) Record(event DomainEvent) {
	if event == nil {
		return
	}
	r.pending = append(r.pending, event)
}

func (r *Recorder) PendingEvents() []DomainEvent {
	out := make([]DomainEvent, len(r.pending))
	copy(out, r.pending)
	return out
}

func (r *Recorder) ClearEvents() {
	r.pending = nil
}
