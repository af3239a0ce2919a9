package kerbee

import log "github.com/sirupsen/logrus"

// PlayerHitEvent is sent when an enemy touches the player.
type PlayerHitEvent struct {
	Player uint64
}

// EventQueue holds the player hit events of a single frame.
type EventQueue struct {
	events   []PlayerHitEvent
	capacity int
	dropped  int
}

func NewEventQueue(capacity int) *EventQueue {
	if capacity <= 0 {
		capacity = 1
	}
	return &EventQueue{events: make([]PlayerHitEvent, 0, capacity), capacity: capacity}
}

// Send appends ev. A full queue drops the event.
func (q *EventQueue) Send(ev PlayerHitEvent) bool {
	if len(q.events) >= q.capacity {
		q.dropped++
		log.WithField("capacity", q.capacity).Warn("Player hit queue full, dropping event")
		return false
	}
	q.events = append(q.events, ev)
	return true
}

// Drain returns the queued events in send order and empties the queue.
func (q *EventQueue) Drain() []PlayerHitEvent {
	if len(q.events) == 0 {
		return nil
	}
	out := make([]PlayerHitEvent, len(q.events))
	copy(out, q.events)
	q.events = q.events[:0]
	return out
}

func (q *EventQueue) Len() int     { return len(q.events) }
func (q *EventQueue) Dropped() int { return q.dropped }

// Clear discards anything left at the end of a frame.
func (q *EventQueue) Clear() {
	q.events = q.events[:0]
}
