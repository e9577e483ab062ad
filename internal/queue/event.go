// Package queue defines message payloads exchanged over the message broker.
package queue

import (
	"time"

	"github.com/google/uuid"

	"github.com/poweracademy/academy-server/internal/model"
)

// ChangeQueueName is the broker queue record-change events go to.
const ChangeQueueName = "academy.record-changed"

// ChangeAction says what happened to a record.
type ChangeAction string

const (
	ActionCreated ChangeAction = "created"
	ActionUpdated ChangeAction = "updated"
	ActionDeleted ChangeAction = "deleted"
)

// RecordChangedEvent is published after a record is created, updated
// or deleted.  It is a notification feed for downstream consumers
// (change log, future integrations), not an audit store: nothing reads
// it back into the console.
type RecordChangedEvent struct {
	EventID    string       `json:"event_id"`
	Entity     model.Kind   `json:"entity"`
	Action     ChangeAction `json:"action"`
	RecordID   int64        `json:"record_id"`
	OccurredAt string       `json:"occurred_at"`
}

// NewRecordChangedEvent builds an event with a fresh id and the given
// occurrence time.
func NewRecordChangedEvent(entity model.Kind, action ChangeAction, recordID int64, at time.Time) RecordChangedEvent {
	return RecordChangedEvent{
		EventID:    uuid.NewString(),
		Entity:     entity,
		Action:     action,
		RecordID:   recordID,
		OccurredAt: at.UTC().Format(time.RFC3339),
	}
}
