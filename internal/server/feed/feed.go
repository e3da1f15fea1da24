// Package feed implements the applications change feed: every insert,
// update, and delete is published as an event, and dashboard sessions
// subscribe to trigger a list re-fetch. The payload is deliberately small;
// subscribers reload the full list rather than patching incrementally.
package feed

import (
	"context"
	"time"
)

// Op is the kind of change that happened to the applications table.
type Op string

const (
	OpInsert Op = "insert"
	OpUpdate Op = "update"
	OpDelete Op = "delete"
)

// Event is one change notification.
type Event struct {
	Op                 Op        `json:"op"`
	ID                 string    `json:"id"`
	RegistrationNumber string    `json:"registration_number,omitempty"`
	At                 time.Time `json:"at"`
}

// Publisher emits change events.
type Publisher interface {
	Publish(ctx context.Context, ev Event) error
}

// Subscriber delivers change events until the returned cancel function is
// called or the context ends.
type Subscriber interface {
	Subscribe(ctx context.Context) (<-chan Event, func(), error)
}

// Broker is both ends of the feed.
type Broker interface {
	Publisher
	Subscriber
}
