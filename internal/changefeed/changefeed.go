// Package changefeed delivers row-level change notifications for the admin
// dashboard. Callers register a callback per table; any insert, update or
// delete fires it. Callbacks should treat every event as "something changed"
// and re-fetch, since events may be coalesced or replayed after a reconnect.
package changefeed

import (
	"context"
	"errors"
)

const (
	TableOrders       = "orders"
	TableReservations = "reservations"
)

// Op values carried by Event.
const (
	OpInsert = "INSERT"
	OpUpdate = "UPDATE"
	OpDelete = "DELETE"
	// OpResync is sent when notifications may have been missed.
	OpResync = "RESYNC"
)

var ErrUnknownTable = errors.New("changefeed: unknown table")

type Event struct {
	Table string `json:"table"`
	Op    string `json:"op"`
	ID    int64  `json:"id,omitempty"`
}

type Handler func(Event)

// Unsubscribe removes a registration. Calling it more than once is safe.
type Unsubscribe func()

type Source interface {
	Subscribe(ctx context.Context, table string, fn Handler) (Unsubscribe, error)
}

func knownTable(table string) bool {
	return table == TableOrders || table == TableReservations
}

func channelFor(table string) string {
	return table + "_changes"
}
