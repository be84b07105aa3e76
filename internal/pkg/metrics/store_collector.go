package metrics

import (
	"go.mongodb.org/mongo-driver/event"
)

// StorePoolMonitor returns a driver pool monitor that keeps StorePoolConnections current.
// "open" counts established connections, "in_use" those checked out by an operation.
func StorePoolMonitor() *event.PoolMonitor {
	open := StorePoolConnections.WithLabelValues("open")
	inUse := StorePoolConnections.WithLabelValues("in_use")

	return &event.PoolMonitor{
		Event: func(e *event.PoolEvent) {
			switch e.Type {
			case event.ConnectionCreated:
				open.Inc()
			case event.ConnectionClosed:
				open.Dec()
			case event.GetSucceeded:
				inUse.Inc()
			case event.ConnectionReturned:
				inUse.Dec()
			}
		},
	}
}
