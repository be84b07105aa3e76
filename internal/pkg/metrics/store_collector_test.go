package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/event"
)

func TestStorePoolMonitor(t *testing.T) {
	StorePoolConnections.Reset()
	monitor := StorePoolMonitor()

	for _, typ := range []string{
		event.ConnectionCreated,
		event.ConnectionCreated,
		event.GetSucceeded,
		event.GetSucceeded,
		event.ConnectionReturned,
		event.ConnectionClosed,
	} {
		monitor.Event(&event.PoolEvent{Type: typ})
	}

	assert.Equal(t, 1.0, testutil.ToFloat64(StorePoolConnections.WithLabelValues("open")))
	assert.Equal(t, 1.0, testutil.ToFloat64(StorePoolConnections.WithLabelValues("in_use")))
}
