// Package natsio carries settlement traffic between the match engine and
// the history/player services over NATS. Publishes are fire-and-forget:
// the engine never waits on a reply.
package natsio

import (
	"time"

	"github.com/nats-io/nats.go"
)

// Subjects for settlement fan-out.
const (
	SubjectHistoryRecord = "escoba.history.record"
	SubjectPlayerStats   = "escoba.player.stats"
)

// Connect dials the NATS broker with the reconnect policy shared by all
// services.
func Connect(url, name string) (*nats.Conn, error) {
	opts := []nats.Option{
		nats.Name(name),
		nats.Timeout(10 * time.Second),
		nats.ReconnectWait(2 * time.Second),
		nats.MaxReconnects(5),
	}
	return nats.Connect(url, opts...)
}
