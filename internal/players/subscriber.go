package players

import (
	"context"
	"encoding/json"

	"escoba/internal/ports"
	"escoba/internal/ports/natsio"

	"github.com/nats-io/nats.go"
	"go.uber.org/zap"
)

// Subscribe wires the settlement subject to the repository. Malformed or
// failing updates are logged and dropped; the engine never waits on us.
func Subscribe(nc *nats.Conn, repo Repository, log *zap.SugaredLogger) (*nats.Subscription, error) {
	return nc.Subscribe(natsio.SubjectPlayerStats, func(msg *nats.Msg) {
		var upd ports.StatsUpdate
		if err := json.Unmarshal(msg.Data, &upd); err != nil {
			log.Warnw("bad stats payload", "error", err)
			return
		}
		if _, err := repo.ApplyResult(context.Background(), upd); err != nil {
			log.Errorw("stats apply failed", "player", upd.Player, "error", err)
		}
	})
}
