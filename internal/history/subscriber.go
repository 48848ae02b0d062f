package history

import (
	"context"
	"encoding/json"

	"escoba/internal/ports"
	"escoba/internal/ports/natsio"

	"github.com/nats-io/nats.go"
	"go.uber.org/zap"
)

// Subscribe wires the settlement subject to the repository.
func Subscribe(nc *nats.Conn, repo Repository, log *zap.SugaredLogger) (*nats.Subscription, error) {
	return nc.Subscribe(natsio.SubjectHistoryRecord, func(msg *nats.Msg) {
		var rec ports.MatchRecord
		if err := json.Unmarshal(msg.Data, &rec); err != nil {
			log.Warnw("bad history payload", "error", err)
			return
		}
		if err := repo.Record(context.Background(), rec); err != nil {
			log.Errorw("history record failed", "match_id", rec.MatchID, "error", err)
		}
	})
}
