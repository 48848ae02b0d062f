package natsio

import (
	"context"
	"encoding/json"
	"fmt"

	"escoba/internal/ports"

	"github.com/nats-io/nats.go"
)

// Publisher implements ports.HistoryRecorder and ports.ProfileUpdater by
// publishing settlement payloads as JSON messages.
type Publisher struct {
	nc *nats.Conn
}

// NewPublisher wraps an established connection.
func NewPublisher(nc *nats.Conn) *Publisher {
	return &Publisher{nc: nc}
}

// RecordMatch publishes the finished-match record.
func (p *Publisher) RecordMatch(_ context.Context, rec ports.MatchRecord) error {
	return p.publish(SubjectHistoryRecord, rec)
}

// UpdateStats publishes one player's stat change.
func (p *Publisher) UpdateStats(_ context.Context, upd ports.StatsUpdate) error {
	return p.publish(SubjectPlayerStats, upd)
}

func (p *Publisher) publish(subject string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal %s payload: %w", subject, err)
	}
	if err := p.nc.Publish(subject, data); err != nil {
		return fmt.Errorf("publish %s: %w", subject, err)
	}
	return nil
}
