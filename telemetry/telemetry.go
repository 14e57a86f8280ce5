// Package telemetry publishes live progress of a decide call onto a NATS
// subject, for an external dashboard to watch a long search unfold. It
// is entirely optional and never participates in the deadline or
// cancellation logic: a telemetry outage never slows down or aborts a
// search.
package telemetry

import (
	"encoding/json"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
	"github.com/rs/zerolog/log"
)

// Generation is one published progress update.
type Generation struct {
	SearchID       string `json:"search_id"`
	Depth          int    `json:"depth"`
	RootsRemaining int    `json:"roots_remaining"`
	NodesEvaluated uint64 `json:"nodes_evaluated"`
}

// Publisher publishes Generation updates to a NATS subject.
type Publisher struct {
	conn    *nats.Conn
	subject string
}

// NewPublisher connects to a NATS server and returns a Publisher that
// publishes to subject.
func NewPublisher(url, subject string) (*Publisher, error) {
	conn, err := nats.Connect(url)
	if err != nil {
		return nil, err
	}
	return &Publisher{conn: conn, subject: subject}, nil
}

// Close closes the underlying NATS connection (a plain Close, not a
// Drain).
func (p *Publisher) Close() {
	p.conn.Close()
}

// NewSearchID generates a fresh identifier to key a search's
// Generations together in a downstream dashboard.
func NewSearchID() string {
	return uuid.NewString()
}

// Publish best-effort publishes a Generation update. A publish failure
// is logged and swallowed; it never propagates to the search driver.
func (p *Publisher) Publish(g Generation) {
	payload, err := json.Marshal(g)
	if err != nil {
		log.Warn().Err(err).Msg("telemetry: marshal failed")
		return
	}
	if err := p.conn.Publish(p.subject, payload); err != nil {
		log.Warn().Err(err).Msg("telemetry: publish failed")
	}
}
