package jobs

import (
	"context"
	"log/slog"

	"kitchenpos/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// relayBatchSize limits how many events one relay tick drains.
const relayBatchSize = 100

// OutboxRelayJob drains unpublished integration events from the outbox and
// delivers them to the message broker. Runs every second so events reach
// consumers shortly after the producing transaction commits.
//
// Delivery is at-least-once: an event is marked published only after the
// broker confirms it, so a crash between confirm and mark replays the event.
type OutboxRelayJob struct {
	outbox    ports.OutboxRepository
	publisher ports.EventPublisher
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewOutboxRelayJob creates a new job relaying outbox events to the broker.
func NewOutboxRelayJob(
	outbox ports.OutboxRepository,
	publisher ports.EventPublisher,
	logger *slog.Logger,
) *OutboxRelayJob {
	return &OutboxRelayJob{
		outbox:    outbox,
		publisher: publisher,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With("component", "outbox_relay_job"),
	}
}

// Start begins the relay job to run every second.
func (j *OutboxRelayJob) Start() error {
	_, err := j.cron.AddFunc("* * * * * *", func() {
		ctx := context.Background()
		if err := j.relayOnce(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Outbox relay job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Outbox relay job started (running every second)")
	return nil
}

// Stop stops the relay job.
func (j *OutboxRelayJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Outbox relay job stopped")
}

// relayOnce drains one batch of unpublished events in stored order.
// Stops at the first failure so a broker outage does not reorder events.
func (j *OutboxRelayJob) relayOnce(ctx context.Context) error {
	events, err := j.outbox.GetUnpublished(ctx, relayBatchSize)
	if err != nil {
		return err
	}

	for _, event := range events {
		if err := j.publisher.Publish(event); err != nil {
			return err
		}

		if err := j.outbox.MarkPublished(ctx, event.ID); err != nil {
			return err
		}

		j.logger.DebugContext(ctx, "Relayed integration event",
			"event_id", event.ID.String(),
			"event_type", event.EventType,
		)
	}

	return nil
}
