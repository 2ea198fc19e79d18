package outbox

import (
	"context"
	"time"

	"go.uber.org/zap"
)

type Repository interface {
	Pending(ctx context.Context, limit int) ([]Message, error)
	MarkSent(ctx context.Context, id string) error
	MarkFailed(ctx context.Context, id string) (Status, error)
}

type Processor struct {
	repo         Repository
	publisher    Publisher
	pollInterval time.Duration
	pollTimeout  time.Duration
	batchSize    int
	logger       *zap.Logger
}

func NewProcessor(
	repo Repository,
	publisher Publisher,
	pollInterval time.Duration,
	pollTimeout time.Duration,
	batchSize int,
	logger *zap.Logger,
) *Processor {
	if batchSize <= 0 {
		batchSize = 10
	}
	return &Processor{
		repo:         repo,
		publisher:    publisher,
		pollInterval: pollInterval,
		pollTimeout:  pollTimeout,
		batchSize:    batchSize,
		logger:       logger,
	}
}

// Start polls the outbox until ctx is cancelled.
func (p *Processor) Start(ctx context.Context) {
	p.logger.Info("Starting outbox processor", zap.Duration("poll_interval", p.pollInterval))
	ticker := time.NewTicker(p.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			p.logger.Info("Outbox processor stopped")
			return
		case <-ticker.C:
			p.ProcessOnce(ctx)
		}
	}
}

// ProcessOnce publishes one batch of pending messages and returns how many
// were sent.
func (p *Processor) ProcessOnce(ctx context.Context) int {
	queryCtx, cancel := context.WithTimeout(ctx, p.pollTimeout)
	defer cancel()

	messages, err := p.repo.Pending(queryCtx, p.batchSize)
	if err != nil {
		p.logger.Error("Failed to get pending outbox messages", zap.Error(err))
		return 0
	}
	if len(messages) == 0 {
		return 0
	}
	p.logger.Debug("Found pending outbox messages", zap.Int("count", len(messages)))

	sent := 0
	for _, msg := range messages {
		if err := p.publisher.Produce(ctx, msg.Topic, msg.Key, msg.Payload); err != nil {
			status, markErr := p.repo.MarkFailed(ctx, msg.ID)
			if markErr != nil {
				p.logger.Error("Failed to record outbox failure", zap.String("message_id", msg.ID), zap.Error(markErr))
				continue
			}
			p.logger.Warn("Failed to publish outbox message",
				zap.String("message_id", msg.ID),
				zap.String("topic", msg.Topic),
				zap.String("status", string(status)),
				zap.Error(err))
			continue
		}
		if err := p.repo.MarkSent(ctx, msg.ID); err != nil {
			p.logger.Error("Failed to mark outbox message sent", zap.String("message_id", msg.ID), zap.Error(err))
			continue
		}
		sent++
		p.logger.Debug("Outbox message published", zap.String("message_id", msg.ID), zap.String("topic", msg.Topic))
	}
	return sent
}
