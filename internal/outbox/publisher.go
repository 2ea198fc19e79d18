package outbox

import (
	"context"

	"go.uber.org/zap"
)

// Publisher delivers a payload to a topic. The kafka producer satisfies it.
type Publisher interface {
	Produce(ctx context.Context, topic, key string, value []byte) error
	Close() error
}

// LogPublisher writes payloads to the log. It is used when no broker is
// configured.
type LogPublisher struct {
	logger *zap.Logger
}

func NewLogPublisher(logger *zap.Logger) *LogPublisher {
	return &LogPublisher{logger: logger}
}

func (p *LogPublisher) Produce(_ context.Context, topic, key string, value []byte) error {
	p.logger.Info("Notification published",
		zap.String("topic", topic),
		zap.String("key", key),
		zap.ByteString("payload", value),
	)
	return nil
}

func (p *LogPublisher) Close() error { return nil }
