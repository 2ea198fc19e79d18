package outbox

import "time"

type Status string

const (
	StatusPending Status = "PENDING"
	StatusSent    Status = "SENT"
	StatusFailed  Status = "FAILED"
)

// Message is a notification waiting to be published.
type Message struct {
	ID            string
	AggregateID   string
	AggregateType string
	MessageType   string
	Topic         string
	Key           string
	Payload       []byte
	Status        Status
	Attempts      int
	CreatedAt     time.Time
	SentAt        *time.Time
}
