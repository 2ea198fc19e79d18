package messenger

import "time"

// Notification tells an online user that a message arrived.
type Notification struct {
	RecipientID    string    `json:"recipient_id"`
	RecipientName  string    `json:"recipient"`
	SenderName     string    `json:"sender"`
	MessageID      string    `json:"message_id"`
	ConversationID string    `json:"conversation_id,omitempty"`
	Time           time.Time `json:"time"`
}

type Notifier interface {
	Notify(n Notification)
}

type NotifierFunc func(n Notification)

func (f NotifierFunc) Notify(n Notification) { f(n) }

type nopNotifier struct{}

func (nopNotifier) Notify(Notification) {}

var NopNotifier Notifier = nopNotifier{}
