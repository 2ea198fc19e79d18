package messenger

import (
	"fmt"
	"slices"
	"time"
)

type Kind string

const (
	KindText  Kind = "text"
	KindMedia Kind = "media"
)

// Entry is one delivered message in a conversation history or inbox.
type Entry struct {
	MessageID  string    `json:"message_id"`
	SenderID   string    `json:"sender_id"`
	SenderName string    `json:"sender"`
	Kind       Kind      `json:"kind"`
	Content    string    `json:"content"`
	MediaType  string    `json:"media_type,omitempty"`
	Time       time.Time `json:"time"`
	Read       bool      `json:"read"`
	Deleted    bool      `json:"deleted"`
}

func copyEntries(in []*Entry) []Entry {
	out := make([]Entry, len(in))
	for i, e := range in {
		out[i] = *e
	}
	return out
}

type Conversation struct {
	ID      string
	members []*User
	history []*Entry
}

// AddUsers joins users to the conversation, skipping existing members.
func (c *Conversation) AddUsers(users ...*User) {
	for _, u := range users {
		if u == nil || slices.Contains(c.members, u) {
			continue
		}
		c.members = append(c.members, u)
		u.memberships = append(u.memberships, &membership{conversation: c})
	}
}

func (c *Conversation) Members() []*User {
	return slices.Clone(c.members)
}

func (c *Conversation) Entries() []Entry {
	return copyEntries(c.history)
}

// History returns the first limit entries.
func (c *Conversation) History(limit int) ([]Entry, error) {
	if limit <= 0 || limit > len(c.history) {
		return nil, fmt.Errorf("limit %d with %d entries: %w", limit, len(c.history), ErrOutOfRange)
	}
	return copyEntries(c.history[:limit]), nil
}
