package messenger

import (
	"fmt"
	"slices"

	"dailyapps/internal/util"
	"dailyapps/internal/validate"
)

type membership struct {
	conversation *Conversation
	muted        bool
}

type User struct {
	ID          string
	Name        string
	ContactInfo string
	online      bool
	memberships []*membership
	inbox       []*Entry
}

func NewUser(name, contactInfo string) (*User, error) {
	n, err := validate.Check(validate.TagUsername, name)
	if err != nil {
		return nil, err
	}
	c, err := validate.Check(validate.TagContactInfo, contactInfo)
	if err != nil {
		return nil, err
	}
	return &User{ID: util.GenerateUUID(), Name: n, ContactInfo: c}, nil
}

func (u *User) SetOnline(online bool) { u.online = online }

func (u *User) Online() bool { return u.online }

// Inbox returns copies of the direct messages the user received.
func (u *User) Inbox() []Entry {
	return copyEntries(u.inbox)
}

func (u *User) Conversations() []*Conversation {
	out := make([]*Conversation, 0, len(u.memberships))
	for _, m := range u.memberships {
		out = append(out, m.conversation)
	}
	return out
}

// CreateConversation starts a conversation with the creator and users as
// members.
func (u *User) CreateConversation(users ...*User) *Conversation {
	c := &Conversation{ID: util.GenerateUUID()}
	c.AddUsers(append([]*User{u}, users...)...)
	return c
}

func (u *User) Mute(c *Conversation) error {
	return u.setMuted(c, true)
}

func (u *User) Unmute(c *Conversation) error {
	return u.setMuted(c, false)
}

func (u *User) Muted(c *Conversation) bool {
	m := u.membership(c)
	return m != nil && m.muted
}

func (u *User) IsMember(c *Conversation) bool {
	return u.membership(c) != nil
}

func (u *User) setMuted(c *Conversation, muted bool) error {
	m := u.membership(c)
	if m == nil {
		return fmt.Errorf("user %s is not in the conversation: %w", u.Name, ErrConversationNotFound)
	}
	m.muted = muted
	return nil
}

func (u *User) membership(c *Conversation) *membership {
	i := slices.IndexFunc(u.memberships, func(m *membership) bool { return m.conversation == c })
	if i < 0 {
		return nil
	}
	return u.memberships[i]
}
