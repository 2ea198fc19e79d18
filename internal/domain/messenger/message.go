package messenger

import (
	"fmt"
	"time"

	"dailyapps/internal/util"
	"dailyapps/internal/validate"
)

const unknownMediaType = "unknown"

// Message is implemented by TextMessage and MultimediaMessage.
type Message interface {
	ID() string
	Sender() *User
	Recipient() Recipient
	Send(n Notifier) error
	Delete() error
	MarkRead()
	MarkUnread()
	IsRead() bool
	isMessage()
}

type message struct {
	id        string
	sender    *User
	to        Recipient
	timestamp time.Time
	read      bool
	entry     *Entry
}

func newMessage(sender *User, to Recipient) (message, error) {
	if sender == nil {
		return message{}, fmt.Errorf("sender: %w", ErrUserNotFound)
	}
	return message{id: util.GenerateUUID(), sender: sender, to: to, timestamp: time.Now()}, nil
}

func (m *message) isMessage() {}

func (m *message) ID() string { return m.id }

func (m *message) Sender() *User { return m.sender }

func (m *message) Recipient() Recipient { return m.to }

func (m *message) IsRead() bool { return m.read }

func (m *message) MarkRead() { m.setRead(true) }

func (m *message) MarkUnread() { m.setRead(false) }

func (m *message) setRead(read bool) {
	m.read = read
	if m.entry != nil {
		m.entry.Read = read
	}
}

// deliver appends entry to the recipient's history and notifies everyone
// but the sender who is online and has not muted the conversation.
func (m *message) deliver(entry *Entry, n Notifier) error {
	if m.entry != nil {
		return fmt.Errorf("message %s already sent: %w", m.id, ErrInvalidMessage)
	}
	if n == nil {
		n = NopNotifier
	}

	switch m.to.Kind() {
	case RecipientConversation:
		c := m.to.Conversation()
		if !m.sender.IsMember(c) {
			return fmt.Errorf("%s is not a member of conversation %s: %w", m.sender.Name, c.ID, ErrUserNotFound)
		}
		c.history = append(c.history, entry)
		m.entry = entry
		for _, u := range c.members {
			if u != m.sender && u.online && !u.Muted(c) {
				n.Notify(m.notification(u, c.ID))
			}
		}
		return nil
	case RecipientUser:
		u := m.to.User()
		u.inbox = append(u.inbox, entry)
		m.entry = entry
		if u.online {
			n.Notify(m.notification(u, ""))
		}
		return nil
	default:
		return fmt.Errorf("invalid address: %w", ErrUserNotFound)
	}
}

func (m *message) notification(u *User, conversationID string) Notification {
	return Notification{
		RecipientID:    u.ID,
		RecipientName:  u.Name,
		SenderName:     m.sender.Name,
		MessageID:      m.id,
		ConversationID: conversationID,
		Time:           m.timestamp,
	}
}

// tombstone replaces the delivered content in place; the entry itself stays.
func (m *message) tombstone(clearMedia bool) error {
	if m.entry == nil {
		return fmt.Errorf("message %s was never delivered: %w", m.id, ErrInvalidMessage)
	}
	if m.entry.Deleted {
		return fmt.Errorf("message %s already deleted: %w", m.id, ErrInvalidMessage)
	}
	m.entry.Content = fmt.Sprintf("%s deleted a message", m.sender.Name)
	m.entry.Deleted = true
	if clearMedia {
		m.entry.MediaType = unknownMediaType
	}
	return nil
}

func (m *message) newEntry(kind Kind, content, mediaType string) *Entry {
	return &Entry{
		MessageID:  m.id,
		SenderID:   m.sender.ID,
		SenderName: m.sender.Name,
		Kind:       kind,
		Content:    content,
		MediaType:  mediaType,
		Time:       m.timestamp,
	}
}

type TextMessage struct {
	message
	Content string
}

func NewTextMessage(sender *User, to Recipient, content string) (*TextMessage, error) {
	base, err := newMessage(sender, to)
	if err != nil {
		return nil, err
	}
	text, err := validate.Message(content, 1)
	if err != nil {
		return nil, err
	}
	return &TextMessage{message: base, Content: text}, nil
}

func (t *TextMessage) Send(n Notifier) error {
	return t.deliver(t.newEntry(KindText, t.Content, ""), n)
}

func (t *TextMessage) Delete() error {
	return t.tombstone(false)
}

type MultimediaMessage struct {
	message
	FilePath string
	FileType string
}

func NewMultimediaMessage(sender *User, to Recipient, filePath, fileType string) (*MultimediaMessage, error) {
	base, err := newMessage(sender, to)
	if err != nil {
		return nil, err
	}
	path, err := validate.Check(validate.TagName, filePath)
	if err != nil {
		return nil, err
	}
	return &MultimediaMessage{message: base, FilePath: path, FileType: fileType}, nil
}

func (mm *MultimediaMessage) Send(n Notifier) error {
	return mm.deliver(mm.newEntry(KindMedia, mm.FilePath, mm.FileType), n)
}

func (mm *MultimediaMessage) Delete() error {
	return mm.tombstone(true)
}
