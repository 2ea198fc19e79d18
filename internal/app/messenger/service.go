package messenger

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"go.uber.org/zap"

	domain "dailyapps/internal/domain/messenger"
	"dailyapps/internal/outbox"
)

const notificationMessageType = "message_notification"

type MessengerService interface {
	CreateUser(ctx context.Context, name, contactInfo string) (UserInfo, error)
	GetUser(ctx context.Context, userID string) (UserInfo, error)
	SetOnline(ctx context.Context, userID string, online bool) (UserInfo, error)
	CreateConversation(ctx context.Context, creatorID string, memberIDs []string) (ConversationInfo, error)
	AddMembers(ctx context.Context, conversationID string, userIDs []string) (ConversationInfo, error)
	SetMuted(ctx context.Context, userID, conversationID string, muted bool) error
	SendText(ctx context.Context, senderID string, to Target, content string) (MessageInfo, error)
	SendMedia(ctx context.Context, senderID string, to Target, filePath, fileType string) (MessageInfo, error)
	DeleteMessage(ctx context.Context, messageID string) error
	SetRead(ctx context.Context, messageID string, read bool) (MessageInfo, error)
	Inbox(ctx context.Context, userID string) ([]domain.Entry, error)
	History(ctx context.Context, conversationID string, limit int) ([]domain.Entry, error)
}

// Outbox accepts notifications for asynchronous publishing.
type Outbox interface {
	Enqueue(ctx context.Context, msg outbox.Message) (string, error)
}

// Target addresses either a user or a conversation; exactly one is set.
type Target struct {
	UserID         string `json:"user_id,omitempty"`
	ConversationID string `json:"conversation_id,omitempty"`
}

type UserInfo struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	ContactInfo   string   `json:"contact_info"`
	Online        bool     `json:"online"`
	Conversations []string `json:"conversations"`
}

type ConversationInfo struct {
	ID      string   `json:"id"`
	Members []string `json:"members"`
}

type MessageInfo struct {
	ID       string `json:"id"`
	SenderID string `json:"sender_id"`
	Target   Target `json:"to"`
	Read     bool   `json:"read"`
	Notified int    `json:"notified"`
}

type messengerService struct {
	mu            sync.Mutex
	users         map[string]*domain.User
	conversations map[string]*domain.Conversation
	messages      map[string]domain.Message
	outbox        Outbox
	topic         string
	logger        *zap.Logger
}

func NewMessengerService(ob Outbox, topic string, logger *zap.Logger) MessengerService {
	return &messengerService{
		users:         make(map[string]*domain.User),
		conversations: make(map[string]*domain.Conversation),
		messages:      make(map[string]domain.Message),
		outbox:        ob,
		topic:         topic,
		logger:        logger,
	}
}

func userInfo(u *domain.User) UserInfo {
	ids := []string{}
	for _, c := range u.Conversations() {
		ids = append(ids, c.ID)
	}
	return UserInfo{ID: u.ID, Name: u.Name, ContactInfo: u.ContactInfo, Online: u.Online(), Conversations: ids}
}

func conversationInfo(c *domain.Conversation) ConversationInfo {
	ids := []string{}
	for _, u := range c.Members() {
		ids = append(ids, u.ID)
	}
	return ConversationInfo{ID: c.ID, Members: ids}
}

func messageInfo(m domain.Message) MessageInfo {
	info := MessageInfo{ID: m.ID(), SenderID: m.Sender().ID, Read: m.IsRead()}
	switch to := m.Recipient(); to.Kind() {
	case domain.RecipientUser:
		info.Target.UserID = to.User().ID
	case domain.RecipientConversation:
		info.Target.ConversationID = to.Conversation().ID
	}
	return info
}

func (s *messengerService) user(id string) (*domain.User, error) {
	u, ok := s.users[id]
	if !ok {
		return nil, fmt.Errorf("user %s: %w", id, domain.ErrUserNotFound)
	}
	return u, nil
}

func (s *messengerService) conversation(id string) (*domain.Conversation, error) {
	c, ok := s.conversations[id]
	if !ok {
		return nil, fmt.Errorf("conversation %s: %w", id, domain.ErrConversationNotFound)
	}
	return c, nil
}

func (s *messengerService) message(id string) (domain.Message, error) {
	m, ok := s.messages[id]
	if !ok {
		return nil, fmt.Errorf("message %s: %w", id, domain.ErrMessageNotFound)
	}
	return m, nil
}

func (s *messengerService) recipient(to Target) (domain.Recipient, error) {
	switch {
	case to.UserID != "" && to.ConversationID != "":
		return domain.Recipient{}, fmt.Errorf("both user and conversation given: %w", domain.ErrInvalidMessage)
	case to.UserID != "":
		u, err := s.user(to.UserID)
		if err != nil {
			return domain.Recipient{}, err
		}
		return domain.ToUser(u), nil
	case to.ConversationID != "":
		c, err := s.conversation(to.ConversationID)
		if err != nil {
			return domain.Recipient{}, err
		}
		return domain.ToConversation(c), nil
	default:
		return domain.Recipient{}, fmt.Errorf("no recipient: %w", domain.ErrUserNotFound)
	}
}

func (s *messengerService) CreateUser(ctx context.Context, name, contactInfo string) (UserInfo, error) {
	u, err := domain.NewUser(name, contactInfo)
	if err != nil {
		return UserInfo{}, fmt.Errorf("failed to create user: %w", err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[u.ID] = u
	s.logger.Info("User created", zap.String("user_id", u.ID), zap.String("name", u.Name))
	return userInfo(u), nil
}

func (s *messengerService) GetUser(ctx context.Context, userID string) (UserInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, err := s.user(userID)
	if err != nil {
		return UserInfo{}, err
	}
	return userInfo(u), nil
}

func (s *messengerService) SetOnline(ctx context.Context, userID string, online bool) (UserInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, err := s.user(userID)
	if err != nil {
		return UserInfo{}, err
	}
	u.SetOnline(online)
	s.logger.Debug("User presence changed", zap.String("user_id", userID), zap.Bool("online", online))
	return userInfo(u), nil
}

func (s *messengerService) members(ids []string) ([]*domain.User, error) {
	out := make([]*domain.User, 0, len(ids))
	for _, id := range ids {
		u, err := s.user(id)
		if err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, nil
}

func (s *messengerService) CreateConversation(ctx context.Context, creatorID string, memberIDs []string) (ConversationInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	creator, err := s.user(creatorID)
	if err != nil {
		return ConversationInfo{}, err
	}
	members, err := s.members(memberIDs)
	if err != nil {
		return ConversationInfo{}, err
	}
	c := creator.CreateConversation(members...)
	s.conversations[c.ID] = c
	s.logger.Info("Conversation created", zap.String("conversation_id", c.ID), zap.Int("members", len(c.Members())))
	return conversationInfo(c), nil
}

func (s *messengerService) AddMembers(ctx context.Context, conversationID string, userIDs []string) (ConversationInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, err := s.conversation(conversationID)
	if err != nil {
		return ConversationInfo{}, err
	}
	members, err := s.members(userIDs)
	if err != nil {
		return ConversationInfo{}, err
	}
	c.AddUsers(members...)
	return conversationInfo(c), nil
}

func (s *messengerService) SetMuted(ctx context.Context, userID, conversationID string, muted bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, err := s.user(userID)
	if err != nil {
		return err
	}
	c, err := s.conversation(conversationID)
	if err != nil {
		return err
	}
	if muted {
		return u.Mute(c)
	}
	return u.Unmute(c)
}

func (s *messengerService) SendText(ctx context.Context, senderID string, to Target, content string) (MessageInfo, error) {
	return s.send(ctx, senderID, to, func(sender *domain.User, r domain.Recipient) (domain.Message, error) {
		return domain.NewTextMessage(sender, r, content)
	})
}

func (s *messengerService) SendMedia(ctx context.Context, senderID string, to Target, filePath, fileType string) (MessageInfo, error) {
	return s.send(ctx, senderID, to, func(sender *domain.User, r domain.Recipient) (domain.Message, error) {
		return domain.NewMultimediaMessage(sender, r, filePath, fileType)
	})
}

// send delivers a message and enqueues one outbox notification per notified
// user. Enqueue failures are logged; the message stays delivered.
func (s *messengerService) send(ctx context.Context, senderID string, to Target, build func(*domain.User, domain.Recipient) (domain.Message, error)) (MessageInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sender, err := s.user(senderID)
	if err != nil {
		return MessageInfo{}, err
	}
	r, err := s.recipient(to)
	if err != nil {
		return MessageInfo{}, err
	}
	msg, err := build(sender, r)
	if err != nil {
		return MessageInfo{}, fmt.Errorf("failed to build message: %w", err)
	}

	var notes []domain.Notification
	if err := msg.Send(domain.NotifierFunc(func(n domain.Notification) { notes = append(notes, n) })); err != nil {
		s.logger.Warn("Message rejected", zap.String("sender_id", senderID), zap.Error(err))
		return MessageInfo{}, err
	}
	s.messages[msg.ID()] = msg

	for _, n := range notes {
		s.enqueue(ctx, n)
	}
	s.logger.Info("Message sent",
		zap.String("message_id", msg.ID()),
		zap.String("sender_id", senderID),
		zap.Int("notified", len(notes)))

	info := messageInfo(msg)
	info.Notified = len(notes)
	return info, nil
}

func (s *messengerService) enqueue(ctx context.Context, n domain.Notification) {
	if s.outbox == nil {
		return
	}
	payload, err := json.Marshal(n)
	if err != nil {
		s.logger.Error("Failed to encode notification", zap.String("message_id", n.MessageID), zap.Error(err))
		return
	}
	aggregateType, aggregateID := "user", n.RecipientID
	if n.ConversationID != "" {
		aggregateType, aggregateID = "conversation", n.ConversationID
	}
	_, err = s.outbox.Enqueue(ctx, outbox.Message{
		AggregateID:   aggregateID,
		AggregateType: aggregateType,
		MessageType:   notificationMessageType,
		Topic:         s.topic,
		Key:           n.RecipientID,
		Payload:       payload,
	})
	if err != nil {
		s.logger.Error("Failed to enqueue notification",
			zap.String("message_id", n.MessageID),
			zap.String("recipient_id", n.RecipientID),
			zap.Error(err))
	}
}

func (s *messengerService) DeleteMessage(ctx context.Context, messageID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, err := s.message(messageID)
	if err != nil {
		return err
	}
	if err := m.Delete(); err != nil {
		return err
	}
	s.logger.Info("Message deleted", zap.String("message_id", messageID))
	return nil
}

func (s *messengerService) SetRead(ctx context.Context, messageID string, read bool) (MessageInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, err := s.message(messageID)
	if err != nil {
		return MessageInfo{}, err
	}
	if read {
		m.MarkRead()
	} else {
		m.MarkUnread()
	}
	return messageInfo(m), nil
}

func (s *messengerService) Inbox(ctx context.Context, userID string) ([]domain.Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, err := s.user(userID)
	if err != nil {
		return nil, err
	}
	return u.Inbox(), nil
}

// History returns the first limit entries of a conversation, or all of them
// when limit is zero.
func (s *messengerService) History(ctx context.Context, conversationID string, limit int) ([]domain.Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, err := s.conversation(conversationID)
	if err != nil {
		return nil, err
	}
	if limit == 0 {
		return c.Entries(), nil
	}
	return c.History(limit)
}
