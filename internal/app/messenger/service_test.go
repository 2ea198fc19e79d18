package messenger

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	domain "dailyapps/internal/domain/messenger"
	"dailyapps/internal/outbox"
)

const topic = "messenger_notifications"

func setup(t *testing.T) (MessengerService, *outbox.Store) {
	t.Helper()
	store := outbox.NewStore(0)
	return NewMessengerService(store, topic, zaptest.NewLogger(t)), store
}

func mustUser(t *testing.T, s MessengerService, name string) UserInfo {
	t.Helper()
	u, err := s.CreateUser(context.Background(), name, name+"@example.com")
	require.NoError(t, err)
	return u
}

func pending(t *testing.T, store *outbox.Store) []outbox.Message {
	t.Helper()
	msgs, err := store.Pending(context.Background(), 0)
	require.NoError(t, err)
	return msgs
}

func TestConversationNotificationsGoToOutbox(t *testing.T) {
	s, store := setup(t)
	ctx := context.Background()
	alice, bob, carol := mustUser(t, s, "alice"), mustUser(t, s, "bob"), mustUser(t, s, "carol")

	conv, err := s.CreateConversation(ctx, alice.ID, []string{bob.ID, carol.ID})
	require.NoError(t, err)
	assert.Len(t, conv.Members, 3)

	for _, id := range []string{alice.ID, bob.ID, carol.ID} {
		_, err := s.SetOnline(ctx, id, true)
		require.NoError(t, err)
	}
	require.NoError(t, s.SetMuted(ctx, carol.ID, conv.ID, true))

	msg, err := s.SendText(ctx, alice.ID, Target{ConversationID: conv.ID}, "standup in 5")
	require.NoError(t, err)
	assert.Equal(t, 1, msg.Notified)

	msgs := pending(t, store)
	require.Len(t, msgs, 1)
	assert.Equal(t, topic, msgs[0].Topic)
	assert.Equal(t, bob.ID, msgs[0].Key)
	assert.Equal(t, "conversation", msgs[0].AggregateType)

	var n domain.Notification
	require.NoError(t, json.Unmarshal(msgs[0].Payload, &n))
	assert.Equal(t, "alice", n.SenderName)
	assert.Equal(t, conv.ID, n.ConversationID)

	history, err := s.History(ctx, conv.ID, 0)
	require.NoError(t, err)
	assert.Len(t, history, 1)
	_, err = s.History(ctx, conv.ID, 5)
	assert.ErrorIs(t, err, domain.ErrOutOfRange)
}

func TestDirectMessageLifecycle(t *testing.T) {
	s, store := setup(t)
	ctx := context.Background()
	alice, bob := mustUser(t, s, "alice"), mustUser(t, s, "bob")

	msg, err := s.SendMedia(ctx, alice.ID, Target{UserID: bob.ID}, "/tmp/cat.gif", "image/gif")
	require.NoError(t, err)
	assert.Zero(t, msg.Notified)
	assert.Empty(t, pending(t, store))

	read, err := s.SetRead(ctx, msg.ID, true)
	require.NoError(t, err)
	assert.True(t, read.Read)

	require.NoError(t, s.DeleteMessage(ctx, msg.ID))
	inbox, err := s.Inbox(ctx, bob.ID)
	require.NoError(t, err)
	require.Len(t, inbox, 1)
	assert.Equal(t, "alice deleted a message", inbox[0].Content)
	assert.Equal(t, "unknown", inbox[0].MediaType)

	assert.ErrorIs(t, s.DeleteMessage(ctx, msg.ID), domain.ErrInvalidMessage)
	assert.ErrorIs(t, s.DeleteMessage(ctx, "missing"), domain.ErrMessageNotFound)
}

func TestSendErrors(t *testing.T) {
	s, _ := setup(t)
	ctx := context.Background()
	alice, bob, eve := mustUser(t, s, "alice"), mustUser(t, s, "bob"), mustUser(t, s, "eve")
	conv, err := s.CreateConversation(ctx, alice.ID, []string{bob.ID})
	require.NoError(t, err)

	_, err = s.SendText(ctx, eve.ID, Target{ConversationID: conv.ID}, "hi")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
	_, err = s.SendText(ctx, alice.ID, Target{}, "hi")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
	_, err = s.SendText(ctx, alice.ID, Target{UserID: bob.ID, ConversationID: conv.ID}, "hi")
	assert.ErrorIs(t, err, domain.ErrInvalidMessage)
	_, err = s.SendText(ctx, alice.ID, Target{ConversationID: "missing"}, "hi")
	assert.ErrorIs(t, err, domain.ErrConversationNotFound)
	assert.ErrorIs(t, s.SetMuted(ctx, eve.ID, conv.ID, true), domain.ErrConversationNotFound)

	_, err = s.AddMembers(ctx, conv.ID, []string{eve.ID})
	require.NoError(t, err)
	_, err = s.SendText(ctx, eve.ID, Target{ConversationID: conv.ID}, "thanks for the invite")
	assert.NoError(t, err)
}
