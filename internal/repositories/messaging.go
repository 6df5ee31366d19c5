package repositories

import (
	"context"
	"time"

	"detailing-platform/internal/entities"
	"detailing-platform/internal/metrics"
	"detailing-platform/internal/storage"

	"github.com/samber/lo"
)

// Messaging owns two collections: two-party conversations and their
// messages. Messages are append-only; conversation records only carry
// denormalized metadata (last message, unread counters).
type Messaging struct {
	store *storage.Store
}

func NewMessagingRepository(store *storage.Store) *Messaging {
	return &Messaging{store: store}
}

func (r *Messaging) GetConversations(ctx context.Context, userID string) ([]entities.Conversation, error) {
	all, err := storage.GetCollection[entities.Conversation](ctx, r.store, storage.KeyConversations)
	if err != nil {
		return nil, err
	}
	return lo.Filter(all, func(c entities.Conversation, _ int) bool { return c.HasParticipant(userID) }), nil
}

// GetOrCreateConversation finds the dialog between the two users by
// unordered participant pair, creating it with zeroed unread counters when
// it does not exist yet.
func (r *Messaging) GetOrCreateConversation(ctx context.Context, a, b entities.User) (*entities.Conversation, error) {
	metrics.RepositoryCalls.WithLabelValues("messaging", "get_or_create_conversation").Inc()

	all, err := storage.GetCollection[entities.Conversation](ctx, r.store, storage.KeyConversations)
	if err != nil {
		return nil, err
	}

	if existing, found := lo.Find(all, func(c entities.Conversation) bool {
		return c.HasParticipant(a.ID) && c.HasParticipant(b.ID)
	}); found {
		return &existing, nil
	}

	conversation := entities.Conversation{
		ID:               entities.NewID(),
		ParticipantIDs:   []string{a.ID, b.ID},
		ParticipantNames: []string{a.DisplayName(), b.DisplayName()},
		ParticipantRoles: []entities.UserRole{a.Role, b.Role},
		LastMessage:      "",
		LastMessageAt:    time.Now().UTC(),
		UnreadCount:      map[string]int{a.ID: 0, b.ID: 0},
	}

	if err = storage.SetCollection(ctx, r.store, storage.KeyConversations, append(all, conversation)); err != nil {
		return nil, err
	}
	return &conversation, nil
}

func (r *Messaging) GetMessages(ctx context.Context, conversationID string) ([]entities.Message, error) {
	all, err := storage.GetCollection[entities.Message](ctx, r.store, storage.KeyMessages)
	if err != nil {
		return nil, err
	}
	return lo.Filter(all, func(m entities.Message, _ int) bool { return m.ConversationID == conversationID }), nil
}

// SendMessage appends an unread message. The message is stored even when
// the conversation id is unknown; only the conversation metadata update is
// skipped in that case.
func (r *Messaging) SendMessage(ctx context.Context, conversationID, senderID, senderName, receiverID, text string) (*entities.Message, error) {
	metrics.RepositoryCalls.WithLabelValues("messaging", "send_message").Inc()

	messages, err := storage.GetCollection[entities.Message](ctx, r.store, storage.KeyMessages)
	if err != nil {
		return nil, err
	}

	message := entities.Message{
		ID:             entities.NewID(),
		ConversationID: conversationID,
		SenderID:       senderID,
		SenderName:     senderName,
		ReceiverID:     receiverID,
		Text:           text,
		CreatedAt:      time.Now().UTC(),
		Read:           false,
	}
	if err = storage.SetCollection(ctx, r.store, storage.KeyMessages, append(messages, message)); err != nil {
		return nil, err
	}

	conversations, err := storage.GetCollection[entities.Conversation](ctx, r.store, storage.KeyConversations)
	if err != nil {
		return nil, err
	}
	if _, idx, found := lo.FindIndexOf(conversations, func(c entities.Conversation) bool { return c.ID == conversationID }); found {
		conversations[idx].LastMessage = text
		conversations[idx].LastMessageAt = message.CreatedAt
		if conversations[idx].UnreadCount == nil {
			conversations[idx].UnreadCount = map[string]int{}
		}
		conversations[idx].UnreadCount[receiverID]++
		if err = storage.SetCollection(ctx, r.store, storage.KeyConversations, conversations); err != nil {
			return nil, err
		}
	}

	return &message, nil
}

// MarkRead flags every message addressed to userID in the conversation as
// read and zeroes that user's unread counter.
func (r *Messaging) MarkRead(ctx context.Context, conversationID, userID string) error {
	metrics.RepositoryCalls.WithLabelValues("messaging", "mark_read").Inc()

	messages, err := storage.GetCollection[entities.Message](ctx, r.store, storage.KeyMessages)
	if err != nil {
		return err
	}
	for i := range messages {
		if messages[i].ConversationID == conversationID && messages[i].ReceiverID == userID {
			messages[i].Read = true
		}
	}
	if err = storage.SetCollection(ctx, r.store, storage.KeyMessages, messages); err != nil {
		return err
	}

	conversations, err := storage.GetCollection[entities.Conversation](ctx, r.store, storage.KeyConversations)
	if err != nil {
		return err
	}
	if _, idx, found := lo.FindIndexOf(conversations, func(c entities.Conversation) bool { return c.ID == conversationID }); found {
		if conversations[idx].UnreadCount == nil {
			conversations[idx].UnreadCount = map[string]int{}
		}
		conversations[idx].UnreadCount[userID] = 0
		return storage.SetCollection(ctx, r.store, storage.KeyConversations, conversations)
	}
	return nil
}
