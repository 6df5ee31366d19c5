package repositories

import (
	"context"
	"time"

	"detailing-platform/internal/entities"
	"detailing-platform/internal/metrics"
	"detailing-platform/internal/storage"

	"github.com/samber/lo"
)

// CommunityChat owns the public chat-room messages. Rooms are identified
// by a numeric id; posting is a pure append with no moderation and no
// size limit.
type CommunityChat struct {
	store *storage.Store
}

func NewCommunityChatRepository(store *storage.Store) *CommunityChat {
	return &CommunityChat{store: store}
}

func (r *CommunityChat) GetMessages(ctx context.Context, chatID int) ([]entities.ChatMessage, error) {
	all, err := storage.GetCollection[entities.ChatMessage](ctx, r.store, storage.KeyChatMessages)
	if err != nil {
		return nil, err
	}
	return lo.Filter(all, func(m entities.ChatMessage, _ int) bool { return m.ChatID == chatID }), nil
}

func (r *CommunityChat) SendMessage(ctx context.Context, chatID int, authorID, authorName string, authorRole entities.UserRole, text, imageURL string) (*entities.ChatMessage, error) {
	metrics.RepositoryCalls.WithLabelValues("community_chat", "send_message").Inc()

	all, err := storage.GetCollection[entities.ChatMessage](ctx, r.store, storage.KeyChatMessages)
	if err != nil {
		return nil, err
	}

	message := entities.ChatMessage{
		ID:         entities.NewID(),
		ChatID:     chatID,
		AuthorID:   authorID,
		AuthorName: authorName,
		AuthorRole: authorRole,
		Text:       text,
		ImageURL:   imageURL,
		CreatedAt:  time.Now().UTC(),
	}
	if err = storage.SetCollection(ctx, r.store, storage.KeyChatMessages, append(all, message)); err != nil {
		return nil, err
	}
	return &message, nil
}
