package entities

import "time"

// Conversation is a two-party dialog. UnreadCount is keyed by the two
// participant ids only.
type Conversation struct {
	ID               string         `json:"id"`
	ParticipantIDs   []string       `json:"participantIds"`
	ParticipantNames []string       `json:"participantNames"`
	ParticipantRoles []UserRole     `json:"participantRoles"`
	LastMessage      string         `json:"lastMessage"`
	LastMessageAt    time.Time      `json:"lastMessageAt"`
	UnreadCount      map[string]int `json:"unreadCount"`
}

// HasParticipant reports whether userID is one of the two participants.
func (c Conversation) HasParticipant(userID string) bool {
	for _, id := range c.ParticipantIDs {
		if id == userID {
			return true
		}
	}
	return false
}

// Message is append-only: records are never edited except for the read flag.
type Message struct {
	ID             string    `json:"id"`
	ConversationID string    `json:"conversationId"`
	SenderID       string    `json:"senderId"`
	SenderName     string    `json:"senderName"`
	ReceiverID     string    `json:"receiverId"`
	Text           string    `json:"text"`
	CreatedAt      time.Time `json:"createdAt"`
	Read           bool      `json:"read"`
}

// ChatMessage belongs to a public community chat room, not a conversation.
type ChatMessage struct {
	ID         string    `json:"id"`
	ChatID     int       `json:"chatId"`
	AuthorID   string    `json:"authorId"`
	AuthorName string    `json:"authorName"`
	AuthorRole UserRole  `json:"authorRole"`
	Text       string    `json:"text"`
	ImageURL   string    `json:"imageUrl,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}
