package domain

import (
	"errors"
	"strings"
	"time"
)

const maxMessageLen = 1000

var ErrMessageNotFound = errors.New("message not found")
var ErrEmptyMessage = errors.New("message cannot be empty or just whitespace")
var ErrMessageTooLong = errors.New("message must be less than 1000 characters")
var ErrUnsafeMessage = errors.New("potentially unsafe content detected")

// Message is a single chat message inside a conversation.
type Message struct {
	ID             int64     `json:"id"`
	ConversationID int64     `json:"conversation_id"`
	SenderID       int64     `json:"sender_id"`
	ReceiverID     int64     `json:"receiver_id"`
	Content        string    `json:"content"`
	SentAt         time.Time `json:"sent_at"`
}

// ValidateMessageContent trims content and applies the message rules:
// non-blank, bounded length, no embedded script tags. Returns the trimmed
// content on success.
func ValidateMessageContent(content string) (string, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return "", ErrEmptyMessage
	}
	if len(content) > maxMessageLen {
		return "", ErrMessageTooLong
	}
	if strings.Contains(strings.ToLower(content), "<script") {
		return "", ErrUnsafeMessage
	}
	return content, nil
}
