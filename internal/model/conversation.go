// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

// Conversation holds a titled, ordered thread of messages with board
// metadata. Message order is append-only: the slice is the chronological
// post order and is never reordered or edited in place.
type Conversation struct {
	Title     string    `json:"title"`
	ID        int       `json:"conversation_id"`
	CreatedAt Timestamp `json:"created_at"`
	Messages  []Message `json:"messages"`
}

// NewConversation creates an empty conversation with created_at set to now.
// The board assigns the ID when the conversation is registered; a zero ID
// means unassigned. The deserializer keeps whatever ID the file carries.
func NewConversation(title string) *Conversation {
	return &Conversation{
		Title:     title,
		CreatedAt: Now(),
		Messages:  make([]Message, 0),
	}
}

// AddMessage appends a message to the thread.
func (c *Conversation) AddMessage(msg Message) {
	c.Messages = append(c.Messages, msg)
}

// MessageCount returns the number of messages in the conversation.
func (c *Conversation) MessageCount() int {
	return len(c.Messages)
}

// LastMessage returns the most recent message. ok is false when the
// conversation is empty.
func (c *Conversation) LastMessage() (Message, bool) {
	if len(c.Messages) == 0 {
		return Message{}, false
	}
	return c.Messages[len(c.Messages)-1], true
}

// IsEmpty returns true if there are no messages.
func (c *Conversation) IsEmpty() bool {
	return len(c.Messages) == 0
}

// Preview returns a short preview of the latest message, or a placeholder
// for an empty conversation.
func (c *Conversation) Preview(maxLen int) string {
	last, ok := c.LastMessage()
	if !ok {
		return "No messages yet"
	}
	return last.Preview(maxLen)
}
