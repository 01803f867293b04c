// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import (
	"fmt"

	"github.com/jeranaias/chatboard-tui/internal/util"
)

// Message represents a single message in a conversation. Fields are set at
// construction and never mutated afterwards; the serialized record carries
// exactly these three fields.
type Message struct {
	Author    string    `json:"author"`
	Content   string    `json:"content"`
	Timestamp Timestamp `json:"timestamp"`
}

// NewMessage creates a message stamped with the current local time.
func NewMessage(author, content string) Message {
	return NewMessageAt(author, content, Now())
}

// NewMessageAt creates a message with an explicit timestamp. Posting always
// goes through NewMessage; this constructor exists for reconstructing
// history and for tests.
func NewMessageAt(author, content string, at Timestamp) Message {
	return Message{
		Author:    author,
		Content:   content,
		Timestamp: at,
	}
}

// String renders the message the way the board displays it:
// "[timestamp] author: content".
func (m Message) String() string {
	return fmt.Sprintf("[%s] %s: %s", m.Timestamp, m.Author, m.Content)
}

// Preview returns a truncated preview of the content, rune-based so
// multi-byte characters are never split.
func (m Message) Preview(maxLen int) string {
	return util.TruncateString(m.Content, maxLen)
}
