// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

// =============================================================================
// TIMESTAMP TESTS
// =============================================================================

func TestTimestamp_FixedLayout(t *testing.T) {
	ts := NewTimestamp(time.Date(2025, 3, 14, 9, 26, 53, 987654321, time.Local))

	if got := ts.String(); got != "2025-03-14 09:26:53" {
		t.Errorf("String() = %q, want %q", got, "2025-03-14 09:26:53")
	}
}

func TestTimestamp_JSONRoundTrip(t *testing.T) {
	original := Now()

	data, err := json.Marshal(original)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if !strings.HasPrefix(string(data), `"`) {
		t.Errorf("Timestamp should serialize as a string, got %s", data)
	}

	var decoded Timestamp
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if !decoded.Equal(original.Time) {
		t.Errorf("round trip changed timestamp: %v -> %v", original, decoded)
	}
}

func TestTimestamp_UnmarshalEmpty(t *testing.T) {
	var ts Timestamp
	if err := json.Unmarshal([]byte(`""`), &ts); err != nil {
		t.Fatalf("Unmarshal of empty string failed: %v", err)
	}
	if !ts.IsZero() {
		t.Error("empty timestamp should decode to the zero value")
	}
}

func TestTimestamp_UnmarshalInvalid(t *testing.T) {
	var ts Timestamp
	if err := json.Unmarshal([]byte(`"not-a-time"`), &ts); err == nil {
		t.Error("expected error for invalid timestamp")
	}
}

// =============================================================================
// MESSAGE TESTS
// =============================================================================

func TestNewMessage(t *testing.T) {
	before := time.Now().Truncate(time.Second)
	msg := NewMessage("alice", "Hello there")

	if msg.Author != "alice" {
		t.Errorf("Author = %q, want %q", msg.Author, "alice")
	}
	if msg.Content != "Hello there" {
		t.Errorf("Content = %q, want %q", msg.Content, "Hello there")
	}
	if msg.Timestamp.Time.Before(before) {
		t.Errorf("Timestamp %v should not be earlier than %v", msg.Timestamp, before)
	}
}

func TestMessage_String(t *testing.T) {
	at := NewTimestamp(time.Date(2025, 1, 2, 15, 4, 5, 0, time.Local))
	msg := NewMessageAt("bob", "hi all", at)

	want := "[2025-01-02 15:04:05] bob: hi all"
	if got := msg.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestMessage_Preview(t *testing.T) {
	tests := []struct {
		content string
		maxLen  int
		want    string
	}{
		{"hello", 10, "hello"},
		{"hello world", 8, "hello..."},
		{"hi", 2, "hi"},
		{"hello", 3, "hel"},
		{"", 5, ""},
		{"hello", 0, ""},
		{"日本語のテスト", 5, "日本..."},
	}

	for _, tc := range tests {
		msg := NewMessage("a", tc.content)
		if got := msg.Preview(tc.maxLen); got != tc.want {
			t.Errorf("Preview(%q, %d) = %q, want %q", tc.content, tc.maxLen, got, tc.want)
		}
	}
}

// =============================================================================
// CONVERSATION TESTS
// =============================================================================

func TestNewConversation(t *testing.T) {
	before := time.Now().Truncate(time.Second)
	conv := NewConversation("Lunch plans")

	if conv.Title != "Lunch plans" {
		t.Errorf("Title = %q, want %q", conv.Title, "Lunch plans")
	}
	if conv.ID != 0 {
		t.Errorf("ID = %d, want 0 (unassigned)", conv.ID)
	}
	if conv.CreatedAt.Time.Before(before) {
		t.Errorf("CreatedAt %v should not be earlier than %v", conv.CreatedAt, before)
	}
	if conv.Messages == nil || len(conv.Messages) != 0 {
		t.Error("new conversation should have an empty, non-nil message list")
	}
}

func TestConversation_AddMessagePreservesOrder(t *testing.T) {
	conv := NewConversation("Order")
	for _, content := range []string{"first", "second", "third"} {
		conv.AddMessage(NewMessage("alice", content))
	}

	if conv.MessageCount() != 3 {
		t.Fatalf("MessageCount() = %d, want 3", conv.MessageCount())
	}
	for i, want := range []string{"first", "second", "third"} {
		if conv.Messages[i].Content != want {
			t.Errorf("Messages[%d].Content = %q, want %q", i, conv.Messages[i].Content, want)
		}
	}

	last, ok := conv.LastMessage()
	if !ok || last.Content != "third" {
		t.Errorf("LastMessage() = %q, %v, want %q, true", last.Content, ok, "third")
	}
}

func TestConversation_Empty(t *testing.T) {
	conv := NewConversation("Quiet")

	if !conv.IsEmpty() {
		t.Error("IsEmpty() should be true for a new conversation")
	}
	if _, ok := conv.LastMessage(); ok {
		t.Error("LastMessage() should report no message")
	}
	if got := conv.Preview(20); got != "No messages yet" {
		t.Errorf("Preview() = %q, want placeholder", got)
	}
}

func TestConversation_JSONRoundTrip(t *testing.T) {
	conv := NewConversation("Round trip")
	conv.ID = 7
	conv.AddMessage(NewMessage("alice", "first"))
	conv.AddMessage(NewMessage("bob", "second"))

	data, err := json.Marshal(conv)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	for _, key := range []string{`"title"`, `"conversation_id"`, `"created_at"`, `"messages"`, `"author"`, `"content"`, `"timestamp"`} {
		if !strings.Contains(string(data), key) {
			t.Errorf("serialized conversation missing %s key: %s", key, data)
		}
	}

	var decoded Conversation
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}

	if decoded.ID != 7 {
		t.Errorf("decoded ID = %d, want 7 (must not be regenerated)", decoded.ID)
	}
	if decoded.Title != conv.Title {
		t.Errorf("decoded Title = %q, want %q", decoded.Title, conv.Title)
	}
	if !decoded.CreatedAt.Equal(conv.CreatedAt.Time) {
		t.Errorf("decoded CreatedAt = %v, want %v", decoded.CreatedAt, conv.CreatedAt)
	}
	if len(decoded.Messages) != 2 {
		t.Fatalf("decoded message count = %d, want 2", len(decoded.Messages))
	}
	for i := range conv.Messages {
		if decoded.Messages[i].Author != conv.Messages[i].Author ||
			decoded.Messages[i].Content != conv.Messages[i].Content ||
			!decoded.Messages[i].Timestamp.Equal(conv.Messages[i].Timestamp.Time) {
			t.Errorf("message %d changed in round trip: %+v != %+v", i, decoded.Messages[i], conv.Messages[i])
		}
	}
}

func TestConversation_UnmarshalWithoutID(t *testing.T) {
	raw := `{"title": "No id yet", "created_at": "2025-01-02 15:04:05", "messages": []}`

	var conv Conversation
	if err := json.Unmarshal([]byte(raw), &conv); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if conv.ID != 0 {
		t.Errorf("ID = %d, want 0 for an absent conversation_id", conv.ID)
	}
}
