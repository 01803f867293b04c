// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync/atomic"

	"github.com/rs/zerolog"
	"github.com/samber/lo"

	"github.com/jeranaias/chatboard-tui/internal/model"
	"github.com/jeranaias/chatboard-tui/internal/util"
)

// DefaultFileName is the board file used when no path is configured.
// Relative paths resolve against the working directory.
const DefaultFileName = "chat_board_data.json"

// boardFile is the on-disk layout of the full board state.
type boardFile struct {
	Conversations      []*model.Conversation `json:"conversations"`
	NextConversationID int                   `json:"next_conversation_id"`
}

// Board owns every conversation, the next-id counter and the active
// username. Conversations are held in creation order; ids are allocated
// strictly increasing and never reused, even after deletions.
type Board struct {
	path string
	log  zerolog.Logger

	conversations []*model.Conversation
	nextID        int
	currentUser   string

	// savedAt holds the file mtime of the board's own last save. It is
	// written on the caller's goroutine and read from the watcher
	// goroutine, hence the atomic.
	savedAt atomic.Int64
}

// Option configures a Board during Open.
type Option func(*Board)

// WithLogger attaches a logger used for load diagnostics.
func WithLogger(log zerolog.Logger) Option {
	return func(b *Board) {
		b.log = log
	}
}

// Open loads the board persisted at path.
//
// A missing file yields an empty board with the id counter at 1. A file
// that exists but is malformed yields an empty conversation list plus a
// *CorruptDataError diagnostic; the returned board is valid either way and
// the id counter keeps whatever value could still be recovered. Only read
// failures other than not-exist return a nil board.
func Open(path string, opts ...Option) (*Board, error) {
	b := &Board{
		path:          path,
		log:           zerolog.Nop(),
		conversations: make([]*model.Conversation, 0),
		nextID:        1,
	}
	for _, opt := range opts {
		opt(b)
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		b.log.Debug().Str("path", path).Msg("no board file, starting empty")
		return b, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read board file: %w", err)
	}

	var file boardFile
	if err := json.Unmarshal(data, &file); err != nil {
		b.log.Warn().Err(err).Str("path", path).
			Msg("board file is malformed, starting with an empty board")
		return b, &CorruptDataError{Path: path, Err: err}
	}

	// Best-effort counter recovery: the top-level document parsed, so a
	// present counter survives even if the conversation list is bad.
	if file.NextConversationID > 0 {
		b.nextID = file.NextConversationID
	}

	if err := validateConversations(file.Conversations); err != nil {
		b.log.Warn().Err(err).Str("path", path).
			Msg("board file failed validation, dropping conversation list")
		return b, &CorruptDataError{Path: path, Err: err}
	}

	for _, conv := range file.Conversations {
		if conv.Messages == nil {
			conv.Messages = make([]model.Message, 0)
		}
	}
	// An absent or null conversations key decodes to nil; keep the non-nil
	// empty list so a later Save never writes "conversations": null.
	if file.Conversations != nil {
		b.conversations = file.Conversations
	}

	b.log.Debug().Str("path", path).
		Int("conversations", len(b.conversations)).
		Int("next_id", b.nextID).
		Msg("board loaded")
	return b, nil
}

// validateConversations rejects records with missing required fields, the
// equivalent of a decode failure for this format.
func validateConversations(convs []*model.Conversation) error {
	for i, conv := range convs {
		if conv == nil {
			return fmt.Errorf("conversation %d: null record", i)
		}
		if conv.Title == "" {
			return fmt.Errorf("conversation %d: missing title", i)
		}
		if conv.CreatedAt.IsZero() {
			return fmt.Errorf("conversation %d (%q): missing created_at", i, conv.Title)
		}
		for j, msg := range conv.Messages {
			if msg.Author == "" {
				return fmt.Errorf("conversation %d (%q): message %d: missing author", i, conv.Title, j)
			}
			if msg.Timestamp.IsZero() {
				return fmt.Errorf("conversation %d (%q): message %d: missing timestamp", i, conv.Title, j)
			}
		}
	}
	return nil
}

// Save writes the full board state to disk, atomically replacing the
// previous file. A crash mid-save leaves the old file intact.
func (b *Board) Save() error {
	file := boardFile{
		Conversations:      b.conversations,
		NextConversationID: b.nextID,
	}

	data, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode board: %w", err)
	}
	if err := util.AtomicWriteFile(b.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write board file: %w", err)
	}
	if info, err := os.Stat(b.path); err == nil {
		b.savedAt.Store(info.ModTime().UnixNano())
	}
	return nil
}

// WroteLast reports whether the file on disk still carries the board's own
// most recent save. The watcher callback uses it to tell the board's own
// writes apart from external edits. Safe to call from other goroutines.
func (b *Board) WroteLast() bool {
	info, err := os.Stat(b.path)
	if err != nil {
		return false
	}
	return info.ModTime().UnixNano() == b.savedAt.Load()
}

// Reload re-reads the board file, replacing the conversation list and id
// counter in place. The active username is kept. When the file cannot be
// read or decoded the in-memory state stays untouched and the error
// propagates, including *CorruptDataError for a damaged file.
func (b *Board) Reload() error {
	fresh, err := Open(b.path, WithLogger(b.log))
	if err != nil {
		return err
	}
	b.conversations = fresh.conversations
	b.nextID = fresh.nextID
	return nil
}

// Path returns the board file location.
func (b *Board) Path() string {
	return b.path
}

// SetUsername sets the active poster's display name. The name is accepted
// unconditionally; callers pre-validate non-emptiness per the UI contract.
func (b *Board) SetUsername(name string) {
	b.currentUser = name
}

// Username returns the active poster's display name, empty when unset.
func (b *Board) Username() string {
	return b.currentUser
}

// CreateConversation allocates the next id, registers the conversation and
// persists. Rejecting empty titles is the caller's responsibility.
func (b *Board) CreateConversation(title string) (*model.Conversation, error) {
	conv := model.NewConversation(title)
	conv.ID = b.nextID
	b.nextID++
	b.conversations = append(b.conversations, conv)

	if err := b.Save(); err != nil {
		return nil, err
	}
	return conv, nil
}

// GetConversation returns the conversation with the given id, or
// ErrConversationNotFound.
func (b *Board) GetConversation(id int) (*model.Conversation, error) {
	conv, ok := lo.Find(b.conversations, func(c *model.Conversation) bool {
		return c.ID == id
	})
	if !ok {
		return nil, ErrConversationNotFound
	}
	return conv, nil
}

// ListConversations returns the live conversation list in creation order.
// The slice must not be mutated by callers.
func (b *Board) ListConversations() []*model.Conversation {
	return b.conversations
}

// DeleteConversation permanently removes a conversation and all its
// messages, then persists. Deleted ids are never reissued.
func (b *Board) DeleteConversation(id int) error {
	_, idx, ok := lo.FindIndexOf(b.conversations, func(c *model.Conversation) bool {
		return c.ID == id
	})
	if !ok {
		return ErrConversationNotFound
	}
	b.conversations = append(b.conversations[:idx], b.conversations[idx+1:]...)
	return b.Save()
}

// PostMessage appends a message authored by the active user to the given
// conversation, then persists. The failure causes are distinguished:
// ErrNoActiveUser, ErrEmptyContent and ErrConversationNotFound.
func (b *Board) PostMessage(id int, content string) error {
	if b.currentUser == "" {
		return ErrNoActiveUser
	}
	if content == "" {
		return ErrEmptyContent
	}

	conv, err := b.GetConversation(id)
	if err != nil {
		return err
	}
	conv.AddMessage(model.NewMessage(b.currentUser, content))
	return b.Save()
}

// SearchConversations returns the conversations whose title or message
// content contains the query, case-insensitive. An empty query matches
// everything.
func (b *Board) SearchConversations(query string) []*model.Conversation {
	if query == "" {
		return b.conversations
	}
	return lo.Filter(b.conversations, func(c *model.Conversation, _ int) bool {
		return conversationMatches(c, query)
	})
}
