// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package storage provides the chat board store: the single owner of all
// conversations, the id counter and the active username, persisted as one
// JSON document.
//
// # Key Types
//
//   - Board: the store; every mutating operation persists the full state
//     to disk before returning
//   - CorruptDataError: diagnostic for a malformed board file; the board
//     recovers with an empty conversation list instead of failing
//   - Watcher: reports external changes to the board file
//
// # Usage
//
// Open a board and drive it:
//
//	board, err := storage.Open("chat_board_data.json")
//	board.SetUsername("alice")
//	conv, err := board.CreateConversation("Lunch plans")
//	err = board.PostMessage(conv.ID, "Where should we eat?")
//
// # File Format
//
// The board file is a single JSON object:
//
//	{
//	  "conversations": [ { "title": ..., "conversation_id": ...,
//	    "created_at": ..., "messages": [...] }, ... ],
//	  "next_conversation_id": N
//	}
//
// A missing file means an empty board. A missing "conversations" key means
// an empty list; a missing "next_conversation_id" defaults to 1.
//
// The board is driven by one caller at a time within a single process; it
// performs no locking of its own.
package storage
