// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for conversations and messages.
//
// Both types are plain values with fixed JSON field names matching the board
// file format. The model layer performs no validation and no I/O; the
// storage package owns id assignment, non-emptiness checks and persistence.
//
// # Key Types
//
//   - Message: an authored, timestamped unit of text, immutable once built
//   - Conversation: a titled, append-only thread of messages
//   - Timestamp: a time value that serializes as "YYYY-MM-DD HH:MM:SS"
package model
