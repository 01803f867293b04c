// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package storage

import (
	"strings"

	"github.com/jeranaias/chatboard-tui/internal/model"
)

// conversationMatches reports whether the title or any message content
// contains the query, case-insensitive.
func conversationMatches(conv *model.Conversation, query string) bool {
	query = strings.ToLower(query)
	if strings.Contains(strings.ToLower(conv.Title), query) {
		return true
	}
	for _, msg := range conv.Messages {
		if strings.Contains(strings.ToLower(msg.Content), query) {
			return true
		}
	}
	return false
}
