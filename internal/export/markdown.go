// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"fmt"
	"strings"

	"github.com/jeranaias/chatboard-tui/internal/model"
)

// MarkdownExporter exports conversations to Markdown format.
type MarkdownExporter struct{}

// Export converts a conversation to Markdown with a metadata frontmatter
// block and one section per message.
func (e *MarkdownExporter) Export(conv *model.Conversation) ([]byte, error) {
	if conv == nil {
		return nil, fmt.Errorf("conversation is nil")
	}

	var sb strings.Builder

	sb.WriteString("---\n")
	sb.WriteString(fmt.Sprintf("title: %s\n", escapeYAML(conv.Title)))
	sb.WriteString(fmt.Sprintf("conversation_id: %d\n", conv.ID))
	sb.WriteString(fmt.Sprintf("created: %s\n", conv.CreatedAt))
	sb.WriteString(fmt.Sprintf("messages: %d\n", conv.MessageCount()))
	sb.WriteString("generator: chatboard-tui\n")
	sb.WriteString("---\n\n")

	sb.WriteString(fmt.Sprintf("# %s\n\n", conv.Title))

	if conv.IsEmpty() {
		sb.WriteString("_No messages._\n")
		return []byte(sb.String()), nil
	}

	for _, msg := range conv.Messages {
		sb.WriteString(fmt.Sprintf("**%s** (%s):\n\n", msg.Author, msg.Timestamp))
		sb.WriteString(msg.Content)
		sb.WriteString("\n\n---\n\n")
	}

	return []byte(sb.String()), nil
}

// FileExtension returns ".md".
func (e *MarkdownExporter) FileExtension() string {
	return ".md"
}

// escapeYAML quotes a value when it would break the frontmatter block.
func escapeYAML(s string) string {
	if strings.ContainsAny(s, ":#\"'\n") {
		return fmt.Sprintf("%q", strings.ReplaceAll(s, "\n", " "))
	}
	return s
}
