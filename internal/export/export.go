// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package export renders conversations to shareable formats.
package export

import (
	"fmt"
	"path/filepath"

	"github.com/jeranaias/chatboard-tui/internal/model"
	"github.com/jeranaias/chatboard-tui/internal/util"
)

// Exporter defines the interface for conversation exporters.
type Exporter interface {
	// Export converts a conversation to the target format.
	Export(conv *model.Conversation) ([]byte, error)

	// FileExtension returns the appropriate file extension (e.g. ".md").
	FileExtension() string
}

// ForFormat returns the exporter for a format name ("markdown"/"md" or
// "json").
func ForFormat(format string) (Exporter, error) {
	switch format {
	case "markdown", "md":
		return &MarkdownExporter{}, nil
	case "json":
		return &JSONExporter{}, nil
	default:
		return nil, fmt.Errorf("unknown export format %q", format)
	}
}

// ToFile exports a conversation into dir using the given exporter and
// returns the written path. The filename is derived from the conversation
// id, e.g. conversation_3.md.
func ToFile(conv *model.Conversation, dir string, e Exporter) (string, error) {
	data, err := e.Export(conv)
	if err != nil {
		return "", err
	}

	path := filepath.Join(dir, fmt.Sprintf("conversation_%d%s", conv.ID, e.FileExtension()))
	if err := util.AtomicWriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write export: %w", err)
	}
	return path, nil
}
