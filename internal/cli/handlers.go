// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// handlers.go - One-shot command handlers for the chatboard CLI.
//
// Command: list
// Short:   Print the conversation table
//
// Command: export
// Short:   Write one conversation to a file
//
// Command: search
// Short:   Find conversations by title or content
//
// Examples:
//   chatboard list                     Print all conversations
//   chatboard search tacos             Find conversations mentioning tacos
//   chatboard export 3                 Export conversation 3 as Markdown
//   chatboard export 3 --format json   Export as JSON
//   chatboard export 3 --out ~/notes   Choose the output directory

package cli

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/jeranaias/chatboard-tui/internal/export"
	"github.com/jeranaias/chatboard-tui/internal/storage"
)

// HandleList prints the conversation table to stdout.
func HandleList(board *storage.Board) error {
	RenderConversationTable(os.Stdout, board.ListConversations())
	return nil
}

// HandleExport writes one conversation to a file.
// Usage: export <id> [--format md|json] [--out dir]
func HandleExport(board *storage.Board, args []string) error {
	format, args := flagValue(args, "format")
	if format == "" {
		format = "markdown"
	}
	outDir, args := flagValue(args, "out")
	if outDir == "" {
		outDir = "."
	}

	if len(args) != 1 {
		return fmt.Errorf("usage: chatboard export <id> [--format md|json] [--out dir]")
	}
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid conversation id %q", args[0])
	}

	conv, err := board.GetConversation(id)
	if err != nil {
		return err
	}

	exporter, err := export.ForFormat(format)
	if err != nil {
		return err
	}

	path, err := export.ToFile(conv, outDir, exporter)
	if err != nil {
		return err
	}
	Success(os.Stdout, "Exported conversation %d to %s", id, path)
	return nil
}

// HandleSearch prints the conversations whose title or content matches the
// query. Usage: search <query...>
func HandleSearch(board *storage.Board, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: chatboard search <query>")
	}
	query := strings.Join(args, " ")

	matches := board.SearchConversations(query)
	if len(matches) == 0 {
		fmt.Printf("No conversations match %q.\n", query)
		return nil
	}
	RenderConversationTable(os.Stdout, matches)
	return nil
}

// HandleVersion prints version information.
func HandleVersion() {
	fmt.Printf("chatboard %s (commit %s, built %s)\n", Version, GitCommit, BuildDate)
}

// HandleHelp prints usage.
func HandleHelp() {
	fmt.Println(`chatboard - a terminal chat board

Usage:
  chatboard                 Start the interactive menu
  chatboard list            Print the conversation table
  chatboard export <id>     Export a conversation (--format md|json, --out dir)
  chatboard search <query>  Find conversations by title or content
  chatboard version         Print version information
  chatboard help            Show this help

Configuration:
  ~/.chatboard/config.toml  data_file, default_username, color, log_level
  CHATBOARD_* variables     override any config value`)
}
