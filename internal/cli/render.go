// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// render.go - Output rendering for the chatboard CLI.

package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/jeranaias/chatboard-tui/internal/model"
	"github.com/jeranaias/chatboard-tui/internal/util"
)

// RenderHeader prints a banner-style section header.
func RenderHeader(w io.Writer, title string) {
	line := strings.Repeat("=", 60)
	fmt.Fprintln(w)
	fmt.Fprintln(w, line)
	fmt.Fprintln(w, TitleStyle.Render("  "+title))
	fmt.Fprintln(w, line)
}

// RenderSeparator prints a thin separator line.
func RenderSeparator(w io.Writer) {
	fmt.Fprintln(w, InfoStyle.Render(strings.Repeat("-", 60)))
}

// RenderConversationTable prints the conversation list as a table.
func RenderConversationTable(w io.Writer, convs []*model.Conversation) {
	if len(convs) == 0 {
		fmt.Fprintln(w, InfoStyle.Render("No conversations yet. Create one to get started!"))
		return
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "Title", "Created", "Messages", "Last Message"})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("  ")

	for _, conv := range convs {
		table.Append([]string{
			strconv.Itoa(conv.ID),
			util.TruncateString(conv.Title, 40),
			conv.CreatedAt.String(),
			strconv.Itoa(conv.MessageCount()),
			util.TruncateString(util.SingleLine(conv.Preview(40)), 40),
		})
	}
	table.Render()
}

// RenderConversationChoices prints the short id/title list shown before
// id prompts.
func RenderConversationChoices(w io.Writer, convs []*model.Conversation) {
	for _, conv := range convs {
		fmt.Fprintf(w, "  %s %s %s\n",
			util.PadRight(strconv.Itoa(conv.ID)+".", 5),
			util.PadRight(util.TruncateString(conv.Title, 40), 42),
			InfoStyle.Render(fmt.Sprintf("(%d messages)", conv.MessageCount())))
	}
}

// RenderMessage prints one message in the board's display form:
// "[timestamp] author: content".
func RenderMessage(w io.Writer, msg model.Message) {
	fmt.Fprintf(w, "%s %s %s\n",
		TimestampStyle.Render("["+msg.Timestamp.String()+"]"),
		AuthorStyle.Render(msg.Author+":"),
		msg.Content)
}

// RenderMessages prints a conversation's history, oldest first.
func RenderMessages(w io.Writer, conv *model.Conversation) {
	if conv.IsEmpty() {
		fmt.Fprintln(w, InfoStyle.Render("No messages yet. Be the first to post!"))
		return
	}
	RenderSeparator(w)
	for _, msg := range conv.Messages {
		RenderMessage(w, msg)
	}
	RenderSeparator(w)
}

// Success prints a checkmarked confirmation.
func Success(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, SuccessStyle.Render("✓ "+fmt.Sprintf(format, args...)))
}

// Failure prints a crossmarked error message.
func Failure(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, ErrorStyle.Render("✗ "+fmt.Sprintf(format, args...)))
}
