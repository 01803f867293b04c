// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// app.go - Interactive menu loop for the chat board.
//
// Mirrors the classic board flow: a numbered main menu (list, create,
// open, delete, username, quit) and a per-conversation submenu (post,
// refresh, back). Every state change goes through storage.Board.

package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/jeranaias/chatboard-tui/internal/config"
	"github.com/jeranaias/chatboard-tui/internal/storage"
)

// App drives the interactive menu against a single board.
type App struct {
	board  *storage.Board
	cfg    config.Config
	log    zerolog.Logger
	prompt *Prompter
	out    io.Writer

	// stale is flipped by the file watcher when the board file changes
	// on disk; the menu offers a reload on the next refresh.
	stale atomic.Bool
}

// NewApp creates the menu application around an opened board.
func NewApp(board *storage.Board, cfg config.Config, log zerolog.Logger) *App {
	return &App{
		board:  board,
		cfg:    cfg,
		log:    log,
		prompt: NewPrompter(),
		out:    os.Stdout,
	}
}

// Run executes the menu loop until the user quits. The returned error is
// nil for a user-initiated exit.
func (a *App) Run() error {
	defer a.prompt.Close()

	watcher, err := storage.NewWatcher(a.board.Path(), func() {
		// The app's own saves come back as file events too; only
		// external edits should read as stale.
		if a.board.WroteLast() {
			return
		}
		a.stale.Store(true)
	})
	if err != nil {
		// The menu works without live change detection.
		a.log.Debug().Err(err).Msg("board file watcher unavailable")
	} else {
		defer watcher.Close()
	}

	a.welcome()

	for {
		ClearScreen()
		a.mainMenu()

		choice, err := a.prompt.Ask("\nEnter your choice (1-6)")
		if err != nil {
			fmt.Fprintln(a.out, "\nGoodbye!")
			return nil
		}

		switch choice {
		case "1":
			a.listConversations()
		case "2":
			a.createConversation()
		case "3":
			a.openConversation()
		case "4":
			a.deleteConversation()
		case "5":
			a.changeUsername()
		case "6", "q", "quit", "exit":
			ClearScreen()
			fmt.Fprintln(a.out, "\nThank you for using the chat board. Goodbye!")
			return nil
		default:
			Failure(a.out, "Invalid choice! Please enter a number from 1-6.")
			a.prompt.Pause()
		}
	}
}

func (a *App) welcome() {
	ClearScreen()
	RenderHeader(a.out, "WELCOME TO THE CHAT BOARD")
	fmt.Fprintln(a.out, "\nCreate conversations, post messages, and more!")

	if a.cfg.DefaultUsername != "" {
		a.board.SetUsername(a.cfg.DefaultUsername)
		fmt.Fprintf(a.out, "\nWelcome back, %s!\n", a.board.Username())
		a.prompt.Pause()
		return
	}

	name, err := a.prompt.Ask("\nEnter your username")
	if err == nil && name != "" {
		a.board.SetUsername(name)
		fmt.Fprintf(a.out, "\nWelcome, %s!\n", name)
	} else {
		fmt.Fprintln(a.out, WarningStyle.Render("\nNo username set. You can set it later from the menu."))
	}
	a.prompt.Pause()
}

func (a *App) mainMenu() {
	RenderHeader(a.out, "CHAT BOARD")
	fmt.Fprintln(a.out, "\nMain Menu:")
	fmt.Fprintln(a.out, "  1. List all conversations")
	fmt.Fprintln(a.out, "  2. Create new conversation")
	fmt.Fprintln(a.out, "  3. Open conversation")
	fmt.Fprintln(a.out, "  4. Delete conversation")
	fmt.Fprintln(a.out, "  5. Change username")
	fmt.Fprintln(a.out, "  6. Exit")
	RenderSeparator(a.out)

	if user := a.board.Username(); user != "" {
		fmt.Fprintf(a.out, "\nLogged in as: %s\n", AuthorStyle.Render(user))
	} else {
		fmt.Fprintln(a.out, WarningStyle.Render("\nWarning: No username set! Set one to post messages."))
	}

	if a.stale.Load() {
		fmt.Fprintln(a.out, WarningStyle.Render("Board file changed on disk - open a conversation and refresh to reload."))
	}
}

func (a *App) listConversations() {
	ClearScreen()
	RenderHeader(a.out, "ALL CONVERSATIONS")
	fmt.Fprintln(a.out)
	RenderConversationTable(a.out, a.board.ListConversations())
	a.prompt.Pause()
}

func (a *App) createConversation() {
	ClearScreen()
	RenderHeader(a.out, "CREATE NEW CONVERSATION")

	title, err := a.prompt.Ask("Enter conversation title")
	if err != nil {
		return
	}
	if title == "" {
		Failure(a.out, "Title cannot be empty!")
		a.prompt.Pause()
		return
	}

	conv, err := a.board.CreateConversation(title)
	if err != nil {
		Failure(a.out, "Could not save the conversation: %v", err)
		a.prompt.Pause()
		return
	}
	Success(a.out, "Conversation %q created successfully!", title)
	fmt.Fprintf(a.out, "  Conversation ID: %d\n", conv.ID)
	a.prompt.Pause()
}

func (a *App) openConversation() {
	ClearScreen()
	RenderHeader(a.out, "OPEN CONVERSATION")

	convs := a.board.ListConversations()
	if len(convs) == 0 {
		fmt.Fprintln(a.out, InfoStyle.Render("\nNo conversations available. Create one first!"))
		a.prompt.Pause()
		return
	}

	fmt.Fprintln(a.out, "\nAvailable conversations:")
	RenderConversationChoices(a.out, convs)

	id, ok := a.askConversationID("\nEnter conversation ID")
	if !ok {
		return
	}

	if _, err := a.board.GetConversation(id); err != nil {
		Failure(a.out, "Conversation not found!")
		a.prompt.Pause()
		return
	}
	a.conversationMenu(id)
}

// conversationMenu keeps the id rather than the conversation pointer, so
// a refresh (or a reload after an external change) re-resolves it.
func (a *App) conversationMenu(id int) {
	for {
		conv, err := a.board.GetConversation(id)
		if err != nil {
			Failure(a.out, "Conversation no longer exists!")
			a.prompt.Pause()
			return
		}

		ClearScreen()
		RenderHeader(a.out, "CONVERSATION: "+conv.Title)
		fmt.Fprintln(a.out)
		RenderMessages(a.out, conv)

		fmt.Fprintln(a.out, "\nOptions:")
		fmt.Fprintln(a.out, "  1. Post a message")
		fmt.Fprintln(a.out, "  2. Refresh messages")
		fmt.Fprintln(a.out, "  3. Back to main menu")

		choice, err := a.prompt.Ask("\nEnter your choice (1-3)")
		if err != nil {
			return
		}

		switch choice {
		case "1":
			a.postMessage(id)
		case "2":
			a.refresh()
		case "3", "b", "back":
			return
		default:
			Failure(a.out, "Invalid choice!")
			a.prompt.Pause()
		}
	}
}

func (a *App) postMessage(id int) {
	fmt.Fprintln(a.out)
	RenderHeader(a.out, "POST MESSAGE")

	if a.board.Username() == "" {
		Failure(a.out, "You must set a username first!")
		a.prompt.Pause()
		return
	}

	content, err := a.prompt.Ask("Enter your message (or press Enter to cancel)")
	if err != nil || content == "" {
		return
	}

	if err := a.board.PostMessage(id, content); err != nil {
		switch {
		case errors.Is(err, storage.ErrNoActiveUser):
			Failure(a.out, "You must set a username first!")
		case errors.Is(err, storage.ErrConversationNotFound):
			Failure(a.out, "Conversation no longer exists!")
		default:
			Failure(a.out, "Failed to post message: %v", err)
		}
		a.prompt.Pause()
		return
	}
	Success(a.out, "Message posted successfully!")
}

// refresh reloads the board from disk when the watcher flagged an
// external change; otherwise the next loop iteration re-reads memory.
func (a *App) refresh() {
	if !a.stale.Load() {
		return
	}

	if err := a.board.Reload(); err != nil {
		var corrupt *storage.CorruptDataError
		if !errors.As(err, &corrupt) {
			Failure(a.out, "Could not reload the board: %v", err)
			a.prompt.Pause()
			return
		}
		Failure(a.out, "Board file on disk is corrupt; keeping the in-memory state.")
		a.prompt.Pause()
		a.stale.Store(false)
		return
	}

	a.stale.Store(false)
	a.log.Info().Msg("board reloaded after external change")
}

func (a *App) deleteConversation() {
	ClearScreen()
	RenderHeader(a.out, "DELETE CONVERSATION")

	convs := a.board.ListConversations()
	if len(convs) == 0 {
		fmt.Fprintln(a.out, InfoStyle.Render("\nNo conversations to delete!"))
		a.prompt.Pause()
		return
	}

	fmt.Fprintln(a.out, "\nAvailable conversations:")
	RenderConversationChoices(a.out, convs)

	id, ok := a.askConversationID("\nEnter conversation ID to delete")
	if !ok {
		return
	}

	confirm, err := a.prompt.Ask(fmt.Sprintf("Are you sure you want to delete conversation %d? (yes/no)", id))
	if err != nil {
		return
	}
	if confirm != "yes" && confirm != "y" {
		Failure(a.out, "Deletion cancelled!")
		a.prompt.Pause()
		return
	}

	if err := a.board.DeleteConversation(id); err != nil {
		if errors.Is(err, storage.ErrConversationNotFound) {
			Failure(a.out, "Conversation %d not found!", id)
		} else {
			Failure(a.out, "Failed to delete conversation: %v", err)
		}
		a.prompt.Pause()
		return
	}
	Success(a.out, "Conversation %d deleted successfully!", id)
	a.prompt.Pause()
}

func (a *App) changeUsername() {
	ClearScreen()
	RenderHeader(a.out, "CHANGE USERNAME")

	current := a.board.Username()
	if current == "" {
		current = "Not set"
	}
	fmt.Fprintf(a.out, "\nCurrent username: %s\n", current)

	name, err := a.prompt.Ask("Enter new username")
	if err != nil {
		return
	}
	if name == "" {
		Failure(a.out, "Username cannot be empty!")
		a.prompt.Pause()
		return
	}

	a.board.SetUsername(name)
	Success(a.out, "Username changed to: %s", name)
	a.prompt.Pause()
}

// askConversationID prompts for and parses a numeric conversation id.
// ok is false when the user cancelled or typed something non-numeric.
func (a *App) askConversationID(prompt string) (int, bool) {
	raw, err := a.prompt.Ask(prompt)
	if err != nil {
		return 0, false
	}
	id, convErr := strconv.Atoi(raw)
	if convErr != nil {
		Failure(a.out, "Invalid conversation ID!")
		a.prompt.Pause()
		return 0, false
	}
	return id, true
}
