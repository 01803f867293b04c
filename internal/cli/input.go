// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// input.go - Line input with history for the interactive menu.

package cli

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
)

// ErrInputAborted is returned when the user cancels a prompt
// (Ctrl+C or Ctrl+D).
var ErrInputAborted = errors.New("input aborted")

// Prompter provides input history and line editing for the menu.
// Supports arrow keys for history navigation.
type Prompter struct {
	line        *liner.State
	historyFile string
}

// NewPrompter creates a Prompter with history persisted under
// ~/.chatboard/history.
func NewPrompter() *Prompter {
	line := liner.NewLiner()
	line.SetCtrlCAborts(true)

	historyFile := ""
	if home, err := os.UserHomeDir(); err == nil {
		historyFile = filepath.Join(home, ".chatboard", "history")
	}

	p := &Prompter{
		line:        line,
		historyFile: historyFile,
	}
	p.loadHistory()
	return p
}

func (p *Prompter) loadHistory() {
	if p.historyFile == "" {
		return
	}
	if f, err := os.Open(p.historyFile); err == nil {
		p.line.ReadHistory(f)
		f.Close()
	}
}

func (p *Prompter) saveHistory() {
	if p.historyFile == "" {
		return
	}
	if err := os.MkdirAll(filepath.Dir(p.historyFile), 0755); err != nil {
		return
	}
	f, err := os.OpenFile(p.historyFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return
	}
	defer f.Close()
	p.line.WriteHistory(f)
}

// Ask reads one trimmed line of input with the given prompt. Aborted and
// EOF input both map to ErrInputAborted so callers have a single cancel
// path.
func (p *Prompter) Ask(prompt string) (string, error) {
	input, err := p.line.Prompt(PromptStyle.Render(prompt) + ": ")
	if err != nil {
		if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
			return "", ErrInputAborted
		}
		return "", err
	}

	input = strings.TrimSpace(input)
	if input != "" {
		p.line.AppendHistory(input)
	}
	return input, nil
}

// Pause waits for the user to press Enter.
func (p *Prompter) Pause() {
	p.line.Prompt(InfoStyle.Render("Press Enter to continue..."))
}

// Close saves history and restores the terminal.
func (p *Prompter) Close() {
	p.saveHistory()
	p.line.Close()
}
