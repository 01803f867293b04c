// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package storage

import "fmt"

// Sentinel errors returned by board operations. Use errors.Is to check.
//
// PostMessage distinguishes its failure causes instead of collapsing them
// into a single "failed" result, so the front end can tell the user whether
// the conversation is gone or a username is missing.
var (
	ErrConversationNotFound = &BoardError{Message: "conversation not found"}
	ErrNoActiveUser         = &BoardError{Message: "no active username set"}
	ErrEmptyContent         = &BoardError{Message: "message content is empty"}
)

// BoardError represents a board-level error condition.
// It implements the error interface and can be compared using errors.Is.
type BoardError struct {
	Message string
}

// Error implements the error interface.
func (e *BoardError) Error() string {
	return e.Message
}

// Is implements errors.Is support for comparing board errors.
func (e *BoardError) Is(target error) bool {
	t, ok := target.(*BoardError)
	if !ok {
		return false
	}
	return e.Message == t.Message
}

// CorruptDataError reports a board file that exists but could not be
// decoded or validated. Open returns it alongside a valid, empty board;
// the caller may surface or ignore it, the process never terminates over
// a bad file.
type CorruptDataError struct {
	Path string
	Err  error
}

// Error implements the error interface.
func (e *CorruptDataError) Error() string {
	return fmt.Sprintf("board file %s is corrupt: %v", e.Path, e.Err)
}

// Unwrap returns the underlying decode or validation error.
func (e *CorruptDataError) Unwrap() error {
	return e.Err
}
