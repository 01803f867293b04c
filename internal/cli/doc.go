// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli provides the terminal front end for the chat board.
//
// The interactive menu (App) is thin I/O glue: it renders menus, reads
// input and translates the choices into storage.Board operations. All
// state and persistence live in the storage package; the cli layer only
// pre-validates empty titles and usernames before calling in, per the
// board's caller contract.
//
// One-shot subcommands (list, export, search, version) live in handlers.go
// and share the same rendering helpers.
package cli
