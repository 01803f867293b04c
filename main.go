// chatboard - A terminal chat board for local conversations.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jeranaias/chatboard-tui/internal/cli"
	"github.com/jeranaias/chatboard-tui/internal/config"
	"github.com/jeranaias/chatboard-tui/internal/storage"
)

// Version information (set at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func init() {
	// Sync version info with cli package
	cli.Version = Version
	cli.GitCommit = GitCommit
	cli.BuildDate = BuildDate
}

func main() {
	cmd, args := cli.Parse(os.Args[1:])

	// Commands that need no board
	switch cmd {
	case cli.CmdVersion:
		cli.HandleVersion()
		return
	case cli.CmdHelp:
		cli.HandleHelp()
		return
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if !cfg.Color {
		cli.DisableColors()
	}

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(cfg.Level()).
		With().
		Timestamp().
		Str("session_id", uuid.NewString()).
		Logger()

	board, err := storage.Open(cfg.DataFile, storage.WithLogger(log))
	if err != nil {
		var corrupt *storage.CorruptDataError
		if !errors.As(err, &corrupt) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		// Corrupt board file: already logged, continue with the empty
		// board the store recovered to.
	}

	switch cmd {
	case cli.CmdList:
		if err := cli.HandleList(board); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case cli.CmdExport:
		if err := cli.HandleExport(board, args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case cli.CmdSearch:
		if err := cli.HandleSearch(board, args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	default:
		app := cli.NewApp(board, cfg, log)
		if err := app.Run(); err != nil {
			log.Error().Err(err).Msg("menu loop failed")
			os.Exit(1)
		}
	}
}
