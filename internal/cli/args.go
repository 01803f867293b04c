// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// args.go - Argument parsing for the chatboard CLI.

package cli

// Version information (set at build time by main).
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Command identifies which top-level command was requested.
type Command int

const (
	// CmdMenu runs the interactive menu (default, no arguments).
	CmdMenu Command = iota

	// CmdList prints the conversation table and exits.
	CmdList

	// CmdExport writes one conversation to a file and exits.
	CmdExport

	// CmdSearch prints the conversations matching a query and exits.
	CmdSearch

	// CmdVersion prints version information.
	CmdVersion

	// CmdHelp prints usage.
	CmdHelp
)

// Parse maps raw arguments (os.Args[1:]) to a command plus its remaining
// arguments. Unknown commands fall through to help.
func Parse(args []string) (Command, []string) {
	if len(args) == 0 {
		return CmdMenu, nil
	}

	switch args[0] {
	case "list", "ls":
		return CmdList, args[1:]
	case "export":
		return CmdExport, args[1:]
	case "search":
		return CmdSearch, args[1:]
	case "version", "--version", "-v":
		return CmdVersion, args[1:]
	case "help", "--help", "-h":
		return CmdHelp, args[1:]
	default:
		return CmdHelp, args
	}
}

// flagValue extracts "--name value" or "--name=value" from args.
// Returns the value and the args with the flag removed.
func flagValue(args []string, name string) (string, []string) {
	long := "--" + name
	rest := make([]string, 0, len(args))
	value := ""

	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == long && i+1 < len(args):
			value = args[i+1]
			i++
		case len(arg) > len(long)+1 && arg[:len(long)+1] == long+"=":
			value = arg[len(long)+1:]
		default:
			rest = append(rest, arg)
		}
	}
	return value, rest
}
