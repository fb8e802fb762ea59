// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package commands provides the slash command system for line-mode chat.
//
// # Key Types
//
//   - Registry: commands by name and alias
//   - Command: name, usage, argument definitions and Handler
//   - ParseResult: parsed command with name and arguments
//
// # Usage
//
// Register and execute a command:
//
//	reg := commands.NewRegistry()
//	reg.Register(&commands.Command{Name: "/quit", Handler: quit})
//	if commands.IsCommand(input) {
//	    err := reg.Execute(ctx, input)
//	}
//
// Get completions:
//
//	reg.Complete("/op")
//	// Returns ["/open"]
package commands
