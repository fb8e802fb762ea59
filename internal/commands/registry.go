// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"context"
	"errors"
	"sort"
	"strings"
)

// =============================================================================
// COMMAND DEFINITION
// =============================================================================

// Handler runs a command with its parsed arguments.
type Handler func(ctx context.Context, args []string) error

// ErrQuit is returned by a handler to end the session.
var ErrQuit = errors.New("quit")

// Command represents a slash command that can be executed.
type Command struct {
	// Name is the primary command name (e.g., "/help")
	Name string

	// Aliases are alternative names (e.g., "/h")
	Aliases []string

	// Description is shown in help
	Description string

	// Usage shows argument syntax (e.g., "/open <id>")
	Usage string

	Args []ArgDef

	Handler Handler

	// Hidden commands don't appear in help or completion
	Hidden bool
}

// ArgDef defines an argument for a command.
type ArgDef struct {
	Name     string
	Required bool

	// Description explains the argument
	Description string

	// Completer supplies candidate values, e.g. recently listed conversation ids
	Completer func() []string
}

// =============================================================================
// COMMAND REGISTRY
// =============================================================================

// Registry holds the registered commands. Names and aliases are matched
// case-insensitively.
type Registry struct {
	commands map[string]*Command
	aliases  map[string]*Command
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		commands: make(map[string]*Command),
		aliases:  make(map[string]*Command),
	}
}

// Register adds a command to the registry, replacing any command of the
// same name.
func (r *Registry) Register(cmd *Command) {
	r.commands[strings.ToLower(cmd.Name)] = cmd
	for _, alias := range cmd.Aliases {
		r.aliases[strings.ToLower(alias)] = cmd
	}
}

// Get retrieves a command by name or alias.
func (r *Registry) Get(name string) *Command {
	name = strings.ToLower(name)
	if cmd, ok := r.commands[name]; ok {
		return cmd
	}
	if cmd, ok := r.aliases[name]; ok {
		return cmd
	}
	return nil
}

// All returns the visible commands sorted by name.
func (r *Registry) All() []*Command {
	cmds := make([]*Command, 0, len(r.commands))
	for _, cmd := range r.commands {
		if !cmd.Hidden {
			cmds = append(cmds, cmd)
		}
	}
	sort.Slice(cmds, func(i, j int) bool { return cmds[i].Name < cmds[j].Name })
	return cmds
}

// =============================================================================
// EXECUTION
// =============================================================================

// UnknownCommandError is returned by Execute for an unregistered name.
type UnknownCommandError struct {
	Name string
}

func (e *UnknownCommandError) Error() string {
	return "unknown command: " + e.Name
}

// Execute parses input and runs the matching handler. Input that is not a
// command is an error; callers check IsCommand first.
func (r *Registry) Execute(ctx context.Context, input string) error {
	res := r.Parse(input)
	if !res.IsCommand {
		return errors.New("not a command")
	}
	if res.Command == nil {
		return &UnknownCommandError{Name: res.CommandName}
	}
	if err := ValidateArgs(res.Command, res.Args); err != nil {
		return err
	}
	if res.Command.Handler == nil {
		return nil
	}
	return res.Command.Handler(ctx, res.Args)
}
