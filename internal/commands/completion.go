// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"sort"
	"strings"
	"unicode"
)

// Complete returns whole-line candidates for line, in the shape
// liner.State.SetCompleter expects. Lines that are not commands get none.
func (r *Registry) Complete(line string) []string {
	if !strings.HasPrefix(line, "/") {
		return nil
	}

	end := strings.IndexFunc(line, unicode.IsSpace)
	if end == -1 {
		return r.completeCommands(line)
	}

	cmd := r.Get(line[:end])
	if cmd == nil || cmd.Hidden {
		return nil
	}

	// The argument being typed is whatever follows the last space.
	cut := strings.LastIndexFunc(line, unicode.IsSpace) + 1
	prefix, partial := line[:cut], line[cut:]
	argIndex := len(splitCommandLine(prefix)) - 1
	if argIndex >= len(cmd.Args) || cmd.Args[argIndex].Completer == nil {
		return nil
	}

	var out []string
	for _, v := range cmd.Args[argIndex].Completer() {
		if strings.HasPrefix(v, partial) {
			out = append(out, prefix+v)
		}
	}
	sort.Strings(out)
	return out
}

// completeCommands matches a partial name against names and aliases. A
// command matched through an alias is offered under its primary name too.
func (r *Registry) completeCommands(partial string) []string {
	partial = strings.ToLower(partial)
	seen := make(map[string]bool)
	var out []string
	add := func(s string) {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}

	for _, cmd := range r.All() {
		if strings.HasPrefix(strings.ToLower(cmd.Name), partial) {
			add(cmd.Name)
			continue
		}
		for _, alias := range cmd.Aliases {
			if strings.HasPrefix(strings.ToLower(alias), partial) {
				add(cmd.Name)
				break
			}
		}
	}
	sort.Strings(out)
	return out
}
