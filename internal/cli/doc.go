// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli implements the concierge command line.
//
// The root command starts the full-screen interface. Subcommands cover the
// same operations for scripts and quick use:
//
//	concierge chat                       line-mode chat with input history
//	concierge ask <question>             one question, one reply
//	concierge conversations list         list conversations
//	concierge conversations show <id>    print a transcript
//	concierge conversations delete <id>  delete a conversation
//	concierge conversations export <id>  export a transcript
//	concierge onboard [url]              register or show the profile
//	concierge status                     backend health
//	concierge profile                    backend user profile
//	concierge config show|get|set|path   configuration
//	concierge version                    build information
//
// Commands that print data accept --json and write a JSONResponse envelope.
package cli
