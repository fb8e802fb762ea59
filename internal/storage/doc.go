// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package storage provides durable local key/value state for concierge.
//
// Values never expire. The SQLite store keeps them in a single table of the
// state database (default ~/.concierge/state.db); Memory is a drop-in
// replacement for tests and ephemeral runs.
//
// # Usage
//
//	store, err := storage.Open(path)
//	if err != nil {
//	    return err
//	}
//	defer store.Close()
//
//	_ = store.Set(ctx, "onboardingComplete", "true")
//	v, ok, err := store.Get(ctx, "onboardingComplete")
package storage
