// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package onboarding implements the one-time profile gate shown before the
// chat is available.
//
// The gate validates a LinkedIn profile URL locally, verifies it with the
// backend and persists the result. Once complete it stays complete; there
// is no way back.
//
// Persisted keys:
//
//	onboardingComplete  "true" once the gate has been passed
//	linkedinUrl         the submitted profile URL
//	fullName            "firstName lastName" as returned by the backend
package onboarding
