// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package i18n

import (
	"golang.org/x/text/feature/plural"
	"golang.org/x/text/language"
	"golang.org/x/text/message/catalog"
)

func registerEnglish(b *catalog.Builder) {
	en := language.English
	for key, msg := range map[string]string{
		ChatThinking:           "Thinking...",
		ChatSearchingDocuments: "Searching documents...",
		ChatFindingEvents:      "Finding events...",
		ChatError:              "Sorry, I encountered an error. Please try again.",
		ChatPlaceholder:        "Ask about sessions, speakers or events...",
		ChatWelcome:            "How can I help you today?",
		ChatWelcomeName:        "Hi %s, how can I help you today?",
		ChatSuggestions:        "Try asking",
		ChatLoadingHistory:     "Loading conversation...",
		ChatHistoryFailed:      "Could not load this conversation.",

		SidebarTitle:         "Conversations",
		SidebarNewChat:       "New conversation",
		SidebarEmpty:         "No conversations yet",
		SidebarLoading:       "Loading...",
		SidebarLoadFailed:    "Could not load conversations",
		SidebarDeleteTitle:   "Delete conversation?",
		SidebarDeleteBody:    "This will permanently delete the conversation. This action cannot be undone.",
		SidebarDeleteConfirm: "Delete",
		SidebarDeleteFailed:  "Failed to delete conversation: %s",
		SidebarCancel:        "Cancel",
		SidebarDeleted:       "Conversation deleted",

		ErrorUnreachable: "Cannot reach the server. Check your connection and try again.",

		TimeJustNow: "just now",

		OnboardingTitle:       "Welcome to Concierge",
		OnboardingSubtitle:    "Share your LinkedIn profile so we can personalize your event recommendations.",
		OnboardingPlaceholder: "https://linkedin.com/in/your-profile",
		OnboardingSubmit:      "Continue",
		OnboardingValidating:  "Validating profile...",
		OnboardingRequired:    "LinkedIn profile URL is required",
		OnboardingInvalidURL:  "Please enter a valid LinkedIn profile URL (e.g., https://linkedin.com/in/your-profile)",
		OnboardingBadRequest:  "Invalid LinkedIn profile URL. Please check and try again.",
		OnboardingNotFound:    "LinkedIn profile not found. Please check the URL and try again.",
		OnboardingFailed:      "Failed to validate LinkedIn profile. Please try again.",
		OnboardingWelcome:     "Welcome, %s!",
	} {
		mustSetString(b, en, key, msg)
	}

	mustSet(b, en, TimeMinutesAgo, plural.Selectf(1, "%d",
		plural.One, "%d minute ago",
		plural.Other, "%d minutes ago"))
	mustSet(b, en, TimeHoursAgo, plural.Selectf(1, "%d",
		plural.One, "%d hour ago",
		plural.Other, "%d hours ago"))
	mustSet(b, en, TimeDaysAgo, plural.Selectf(1, "%d",
		plural.One, "%d day ago",
		plural.Other, "%d days ago"))
	mustSet(b, en, SidebarMessages, plural.Selectf(1, "%d",
		plural.One, "%d message",
		plural.Other, "%d messages"))

	for _, p := range prompts {
		mustSetString(b, en, p.Key, p.English)
	}
}
