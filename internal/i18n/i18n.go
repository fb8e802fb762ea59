// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package i18n provides localized user-facing strings.
//
// Messages live in an x/text catalog keyed by dotted identifiers such as
// "chat.thinking". English and French are bundled; any other locale falls
// back to the closest match.
package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Message keys.
const (
	ChatThinking           = "chat.thinking"
	ChatSearchingDocuments = "chat.searchingDocuments"
	ChatFindingEvents      = "chat.findingEvents"
	ChatError              = "chat.error"
	ChatPlaceholder        = "chat.placeholder"
	ChatWelcome            = "chat.welcome"
	ChatWelcomeName        = "chat.welcomeName"
	ChatSuggestions        = "chat.suggestions"
	ChatLoadingHistory     = "chat.loadingHistory"
	ChatHistoryFailed      = "chat.historyFailed"

	SidebarTitle         = "sidebar.title"
	SidebarNewChat       = "sidebar.newChat"
	SidebarEmpty         = "sidebar.empty"
	SidebarLoading       = "sidebar.loading"
	SidebarLoadFailed    = "sidebar.loadFailed"
	SidebarDeleteTitle   = "sidebar.deleteTitle"
	SidebarDeleteBody    = "sidebar.deleteBody"
	SidebarDeleteConfirm = "sidebar.deleteConfirm"
	SidebarDeleteFailed  = "sidebar.deleteFailed"
	SidebarCancel        = "sidebar.cancel"
	SidebarMessages      = "sidebar.messages"
	SidebarDeleted       = "sidebar.deleted"

	ErrorUnreachable = "error.unreachable"

	TimeJustNow    = "time.justNow"
	TimeMinutesAgo = "time.minutesAgo"
	TimeHoursAgo   = "time.hoursAgo"
	TimeDaysAgo    = "time.daysAgo"

	OnboardingTitle       = "onboarding.title"
	OnboardingSubtitle    = "onboarding.subtitle"
	OnboardingPlaceholder = "onboarding.placeholder"
	OnboardingSubmit      = "onboarding.submit"
	OnboardingValidating  = "onboarding.validating"
	OnboardingRequired    = "onboarding.required"
	OnboardingInvalidURL  = "onboarding.invalidUrl"
	OnboardingBadRequest  = "onboarding.badRequest"
	OnboardingNotFound    = "onboarding.notFound"
	OnboardingFailed      = "onboarding.failed"
	OnboardingWelcome     = "onboarding.welcome"
)

// Supported lists the bundled locales. The first entry is the fallback.
var Supported = []language.Tag{language.English, language.French}

var (
	cat     = newCatalog()
	matcher = language.NewMatcher(Supported)
)

// Printer formats localized messages for one locale.
type Printer struct {
	tag language.Tag
	p   *message.Printer
}

// New returns a Printer for locale (e.g. "fr", "fr-CA", "en_US").
// Unknown or empty locales fall back to English.
func New(locale string) *Printer {
	tag := Match(locale)
	return &Printer{
		tag: tag,
		p:   message.NewPrinter(tag, message.Catalog(cat)),
	}
}

// Match returns the supported locale closest to locale.
func Match(locale string) language.Tag {
	requested, err := language.Parse(locale)
	if err != nil {
		return Supported[0]
	}
	_, index, _ := matcher.Match(requested)
	return Supported[index]
}

// Tag returns the printer's locale.
func (p *Printer) Tag() language.Tag {
	return p.tag
}

// T returns the message for key formatted with args.
func (p *Printer) T(key string, args ...any) string {
	return p.p.Sprintf(key, args...)
}

func newCatalog() *catalog.Builder {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	registerEnglish(b)
	registerFrench(b)
	return b
}

// mustSet panics on catalog errors, which only occur for malformed entries
// in the bundled tables.
func mustSet(b *catalog.Builder, tag language.Tag, key string, msg ...catalog.Message) {
	if err := b.Set(tag, key, msg...); err != nil {
		panic("i18n: " + key + ": " + err.Error())
	}
}

func mustSetString(b *catalog.Builder, tag language.Tag, key, msg string) {
	if err := b.SetString(tag, key, msg); err != nil {
		panic("i18n: " + key + ": " + err.Error())
	}
}
