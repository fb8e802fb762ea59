// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package i18n

import (
	"golang.org/x/text/feature/plural"
	"golang.org/x/text/language"
	"golang.org/x/text/message/catalog"
)

func registerFrench(b *catalog.Builder) {
	fr := language.French
	for key, msg := range map[string]string{
		ChatThinking:           "Réflexion en cours...",
		ChatSearchingDocuments: "Recherche dans les documents...",
		ChatFindingEvents:      "Recherche d'événements...",
		ChatError:              "Désolé, une erreur s'est produite. Veuillez réessayer.",
		ChatPlaceholder:        "Posez une question sur les sessions, intervenants ou événements...",
		ChatWelcome:            "Comment puis-je vous aider aujourd'hui ?",
		ChatWelcomeName:        "Bonjour %s, comment puis-je vous aider aujourd'hui ?",
		ChatSuggestions:        "Essayez de demander",
		ChatLoadingHistory:     "Chargement de la conversation...",
		ChatHistoryFailed:      "Impossible de charger cette conversation.",

		SidebarTitle:         "Conversations",
		SidebarNewChat:       "Nouvelle conversation",
		SidebarEmpty:         "Aucune conversation pour le moment",
		SidebarLoading:       "Chargement...",
		SidebarLoadFailed:    "Impossible de charger les conversations",
		SidebarDeleteTitle:   "Supprimer la conversation ?",
		SidebarDeleteBody:    "La conversation sera définitivement supprimée. Cette action est irréversible.",
		SidebarDeleteConfirm: "Supprimer",
		SidebarDeleteFailed:  "Échec de la suppression : %s",
		SidebarCancel:        "Annuler",
		SidebarDeleted:       "Conversation supprimée",

		ErrorUnreachable: "Impossible de joindre le serveur. Vérifiez votre connexion et réessayez.",

		TimeJustNow: "à l'instant",

		OnboardingTitle:       "Bienvenue sur Concierge",
		OnboardingSubtitle:    "Partagez votre profil LinkedIn pour personnaliser vos recommandations.",
		OnboardingPlaceholder: "https://linkedin.com/in/votre-profil",
		OnboardingSubmit:      "Continuer",
		OnboardingValidating:  "Validation du profil...",
		OnboardingRequired:    "L'URL du profil LinkedIn est obligatoire",
		OnboardingInvalidURL:  "Veuillez saisir une URL de profil LinkedIn valide (ex. https://linkedin.com/in/votre-profil)",
		OnboardingBadRequest:  "URL de profil LinkedIn invalide. Vérifiez-la et réessayez.",
		OnboardingNotFound:    "Profil LinkedIn introuvable. Vérifiez l'URL et réessayez.",
		OnboardingFailed:      "Échec de la validation du profil LinkedIn. Veuillez réessayer.",
		OnboardingWelcome:     "Bienvenue, %s !",
	} {
		mustSetString(b, fr, key, msg)
	}

	mustSet(b, fr, TimeMinutesAgo, plural.Selectf(1, "%d",
		plural.One, "il y a %d minute",
		plural.Other, "il y a %d minutes"))
	mustSet(b, fr, TimeHoursAgo, plural.Selectf(1, "%d",
		plural.One, "il y a %d heure",
		plural.Other, "il y a %d heures"))
	mustSet(b, fr, TimeDaysAgo, plural.Selectf(1, "%d",
		plural.One, "il y a %d jour",
		plural.Other, "il y a %d jours"))
	mustSet(b, fr, SidebarMessages, plural.Selectf(1, "%d",
		plural.One, "%d message",
		plural.Other, "%d messages"))

	for _, p := range prompts {
		mustSetString(b, fr, p.Key, p.French)
	}
}
