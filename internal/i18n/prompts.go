// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package i18n

// Prompt is a suggested question shown before a conversation starts.
type Prompt struct {
	Key      string
	Category string
	English  string
	French   string
}

var prompts = []Prompt{
	{"prompts.eventStart", "Schedule", "When does the event start?", "Quand commence l'événement ?"},
	{"prompts.eventDuration", "Schedule", "How many days does the event last?", "Combien de jours dure l'événement ?"},
	{"prompts.eventLocation", "Location", "Where is the event taking place?", "Où se déroule l'événement ?"},
	{"prompts.eventStages", "Venue", "What stages are there at the venue?", "Quelles sont les scènes sur le site ?"},
	{"prompts.keynoteSpeakers", "Speakers", "Who are the keynote speakers?", "Qui sont les intervenants principaux ?"},
	{"prompts.mainThemes", "Themes", "What are the main themes this year?", "Quels sont les grands thèmes cette année ?"},
	{"prompts.startupEvents", "Startups", "Which sessions are aimed at startups?", "Quelles sessions s'adressent aux startups ?"},
	{"prompts.womenInTech", "Diversity", "Are there sessions on women in tech?", "Y a-t-il des sessions sur les femmes dans la tech ?"},
	{"prompts.june12Events", "Schedule", "What is happening on June 12?", "Que se passe-t-il le 12 juin ?"},
	{"prompts.aiHealthcare", "AI", "Which talks cover AI in healthcare?", "Quelles conférences traitent de l'IA dans la santé ?"},
	{"prompts.sustainabilitySessions", "Sustainability", "Show me the sustainability sessions", "Montrez-moi les sessions sur le développement durable"},
	{"prompts.investorNetworking", "Networking", "Where can I meet investors?", "Où puis-je rencontrer des investisseurs ?"},
	{"prompts.quantumComputing", "Quantum", "Is there anything on quantum computing?", "Y a-t-il des sessions sur l'informatique quantique ?"},
	{"prompts.liveEntertainment", "Entertainment", "Is there live entertainment in the evenings?", "Y a-t-il des spectacles en soirée ?"},
	{"prompts.awards", "Awards", "Which awards are presented at the event?", "Quels prix sont remis pendant l'événement ?"},
	{"prompts.futureOfWork", "Future", "What sessions discuss the future of work?", "Quelles sessions abordent l'avenir du travail ?"},
	{"prompts.aiIndustry", "AI", "How is AI changing industry?", "Comment l'IA transforme-t-elle l'industrie ?"},
	{"prompts.climateGreenTech", "Climate", "Which sessions focus on climate and green tech?", "Quelles sessions portent sur le climat et les green tech ?"},
	{"prompts.robotics", "Robotics", "Are there robotics demos?", "Y a-t-il des démonstrations de robotique ?"},
	{"prompts.internationalSpeakers", "International", "Which international speakers are coming?", "Quels intervenants internationaux seront présents ?"},
}

// Suggestions returns the localized prompt texts in display order.
func (p *Printer) Suggestions() []string {
	out := make([]string, len(prompts))
	for i, pr := range prompts {
		out[i] = p.T(pr.Key)
	}
	return out
}

// StatusPhrases returns the rotating phrases shown while a reply is pending.
func (p *Printer) StatusPhrases() []string {
	return []string{
		p.T(ChatThinking),
		p.T(ChatSearchingDocuments),
		p.T(ChatFindingEvents),
	}
}
