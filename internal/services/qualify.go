package services

import (
	"regexp"
	"strings"

	"bpo-website/internal/models"
)

// QualifiedThreshold is the minimum score for a qualified lead.
const QualifiedThreshold = 40

type leadSignal struct {
	label   string
	points  int
	pattern *regexp.Regexp
}

var leadSignals = []leadSignal{
	{"industry", 20, regexp.MustCompile(`\b(healthcare|hospital|clinic|medical|telecom|insurance|bank(ing)?|fintech|retail|e-?commerce|logistics|saas|utilit(y|ies)|travel|hospitality)\b`)},
	{"team_size", 15, regexp.MustCompile(`\b\d+\s*\+?\s*(agents?|people|staff|employees|seats|reps|representatives|fte)\b|\bteam of\b|\bheadcount\b`)},
	{"budget", 20, regexp.MustCompile(`\b(budget|pricing|price|cost|quote|rates?|per hour|per month|usd|kes)\b|\$\s*\d`)},
	{"urgency", 15, regexp.MustCompile(`\b(asap|urgent(ly)?|immediately|right away|this (week|month|quarter)|next (week|month|quarter)|deadline|within \d+ (days|weeks))\b`)},
	{"decision_maker", 15, regexp.MustCompile(`\b(ceo|cto|coo|cfo|founder|co-founder|owner|director|vp|vice president|head of|decision maker|i decide)\b`)},
	{"contact_info", 15, regexp.MustCompile(`[a-z0-9._%+-]+@[a-z0-9.-]+\.[a-z]{2,}|\+?\d[\d\s-]{7,}\d`)},
}

// QualifyLead scores a conversation transcript. Each signal category counts
// once; the result is deterministic for a given text.
func QualifyLead(text string) models.LeadQualification {
	text = strings.ToLower(text)

	q := models.LeadQualification{Signals: []string{}}
	for _, s := range leadSignals {
		if s.pattern.MatchString(text) {
			q.Score += s.points
			q.Signals = append(q.Signals, s.label)
		}
	}
	q.Qualified = q.Score >= QualifiedThreshold
	return q
}

// userTranscript joins the visitor's side of a conversation.
func userTranscript(messages []models.ChatMessage) string {
	var parts []string
	for _, m := range messages {
		if m.Role == "user" {
			parts = append(parts, m.Content)
		}
	}
	return strings.Join(parts, "\n")
}
