package models

import "time"

// ChatMessage is a single turn in a widget conversation.
type ChatMessage struct {
	Role      string    `json:"role"` // "user" or "assistant"
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp,omitempty"`
}

// ChatRequest carries the whole history; nothing is stored server side.
type ChatRequest struct {
	Messages []ChatMessage `json:"messages"`
}

type LeadQualification struct {
	Score     int      `json:"score"`
	Signals   []string `json:"signals"`
	Qualified bool     `json:"qualified"`
}

type ChatResponse struct {
	Message ChatMessage       `json:"message"`
	Lead    LeadQualification `json:"lead"`
}

// LeadAlert is published to operators when a lead arrives or a chat
// conversation qualifies.
type LeadAlert struct {
	Type      string    `json:"type"` // "lead" | "chat_qualified"
	Name      string    `json:"name,omitempty"`
	Email     string    `json:"email,omitempty"`
	Company   string    `json:"company,omitempty"`
	Score     int       `json:"score,omitempty"`
	Signals   []string  `json:"signals,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
