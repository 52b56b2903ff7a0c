package store

import (
	"time"

	"laptop-advisor-be/pkg/recommend"
)

// Message is one conversation turn. Ordering matters: the slice is the
// literal context window sent to the LLM.
type Message struct {
	Role      string    `json:"role"` // "user" | "assistant" | "system"
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// Session is the active advisory conversation held in memory.
type Session struct {
	ID           string    `json:"id"`
	State        string    `json:"state"` // CREATED | COLLECTING | CONFIRMED
	Conversation []Message `json:"conversation"`

	// Set exactly once, when extraction first succeeds.
	Profile         *recommend.Profile       `json:"user_profile,omitempty"`
	Recommendations []recommend.ScoredLaptop `json:"recommendations,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

const (
	StateCreated    = "CREATED"
	StateCollecting = "COLLECTING"
	StateConfirmed  = "CONFIRMED"
)

// Append adds a turn and bumps the update timestamp.
func (s *Session) Append(role, content string) {
	now := time.Now()
	s.Conversation = append(s.Conversation, Message{
		Role:      role,
		Content:   content,
		Timestamp: now,
	})
	s.UpdatedAt = now
}
