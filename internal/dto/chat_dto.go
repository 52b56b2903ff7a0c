package dto

import (
	"time"

	"laptop-advisor-be/pkg/recommend"
	"laptop-advisor-be/pkg/store"
)

type CreateSessionResponse struct {
	SessionId string `json:"session_id"`
	Message   string `json:"message"`
}

type SendChatRequest struct {
	SessionId string `json:"session_id" validate:"required,uuid4"`
	Message   string `json:"message" validate:"required"`
}

type SendChatResponse struct {
	SessionId       string                   `json:"session_id"`
	Message         string                   `json:"message"`
	IntentConfirmed bool                     `json:"intent_confirmed"`
	Profile         *recommend.Profile       `json:"user_profile,omitempty"`
	Recommendations []recommend.ScoredLaptop `json:"recommendations,omitempty"`
}

type GetSessionResponse struct {
	SessionId       string                   `json:"session_id"`
	State           string                   `json:"state"`
	Conversation    []store.Message          `json:"conversation"`
	Profile         *recommend.Profile       `json:"user_profile,omitempty"`
	Recommendations []recommend.ScoredLaptop `json:"recommendations,omitempty"`
	CreatedAt       time.Time                `json:"created_at"`
	UpdatedAt       time.Time                `json:"updated_at"`
}
