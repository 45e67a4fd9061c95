package models

import "time"

// DefaultCategory is stored when a knowledge entry is created without one.
const DefaultCategory = "default"

// Knowledge is one question/answer entry of the assistant's knowledge base.
// Keywords is a comma-separated list.
type Knowledge struct {
	ID          int64     `json:"id"`
	Question    string    `json:"question"`
	Answer      string    `json:"answer"`
	Keywords    string    `json:"keywords"`
	Category    string    `json:"category"`
	IsSuggested bool      `json:"is_suggested"`
	SortOrder   int       `json:"sort_order"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// AssistantAnswer is the reply to a free-text question. KnowledgeID is nil
// when the default answer was used.
type AssistantAnswer struct {
	Answer      string `json:"answer"`
	Category    string `json:"category"`
	KnowledgeID *int64 `json:"knowledge_id,omitempty"`
}
