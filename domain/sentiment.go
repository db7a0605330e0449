package domain

import (
	"time"

	"github.com/google/uuid"
)

// SentimentAnalysis is the structured verdict of the external text
// classification provider for one note body. Written once, never mutated.
type SentimentAnalysis struct {
	ID           uuid.UUID
	Overall      string // provider score tag, e.g. P, N, NEU
	Agreement    string
	Subjectivity string
	Confidence   int
	Irony        string
	Entities     []SentimentedItem
	Concepts     []SentimentedItem
	CreatedAt    time.Time
}

// SentimentedItem is a recognized entity or concept with its surface form.
type SentimentedItem struct {
	Form string `json:"form"`
	ID   string `json:"id"`
	Type string `json:"type"`
}
