package server

import (
	"note-lab/domain"
	"time"

	"github.com/samber/lo"
)

// Response shapes. The user view never includes credential material.

type userResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
}

type noteResponse struct {
	ID        string             `json:"id"`
	UserID    string             `json:"user_id"`
	Title     string             `json:"title"`
	Body      string             `json:"body"`
	CreatedAt time.Time          `json:"created_at"`
	Sentiment *sentimentResponse `json:"sentiment,omitempty"`
}

type sentimentResponse struct {
	Overall      string                   `json:"overall_sentiment"`
	Agreement    string                   `json:"agreement"`
	Subjectivity string                   `json:"subjectivity"`
	Confidence   int                      `json:"confidence"`
	Irony        string                   `json:"irony"`
	Entities     []domain.SentimentedItem `json:"sentimented_entities"`
	Concepts     []domain.SentimentedItem `json:"sentimented_concepts"`
}

func toUserResponse(user domain.User) userResponse {
	return userResponse{
		ID:        user.ID.String(),
		Username:  user.Username,
		CreatedAt: user.CreatedAt,
	}
}

func toNoteResponse(note domain.Note) noteResponse {
	return noteResponse{
		ID:        note.ID.String(),
		UserID:    note.OwnerID.String(),
		Title:     note.Title,
		Body:      note.Body,
		CreatedAt: note.CreatedAt,
	}
}

func toNoteResponses(notes []domain.Note) []noteResponse {
	return lo.Map(notes, func(note domain.Note, _ int) noteResponse {
		return toNoteResponse(note)
	})
}

func toSentimentResponse(analysis domain.SentimentAnalysis) *sentimentResponse {
	return &sentimentResponse{
		Overall:      analysis.Overall,
		Agreement:    analysis.Agreement,
		Subjectivity: analysis.Subjectivity,
		Confidence:   analysis.Confidence,
		Irony:        analysis.Irony,
		Entities:     analysis.Entities,
		Concepts:     analysis.Concepts,
	}
}
