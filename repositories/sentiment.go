//go:generate go run go.uber.org/mock/mockgen -source=sentiment.go -destination=../mocks/mock_sentiment_repository.go -package=mocks
package repositories

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"note-lab/domain"
	"note-lab/errors"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
)

type ISentimentRepository interface {
	Store(analysis domain.SentimentAnalysis) error
	FindByID(id uuid.UUID) (domain.SentimentAnalysis, error)
}

type SentimentRepository struct {
	db *badger.DB
}

func NewSentimentRepository(db *badger.DB) ISentimentRepository {
	return &SentimentRepository{db: db}
}

const sentimentIDPrefix = "sentiment:id:"

func sentimentIDKey(id uuid.UUID) []byte {
	return []byte(sentimentIDPrefix + id.String())
}

type sentimentRecord struct {
	ID           string                   `json:"id"`
	Overall      string                   `json:"overall_sentiment"`
	Agreement    string                   `json:"agreement"`
	Subjectivity string                   `json:"subjectivity"`
	Confidence   int                      `json:"confidence"`
	Irony        string                   `json:"irony"`
	Entities     []domain.SentimentedItem `json:"sentimented_entities"`
	Concepts     []domain.SentimentedItem `json:"sentimented_concepts"`
	CreatedAt    int64                    `json:"created_at"`
}

func (s SentimentRepository) Store(analysis domain.SentimentAnalysis) error {
	data, err := json.Marshal(fromAnalysis(analysis))
	if err != nil {
		return fmt.Errorf("marshal failed: %w", err)
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(sentimentIDKey(analysis.ID), data)
	})
}

func (s SentimentRepository) FindByID(id uuid.UUID) (domain.SentimentAnalysis, error) {
	var analysis domain.SentimentAnalysis
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(sentimentIDKey(id))
		if stderrors.Is(err, badger.ErrKeyNotFound) {
			return errors.ErrAnalysisNotFound
		}
		if err != nil {
			return err
		}
		var rec sentimentRecord
		if err := item.Value(func(val []byte) error {
			return json.Unmarshal(val, &rec)
		}); err != nil {
			return err
		}
		analysis, err = toAnalysis(rec)
		return err
	})
	return analysis, err
}

func fromAnalysis(analysis domain.SentimentAnalysis) sentimentRecord {
	return sentimentRecord{
		ID:           analysis.ID.String(),
		Overall:      analysis.Overall,
		Agreement:    analysis.Agreement,
		Subjectivity: analysis.Subjectivity,
		Confidence:   analysis.Confidence,
		Irony:        analysis.Irony,
		Entities:     analysis.Entities,
		Concepts:     analysis.Concepts,
		CreatedAt:    analysis.CreatedAt.UnixNano(),
	}
}

func toAnalysis(rec sentimentRecord) (domain.SentimentAnalysis, error) {
	id, err := uuid.Parse(rec.ID)
	if err != nil {
		return domain.SentimentAnalysis{}, fmt.Errorf("corrupt sentiment record: %w", err)
	}
	return domain.SentimentAnalysis{
		ID:           id,
		Overall:      rec.Overall,
		Agreement:    rec.Agreement,
		Subjectivity: rec.Subjectivity,
		Confidence:   rec.Confidence,
		Irony:        rec.Irony,
		Entities:     rec.Entities,
		Concepts:     rec.Concepts,
		CreatedAt:    time.Unix(0, rec.CreatedAt).UTC(),
	}, nil
}
