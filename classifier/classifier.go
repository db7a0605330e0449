//go:generate go run go.uber.org/mock/mockgen -source=classifier.go -destination=../mocks/mock_classifier.go -package=mocks

// Package classifier talks to the external text-analysis provider.
// The note workflow only depends on the ISentimentClassifier contract; the
// provider client below is one implementation of it.
package classifier

import (
	"context"
	"note-lab/domain"
)

type ISentimentClassifier interface {
	Classify(ctx context.Context, text string) (domain.SentimentAnalysis, error)
}
