package classifier

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"note-lab/domain"
	"note-lab/errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func newProviderForTest(t *testing.T, handler http.HandlerFunc) *ProviderClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewProviderClient(srv.URL, "test-api-key", time.Second, slog.Default())
}

func TestProviderClient_Classify(t *testing.T) {
	ctx := context.Background()

	t.Run("should map a provider verdict onto a sentiment analysis", func(t *testing.T) {
		req := require.New(t)

		client := newProviderForTest(t, func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, http.MethodPost, r.Method)
			require.Equal(t, "test-api-key", r.FormValue("key"))
			require.Equal(t, "en", r.FormValue("lang"))
			require.Equal(t, "What a wonderful day to write notes", r.FormValue("txt"))

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{
				"status": {"code": "0", "msg": "OK"},
				"score_tag": "P",
				"agreement": "AGREEMENT",
				"subjectivity": "SUBJECTIVE",
				"confidence": "94",
				"irony": "NONIRONIC",
				"sentimented_entity_list": [
					{"form": "day", "id": "e1", "type": "Top>TimePeriod"}
				],
				"sentimented_concept_list": []
			}`))
		})

		analysis, err := client.Classify(ctx, "What a wonderful day to write notes")

		req.NoError(err)
		req.Equal("P", analysis.Overall)
		req.Equal("AGREEMENT", analysis.Agreement)
		req.Equal("SUBJECTIVE", analysis.Subjectivity)
		req.Equal(94, analysis.Confidence)
		req.Equal("NONIRONIC", analysis.Irony)
		req.Equal([]domain.SentimentedItem{{Form: "day", ID: "e1", Type: "Top>TimePeriod"}}, analysis.Entities)
		req.Empty(analysis.Concepts)
		req.NotZero(analysis.ID)
	})

	t.Run("should fail on a non-zero provider status code", func(t *testing.T) {
		req := require.New(t)

		client := newProviderForTest(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"status": {"code": "104", "msg": "Credits per subscription exceeded"}}`))
		})

		_, err := client.Classify(ctx, "some text")

		req.Error(err)
		req.Contains(err.Error(), "104")
	})

	t.Run("should fail on a non-200 answer", func(t *testing.T) {
		req := require.New(t)

		client := newProviderForTest(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		})

		_, err := client.Classify(ctx, "some text")

		req.Error(err)
	})

	t.Run("should tolerate a non-numeric confidence", func(t *testing.T) {
		req := require.New(t)

		client := newProviderForTest(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"status": {"code": "0"}, "score_tag": "NEU", "confidence": "n/a"}`))
		})

		analysis, err := client.Classify(ctx, "some text")

		req.NoError(err)
		req.Equal(0, analysis.Confidence)
	})

	t.Run("should refuse to call out without an API key", func(t *testing.T) {
		req := require.New(t)

		client := NewProviderClient("http://localhost:0", "", time.Second, slog.Default())

		_, err := client.Classify(ctx, "some text")

		req.ErrorIs(err, errors.ErrClassifierNotConfigured)
	})
}
