package server

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"note-lab/domain"
	"note-lab/mocks"
	"note-lab/repositories"
	"note-lab/services"
	"note-lab/sink"
	"strings"
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestServer wires the real services and repositories against a throwaway
// Badger instance; only the external sentiment provider is mocked.
func newTestServer(t *testing.T) (*Server, *mocks.MockISentimentClassifier) {
	t.Helper()

	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).WithLoggingLevel(badger.ERROR))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	ctrl := gomock.NewController(t)
	mockClassifier := mocks.NewMockISentimentClassifier(ctrl)

	log := slog.Default()
	users := repositories.NewUserRepository(db)
	notes := repositories.NewNoteRepository(db)
	sentiments := repositories.NewSentimentRepository(db)
	notificationSink := sink.NewChannelSink(16)

	srv := NewServer(log,
		services.NewNoteService(notes, users, sentiments, mockClassifier, notificationSink, log, time.Second),
		services.NewFeedService(users, notes, log),
		services.NewSubscriptionService(users, log),
		services.NewUserService(users, log),
	)
	return srv, mockClassifier
}

func do(srv *Server, method, path, callerID, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if callerID != "" {
		req.Header.Set("X-User-ID", callerID)
	}
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	return rec
}

func registerUser(t *testing.T, srv *Server, username string) string {
	t.Helper()
	rec := do(srv, http.MethodPost, "/auth/register", "",
		`{"username": "`+username+`", "password": "s3cret-passw0rd"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp struct {
		User struct {
			ID string `json:"id"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp.User.ID
}

func stubAnalysis(m *mocks.MockISentimentClassifier) {
	m.EXPECT().Classify(gomock.Any(), gomock.Any()).
		Return(domain.SentimentAnalysis{
			ID:        uuid.New(),
			Overall:   "P",
			CreatedAt: time.Now().UTC(),
		}, nil).AnyTimes()
}

func TestServer_Register(t *testing.T) {
	t.Run("should register a user without exposing credentials", func(t *testing.T) {
		req := require.New(t)
		srv, _ := newTestServer(t)

		rec := do(srv, http.MethodPost, "/auth/register", "",
			`{"username": "alice", "password": "s3cret-passw0rd"}`)

		req.Equal(http.StatusCreated, rec.Code)
		req.Contains(rec.Body.String(), `"alice"`)
		req.NotContains(rec.Body.String(), "passw0rd")
		req.NotContains(rec.Body.String(), "hash")
	})

	t.Run("should answer 409 for a taken username", func(t *testing.T) {
		req := require.New(t)
		srv, _ := newTestServer(t)

		registerUser(t, srv, "alice")
		rec := do(srv, http.MethodPost, "/auth/register", "",
			`{"username": "alice", "password": "s3cret-passw0rd"}`)

		req.Equal(http.StatusConflict, rec.Code)
	})

	t.Run("should answer 400 for a too short password", func(t *testing.T) {
		req := require.New(t)
		srv, _ := newTestServer(t)

		rec := do(srv, http.MethodPost, "/auth/register", "",
			`{"username": "alice", "password": "short"}`)

		req.Equal(http.StatusBadRequest, rec.Code)
	})
}

func TestServer_CreateNote(t *testing.T) {
	t.Run("should create a note for the caller", func(t *testing.T) {
		req := require.New(t)
		srv, mockClassifier := newTestServer(t)
		stubAnalysis(mockClassifier)

		alice := registerUser(t, srv, "alice")
		rec := do(srv, http.MethodPost, "/notes", alice,
			`{"title": "Hello", "body": "World"}`)

		req.Equal(http.StatusCreated, rec.Code)
		req.Contains(rec.Body.String(), `"Hello"`)
	})

	t.Run("should answer 400 without a caller header", func(t *testing.T) {
		req := require.New(t)
		srv, _ := newTestServer(t)

		rec := do(srv, http.MethodPost, "/notes", "", `{"title": "Hello", "body": "World"}`)

		req.Equal(http.StatusBadRequest, rec.Code)
	})

	t.Run("should answer 404 for an unregistered author and leave no note behind", func(t *testing.T) {
		req := require.New(t)
		srv, mockClassifier := newTestServer(t)
		stubAnalysis(mockClassifier)

		ghost := uuid.NewString()
		rec := do(srv, http.MethodPost, "/notes", ghost, `{"title": "Hello", "body": "World"}`)
		req.Equal(http.StatusNotFound, rec.Code)

		// The compensating delete must keep the ghost's feed unreachable and
		// the store free of the half-created note.
		rec = do(srv, http.MethodGet, "/notes", ghost, "")
		req.Equal(http.StatusNotFound, rec.Code)
	})

	t.Run("should answer 500 without detail when the classifier fails", func(t *testing.T) {
		req := require.New(t)
		srv, mockClassifier := newTestServer(t)
		mockClassifier.EXPECT().Classify(gomock.Any(), gomock.Any()).
			Return(domain.SentimentAnalysis{}, http.ErrHandlerTimeout)

		alice := registerUser(t, srv, "alice")
		rec := do(srv, http.MethodPost, "/notes", alice, `{"title": "Hello", "body": "World"}`)

		req.Equal(http.StatusInternalServerError, rec.Code)
		req.Contains(rec.Body.String(), "internal server error")
		req.NotContains(rec.Body.String(), "timeout")
	})
}

func TestServer_Feed(t *testing.T) {
	t.Run("should include own notes and subscribed notes", func(t *testing.T) {
		req := require.New(t)
		srv, mockClassifier := newTestServer(t)
		stubAnalysis(mockClassifier)

		alice := registerUser(t, srv, "alice")
		bob := registerUser(t, srv, "bob")
		carol := registerUser(t, srv, "carol")

		do(srv, http.MethodPost, "/notes", alice, `{"title": "From alice", "body": "a"}`)
		do(srv, http.MethodPost, "/notes", bob, `{"title": "From bob", "body": "b"}`)
		do(srv, http.MethodPost, "/notes", carol, `{"title": "From carol", "body": "c"}`)

		rec := do(srv, http.MethodPost, "/subscribe/"+bob, alice, "")
		req.Equal(http.StatusOK, rec.Code)

		rec = do(srv, http.MethodGet, "/notes", alice, "")
		req.Equal(http.StatusOK, rec.Code)
		req.Contains(rec.Body.String(), "From alice")
		req.Contains(rec.Body.String(), "From bob")
		req.NotContains(rec.Body.String(), "From carol")
	})

	t.Run("should answer 404 for an unknown caller", func(t *testing.T) {
		req := require.New(t)
		srv, _ := newTestServer(t)

		rec := do(srv, http.MethodGet, "/notes", uuid.NewString(), "")

		req.Equal(http.StatusNotFound, rec.Code)
	})
}

func TestServer_GetNote(t *testing.T) {
	t.Run("should return the note with its sentiment attached", func(t *testing.T) {
		req := require.New(t)
		srv, mockClassifier := newTestServer(t)
		stubAnalysis(mockClassifier)

		alice := registerUser(t, srv, "alice")
		rec := do(srv, http.MethodPost, "/notes", alice, `{"title": "Hello", "body": "World"}`)
		req.Equal(http.StatusCreated, rec.Code)

		var created struct {
			Note struct {
				ID string `json:"id"`
			} `json:"note"`
		}
		req.NoError(json.Unmarshal(rec.Body.Bytes(), &created))

		rec = do(srv, http.MethodGet, "/notes/"+created.Note.ID, "", "")
		req.Equal(http.StatusOK, rec.Code)
		req.Contains(rec.Body.String(), `"overall_sentiment":"P"`)
	})

	t.Run("should answer 400 for a malformed note id", func(t *testing.T) {
		req := require.New(t)
		srv, _ := newTestServer(t)

		rec := do(srv, http.MethodGet, "/notes/not-a-uuid", "", "")

		req.Equal(http.StatusBadRequest, rec.Code)
	})

	t.Run("should answer 404 for an unknown note", func(t *testing.T) {
		req := require.New(t)
		srv, _ := newTestServer(t)

		rec := do(srv, http.MethodGet, "/notes/"+uuid.NewString(), "", "")

		req.Equal(http.StatusNotFound, rec.Code)
	})
}

func TestServer_Subscribe(t *testing.T) {
	t.Run("should answer 400 on self-subscription", func(t *testing.T) {
		req := require.New(t)
		srv, _ := newTestServer(t)

		alice := registerUser(t, srv, "alice")
		rec := do(srv, http.MethodPost, "/subscribe/"+alice, alice, "")

		req.Equal(http.StatusBadRequest, rec.Code)
	})

	t.Run("should answer 409 on a duplicate subscription", func(t *testing.T) {
		req := require.New(t)
		srv, _ := newTestServer(t)

		alice := registerUser(t, srv, "alice")
		bob := registerUser(t, srv, "bob")

		rec := do(srv, http.MethodPost, "/subscribe/"+bob, alice, "")
		req.Equal(http.StatusOK, rec.Code)

		rec = do(srv, http.MethodPost, "/subscribe/"+bob, alice, "")
		req.Equal(http.StatusConflict, rec.Code)
	})

	t.Run("should answer 404 for an unknown target", func(t *testing.T) {
		req := require.New(t)
		srv, _ := newTestServer(t)

		alice := registerUser(t, srv, "alice")
		rec := do(srv, http.MethodPost, "/subscribe/"+uuid.NewString(), alice, "")

		req.Equal(http.StatusNotFound, rec.Code)
	})

	t.Run("should list subscriptions as id and username views", func(t *testing.T) {
		req := require.New(t)
		srv, _ := newTestServer(t)

		alice := registerUser(t, srv, "alice")
		bob := registerUser(t, srv, "bob")

		rec := do(srv, http.MethodPost, "/subscribe/"+bob, alice, "")
		req.Equal(http.StatusOK, rec.Code)

		rec = do(srv, http.MethodGet, "/users", alice, "")
		req.Equal(http.StatusOK, rec.Code)
		req.Contains(rec.Body.String(), `"bob"`)
		req.Contains(rec.Body.String(), bob)
	})
}
