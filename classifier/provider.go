package classifier

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"note-lab/domain"
	"note-lab/errors"
	"strconv"
	"strings"
	"time"

	"github.com/abadojack/whatlanggo"
	"github.com/google/uuid"
)

// ProviderClient calls a MeaningCloud-style sentiment API: a form POST with
// key, lang and txt, answered by a JSON verdict plus a status block.
// Calls are not retried; a slow provider blocks the caller until the injected
// client or context gives up.
type ProviderClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	log        *slog.Logger
}

func NewProviderClient(baseURL, apiKey string, timeout time.Duration, log *slog.Logger) *ProviderClient {
	return &ProviderClient{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: timeout},
		log:        log,
	}
}

// providerResponse mirrors the provider wire format. Numeric fields arrive as
// strings and are converted after decoding.
type providerResponse struct {
	Status struct {
		Code string `json:"code"`
		Msg  string `json:"msg"`
	} `json:"status"`
	ScoreTag     string `json:"score_tag"`
	Agreement    string `json:"agreement"`
	Subjectivity string `json:"subjectivity"`
	Confidence   string `json:"confidence"`
	Irony        string `json:"irony"`
	EntityList   []struct {
		Form string `json:"form"`
		ID   string `json:"id"`
		Type string `json:"type"`
	} `json:"sentimented_entity_list"`
	ConceptList []struct {
		Form string `json:"form"`
		ID   string `json:"id"`
		Type string `json:"type"`
	} `json:"sentimented_concept_list"`
}

func (c *ProviderClient) Classify(ctx context.Context, text string) (domain.SentimentAnalysis, error) {
	if c.apiKey == "" {
		return domain.SentimentAnalysis{}, errors.ErrClassifierNotConfigured
	}

	info := whatlanggo.Detect(text)
	lang := info.Lang.Iso6391()
	if lang == "" {
		lang = "en"
	}

	form := url.Values{
		"key":  {c.apiKey},
		"lang": {lang},
		"txt":  {text},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, strings.NewReader(form.Encode()))
	if err != nil {
		return domain.SentimentAnalysis{}, fmt.Errorf("building provider request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domain.SentimentAnalysis{}, fmt.Errorf("sentiment provider unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return domain.SentimentAnalysis{}, fmt.Errorf("sentiment provider returned HTTP %d", resp.StatusCode)
	}

	var payload providerResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return domain.SentimentAnalysis{}, fmt.Errorf("decoding provider response: %w", err)
	}
	if payload.Status.Code != "0" {
		return domain.SentimentAnalysis{}, fmt.Errorf("sentiment provider error %s: %s", payload.Status.Code, payload.Status.Msg)
	}

	confidence, err := strconv.Atoi(payload.Confidence)
	if err != nil {
		c.log.Warn("Provider sent a non-numeric confidence", "value", payload.Confidence)
		confidence = 0
	}

	analysis := domain.SentimentAnalysis{
		ID:           uuid.New(),
		Overall:      payload.ScoreTag,
		Agreement:    payload.Agreement,
		Subjectivity: payload.Subjectivity,
		Confidence:   confidence,
		Irony:        payload.Irony,
		CreatedAt:    time.Now().UTC(),
	}
	for _, e := range payload.EntityList {
		analysis.Entities = append(analysis.Entities, domain.SentimentedItem{Form: e.Form, ID: e.ID, Type: e.Type})
	}
	for _, con := range payload.ConceptList {
		analysis.Concepts = append(analysis.Concepts, domain.SentimentedItem{Form: con.Form, ID: con.ID, Type: con.Type})
	}

	c.log.Debug("Text classified", "lang", lang, "score_tag", analysis.Overall, "confidence", confidence)
	return analysis, nil
}
