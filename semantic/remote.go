package semantic

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Remote match parameters.
const (
	// DefaultMatchThreshold is the minimum similarity a remote match must
	// clear to be returned.
	DefaultMatchThreshold = 0.25
	// DefaultMatchCount is how many matches the remote endpoint is asked for.
	DefaultMatchCount = 100
)

// RemoteRanker posts the query embedding to a vector match endpoint and
// trusts its similarity scores.
type RemoteRanker struct {
	endpoint   string
	apiKey     string
	httpClient *http.Client
}

type matchRequest struct {
	QueryEmbedding []float32 `json:"query_embedding"`
	MatchThreshold float64   `json:"match_threshold"`
	MatchCount     int       `json:"match_count"`
}

type matchResponse struct {
	IconName   string  `json:"icon_name"`
	Similarity float32 `json:"similarity"`
}

// RemoteOption configures a RemoteRanker.
type RemoteOption func(*RemoteRanker)

// WithAPIKey sets a bearer token sent with every match request.
func WithAPIKey(apiKey string) RemoteOption {
	return func(r *RemoteRanker) {
		r.apiKey = apiKey
	}
}

// WithHTTPClient sets the client used for match requests.
func WithHTTPClient(client *http.Client) RemoteOption {
	return func(r *RemoteRanker) {
		if client != nil {
			r.httpClient = client
		}
	}
}

// NewRemoteRanker creates a ranker targeting the given match endpoint.
func NewRemoteRanker(endpoint string, opts ...RemoteOption) *RemoteRanker {
	r := &RemoteRanker{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Rank posts the embedding and decodes the ranked matches.
func (r *RemoteRanker) Rank(ctx context.Context, queryEmbedding []float32) ([]Scored, error) {
	payload, err := json.Marshal(matchRequest{
		QueryEmbedding: queryEmbedding,
		MatchThreshold: DefaultMatchThreshold,
		MatchCount:     DefaultMatchCount,
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if r.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+r.apiKey)
	}

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("match request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("match request: status %d: %s", resp.StatusCode, body)
	}

	var matches []matchResponse
	if err := json.Unmarshal(body, &matches); err != nil {
		return nil, fmt.Errorf("decode match response: %w", err)
	}

	scored := make([]Scored, 0, len(matches))
	for _, match := range matches {
		scored = append(scored, Scored{
			IconName:   match.IconName,
			Similarity: match.Similarity,
		})
	}
	return scored, nil
}
