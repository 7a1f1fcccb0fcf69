package bookmarks

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/poiesic/iconsearch/core"
)

// RemoteStore persists bookmarks through an HTTP API keyed by
// (user, icon). One store instance serves one signed-in user.
type RemoteStore struct {
	baseURL    string
	apiKey     string
	userID     string
	httpClient *http.Client
}

var _ Store = (*RemoteStore)(nil)

type bookmarkPayload struct {
	ID        uint64          `json:"id"`
	UserID    string          `json:"user_id"`
	IconName  string          `json:"icon_name"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
	Metadata  metadataPayload `json:"metadata"`
}

type metadataPayload struct {
	Weight string `json:"weight,omitempty"`
	Size   int    `json:"size,omitempty"`
	Color  string `json:"color,omitempty"`
}

// RemoteOption configures a RemoteStore.
type RemoteOption func(*RemoteStore)

// WithAPIKey sets a bearer token sent with every request.
func WithAPIKey(apiKey string) RemoteOption {
	return func(s *RemoteStore) {
		s.apiKey = apiKey
	}
}

// WithHTTPClient sets the client used for requests.
func WithHTTPClient(client *http.Client) RemoteOption {
	return func(s *RemoteStore) {
		if client != nil {
			s.httpClient = client
		}
	}
}

// NewRemoteStore creates a store for one user against the given API base URL.
func NewRemoteStore(baseURL, userID string, opts ...RemoteOption) *RemoteStore {
	s := &RemoteStore{
		baseURL:    baseURL,
		userID:     userID,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// List returns every bookmark belonging to the store's user.
func (s *RemoteStore) List(ctx context.Context) ([]*core.Bookmark, error) {
	endpoint := s.baseURL + "/bookmarks?user_id=" + url.QueryEscape(s.userID)

	body, err := s.do(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	var payloads []bookmarkPayload
	if err := json.Unmarshal(body, &payloads); err != nil {
		return nil, fmt.Errorf("decode bookmarks: %w", err)
	}

	marks := make([]*core.Bookmark, 0, len(payloads))
	for _, p := range payloads {
		marks = append(marks, fromPayload(p))
	}
	return marks, nil
}

// Add persists a bookmark for the store's user.
func (s *RemoteStore) Add(ctx context.Context, bookmark *core.Bookmark) error {
	payload, err := json.Marshal(toPayload(bookmark, s.userID))
	if err != nil {
		return err
	}

	_, err = s.do(ctx, http.MethodPost, s.baseURL+"/bookmarks", payload)
	return err
}

// Remove deletes the user's bookmark for an icon.
func (s *RemoteStore) Remove(ctx context.Context, iconName string) error {
	endpoint := s.baseURL + "/bookmarks/" + url.PathEscape(iconName) +
		"?user_id=" + url.QueryEscape(s.userID)

	_, err := s.do(ctx, http.MethodDelete, endpoint, nil)
	return err
}

// Close is a no-op; the store holds no connection state.
func (s *RemoteStore) Close() error {
	return nil
}

func (s *RemoteStore) do(ctx context.Context, method, endpoint string, payload []byte) ([]byte, error) {
	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return nil, err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if s.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+s.apiKey)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("bookmark request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated, http.StatusNoContent:
		return body, nil
	case http.StatusNotFound:
		return nil, ErrNotFound
	case http.StatusConflict:
		return nil, ErrAlreadyBookmarked
	default:
		return nil, fmt.Errorf("bookmark request: status %d: %s", resp.StatusCode, body)
	}
}

func toPayload(bookmark *core.Bookmark, userID string) bookmarkPayload {
	return bookmarkPayload{
		ID:        uint64(core.BookmarkID(userID, bookmark.IconName)),
		UserID:    userID,
		IconName:  bookmark.IconName,
		CreatedAt: bookmark.CreatedAt,
		UpdatedAt: bookmark.UpdatedAt,
		Metadata: metadataPayload{
			Weight: bookmark.Metadata.Weight,
			Size:   bookmark.Metadata.Size,
			Color:  bookmark.Metadata.Color,
		},
	}
}

func fromPayload(p bookmarkPayload) *core.Bookmark {
	return &core.Bookmark{
		Id:        core.ID(p.ID),
		UserID:    p.UserID,
		IconName:  p.IconName,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
		Metadata: core.BookmarkMetadata{
			Weight: p.Metadata.Weight,
			Size:   p.Metadata.Size,
			Color:  p.Metadata.Color,
		},
	}
}
