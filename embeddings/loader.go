package embeddings

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"
)

// DefaultArtifactPath is the well-known location of the generated artifact.
const DefaultArtifactPath = "data/icon-embeddings.json"

// Loader populates a Store from an embedding artifact on disk or over HTTP.
// Only the loader replaces store contents; everything else reads.
type Loader struct {
	store      *Store
	source     string
	httpClient *http.Client
	logger     *slog.Logger
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) LoaderOption {
	return func(l *Loader) {
		if logger == nil {
			logger = slog.Default()
		}
		l.logger = logger
	}
}

// WithHTTPClient sets the client used for http(s) sources.
func WithHTTPClient(client *http.Client) LoaderOption {
	return func(l *Loader) {
		if client != nil {
			l.httpClient = client
		}
	}
}

// NewLoader creates a loader that reads the artifact from source, which is
// either a filesystem path or an http(s) URL.
func NewLoader(store *Store, source string, opts ...LoaderOption) *Loader {
	l := &Loader{
		store:      store,
		source:     source,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		logger:     slog.Default().With("component", "embeddings-loader"),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load fetches, decodes, and installs the artifact synchronously.
// The returned error is diagnostic; callers on the interactive path should
// prefer LoadBackground, which degrades silently.
func (l *Loader) Load(ctx context.Context) error {
	data, err := l.fetch(ctx)
	if err != nil {
		return err
	}

	vectors, err := DecodeArtifact(data)
	if err != nil {
		return err
	}

	l.store.Replace(vectors)
	l.logger.Debug("embedding artifact loaded", "icons", len(vectors))
	return nil
}

// LoadBackground loads the artifact in a goroutine. Failure leaves the store
// empty and is logged, never propagated: semantic search degrades to
// lexical-only. onDone, if non-nil, runs after the attempt either way so
// reactive consumers can recompute.
func (l *Loader) LoadBackground(ctx context.Context, onDone func()) {
	go func() {
		if err := l.Load(ctx); err != nil {
			l.logger.Warn("no embeddings found, semantic search will be disabled", "source", l.source, "err", err)
		}
		if onDone != nil {
			onDone()
		}
	}()
}

func (l *Loader) fetch(ctx context.Context) ([]byte, error) {
	if strings.HasPrefix(l.source, "http://") || strings.HasPrefix(l.source, "https://") {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.source, nil)
		if err != nil {
			return nil, err
		}
		resp, err := l.httpClient.Do(req)
		if err != nil {
			return nil, fmt.Errorf("fetch artifact: %w", err)
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("fetch artifact: status %d", resp.StatusCode)
		}
		return io.ReadAll(resp.Body)
	}

	data, err := os.ReadFile(l.source)
	if err != nil {
		return nil, fmt.Errorf("read artifact: %w", err)
	}
	return data, nil
}
