package generate

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/poiesic/iconsearch/ai"
	"github.com/poiesic/iconsearch/catalog"
	"github.com/poiesic/iconsearch/core"
	"github.com/poiesic/iconsearch/embeddings"
)

// Config holds configuration for artifact generation.
type Config struct {
	// BatchSize is the number of icons embedded per request
	BatchSize int

	// PoolSize is the number of concurrent embedding workers
	PoolSize int

	// MaxRetries is the maximum number of retry attempts for failed requests
	MaxRetries int

	// RetryDelay is the base delay for exponential backoff
	RetryDelay time.Duration
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}

	return &Config{
		BatchSize:  20,
		PoolSize:   poolSize,
		MaxRetries: 3,
		RetryDelay: 1 * time.Second,
	}
}

// Generator builds the embedding artifact for a catalog.
type Generator struct {
	catalog  *catalog.Catalog
	embedder ai.Embedder
	config   *Config
	progress io.Writer
	logger   *slog.Logger
}

// NewGenerator creates a generator.
// progress: where to write progress output (typically os.Stderr)
func NewGenerator(cat *catalog.Catalog, embedder ai.Embedder, config *Config, progress io.Writer) (*Generator, error) {
	if cat == nil {
		return nil, ErrCatalogRequired
	}
	if embedder == nil {
		return nil, ErrEmbedderRequired
	}
	if config == nil {
		config = DefaultConfig()
	}
	if progress == nil {
		progress = io.Discard
	}

	return &Generator{
		catalog:  cat,
		embedder: embedder,
		config:   config,
		progress: progress,
		logger:   slog.Default(),
	}, nil
}

// Describe renders the text that gets embedded for an icon. The same
// format is used for every icon so document embeddings stay comparable.
func Describe(entry *core.IconEntry) string {
	var b strings.Builder
	b.WriteString("Icon name: ")
	b.WriteString(entry.Name)
	b.WriteString("\nTags: ")
	b.WriteString(strings.Join(entry.Tags, ", "))
	b.WriteString("\nCategories: ")
	b.WriteString(strings.Join(entry.Categories, ", "))
	return b.String()
}

// Run embeds the whole catalog and returns the artifact.
func (g *Generator) Run(ctx context.Context) (embeddings.Artifact, error) {
	entries := g.catalog.Entries()
	if len(entries) == 0 {
		fmt.Fprintf(g.progress, "No icons in catalog (0 entries)\n")
		return embeddings.Artifact{}, nil
	}

	batches := batchEntries(entries, g.config.BatchSize)
	fmt.Fprintf(g.progress, "Embedding %d icons in %d batches (batch size: %d)\n",
		len(entries), len(batches), g.config.BatchSize)

	pool, err := ants.NewPool(g.config.PoolSize)
	if err != nil {
		return nil, err
	}
	defer pool.Release()

	var (
		mu       sync.Mutex
		artifact = make(embeddings.Artifact, len(entries))
		firstErr error
		done     int
		wg       sync.WaitGroup
	)

	for _, batch := range batches {
		batch := batch
		wg.Add(1)
		submitErr := pool.Submit(func() {
			defer wg.Done()

			batchArtifact, err := g.embedBatch(ctx, batch)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				if firstErr == nil {
					firstErr = err
				}
				return
			}
			for name, entry := range batchArtifact {
				artifact[name] = entry
			}
			done++
			fmt.Fprintf(g.progress, "Batch %d/%d done (%d icons)\n", done, len(batches), len(artifact))
		})
		if submitErr != nil {
			wg.Done()
			mu.Lock()
			if firstErr == nil {
				firstErr = submitErr
			}
			mu.Unlock()
		}
	}

	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	return artifact, nil
}

// embedBatch embeds one batch of icons with retries and quantizes the
// resulting vectors.
func (g *Generator) embedBatch(ctx context.Context, batch []*core.IconEntry) (embeddings.Artifact, error) {
	texts := make([]string, len(batch))
	for i, entry := range batch {
		texts[i] = Describe(entry)
	}

	var vectors [][]float32
	err := RetryWithBackoff(ctx, func() error {
		var embedErr error
		vectors, embedErr = g.embedder.EmbedTexts(ctx, texts)
		return embedErr
	}, g.config.MaxRetries, g.config.RetryDelay)
	if err != nil {
		return nil, fmt.Errorf("embed batch of %d icons: %w", len(batch), err)
	}
	if len(vectors) != len(batch) {
		return nil, ErrEmbeddingCountMismatch
	}

	artifact := make(embeddings.Artifact, len(batch))
	for i, entry := range batch {
		compactEntry, err := embeddings.NewCompactEntry(vectors[i], &embeddings.Metadata{
			Tags:       entry.Tags,
			Categories: entry.Categories,
		})
		if err != nil {
			return nil, err
		}
		artifact[entry.Name] = compactEntry
	}
	return artifact, nil
}

// WriteArtifact marshals the artifact and writes it to path, creating
// parent directories as needed.
func WriteArtifact(path string, artifact embeddings.Artifact) error {
	data, err := json.MarshalIndent(artifact, "", "  ")
	if err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, data, 0644)
}

func batchEntries(entries []*core.IconEntry, size int) [][]*core.IconEntry {
	if size < 1 {
		size = 1
	}

	var batches [][]*core.IconEntry
	for start := 0; start < len(entries); start += size {
		end := start + size
		if end > len(entries) {
			end = len(entries)
		}
		batches = append(batches, entries[start:end])
	}
	return batches
}
