// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"

	"github.com/poiesic/iconsearch"
	"github.com/poiesic/iconsearch/ai"
	"github.com/poiesic/iconsearch/ai/cohere"
	"github.com/poiesic/iconsearch/ai/mock"
	"github.com/poiesic/iconsearch/ai/openai"
	"github.com/poiesic/iconsearch/bookmarks"
	"github.com/poiesic/iconsearch/bookmarks/badger"
	"github.com/poiesic/iconsearch/catalog"
	"github.com/poiesic/iconsearch/core"
	"github.com/poiesic/iconsearch/embeddings"
	"github.com/poiesic/iconsearch/generate"
)

func main() {
	app := &cli.App{
		Name:   "iconsearch",
		Usage:  "Hybrid lexical and semantic search over an icon catalog",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Before: setup,
		Commands: []*cli.Command{
			{
				Name:      "search",
				Usage:     "Search the catalog for icons",
				ArgsUsage: "<query>",
				Action:    searchCommand,
				Flags: append(catalogFlags(),
					&cli.StringFlag{
						Name:  "embeddings",
						Usage: "Path or URL of the embedding artifact",
						Value: embeddings.DefaultArtifactPath,
					},
					&cli.BoolFlag{
						Name:  "lexical-only",
						Usage: "Skip loading embeddings and search lexically",
					},
				),
			},
			{
				Name:   "generate",
				Usage:  "Generate the embedding artifact for a catalog",
				Action: generateCommand,
				Flags: append(catalogFlags(),
					&cli.StringFlag{
						Name:    "out",
						Aliases: []string{"o"},
						Usage:   "Output path for the embedding artifact",
						Value:   embeddings.DefaultArtifactPath,
					},
					&cli.IntFlag{
						Name:  "batch-size",
						Usage: "Number of icons to embed in each request",
						Value: 20,
					},
					&cli.IntFlag{
						Name:  "max-retries",
						Usage: "Maximum retry attempts for failed requests",
						Value: 3,
					},
					&cli.DurationFlag{
						Name:  "retry-delay",
						Usage: "Base delay for exponential backoff",
						Value: 1 * time.Second,
					},
				),
			},
			{
				Name:  "bookmark",
				Usage: "Manage local bookmarks",
				Subcommands: []*cli.Command{
					{
						Name:      "add",
						Usage:     "Bookmark an icon",
						ArgsUsage: "<icon-name>",
						Action:    bookmarkAddCommand,
						Flags:     bookmarkFlags(),
					},
					{
						Name:      "remove",
						Usage:     "Remove an icon's bookmark",
						ArgsUsage: "<icon-name>",
						Action:    bookmarkRemoveCommand,
						Flags:     bookmarkFlags(),
					},
					{
						Name:   "list",
						Usage:  "List bookmarked icons",
						Action: bookmarkListCommand,
						Flags:  bookmarkFlags(),
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func catalogFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:     "catalog",
			Aliases:  []string{"c"},
			Usage:    "Path to the icon catalog JSON file",
			Required: true,
		},
	}
}

func bookmarkFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "db",
			Aliases: []string{"d"},
			Usage:   "Path to the local bookmark database directory",
			Value:   "./bookmarks_db",
		},
	}
}

// setup configures logging and loads .env so provider keys can live
// outside the shell environment.
func setup(c *cli.Context) error {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		slog.Warn("error loading .env file", "err", err)
	}

	levelStr := strings.ToLower(c.String("log-level"))

	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}

// aiConfigFromEnv builds the embedding provider config from environment
// variables, falling back to the mock provider when no key is set.
func aiConfigFromEnv() *ai.Config {
	provider := os.Getenv("ICONSEARCH_PROVIDER")
	apiKey := os.Getenv("ICONSEARCH_API_KEY")
	if provider == "" {
		if apiKey == "" {
			provider = ai.ProviderMock
		} else {
			provider = ai.ProviderCohere
		}
	}

	opts := []ai.ConfigOption{
		ai.WithProvider(provider),
		ai.WithAPIKey(apiKey),
	}
	if host := os.Getenv("ICONSEARCH_HOST"); host != "" {
		opts = append(opts, ai.WithHost(host))
	}
	if model := os.Getenv("ICONSEARCH_MODEL"); model != "" {
		opts = append(opts, ai.WithModel(model))
	}
	return ai.NewConfig(opts...)
}

func searchCommand(c *cli.Context) error {
	ctx := context.Background()

	query := strings.Join(c.Args().Slice(), " ")

	g, err := iconsearch.NewGallery(c.String("catalog"),
		iconsearch.WithAIConfig(aiConfigFromEnv()),
		iconsearch.WithArtifactSource(c.String("embeddings")),
		iconsearch.WithInMemoryBookmarks(),
	)
	if err != nil {
		return fmt.Errorf("failed to open gallery: %w", err)
	}
	defer g.Close()

	if !c.Bool("lexical-only") {
		loaded := make(chan struct{})
		g.LoadEmbeddings(ctx, func() { close(loaded) })
		<-loaded
	}

	searcher, err := g.NewSearcher()
	if err != nil {
		return err
	}

	results := searcher.Search(ctx, query)
	fmt.Printf("Found %d icons\n", len(results))
	for i, hit := range results {
		marker := " "
		if hit.Exact {
			marker = "*"
		}
		fmt.Printf("%d:%s %s [%0.3f] %s\n", i, marker, hit.Entry.Name, hit.Score, kindLabel(hit.Kind))
	}
	return nil
}

func kindLabel(kind core.MatchKind) string {
	switch kind {
	case core.MatchLexical:
		return "lexical"
	case core.MatchSemantic:
		return "semantic"
	case core.MatchBoth:
		return "both"
	default:
		return "unknown"
	}
}

func generateCommand(c *cli.Context) error {
	ctx := context.Background()

	cat, err := catalog.LoadFile(c.String("catalog"))
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	config := aiConfigFromEnv()
	if err := config.Validate(); err != nil {
		return fmt.Errorf("invalid AI configuration: %w", err)
	}

	embedder, err := newCommandEmbedder(config)
	if err != nil {
		return fmt.Errorf("failed to create embedder: %w", err)
	}

	generateConfig := generate.DefaultConfig()
	generateConfig.BatchSize = c.Int("batch-size")
	generateConfig.MaxRetries = c.Int("max-retries")
	generateConfig.RetryDelay = c.Duration("retry-delay")

	if generateConfig.BatchSize <= 0 {
		return fmt.Errorf("batch-size must be greater than 0")
	}
	if generateConfig.MaxRetries <= 0 {
		return fmt.Errorf("max-retries must be greater than 0")
	}

	generator, err := generate.NewGenerator(cat, embedder, generateConfig, os.Stderr)
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "Catalog: %s (%d icons)\n", c.String("catalog"), cat.Len())
	fmt.Fprintf(os.Stderr, "Provider: %s\n\n", config.Provider)

	artifact, err := generator.Run(ctx)
	if err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}

	out := c.String("out")
	if err := generate.WriteArtifact(out, artifact); err != nil {
		return fmt.Errorf("failed to write artifact: %w", err)
	}

	fmt.Fprintf(os.Stderr, "Wrote %d embeddings to %s\n", len(artifact), out)
	return nil
}

func newCommandEmbedder(config *ai.Config) (ai.Embedder, error) {
	switch config.Provider {
	case ai.ProviderCohere:
		return cohere.NewEmbedder(config)
	case ai.ProviderOpenAI:
		return openai.NewEmbedder(config)
	default:
		return mock.NewMockEmbedder(), nil
	}
}

func bookmarkAddCommand(c *cli.Context) error {
	iconName := c.Args().First()
	if iconName == "" {
		return fmt.Errorf("icon name is required")
	}

	return withBookmarks(c, func(ctx context.Context, manager *bookmarks.Manager) error {
		if err := manager.Add(ctx, iconName, core.BookmarkMetadata{}); err != nil {
			return err
		}
		fmt.Printf("Bookmarked %s\n", iconName)
		return nil
	})
}

func bookmarkRemoveCommand(c *cli.Context) error {
	iconName := c.Args().First()
	if iconName == "" {
		return fmt.Errorf("icon name is required")
	}

	return withBookmarks(c, func(ctx context.Context, manager *bookmarks.Manager) error {
		if err := manager.Remove(ctx, iconName); err != nil {
			return err
		}
		fmt.Printf("Removed bookmark for %s\n", iconName)
		return nil
	})
}

func bookmarkListCommand(c *cli.Context) error {
	return withBookmarks(c, func(ctx context.Context, manager *bookmarks.Manager) error {
		marks, err := manager.List(ctx)
		if err != nil {
			return err
		}

		fmt.Printf("%d bookmarks\n", len(marks))
		for _, mark := range marks {
			fmt.Printf("  %s (%s)\n", mark.IconName, mark.CreatedAt.Format(time.RFC3339))
		}
		return nil
	})
}

func withBookmarks(c *cli.Context, fn func(ctx context.Context, manager *bookmarks.Manager) error) error {
	store, err := badger.OpenStore(c.String("db"), false)
	if err != nil {
		return fmt.Errorf("failed to open bookmark database: %w", err)
	}

	manager, err := bookmarks.NewManager(store)
	if err != nil {
		store.Close()
		return err
	}
	defer manager.Close()

	return fn(context.Background(), manager)
}
