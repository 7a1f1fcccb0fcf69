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


package iconsearch

import (
	"context"
	"errors"
	"log/slog"

	"github.com/poiesic/iconsearch/ai"
	"github.com/poiesic/iconsearch/ai/cohere"
	"github.com/poiesic/iconsearch/ai/mock"
	"github.com/poiesic/iconsearch/ai/openai"
	"github.com/poiesic/iconsearch/bookmarks"
	"github.com/poiesic/iconsearch/bookmarks/badger"
	"github.com/poiesic/iconsearch/catalog"
	"github.com/poiesic/iconsearch/embeddings"
	"github.com/poiesic/iconsearch/gallery"
	"github.com/poiesic/iconsearch/lexical"
	"github.com/poiesic/iconsearch/search"
	"github.com/poiesic/iconsearch/semantic"
)

// Gallery wires the catalog, the embedding store, the search pipeline, and
// the bookmark manager into one application object.
type Gallery struct {
	catalog   *catalog.Catalog
	index     *lexical.Index
	store     *embeddings.Store
	loader    *embeddings.Loader
	embedder  ai.Embedder
	session   *gallery.Session
	bookmarks *bookmarks.Manager
	logger    *slog.Logger
}

// GalleryOption configures a Gallery.
type GalleryOption func(*galleryOptions)

type galleryOptions struct {
	aiConfig       *ai.Config
	artifactSource string
	bookmarkPath   string
	inMemory       bool
	remoteFactory  bookmarks.RemoteFactory
}

// WithAIConfig overrides the embedding provider configuration.
func WithAIConfig(config *ai.Config) GalleryOption {
	return func(o *galleryOptions) {
		if config != nil {
			o.aiConfig = config
		}
	}
}

// WithArtifactSource sets where the embedding artifact is loaded from,
// either a filesystem path or an http(s) URL.
func WithArtifactSource(source string) GalleryOption {
	return func(o *galleryOptions) {
		o.artifactSource = source
	}
}

// WithBookmarkPath sets the directory of the local bookmark database.
func WithBookmarkPath(path string) GalleryOption {
	return func(o *galleryOptions) {
		o.bookmarkPath = path
	}
}

// WithInMemoryBookmarks keeps the local bookmark store in memory.
// Useful for tests and ephemeral sessions.
func WithInMemoryBookmarks() GalleryOption {
	return func(o *galleryOptions) {
		o.inMemory = true
	}
}

// WithRemoteBookmarks enables remote bookmark storage for signed-in users.
func WithRemoteBookmarks(factory bookmarks.RemoteFactory) GalleryOption {
	return func(o *galleryOptions) {
		o.remoteFactory = factory
	}
}

// NewGallery builds a gallery over the given catalog file. The embedding
// artifact loads in the background; until it arrives, searches are
// lexical-only.
func NewGallery(catalogPath string, opts ...GalleryOption) (*Gallery, error) {
	options := &galleryOptions{
		aiConfig:       ai.DefaultConfig(),
		artifactSource: embeddings.DefaultArtifactPath,
		bookmarkPath:   "./bookmarks_db",
	}
	for _, opt := range opts {
		opt(options)
	}

	cat, err := catalog.LoadFile(catalogPath)
	if err != nil {
		return nil, err
	}

	return newGallery(cat, options)
}

// NewGalleryFromCatalog builds a gallery over an already-loaded catalog.
func NewGalleryFromCatalog(cat *catalog.Catalog, opts ...GalleryOption) (*Gallery, error) {
	if cat == nil {
		return nil, errors.New("catalog required")
	}

	options := &galleryOptions{
		aiConfig:       ai.DefaultConfig(),
		artifactSource: embeddings.DefaultArtifactPath,
		inMemory:       true,
	}
	for _, opt := range opts {
		opt(options)
	}

	return newGallery(cat, options)
}

func newGallery(cat *catalog.Catalog, options *galleryOptions) (*Gallery, error) {
	embedder, err := newEmbedder(options.aiConfig)
	if err != nil {
		return nil, err
	}

	localStore, err := badger.OpenStore(options.bookmarkPath, options.inMemory)
	if err != nil {
		return nil, err
	}

	var managerOpts []bookmarks.ManagerOption
	if options.remoteFactory != nil {
		managerOpts = append(managerOpts, bookmarks.WithRemoteFactory(options.remoteFactory))
	}
	manager, err := bookmarks.NewManager(localStore, managerOpts...)
	if err != nil {
		localStore.Close()
		return nil, err
	}

	store := embeddings.NewStore()

	g := &Gallery{
		catalog:   cat,
		index:     lexical.NewIndex(cat),
		store:     store,
		loader:    embeddings.NewLoader(store, options.artifactSource),
		embedder:  embedder,
		session:   gallery.NewSession(),
		bookmarks: manager,
		logger:    slog.Default(),
	}

	// Session changes drive the bookmark manager; a failed store switch
	// leaves the previous store active.
	g.session.OnChange(func(userID string) {
		if userID == "" {
			g.bookmarks.SignOut()
			return
		}
		if err := g.bookmarks.SignIn(context.Background(), userID); err != nil {
			g.logger.Error("error switching bookmark store", "user", userID, "err", err)
		}
	})

	return g, nil
}

func newEmbedder(config *ai.Config) (ai.Embedder, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	switch config.Provider {
	case ai.ProviderCohere:
		return cohere.NewEmbedder(config)
	case ai.ProviderOpenAI:
		return openai.NewEmbedder(config)
	default:
		return mock.NewMockEmbedder(), nil
	}
}

// Catalog returns the loaded icon catalog.
func (g *Gallery) Catalog() *catalog.Catalog {
	return g.catalog
}

// Session returns the sign-in session.
func (g *Gallery) Session() *gallery.Session {
	return g.session
}

// Bookmarks returns the bookmark manager.
func (g *Gallery) Bookmarks() *bookmarks.Manager {
	return g.bookmarks
}

// EmbeddingStore returns the in-process embedding store.
func (g *Gallery) EmbeddingStore() *embeddings.Store {
	return g.store
}

// LoadEmbeddings starts the background artifact load. onDone, if non-nil,
// runs after the attempt either way; pass a State refresh to pick up the
// vectors as soon as they land.
func (g *Gallery) LoadEmbeddings(ctx context.Context, onDone func()) {
	g.loader.LoadBackground(ctx, onDone)
}

// NewSearcher creates a hybrid searcher over the gallery's catalog.
func (g *Gallery) NewSearcher(opts ...search.Option) (*search.Searcher, error) {
	engine, err := semantic.NewEngine(g.embedder, semantic.NewLocalRanker(g.store))
	if err != nil {
		return nil, err
	}
	return search.NewSearcher(g.catalog, g.index, engine, opts...)
}

// NewState creates the reactive gallery state and subscribes it to
// bookmark changes.
func (g *Gallery) NewState(ctx context.Context, opts ...gallery.StateOption) (*gallery.State, error) {
	searcher, err := g.NewSearcher()
	if err != nil {
		return nil, err
	}

	state := gallery.NewState(searcher, g.bookmarks, g.store, opts...)
	g.bookmarks.Subscribe(func() {
		state.Refresh(ctx)
	})
	return state, nil
}

// Close closes the bookmark stores.
func (g *Gallery) Close() error {
	if err := g.bookmarks.Close(); err != nil {
		g.logger.Error("error closing bookmark manager", "err", err)
		return err
	}
	return nil
}
