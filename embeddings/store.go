package embeddings

import "sync"

// Store holds the per-icon embedding vectors. It starts empty and is
// populated wholesale by the loader; a fresh load replaces the contents,
// never patches in place. All methods are safe for concurrent use.
type Store struct {
	mu      sync.RWMutex
	vectors map[string][]float32
	version uint64
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{vectors: make(map[string][]float32)}
}

// VectorFor returns the embedding for an icon, if one was loaded.
// Absence is expected and not an error; icons without vectors simply do not
// participate in semantic ranking.
func (s *Store) VectorFor(iconName string) ([]float32, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	vector, ok := s.vectors[iconName]
	return vector, ok
}

// Len returns the number of loaded vectors.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.vectors)
}

// Version returns a counter that increments on every Replace. Reactive
// consumers use it as a memoization key.
func (s *Store) Version() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version
}

// Replace swaps the store contents wholesale and bumps the version.
func (s *Store) Replace(vectors map[string][]float32) {
	if vectors == nil {
		vectors = make(map[string][]float32)
	}
	s.mu.Lock()
	s.vectors = vectors
	s.version++
	s.mu.Unlock()
}

// Range calls fn for every loaded vector until fn returns false.
// The iteration observes a consistent snapshot of one load.
func (s *Store) Range(fn func(iconName string, vector []float32) bool) {
	s.mu.RLock()
	vectors := s.vectors
	s.mu.RUnlock()

	for name, vector := range vectors {
		if !fn(name, vector) {
			return
		}
	}
}
