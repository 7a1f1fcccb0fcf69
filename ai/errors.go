package ai

import "errors"

var (
	// ErrRateLimited indicates the embedding service rejected the request
	// with a rate-limit response. The interactive path treats this like any
	// other transient failure; the offline generator retries with backoff.
	ErrRateLimited = errors.New("embedding service rate limited")

	// ErrEmptyResponse indicates the service returned no embeddings.
	ErrEmptyResponse = errors.New("embedding service returned no embeddings")
)
