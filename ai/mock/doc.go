// Package mock provides test doubles for the ai package interfaces.
//
// The mock embedder produces deterministic vectors derived from the input
// text, so tests get stable similarity rankings without a live embedding
// service. Custom behavior can be injected via function fields.
package mock
