// Package lexical provides deterministic fuzzy text matching over icon
// metadata.
//
// The index is built once from the full catalog and queried synchronously.
// Matches are scored as distances on a 0..1 scale where lower is better:
// 0 is an exact match and anything past the fixed fuzziness threshold is
// dropped. Name matches outweigh tag matches, which outweigh category
// matches.
package lexical
