// Package aggregation contains implementations of bit aggregation algorithms and heuristics.
package aggregation

import "errors"

var (
	// ErrBitsOverlap is returned when two bit-vectors overlap with each other.
	ErrBitsOverlap = errors.New("overlapping aggregation bits")

	// ErrBitsDifferentLen is returned when two bit-vectors have different lengths.
	ErrBitsDifferentLen = errors.New("different bitlist lengths")

	// ErrInvalidStrategy is returned when invalid aggregation strategy is selected.
	ErrInvalidStrategy = errors.New("invalid aggregation strategy")
)
