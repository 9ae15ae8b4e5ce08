package altair

import "github.com/pkg/errors"

var (
	// ErrInvalidBitPosition is returned when a sync subcommittee position lies
	// outside the aggregation bit-vector.
	ErrInvalidBitPosition = errors.New("bit position exceeds the sync subcommittee size")

	// ErrAlreadySigned is returned by aggregating layers when a contribution's
	// contributors are already included in an existing aggregate.
	ErrAlreadySigned = errors.New("validator already included in an aggregated contribution")

	// ErrSubnetCountIsZero is returned by subcommittee arithmetic when the
	// configured sync committee subnet count is zero.
	ErrSubnetCountIsZero = errors.New("sync committee subnet count is zero")
)
