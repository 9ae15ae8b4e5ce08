// Package altair implements the sync committee arithmetic introduced by the
// altair hard fork.
package altair

import (
	"github.com/serenitylabs/serenity/config/params"
	ctypes "github.com/serenitylabs/serenity/consensus-types/altair"
)

// SyncSubcommitteeSize returns the number of validators in each sync
// subcommittee, which is also the width of a contribution's aggregation bits.
//
// Spec code:
// sync_subcommittee_size = SYNC_COMMITTEE_SIZE // SYNC_COMMITTEE_SUBNET_COUNT
func SyncSubcommitteeSize() (uint64, error) {
	cfg := params.BeaconConfig()
	if cfg.SyncCommitteeSubnetCount == 0 {
		return 0, ctypes.ErrSubnetCountIsZero
	}
	return cfg.SyncCommitteeSize / cfg.SyncCommitteeSubnetCount, nil
}

// SubcommitteeIndexAndPosition maps a validator's position within the full
// sync committee to the subcommittee holding it and the zero-based position
// within that subcommittee. The position is the bit a contribution built from
// the validator's message sets.
func SubcommitteeIndexAndPosition(syncCommitteeIndex uint64) (subcommittee, position uint64, err error) {
	size, err := SyncSubcommitteeSize()
	if err != nil {
		return 0, 0, err
	}
	return syncCommitteeIndex / size, syncCommitteeIndex % size, nil
}
