// Package slots contains slot-related helpers relying on the configured
// beacon chain parameters.
package slots

import (
	"time"

	"github.com/serenitylabs/serenity/config/params"
	types "github.com/serenitylabs/serenity/consensus-types/primitives"
)

// CurrentSlot returns the current slot as determined by the local clock and
// provided genesis time.
func CurrentSlot(genesisTimeSec uint64) types.Slot {
	now := time.Now().Unix()
	genesis := int64(genesisTimeSec)
	if now < genesis {
		return 0
	}
	return types.Slot(uint64(now-genesis) / params.BeaconConfig().SecondsPerSlot)
}

// StartTime returns the start time in terms of its unix epoch value.
func StartTime(genesisTimeSec uint64, slot types.Slot) time.Time {
	duration := time.Second * time.Duration(slot.Mul(params.BeaconConfig().SecondsPerSlot))
	startTime := time.Unix(int64(genesisTimeSec), 0).Add(duration)
	return startTime
}

// PrevSlot returns previous slot, with an exception in slot 0 to prevent underflow.
func PrevSlot(slot types.Slot) types.Slot {
	if slot > 0 {
		return slot.Sub(1)
	}
	return 0
}
