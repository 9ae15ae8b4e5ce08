// Package params defines important constants that are essential to beacon
// chain services.
package params

import (
	types "github.com/serenitylabs/serenity/consensus-types/primitives"
)

// BeaconChainConfig contains constant configs for a node to participate in
// the beacon chain.
type BeaconChainConfig struct {
	// Constants.
	ConfigName string `yaml:"CONFIG_NAME" spec:"true"` // ConfigName for allowing an easy identification of testnets.
	PresetBase string `yaml:"PRESET_BASE" spec:"true"` // PresetBase indicates the base values the config is built upon.

	// Time parameters constants.
	SecondsPerSlot uint64     `yaml:"SECONDS_PER_SLOT" spec:"true"` // SecondsPerSlot is how many seconds are in a single slot.
	SlotsPerEpoch  types.Slot `yaml:"SLOTS_PER_EPOCH" spec:"true"`  // SlotsPerEpoch is the number of slots in an epoch.

	// Sync committee parameters constants.
	SyncCommitteeSize                    uint64 `yaml:"SYNC_COMMITTEE_SIZE" spec:"true"`                      // SyncCommitteeSize for light client sync committees.
	SyncCommitteeSubnetCount             uint64 `yaml:"SYNC_COMMITTEE_SUBNET_COUNT" spec:"true"`              // SyncCommitteeSubnetCount for sync committee subnet count.
	TargetAggregatorsPerSyncSubcommittee uint64 `yaml:"TARGET_AGGREGATORS_PER_SYNC_SUBCOMMITTEE" spec:"true"` // TargetAggregatorsPerSyncSubcommittee for aggregating in sync committees.
	EpochsPerSyncCommitteePeriod         uint64 `yaml:"EPOCHS_PER_SYNC_COMMITTEE_PERIOD" spec:"true"`         // EpochsPerSyncCommitteePeriod defines how many epochs a sync committee serves for.
}

// SyncSubcommitteeSize returns the number of validators in a sync
// subcommittee, i.e. the width of a contribution's aggregation bits.
func (b *BeaconChainConfig) SyncSubcommitteeSize() uint64 {
	if b.SyncCommitteeSubnetCount == 0 {
		return 0
	}
	return b.SyncCommitteeSize / b.SyncCommitteeSubnetCount
}

// Copy returns a copy of the config object.
func (b *BeaconChainConfig) Copy() *BeaconChainConfig {
	config := *b
	return &config
}

var beaconConfig = MainnetConfig()

// BeaconConfig retrieves the beacon chain config.
func BeaconConfig() *BeaconChainConfig {
	return beaconConfig
}

// OverrideBeaconConfig by replacing the config. The preferred pattern is to
// call BeaconConfig(), change the specific parameters, and then call
// OverrideBeaconConfig(c). Any subsequent calls to params.BeaconConfig() will
// return this new configuration.
func OverrideBeaconConfig(c *BeaconChainConfig) {
	beaconConfig = c
}
