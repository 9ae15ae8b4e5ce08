package params

// MinimalSpecConfig returns the minimal spec config used in spec tests.
func MinimalSpecConfig() *BeaconChainConfig {
	minimalConfig := mainnetBeaconConfig.Copy()

	minimalConfig.ConfigName = "minimal"
	minimalConfig.PresetBase = "minimal"

	// Time parameters.
	minimalConfig.SecondsPerSlot = 6
	minimalConfig.SlotsPerEpoch = 8

	// Sync committee parameters.
	minimalConfig.SyncCommitteeSize = 32
	minimalConfig.SyncCommitteeSubnetCount = 4
	minimalConfig.TargetAggregatorsPerSyncSubcommittee = 4
	minimalConfig.EpochsPerSyncCommitteePeriod = 8

	return minimalConfig
}
