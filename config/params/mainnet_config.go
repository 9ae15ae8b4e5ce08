package params

// mainnetBeaconConfig carries the mainnet spec values this module depends on.
var mainnetBeaconConfig = &BeaconChainConfig{
	// Constants.
	ConfigName: "mainnet",
	PresetBase: "mainnet",

	// Time parameters constants.
	SecondsPerSlot: 12,
	SlotsPerEpoch:  32,

	// Sync committee parameters constants.
	SyncCommitteeSize:                    512,
	SyncCommitteeSubnetCount:             4,
	TargetAggregatorsPerSyncSubcommittee: 16,
	EpochsPerSyncCommitteePeriod:         256,
}

// MainnetConfig returns the configuration to be used in the main network.
func MainnetConfig() *BeaconChainConfig {
	return mainnetBeaconConfig
}
