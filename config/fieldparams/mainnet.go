package field_params

const (
	Preset                              = "mainnet"
	RootLength                          = 32  // RootLength defines the byte length of a Merkle root.
	BLSSignatureLength                  = 96  // BLSSignatureLength defines the byte length of a BLSSignature.
	BLSPubkeyLength                     = 48  // BLSPubkeyLength defines the byte length of a BLSPubkey.
	BLSSecretKeyLength                  = 32  // BLSSecretKeyLength defines the byte length of a BLS secret key.
	SyncCommitteeLength                 = 512 // SYNC_COMMITTEE_SIZE
	SyncCommitteeAggregationBytesLength = 16  // SyncCommitteeAggregationBytesLength defines the length of sync committee aggregate bytes.
	SyncSubcommitteeSize                = 128 // SyncSubcommitteeSize defines the number of validators in a sync subcommittee.
	SlotsPerEpoch                       = 32  // SlotsPerEpoch defines the number of slots per epoch.
)
