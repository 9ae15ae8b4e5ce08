package params_test

import (
	"testing"

	"github.com/serenitylabs/serenity/config/params"
)

func TestOverrideBeaconConfig(t *testing.T) {
	cfg := params.BeaconConfig()
	defer params.OverrideBeaconConfig(cfg)

	modified := cfg.Copy()
	modified.SyncCommitteeSubnetCount = 8
	params.OverrideBeaconConfig(modified)
	if params.BeaconConfig().SyncCommitteeSubnetCount != 8 {
		t.Errorf("Shard count in manager mismatched with config: %d", params.BeaconConfig().SyncCommitteeSubnetCount)
	}
}

func TestMainnetSyncSubcommitteeSize(t *testing.T) {
	if size := params.MainnetConfig().SyncSubcommitteeSize(); size != 128 {
		t.Errorf("Unexpected mainnet sync subcommittee size: %d", size)
	}
	if size := params.MinimalSpecConfig().SyncSubcommitteeSize(); size != 8 {
		t.Errorf("Unexpected minimal sync subcommittee size: %d", size)
	}
}

func TestSyncSubcommitteeSize_ZeroSubnets(t *testing.T) {
	cfg := params.MainnetConfig().Copy()
	cfg.SyncCommitteeSubnetCount = 0
	if size := cfg.SyncSubcommitteeSize(); size != 0 {
		t.Errorf("Expected zero subcommittee size, got: %d", size)
	}
}
