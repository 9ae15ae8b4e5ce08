package altair_test

import (
	"testing"

	"github.com/serenitylabs/serenity/beacon-chain/core/altair"
	"github.com/serenitylabs/serenity/config/params"
	ctypes "github.com/serenitylabs/serenity/consensus-types/altair"
	"github.com/serenitylabs/serenity/testing/assert"
	"github.com/serenitylabs/serenity/testing/require"
)

func TestSyncSubcommitteeSize(t *testing.T) {
	size, err := altair.SyncSubcommitteeSize()
	require.NoError(t, err)
	assert.Equal(t, uint64(128), size)
}

func TestSyncSubcommitteeSize_ZeroSubnetCount(t *testing.T) {
	cfg := params.BeaconConfig()
	defer params.OverrideBeaconConfig(cfg)

	modified := cfg.Copy()
	modified.SyncCommitteeSubnetCount = 0
	params.OverrideBeaconConfig(modified)

	_, err := altair.SyncSubcommitteeSize()
	require.ErrorIs(t, err, ctypes.ErrSubnetCountIsZero)
}

func TestSubcommitteeIndexAndPosition(t *testing.T) {
	tests := []struct {
		syncCommitteeIndex uint64
		subcommittee       uint64
		position           uint64
	}{
		{0, 0, 0},
		{127, 0, 127},
		{128, 1, 0},
		{300, 2, 44},
		{511, 3, 127},
	}
	for _, tt := range tests {
		subcommittee, position, err := altair.SubcommitteeIndexAndPosition(tt.syncCommitteeIndex)
		require.NoError(t, err)
		assert.Equal(t, tt.subcommittee, subcommittee)
		assert.Equal(t, tt.position, position)
	}
}
