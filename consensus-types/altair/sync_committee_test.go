package altair_test

import (
	"testing"

	"github.com/serenitylabs/serenity/consensus-types/altair"
	types "github.com/serenitylabs/serenity/consensus-types/primitives"
	"github.com/serenitylabs/serenity/crypto/bls"
	"github.com/serenitylabs/serenity/testing/assert"
	"github.com/serenitylabs/serenity/testing/require"
	"github.com/serenitylabs/serenity/testing/util"
)

func TestContributionFromMessage(t *testing.T) {
	root := make([]byte, 32)
	root[31] = 0x42
	sk := bls.RandKey()
	msg := &altair.SyncCommitteeMessage{
		Slot:           42,
		BlockRoot:      root,
		ValidatorIndex: 19,
		Signature:      sk.Sign(root).Marshal(),
	}

	c, err := altair.ContributionFromMessage(msg, 3, 5)
	require.NoError(t, err)
	assert.Equal(t, types.Slot(42), c.Slot)
	assert.DeepEqual(t, root, c.BeaconBlockRoot)
	assert.Equal(t, uint64(3), c.SubcommitteeIndex)
	assert.DeepEqual(t, msg.Signature, c.Signature)

	assert.Equal(t, uint64(1), c.AggregationBits.Count())
	assert.Equal(t, true, c.AggregationBits.BitAt(5))

	// The contribution holds copies, not aliases.
	root[0] = 0xff
	assert.Equal(t, uint8(0), c.BeaconBlockRoot[0])
}

func TestContributionFromMessage_PositionBounds(t *testing.T) {
	msg := util.HydrateSyncCommitteeMessage(&altair.SyncCommitteeMessage{Slot: 1})

	c, err := altair.ContributionFromMessage(msg, 0, 127)
	require.NoError(t, err)
	assert.Equal(t, true, c.AggregationBits.BitAt(127))

	_, err = altair.ContributionFromMessage(msg, 0, 128)
	require.ErrorIs(t, err, altair.ErrInvalidBitPosition)
}

func TestSyncCommitteeContribution_Aggregate(t *testing.T) {
	root := make([]byte, 32)
	root[0] = 0x01
	sk1 := bls.RandKey()
	sk2 := bls.RandKey()

	m1 := &altair.SyncCommitteeMessage{Slot: 7, BlockRoot: root, ValidatorIndex: 1, Signature: sk1.Sign(root).Marshal()}
	m2 := &altair.SyncCommitteeMessage{Slot: 7, BlockRoot: root, ValidatorIndex: 2, Signature: sk2.Sign(root).Marshal()}

	c1, err := altair.ContributionFromMessage(m1, 2, 10)
	require.NoError(t, err)
	c2, err := altair.ContributionFromMessage(m2, 2, 20)
	require.NoError(t, err)
	c2Before := c2.Copy()

	require.NoError(t, c1.Aggregate(c2))

	// Identity fields are those of the receiver.
	assert.Equal(t, types.Slot(7), c1.Slot)
	assert.DeepEqual(t, root, c1.BeaconBlockRoot)
	assert.Equal(t, uint64(2), c1.SubcommitteeIndex)

	// Bits are the union of the two inputs.
	assert.Equal(t, uint64(2), c1.AggregationBits.Count())
	assert.Equal(t, true, c1.AggregationBits.BitAt(10))
	assert.Equal(t, true, c1.AggregationBits.BitAt(20))

	// The aggregate signature verifies against both public keys.
	sig, err := bls.SignatureFromBytes(c1.Signature)
	require.NoError(t, err)
	var msgRoot [32]byte
	copy(msgRoot[:], root)
	assert.Equal(t, true, sig.FastAggregateVerify([]bls.PublicKey{sk1.PublicKey(), sk2.PublicKey()}, msgRoot))

	// The argument is left unchanged.
	assert.DeepEqual(t, c2Before, c2)
}

func TestSyncCommitteeContribution_AggregateOrderIndependent(t *testing.T) {
	root := make([]byte, 32)
	sks := []bls.SecretKey{bls.RandKey(), bls.RandKey(), bls.RandKey()}
	cs := make([]*altair.SyncCommitteeContribution, len(sks))
	for i, sk := range sks {
		m := &altair.SyncCommitteeMessage{
			Slot:           1,
			BlockRoot:      root,
			ValidatorIndex: types.ValidatorIndex(i),
			Signature:      sk.Sign(root).Marshal(),
		}
		c, err := altair.ContributionFromMessage(m, 0, uint64(i))
		require.NoError(t, err)
		cs[i] = c
	}

	// Fold left to right.
	left := cs[0].Copy()
	require.NoError(t, left.Aggregate(cs[1]))
	require.NoError(t, left.Aggregate(cs[2]))

	// Fold right to left.
	right := cs[2].Copy()
	require.NoError(t, right.Aggregate(cs[1]))
	require.NoError(t, right.Aggregate(cs[0]))

	assert.DeepEqual(t, left.AggregationBits, right.AggregationBits)
	assert.DeepEqual(t, left.Signature, right.Signature)
}

func TestSyncCommitteeContribution_AggregateBadSignature(t *testing.T) {
	c1 := util.HydrateSyncCommitteeContribution(&altair.SyncCommitteeContribution{Slot: 1})
	c1.Signature = bls.NewAggregateSignature().Marshal()
	c2 := util.HydrateSyncCommitteeContribution(&altair.SyncCommitteeContribution{Slot: 1})
	c1Before := c1.Copy()

	err := c1.Aggregate(c2)
	require.ErrorContains(t, "could not aggregate signatures", err)

	// Failed aggregation leaves the receiver untouched.
	assert.DeepEqual(t, c1Before, c1)
}

func TestSyncContributionDataFromContribution(t *testing.T) {
	c := util.HydrateSyncCommitteeContribution(&altair.SyncCommitteeContribution{
		Slot:              9,
		SubcommitteeIndex: 3,
	})
	c.BeaconBlockRoot[5] = 0x0c

	d := altair.SyncContributionDataFromContribution(c)
	assert.Equal(t, types.Slot(9), d.Slot)
	assert.Equal(t, uint64(3), d.SubcommitteeIndex)
	assert.DeepEqual(t, c.BeaconBlockRoot, d.BeaconBlockRoot)

	// The projection does not alias the contribution's root.
	d.BeaconBlockRoot[0] = 0xff
	assert.Equal(t, uint8(0), c.BeaconBlockRoot[0])

	// Contributions differing only in bits and signature share a key.
	key := altair.SyncContributionDataFromContribution(c)
	c2 := c.Copy()
	c2.AggregationBits.SetBitAt(99, true)
	c2.Signature[0] = 0xaa
	assert.Equal(t, true, key.Equal(altair.SyncContributionDataFromContribution(c2)))

	c3 := c.Copy()
	c3.SubcommitteeIndex = 2
	assert.Equal(t, false, key.Equal(altair.SyncContributionDataFromContribution(c3)))
}

func TestSyncCommitteeTypes_GetSlot(t *testing.T) {
	var vals []altair.SlotData = []altair.SlotData{
		&altair.SyncCommitteeMessage{Slot: 11},
		&altair.SyncCommitteeContribution{Slot: 12},
		&altair.SyncContributionData{Slot: 13},
	}
	assert.Equal(t, types.Slot(11), vals[0].GetSlot())
	assert.Equal(t, types.Slot(12), vals[1].GetSlot())
	assert.Equal(t, types.Slot(13), vals[2].GetSlot())
}

func TestSyncCommitteeContribution_Copy(t *testing.T) {
	c := util.HydrateSyncCommitteeContribution(&altair.SyncCommitteeContribution{
		Slot:              4,
		SubcommitteeIndex: 1,
	})
	c.AggregationBits.SetBitAt(64, true)

	cp := c.Copy()
	assert.DeepEqual(t, c, cp)

	cp.BeaconBlockRoot[0] = 0xff
	cp.AggregationBits.SetBitAt(65, true)
	cp.Signature[0] = 0xff
	assert.Equal(t, uint8(0), c.BeaconBlockRoot[0])
	assert.Equal(t, false, c.AggregationBits.BitAt(65))
	assert.Equal(t, uint8(0), c.Signature[0])

	var nilContribution *altair.SyncCommitteeContribution
	if nilContribution.Copy() != nil {
		t.Error("copy of nil contribution should be nil")
	}
}

func TestSyncCommitteeMessage_Copy(t *testing.T) {
	m := util.HydrateSyncCommitteeMessage(&altair.SyncCommitteeMessage{
		Slot:           4,
		ValidatorIndex: 2,
	})
	cp := m.Copy()
	assert.DeepEqual(t, m, cp)

	cp.BlockRoot[0] = 0xff
	assert.Equal(t, uint8(0), m.BlockRoot[0])
}
