package synccommittee

import (
	"testing"

	"github.com/serenitylabs/serenity/consensus-types/altair"
	types "github.com/serenitylabs/serenity/consensus-types/primitives"
	"github.com/serenitylabs/serenity/testing/assert"
	"github.com/serenitylabs/serenity/testing/require"
	"github.com/serenitylabs/serenity/testing/util"
)

func message(slot types.Slot, valIdx types.ValidatorIndex) *altair.SyncCommitteeMessage {
	return util.HydrateSyncCommitteeMessage(&altair.SyncCommitteeMessage{
		Slot:           slot,
		ValidatorIndex: valIdx,
	})
}

func TestSyncCommitteeSignatureCache_Nil(t *testing.T) {
	store := NewStore()
	require.ErrorContains(t, "nil sync committee message", store.SaveSyncCommitteeMessage(nil))
}

func TestSyncCommitteeSignatureCache_RoundTrip(t *testing.T) {
	store := NewStore()

	msgs := []*altair.SyncCommitteeMessage{
		message(1, 0),
		message(1, 1),
		message(2, 0),
	}
	for _, m := range msgs {
		require.NoError(t, store.SaveSyncCommitteeMessage(m))
	}

	got, err := store.SyncCommitteeMessages(1)
	require.NoError(t, err)
	require.Equal(t, 2, len(got))
	assert.DeepEqual(t, msgs[0], got[0])
	assert.DeepEqual(t, msgs[1], got[1])

	got, err = store.SyncCommitteeMessages(3)
	require.NoError(t, err)
	require.Equal(t, 0, len(got))
}

func TestSyncCommitteeSignatureCache_AlreadySigned(t *testing.T) {
	store := NewStore()

	require.NoError(t, store.SaveSyncCommitteeMessage(message(1, 7)))
	err := store.SaveSyncCommitteeMessage(message(1, 7))
	require.ErrorIs(t, err, altair.ErrAlreadySigned)

	// Same validator may sign a different slot.
	require.NoError(t, store.SaveSyncCommitteeMessage(message(2, 7)))

	// Same validator may sign a different block root at the same slot.
	m := message(1, 7)
	m.BlockRoot[0] = 0xaa
	require.NoError(t, store.SaveSyncCommitteeMessage(m))
}

func TestSyncCommitteeSignatureCache_ReturnsCopies(t *testing.T) {
	store := NewStore()
	require.NoError(t, store.SaveSyncCommitteeMessage(message(1, 3)))

	got, err := store.SyncCommitteeMessages(1)
	require.NoError(t, err)
	require.Equal(t, 1, len(got))
	got[0].BlockRoot[0] = 0xff

	again, err := store.SyncCommitteeMessages(1)
	require.NoError(t, err)
	assert.Equal(t, uint8(0), again[0].BlockRoot[0])
}
