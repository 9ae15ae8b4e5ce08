// Package synccommittee defines an in-memory pool of received
// sync committee objects, messages and contributions.
package synccommittee

import (
	"sync"

	"github.com/pkg/errors"
	"github.com/serenitylabs/serenity/consensus-types/altair"
	types "github.com/serenitylabs/serenity/consensus-types/primitives"
	"github.com/serenitylabs/serenity/encoding/bytesutil"
)

var (
	errNilMessage      = errors.New("nil sync committee message")
	errNilContribution = errors.New("nil sync committee contribution")
)

// Store defines the caches for various sync committee objects
// such as message(un-aggregated) and contribution(aggregated).
type Store struct {
	messageLock       sync.RWMutex
	messageCache      map[types.Slot][]*altair.SyncCommitteeMessage
	contributionLock  sync.RWMutex
	contributionCache map[types.Slot][]*altair.SyncCommitteeContribution
}

// NewStore initializes a new sync committee store.
func NewStore() *Store {
	return &Store{
		messageCache:      make(map[types.Slot][]*altair.SyncCommitteeMessage),
		contributionCache: make(map[types.Slot][]*altair.SyncCommitteeContribution),
	}
}

// contributionKey is the comparable form of the dedup key. Contributions that
// agree on it describe the same (slot, block root, subcommittee) and may only
// differ in participation bits and signature.
type contributionKey struct {
	slot              types.Slot
	blockRoot         [32]byte
	subcommitteeIndex uint64
}

func keyForContribution(c *altair.SyncCommitteeContribution) contributionKey {
	d := altair.SyncContributionDataFromContribution(c)
	return contributionKey{
		slot:              d.Slot,
		blockRoot:         bytesutil.ToBytes32(d.BeaconBlockRoot),
		subcommitteeIndex: d.SubcommitteeIndex,
	}
}
