package synccommittee

import (
	"github.com/serenitylabs/serenity/consensus-types/altair"
	types "github.com/serenitylabs/serenity/consensus-types/primitives"
)

var _ = Pool(&Store{})

// Pool defines the necessary methods for the sync pool to serve validators.
// In the current design, aggregated contributions are used by proposers and
// sync committee messages are used by sync aggregators.
type Pool interface {
	// Methods for sync contributions.
	SaveSyncCommitteeContribution(contr *altair.SyncCommitteeContribution) error
	SyncCommitteeContributions(slot types.Slot) ([]*altair.SyncCommitteeContribution, error)

	// Methods for sync committee messages.
	SaveSyncCommitteeMessage(msg *altair.SyncCommitteeMessage) error
	SyncCommitteeMessages(slot types.Slot) ([]*altair.SyncCommitteeMessage, error)
}

// NewPool returns the sync committee store fulfilling the pool interface.
func NewPool() Pool {
	return NewStore()
}
