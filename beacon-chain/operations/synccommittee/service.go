package synccommittee

import (
	"context"
)

// Service owns the sync committee store and prunes expired entries from it on
// every slot interval.
type Service struct {
	ctx         context.Context
	genesisTime uint64
	store       *Store
}

// NewService initializes a pruning service over the provided store. The
// genesis time is the chain start in unix seconds, zero means the chain has
// not started yet and nothing is pruned.
func NewService(ctx context.Context, genesisTime uint64, store *Store) *Service {
	return &Service{
		ctx:         ctx,
		genesisTime: genesisTime,
		store:       store,
	}
}

// Start spawns the pruning routine. It exits when the service context is done.
func (s *Service) Start() {
	go s.pruneSyncCommitteeStore()
}
