package synccommittee

import (
	"github.com/pkg/errors"
	"github.com/serenitylabs/serenity/consensus-types/altair"
	types "github.com/serenitylabs/serenity/consensus-types/primitives"
)

// SaveSyncCommitteeContribution saves a sync committee contribution in the store.
// Contributions sharing the same slot, beacon block root and subcommittee index
// are merged: disjoint participation bits are aggregated in place, while an
// overlapping insert is rejected with ErrAlreadySigned since at least one
// participant already contributed a signature for that key.
func (s *Store) SaveSyncCommitteeContribution(cnt *altair.SyncCommitteeContribution) error {
	if cnt == nil {
		return errNilContribution
	}

	s.contributionLock.Lock()
	defer s.contributionLock.Unlock()

	copied := cnt.Copy()
	contributions, ok := s.contributionCache[cnt.Slot]
	if !ok {
		s.contributionCache[cnt.Slot] = []*altair.SyncCommitteeContribution{copied}
		savedSyncCommitteeContributionTotal.Inc()
		return nil
	}

	key := keyForContribution(copied)
	for _, c := range contributions {
		if keyForContribution(c) != key {
			continue
		}
		overlaps, err := c.AggregationBits.Overlaps(copied.AggregationBits)
		if err != nil {
			return err
		}
		if overlaps {
			return errors.Wrapf(altair.ErrAlreadySigned,
				"subcommittee %d at slot %d", key.subcommitteeIndex, key.slot)
		}
		if err := c.Aggregate(copied); err != nil {
			return err
		}
		savedSyncCommitteeContributionTotal.Inc()
		return nil
	}

	s.contributionCache[cnt.Slot] = append(contributions, copied)
	savedSyncCommitteeContributionTotal.Inc()
	return nil
}

// SyncCommitteeContributions returns sync committee contributions by slot from the store.
// The returned contributions are copies, callers are free to modify them.
func (s *Store) SyncCommitteeContributions(slot types.Slot) ([]*altair.SyncCommitteeContribution, error) {
	s.contributionLock.RLock()
	defer s.contributionLock.RUnlock()

	contributions := make([]*altair.SyncCommitteeContribution, 0, len(s.contributionCache[slot]))
	for _, c := range s.contributionCache[slot] {
		contributions = append(contributions, c.Copy())
	}
	return contributions, nil
}
