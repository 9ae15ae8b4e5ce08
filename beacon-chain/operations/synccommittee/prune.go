package synccommittee

import (
	"time"

	"github.com/serenitylabs/serenity/config/params"
	"github.com/serenitylabs/serenity/time/slots"
	log "github.com/sirupsen/logrus"
)

// pruneSyncCommitteeStore prunes sync committee store on every slot interval.
func (s *Service) pruneSyncCommitteeStore() {
	ticker := time.NewTicker(time.Duration(params.BeaconConfig().SecondsPerSlot) * time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			// Chain has not started. There's nothing to do.
			if s.genesisTime == 0 {
				continue
			}
			s.pruneExpiredSyncCommitteeMessages()
			s.pruneExpiredSyncCommitteeContributions()
		case <-s.ctx.Done():
			log.Debug("Context closed, exiting routine")
			return
		}
	}
}

// This prunes expired sync committee messages from the store.
func (s *Service) pruneExpiredSyncCommitteeMessages() {
	currentSlot := slots.CurrentSlot(s.genesisTime)
	if currentSlot < 2 {
		return
	}

	s.store.messageLock.Lock()
	defer s.store.messageLock.Unlock()

	// Delete the sync committee messages from 2 slots back.
	// Doesn't matter when in current slot the deletion happen,
	// and this is the simplest and safest approach.
	expiredSlot := currentSlot.Sub(2)
	delete(s.store.messageCache, expiredSlot)
}

// This prunes expired sync committee contributions from the store.
func (s *Service) pruneExpiredSyncCommitteeContributions() {
	currentSlot := slots.CurrentSlot(s.genesisTime)
	if currentSlot < 2 {
		return
	}

	s.store.contributionLock.Lock()
	defer s.store.contributionLock.Unlock()

	// Delete the sync committee contributions from 2 slots back.
	// Doesn't matter when in current slot the deletion happen,
	// and this is the simplest and safest approach.
	expiredSlot := currentSlot.Sub(2)
	delete(s.store.contributionCache, expiredSlot)
}
