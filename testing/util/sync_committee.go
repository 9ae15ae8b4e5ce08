package util

import (
	fieldparams "github.com/serenitylabs/serenity/config/fieldparams"
	"github.com/serenitylabs/serenity/consensus-types/altair"
)

// HydrateSyncCommitteeMessage hydrates a sync committee message with correct
// field lengths so it can pass SSZ validation.
func HydrateSyncCommitteeMessage(s *altair.SyncCommitteeMessage) *altair.SyncCommitteeMessage {
	if s.Signature == nil {
		s.Signature = make([]byte, fieldparams.BLSSignatureLength)
	}
	if s.BlockRoot == nil {
		s.BlockRoot = make([]byte, fieldparams.RootLength)
	}
	return s
}

// HydrateSyncCommitteeContribution hydrates a sync committee contribution with
// correct field lengths so it can pass SSZ validation.
func HydrateSyncCommitteeContribution(s *altair.SyncCommitteeContribution) *altair.SyncCommitteeContribution {
	if s.Signature == nil {
		s.Signature = make([]byte, fieldparams.BLSSignatureLength)
	}
	if s.BeaconBlockRoot == nil {
		s.BeaconBlockRoot = make([]byte, fieldparams.RootLength)
	}
	if s.AggregationBits == nil {
		s.AggregationBits = make([]byte, fieldparams.SyncCommitteeAggregationBytesLength)
	}
	return s
}
