// Package altair defines the sync committee value types introduced by the
// altair hard fork: the single-validator sync committee message, the
// aggregated sync committee contribution, and the contribution's identity
// triple used for deduplication.
package altair

import (
	"bytes"

	"github.com/pkg/errors"
	"github.com/prysmaticlabs/go-bitfield"
	types "github.com/serenitylabs/serenity/consensus-types/primitives"
	"github.com/serenitylabs/serenity/crypto/bls"
	"github.com/serenitylabs/serenity/encoding/bytesutil"
)

// SlotData can be implemented by any value that exposes its slot, letting
// slot-keyed containers treat messages, contributions and identity triples
// uniformly.
type SlotData interface {
	GetSlot() types.Slot
}

var (
	_ = SlotData(&SyncCommitteeMessage{})
	_ = SlotData(&SyncCommitteeContribution{})
	_ = SlotData(&SyncContributionData{})
)

// SyncCommitteeMessage is a single validator's signature over a beacon block
// root, gossiped on one of the sync committee subnets.
type SyncCommitteeMessage struct {
	Slot           types.Slot
	BlockRoot      []byte
	ValidatorIndex types.ValidatorIndex
	Signature      []byte
}

// SyncCommitteeContribution is an aggregation of SyncCommitteeMessages from
// one subcommittee, used in creating a SignedContributionAndProof. Bit i of
// AggregationBits is set when the validator at subcommittee position i is
// included in Signature.
type SyncCommitteeContribution struct {
	Slot              types.Slot
	BeaconBlockRoot   []byte
	SubcommitteeIndex uint64
	AggregationBits   bitfield.Bitvector128
	Signature         []byte
}

// SyncContributionData is the identity triple of a contribution. It is not a
// spec container, but contributions that may be aggregated together share the
// same projection, which makes it the canonical deduplication key for
// contribution pools.
type SyncContributionData struct {
	Slot              types.Slot
	BeaconBlockRoot   []byte
	SubcommitteeIndex uint64
}

// ContributionFromMessage creates a SyncCommitteeContribution from:
//
//   - message: a single SyncCommitteeMessage.
//   - subcommitteeIndex: the subcommittee this contribution pertains to out of
//     the broader sync committee. This can be determined from the subnet the
//     message was seen on.
//   - validatorSyncCommitteeIndex: the position of the validator within the
//     subcommittee.
func ContributionFromMessage(
	message *SyncCommitteeMessage,
	subcommitteeIndex uint64,
	validatorSyncCommitteeIndex uint64,
) (*SyncCommitteeContribution, error) {
	bits := bitfield.NewBitvector128()
	if validatorSyncCommitteeIndex >= bits.Len() {
		return nil, errors.Wrapf(ErrInvalidBitPosition,
			"position %d, subcommittee size %d", validatorSyncCommitteeIndex, bits.Len())
	}
	bits.SetBitAt(validatorSyncCommitteeIndex, true)
	return &SyncCommitteeContribution{
		Slot:              message.Slot,
		BeaconBlockRoot:   bytesutil.SafeCopyBytes(message.BlockRoot),
		SubcommitteeIndex: subcommitteeIndex,
		AggregationBits:   bits,
		Signature:         bytesutil.SafeCopyBytes(message.Signature),
	}, nil
}

// Aggregate merges other into the receiver: the aggregation bits are OR'd
// and other's signature is added into the receiver's aggregate. The receiver
// keeps its slot, beacon block root and subcommittee index; other is left
// unchanged.
//
// The two contributions must carry equal identity triples and disjoint
// aggregation bits. Both are the caller's contract: pools key contributions
// by their SyncContributionData and track membership before merging, and an
// overlapping union would claim more contributors than the signature holds.
// Only malformed signature bytes surface as an error.
func (s *SyncCommitteeContribution) Aggregate(other *SyncCommitteeContribution) error {
	newBits, err := s.AggregationBits.Or(other.AggregationBits)
	if err != nil {
		return errors.Wrap(err, "could not union aggregation bits")
	}
	newSig, err := bls.AggregateCompressedSignatures([][]byte{s.Signature, other.Signature})
	if err != nil {
		return errors.Wrap(err, "could not aggregate signatures")
	}
	s.AggregationBits = newBits
	s.Signature = newSig.Marshal()
	return nil
}

// SyncContributionDataFromContribution projects the identity triple of a
// contribution. Total and infallible.
func SyncContributionDataFromContribution(c *SyncCommitteeContribution) *SyncContributionData {
	return &SyncContributionData{
		Slot:              c.Slot,
		BeaconBlockRoot:   bytesutil.SafeCopyBytes(c.BeaconBlockRoot),
		SubcommitteeIndex: c.SubcommitteeIndex,
	}
}

// Equal reports structural equality of the two identity triples.
func (s *SyncContributionData) Equal(other *SyncContributionData) bool {
	return s.Slot == other.Slot &&
		bytes.Equal(s.BeaconBlockRoot, other.BeaconBlockRoot) &&
		s.SubcommitteeIndex == other.SubcommitteeIndex
}

// GetSlot returns the slot of the message.
func (s *SyncCommitteeMessage) GetSlot() types.Slot {
	return s.Slot
}

// GetSlot returns the slot of the contribution.
func (s *SyncCommitteeContribution) GetSlot() types.Slot {
	return s.Slot
}

// GetSlot returns the slot of the identity triple.
func (s *SyncContributionData) GetSlot() types.Slot {
	return s.Slot
}

// Copy returns a deep copy of the message.
func (s *SyncCommitteeMessage) Copy() *SyncCommitteeMessage {
	if s == nil {
		return nil
	}
	return &SyncCommitteeMessage{
		Slot:           s.Slot,
		BlockRoot:      bytesutil.SafeCopyBytes(s.BlockRoot),
		ValidatorIndex: s.ValidatorIndex,
		Signature:      bytesutil.SafeCopyBytes(s.Signature),
	}
}

// Copy returns a deep copy of the contribution.
func (s *SyncCommitteeContribution) Copy() *SyncCommitteeContribution {
	if s == nil {
		return nil
	}
	return &SyncCommitteeContribution{
		Slot:              s.Slot,
		BeaconBlockRoot:   bytesutil.SafeCopyBytes(s.BeaconBlockRoot),
		SubcommitteeIndex: s.SubcommitteeIndex,
		AggregationBits:   bitfield.Bitvector128(bytesutil.SafeCopyBytes(s.AggregationBits)),
		Signature:         bytesutil.SafeCopyBytes(s.Signature),
	}
}

// Copy returns a deep copy of the identity triple.
func (s *SyncContributionData) Copy() *SyncContributionData {
	if s == nil {
		return nil
	}
	return &SyncContributionData{
		Slot:              s.Slot,
		BeaconBlockRoot:   bytesutil.SafeCopyBytes(s.BeaconBlockRoot),
		SubcommitteeIndex: s.SubcommitteeIndex,
	}
}
