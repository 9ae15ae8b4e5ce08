package altair

import (
	ssz "github.com/ferranbt/fastssz"
	"github.com/prysmaticlabs/go-bitfield"
	types "github.com/serenitylabs/serenity/consensus-types/primitives"
)

// The methods in this file follow the fastssz method set so the types can be
// used anywhere a ssz.Marshaler/Unmarshaler/HashRoot is expected. All three
// containers are fixed size, so no offset table is ever emitted.

const (
	syncCommitteeMessageSSZSize      = 144 // 8 + 32 + 8 + 96
	syncCommitteeContributionSSZSize = 160 // 8 + 32 + 8 + 16 + 96
	syncContributionDataSSZSize      = 48  // 8 + 32 + 8
)

// MarshalSSZ ssz marshals the SyncCommitteeMessage object.
func (s *SyncCommitteeMessage) MarshalSSZ() ([]byte, error) {
	return ssz.MarshalSSZ(s)
}

// MarshalSSZTo ssz marshals the SyncCommitteeMessage object to a target array.
func (s *SyncCommitteeMessage) MarshalSSZTo(buf []byte) (dst []byte, err error) {
	dst = buf

	// Field (0) 'Slot'
	dst = ssz.MarshalUint64(dst, uint64(s.Slot))

	// Field (1) 'BlockRoot'
	if len(s.BlockRoot) != 32 {
		return nil, ssz.ErrBytesLength
	}
	dst = append(dst, s.BlockRoot...)

	// Field (2) 'ValidatorIndex'
	dst = ssz.MarshalUint64(dst, uint64(s.ValidatorIndex))

	// Field (3) 'Signature'
	if len(s.Signature) != 96 {
		return nil, ssz.ErrBytesLength
	}
	dst = append(dst, s.Signature...)

	return dst, nil
}

// UnmarshalSSZ ssz unmarshals the SyncCommitteeMessage object.
func (s *SyncCommitteeMessage) UnmarshalSSZ(buf []byte) error {
	if len(buf) != syncCommitteeMessageSSZSize {
		return ssz.ErrSize
	}

	// Field (0) 'Slot'
	s.Slot = types.Slot(ssz.UnmarshallUint64(buf[0:8]))

	// Field (1) 'BlockRoot'
	s.BlockRoot = append([]byte{}, buf[8:40]...)

	// Field (2) 'ValidatorIndex'
	s.ValidatorIndex = types.ValidatorIndex(ssz.UnmarshallUint64(buf[40:48]))

	// Field (3) 'Signature'
	s.Signature = append([]byte{}, buf[48:144]...)

	return nil
}

// SizeSSZ returns the ssz encoded size in bytes for the SyncCommitteeMessage object.
func (s *SyncCommitteeMessage) SizeSSZ() int {
	return syncCommitteeMessageSSZSize
}

// HashTreeRoot ssz hashes the SyncCommitteeMessage object.
func (s *SyncCommitteeMessage) HashTreeRoot() ([32]byte, error) {
	return ssz.HashWithDefaultHasher(s)
}

// HashTreeRootWith ssz hashes the SyncCommitteeMessage object with a hasher.
func (s *SyncCommitteeMessage) HashTreeRootWith(hh *ssz.Hasher) error {
	indx := hh.Index()

	// Field (0) 'Slot'
	hh.PutUint64(uint64(s.Slot))

	// Field (1) 'BlockRoot'
	if len(s.BlockRoot) != 32 {
		return ssz.ErrBytesLength
	}
	hh.PutBytes(s.BlockRoot)

	// Field (2) 'ValidatorIndex'
	hh.PutUint64(uint64(s.ValidatorIndex))

	// Field (3) 'Signature'
	if len(s.Signature) != 96 {
		return ssz.ErrBytesLength
	}
	hh.PutBytes(s.Signature)

	hh.Merkleize(indx)
	return nil
}

// MarshalSSZ ssz marshals the SyncCommitteeContribution object.
func (s *SyncCommitteeContribution) MarshalSSZ() ([]byte, error) {
	return ssz.MarshalSSZ(s)
}

// MarshalSSZTo ssz marshals the SyncCommitteeContribution object to a target array.
func (s *SyncCommitteeContribution) MarshalSSZTo(buf []byte) (dst []byte, err error) {
	dst = buf

	// Field (0) 'Slot'
	dst = ssz.MarshalUint64(dst, uint64(s.Slot))

	// Field (1) 'BeaconBlockRoot'
	if len(s.BeaconBlockRoot) != 32 {
		return nil, ssz.ErrBytesLength
	}
	dst = append(dst, s.BeaconBlockRoot...)

	// Field (2) 'SubcommitteeIndex'
	dst = ssz.MarshalUint64(dst, s.SubcommitteeIndex)

	// Field (3) 'AggregationBits'
	if len(s.AggregationBits) != 16 {
		return nil, ssz.ErrBytesLength
	}
	dst = append(dst, s.AggregationBits...)

	// Field (4) 'Signature'
	if len(s.Signature) != 96 {
		return nil, ssz.ErrBytesLength
	}
	dst = append(dst, s.Signature...)

	return dst, nil
}

// UnmarshalSSZ ssz unmarshals the SyncCommitteeContribution object.
func (s *SyncCommitteeContribution) UnmarshalSSZ(buf []byte) error {
	if len(buf) != syncCommitteeContributionSSZSize {
		return ssz.ErrSize
	}

	// Field (0) 'Slot'
	s.Slot = types.Slot(ssz.UnmarshallUint64(buf[0:8]))

	// Field (1) 'BeaconBlockRoot'
	s.BeaconBlockRoot = append([]byte{}, buf[8:40]...)

	// Field (2) 'SubcommitteeIndex'
	s.SubcommitteeIndex = ssz.UnmarshallUint64(buf[40:48])

	// Field (3) 'AggregationBits'
	s.AggregationBits = bitfield.Bitvector128(append([]byte{}, buf[48:64]...))

	// Field (4) 'Signature'
	s.Signature = append([]byte{}, buf[64:160]...)

	return nil
}

// SizeSSZ returns the ssz encoded size in bytes for the SyncCommitteeContribution object.
func (s *SyncCommitteeContribution) SizeSSZ() int {
	return syncCommitteeContributionSSZSize
}

// HashTreeRoot ssz hashes the SyncCommitteeContribution object.
func (s *SyncCommitteeContribution) HashTreeRoot() ([32]byte, error) {
	return ssz.HashWithDefaultHasher(s)
}

// HashTreeRootWith ssz hashes the SyncCommitteeContribution object with a hasher.
func (s *SyncCommitteeContribution) HashTreeRootWith(hh *ssz.Hasher) error {
	indx := hh.Index()

	// Field (0) 'Slot'
	hh.PutUint64(uint64(s.Slot))

	// Field (1) 'BeaconBlockRoot'
	if len(s.BeaconBlockRoot) != 32 {
		return ssz.ErrBytesLength
	}
	hh.PutBytes(s.BeaconBlockRoot)

	// Field (2) 'SubcommitteeIndex'
	hh.PutUint64(s.SubcommitteeIndex)

	// Field (3) 'AggregationBits'
	if len(s.AggregationBits) != 16 {
		return ssz.ErrBytesLength
	}
	hh.PutBytes(s.AggregationBits)

	// Field (4) 'Signature'
	if len(s.Signature) != 96 {
		return ssz.ErrBytesLength
	}
	hh.PutBytes(s.Signature)

	hh.Merkleize(indx)
	return nil
}

// MarshalSSZ ssz marshals the SyncContributionData object.
func (s *SyncContributionData) MarshalSSZ() ([]byte, error) {
	return ssz.MarshalSSZ(s)
}

// MarshalSSZTo ssz marshals the SyncContributionData object to a target array.
func (s *SyncContributionData) MarshalSSZTo(buf []byte) (dst []byte, err error) {
	dst = buf

	// Field (0) 'Slot'
	dst = ssz.MarshalUint64(dst, uint64(s.Slot))

	// Field (1) 'BeaconBlockRoot'
	if len(s.BeaconBlockRoot) != 32 {
		return nil, ssz.ErrBytesLength
	}
	dst = append(dst, s.BeaconBlockRoot...)

	// Field (2) 'SubcommitteeIndex'
	dst = ssz.MarshalUint64(dst, s.SubcommitteeIndex)

	return dst, nil
}

// UnmarshalSSZ ssz unmarshals the SyncContributionData object.
func (s *SyncContributionData) UnmarshalSSZ(buf []byte) error {
	if len(buf) != syncContributionDataSSZSize {
		return ssz.ErrSize
	}

	// Field (0) 'Slot'
	s.Slot = types.Slot(ssz.UnmarshallUint64(buf[0:8]))

	// Field (1) 'BeaconBlockRoot'
	s.BeaconBlockRoot = append([]byte{}, buf[8:40]...)

	// Field (2) 'SubcommitteeIndex'
	s.SubcommitteeIndex = ssz.UnmarshallUint64(buf[40:48])

	return nil
}

// SizeSSZ returns the ssz encoded size in bytes for the SyncContributionData object.
func (s *SyncContributionData) SizeSSZ() int {
	return syncContributionDataSSZSize
}

// HashTreeRoot ssz hashes the SyncContributionData object.
func (s *SyncContributionData) HashTreeRoot() ([32]byte, error) {
	return ssz.HashWithDefaultHasher(s)
}

// HashTreeRootWith ssz hashes the SyncContributionData object with a hasher.
func (s *SyncContributionData) HashTreeRootWith(hh *ssz.Hasher) error {
	indx := hh.Index()

	// Field (0) 'Slot'
	hh.PutUint64(uint64(s.Slot))

	// Field (1) 'BeaconBlockRoot'
	if len(s.BeaconBlockRoot) != 32 {
		return ssz.ErrBytesLength
	}
	hh.PutBytes(s.BeaconBlockRoot)

	// Field (2) 'SubcommitteeIndex'
	hh.PutUint64(s.SubcommitteeIndex)

	hh.Merkleize(indx)
	return nil
}
