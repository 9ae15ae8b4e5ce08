package types

import (
	fssz "github.com/ferranbt/fastssz"
)

var _ fssz.HashRoot = (*ValidatorIndex)(nil)
var _ fssz.Marshaler = (*ValidatorIndex)(nil)
var _ fssz.Unmarshaler = (*ValidatorIndex)(nil)

// ValidatorIndex in the beacon chain validator registry.
type ValidatorIndex uint64

// SizeSSZ returns the size of the serialized representation.
func (v *ValidatorIndex) SizeSSZ() int {
	return 8
}

// MarshalSSZTo marshals the validator index with the provided byte slice.
func (v *ValidatorIndex) MarshalSSZTo(dst []byte) ([]byte, error) {
	marshalled, err := v.MarshalSSZ()
	if err != nil {
		return nil, err
	}
	return append(dst, marshalled...), nil
}

// MarshalSSZ marshals the validator index into a serialized object.
func (v *ValidatorIndex) MarshalSSZ() ([]byte, error) {
	marshalled := fssz.MarshalUint64([]byte{}, uint64(*v))
	return marshalled, nil
}

// UnmarshalSSZ deserializes the provided bytes buffer into the validator index object.
func (v *ValidatorIndex) UnmarshalSSZ(buf []byte) error {
	sszVal := SSZUint64(*v)
	if err := sszVal.UnmarshalSSZ(buf); err != nil {
		return err
	}
	*v = ValidatorIndex(sszVal)
	return nil
}

// HashTreeRoot returns the calculated hash root of the validator index.
func (v *ValidatorIndex) HashTreeRoot() ([32]byte, error) {
	return fssz.HashWithDefaultHasher(v)
}

// HashTreeRootWith hashes the validator index object with a Hasher from the default HasherPool.
func (v *ValidatorIndex) HashTreeRootWith(hh *fssz.Hasher) error {
	indx := hh.Index()
	hh.PutUint64(uint64(*v))
	hh.Merkleize(indx)
	return nil
}
