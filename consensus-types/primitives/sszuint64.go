package types

import (
	"encoding/binary"

	fssz "github.com/ferranbt/fastssz"
	"github.com/pkg/errors"
)

var _ fssz.HashRoot = (*SSZUint64)(nil)
var _ fssz.Marshaler = (*SSZUint64)(nil)
var _ fssz.Unmarshaler = (*SSZUint64)(nil)

// SSZUint64 is a uint64 that satisfies the fast-ssz interface.
type SSZUint64 uint64

// SizeSSZ returns the size of the serialized representation.
func (s *SSZUint64) SizeSSZ() int {
	return 8
}

// MarshalSSZTo marshals the uint64 with the provided byte slice.
func (s *SSZUint64) MarshalSSZTo(dst []byte) ([]byte, error) {
	marshalled, err := s.MarshalSSZ()
	if err != nil {
		return nil, err
	}
	return append(dst, marshalled...), nil
}

// MarshalSSZ marshals the uint64 into a serialized object.
func (s *SSZUint64) MarshalSSZ() ([]byte, error) {
	marshalled := fssz.MarshalUint64([]byte{}, uint64(*s))
	return marshalled, nil
}

// UnmarshalSSZ deserializes the provided bytes buffer into the uint64 object.
func (s *SSZUint64) UnmarshalSSZ(buf []byte) error {
	if len(buf) != s.SizeSSZ() {
		return errors.Errorf("expected buffer of length %d received %d", s.SizeSSZ(), len(buf))
	}
	*s = SSZUint64(binary.LittleEndian.Uint64(buf))
	return nil
}

// HashTreeRoot returns the calculated hash root of the uint64.
func (s *SSZUint64) HashTreeRoot() ([32]byte, error) {
	return fssz.HashWithDefaultHasher(s)
}

// HashTreeRootWith hashes the uint64 object with a Hasher from the default HasherPool.
func (s *SSZUint64) HashTreeRootWith(hh *fssz.Hasher) error {
	indx := hh.Index()
	hh.PutUint64(uint64(*s))
	hh.Merkleize(indx)
	return nil
}
