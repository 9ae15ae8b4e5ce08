package types

import (
	"fmt"
	"math"

	fssz "github.com/ferranbt/fastssz"
	"github.com/pkg/errors"
)

// ErrArithmetic is returned when a slot operation over- or underflows.
var ErrArithmetic = errors.New("slot arithmetic overflow/underflow")

var _ fssz.HashRoot = (*Slot)(nil)
var _ fssz.Marshaler = (*Slot)(nil)
var _ fssz.Unmarshaler = (*Slot)(nil)

// Slot represents a single slot.
type Slot uint64

// SafeAdd returns the slot increased by x, erroring on overflow.
func (s Slot) SafeAdd(x uint64) (Slot, error) {
	if uint64(s) > math.MaxUint64-x {
		return 0, ErrArithmetic
	}
	return s + Slot(x), nil
}

// Add returns the slot increased by x. Panics on overflow.
func (s Slot) Add(x uint64) Slot {
	res, err := s.SafeAdd(x)
	if err != nil {
		panic(err.Error())
	}
	return res
}

// SafeSub returns the slot decreased by x, erroring on underflow.
func (s Slot) SafeSub(x uint64) (Slot, error) {
	if uint64(s) < x {
		return 0, ErrArithmetic
	}
	return s - Slot(x), nil
}

// Sub returns the slot decreased by x. Panics on underflow.
func (s Slot) Sub(x uint64) Slot {
	res, err := s.SafeSub(x)
	if err != nil {
		panic(err.Error())
	}
	return res
}

// SafeMul returns the slot multiplied by x, erroring on overflow.
func (s Slot) SafeMul(x uint64) (Slot, error) {
	if s == 0 || x == 0 {
		return 0, nil
	}
	res := s * Slot(x)
	if uint64(res)/x != uint64(s) {
		return 0, ErrArithmetic
	}
	return res, nil
}

// Mul returns the slot multiplied by x. Panics on overflow.
func (s Slot) Mul(x uint64) Slot {
	res, err := s.SafeMul(x)
	if err != nil {
		panic(err.Error())
	}
	return res
}

// String implements fmt.Stringer.
func (s Slot) String() string {
	return fmt.Sprintf("%d", uint64(s))
}

// SizeSSZ returns the size of the serialized representation.
func (s *Slot) SizeSSZ() int {
	return 8
}

// MarshalSSZTo marshals the slot with the provided byte slice.
func (s *Slot) MarshalSSZTo(dst []byte) ([]byte, error) {
	marshalled, err := s.MarshalSSZ()
	if err != nil {
		return nil, err
	}
	return append(dst, marshalled...), nil
}

// MarshalSSZ marshals the slot into a serialized object.
func (s *Slot) MarshalSSZ() ([]byte, error) {
	marshalled := fssz.MarshalUint64([]byte{}, uint64(*s))
	return marshalled, nil
}

// UnmarshalSSZ deserializes the provided bytes buffer into the slot object.
func (s *Slot) UnmarshalSSZ(buf []byte) error {
	sszVal := SSZUint64(*s)
	if err := sszVal.UnmarshalSSZ(buf); err != nil {
		return err
	}
	*s = Slot(sszVal)
	return nil
}

// HashTreeRoot returns the calculated hash root of the slot.
func (s *Slot) HashTreeRoot() ([32]byte, error) {
	return fssz.HashWithDefaultHasher(s)
}

// HashTreeRootWith hashes the slot object with a Hasher from the default HasherPool.
func (s *Slot) HashTreeRootWith(hh *fssz.Hasher) error {
	indx := hh.Index()
	hh.PutUint64(uint64(*s))
	hh.Merkleize(indx)
	return nil
}
