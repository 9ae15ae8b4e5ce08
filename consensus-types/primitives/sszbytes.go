package types

import (
	fssz "github.com/ferranbt/fastssz"
)

var _ fssz.HashRoot = (*SSZBytes)(nil)

// SSZBytes is a byte slice that satisfies the fast-ssz HashRoot interface.
// Wrapping a beacon block root in SSZBytes lets the root serve directly as
// the object to sign, without any further container around it.
type SSZBytes []byte

// HashTreeRoot hashes the byte slice following the SSZ standard.
func (b *SSZBytes) HashTreeRoot() ([32]byte, error) {
	return fssz.HashWithDefaultHasher(b)
}

// HashTreeRootWith hashes the SSZBytes object with the given hasher.
func (b *SSZBytes) HashTreeRootWith(hh *fssz.Hasher) error {
	indx := hh.Index()
	hh.PutBytes(*b)
	hh.Merkleize(indx)
	return nil
}
