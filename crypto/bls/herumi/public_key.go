package herumi

import (
	"fmt"

	bls12 "github.com/herumi/bls-eth-go-binary/bls"
	"github.com/pkg/errors"
	fieldparams "github.com/serenitylabs/serenity/config/fieldparams"
	"github.com/serenitylabs/serenity/crypto/bls/common"
)

// PublicKey used in the BLS signature scheme.
type PublicKey struct {
	p *bls12.PublicKey
}

// PublicKeyFromBytes creates a BLS public key from a BigEndian byte slice.
func PublicKeyFromBytes(pubKey []byte) (common.PublicKey, error) {
	if len(pubKey) != fieldparams.BLSPubkeyLength {
		return nil, fmt.Errorf("public key must be %d bytes", fieldparams.BLSPubkeyLength)
	}
	if common.PublicKeyIsInfinite(pubKey) {
		return nil, common.ErrInfinitePubKey
	}
	p := &bls12.PublicKey{}
	if err := p.Deserialize(pubKey); err != nil {
		return nil, errors.Wrap(err, "could not unmarshal bytes into public key")
	}
	return &PublicKey{p: p}, nil
}

// Marshal a public key into a LittleEndian byte slice.
func (p *PublicKey) Marshal() []byte {
	return p.p.Serialize()
}

// Copy the public key to a new pointer reference.
func (p *PublicKey) Copy() common.PublicKey {
	np := *p.p
	return &PublicKey{p: &np}
}

// Aggregate two public keys.
func (p *PublicKey) Aggregate(p2 common.PublicKey) common.PublicKey {
	p.p.Add(p2.(*PublicKey).p)
	return p
}
