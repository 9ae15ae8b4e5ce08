package herumi

import (
	"fmt"

	bls12 "github.com/herumi/bls-eth-go-binary/bls"
	"github.com/pkg/errors"
	fieldparams "github.com/serenitylabs/serenity/config/fieldparams"
	"github.com/serenitylabs/serenity/crypto/bls/common"
)

// bls12SecretKey used in the BLS signature scheme.
type bls12SecretKey struct {
	p *bls12.SecretKey
}

// RandKey creates a new private key using a cryptographically secure random source.
func RandKey() common.SecretKey {
	secKey := &bls12.SecretKey{}
	secKey.SetByCSPRNG()
	return &bls12SecretKey{p: secKey}
}

// SecretKeyFromBytes creates a BLS private key from a BigEndian byte slice.
func SecretKeyFromBytes(privKey []byte) (common.SecretKey, error) {
	if len(privKey) != fieldparams.BLSSecretKeyLength {
		return nil, fmt.Errorf("secret key must be %d bytes", fieldparams.BLSSecretKeyLength)
	}
	if common.SecretKeyIsZero(privKey) {
		return nil, common.ErrZeroKey
	}

	secKey := &bls12.SecretKey{}
	if err := secKey.Deserialize(privKey); err != nil {
		return nil, errors.Wrap(err, "could not unmarshal bytes into secret key")
	}
	return &bls12SecretKey{p: secKey}, nil
}

// PublicKey obtains the public key corresponding to the BLS secret key.
func (s *bls12SecretKey) PublicKey() common.PublicKey {
	return &PublicKey{p: s.p.GetPublicKey()}
}

// Sign a message using a secret key - in a beacon/validator client.
func (s *bls12SecretKey) Sign(msg []byte) common.Signature {
	signature := s.p.SignByte(msg)
	return &Signature{s: signature}
}

// Marshal a secret key into a LittleEndian byte slice.
func (s *bls12SecretKey) Marshal() []byte {
	return s.p.Serialize()
}
