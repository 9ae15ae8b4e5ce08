package herumi

import (
	"fmt"

	bls12 "github.com/herumi/bls-eth-go-binary/bls"
	"github.com/pkg/errors"
	fieldparams "github.com/serenitylabs/serenity/config/fieldparams"
	"github.com/serenitylabs/serenity/crypto/bls/common"
)

// Signature used in the BLS signature scheme.
type Signature struct {
	s *bls12.Sign
}

// SignatureFromBytes creates a BLS signature from a LittleEndian byte slice.
func SignatureFromBytes(sig []byte) (common.Signature, error) {
	if len(sig) != fieldparams.BLSSignatureLength {
		return nil, fmt.Errorf("signature must be %d bytes", fieldparams.BLSSignatureLength)
	}
	signature := &bls12.Sign{}
	if err := signature.Deserialize(sig); err != nil {
		return nil, errors.Wrap(err, "could not unmarshal bytes into signature")
	}
	return &Signature{s: signature}, nil
}

// Verify a bls signature given a public key and a message.
func (s *Signature) Verify(pubKey common.PublicKey, msg []byte) bool {
	return s.s.VerifyByte(pubKey.(*PublicKey).p, msg)
}

// FastAggregateVerify verifies all the provided public keys with their
// aggregated signature and one message. This method is fast as it uses the
// majority of the BLS spec optimizations.
func (s *Signature) FastAggregateVerify(pubKeys []common.PublicKey, msg [32]byte) bool {
	if len(pubKeys) == 0 {
		return false
	}
	rawKeys := make([]bls12.PublicKey, len(pubKeys))
	for i := 0; i < len(pubKeys); i++ {
		rawKeys[i] = *pubKeys[i].(*PublicKey).p
	}
	return s.s.FastAggregateVerify(rawKeys, msg[:])
}

// NewAggregateSignature creates a blank aggregate signature.
func NewAggregateSignature() common.Signature {
	return &Signature{s: bls12.HashAndMapToSignature([]byte("hello"))}
}

// AggregateSignatures converts a list of signatures into a single, aggregated sig.
func AggregateSignatures(sigs []common.Signature) common.Signature {
	if len(sigs) == 0 {
		return nil
	}
	signature := *sigs[0].Copy().(*Signature).s
	for i := 1; i < len(sigs); i++ {
		signature.Add(sigs[i].(*Signature).s)
	}
	return &Signature{s: &signature}
}

// AggregateCompressedSignatures converts a list of compressed signatures into
// a single, aggregated sig.
func AggregateCompressedSignatures(multiSigs [][]byte) (common.Signature, error) {
	sigs := make([]common.Signature, 0, len(multiSigs))
	for _, s := range multiSigs {
		sig, err := SignatureFromBytes(s)
		if err != nil {
			return nil, err
		}
		sigs = append(sigs, sig)
	}
	return AggregateSignatures(sigs), nil
}

// Marshal a signature into a LittleEndian byte slice.
func (s *Signature) Marshal() []byte {
	return s.s.Serialize()
}

// Copy the signature to a new pointer reference.
func (s *Signature) Copy() common.Signature {
	ns := *s.s
	return &Signature{s: &ns}
}
