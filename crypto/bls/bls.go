// Package bls implements a go-wrapper around a library implementing the
// BLS12-381 curve. This package exposes a public API for creating and
// aggregating BLS signatures used by Ethereum beacon chain clients.
package bls

import (
	"github.com/serenitylabs/serenity/crypto/bls/common"
	"github.com/serenitylabs/serenity/crypto/bls/herumi"
)

// SecretKeyFromBytes creates a BLS private key from a BigEndian byte slice.
func SecretKeyFromBytes(privKey []byte) (SecretKey, error) {
	return herumi.SecretKeyFromBytes(privKey)
}

// PublicKeyFromBytes creates a BLS public key from a BigEndian byte slice.
func PublicKeyFromBytes(pubKey []byte) (PublicKey, error) {
	return herumi.PublicKeyFromBytes(pubKey)
}

// SignatureFromBytes creates a BLS signature from a LittleEndian byte slice.
func SignatureFromBytes(sig []byte) (Signature, error) {
	return herumi.SignatureFromBytes(sig)
}

// AggregateSignatures converts a list of signatures into a single, aggregated sig.
func AggregateSignatures(sigs []common.Signature) common.Signature {
	return herumi.AggregateSignatures(sigs)
}

// AggregateCompressedSignatures converts a list of compressed signatures into
// a single, aggregated sig.
func AggregateCompressedSignatures(multiSigs [][]byte) (common.Signature, error) {
	return herumi.AggregateCompressedSignatures(multiSigs)
}

// NewAggregateSignature creates a blank aggregate signature.
func NewAggregateSignature() common.Signature {
	return herumi.NewAggregateSignature()
}

// RandKey creates a new private key using a random input.
func RandKey() common.SecretKey {
	return herumi.RandKey()
}
