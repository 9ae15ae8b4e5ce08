// Package herumi implements the BLS interfaces backed by the
// herumi/bls-eth-go-binary library.
package herumi

import bls12 "github.com/herumi/bls-eth-go-binary/bls"

func init() {
	HerumiInit()
}

// HerumiInit allows the required curve orders and appropriate sub-groups to be initialized.
func HerumiInit() {
	if err := bls12.Init(bls12.BLS12_381); err != nil {
		panic(err)
	}
	if err := bls12.SetETHmode(bls12.EthModeDraft07); err != nil {
		panic(err)
	}
	// Check subgroup order for pubkeys and signatures.
	bls12.VerifyPublicKeyOrder(true)
	bls12.VerifySignatureOrder(true)
}
