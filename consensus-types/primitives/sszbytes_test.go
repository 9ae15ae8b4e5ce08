package types_test

import (
	"encoding/hex"
	"reflect"
	"testing"

	types "github.com/serenitylabs/serenity/consensus-types/primitives"
)

func hexDecodeOrDie(t *testing.T, str string) []byte {
	decoded, err := hex.DecodeString(str)
	if err != nil {
		t.Fatalf("hex.DecodeString(%s) unexpected error = %v", str, err)
	}
	return decoded
}

func TestSSZBytes_HashTreeRoot(t *testing.T) {
	tests := []struct {
		name        string
		actualValue []byte
		root        []byte
	}{
		{
			name:        "random1",
			actualValue: hexDecodeOrDie(t, "d2f8a9f2e08be3e887f1a71a1bd8a51794be19ff56a0e3c9a601a8b0ad775023"),
			root:        hexDecodeOrDie(t, "d2f8a9f2e08be3e887f1a71a1bd8a51794be19ff56a0e3c9a601a8b0ad775023"),
		},
		{
			name:        "random2",
			actualValue: hexDecodeOrDie(t, "11117fb14b84b6d9a1a2d6b28b1a8eeb7a8a4a6e29a6e3b0e9a4b8c8d1e0f1a2"),
			root:        hexDecodeOrDie(t, "11117fb14b84b6d9a1a2d6b28b1a8eeb7a8a4a6e29a6e3b0e9a4b8c8d1e0f1a2"),
		},
		{
			name:        "zero",
			actualValue: make([]byte, 32),
			root:        make([]byte, 32),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := types.SSZBytes(tt.actualValue)
			htr, err := s.HashTreeRoot()
			if err != nil {
				t.Errorf("SSZBytes.HashTreeRoot() unexpected error = %v", err)
			}
			if !reflect.DeepEqual(tt.root, htr[:]) {
				t.Errorf("SSZBytes.HashTreeRoot() = %#x, want %#x", htr[:], tt.root)
			}
		})
	}
}
