package types_test

import (
	"math"
	"testing"

	types "github.com/serenitylabs/serenity/consensus-types/primitives"
)

func TestSlot_Casting(t *testing.T) {
	slot := types.Slot(42)
	if uint64(slot) != 42 {
		t.Errorf("Unequal: %v = %v", slot, 42)
	}
	if slot.String() != "42" {
		t.Errorf("Unexpected string value: %s", slot.String())
	}
}

func TestSlot_Add(t *testing.T) {
	if types.Slot(5).Add(10) != types.Slot(15) {
		t.Error("Slot.Add() did not add")
	}
	if _, err := types.Slot(math.MaxUint64).SafeAdd(1); err == nil {
		t.Error("Expected overflow error")
	}
}

func TestSlot_Sub(t *testing.T) {
	if types.Slot(15).Sub(10) != types.Slot(5) {
		t.Error("Slot.Sub() did not subtract")
	}
	if _, err := types.Slot(1).SafeSub(2); err == nil {
		t.Error("Expected underflow error")
	}
}

func TestSlot_SSZRoundTrip(t *testing.T) {
	slot := types.Slot(8594311575614880821)
	marshalled, err := slot.MarshalSSZ()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	var unmarshalled types.Slot
	if err := unmarshalled.UnmarshalSSZ(marshalled); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if slot != unmarshalled {
		t.Errorf("Unequal: %v = %v", slot, unmarshalled)
	}
}
