package altair

import (
	"encoding/json"
	"strconv"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/pkg/errors"
	"github.com/prysmaticlabs/go-bitfield"
	fieldparams "github.com/serenitylabs/serenity/config/fieldparams"
	types "github.com/serenitylabs/serenity/consensus-types/primitives"
)

// JSON representations follow the beacon API conventions: uint64 fields are
// quoted decimal strings so consumers that read JSON numbers as 64-bit floats
// do not lose precision, and byte content is 0x-prefixed lowercase hex.

type syncCommitteeMessageJSON struct {
	Slot           string        `json:"slot"`
	BlockRoot      hexutil.Bytes `json:"beacon_block_root"`
	ValidatorIndex string        `json:"validator_index"`
	Signature      hexutil.Bytes `json:"signature"`
}

type syncCommitteeContributionJSON struct {
	Slot              string        `json:"slot"`
	BeaconBlockRoot   hexutil.Bytes `json:"beacon_block_root"`
	SubcommitteeIndex string        `json:"subcommittee_index"`
	AggregationBits   hexutil.Bytes `json:"aggregation_bits"`
	Signature         hexutil.Bytes `json:"signature"`
}

type syncContributionDataJSON struct {
	Slot              string        `json:"slot"`
	BeaconBlockRoot   hexutil.Bytes `json:"beacon_block_root"`
	SubcommitteeIndex string        `json:"subcommittee_index"`
}

// MarshalJSON --
func (s *SyncCommitteeMessage) MarshalJSON() ([]byte, error) {
	return json.Marshal(syncCommitteeMessageJSON{
		Slot:           strconv.FormatUint(uint64(s.Slot), 10),
		BlockRoot:      s.BlockRoot,
		ValidatorIndex: strconv.FormatUint(uint64(s.ValidatorIndex), 10),
		Signature:      s.Signature,
	})
}

// UnmarshalJSON --
func (s *SyncCommitteeMessage) UnmarshalJSON(enc []byte) error {
	dec := syncCommitteeMessageJSON{}
	if err := json.Unmarshal(enc, &dec); err != nil {
		return err
	}
	slot, err := strconv.ParseUint(dec.Slot, 10, 64)
	if err != nil {
		return errors.Wrap(err, "invalid slot")
	}
	validatorIndex, err := strconv.ParseUint(dec.ValidatorIndex, 10, 64)
	if err != nil {
		return errors.Wrap(err, "invalid validator index")
	}
	if len(dec.BlockRoot) != fieldparams.RootLength {
		return errors.Errorf("beacon block root must be %d bytes", fieldparams.RootLength)
	}
	if len(dec.Signature) != fieldparams.BLSSignatureLength {
		return errors.Errorf("signature must be %d bytes", fieldparams.BLSSignatureLength)
	}
	s.Slot = types.Slot(slot)
	s.BlockRoot = dec.BlockRoot
	s.ValidatorIndex = types.ValidatorIndex(validatorIndex)
	s.Signature = dec.Signature
	return nil
}

// MarshalJSON --
func (s *SyncCommitteeContribution) MarshalJSON() ([]byte, error) {
	return json.Marshal(syncCommitteeContributionJSON{
		Slot:              strconv.FormatUint(uint64(s.Slot), 10),
		BeaconBlockRoot:   s.BeaconBlockRoot,
		SubcommitteeIndex: strconv.FormatUint(s.SubcommitteeIndex, 10),
		AggregationBits:   []byte(s.AggregationBits),
		Signature:         s.Signature,
	})
}

// UnmarshalJSON --
func (s *SyncCommitteeContribution) UnmarshalJSON(enc []byte) error {
	dec := syncCommitteeContributionJSON{}
	if err := json.Unmarshal(enc, &dec); err != nil {
		return err
	}
	slot, err := strconv.ParseUint(dec.Slot, 10, 64)
	if err != nil {
		return errors.Wrap(err, "invalid slot")
	}
	subcommitteeIndex, err := strconv.ParseUint(dec.SubcommitteeIndex, 10, 64)
	if err != nil {
		return errors.Wrap(err, "invalid subcommittee index")
	}
	if len(dec.BeaconBlockRoot) != fieldparams.RootLength {
		return errors.Errorf("beacon block root must be %d bytes", fieldparams.RootLength)
	}
	if len(dec.AggregationBits) != fieldparams.SyncCommitteeAggregationBytesLength {
		return errors.Errorf("aggregation bits must be %d bytes", fieldparams.SyncCommitteeAggregationBytesLength)
	}
	if len(dec.Signature) != fieldparams.BLSSignatureLength {
		return errors.Errorf("signature must be %d bytes", fieldparams.BLSSignatureLength)
	}
	s.Slot = types.Slot(slot)
	s.BeaconBlockRoot = dec.BeaconBlockRoot
	s.SubcommitteeIndex = subcommitteeIndex
	s.AggregationBits = bitfield.Bitvector128(dec.AggregationBits)
	s.Signature = dec.Signature
	return nil
}

// MarshalJSON --
func (s *SyncContributionData) MarshalJSON() ([]byte, error) {
	return json.Marshal(syncContributionDataJSON{
		Slot:              strconv.FormatUint(uint64(s.Slot), 10),
		BeaconBlockRoot:   s.BeaconBlockRoot,
		SubcommitteeIndex: strconv.FormatUint(s.SubcommitteeIndex, 10),
	})
}

// UnmarshalJSON --
func (s *SyncContributionData) UnmarshalJSON(enc []byte) error {
	dec := syncContributionDataJSON{}
	if err := json.Unmarshal(enc, &dec); err != nil {
		return err
	}
	slot, err := strconv.ParseUint(dec.Slot, 10, 64)
	if err != nil {
		return errors.Wrap(err, "invalid slot")
	}
	subcommitteeIndex, err := strconv.ParseUint(dec.SubcommitteeIndex, 10, 64)
	if err != nil {
		return errors.Wrap(err, "invalid subcommittee index")
	}
	if len(dec.BeaconBlockRoot) != fieldparams.RootLength {
		return errors.Errorf("beacon block root must be %d bytes", fieldparams.RootLength)
	}
	s.Slot = types.Slot(slot)
	s.BeaconBlockRoot = dec.BeaconBlockRoot
	s.SubcommitteeIndex = subcommitteeIndex
	return nil
}
