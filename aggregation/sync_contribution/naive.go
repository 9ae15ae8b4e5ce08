package sync_contribution

import (
	"github.com/serenitylabs/serenity/aggregation"
	"github.com/serenitylabs/serenity/consensus-types/altair"
	"github.com/serenitylabs/serenity/crypto/bls"
)

// naiveSyncContributionAggregation aggregates naively, without any complex algorithms or optimizations.
// Note: this is currently a naive implementation to the order of O(mn^2).
func naiveSyncContributionAggregation(contributions []*altair.SyncCommitteeContribution) ([]*altair.SyncCommitteeContribution, error) {
	if len(contributions) <= 1 {
		return contributions, nil
	}

	// Aggregate everything that does not overlap. O(n^2) time.
	for i, a := range contributions {
		if i >= len(contributions) {
			break
		}
		for j := i + 1; j < len(contributions); j++ {
			b := contributions[j]
			if o, err := a.AggregationBits.Overlaps(b.AggregationBits); err != nil {
				return nil, err
			} else if !o {
				var err error
				a, err = aggregate(a, b)
				if err != nil {
					return nil, err
				}
				// Delete b
				contributions = append(contributions[:j], contributions[j+1:]...)
				j--
				contributions[i] = a
			}
		}
	}

	// Remove duplicates and fully contained contributions.
	uniqContributions := make([]*altair.SyncCommitteeContribution, 0, len(contributions))
	for i := 0; i < len(contributions); i++ {
		a := contributions[i]
		contained := false
		for j := 0; j < len(uniqContributions); j++ {
			if c, err := uniqContributions[j].AggregationBits.Contains(a.AggregationBits); err != nil {
				return nil, err
			} else if c {
				contained = true
				break
			}
		}
		if !contained {
			uniqContributions = append(uniqContributions, a)
		}
	}

	return uniqContributions, nil
}

// aggregates pair of sync contributions c1 and c2 together.
func aggregate(c1, c2 *altair.SyncCommitteeContribution) (*altair.SyncCommitteeContribution, error) {
	if c1.AggregationBits.Len() != c2.AggregationBits.Len() {
		return nil, aggregation.ErrBitsDifferentLen
	}
	if o, err := c1.AggregationBits.Overlaps(c2.AggregationBits); err != nil {
		return nil, err
	} else if o {
		return nil, aggregation.ErrBitsOverlap
	}

	baseContribution := c1.Copy()
	newContribution := c2.Copy()
	if newContribution.AggregationBits.Count() > baseContribution.AggregationBits.Count() {
		baseContribution, newContribution = newContribution, baseContribution
	}

	if c, err := baseContribution.AggregationBits.Contains(newContribution.AggregationBits); err != nil {
		return nil, err
	} else if c {
		return baseContribution, nil
	}

	newBits, err := baseContribution.AggregationBits.Or(newContribution.AggregationBits)
	if err != nil {
		return nil, err
	}
	newSig, err := signatureFromBytes(newContribution.Signature)
	if err != nil {
		return nil, err
	}
	baseSig, err := signatureFromBytes(baseContribution.Signature)
	if err != nil {
		return nil, err
	}

	aggregatedSig := aggregateSignatures([]bls.Signature{baseSig, newSig})
	baseContribution.Signature = aggregatedSig.Marshal()
	baseContribution.AggregationBits = newBits

	return baseContribution, nil
}
