// Package sync_contribution provides aggregation of sync committee contributions.
package sync_contribution

import (
	"github.com/pkg/errors"

	"github.com/serenitylabs/serenity/aggregation"
	"github.com/serenitylabs/serenity/consensus-types/altair"
	"github.com/serenitylabs/serenity/crypto/bls"
)

const (
	// NaiveAggregation is an aggregation strategy without any optimizations.
	NaiveAggregation SyncContributionAggregationStrategy = "naive"
)

// SyncContributionAggregationStrategy defines sync contribution aggregation strategy.
type SyncContributionAggregationStrategy string

// BLS aggregate signature aliases for testing / benchmark substitution. These methods are
// significantly more expensive than the inner logic of Aggregate so they must be
// substituted for benchmarks which analyze Aggregate.
var aggregateSignatures = bls.AggregateSignatures
var signatureFromBytes = bls.SignatureFromBytes

// Aggregate aggregates sync contributions. The minimal number of sync contributions is returned.
// Aggregation occurs in-place i.e. contents of input array will be modified. Should you need to
// preserve input contributions, clone them before aggregating.
func Aggregate(cs []*altair.SyncCommitteeContribution, strategy SyncContributionAggregationStrategy) ([]*altair.SyncCommitteeContribution, error) {
	switch strategy {
	case "", NaiveAggregation:
		return naiveSyncContributionAggregation(cs)
	default:
		return nil, errors.Wrapf(aggregation.ErrInvalidStrategy, "%q", strategy)
	}
}
