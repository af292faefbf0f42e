// Package tally counts ballots and resolves acceptance against
// competing variant policies.
package tally

import "citizen_policy_platform/internal/db/models"

type Outcome int

const (
	OutcomeRejected Outcome = iota
	OutcomeAccepted
	// OutcomeAmbiguous marks an exact yes-vote tie between accepted
	// variants. The platform refuses to pick a winner; an operator has
	// to decide how the vote continues.
	OutcomeAmbiguous
)

func (o Outcome) String() string {
	switch o {
	case OutcomeAccepted:
		return "accepted"
	case OutcomeAmbiguous:
		return "ambiguous"
	default:
		return "rejected"
	}
}

type Result struct {
	Yays     int
	Nays     int
	Abstains int
}

func Count(votes []*models.Vote) Result {
	var result Result
	for _, vote := range votes {
		switch vote.Value {
		case models.VoteValueYes:
			result.Yays++
		case models.VoteValueNo:
			result.Nays++
		case models.VoteValueAbstain:
			result.Abstains++
		}
	}
	return result
}

// Resolve decides whether the policy's vote carried. A policy with
// sibling variants must strictly beat the best accepted sibling's yes
// count; an exact tie is reported as ambiguous, never resolved.
func Resolve(policy *models.Policy) Outcome {
	own := Count(policy.Votes)

	if own.Yays <= own.Nays {
		return OutcomeRejected
	}

	variants := policy.AllVariants()
	if len(variants) == 0 {
		return OutcomeAccepted
	}

	mostVotes := 0
	for _, variant := range variants {
		sibling := Count(variant.Votes)
		if sibling.Yays > sibling.Nays && sibling.Yays > mostVotes {
			mostVotes = sibling.Yays
		}
	}

	switch {
	case own.Yays > mostVotes:
		return OutcomeAccepted
	case own.Yays == mostVotes:
		return OutcomeAmbiguous
	default:
		return OutcomeRejected
	}
}
