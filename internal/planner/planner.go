// Package planner computes allocation proposals for recorded earnings.
//
// The planner is the preview half of the earnings flow: it proposes how an
// earned amount is distributed across the active goals, but never touches
// durable state. The authoritative state transition is models.RecordEarnings.
package planner

import (
	"errors"

	"github.com/altax/OzonGoal-sub001/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Proposal is one proposed allocation of earnings to a goal.
type Proposal struct {
	GoalID uuid.UUID
	Amount decimal.Decimal
}

var (
	ErrAmountNotPositive         = errors.New("the earned amount must be a positive number")
	ErrAllocationExceedsEarnings = errors.New("the sum of all allocations must not exceed the earned amount")
)

var oneHundred = decimal.NewFromInt(100)

// Propose computes the proposed allocations for an earned amount.
//
// Goals with an allocation percentage receive their share of the earned
// amount. When the configured percentages sum to more than 100, they are
// scaled down proportionally so that the relative weighting is kept while
// never allocating more than the earned amount. Amounts are floored to
// whole currency units so rounding can never over-allocate, and capped at
// the amount still missing to the goal's target. Goals that would receive
// nothing are omitted.
//
// Manually edited goals keep the caller-supplied amount untouched and do
// not take part in the automatic distribution. A manual amount for a
// hidden goal is dropped since recording it would be rejected anyway.
//
// Propose is pure: it has no side effects and the same inputs always
// produce the same proposals.
func Propose(earnedAmount decimal.Decimal, goals []models.Goal, manual map[uuid.UUID]decimal.Decimal) []Proposal {
	proposals := make([]Proposal, 0, len(goals))

	// Candidates are active goals with a percentage that were not
	// manually overridden
	candidates := make([]models.Goal, 0, len(goals))
	totalPercentage := decimal.Zero
	for _, goal := range goals {
		if _, ok := manual[goal.ID]; ok {
			continue
		}

		if goal.Status != models.GoalStatusActive || goal.AllocationPercentage == 0 {
			continue
		}

		candidates = append(candidates, goal)
		totalPercentage = totalPercentage.Add(decimal.NewFromInt(int64(goal.AllocationPercentage)))
	}

	// Percentages are configured independently per goal and can sum to
	// more than 100
	scaleFactor := decimal.NewFromInt(1)
	if totalPercentage.GreaterThan(oneHundred) {
		scaleFactor = oneHundred.Div(totalPercentage)
	}

	for _, goal := range goals {
		amount, ok := manual[goal.ID]
		if !ok || !amount.IsPositive() {
			continue
		}

		// The recorder rejects allocations to hidden goals, so a manual
		// amount for one is dropped from the proposal
		if goal.Status == models.GoalStatusHidden {
			continue
		}

		proposals = append(proposals, Proposal{GoalID: goal.ID, Amount: amount})
	}

	for _, goal := range candidates {
		scaled := decimal.NewFromInt(int64(goal.AllocationPercentage)).Mul(scaleFactor)
		amount := earnedAmount.Mul(scaled).Div(oneHundred).Floor()

		if remaining := goal.Remaining(); amount.GreaterThan(remaining) {
			amount = remaining
		}

		if !amount.IsPositive() {
			continue
		}

		proposals = append(proposals, Proposal{GoalID: goal.ID, Amount: amount})
	}

	return proposals
}

// Validate performs the checks that must pass before a proposal is
// submitted for recording. It mirrors what the recorder enforces so that
// the preview and the durable transaction can never diverge on them.
func Validate(earnedAmount decimal.Decimal, proposals []Proposal) error {
	if !earnedAmount.IsPositive() {
		return ErrAmountNotPositive
	}

	sum := decimal.Zero
	for _, proposal := range proposals {
		sum = sum.Add(proposal.Amount)
	}

	if sum.GreaterThan(earnedAmount) {
		return ErrAllocationExceedsEarnings
	}

	return nil
}
