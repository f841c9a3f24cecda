package models

import (
	"errors"
	"fmt"
	"time"

	"github.com/altax/OzonGoal-sub001/internal/money"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"gorm.io/gorm"
)

// AllocationInput is one requested allocation of earnings to a goal.
type AllocationInput struct {
	GoalID uuid.UUID
	Amount decimal.Decimal
}

var (
	ErrEarningsAlreadyRecorded   = errors.New("earnings have already been recorded for this shift")
	ErrEarningsNotPositive       = errors.New("the earnings must be larger than zero")
	ErrShiftNotRecordable        = errors.New("earnings cannot be recorded for a canceled or no-show shift")
	ErrAllocationExceedsEarnings = errors.New("the sum of all allocations must not exceed the earnings")
	ErrAllocationGoalInvalid     = errors.New("allocations must reference an existing, visible goal of the shift owner")
)

// RecordEarnings durably records the earnings for a shift and distributes
// them across the referenced goals, depositing the unallocated remainder
// into the owner's balance.
//
// All effects happen in a single database transaction: either the shift is
// completed, all allocation rows exist, all goal balances are incremented
// and the remainder is deposited, or nothing happened at all. Allocations
// to the same goal are summed before the completion check, so a goal never
// has an observable state where only part of a shift's allocations has
// been applied.
//
// Recording is at-most-once per shift: the earnings field is write-once
// and a second call fails with ErrEarningsAlreadyRecorded.
func RecordEarnings(shiftID uuid.UUID, totalEarnings decimal.Decimal, allocations []AllocationInput) (Shift, error) {
	var shift Shift

	err := DB.Transaction(func(tx *gorm.DB) error {
		err := tx.First(&shift, shiftID).Error
		if err != nil {
			return err
		}

		if shift.Earnings.Valid {
			return ErrEarningsAlreadyRecorded
		}

		if shift.Status == ShiftStatusCanceled || shift.Status == ShiftStatusNoShow {
			return ErrShiftNotRecordable
		}

		if !totalEarnings.IsPositive() {
			return ErrEarningsNotPositive
		}

		sum := decimal.Zero
		for _, allocation := range allocations {
			if !allocation.Amount.IsPositive() {
				return ErrAllocationAmountNotPositive
			}

			sum = sum.Add(allocation.Amount)
		}

		if sum.GreaterThan(totalEarnings) {
			// Earnings are user input, so the error carries the amounts in
			// the format the user entered them in
			return fmt.Errorf("%w: %s exceeds %s", ErrAllocationExceedsEarnings,
				money.Format(sum, language.Russian), money.Format(totalEarnings, language.Russian))
		}

		// Sum the amounts per goal so that a goal receiving multiple
		// allocations from the same shift is incremented and checked for
		// completion exactly once
		perGoal := make(map[uuid.UUID]decimal.Decimal, len(allocations))
		goalOrder := make([]uuid.UUID, 0, len(allocations))
		for _, allocation := range allocations {
			if _, ok := perGoal[allocation.GoalID]; !ok {
				goalOrder = append(goalOrder, allocation.GoalID)
			}
			perGoal[allocation.GoalID] = perGoal[allocation.GoalID].Add(allocation.Amount)
		}

		now := time.Now().In(time.UTC)

		for _, goalID := range goalOrder {
			var goal Goal
			err := tx.First(&goal, goalID).Error
			if errors.Is(err, ErrResourceNotFound) {
				return fmt.Errorf("%w: no goal with ID %s", ErrAllocationGoalInvalid, goalID)
			}
			if err != nil {
				return err
			}

			if goal.UserID != shift.UserID {
				return fmt.Errorf("%w: goal %s belongs to another user", ErrAllocationGoalInvalid, goalID)
			}

			if goal.Status == GoalStatusHidden {
				return fmt.Errorf("%w: goal %s is hidden", ErrAllocationGoalInvalid, goalID)
			}

			update := Goal{
				CurrentAmount: goal.CurrentAmount.Add(perGoal[goalID]),
			}
			columns := []string{"CurrentAmount"}

			// Completion does not re-trigger: CompletedAt is only stamped
			// when the target is newly reached
			if goal.Status != GoalStatusCompleted && update.CurrentAmount.GreaterThanOrEqual(goal.TargetAmount) {
				update.Status = GoalStatusCompleted
				update.CompletedAt = &now
				columns = append(columns, "Status", "CompletedAt")
			}

			err = tx.Model(&goal).Select(columns).Updates(update).Error
			if err != nil {
				return err
			}
		}

		// The ledger keeps the individual allocations, not the per-goal sums
		for _, allocation := range allocations {
			err := tx.Create(&GoalAllocation{
				ShiftID: shift.ID,
				GoalID:  allocation.GoalID,
				Amount:  allocation.Amount,
			}).Error
			if err != nil {
				return err
			}
		}

		remainder := totalEarnings.Sub(sum)
		if remainder.IsPositive() {
			var user User
			err := tx.First(&user, shift.UserID).Error
			if err != nil {
				return err
			}

			err = tx.Model(&user).Update("Balance", user.Balance.Add(remainder)).Error
			if err != nil {
				return err
			}
		}

		err = tx.Model(&shift).Updates(map[string]any{
			"status":               ShiftStatusCompleted,
			"earnings":             decimal.NullDecimal{Decimal: totalEarnings, Valid: true},
			"earnings_recorded_at": now,
		}).Error
		if err != nil {
			return err
		}

		// Return the shift as it is now stored
		return tx.First(&shift, shiftID).Error
	})
	if err != nil {
		return Shift{}, err
	}

	return shift, nil
}
