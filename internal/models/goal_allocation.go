package models

import (
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GoalAllocation is an immutable ledger entry routing a part of a
// shift's earnings to a goal. Rows are only ever created by
// RecordEarnings and deleted together with their shift.
type GoalAllocation struct {
	DefaultModel
	Shift   Shift     `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	ShiftID uuid.UUID `gorm:"index"`
	Goal    Goal      `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	GoalID  uuid.UUID `gorm:"index"`
	Amount  decimal.Decimal `gorm:"type:DECIMAL(20,2)"`
}

var (
	ErrAllocationImmutable         = errors.New("allocations cannot be changed after they are recorded")
	ErrAllocationAmountNotPositive = errors.New("allocation amounts must be larger than zero")
)

func (a *GoalAllocation) BeforeCreate(tx *gorm.DB) error {
	_ = a.DefaultModel.BeforeCreate(tx)

	if !a.Amount.IsPositive() {
		return ErrAllocationAmountNotPositive
	}

	return nil
}

func (a *GoalAllocation) BeforeUpdate(_ *gorm.DB) error {
	return ErrAllocationImmutable
}
