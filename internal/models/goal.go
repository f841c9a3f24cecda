package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GoalStatus is the lifecycle state of a savings goal.
type GoalStatus string

const (
	GoalStatusActive    GoalStatus = "active"
	GoalStatusCompleted GoalStatus = "completed"
	GoalStatusHidden    GoalStatus = "hidden"
)

// Goal is a savings target. CurrentAmount is increased by the earnings
// recorder and by manual edits; once it crosses TargetAmount, the goal
// transitions to completed and CompletedAt is stamped.
type Goal struct {
	DefaultModel
	Name                 string `gorm:"uniqueIndex:goal_name_user"`
	Note                 string
	User                 User      `json:"-"`
	UserID               uuid.UUID `gorm:"uniqueIndex:goal_name_user"`
	TargetAmount         decimal.Decimal `gorm:"type:DECIMAL(20,2)"`
	CurrentAmount        decimal.Decimal `gorm:"type:DECIMAL(20,2)"`
	Status               GoalStatus      `gorm:"default:active"`
	AllocationPercentage uint            // Share of future earnings auto-routed to this goal, 0-100
	IsPrimary            bool
	Deadline             *time.Time
	Icon                 string
	OrderIndex           uint
	CompletedAt          *time.Time
}

var (
	ErrGoalNameNotUnique       = errors.New("the goal name must be unique for the user")
	ErrGoalTargetNotPositive   = errors.New("goal target amounts must be larger than zero")
	ErrGoalAmountNegative      = errors.New("the accumulated goal amount must not be negative")
	ErrGoalPercentageTooLarge  = errors.New("the allocation percentage cannot exceed 100")
	ErrGoalStatusInvalid       = errors.New("the goal status must be one of active, completed, hidden")
	ErrGoalDeadlineInPast      = errors.New("the goal deadline must be in the future")
)

func (g *Goal) BeforeCreate(tx *gorm.DB) error {
	_ = g.DefaultModel.BeforeCreate(tx)

	if g.Deadline != nil && g.Deadline.Before(time.Now()) {
		return ErrGoalDeadlineInPast
	}

	toSave := tx.Statement.Dest.(*Goal)
	return g.checkIntegrity(tx, *toSave)
}

func (g *Goal) BeforeUpdate(tx *gorm.DB) (err error) {
	toSave := tx.Statement.Dest.(Goal)

	if tx.Statement.Changed("UserID") {
		err := g.checkIntegrity(tx, toSave)
		if err != nil {
			return err
		}
	}

	return nil
}

// checkIntegrity verifies that the user the goal is created for exists
func (g *Goal) checkIntegrity(tx *gorm.DB, toSave Goal) error {
	return tx.First(&User{}, toSave.UserID).Error
}

func (g *Goal) BeforeSave(_ *gorm.DB) error {
	g.Name = strings.TrimSpace(g.Name)
	g.Note = strings.TrimSpace(g.Note)
	g.Icon = strings.TrimSpace(g.Icon)

	if g.Status == "" {
		g.Status = GoalStatusActive
	}

	return nil
}

func (g *Goal) AfterSave(_ *gorm.DB) error {
	if !g.TargetAmount.IsPositive() {
		return ErrGoalTargetNotPositive
	}

	if g.CurrentAmount.IsNegative() {
		return ErrGoalAmountNegative
	}

	if g.AllocationPercentage > 100 {
		return ErrGoalPercentageTooLarge
	}

	switch g.Status {
	case GoalStatusActive, GoalStatusCompleted, GoalStatusHidden:
	default:
		return ErrGoalStatusInvalid
	}

	return nil
}

// Remaining returns the amount still missing to reach the target.
// It is never negative.
func (g Goal) Remaining() decimal.Decimal {
	remaining := g.TargetAmount.Sub(g.CurrentAmount)
	if remaining.IsNegative() {
		return decimal.Zero
	}

	return remaining
}
