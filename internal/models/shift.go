package models

import (
	"errors"
	"strings"
	"time"

	"github.com/altax/OzonGoal-sub001/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ShiftType distinguishes day and night shifts. Together with the
// scheduled date it forms the scheduling conflict rule: a user can have
// at most one non-canceled shift per calendar day and shift type.
type ShiftType string

const (
	ShiftTypeDay   ShiftType = "day"
	ShiftTypeNight ShiftType = "night"
)

// ShiftStatus is the lifecycle state of a shift.
type ShiftStatus string

const (
	ShiftStatusScheduled  ShiftStatus = "scheduled"
	ShiftStatusInProgress ShiftStatus = "in_progress"
	ShiftStatusCompleted  ShiftStatus = "completed"
	ShiftStatusCanceled   ShiftStatus = "canceled"
	ShiftStatusNoShow     ShiftStatus = "no_show"
)

// Shift is a scheduled block of work. Earnings is set exactly once,
// by RecordEarnings, which also completes the shift.
type Shift struct {
	DefaultModel
	User               User      `json:"-"`
	UserID             uuid.UUID `gorm:"index"`
	OperationType      string
	ShiftType          ShiftType
	ScheduledDate      types.Day
	ScheduledStart     time.Time `gorm:"check:shift_end_after_start,scheduled_start < scheduled_end"`
	ScheduledEnd       time.Time
	Status             ShiftStatus         `gorm:"default:scheduled"`
	Earnings           decimal.NullDecimal `gorm:"type:DECIMAL(20,2)"`
	EarningsRecordedAt *time.Time
}

var (
	ErrShiftTypeInvalid   = errors.New("the shift type must be one of day, night")
	ErrShiftStatusInvalid = errors.New("the shift status must be one of scheduled, in_progress, completed, canceled, no_show")
	ErrShiftTimesInvalid  = errors.New("the shift must end after it starts")
	ErrShiftConflict      = errors.New("there already is a shift for this user, day and shift type")
)

func (s *Shift) BeforeCreate(tx *gorm.DB) error {
	_ = s.DefaultModel.BeforeCreate(tx)

	toSave := tx.Statement.Dest.(*Shift)
	err := tx.First(&User{}, toSave.UserID).Error
	if err != nil {
		return err
	}

	return s.checkConflict(tx, *toSave, uuid.Nil)
}

func (s *Shift) BeforeUpdate(tx *gorm.DB) error {
	// The earnings recorder updates shifts with a column map, the API
	// with a Shift struct. The conflict check only applies to the latter
	// since recording earnings never moves a shift to another day.
	toSave, ok := tx.Statement.Dest.(Shift)
	if !ok {
		return nil
	}

	if tx.Statement.Changed("UserID") {
		err := tx.First(&User{}, toSave.UserID).Error
		if err != nil {
			return err
		}
	}

	if tx.Statement.Changed("UserID", "ScheduledDate", "ShiftType", "Status") {
		// Fill fields that are not part of the update from the current state
		if toSave.UserID == uuid.Nil {
			toSave.UserID = s.UserID
		}
		if toSave.ScheduledDate.IsZero() {
			toSave.ScheduledDate = s.ScheduledDate
		}
		if toSave.ShiftType == "" {
			toSave.ShiftType = s.ShiftType
		}
		if toSave.Status == "" {
			toSave.Status = s.Status
		}

		return s.checkConflict(tx, toSave, s.ID)
	}

	return nil
}

// checkConflict enforces that at most one non-canceled shift exists per
// user, calendar day and shift type.
func (s *Shift) checkConflict(tx *gorm.DB, toSave Shift, selfID uuid.UUID) error {
	if toSave.Status == ShiftStatusCanceled {
		return nil
	}

	var count int64
	q := tx.Model(&Shift{}).
		Where("user_id = ?", toSave.UserID).
		Where("scheduled_date = ?", toSave.ScheduledDate).
		Where("shift_type = ?", toSave.ShiftType).
		Where("status != ?", ShiftStatusCanceled)

	if selfID != uuid.Nil {
		q = q.Where("id != ?", selfID)
	}

	err := q.Count(&count).Error
	if err != nil {
		return err
	}

	if count > 0 {
		return ErrShiftConflict
	}

	return nil
}

func (s *Shift) BeforeSave(_ *gorm.DB) error {
	s.OperationType = strings.TrimSpace(s.OperationType)

	if s.Status == "" {
		s.Status = ShiftStatusScheduled
	}

	// Enforce dates to be in UTC
	if !s.ScheduledStart.IsZero() {
		s.ScheduledStart = s.ScheduledStart.In(time.UTC)
	}
	if !s.ScheduledEnd.IsZero() {
		s.ScheduledEnd = s.ScheduledEnd.In(time.UTC)
	}

	// Default the scheduled date to the day the shift starts
	if s.ScheduledDate.IsZero() && !s.ScheduledStart.IsZero() {
		s.ScheduledDate = types.DayOf(s.ScheduledStart)
	}

	return nil
}

func (s *Shift) AfterSave(_ *gorm.DB) error {
	switch s.ShiftType {
	case ShiftTypeDay, ShiftTypeNight:
	default:
		return ErrShiftTypeInvalid
	}

	switch s.Status {
	case ShiftStatusScheduled, ShiftStatusInProgress, ShiftStatusCompleted, ShiftStatusCanceled, ShiftStatusNoShow:
	default:
		return ErrShiftStatusInvalid
	}

	return nil
}

// AfterDelete removes the allocations of the shift. Deletes are soft
// deletes, so the database-level cascade never fires and the ledger
// entries have to be deleted here to vanish together with their shift.
func (s *Shift) AfterDelete(tx *gorm.DB) error {
	return tx.Where("shift_id = ?", s.ID).Delete(&GoalAllocation{}).Error
}

// AfterFind updates the timestamps to use UTC as timezone, see
// DefaultModel.AfterFind.
func (s *Shift) AfterFind(tx *gorm.DB) (err error) {
	err = s.DefaultModel.AfterFind(tx)
	if err != nil {
		return err
	}

	s.ScheduledStart = s.ScheduledStart.In(time.UTC)
	s.ScheduledEnd = s.ScheduledEnd.In(time.UTC)

	if s.EarningsRecordedAt != nil {
		t := s.EarningsRecordedAt.In(time.UTC)
		s.EarningsRecordedAt = &t
	}

	return nil
}
