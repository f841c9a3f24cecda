package models

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// User is the owner of goals and shifts. The balance accumulates
// the unallocated remainder of recorded earnings.
type User struct {
	DefaultModel
	Name    string
	Note    string
	Balance decimal.Decimal `gorm:"type:DECIMAL(20,2)"`
}

var ErrUserBalanceNegative = errors.New("the user balance must not be negative")

func (u *User) BeforeSave(_ *gorm.DB) error {
	u.Name = strings.TrimSpace(u.Name)
	u.Note = strings.TrimSpace(u.Note)

	return nil
}

func (u *User) AfterSave(_ *gorm.DB) error {
	if u.Balance.IsNegative() {
		return ErrUserBalanceNegative
	}

	return nil
}
