package models_test

import (
	"strings"
	"testing"
	"time"

	"github.com/altax/OzonGoal-sub001/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func (suite *TestSuiteStandard) TestGoalTrimWhitespace() {
	user := suite.createTestUser(models.User{})

	name := "  Новый телефон  \t"
	note := " Whitespace    "
	icon := " phone "

	goal := suite.createTestGoal(models.Goal{
		UserID: user.ID,
		Name:   name,
		Note:   note,
		Icon:   icon,
	})

	assert.Equal(suite.T(), strings.TrimSpace(name), goal.Name)
	assert.Equal(suite.T(), strings.TrimSpace(note), goal.Note)
	assert.Equal(suite.T(), strings.TrimSpace(icon), goal.Icon)
}

func (suite *TestSuiteStandard) TestGoalDefaultStatus() {
	user := suite.createTestUser(models.User{})

	goal := suite.createTestGoal(models.Goal{UserID: user.ID})
	assert.Equal(suite.T(), models.GoalStatusActive, goal.Status)
}

func (suite *TestSuiteStandard) TestGoalAfterSave() {
	tests := []struct {
		name string
		goal models.Goal
		err  error
	}{
		{
			"target must be positive",
			models.Goal{TargetAmount: decimal.Zero, Status: models.GoalStatusActive},
			models.ErrGoalTargetNotPositive,
		},
		{
			"amount must not be negative",
			models.Goal{TargetAmount: decimal.NewFromFloat(100), CurrentAmount: decimal.NewFromFloat(-1), Status: models.GoalStatusActive},
			models.ErrGoalAmountNegative,
		},
		{
			"percentage is capped",
			models.Goal{TargetAmount: decimal.NewFromFloat(100), AllocationPercentage: 101, Status: models.GoalStatusActive},
			models.ErrGoalPercentageTooLarge,
		},
		{
			"status must be known",
			models.Goal{TargetAmount: decimal.NewFromFloat(100), Status: "paused"},
			models.ErrGoalStatusInvalid,
		},
		{
			"valid goal",
			models.Goal{TargetAmount: decimal.NewFromFloat(100), AllocationPercentage: 100, Status: models.GoalStatusActive},
			nil,
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			err := tt.goal.AfterSave(&gorm.DB{})
			assert.Equal(t, tt.err, err)
		})
	}
}

func (suite *TestSuiteStandard) TestGoalNameUniquePerUser() {
	user := suite.createTestUser(models.User{})
	otherUser := suite.createTestUser(models.User{})

	_ = suite.createTestGoal(models.Goal{UserID: user.ID, Name: "Отпуск"})

	duplicate := models.Goal{
		UserID:       user.ID,
		Name:         "Отпуск",
		TargetAmount: decimal.NewFromFloat(500),
	}
	err := models.DB.Create(&duplicate).Error
	assert.ErrorIs(suite.T(), err, models.ErrGoalNameNotUnique)

	// The same name is fine for another user
	_ = suite.createTestGoal(models.Goal{UserID: otherUser.ID, Name: "Отпуск"})
}

func (suite *TestSuiteStandard) TestGoalDeadline() {
	user := suite.createTestUser(models.User{})

	past := time.Now().Add(-24 * time.Hour)
	goal := models.Goal{
		UserID:       user.ID,
		Name:         "Too late",
		TargetAmount: decimal.NewFromFloat(100),
		Deadline:     &past,
	}
	err := models.DB.Create(&goal).Error
	assert.ErrorIs(suite.T(), err, models.ErrGoalDeadlineInPast)

	future := time.Now().Add(24 * time.Hour)
	_ = suite.createTestGoal(models.Goal{UserID: user.ID, Deadline: &future})
}

func (suite *TestSuiteStandard) TestGoalUpdateUser() {
	user := suite.createTestUser(models.User{})

	goal := suite.createTestGoal(models.Goal{UserID: user.ID})

	tests := []struct {
		name   string
		userID uuid.UUID
		err    error
	}{
		{
			"Valid user ID",
			suite.createTestUser(models.User{}).ID,
			nil,
		},
		{
			"Invalid user ID",
			uuid.New(),
			models.ErrResourceNotFound,
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			update := models.Goal{
				UserID: tt.userID,
			}
			err := models.DB.Model(&goal).Updates(update).Error
			assert.ErrorIs(t, err, tt.err, "Error is: %s", err)
		})
	}
}

func (suite *TestSuiteStandard) TestGoalRemaining() {
	tests := []struct {
		target    float64
		current   float64
		remaining float64
	}{
		{10000, 0, 10000},
		{10000, 2500.50, 7499.50},
		{10000, 10000, 0},
		{10000, 12000, 0},
	}

	for _, tt := range tests {
		g := models.Goal{
			TargetAmount:  decimal.NewFromFloat(tt.target),
			CurrentAmount: decimal.NewFromFloat(tt.current),
		}

		assert.True(suite.T(), g.Remaining().Equal(decimal.NewFromFloat(tt.remaining)), "remaining is %s", g.Remaining())
	}
}

func (suite *TestSuiteStandard) TestGoalCreateWithoutUser() {
	goal := models.Goal{
		Name:         "No user",
		UserID:       uuid.New(),
		TargetAmount: decimal.NewFromFloat(100),
	}

	err := models.DB.Create(&goal).Error
	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)
}
