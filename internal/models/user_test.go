package models_test

import (
	"strings"

	"github.com/altax/OzonGoal-sub001/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func (suite *TestSuiteStandard) TestUserTrimWhitespace() {
	name := "  Алексей \t"
	note := " Whitespace    "

	user := suite.createTestUser(models.User{
		Name: name,
		Note: note,
	})

	assert.Equal(suite.T(), strings.TrimSpace(name), user.Name)
	assert.Equal(suite.T(), strings.TrimSpace(note), user.Note)
}

func (suite *TestSuiteStandard) TestUserAfterSave() {
	tests := []struct {
		balance decimal.Decimal
		err     error
	}{
		{decimal.NewFromFloat(-10), models.ErrUserBalanceNegative},
		{decimal.NewFromFloat(0), nil},
		{decimal.NewFromFloat(750.50), nil},
	}

	for _, tt := range tests {
		u := models.User{
			Balance: tt.balance,
		}

		err := u.AfterSave(&gorm.DB{})
		assert.Equal(suite.T(), tt.err, err)
	}
}

func (suite *TestSuiteStandard) TestUserBalanceUpdate() {
	user := suite.createTestUser(models.User{})

	err := models.DB.Model(&user).Update("Balance", decimal.NewFromFloat(120.50)).Error
	assert.Nil(suite.T(), err)

	err = models.DB.First(&user, user.ID).Error
	assert.Nil(suite.T(), err)
	assert.True(suite.T(), user.Balance.Equal(decimal.NewFromFloat(120.50)), "balance is %s", user.Balance)

	err = models.DB.Model(&user).Update("Balance", decimal.NewFromFloat(-1)).Error
	assert.ErrorIs(suite.T(), err, models.ErrUserBalanceNegative)
}
