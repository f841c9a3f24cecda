package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	v1 "github.com/altax/OzonGoal-sub001/internal/controllers/v1"
	"github.com/altax/OzonGoal-sub001/test"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordTestEarnings records earnings on a fresh shift of the user,
// split across the goals, and returns the shift.
func recordTestEarnings(t *testing.T, userID uuid.UUID, earnings string, allocations []v1.AllocationEditable) v1.ShiftResponse {
	shift := createTestShift(t, v1.ShiftEditable{UserID: userID})

	r := test.Request(t, http.MethodPost, shift.Data.Links.Earnings, v1.EarningsEditable{
		Earnings:    earnings,
		Allocations: allocations,
	})
	test.AssertHTTPStatus(t, &r, http.StatusOK)

	var response v1.ShiftResponse
	test.DecodeResponse(t, &r, &response)
	return response
}

func (suite *TestSuiteStandard) TestAllocationsOptions() {
	t := suite.T()

	r := test.Request(t, http.MethodOptions, "http://example.com/v1/allocations", "")
	test.AssertHTTPStatus(t, &r, http.StatusNoContent)
	assert.Equal(t, "GET", r.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestAllocationsGetSingle() {
	t := suite.T()

	user := createTestUser(t, v1.UserEditable{})
	goal := createTestGoal(t, v1.GoalEditable{UserID: user.Data.ID})
	shift := recordTestEarnings(t, user.Data.ID, "1000", []v1.AllocationEditable{
		{GoalID: goal.Data.ID, Amount: decimal.NewFromFloat(600)},
	})

	r := test.Request(t, http.MethodGet, shift.Data.Links.Allocations, "")
	test.AssertHTTPStatus(t, &r, http.StatusOK)

	var list v1.AllocationListResponse
	test.DecodeResponse(t, &r, &list)
	require.Len(t, list.Data, 1)

	r = test.Request(t, http.MethodGet, list.Data[0].Links.Self, "")
	test.AssertHTTPStatus(t, &r, http.StatusOK)

	var response v1.AllocationResponse
	test.DecodeResponse(t, &r, &response)
	require.NotNil(t, response.Data)
	assert.Equal(t, goal.Data.ID, response.Data.GoalID)
	assert.Equal(t, "600.00", response.Data.Amount)
}

func (suite *TestSuiteStandard) TestAllocationsGetNotFound() {
	tests := []struct {
		name   string
		id     string
		status int
	}{
		{"No allocation with this ID", uuid.New().String(), http.StatusNotFound},
		{"Not a valid UUID", "NotParseableAsUUID", http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/allocations/%s", tt.id), "")
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestAllocationsGetFilter() {
	t := suite.T()

	user := createTestUser(t, v1.UserEditable{})
	phone := createTestGoal(t, v1.GoalEditable{UserID: user.Data.ID})
	vacation := createTestGoal(t, v1.GoalEditable{UserID: user.Data.ID})

	shift := recordTestEarnings(t, user.Data.ID, "1000", []v1.AllocationEditable{
		{GoalID: phone.Data.ID, Amount: decimal.NewFromFloat(600)},
		{GoalID: vacation.Data.ID, Amount: decimal.NewFromFloat(300)},
	})

	// An allocation of another user
	other := createTestUser(t, v1.UserEditable{})
	otherGoal := createTestGoal(t, v1.GoalEditable{UserID: other.Data.ID})
	_ = recordTestEarnings(t, other.Data.ID, "500", []v1.AllocationEditable{
		{GoalID: otherGoal.Data.ID, Amount: decimal.NewFromFloat(500)},
	})

	tests := []struct {
		name  string
		query string
		len   int
	}{
		{"All", "", 3},
		{"By shift", fmt.Sprintf("shift=%s", shift.Data.ID), 2},
		{"By goal", fmt.Sprintf("goal=%s", phone.Data.ID), 1},
		{"By user", fmt.Sprintf("user=%s", user.Data.ID), 2},
		{"By user without match", fmt.Sprintf("user=%s", uuid.New()), 0},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/allocations?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.AllocationListResponse
			test.DecodeResponse(t, &r, &response)
			assert.Len(t, response.Data, tt.len)
		})
	}
}

// TestAllocationsReadOnly verifies that allocations cannot be created,
// changed or deleted directly.
func (suite *TestSuiteStandard) TestAllocationsReadOnly() {
	t := suite.T()

	user := createTestUser(t, v1.UserEditable{})
	goal := createTestGoal(t, v1.GoalEditable{UserID: user.Data.ID})
	shift := recordTestEarnings(t, user.Data.ID, "1000", []v1.AllocationEditable{
		{GoalID: goal.Data.ID, Amount: decimal.NewFromFloat(600)},
	})

	r := test.Request(t, http.MethodGet, shift.Data.Links.Allocations, "")
	test.AssertHTTPStatus(t, &r, http.StatusOK)

	var list v1.AllocationListResponse
	test.DecodeResponse(t, &r, &list)
	require.Len(t, list.Data, 1)

	r = test.Request(t, http.MethodPost, "http://example.com/v1/allocations", "")
	test.AssertHTTPStatus(t, &r, http.StatusMethodNotAllowed)

	r = test.Request(t, http.MethodPatch, list.Data[0].Links.Self, "")
	test.AssertHTTPStatus(t, &r, http.StatusMethodNotAllowed)

	r = test.Request(t, http.MethodDelete, list.Data[0].Links.Self, "")
	test.AssertHTTPStatus(t, &r, http.StatusMethodNotAllowed)
}
