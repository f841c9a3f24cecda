package v1_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	v1 "github.com/altax/OzonGoal-sub001/internal/controllers/v1"
	"github.com/altax/OzonGoal-sub001/internal/models"
	"github.com/altax/OzonGoal-sub001/test"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestShiftsOptions verifies that OPTIONS requests are handled correctly.
func (suite *TestSuiteStandard) TestShiftsOptions() {
	tests := []struct {
		name   string
		id     string // path at the shifts endpoint to test
		status int    // Expected HTTP status code
	}{
		{"No shift with this ID", uuid.New().String(), http.StatusNotFound},
		{"Not a valid UUID", "NotParseableAsUUID", http.StatusBadRequest},
		{"Shift exists", createTestShift(suite.T(), v1.ShiftEditable{}).Data.ID.String(), http.StatusNoContent},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			path := fmt.Sprintf("%s/%s", "http://example.com/v1/shifts", tt.id)
			r := test.Request(t, http.MethodOptions, path, "")
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.status == http.StatusNoContent {
				assert.Equal(t, "GET, PATCH, DELETE", r.Header().Get("allow"))
			}
		})
	}
}

func (suite *TestSuiteStandard) TestShiftsCreate() {
	t := suite.T()

	user := createTestUser(t, v1.UserEditable{})

	r := test.Request(t, http.MethodPost, "http://example.com/v1/shifts", []v1.ShiftEditable{
		{
			UserID:         user.Data.ID,
			OperationType:  "Приёмка",
			ShiftType:      models.ShiftTypeDay,
			ScheduledStart: time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC),
			ScheduledEnd:   time.Date(2026, 9, 1, 20, 0, 0, 0, time.UTC),
		},
	})
	test.AssertHTTPStatus(t, &r, http.StatusCreated)

	var response v1.ShiftCreateResponse
	test.DecodeResponse(t, &r, &response)

	require.Len(t, response.Data, 1)
	data := response.Data[0].Data
	require.NotNil(t, data)
	assert.Equal(t, models.ShiftStatusScheduled, data.Status)
	assert.Equal(t, "2026-09-01", data.ScheduledDate.String())
	assert.Nil(t, data.Earnings)
}

func (suite *TestSuiteStandard) TestShiftsCreateConflict() {
	t := suite.T()

	shift := createTestShift(t, v1.ShiftEditable{})

	// Same user, day and shift type
	_ = createTestShift(t, v1.ShiftEditable{
		UserID:         shift.Data.UserID,
		ShiftType:      shift.Data.ShiftType,
		ScheduledStart: shift.Data.ScheduledStart,
	}, http.StatusBadRequest)

	// The night shift on the same day is fine
	_ = createTestShift(t, v1.ShiftEditable{
		UserID:         shift.Data.UserID,
		ShiftType:      models.ShiftTypeNight,
		ScheduledStart: shift.Data.ScheduledStart,
	})
}

func (suite *TestSuiteStandard) TestShiftsCreateInvalidTimes() {
	t := suite.T()

	user := createTestUser(t, v1.UserEditable{})

	_ = createTestShift(t, v1.ShiftEditable{
		UserID:         user.Data.ID,
		ScheduledStart: time.Date(2026, 9, 1, 20, 0, 0, 0, time.UTC),
		ScheduledEnd:   time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC),
	}, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestShiftsGetFilter() {
	t := suite.T()

	user := createTestUser(t, v1.UserEditable{})

	_ = createTestShift(t, v1.ShiftEditable{UserID: user.Data.ID, OperationType: "Приёмка", ScheduledStart: time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)})
	_ = createTestShift(t, v1.ShiftEditable{UserID: user.Data.ID, OperationType: "Сортировка", ScheduledStart: time.Date(2026, 9, 2, 8, 0, 0, 0, time.UTC)})
	_ = createTestShift(t, v1.ShiftEditable{UserID: user.Data.ID, OperationType: "Приёмка крупногабарит", ScheduledStart: time.Date(2026, 9, 3, 8, 0, 0, 0, time.UTC), ShiftType: models.ShiftTypeNight})
	_ = createTestShift(t, v1.ShiftEditable{OperationType: "Приёмка"})

	tests := []struct {
		name  string
		query string
		len   int
	}{
		{"By user", fmt.Sprintf("user=%s", user.Data.ID), 3},
		{"By shift type", fmt.Sprintf("user=%s&shiftType=night", user.Data.ID), 1},
		{"Operation type exact", "operationType=Приёмка", 2},
		{"Operation type glob", "operationType=При*", 3},
		{"Date", fmt.Sprintf("user=%s&date=2026-09-02", user.Data.ID), 1},
		{"From date", fmt.Sprintf("user=%s&fromDate=2026-09-02", user.Data.ID), 2},
		{"Until date", fmt.Sprintf("user=%s&untilDate=2026-09-02", user.Data.ID), 2},
		{"Date range", fmt.Sprintf("user=%s&fromDate=2026-09-02&untilDate=2026-09-02", user.Data.ID), 1},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/shifts?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.ShiftListResponse
			test.DecodeResponse(t, &r, &response)
			assert.Len(t, response.Data, tt.len)
		})
	}
}

func (suite *TestSuiteStandard) TestShiftsUpdate() {
	t := suite.T()

	shift := createTestShift(t, v1.ShiftEditable{})

	r := test.Request(t, http.MethodPatch, shift.Data.Links.Self, map[string]any{
		"status": "in_progress",
	})
	test.AssertHTTPStatus(t, &r, http.StatusOK)

	var response v1.ShiftResponse
	test.DecodeResponse(t, &r, &response)
	assert.Equal(t, models.ShiftStatusInProgress, response.Data.Status)
}

func (suite *TestSuiteStandard) TestShiftsRecordEarnings() {
	t := suite.T()

	user := createTestUser(t, v1.UserEditable{})
	phone := createTestGoal(t, v1.GoalEditable{UserID: user.Data.ID, TargetAmount: decimal.NewFromFloat(10000)})
	vacation := createTestGoal(t, v1.GoalEditable{UserID: user.Data.ID, TargetAmount: decimal.NewFromFloat(50000)})
	shift := createTestShift(t, v1.ShiftEditable{UserID: user.Data.ID})

	r := test.Request(t, http.MethodPost, shift.Data.Links.Earnings, v1.EarningsEditable{
		// Free-text amount like a user would type it
		Earnings: "1 000,00 ₽",
		Allocations: []v1.AllocationEditable{
			{GoalID: phone.Data.ID, Amount: decimal.NewFromFloat(600)},
			{GoalID: vacation.Data.ID, Amount: decimal.NewFromFloat(300)},
		},
	})
	test.AssertHTTPStatus(t, &r, http.StatusOK)

	var response v1.ShiftResponse
	test.DecodeResponse(t, &r, &response)
	assert.Equal(t, models.ShiftStatusCompleted, response.Data.Status)
	require.NotNil(t, response.Data.Earnings)
	assert.Equal(t, "1000.00", *response.Data.Earnings)
	assert.NotNil(t, response.Data.EarningsRecordedAt)

	// The goals are incremented
	r = test.Request(t, http.MethodGet, phone.Data.Links.Self, "")
	test.AssertHTTPStatus(t, &r, http.StatusOK)
	var goalResponse v1.GoalResponse
	test.DecodeResponse(t, &r, &goalResponse)
	assert.Equal(t, "600.00", goalResponse.Data.CurrentAmount)

	// The remainder is deposited into the user's balance
	r = test.Request(t, http.MethodGet, user.Data.Links.Self, "")
	test.AssertHTTPStatus(t, &r, http.StatusOK)
	var userResponse v1.UserResponse
	test.DecodeResponse(t, &r, &userResponse)
	assert.Equal(t, "100.00", userResponse.Data.Balance)
}

func (suite *TestSuiteStandard) TestShiftsRecordEarningsOnce() {
	t := suite.T()

	shift := createTestShift(t, v1.ShiftEditable{})

	r := test.Request(t, http.MethodPost, shift.Data.Links.Earnings, v1.EarningsEditable{Earnings: "1000"})
	test.AssertHTTPStatus(t, &r, http.StatusOK)

	r = test.Request(t, http.MethodPost, shift.Data.Links.Earnings, v1.EarningsEditable{Earnings: "500"})
	test.AssertHTTPStatus(t, &r, http.StatusBadRequest)

	var response v1.ShiftResponse
	test.DecodeResponse(t, &r, &response)
	require.NotNil(t, response.Error)
	assert.Equal(t, models.ErrEarningsAlreadyRecorded.Error(), *response.Error)
}

func (suite *TestSuiteStandard) TestShiftsRecordEarningsValidation() {
	t := suite.T()

	user := createTestUser(t, v1.UserEditable{})
	goal := createTestGoal(t, v1.GoalEditable{UserID: user.Data.ID})
	shift := createTestShift(t, v1.ShiftEditable{UserID: user.Data.ID})

	tests := []struct {
		name   string
		body   v1.EarningsEditable
		status int
	}{
		{
			"amount is not a number",
			v1.EarningsEditable{Earnings: "a lot"},
			http.StatusBadRequest,
		},
		{
			"amount must be positive",
			v1.EarningsEditable{Earnings: "0"},
			http.StatusBadRequest,
		},
		{
			"allocations must not exceed earnings",
			v1.EarningsEditable{Earnings: "100", Allocations: []v1.AllocationEditable{{GoalID: goal.Data.ID, Amount: decimal.NewFromFloat(101)}}},
			http.StatusBadRequest,
		},
		{
			"goal of another user",
			v1.EarningsEditable{Earnings: "100", Allocations: []v1.AllocationEditable{{GoalID: createTestGoal(t, v1.GoalEditable{}).Data.ID, Amount: decimal.NewFromFloat(50)}}},
			http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, shift.Data.Links.Earnings, tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}

	// The shift is untouched after all the failed attempts
	r := test.Request(t, http.MethodGet, shift.Data.Links.Self, "")
	test.AssertHTTPStatus(t, &r, http.StatusOK)

	var response v1.ShiftResponse
	test.DecodeResponse(t, &r, &response)
	assert.Nil(t, response.Data.Earnings)
	assert.Equal(t, models.ShiftStatusScheduled, response.Data.Status)
}

func (suite *TestSuiteStandard) TestShiftsPreview() {
	t := suite.T()

	user := createTestUser(t, v1.UserEditable{})
	first := createTestGoal(t, v1.GoalEditable{UserID: user.Data.ID, TargetAmount: decimal.NewFromFloat(100000), AllocationPercentage: 100, OrderIndex: 1})
	second := createTestGoal(t, v1.GoalEditable{UserID: user.Data.ID, TargetAmount: decimal.NewFromFloat(100000), AllocationPercentage: 50, OrderIndex: 2})
	shift := createTestShift(t, v1.ShiftEditable{UserID: user.Data.ID})

	r := test.Request(t, http.MethodPost, shift.Data.Links.Earnings+"/preview", v1.EarningsEditable{Earnings: "1000"})
	test.AssertHTTPStatus(t, &r, http.StatusOK)

	var response v1.EarningsPreviewResponse
	test.DecodeResponse(t, &r, &response)
	require.NotNil(t, response.Data)

	// 100% + 50% is scaled by 2/3 and floored to whole currency units
	amounts := make(map[uuid.UUID]string)
	for _, allocation := range response.Data.Allocations {
		amounts[allocation.GoalID] = allocation.Amount
	}

	require.Len(t, amounts, 2)
	assert.Equal(t, "666.00", amounts[first.Data.ID])
	assert.Equal(t, "333.00", amounts[second.Data.ID])
	assert.Equal(t, "1.00", response.Data.Remainder)

	// The preview writes nothing
	r = test.Request(t, http.MethodGet, first.Data.Links.Self, "")
	test.AssertHTTPStatus(t, &r, http.StatusOK)

	var goalResponse v1.GoalResponse
	test.DecodeResponse(t, &r, &goalResponse)
	assert.Equal(t, "0.00", goalResponse.Data.CurrentAmount)

	r = test.Request(t, http.MethodGet, shift.Data.Links.Self, "")
	test.AssertHTTPStatus(t, &r, http.StatusOK)

	var shiftResponse v1.ShiftResponse
	test.DecodeResponse(t, &r, &shiftResponse)
	assert.Nil(t, shiftResponse.Data.Earnings)
}

func (suite *TestSuiteStandard) TestShiftsPreviewManualOverride() {
	t := suite.T()

	user := createTestUser(t, v1.UserEditable{})
	auto := createTestGoal(t, v1.GoalEditable{UserID: user.Data.ID, TargetAmount: decimal.NewFromFloat(100000), AllocationPercentage: 50})
	manual := createTestGoal(t, v1.GoalEditable{UserID: user.Data.ID, TargetAmount: decimal.NewFromFloat(100000), AllocationPercentage: 50})
	shift := createTestShift(t, v1.ShiftEditable{UserID: user.Data.ID})

	r := test.Request(t, http.MethodPost, shift.Data.Links.Earnings+"/preview", v1.EarningsEditable{
		Earnings: "1000",
		Allocations: []v1.AllocationEditable{
			{GoalID: manual.Data.ID, Amount: decimal.NewFromFloat(42.42)},
		},
	})
	test.AssertHTTPStatus(t, &r, http.StatusOK)

	var response v1.EarningsPreviewResponse
	test.DecodeResponse(t, &r, &response)
	require.NotNil(t, response.Data)

	amounts := make(map[uuid.UUID]string)
	for _, allocation := range response.Data.Allocations {
		amounts[allocation.GoalID] = allocation.Amount
	}

	require.Len(t, amounts, 2)
	assert.Equal(t, "42.42", amounts[manual.Data.ID])
	assert.Equal(t, "500.00", amounts[auto.Data.ID])
}

func (suite *TestSuiteStandard) TestShiftsDelete() {
	t := suite.T()

	shift := createTestShift(t, v1.ShiftEditable{})

	r := test.Request(t, http.MethodDelete, shift.Data.Links.Self, "")
	test.AssertHTTPStatus(t, &r, http.StatusNoContent)

	r = test.Request(t, http.MethodGet, shift.Data.Links.Self, "")
	test.AssertHTTPStatus(t, &r, http.StatusNotFound)
}
