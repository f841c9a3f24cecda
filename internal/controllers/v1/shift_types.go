package v1

import (
	"fmt"
	"time"

	"github.com/altax/OzonGoal-sub001/internal/models"
	"github.com/altax/OzonGoal-sub001/internal/money"
	"github.com/altax/OzonGoal-sub001/internal/types"
	og_uuid "github.com/altax/OzonGoal-sub001/internal/uuid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ShiftEditable struct {
	UserID         uuid.UUID          `json:"userId" example:"f81566d9-af4d-4f13-9830-c62c4b5e4c7e"`                // The ID of the user this shift belongs to
	OperationType  string             `json:"operationType" example:"Приёмка" default:""`                           // The kind of work done during the shift
	ShiftType      models.ShiftType   `json:"shiftType" example:"day"`                                              // One of day, night
	ScheduledDate  types.Day          `json:"scheduledDate" example:"2026-09-01"`                                   // The calendar day of the shift. Defaults to the day the shift starts.
	ScheduledStart time.Time          `json:"scheduledStart" example:"2026-09-01T08:00:00.000000Z"`                 // When the shift starts
	ScheduledEnd   time.Time          `json:"scheduledEnd" example:"2026-09-01T20:00:00.000000Z"`                   // When the shift ends. Must be after the start.
	Status         models.ShiftStatus `json:"status" example:"scheduled" default:"scheduled"`                       // One of scheduled, in_progress, completed, canceled, no_show
}

// model returns the database resource for the API representation of the editable fields
func (editable ShiftEditable) model() models.Shift {
	return models.Shift{
		UserID:         editable.UserID,
		OperationType:  editable.OperationType,
		ShiftType:      editable.ShiftType,
		ScheduledDate:  editable.ScheduledDate,
		ScheduledStart: editable.ScheduledStart,
		ScheduledEnd:   editable.ScheduledEnd,
		Status:         editable.Status,
	}
}

type ShiftLinks struct {
	Self        string `json:"self" example:"https://example.com/api/v1/shifts/ec85d9ef-b5a9-4c4f-91b8-f9f9e0e62ba7"`                     // The Shift itself
	User        string `json:"user" example:"https://example.com/api/v1/users/c1a96ae4-80e3-4827-8ed0-c7656f224fee"`                      // The User this shift belongs to
	Earnings    string `json:"earnings" example:"https://example.com/api/v1/shifts/ec85d9ef-b5a9-4c4f-91b8-f9f9e0e62ba7/earnings"`        // Endpoint to record the earnings of this shift
	Allocations string `json:"allocations" example:"https://example.com/api/v1/allocations?shift=ec85d9ef-b5a9-4c4f-91b8-f9f9e0e62ba7"` // Allocations created from this shift
}

type Shift struct {
	models.DefaultModel
	ShiftEditable
	Earnings           *string    `json:"earnings" example:"3200.50"`                               // The recorded earnings with two fraction digits. Null until they are recorded.
	EarningsRecordedAt *time.Time `json:"earningsRecordedAt" example:"2026-09-01T20:14:01.048145Z"` // Time the earnings were recorded
	Links              ShiftLinks `json:"links"`
}

// newShift returns the API v1 representation of the resource
func newShift(c *gin.Context, model models.Shift) Shift {
	url := c.GetString(string(models.DBContextURL))

	var earnings *string
	if model.Earnings.Valid {
		s := money.String(model.Earnings.Decimal)
		earnings = &s
	}

	return Shift{
		DefaultModel: model.DefaultModel,
		ShiftEditable: ShiftEditable{
			UserID:         model.UserID,
			OperationType:  model.OperationType,
			ShiftType:      model.ShiftType,
			ScheduledDate:  model.ScheduledDate,
			ScheduledStart: model.ScheduledStart,
			ScheduledEnd:   model.ScheduledEnd,
			Status:         model.Status,
		},
		Earnings:           earnings,
		EarningsRecordedAt: model.EarningsRecordedAt,
		Links: ShiftLinks{
			Self:        fmt.Sprintf("%s/v1/shifts/%s", url, model.ID),
			User:        fmt.Sprintf("%s/v1/users/%s", url, model.UserID),
			Earnings:    fmt.Sprintf("%s/v1/shifts/%s/earnings", url, model.ID),
			Allocations: fmt.Sprintf("%s/v1/allocations?shift=%s", url, model.ID),
		},
	}
}

type ShiftListResponse struct {
	Data       []Shift     `json:"data"`                                                          // List of resources
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type ShiftCreateResponse struct {
	Error *string         `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []ShiftResponse `json:"data"`                                                          // List of created resources
}

func (r *ShiftCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	r.Data = append(r.Data, ShiftResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type ShiftResponse struct {
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *Shift  `json:"data"`                                                          // The resource
}

type ShiftQueryFilter struct {
	UserID        og_uuid.UUID       `form:"user"`                               // ID of the user
	Status        models.ShiftStatus `form:"status"`                             // By status
	ShiftType     models.ShiftType   `form:"shiftType"`                          // One of day, night
	OperationType string             `form:"operationType" filterField:"false"`  // By operation type. Supports globbing, e.g. "При*"
	Date          types.Day          `form:"date" filterField:"false"`           // On this calendar day
	FromDate      types.Day          `form:"fromDate" filterField:"false"`       // On or after this calendar day
	UntilDate     types.Day          `form:"untilDate" filterField:"false"`      // On or before this calendar day
	Offset        uint               `form:"offset" filterField:"false"`         // The offset of the first shift returned. Defaults to 0.
	Limit         int                `form:"limit" filterField:"false"`          // Maximum number of shifts to return. Defaults to 50.
}

func (f ShiftQueryFilter) model() models.Shift {
	// OperationType and the date filters are not set here since they
	// are handled in the controller function
	return models.Shift{
		UserID:    f.UserID.UUID,
		Status:    f.Status,
		ShiftType: f.ShiftType,
	}
}

// AllocationEditable is one requested allocation within an earnings
// recording or preview.
type AllocationEditable struct {
	GoalID uuid.UUID       `json:"goalId" example:"438cc6c0-9baf-49fd-a75a-d76bd5cab19c"`                               // The goal the amount goes to
	Amount decimal.Decimal `json:"amount" example:"500" minimum:"0.01" multipleOf:"0.01" swaggertype:"primitive,string"` // The amount allocated to the goal
}

// EarningsEditable is the request body for recording or previewing
// earnings. The amount is free-text so clients can pass user input
// ("3 200,50 ₽") unchanged.
type EarningsEditable struct {
	Earnings    string               `json:"earnings" example:"3 200,50 ₽"` // The earned amount
	Allocations []AllocationEditable `json:"allocations"`                   // How the earnings are distributed across goals. For the preview, these override the automatic distribution.
}

// EarningsPreviewAllocation is one proposed allocation in the wire
// format with two fraction digits.
type EarningsPreviewAllocation struct {
	GoalID uuid.UUID `json:"goalId" example:"438cc6c0-9baf-49fd-a75a-d76bd5cab19c"` // The goal the amount would go to
	Amount string    `json:"amount" example:"500.00"`                               // The proposed amount
}

type EarningsPreview struct {
	Earnings    string                      `json:"earnings" example:"3200.50"`  // The parsed earned amount
	Allocations []EarningsPreviewAllocation `json:"allocations"`                 // The proposed distribution
	Remainder   string                      `json:"remainder" example:"200.50"`  // The amount that would go to the user's balance
}

type EarningsPreviewResponse struct {
	Error *string          `json:"error" example:"the amount could not be parsed as a number"` // The error, if any occurred
	Data  *EarningsPreview `json:"data"`                                                       // The proposed distribution
}
