package v1

import (
	"fmt"
	"time"

	"github.com/altax/OzonGoal-sub001/internal/models"
	"github.com/altax/OzonGoal-sub001/internal/money"
	og_uuid "github.com/altax/OzonGoal-sub001/internal/uuid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type GoalEditable struct {
	Name                 string            `json:"name" example:"Новый телефон" default:""`                                                  // Name of the goal
	Note                 string            `json:"note" example:"Save up before the warranty runs out" default:""`                           // Note about the goal
	UserID               uuid.UUID         `json:"userId" example:"f81566d9-af4d-4f13-9830-c62c4b5e4c7e"`                                    // The ID of the user this goal belongs to
	TargetAmount         decimal.Decimal   `json:"targetAmount" example:"10000" minimum:"0.01" multipleOf:"0.01" default:"0" swaggertype:"primitive,string"` // The amount to save up for this goal
	CurrentAmount        decimal.Decimal   `json:"currentAmount" example:"3000" minimum:"0" multipleOf:"0.01" default:"0" swaggertype:"primitive,string"`    // The amount already saved for this goal
	Status               models.GoalStatus `json:"status" example:"active" default:"active"`                                                 // One of active, completed, hidden
	AllocationPercentage uint              `json:"allocationPercentage" example:"25" minimum:"0" maximum:"100" default:"0"`                  // Share of future earnings auto-routed to this goal
	IsPrimary            bool              `json:"isPrimary" example:"true" default:"false"`                                                 // Is this the pinned goal of the user?
	Deadline             *time.Time        `json:"deadline" example:"2027-06-01T00:00:00.000000Z"`                                           // When the goal should be reached
	Icon                 string            `json:"icon" example:"phone" default:""`                                                          // Icon metadata for the client
	OrderIndex           uint              `json:"orderIndex" example:"2" default:"0"`                                                       // Position in the manual goal ordering
}

// model returns the database resource for the API representation of the editable fields
func (editable GoalEditable) model() models.Goal {
	return models.Goal{
		Name:                 editable.Name,
		Note:                 editable.Note,
		UserID:               editable.UserID,
		TargetAmount:         editable.TargetAmount,
		CurrentAmount:        editable.CurrentAmount,
		Status:               editable.Status,
		AllocationPercentage: editable.AllocationPercentage,
		IsPrimary:            editable.IsPrimary,
		Deadline:             editable.Deadline,
		Icon:                 editable.Icon,
		OrderIndex:           editable.OrderIndex,
	}
}

type GoalLinks struct {
	Self        string `json:"self" example:"https://example.com/api/v1/goals/438cc6c0-9baf-49fd-a75a-d76bd5cab19c"`                     // The Goal itself
	User        string `json:"user" example:"https://example.com/api/v1/users/c1a96ae4-80e3-4827-8ed0-c7656f224fee"`                     // The User this goal belongs to
	Allocations string `json:"allocations" example:"https://example.com/api/v1/allocations?goal=438cc6c0-9baf-49fd-a75a-d76bd5cab19c"` // Allocations to this goal
}

type Goal struct {
	models.DefaultModel
	GoalEditable
	// The amounts shadow the editable fields so that responses always
	// carry the wire format with two fraction digits
	TargetAmount  string     `json:"targetAmount" example:"10000.00"`                   // The amount to save up for this goal
	CurrentAmount string     `json:"currentAmount" example:"3000.00"`                   // The amount already saved for this goal
	CompletedAt   *time.Time `json:"completedAt" example:"2026-03-17T20:14:01.048145Z"` // Time the goal reached its target
	Links         GoalLinks  `json:"links"`
}

// newGoal returns the API v1 representation of the resource
func newGoal(c *gin.Context, model models.Goal) Goal {
	url := c.GetString(string(models.DBContextURL))

	return Goal{
		DefaultModel: model.DefaultModel,
		GoalEditable: GoalEditable{
			Name:                 model.Name,
			Note:                 model.Note,
			UserID:               model.UserID,
			Status:               model.Status,
			AllocationPercentage: model.AllocationPercentage,
			IsPrimary:            model.IsPrimary,
			Deadline:             model.Deadline,
			Icon:                 model.Icon,
			OrderIndex:           model.OrderIndex,
		},
		TargetAmount:  money.String(model.TargetAmount),
		CurrentAmount: money.String(model.CurrentAmount),
		CompletedAt:   model.CompletedAt,
		Links: GoalLinks{
			Self:        fmt.Sprintf("%s/v1/goals/%s", url, model.ID),
			User:        fmt.Sprintf("%s/v1/users/%s", url, model.UserID),
			Allocations: fmt.Sprintf("%s/v1/allocations?goal=%s", url, model.ID),
		},
	}
}

type GoalListResponse struct {
	Data       []Goal      `json:"data"`                                                          // List of resources
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type GoalCreateResponse struct {
	Error *string        `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []GoalResponse `json:"data"`                                                          // List of created resources
}

func (r *GoalCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	r.Data = append(r.Data, GoalResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type GoalResponse struct {
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *Goal   `json:"data"`                                                          // The resource
}

type GoalQueryFilter struct {
	Name              string            `form:"name" filterField:"false"`              // By name
	Note              string            `form:"note" filterField:"false"`              // By the note
	Search            string            `form:"search" filterField:"false"`            // By string in name or note
	UserID            og_uuid.UUID      `form:"user"`                                  // ID of the user
	Status            models.GoalStatus `form:"status"`                                // By status
	IsPrimary         bool              `form:"isPrimary"`                             // Is the goal pinned?
	AmountLessOrEqual decimal.Decimal   `form:"amountLessOrEqual" filterField:"false"` // Target amount less than or equal to this
	AmountMoreOrEqual decimal.Decimal   `form:"amountMoreOrEqual" filterField:"false"` // Target amount more than or equal to this
	Offset            uint              `form:"offset" filterField:"false"`            // The offset of the first goal returned. Defaults to 0.
	Limit             int               `form:"limit" filterField:"false"`             // Maximum number of goals to return. Defaults to 50.
}

func (f GoalQueryFilter) model() models.Goal {
	// This does not set the string fields since they are
	// handled in the controller function
	return models.Goal{
		UserID:    f.UserID.UUID,
		Status:    f.Status,
		IsPrimary: f.IsPrimary,
	}
}
