package v1

import (
	"fmt"

	"github.com/altax/OzonGoal-sub001/internal/models"
	"github.com/altax/OzonGoal-sub001/internal/money"
	og_uuid "github.com/altax/OzonGoal-sub001/internal/uuid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AllocationLinks struct {
	Self  string `json:"self" example:"https://example.com/api/v1/allocations/7995dd7e-5b87-4b5f-9893-af14bbbd4747"` // The Allocation itself
	Shift string `json:"shift" example:"https://example.com/api/v1/shifts/ec85d9ef-b5a9-4c4f-91b8-f9f9e0e62ba7"`    // The Shift the allocation was created from
	Goal  string `json:"goal" example:"https://example.com/api/v1/goals/438cc6c0-9baf-49fd-a75a-d76bd5cab19c"`      // The Goal the allocation went to
}

// Allocation is one ledger entry connecting a shift's earnings to a
// goal. The ledger is written by the earnings recorder and read-only
// through the API.
type Allocation struct {
	models.DefaultModel
	ShiftID uuid.UUID       `json:"shiftId" example:"ec85d9ef-b5a9-4c4f-91b8-f9f9e0e62ba7"` // The shift the amount was earned in
	GoalID  uuid.UUID       `json:"goalId" example:"438cc6c0-9baf-49fd-a75a-d76bd5cab19c"`  // The goal the amount went to
	Amount  string          `json:"amount" example:"500.00"`                                // The allocated amount with two fraction digits
	Links   AllocationLinks `json:"links"`
}

// newAllocation returns the API v1 representation of the resource
func newAllocation(c *gin.Context, model models.GoalAllocation) Allocation {
	url := c.GetString(string(models.DBContextURL))

	return Allocation{
		DefaultModel: model.DefaultModel,
		ShiftID:      model.ShiftID,
		GoalID:       model.GoalID,
		Amount:       money.String(model.Amount),
		Links: AllocationLinks{
			Self:  fmt.Sprintf("%s/v1/allocations/%s", url, model.ID),
			Shift: fmt.Sprintf("%s/v1/shifts/%s", url, model.ShiftID),
			Goal:  fmt.Sprintf("%s/v1/goals/%s", url, model.GoalID),
		},
	}
}

type AllocationListResponse struct {
	Data       []Allocation `json:"data"`                                                          // List of resources
	Error      *string      `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination  `json:"pagination"`                                                    // Pagination information
}

type AllocationResponse struct {
	Error *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *Allocation `json:"data"`                                                          // The resource
}

type AllocationQueryFilter struct {
	GoalID  og_uuid.UUID `form:"goal"`                       // ID of the goal
	ShiftID og_uuid.UUID `form:"shift"`                      // ID of the shift
	UserID  og_uuid.UUID `form:"user" filterField:"false"`   // ID of the user the goal belongs to
	Offset  uint         `form:"offset" filterField:"false"` // The offset of the first allocation returned. Defaults to 0.
	Limit   int          `form:"limit" filterField:"false"`  // Maximum number of allocations to return. Defaults to 50.
}

func (f AllocationQueryFilter) model() models.GoalAllocation {
	return models.GoalAllocation{
		GoalID:  f.GoalID.UUID,
		ShiftID: f.ShiftID.UUID,
	}
}
