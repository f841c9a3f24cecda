package v1

import (
	"fmt"

	"github.com/altax/OzonGoal-sub001/internal/models"
	"github.com/altax/OzonGoal-sub001/internal/money"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type UserEditable struct {
	Name    string          `json:"name" example:"Алексей" default:""`                                                 // Name of the user
	Note    string          `json:"note" example:"Main warehouse account" default:""`                                  // Note about the user
	Balance decimal.Decimal `json:"balance" example:"270.50" minimum:"0" multipleOf:"0.01" default:"0" swaggertype:"primitive,string"` // Unallocated money of the user
}

// model returns the database resource for the API representation of the editable fields
func (editable UserEditable) model() models.User {
	return models.User{
		Name:    editable.Name,
		Note:    editable.Note,
		Balance: editable.Balance,
	}
}

type UserLinks struct {
	Self        string `json:"self" example:"https://example.com/api/v1/users/d1b4ee4b-5bf7-441e-8cb3-7dc46ef0a0e9"`               // The User itself
	Goals       string `json:"goals" example:"https://example.com/api/v1/goals?user=d1b4ee4b-5bf7-441e-8cb3-7dc46ef0a0e9"`         // Goals of this user
	Shifts      string `json:"shifts" example:"https://example.com/api/v1/shifts?user=d1b4ee4b-5bf7-441e-8cb3-7dc46ef0a0e9"`       // Shifts of this user
	Allocations string `json:"allocations" example:"https://example.com/api/v1/allocations?user=d1b4ee4b-5bf7-441e-8cb3-7dc46ef0a0e9"` // Allocations of this user
}

type User struct {
	models.DefaultModel
	UserEditable
	// Balance shadows the editable field so that responses always
	// carry the wire format with two fraction digits
	Balance string    `json:"balance" example:"270.50"` // Unallocated money of the user
	Links   UserLinks `json:"links"`
}

// newUser returns the API v1 representation of the resource
func newUser(c *gin.Context, model models.User) User {
	url := c.GetString(string(models.DBContextURL))

	return User{
		DefaultModel: model.DefaultModel,
		UserEditable: UserEditable{
			Name: model.Name,
			Note: model.Note,
		},
		Balance: money.String(model.Balance),
		Links: UserLinks{
			Self:        fmt.Sprintf("%s/v1/users/%s", url, model.ID),
			Goals:       fmt.Sprintf("%s/v1/goals?user=%s", url, model.ID),
			Shifts:      fmt.Sprintf("%s/v1/shifts?user=%s", url, model.ID),
			Allocations: fmt.Sprintf("%s/v1/allocations?user=%s", url, model.ID),
		},
	}
}

type UserListResponse struct {
	Data       []User      `json:"data"`                                                          // List of resources
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type UserCreateResponse struct {
	Error *string        `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []UserResponse `json:"data"`                                                          // List of created resources
}

func (r *UserCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	r.Data = append(r.Data, UserResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type UserResponse struct {
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *User   `json:"data"`                                                          // The resource
}

type UserQueryFilter struct {
	Name   string `form:"name" filterField:"false"`   // Filter by name
	Note   string `form:"note" filterField:"false"`   // Filter by note
	Search string `form:"search" filterField:"false"` // Search for this text in name and note
	Offset uint   `form:"offset" filterField:"false"` // The offset of the first user returned. Defaults to 0.
	Limit  int    `form:"limit" filterField:"false"`  // Maximum number of users to return. Defaults to 50.
}
