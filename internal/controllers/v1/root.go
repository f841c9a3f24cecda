package v1

import (
	"net/http"

	"github.com/altax/OzonGoal-sub001/internal/httputil"
	"github.com/altax/OzonGoal-sub001/internal/models"
	"github.com/gin-gonic/gin"
)

type Response struct {
	Links Links `json:"links"` // Links for the v1 API
}

type Links struct {
	Users       string `json:"users" example:"https://example.com/api/v1/users"`             // URL of the user list endpoint
	Goals       string `json:"goals" example:"https://example.com/api/v1/goals"`             // URL of the goal list endpoint
	Shifts      string `json:"shifts" example:"https://example.com/api/v1/shifts"`           // URL of the shift list endpoint
	Allocations string `json:"allocations" example:"https://example.com/api/v1/allocations"` // URL of the allocation list endpoint
}

// Get returns the link list for v1
//
//	@Summary		v1 API
//	@Description	Returns general information about the v1 API
//	@Tags			v1
//	@Success		200	{object}	Response
//	@Router			/v1 [get]
func Get(c *gin.Context) {
	url := c.GetString(string(models.DBContextURL))

	c.JSON(http.StatusOK, Response{
		Links: Links{
			Users:       url + "/v1/users",
			Goals:       url + "/v1/goals",
			Shifts:      url + "/v1/shifts",
			Allocations: url + "/v1/allocations",
		},
	})
}

// Options returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			v1
//	@Success		204
//	@Router			/v1 [options]
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}
