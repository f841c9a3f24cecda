package v1

import (
	"net/http"

	"github.com/altax/OzonGoal-sub001/internal/httputil"
	"github.com/altax/OzonGoal-sub001/internal/models"
	"github.com/gin-gonic/gin"
	"golang.org/x/exp/slices"
)

func RegisterUserRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsUsers)
		r.GET("", GetUsers)
		r.POST("", CreateUsers)
	}
	{
		// Users are never deleted within the app, therefore no DELETE
		// route is registered
		r.OPTIONS("/:id", OptionsUserDetail)
		r.GET("/:id", GetUser)
		r.PATCH("/:id", UpdateUser)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Users
// @Success		204
// @Router			/v1/users [options]
func OptionsUsers(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Users
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/users/{id} [options]
func OptionsUserDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.First(&models.User{}, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetPatch(c)
}

// @Summary		Create users
// @Description	Creates new users
// @Tags			Users
// @Produce		json
// @Success		201		{object}	UserCreateResponse
// @Failure		400		{object}	UserCreateResponse
// @Failure		500		{object}	UserCreateResponse
// @Param			users	body		[]UserEditable	true	"Users"
// @Router			/v1/users [post]
func CreateUsers(c *gin.Context) {
	var users []UserEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &users)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), UserCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := UserCreateResponse{}

	for _, create := range users {
		user := create.model()
		err = models.DB.Create(&user).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		// Transform for the API and append
		apiResource := newUser(c, user)
		r.Data = append(r.Data, UserResponse{Data: &apiResource})
	}

	c.JSON(status, r)
}

// @Summary		Get users
// @Description	Returns a list of users
// @Tags			Users
// @Produce		json
// @Success		200	{object}	UserListResponse
// @Failure		400	{object}	UserListResponse
// @Failure		500	{object}	UserListResponse
// @Router			/v1/users [get]
// @Param			name	query	string	false	"Filter by name"
// @Param			note	query	string	false	"Filter by note"
// @Param			search	query	string	false	"Search for this text in name and note"
// @Param			offset	query	uint	false	"The offset of the first user returned. Defaults to 0."
// @Param			limit	query	int		false	"Maximum number of users to return. Defaults to 50."
func GetUsers(c *gin.Context) {
	var filter UserQueryFilter

	if err := c.Bind(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, UserListResponse{
			Error: &s,
		})
		return
	}

	_, setFields := httputil.GetURLFields(c.Request.URL, filter)

	q := models.DB.
		Order("users.name ASC").
		Model(&models.User{})

	q = stringFilters(models.DB, q, setFields, filter.Name, filter.Note, filter.Search)

	// Set the offset. Does not need checking since the default is 0
	q = q.Offset(int(filter.Offset))

	// Default to 50 users and set the limit
	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	var users []models.User
	err := q.Find(&users).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), UserListResponse{
			Error: &s,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), UserListResponse{
			Error: &e,
		})
		return
	}

	// Transform resources to their API representation
	data := make([]User, 0, len(users))
	for _, user := range users {
		data = append(data, newUser(c, user))
	}

	c.JSON(http.StatusOK, UserListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get user
// @Description	Returns a specific user
// @Tags			Users
// @Produce		json
// @Success		200	{object}	UserResponse
// @Failure		400	{object}	UserResponse
// @Failure		404	{object}	UserResponse
// @Failure		500	{object}	UserResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/users/{id} [get]
func GetUser(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), UserResponse{
			Error: &e,
		})
		return
	}

	var user models.User
	err = models.DB.First(&user, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), UserResponse{
			Error: &e,
		})
		return
	}

	apiResource := newUser(c, user)
	c.JSON(http.StatusOK, UserResponse{Data: &apiResource})
}

// @Summary		Update user
// @Description	Updates an existing user. Only values to be updated need to be specified. The balance can be adjusted directly, but must not become negative.
// @Tags			Users
// @Accept			json
// @Produce		json
// @Success		200		{object}	UserResponse
// @Failure		400		{object}	UserResponse
// @Failure		404		{object}	UserResponse
// @Failure		500		{object}	UserResponse
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			user	body		UserEditable	true	"User"
// @Router			/v1/users/{id} [patch]
func UpdateUser(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), UserResponse{
			Error: &e,
		})
		return
	}

	var user models.User
	err = models.DB.First(&user, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), UserResponse{
			Error: &e,
		})
		return
	}

	// Get the fields that are set to be updated
	updateFields, err := httputil.GetBodyFields(c, UserEditable{})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), UserResponse{
			Error: &e,
		})
		return
	}

	// Bind the data for the patch
	var data UserEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), UserResponse{
			Error: &e,
		})
		return
	}

	err = models.DB.Model(&user).Select("", updateFields...).Updates(data.model()).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), UserResponse{
			Error: &e,
		})
		return
	}

	apiResource := newUser(c, user)
	c.JSON(http.StatusOK, UserResponse{Data: &apiResource})
}
