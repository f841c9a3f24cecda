package v1

import (
	"net/http"

	"github.com/altax/OzonGoal-sub001/internal/httputil"
	"github.com/altax/OzonGoal-sub001/internal/models"
	"github.com/altax/OzonGoal-sub001/internal/money"
	"github.com/altax/OzonGoal-sub001/internal/planner"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/ryanuber/go-glob"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

func RegisterShiftRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsShifts)
		r.GET("", GetShifts)
		r.POST("", CreateShifts)
	}
	{
		r.OPTIONS("/:id", OptionsShiftDetail)
		r.GET("/:id", GetShift)
		r.PATCH("/:id", UpdateShift)
		r.DELETE("/:id", DeleteShift)
	}
	{
		r.OPTIONS("/:id/earnings", OptionsShiftEarnings)
		r.POST("/:id/earnings", RecordShiftEarnings)
		r.OPTIONS("/:id/earnings/preview", OptionsShiftEarnings)
		r.POST("/:id/earnings/preview", PreviewShiftEarnings)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Shifts
// @Success		204
// @Router			/v1/shifts [options]
func OptionsShifts(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Shifts
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/shifts/{id} [options]
func OptionsShiftDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.First(&models.Shift{}, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Shifts
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/shifts/{id}/earnings [options]
func OptionsShiftEarnings(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.First(&models.Shift{}, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsPost(c)
}

// @Summary		Create shifts
// @Description	Creates new shifts
// @Tags			Shifts
// @Produce		json
// @Success		201		{object}	ShiftCreateResponse
// @Failure		400		{object}	ShiftCreateResponse
// @Failure		404		{object}	ShiftCreateResponse
// @Failure		500		{object}	ShiftCreateResponse
// @Param			shifts	body		[]ShiftEditable	true	"Shifts"
// @Router			/v1/shifts [post]
func CreateShifts(c *gin.Context) {
	var shifts []ShiftEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &shifts)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ShiftCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := ShiftCreateResponse{}

	for _, create := range shifts {
		shift := create.model()
		err = models.DB.Create(&shift).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		// Transform for the API and append
		apiResource := newShift(c, shift)
		r.Data = append(r.Data, ShiftResponse{Data: &apiResource})
	}

	c.JSON(status, r)
}

// @Summary		Get shifts
// @Description	Returns a list of shifts
// @Tags			Shifts
// @Produce		json
// @Success		200	{object}	ShiftListResponse
// @Failure		400	{object}	ShiftListResponse
// @Failure		500	{object}	ShiftListResponse
// @Router			/v1/shifts [get]
// @Param			user			query	string	false	"Filter by user ID"
// @Param			status			query	string	false	"Filter by status"
// @Param			shiftType		query	string	false	"Filter by shift type"
// @Param			operationType	query	string	false	"Filter by operation type. Supports globbing, e.g. При*"
// @Param			date			query	string	false	"Shifts on this calendar day"
// @Param			fromDate		query	string	false	"Shifts on or after this calendar day"
// @Param			untilDate		query	string	false	"Shifts on or before this calendar day"
// @Param			offset			query	uint	false	"The offset of the first shift returned. Defaults to 0."
// @Param			limit			query	int		false	"Maximum number of shifts to return. Defaults to 50."
func GetShifts(c *gin.Context) {
	var filter ShiftQueryFilter

	if err := c.Bind(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, ShiftListResponse{
			Error: &s,
		})
		return
	}

	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	where := filter.model()

	q := models.DB.
		Order("shifts.scheduled_date DESC, shifts.scheduled_start DESC").
		Where(&where, queryFields...)

	if !filter.Date.IsZero() {
		q = q.Where("shifts.scheduled_date = ?", filter.Date)
	}

	if !filter.FromDate.IsZero() {
		q = q.Where("shifts.scheduled_date >= ?", filter.FromDate)
	}

	if !filter.UntilDate.IsZero() {
		q = q.Where("shifts.scheduled_date <= ?", filter.UntilDate)
	}

	var shifts []models.Shift
	err := q.Find(&shifts).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ShiftListResponse{
			Error: &s,
		})
		return
	}

	// The operation type filter supports globbing, which the database
	// cannot do, so it is applied here. Pagination therefore happens
	// in memory, after the glob filter.
	if slices.Contains(setFields, "OperationType") {
		matching := make([]models.Shift, 0, len(shifts))
		for _, shift := range shifts {
			if glob.Glob(filter.OperationType, shift.OperationType) {
				matching = append(matching, shift)
			}
		}
		shifts = matching
	}

	total := int64(len(shifts))

	// Default to 50 shifts and set the limit
	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}

	if filter.Offset >= uint(len(shifts)) {
		shifts = nil
	} else {
		shifts = shifts[filter.Offset:]
	}
	if limit >= 0 && limit < len(shifts) {
		shifts = shifts[:limit]
	}

	// Transform resources to their API representation
	data := make([]Shift, 0, len(shifts))
	for _, shift := range shifts {
		data = append(data, newShift(c, shift))
	}

	c.JSON(http.StatusOK, ShiftListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  total,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get shift
// @Description	Returns a specific shift
// @Tags			Shifts
// @Produce		json
// @Success		200	{object}	ShiftResponse
// @Failure		400	{object}	ShiftResponse
// @Failure		404	{object}	ShiftResponse
// @Failure		500	{object}	ShiftResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/shifts/{id} [get]
func GetShift(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ShiftResponse{
			Error: &e,
		})
		return
	}

	var shift models.Shift
	err = models.DB.First(&shift, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ShiftResponse{
			Error: &e,
		})
		return
	}

	apiResource := newShift(c, shift)
	c.JSON(http.StatusOK, ShiftResponse{Data: &apiResource})
}

// @Summary		Update shift
// @Description	Updates an existing shift. Only values to be updated need to be specified. The earnings cannot be set here, use the earnings endpoint instead.
// @Tags			Shifts
// @Accept			json
// @Produce		json
// @Success		200		{object}	ShiftResponse
// @Failure		400		{object}	ShiftResponse
// @Failure		404		{object}	ShiftResponse
// @Failure		500		{object}	ShiftResponse
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			shift	body		ShiftEditable	true	"Shift"
// @Router			/v1/shifts/{id} [patch]
func UpdateShift(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ShiftResponse{
			Error: &e,
		})
		return
	}

	var shift models.Shift
	err = models.DB.First(&shift, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ShiftResponse{
			Error: &e,
		})
		return
	}

	// Get the fields that are set to be updated
	updateFields, err := httputil.GetBodyFields(c, ShiftEditable{})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ShiftResponse{
			Error: &e,
		})
		return
	}

	// Bind the data for the patch
	var data ShiftEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ShiftResponse{
			Error: &e,
		})
		return
	}

	err = models.DB.Model(&shift).Select("", updateFields...).Updates(data.model()).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ShiftResponse{
			Error: &e,
		})
		return
	}

	apiResource := newShift(c, shift)
	c.JSON(http.StatusOK, ShiftResponse{Data: &apiResource})
}

// @Summary		Delete shift
// @Description	Deletes a shift and the allocations created from it
// @Tags			Shifts
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/shifts/{id} [delete]
func DeleteShift(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var shift models.Shift
	err = models.DB.First(&shift, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&shift).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

// @Summary		Record earnings
// @Description	Records the earnings for a shift and distributes them across the referenced goals. The shift is completed, the allocations are written to the ledger, the goal balances are incremented and the unallocated remainder is deposited into the user's balance - all in one transaction. Earnings can be recorded exactly once per shift.
// @Tags			Shifts
// @Accept			json
// @Produce		json
// @Success		200			{object}	ShiftResponse
// @Failure		400			{object}	ShiftResponse
// @Failure		404			{object}	ShiftResponse
// @Failure		500			{object}	ShiftResponse
// @Param			id			path		URIID				true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			earnings	body		EarningsEditable	true	"Earnings"
// @Router			/v1/shifts/{id}/earnings [post]
func RecordShiftEarnings(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ShiftResponse{
			Error: &e,
		})
		return
	}

	var data EarningsEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ShiftResponse{
			Error: &e,
		})
		return
	}

	earnings, err := money.Parse(data.Earnings)
	if err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, ShiftResponse{
			Error: &e,
		})
		return
	}

	allocations := make([]models.AllocationInput, 0, len(data.Allocations))
	for _, allocation := range data.Allocations {
		allocations = append(allocations, models.AllocationInput{
			GoalID: allocation.GoalID,
			Amount: allocation.Amount,
		})
	}

	shift, err := models.RecordEarnings(uri.ID.UUID, earnings, allocations)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ShiftResponse{
			Error: &e,
		})
		return
	}

	earningsRecordedCount.Inc()

	apiResource := newShift(c, shift)
	c.JSON(http.StatusOK, ShiftResponse{Data: &apiResource})
}

// @Summary		Preview earnings allocation
// @Description	Computes the proposed distribution of an earned amount across the user's active goals without writing anything. Allocations in the request body override the automatic distribution for their goals.
// @Tags			Shifts
// @Accept			json
// @Produce		json
// @Success		200			{object}	EarningsPreviewResponse
// @Failure		400			{object}	EarningsPreviewResponse
// @Failure		404			{object}	EarningsPreviewResponse
// @Failure		500			{object}	EarningsPreviewResponse
// @Param			id			path		URIID				true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			earnings	body		EarningsEditable	true	"Earnings"
// @Router			/v1/shifts/{id}/earnings/preview [post]
func PreviewShiftEarnings(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), EarningsPreviewResponse{
			Error: &e,
		})
		return
	}

	var shift models.Shift
	err = models.DB.First(&shift, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), EarningsPreviewResponse{
			Error: &e,
		})
		return
	}

	if shift.Earnings.Valid {
		e := models.ErrEarningsAlreadyRecorded.Error()
		c.JSON(http.StatusBadRequest, EarningsPreviewResponse{
			Error: &e,
		})
		return
	}

	if shift.Status == models.ShiftStatusCanceled || shift.Status == models.ShiftStatusNoShow {
		e := models.ErrShiftNotRecordable.Error()
		c.JSON(http.StatusBadRequest, EarningsPreviewResponse{
			Error: &e,
		})
		return
	}

	var data EarningsEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), EarningsPreviewResponse{
			Error: &e,
		})
		return
	}

	earnings, err := money.Parse(data.Earnings)
	if err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, EarningsPreviewResponse{
			Error: &e,
		})
		return
	}

	// The goals the distribution runs over, in the user's manual ordering
	var goals []models.Goal
	err = models.DB.
		Where(&models.Goal{UserID: shift.UserID}).
		Order("goals.order_index ASC, goals.name ASC").
		Find(&goals).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), EarningsPreviewResponse{
			Error: &e,
		})
		return
	}

	manual := make(map[uuid.UUID]decimal.Decimal, len(data.Allocations))
	for _, allocation := range data.Allocations {
		manual[allocation.GoalID] = manual[allocation.GoalID].Add(allocation.Amount)
	}

	proposals := planner.Propose(earnings, goals, manual)

	err = planner.Validate(earnings, proposals)
	if err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, EarningsPreviewResponse{
			Error: &e,
		})
		return
	}

	allocations := make([]EarningsPreviewAllocation, 0, len(proposals))
	sum := decimal.Zero
	for _, proposal := range proposals {
		allocations = append(allocations, EarningsPreviewAllocation{
			GoalID: proposal.GoalID,
			Amount: money.String(proposal.Amount),
		})
		sum = sum.Add(proposal.Amount)
	}

	c.JSON(http.StatusOK, EarningsPreviewResponse{
		Data: &EarningsPreview{
			Earnings:    money.String(earnings),
			Allocations: allocations,
			Remainder:   money.String(earnings.Sub(sum)),
		},
	})
}
