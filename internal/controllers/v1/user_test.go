package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	v1 "github.com/altax/OzonGoal-sub001/internal/controllers/v1"
	"github.com/altax/OzonGoal-sub001/test"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestUsersOptions verifies that OPTIONS requests are handled correctly.
func (suite *TestSuiteStandard) TestUsersOptions() {
	tests := []struct {
		name   string
		id     string // path at the users endpoint to test
		status int    // Expected HTTP status code
	}{
		{"No user with this ID", uuid.New().String(), http.StatusNotFound},
		{"Not a valid UUID", "NotParseableAsUUID", http.StatusBadRequest},
		{"User exists", createTestUser(suite.T(), v1.UserEditable{}).Data.ID.String(), http.StatusNoContent},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			path := fmt.Sprintf("%s/%s", "http://example.com/v1/users", tt.id)
			r := test.Request(t, http.MethodOptions, path, "")
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.status == http.StatusNoContent {
				assert.Equal(t, "GET, PATCH", r.Header().Get("allow"))
			}
		})
	}
}

func (suite *TestSuiteStandard) TestUsersCreate() {
	t := suite.T()

	r := test.Request(t, http.MethodPost, "http://example.com/v1/users", []v1.UserEditable{
		{Name: "Алексей", Note: "Main account"},
	})
	test.AssertHTTPStatus(t, &r, http.StatusCreated)

	var response v1.UserCreateResponse
	test.DecodeResponse(t, &r, &response)

	require.Len(t, response.Data, 1)
	data := response.Data[0].Data
	require.NotNil(t, data)
	assert.Equal(t, "Алексей", data.Name)
	assert.Equal(t, "0.00", data.Balance)
	assert.NotEmpty(t, data.Links.Self)
}

func (suite *TestSuiteStandard) TestUsersCreateInvalidBody() {
	t := suite.T()

	r := test.Request(t, http.MethodPost, "http://example.com/v1/users", `{ Invalid request": Body }`)
	test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestUsersGetFilter() {
	t := suite.T()

	_ = createTestUser(t, v1.UserEditable{Name: "Алексей", Note: "Warehouse"})
	_ = createTestUser(t, v1.UserEditable{Name: "Мария", Note: "Warehouse"})
	_ = createTestUser(t, v1.UserEditable{Name: "Иван"})

	tests := []struct {
		name  string
		query string
		len   int
	}{
		{"Name single match", "name=Мария", 1},
		{"Name no match", "name=Пётр", 0},
		{"Search note", "search=warehouse", 2},
		{"Limit", "limit=2", 2},
		{"Offset and limit", "offset=2&limit=2", 1},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/users?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.UserListResponse
			test.DecodeResponse(t, &r, &response)
			assert.Len(t, response.Data, tt.len)
		})
	}
}

func (suite *TestSuiteStandard) TestUsersUpdate() {
	t := suite.T()

	user := createTestUser(t, v1.UserEditable{Name: "Алексей"})

	r := test.Request(t, http.MethodPatch, user.Data.Links.Self, map[string]any{
		"name": "Алексей П.",
	})
	test.AssertHTTPStatus(t, &r, http.StatusOK)

	var response v1.UserResponse
	test.DecodeResponse(t, &r, &response)
	assert.Equal(t, "Алексей П.", response.Data.Name)
}

func (suite *TestSuiteStandard) TestUsersUpdateBalance() {
	t := suite.T()

	user := createTestUser(t, v1.UserEditable{})

	r := test.Request(t, http.MethodPatch, user.Data.Links.Self, map[string]any{
		"balance": "270.50",
	})
	test.AssertHTTPStatus(t, &r, http.StatusOK)

	var response v1.UserResponse
	test.DecodeResponse(t, &r, &response)
	assert.Equal(t, "270.50", response.Data.Balance)

	// The balance must never become negative
	r = test.Request(t, http.MethodPatch, user.Data.Links.Self, map[string]any{
		"balance": "-1",
	})
	test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
}

// TestUsersNoDelete verifies that users cannot be deleted.
func (suite *TestSuiteStandard) TestUsersNoDelete() {
	t := suite.T()

	user := createTestUser(t, v1.UserEditable{})

	r := test.Request(t, http.MethodDelete, user.Data.Links.Self, "")
	test.AssertHTTPStatus(t, &r, http.StatusMethodNotAllowed)
}
