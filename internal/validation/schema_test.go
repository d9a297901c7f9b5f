package validation

import (
	"strings"
	"testing"

	"adboard/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func uintPtr(u uint) *uint { return &u }

func fieldNames(err *models.AppError) []string {
	names := make([]string, 0, len(err.Fields))
	for _, f := range err.Fields {
		names = append(names, f.Field)
	}
	return names
}

func TestCreateUserRequest_Validate(t *testing.T) {
	tests := []struct {
		name          string
		req           CreateUserRequest
		expectedError bool
		failingFields []string
	}{
		{
			name: "Valid payload",
			req:  CreateUserRequest{Name: strPtr("alice"), Password: strPtr("longenough1")},
		},
		{
			name: "Password at lower bound",
			req:  CreateUserRequest{Name: strPtr("alice"), Password: strPtr("12345678")},
		},
		{
			name: "Password at upper bound",
			req:  CreateUserRequest{Name: strPtr("alice"), Password: strPtr(strings.Repeat("p", 100))},
		},
		{
			name: "Name at upper bound",
			req:  CreateUserRequest{Name: strPtr(strings.Repeat("n", 100)), Password: strPtr("longenough1")},
		},
		{
			name: "Multibyte name counted in characters not bytes",
			req:  CreateUserRequest{Name: strPtr(strings.Repeat("ж", 100)), Password: strPtr("longenough1")},
		},
		{
			name: "Multibyte password at lower bound",
			req:  CreateUserRequest{Name: strPtr("женя"), Password: strPtr(strings.Repeat("ж", 8))},
		},
		{
			name:          "Missing both fields",
			req:           CreateUserRequest{},
			expectedError: true,
			failingFields: []string{"name", "password"},
		},
		{
			name:          "Password too short",
			req:           CreateUserRequest{Name: strPtr("alice"), Password: strPtr("short")},
			expectedError: true,
			failingFields: []string{"password"},
		},
		{
			name:          "Password too long",
			req:           CreateUserRequest{Name: strPtr("alice"), Password: strPtr(strings.Repeat("p", 101))},
			expectedError: true,
			failingFields: []string{"password"},
		},
		{
			name:          "Name too long",
			req:           CreateUserRequest{Name: strPtr(strings.Repeat("n", 101)), Password: strPtr("longenough1")},
			expectedError: true,
			failingFields: []string{"name"},
		},
		{
			name:          "Multibyte name over the character bound",
			req:           CreateUserRequest{Name: strPtr(strings.Repeat("ж", 101)), Password: strPtr("longenough1")},
			expectedError: true,
			failingFields: []string{"name"},
		},
		{
			name:          "Multibyte password under the character bound",
			req:           CreateUserRequest{Name: strPtr("женя"), Password: strPtr(strings.Repeat("ж", 7))},
			expectedError: true,
			failingFields: []string{"password"},
		},
		{
			name:          "Every violation reported at once",
			req:           CreateUserRequest{Name: strPtr(strings.Repeat("n", 101)), Password: strPtr("short")},
			expectedError: true,
			failingFields: []string{"name", "password"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if !tt.expectedError {
				assert.Nil(t, err)
				return
			}
			require.NotNil(t, err)
			assert.Equal(t, "VALIDATION_ERROR", err.Code)
			assert.ElementsMatch(t, tt.failingFields, fieldNames(err))
		})
	}
}

func TestUpdateUserRequest_Validate(t *testing.T) {
	t.Run("Empty payload is valid", func(t *testing.T) {
		req := UpdateUserRequest{}
		assert.Nil(t, req.Validate())
	})

	t.Run("Rules apply only to present fields", func(t *testing.T) {
		req := UpdateUserRequest{Name: strPtr("bob")}
		assert.Nil(t, req.Validate())

		req = UpdateUserRequest{Password: strPtr("short")}
		err := req.Validate()
		require.NotNil(t, err)
		assert.ElementsMatch(t, []string{"password"}, fieldNames(err))
	})

	t.Run("Name too long", func(t *testing.T) {
		req := UpdateUserRequest{Name: strPtr(strings.Repeat("n", 101))}
		err := req.Validate()
		require.NotNil(t, err)
		assert.ElementsMatch(t, []string{"name"}, fieldNames(err))
	})
}

func TestCreateAdvertisementRequest_Validate(t *testing.T) {
	t.Run("Valid payload", func(t *testing.T) {
		req := CreateAdvertisementRequest{Header: strPtr("Sell bike"), OwnerID: uintPtr(1)}
		assert.Nil(t, req.Validate())
	})

	t.Run("Desc is optional", func(t *testing.T) {
		req := CreateAdvertisementRequest{Header: strPtr("Sell bike"), Desc: strPtr("barely used"), OwnerID: uintPtr(1)}
		assert.Nil(t, req.Validate())
	})

	t.Run("Missing required fields aggregated", func(t *testing.T) {
		req := CreateAdvertisementRequest{}
		err := req.Validate()
		require.NotNil(t, err)
		assert.ElementsMatch(t, []string{"header", "owner_id"}, fieldNames(err))
	})
}

func TestUpdateAdvertisementRequest_Validate(t *testing.T) {
	t.Run("Header stays required on update", func(t *testing.T) {
		req := UpdateAdvertisementRequest{Desc: strPtr("new description")}
		err := req.Validate()
		require.NotNil(t, err)
		assert.ElementsMatch(t, []string{"header"}, fieldNames(err))
	})

	t.Run("Header alone is valid", func(t *testing.T) {
		req := UpdateAdvertisementRequest{Header: strPtr("Updated")}
		assert.Nil(t, req.Validate())
	})
}
