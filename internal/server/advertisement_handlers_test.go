package server

import (
	"fmt"
	"net/http"
	"testing"

	"adboard/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func createTestUser(t *testing.T, app *fiber.App, name string) int {
	t.Helper()

	status, body := doJSON(t, app, http.MethodPost, "/users/", map[string]any{
		"name": name, "password": "longenough1",
	})
	require.Equal(t, fiber.StatusCreated, status)
	return int(body["user_id"].(float64))
}

func TestCreateAdvertisement(t *testing.T) {
	app, db := setupTestApp(t)
	ownerID := createTestUser(t, app, "alice")

	tests := []struct {
		name           string
		requestBody    map[string]any
		expectedStatus int
		expectedError  bool
	}{
		{
			name:           "Valid advertisement",
			requestBody:    map[string]any{"header": "Sell bike", "owner_id": ownerID},
			expectedStatus: fiber.StatusCreated,
		},
		{
			name:           "With description",
			requestBody:    map[string]any{"header": "Sell car", "desc": "runs fine", "owner_id": ownerID},
			expectedStatus: fiber.StatusCreated,
		},
		{
			name:           "Missing header and owner",
			requestBody:    map[string]any{"desc": "orphan"},
			expectedStatus: fiber.StatusBadRequest,
			expectedError:  true,
		},
		{
			name:           "Unknown owner",
			requestBody:    map[string]any{"header": "Sell boat", "owner_id": 99999},
			expectedStatus: fiber.StatusNotFound,
			expectedError:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := doJSON(t, app, http.MethodPost, "/advertisements/", tt.requestBody)
			assert.Equal(t, tt.expectedStatus, status)

			if tt.expectedError {
				assert.NotNil(t, body["error"])
			} else {
				assert.Equal(t, tt.requestBody["header"], body["advertisement_header"])
			}
		})
	}

	var count int64
	db.Model(&models.Advertisement{}).Count(&count)
	assert.Equal(t, int64(2), count)

	// the optional description round-trips as null when absent
	var adv models.Advertisement
	require.NoError(t, db.First(&adv, "header = ?", "Sell bike").Error)
	assert.Nil(t, adv.Desc)
}

func TestGetAdvertisement(t *testing.T) {
	app, _ := setupTestApp(t)
	ownerID := createTestUser(t, app, "alice")

	status, _ := doJSON(t, app, http.MethodPost, "/advertisements/", map[string]any{
		"header": "Sell bike", "owner_id": ownerID,
	})
	require.Equal(t, fiber.StatusCreated, status)

	t.Run("Existing advertisement", func(t *testing.T) {
		status, body := doJSON(t, app, http.MethodGet, advertisementPath(1), nil)
		assert.Equal(t, fiber.StatusOK, status)
		assert.Equal(t, float64(1), body["advertisement_id"])
		assert.Equal(t, "Sell bike", body["header"])
		assert.Equal(t, float64(ownerID), body["owner_id"])
	})

	t.Run("Non-existent advertisement", func(t *testing.T) {
		status, body := doJSON(t, app, http.MethodGet, "/advertisements/99999", nil)
		assert.Equal(t, fiber.StatusNotFound, status)
		assert.NotNil(t, body["error"])
	})
}

func TestUpdateAdvertisement(t *testing.T) {
	app, db := setupTestApp(t)
	ownerID := createTestUser(t, app, "alice")

	status, _ := doJSON(t, app, http.MethodPost, "/advertisements/", map[string]any{
		"header": "Sell bike", "desc": "red frame", "owner_id": ownerID,
	})
	require.Equal(t, fiber.StatusCreated, status)

	t.Run("Header only keeps description", func(t *testing.T) {
		status, body := doJSON(t, app, http.MethodPatch, advertisementPath(1), map[string]any{"header": "Sell bike (price drop)"})
		assert.Equal(t, fiber.StatusOK, status)
		assert.Equal(t, float64(1), body["adv_id"])

		var adv models.Advertisement
		require.NoError(t, db.First(&adv, 1).Error)
		assert.Equal(t, "Sell bike (price drop)", adv.Header)
		require.NotNil(t, adv.Desc)
		assert.Equal(t, "red frame", *adv.Desc)
		assert.Equal(t, uint(ownerID), adv.OwnerID)
	})

	t.Run("Header is required even on update", func(t *testing.T) {
		status, body := doJSON(t, app, http.MethodPatch, advertisementPath(1), map[string]any{"desc": "only desc"})
		assert.Equal(t, fiber.StatusBadRequest, status)
		assert.NotNil(t, body["error"])
	})

	t.Run("Non-existent advertisement", func(t *testing.T) {
		status, _ := doJSON(t, app, http.MethodPatch, "/advertisements/99999", map[string]any{"header": "ghost"})
		assert.Equal(t, fiber.StatusNotFound, status)
	})
}

func TestDeleteAdvertisement(t *testing.T) {
	app, _ := setupTestApp(t)
	ownerID := createTestUser(t, app, "alice")

	status, _ := doJSON(t, app, http.MethodPost, "/advertisements/", map[string]any{
		"header": "Sell bike", "owner_id": ownerID,
	})
	require.Equal(t, fiber.StatusCreated, status)

	t.Run("Existing advertisement", func(t *testing.T) {
		status, body := doJSON(t, app, http.MethodDelete, advertisementPath(1), nil)
		assert.Equal(t, fiber.StatusOK, status)
		assert.Equal(t, fmt.Sprintf("advertisement %d is deleted", 1), body["status"])
	})

	t.Run("Already deleted", func(t *testing.T) {
		status, _ := doJSON(t, app, http.MethodDelete, advertisementPath(1), nil)
		assert.Equal(t, fiber.StatusNotFound, status)
	})
}

func TestDeleteUserCascadesAdvertisements(t *testing.T) {
	app, db := setupTestApp(t)
	ownerID := createTestUser(t, app, "alice")
	keeperID := createTestUser(t, app, "bob")

	for _, header := range []string{"Sell bike", "Sell car"} {
		status, _ := doJSON(t, app, http.MethodPost, "/advertisements/", map[string]any{
			"header": header, "owner_id": ownerID,
		})
		require.Equal(t, fiber.StatusCreated, status)
	}
	status, _ := doJSON(t, app, http.MethodPost, "/advertisements/", map[string]any{
		"header": "Keep me", "owner_id": keeperID,
	})
	require.Equal(t, fiber.StatusCreated, status)

	var owned []models.Advertisement
	require.NoError(t, db.Where("owner_id = ?", ownerID).Find(&owned).Error)
	require.Len(t, owned, 2)

	status, _ = doJSON(t, app, http.MethodDelete, userPath(ownerID), nil)
	require.Equal(t, fiber.StatusOK, status)

	// every previously owned advertisement is gone
	for _, adv := range owned {
		status, _ := doJSON(t, app, http.MethodGet, advertisementPath(int(adv.ID)), nil)
		assert.Equal(t, fiber.StatusNotFound, status)
	}

	// other owners' advertisements survive
	var remaining []models.Advertisement
	require.NoError(t, db.Find(&remaining).Error)
	require.Len(t, remaining, 1)
	assert.Equal(t, "Keep me", remaining[0].Header)

	var missing models.Advertisement
	err := db.Where("owner_id = ?", ownerID).First(&missing).Error
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
