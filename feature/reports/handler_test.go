package reports_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"equipment-tracker/core/database"
	"equipment-tracker/core/middleware/auth"
	"equipment-tracker/core/storage"
	"equipment-tracker/core/storage/mocks"
	"equipment-tracker/feature/inventory/models"
	"equipment-tracker/feature/reports"

	"github.com/gofiber/fiber/v2"
	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupApp(t *testing.T, client storage.Client) *fiber.App {
	t.Helper()
	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Equipment{}, &models.CheckoutRecord{}))

	feature := reports.NewFeature(db, client, storage.Config{Bucket: "equipment-exports"}, zap.NewNop())
	app := fiber.New()
	app.Use(auth.New(auth.Config{AdminKey: "admin-secret"}))
	require.NoError(t, feature.Load(app))
	return app
}

func do(t *testing.T, app *fiber.App, method, path, key string) (int, []byte) {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	if key != "" {
		req.Header.Set(auth.Header, key)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, body
}

func TestHandler_RequiresAdmin(t *testing.T) {
	app := setupApp(t, new(mocks.Client))

	for _, path := range []string{"/api/admin/dashboard", "/api/admin/exports"} {
		status, _ := do(t, app, http.MethodGet, path, "")
		assert.Equal(t, http.StatusUnauthorized, status, path)
	}
}

func TestHandler_Dashboard(t *testing.T) {
	app := setupApp(t, new(mocks.Client))

	status, body := do(t, app, http.MethodGet, "/api/admin/dashboard", "admin-secret")
	require.Equal(t, http.StatusOK, status, string(body))

	var d reports.Dashboard
	require.NoError(t, json.Unmarshal(body, &d))
	assert.Zero(t, d.TotalItems)
	assert.NotNil(t, d.ByCategory)
}

func TestHandler_Export(t *testing.T) {
	client := new(mocks.Client)
	app := setupApp(t, client)

	client.On("BucketExists", mock.Anything, "equipment-exports").Return(true, nil)
	client.On("PutObject", mock.Anything, "equipment-exports", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(minio.UploadInfo{}, nil)

	status, body := do(t, app, http.MethodPost, "/api/admin/exports/history?search=mic", "admin-secret")
	require.Equal(t, http.StatusCreated, status, string(body))

	var info reports.ExportInfo
	require.NoError(t, json.Unmarshal(body, &info))
	assert.Contains(t, info.Key, "exports/history-")
	client.AssertExpectations(t)
}

func TestHandler_ExportStorageDown(t *testing.T) {
	client := new(mocks.Client)
	app := setupApp(t, client)

	client.On("BucketExists", mock.Anything, "equipment-exports").Return(false, assert.AnError)

	status, _ := do(t, app, http.MethodPost, "/api/admin/exports/history", "admin-secret")
	assert.Equal(t, http.StatusInternalServerError, status)
}
