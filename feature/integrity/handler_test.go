package integrity

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"equipment-tracker/core/middleware/auth"
	"equipment-tracker/core/storage/mocks"
	"equipment-tracker/feature/inventory/models"

	"github.com/gofiber/fiber/v2"
	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const adminKey = "admin-secret"

func setupTestApp(t *testing.T) (*fiber.App, *gorm.DB, *mocks.Client) {
	t.Helper()
	svc, db, mockClient := setupService(t)
	app := fiber.New()
	app.Use(auth.New(auth.Config{AdminKey: adminKey}))
	NewHandler(svc).RegisterRoutes(app)
	return app, db, mockClient
}

func get(t *testing.T, app *fiber.App, path string) (int, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.Header.Set(auth.Header, adminKey)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var body map[string]any
	require.NoError(t, json.Unmarshal(raw, &body), string(raw))
	return resp.StatusCode, body
}

func TestHandler_RequiresAdmin(t *testing.T) {
	app, _, _ := setupTestApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/admin/integrity/ledger", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestHandleLedgerCheck(t *testing.T) {
	app, db, _ := setupTestApp(t)
	e := driftedItem(t, db)

	status, body := get(t, app, "/api/admin/integrity/ledger")
	require.Equal(t, http.StatusOK, status)
	summary := body["summary"].(map[string]any)
	assert.Equal(t, float64(1), summary["drifted"])
	assert.Equal(t, float64(0), body["executed"])

	status, body = get(t, app, "/api/admin/integrity/ledger?repair=true")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, float64(1), body["executed"])

	var repaired models.Equipment
	require.NoError(t, db.First(&repaired, "id = ?", e.ID).Error)
	assert.Equal(t, 2, repaired.QuantityAvailable)

	status, body = get(t, app, "/api/admin/integrity/ledger/"+e.ID)
	require.Equal(t, http.StatusOK, status)
	assert.Empty(t, body["findings"])
}

func TestHandleServerCheck(t *testing.T) {
	app, _, _ := setupTestApp(t)

	status, body := get(t, app, "/api/admin/integrity/server")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, true, body["matched"])
}

func TestHandleStorageCheck(t *testing.T) {
	app, _, mockClient := setupTestApp(t)
	mockClient.On("BucketExists", mock.Anything, "test-bucket").Return(true, nil)
	mockClient.On("ListObjects", mock.Anything, "test-bucket", mock.Anything).
		Return([]minio.ObjectInfo{{Key: "exports/history-a.json"}})

	status, body := get(t, app, "/api/admin/integrity/storage")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, float64(1), body["exports"])
	assert.Equal(t, "ok", body["status"])
}

func TestHandleIntegrityCheck(t *testing.T) {
	app, _, mockClient := setupTestApp(t)
	mockClient.On("BucketExists", mock.Anything, "test-bucket").Return(false, assert.AnError)

	status, body := get(t, app, "/api/admin/integrity")
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, "ledger")
	assert.Equal(t, true, body["server"].(map[string]any)["matched"])
	assert.Equal(t, map[string]any{"status": "error", "error": "An unexpected error occurred"}, body["storage"])
}
