package reports

import (
	"bytes"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"servihub-backend/testutils"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	testutils.InitTestMain()

	log.SetOutput(io.Discard)

	exitCode := m.Run()

	log.SetOutput(os.Stdout)

	os.Exit(exitCode)
}

func reportColumns() []string {
	return []string{"id", "type", "target_id", "reason", "description", "submitted_by", "resolved_by", "resolved_at", "created_at"}
}

func userColumns() []string {
	return []string{"id", "email", "name", "role"}
}

func TestCreateReport_Success(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "reports" (.+) RETURNING "id"`).
		WillReturnRows(mock.NewRows([]string{"id"}).AddRow(int64(1)))
	mock.ExpectCommit()

	r := testutils.SetupTestRouter()
	r.POST("/api/reports", CreateReport)

	before := time.Now()

	reportData := map[string]interface{}{
		"type":         "review",
		"target_id":    101,
		"reason":       "Spam content",
		"submitted_by": 2,
	}
	jsonData, _ := json.Marshal(reportData)

	req, _ := http.NewRequest(http.MethodPost, "/api/reports", bytes.NewBuffer(jsonData))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	after := time.Now()

	assert.Equal(t, http.StatusCreated, resp.Code)

	var response map[string]interface{}
	json.Unmarshal(resp.Body.Bytes(), &response)
	assert.Equal(t, true, response["success"])

	data := response["data"].(map[string]interface{})
	assert.Equal(t, "1", data["id"])
	assert.Equal(t, "review", data["type"])
	assert.Equal(t, "101", data["target_id"])
	assert.Equal(t, "Spam content", data["reason"])
	assert.Equal(t, "2", data["submitted_by"])
	assert.Nil(t, data["resolved_by"])
	assert.Nil(t, data["resolved_at"])

	createdAt, err := time.Parse(time.RFC3339Nano, data["created_at"].(string))
	assert.NoError(t, err)
	assert.False(t, createdAt.Before(before.Add(-time.Second)))
	assert.False(t, createdAt.After(after.Add(time.Second)))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateReport_MissingReason(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	r := testutils.SetupTestRouter()
	r.POST("/api/reports", CreateReport)

	reportData := map[string]interface{}{
		"type":         "review",
		"target_id":    101,
		"submitted_by": 2,
	}
	jsonData, _ := json.Marshal(reportData)

	req, _ := http.NewRequest(http.MethodPost, "/api/reports", bytes.NewBuffer(jsonData))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusBadRequest, resp.Code)

	var response map[string]interface{}
	json.Unmarshal(resp.Body.Bytes(), &response)
	assert.Equal(t, false, response["success"])
	assert.Equal(t, "Missing required fields", response["error"])

	// aucune insertion ne doit avoir eu lieu
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateReport_InvalidType(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	r := testutils.SetupTestRouter()
	r.POST("/api/reports", CreateReport)

	reportData := map[string]interface{}{
		"type":         "spam",
		"target_id":    101,
		"reason":       "Spam content",
		"submitted_by": 2,
	}
	jsonData, _ := json.Marshal(reportData)

	req, _ := http.NewRequest(http.MethodPost, "/api/reports", bytes.NewBuffer(jsonData))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusBadRequest, resp.Code)

	var response map[string]interface{}
	json.Unmarshal(resp.Body.Bytes(), &response)
	assert.Equal(t, "Invalid report type", response["error"])

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetAllReports_SerializesBigIDs(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	createdAt := time.Now()

	reportRows := mock.NewRows(reportColumns()).
		AddRow(int64(9223372036854775800), "review", int64(101), "Spam content", nil, int64(42), nil, nil, createdAt)

	mock.ExpectQuery(`SELECT \* FROM "reports" ORDER BY created_at DESC`).
		WillReturnRows(reportRows)

	userRows := mock.NewRows(userColumns()).
		AddRow(int64(42), "user1@servihub.com", "User One", "user")

	mock.ExpectQuery(`SELECT \* FROM "users"`).
		WillReturnRows(userRows)

	r := testutils.SetupTestRouter()
	r.GET("/api/reports", GetAllReports)

	req, _ := http.NewRequest(http.MethodGet, "/api/reports", nil)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)

	var response map[string]interface{}
	json.Unmarshal(resp.Body.Bytes(), &response)
	assert.Equal(t, true, response["success"])

	data := response["data"].([]interface{})
	assert.Len(t, data, 1)

	report := data[0].(map[string]interface{})
	assert.Equal(t, "9223372036854775800", report["id"])
	assert.Equal(t, "101", report["target_id"])
	assert.Equal(t, "42", report["submitted_by"])
	assert.Nil(t, report["resolved_by"])
	assert.Nil(t, report["resolver"])

	submitter := report["submitter"].(map[string]interface{})
	assert.Equal(t, "42", submitter["id"])
	assert.Equal(t, "user1@servihub.com", submitter["email"])

	// l'identifiant ne doit jamais transiter comme nombre JSON
	assert.Contains(t, resp.Body.String(), `"9223372036854775800"`)
}

func TestGetReportByID_InvalidID(t *testing.T) {
	_, _, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	r := testutils.SetupTestRouter()
	r.GET("/api/reports/:id", GetReportByID)

	req, _ := http.NewRequest(http.MethodGet, "/api/reports/not-a-number", nil)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusBadRequest, resp.Code)

	var response map[string]interface{}
	json.Unmarshal(resp.Body.Bytes(), &response)
	assert.Equal(t, "Invalid report ID", response["error"])
}

func TestGetReportByID_NotFound(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT \* FROM "reports"`).
		WillReturnRows(mock.NewRows(reportColumns()))

	r := testutils.SetupTestRouter()
	r.GET("/api/reports/:id", GetReportByID)

	req, _ := http.NewRequest(http.MethodGet, "/api/reports/999", nil)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusNotFound, resp.Code)

	var response map[string]interface{}
	json.Unmarshal(resp.Body.Bytes(), &response)
	assert.Equal(t, false, response["success"])
	assert.Equal(t, "Report not found", response["error"])
}

func TestResolveReport_SetsResolverAndTimestampTogether(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	resolvedAt := time.Now()

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "reports" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	reportRows := mock.NewRows(reportColumns()).
		AddRow(int64(7), "review", int64(101), "Spam content", nil, int64(2), int64(1), resolvedAt, resolvedAt.Add(-time.Hour))

	mock.ExpectQuery(`SELECT \* FROM "reports"`).
		WillReturnRows(reportRows)

	// les deux préchargements consomment chacun une requête users; chaque
	// réponse contient les deux lignes, GORM rattache par identifiant
	for i := 0; i < 2; i++ {
		userRows := mock.NewRows(userColumns()).
			AddRow(int64(1), "admin@servihub.com", "Admin User", "admin").
			AddRow(int64(2), "user1@servihub.com", "User One", "user")
		mock.ExpectQuery(`SELECT \* FROM "users"`).
			WillReturnRows(userRows)
	}

	r := testutils.SetupTestRouter()
	r.PATCH("/api/reports/:id", ResolveReport)

	jsonData, _ := json.Marshal(map[string]interface{}{"resolved_by": 1})

	req, _ := http.NewRequest(http.MethodPatch, "/api/reports/7", bytes.NewBuffer(jsonData))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)

	var response map[string]interface{}
	json.Unmarshal(resp.Body.Bytes(), &response)
	assert.Equal(t, true, response["success"])

	data := response["data"].(map[string]interface{})
	assert.Equal(t, "7", data["id"])
	assert.Equal(t, "1", data["resolved_by"])
	assert.NotNil(t, data["resolved_at"])

	resolver := data["resolver"].(map[string]interface{})
	assert.Equal(t, "1", resolver["id"])
	assert.Equal(t, "admin@servihub.com", resolver["email"])

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestResolveReport_NotFound(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "reports" SET`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	r := testutils.SetupTestRouter()
	r.PATCH("/api/reports/:id", ResolveReport)

	jsonData, _ := json.Marshal(map[string]interface{}{"resolved_by": 1})

	req, _ := http.NewRequest(http.MethodPatch, "/api/reports/999", bytes.NewBuffer(jsonData))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusNotFound, resp.Code)

	var response map[string]interface{}
	json.Unmarshal(resp.Body.Bytes(), &response)
	assert.Equal(t, false, response["success"])
	assert.Equal(t, "Report not found", response["error"])
}

func TestResolveReport_MissingResolvedBy(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	r := testutils.SetupTestRouter()
	r.PATCH("/api/reports/:id", ResolveReport)

	req, _ := http.NewRequest(http.MethodPatch, "/api/reports/7", bytes.NewBufferString(`{}`))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusBadRequest, resp.Code)

	var response map[string]interface{}
	json.Unmarshal(resp.Body.Bytes(), &response)
	assert.Equal(t, false, response["success"])
	assert.Contains(t, response["error"], "Invalid request body")

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteReport_Twice(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "reports"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "reports"`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	r := testutils.SetupTestRouter()
	r.DELETE("/api/reports/:id", DeleteReport)

	req, _ := http.NewRequest(http.MethodDelete, "/api/reports/7", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)

	var first map[string]interface{}
	json.Unmarshal(resp.Body.Bytes(), &first)
	assert.Equal(t, true, first["success"])
	assert.Equal(t, "Report deleted successfully", first["message"])

	req2, _ := http.NewRequest(http.MethodDelete, "/api/reports/7", nil)
	resp2 := httptest.NewRecorder()
	r.ServeHTTP(resp2, req2)

	assert.Equal(t, http.StatusNotFound, resp2.Code)

	var second map[string]interface{}
	json.Unmarshal(resp2.Body.Bytes(), &second)
	assert.Equal(t, false, second["success"])
	assert.Equal(t, "Report not found", second["error"])

	assert.NoError(t, mock.ExpectationsWereMet())
}
