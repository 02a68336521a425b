package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"staff-attendance/internal/middleware"
	"staff-attendance/internal/models"
	"staff-attendance/internal/notify"
	"staff-attendance/internal/repositories"
	"staff-attendance/internal/services"
	"staff-attendance/internal/storage"
)

const testSecret = "test_secret"

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo := repositories.NewCollectionRepository(storage.NewMemory())
	employeeService := services.NewEmployeeService(repo, notify.Nop{})
	authService, err := services.NewAuthService("admin@example.com", "admin", testSecret)
	if err != nil {
		t.Fatalf("NewAuthService failed: %v", err)
	}

	authHandler := NewAuthHandler(authService)
	appHandler := NewAppHandler(employeeService)

	router := gin.New()
	api := router.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/login", authHandler.Login)
			auth.POST("/logout", authHandler.Logout)
			auth.POST("/reset-password", authHandler.ResetPassword)
		}

		api.GET("/employees", appHandler.ListEmployees)
		api.GET("/time-records", appHandler.ListTimeRecords)
		api.POST("/time-records/check-in", appHandler.CheckIn)
		api.POST("/time-records/check-out", appHandler.CheckOut)
		api.GET("/time-stats", appHandler.GetTimeStats)
		api.GET("/leave-requests", appHandler.ListLeaveRequests)
		api.POST("/leave-requests", appHandler.SubmitLeaveRequest)

		admin := api.Group("/admin")
		admin.Use(middleware.JWTAuth(testSecret), middleware.AdminOnly())
		{
			admin.GET("/summary", appHandler.GetSummary)
			admin.POST("/employees", appHandler.CreateEmployee)
			admin.GET("/time-stats", appHandler.GetEmployeeStats)
			admin.PUT("/leave-requests/:id/status", appHandler.UpdateLeaveRequestStatus)
			admin.GET("/reports/export", appHandler.ExportReport)
		}
	}
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshaling request body: %v", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func loginAdmin(t *testing.T, router *gin.Engine) string {
	t.Helper()
	w := doJSON(t, router, http.MethodPost, "/api/auth/login", "", gin.H{
		"email":    "admin@example.com",
		"password": "admin",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("login status = %d, body %s", w.Code, w.Body)
	}
	var resp struct {
		Token string      `json:"token"`
		User  models.User `json:"user"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding login response: %v", err)
	}
	if resp.User.Role != models.RoleAdmin {
		t.Fatalf("login role = %q, want admin", resp.User.Role)
	}
	return resp.Token
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/auth/login", "", gin.H{
		"email":    "admin@example.com",
		"password": "nope",
	})
	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
}

func TestAdminRoutesRequireToken(t *testing.T) {
	router := newTestRouter(t)

	if w := doJSON(t, router, http.MethodGet, "/api/admin/summary", "", nil); w.Code != http.StatusUnauthorized {
		t.Errorf("no token: status = %d, want 401", w.Code)
	}
	if w := doJSON(t, router, http.MethodGet, "/api/admin/summary", "not-a-token", nil); w.Code != http.StatusUnauthorized {
		t.Errorf("garbage token: status = %d, want 401", w.Code)
	}

	token := loginAdmin(t, router)
	if w := doJSON(t, router, http.MethodGet, "/api/admin/summary", token, nil); w.Code != http.StatusOK {
		t.Errorf("valid token: status = %d, want 200", w.Code)
	}
}

func TestCheckInCheckOutFlow(t *testing.T) {
	router := newTestRouter(t)
	token := loginAdmin(t, router)

	w := doJSON(t, router, http.MethodPost, "/api/admin/employees", token, gin.H{
		"name":       "Alice",
		"position":   "Barista",
		"hourlyRate": 25000,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create employee status = %d, body %s", w.Code, w.Body)
	}
	var employee models.Employee
	json.Unmarshal(w.Body.Bytes(), &employee)

	// Check-out before any check-in is a no-op.
	w = doJSON(t, router, http.MethodPost, "/api/time-records/check-out", "", gin.H{"employeeId": employee.ID})
	if w.Code != http.StatusNotFound {
		t.Errorf("check-out with no open record: status = %d, want 404", w.Code)
	}

	w = doJSON(t, router, http.MethodPost, "/api/time-records/check-in", "", gin.H{"employeeId": employee.ID})
	if w.Code != http.StatusCreated {
		t.Fatalf("check-in status = %d, body %s", w.Code, w.Body)
	}

	w = doJSON(t, router, http.MethodPost, "/api/time-records/check-out", "", gin.H{"employeeId": employee.ID})
	if w.Code != http.StatusOK {
		t.Fatalf("check-out status = %d, body %s", w.Code, w.Body)
	}
	var record models.TimeRecord
	json.Unmarshal(w.Body.Bytes(), &record)
	if record.Open() {
		t.Error("record still open after check-out")
	}

	w = doJSON(t, router, http.MethodGet, "/api/time-records?employeeId="+employee.ID, "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list records status = %d", w.Code)
	}
	var listed []models.TimeRecord
	json.Unmarshal(w.Body.Bytes(), &listed)
	if len(listed) != 1 {
		t.Errorf("records = %d, want 1", len(listed))
	}
}

func TestLeaveRequestApprovalFlow(t *testing.T) {
	router := newTestRouter(t)
	token := loginAdmin(t, router)

	w := doJSON(t, router, http.MethodPost, "/api/leave-requests", "", gin.H{
		"employeeId": "e1",
		"startDate":  "2026-04-01",
		"endDate":    "2026-04-05",
		"reason":     "family visit",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("submit status = %d, body %s", w.Code, w.Body)
	}
	var request models.LeaveRequest
	json.Unmarshal(w.Body.Bytes(), &request)
	if request.Status != models.LeaveStatusPending {
		t.Errorf("status = %q, want pending", request.Status)
	}

	// Status updates are admin-only.
	w = doJSON(t, router, http.MethodPut, "/api/admin/leave-requests/"+request.ID+"/status", "", gin.H{"status": "approved"})
	if w.Code != http.StatusUnauthorized {
		t.Errorf("unauthenticated update: status = %d, want 401", w.Code)
	}

	w = doJSON(t, router, http.MethodPut, "/api/admin/leave-requests/"+request.ID+"/status", token, gin.H{"status": "approved"})
	if w.Code != http.StatusOK {
		t.Fatalf("approve status = %d, body %s", w.Code, w.Body)
	}

	w = doJSON(t, router, http.MethodPut, "/api/admin/leave-requests/"+request.ID+"/status", token, gin.H{"status": "cancelled"})
	if w.Code != http.StatusBadRequest {
		t.Errorf("invalid status accepted: %d", w.Code)
	}

	w = doJSON(t, router, http.MethodPut, "/api/admin/leave-requests/unknown/status", token, gin.H{"status": "rejected"})
	if w.Code != http.StatusNotFound {
		t.Errorf("unknown id: status = %d, want 404", w.Code)
	}
}

func TestReportExport(t *testing.T) {
	router := newTestRouter(t)
	token := loginAdmin(t, router)

	w := doJSON(t, router, http.MethodGet, "/api/admin/reports/export?format=xlsx&window=month", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("xlsx export status = %d, body %s", w.Code, w.Body)
	}
	if w.Body.Len() == 0 {
		t.Error("xlsx export produced no bytes")
	}

	w = doJSON(t, router, http.MethodGet, "/api/admin/reports/export?format=pdf", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("pdf export status = %d", w.Code)
	}
	if w.Body.Len() == 0 {
		t.Error("pdf export produced no bytes")
	}

	w = doJSON(t, router, http.MethodGet, "/api/admin/reports/export?window=week", token, nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("unknown window accepted: %d", w.Code)
	}
}
