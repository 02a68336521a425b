package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"staff-attendance/internal/reports"
	"staff-attendance/internal/services"
)

// AppHandler serves the employee-portal and admin-dashboard endpoints.
type AppHandler struct {
	employeeService services.EmployeeServiceInterface
}

// NewAppHandler creates a new AppHandler.
func NewAppHandler(es services.EmployeeServiceInterface) *AppHandler {
	return &AppHandler{employeeService: es}
}

// ListEmployees handles GET /api/employees (the portal's employee picker).
func (h *AppHandler) ListEmployees(c *gin.Context) {
	c.JSON(http.StatusOK, h.employeeService.Employees())
}

// CreateEmployee handles POST /api/admin/employees.
func (h *AppHandler) CreateEmployee(c *gin.Context) {
	var input struct {
		Name       string  `json:"name" binding:"required"`
		Position   string  `json:"position" binding:"required"`
		HourlyRate float64 `json:"hourlyRate"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name and position are required"})
		return
	}

	employee, err := h.employeeService.AddEmployee(input.Name, input.Position, input.HourlyRate)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "saving employee: " + err.Error()})
		return
	}
	c.JSON(http.StatusCreated, employee)
}

// ListTimeRecords handles GET /api/time-records. An employeeId query
// narrows the list; without it all records are returned.
func (h *AppHandler) ListTimeRecords(c *gin.Context) {
	c.JSON(http.StatusOK, h.employeeService.TimeRecords(c.Query("employeeId")))
}

// CheckIn handles POST /api/time-records/check-in.
func (h *AppHandler) CheckIn(c *gin.Context) {
	var input struct {
		EmployeeID string `json:"employeeId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "employeeId is required"})
		return
	}

	record, err := h.employeeService.CheckIn(input.EmployeeID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "saving time record: " + err.Error()})
		return
	}
	c.JSON(http.StatusCreated, record)
}

// CheckOut handles POST /api/time-records/check-out. Checking out with no
// open record changes nothing and reports 404.
func (h *AppHandler) CheckOut(c *gin.Context) {
	var input struct {
		EmployeeID string `json:"employeeId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "employeeId is required"})
		return
	}

	record, err := h.employeeService.CheckOut(input.EmployeeID)
	if err != nil {
		if errors.Is(err, services.ErrNoOpenRecord) {
			c.JSON(http.StatusNotFound, gin.H{"error": "no open time record"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "saving time record: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, record)
}

// GetTimeStats handles GET /api/time-stats?employeeId= (the portal's
// daily/monthly/yearly hour cards).
func (h *AppHandler) GetTimeStats(c *gin.Context) {
	employeeID := c.Query("employeeId")
	if employeeID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "employeeId is required"})
		return
	}
	c.JSON(http.StatusOK, h.employeeService.TimeStats(employeeID))
}

// ListLeaveRequests handles GET /api/leave-requests. An employeeId query
// narrows the list.
func (h *AppHandler) ListLeaveRequests(c *gin.Context) {
	c.JSON(http.StatusOK, h.employeeService.LeaveRequests(c.Query("employeeId")))
}

// SubmitLeaveRequest handles POST /api/leave-requests. Dates are passed
// through as given; an end date before the start date is not rejected.
func (h *AppHandler) SubmitLeaveRequest(c *gin.Context) {
	var input struct {
		EmployeeID string `json:"employeeId" binding:"required"`
		StartDate  string `json:"startDate" binding:"required"`
		EndDate    string `json:"endDate" binding:"required"`
		Reason     string `json:"reason" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "employeeId, startDate, endDate and reason are required"})
		return
	}

	request, err := h.employeeService.SubmitLeaveRequest(input.EmployeeID, input.StartDate, input.EndDate, input.Reason)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "saving leave request: " + err.Error()})
		return
	}
	c.JSON(http.StatusCreated, request)
}

// UpdateLeaveRequestStatus handles PUT /api/admin/leave-requests/:id/status.
func (h *AppHandler) UpdateLeaveRequestStatus(c *gin.Context) {
	var input struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "status is required"})
		return
	}

	request, err := h.employeeService.UpdateLeaveRequestStatus(c.Param("id"), input.Status)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidLeaveStatus):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrLeaveRequestNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "saving leave request: " + err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, request)
}

// GetSummary handles GET /api/admin/summary (the dashboard counters).
func (h *AppHandler) GetSummary(c *gin.Context) {
	c.JSON(http.StatusOK, h.employeeService.Summary())
}

// GetEmployeeStats handles GET /api/admin/time-stats: the per-employee
// hours and pay table across all three windows.
func (h *AppHandler) GetEmployeeStats(c *gin.Context) {
	c.JSON(http.StatusOK, h.employeeService.EmployeeStats())
}

// ExportReport handles GET /api/admin/reports/export?format=&window=.
// Formats: xlsx (default), pdf. Windows: day, month (default), year.
func (h *AppHandler) ExportReport(c *gin.Context) {
	window := services.WindowMonth
	if v := c.Query("window"); v != "" {
		parsed, err := services.ParseWindow(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		window = parsed
	}

	rows := h.employeeService.EmployeeStats()
	now := time.Now()
	filename := fmt.Sprintf("payroll-%s-%s", window, now.Format("20060102"))

	switch c.DefaultQuery("format", "xlsx") {
	case "xlsx":
		c.Header("Content-Disposition", `attachment; filename="`+filename+`.xlsx"`)
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		if err := reports.WriteExcel(c.Writer, rows, window, now); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "generating report: " + err.Error()})
		}
	case "pdf":
		c.Header("Content-Disposition", `attachment; filename="`+filename+`.pdf"`)
		c.Header("Content-Type", "application/pdf")
		if err := reports.WritePDF(c.Writer, rows, window, now); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "generating report: " + err.Error()})
		}
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "format must be xlsx or pdf"})
	}
}
