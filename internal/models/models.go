package models

// --- Leave request statuses ---
const (
	LeaveStatusPending  = "pending"
	LeaveStatusApproved = "approved"
	LeaveStatusRejected = "rejected"
)

// --- User roles ---
const (
	RoleAdmin    = "admin"
	RoleEmployee = "employee"
)

// Employee - an employee record created by the admin. Employees are never
// edited or deleted after creation.
type Employee struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Position   string  `json:"position"`
	HourlyRate float64 `json:"hourlyRate"`
}

// TimeRecord - one worked period for an employee. Date is a calendar day
// ("2006-01-02"), CheckIn and CheckOut are clock times ("15:04:05").
// CheckOut stays nil while the record is open and is set exactly once.
type TimeRecord struct {
	ID         string  `json:"id"`
	EmployeeID string  `json:"employeeId"`
	Date       string  `json:"date"`
	CheckIn    string  `json:"checkIn"`
	CheckOut   *string `json:"checkOut"`
}

// Open reports whether the record has no check-out yet.
func (r TimeRecord) Open() bool {
	return r.CheckOut == nil
}

// LeaveRequest - a leave request submitted by an employee. Created with
// status pending; an admin moves it to approved or rejected.
type LeaveRequest struct {
	ID         string `json:"id"`
	EmployeeID string `json:"employeeId"`
	StartDate  string `json:"startDate"`
	EndDate    string `json:"endDate"`
	Reason     string `json:"reason"`
	Status     string `json:"status"`
}

// User - the session identity. At most one user is logged in at a time.
type User struct {
	ID         string `json:"id"`
	Email      string `json:"email"`
	Role       string `json:"role"`
	EmployeeID string `json:"employeeId,omitempty"`
}

// TimeStats - aggregated worked hours for one employee across the three
// calendar windows anchored to the current date.
type TimeStats struct {
	Daily   float64 `json:"daily"`
	Monthly float64 `json:"monthly"`
	Yearly  float64 `json:"yearly"`
}

// EmployeeStats - one row of the admin time summary: hours and pay per window.
type EmployeeStats struct {
	Employee     Employee `json:"employee"`
	DailyHours   float64  `json:"dailyHours"`
	DailyPay     float64  `json:"dailyPay"`
	MonthlyHours float64  `json:"monthlyHours"`
	MonthlyPay   float64  `json:"monthlyPay"`
	YearlyHours  float64  `json:"yearlyHours"`
	YearlyPay    float64  `json:"yearlyPay"`
}

// Summary - the admin dashboard header counters.
type Summary struct {
	TotalEmployees int     `json:"totalEmployees"`
	TodayCheckIns  int     `json:"todayCheckIns"`
	MonthlyHours   float64 `json:"monthlyHours"`
	PendingLeaves  int     `json:"pendingLeaves"`
}
