package services

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"staff-attendance/internal/models"
	"staff-attendance/internal/notify"
	"staff-attendance/internal/repositories"
)

var (
	ErrNoOpenRecord         = errors.New("no open time record")
	ErrLeaveRequestNotFound = errors.New("leave request not found")
	ErrInvalidLeaveStatus   = errors.New("status must be approved or rejected")
)

// EmployeeServiceInterface is the state manager for the three entity
// collections. Every mutation persists the full updated collection and
// returns the new value.
type EmployeeServiceInterface interface {
	Employees() []models.Employee
	EmployeeByID(id string) (models.Employee, bool)
	TimeRecords(employeeID string) []models.TimeRecord
	LeaveRequests(employeeID string) []models.LeaveRequest

	AddEmployee(name, position string, hourlyRate float64) (models.Employee, error)
	CheckIn(employeeID string) (models.TimeRecord, error)
	CheckOut(employeeID string) (models.TimeRecord, error)
	SubmitLeaveRequest(employeeID, startDate, endDate, reason string) (models.LeaveRequest, error)
	UpdateLeaveRequestStatus(id, status string) (models.LeaveRequest, error)

	TimeStats(employeeID string) models.TimeStats
	EmployeeStats() []models.EmployeeStats
	Summary() models.Summary
}

// EmployeeService implements EmployeeServiceInterface. It exclusively owns
// the in-memory collections; handlers only read returned copies and
// dispatch mutations. The logical model is single-writer, but the HTTP
// server is concurrent, so a mutex guards every entry point.
type EmployeeService struct {
	mu       sync.Mutex
	repo     repositories.CollectionRepositoryInterface
	notifier notify.Notifier
	now      func() time.Time

	employees     []models.Employee
	timeRecords   []models.TimeRecord
	leaveRequests []models.LeaveRequest
}

// NewEmployeeService loads the stored collections and returns the service.
func NewEmployeeService(repo repositories.CollectionRepositoryInterface, notifier notify.Notifier) *EmployeeService {
	return &EmployeeService{
		repo:          repo,
		notifier:      notifier,
		now:           time.Now,
		employees:     repo.LoadEmployees(),
		timeRecords:   repo.LoadTimeRecords(),
		leaveRequests: repo.LoadLeaveRequests(),
	}
}

// SetClock overrides the wall clock. Tests use this to pin "now".
func (s *EmployeeService) SetClock(now func() time.Time) {
	s.now = now
}

func (s *EmployeeService) Employees() []models.Employee {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Employee, len(s.employees))
	copy(out, s.employees)
	return out
}

func (s *EmployeeService) EmployeeByID(id string) (models.Employee, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.employeeByIDLocked(id)
}

func (s *EmployeeService) employeeByIDLocked(id string) (models.Employee, bool) {
	for _, e := range s.employees {
		if e.ID == id {
			return e, true
		}
	}
	return models.Employee{}, false
}

// TimeRecords returns records for one employee, or all records when
// employeeID is empty.
func (s *EmployeeService) TimeRecords(employeeID string) []models.TimeRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return filterRecords(s.timeRecords, employeeID)
}

func filterRecords(records []models.TimeRecord, employeeID string) []models.TimeRecord {
	out := []models.TimeRecord{}
	for _, r := range records {
		if employeeID == "" || r.EmployeeID == employeeID {
			out = append(out, r)
		}
	}
	return out
}

// LeaveRequests returns requests for one employee, or all when employeeID
// is empty.
func (s *EmployeeService) LeaveRequests(employeeID string) []models.LeaveRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []models.LeaveRequest{}
	for _, r := range s.leaveRequests {
		if employeeID == "" || r.EmployeeID == employeeID {
			out = append(out, r)
		}
	}
	return out
}

// AddEmployee appends a new employee with a fresh identifier. Duplicate
// names are not checked.
func (s *EmployeeService) AddEmployee(name, position string, hourlyRate float64) (models.Employee, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	employee := models.Employee{
		ID:         uuid.NewString(),
		Name:       name,
		Position:   position,
		HourlyRate: hourlyRate,
	}
	s.employees = append(s.employees, employee)
	if err := s.repo.SaveEmployees(s.employees); err != nil {
		return models.Employee{}, err
	}
	return employee, nil
}

// CheckIn opens a new time record for the employee, dated and stamped with
// the current wall clock. An already-open record for the same employee
// does not block a second check-in.
func (s *EmployeeService) CheckIn(employeeID string) (models.TimeRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	record := models.TimeRecord{
		ID:         uuid.NewString(),
		EmployeeID: employeeID,
		Date:       now.Format(DateLayout),
		CheckIn:    now.Format(ClockLayout),
	}
	s.timeRecords = append(s.timeRecords, record)
	if err := s.repo.SaveTimeRecords(s.timeRecords); err != nil {
		return models.TimeRecord{}, err
	}

	employee, _ := s.employeeByIDLocked(employeeID)
	s.notifier.Notify(fmt.Sprintf(
		"🟢 **Check In**\n"+
			"**Employee:** %s\n"+
			"**Position:** %s\n"+
			"**Date:** %s\n"+
			"**Status:** Checked In",
		employee.Name, employee.Position, FormatTimestamp(now)))

	return record, nil
}

// CheckOut closes the most recently created open record for the employee.
// When the employee has no open record the collections are left untouched
// and ErrNoOpenRecord is returned.
func (s *EmployeeService) CheckOut(employeeID string) (models.TimeRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i := len(s.timeRecords) - 1; i >= 0; i-- {
		if s.timeRecords[i].EmployeeID == employeeID && s.timeRecords[i].Open() {
			idx = i
			break
		}
	}
	if idx < 0 {
		return models.TimeRecord{}, ErrNoOpenRecord
	}

	now := s.now()
	checkOut := now.Format(ClockLayout)
	s.timeRecords[idx].CheckOut = &checkOut
	if err := s.repo.SaveTimeRecords(s.timeRecords); err != nil {
		return models.TimeRecord{}, err
	}
	record := s.timeRecords[idx]

	hours, _ := RecordHours(record)
	employee, _ := s.employeeByIDLocked(employeeID)
	s.notifier.Notify(fmt.Sprintf(
		"🔴 **Check Out**\n"+
			"**Employee:** %s\n"+
			"**Position:** %s\n"+
			"**Date:** %s\n"+
			"**Hours Worked:** %.2f\n"+
			"**Status:** Checked Out",
		employee.Name, employee.Position, FormatTimestamp(now), hours))

	return record, nil
}

// SubmitLeaveRequest appends a pending leave request. The date range is
// not validated; an end date before the start date is accepted as-is.
func (s *EmployeeService) SubmitLeaveRequest(employeeID, startDate, endDate, reason string) (models.LeaveRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	request := models.LeaveRequest{
		ID:         uuid.NewString(),
		EmployeeID: employeeID,
		StartDate:  startDate,
		EndDate:    endDate,
		Reason:     reason,
		Status:     models.LeaveStatusPending,
	}
	s.leaveRequests = append(s.leaveRequests, request)
	if err := s.repo.SaveLeaveRequests(s.leaveRequests); err != nil {
		return models.LeaveRequest{}, err
	}

	employee, _ := s.employeeByIDLocked(employeeID)
	s.notifier.Notify(fmt.Sprintf(
		"📝 **Leave Request**\n"+
			"**Employee:** %s\n"+
			"**Position:** %s\n"+
			"**Submitted:** %s\n"+
			"**Period:** %s to %s\n"+
			"**Reason:** %s\n"+
			"**Status:** Pending Approval",
		employee.Name, employee.Position, FormatTimestamp(s.now()),
		startDate, endDate, reason))

	return request, nil
}

// UpdateLeaveRequestStatus sets a request to approved or rejected. There
// is no terminal-state enforcement: an already-decided request can be
// re-decided. Status transitions deliberately fire no notification, unlike
// submission.
func (s *EmployeeService) UpdateLeaveRequestStatus(id, status string) (models.LeaveRequest, error) {
	if status != models.LeaveStatusApproved && status != models.LeaveStatusRejected {
		return models.LeaveRequest{}, ErrInvalidLeaveStatus
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.leaveRequests {
		if s.leaveRequests[i].ID == id {
			s.leaveRequests[i].Status = status
			if err := s.repo.SaveLeaveRequests(s.leaveRequests); err != nil {
				return models.LeaveRequest{}, err
			}
			return s.leaveRequests[i], nil
		}
	}
	return models.LeaveRequest{}, ErrLeaveRequestNotFound
}

// TimeStats aggregates one employee's hours over the day, month and year
// windows containing the current time.
func (s *EmployeeService) TimeStats(employeeID string) models.TimeStats {
	s.mu.Lock()
	defer s.mu.Unlock()

	records := filterRecords(s.timeRecords, employeeID)
	now := s.now()
	return models.TimeStats{
		Daily:   TotalHours(records, WindowDay, now),
		Monthly: TotalHours(records, WindowMonth, now),
		Yearly:  TotalHours(records, WindowYear, now),
	}
}

// EmployeeStats builds the admin time-summary table: per-employee hours
// and pay for each window. Pay is hours times the hourly rate, with no
// overtime tiers or rounding.
func (s *EmployeeService) EmployeeStats() []models.EmployeeStats {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	out := make([]models.EmployeeStats, 0, len(s.employees))
	for _, e := range s.employees {
		records := filterRecords(s.timeRecords, e.ID)
		daily := TotalHours(records, WindowDay, now)
		monthly := TotalHours(records, WindowMonth, now)
		yearly := TotalHours(records, WindowYear, now)
		out = append(out, models.EmployeeStats{
			Employee:     e,
			DailyHours:   daily,
			DailyPay:     daily * e.HourlyRate,
			MonthlyHours: monthly,
			MonthlyPay:   monthly * e.HourlyRate,
			YearlyHours:  yearly,
			YearlyPay:    yearly * e.HourlyRate,
		})
	}
	return out
}

// Summary computes the admin dashboard counters.
func (s *EmployeeService) Summary() models.Summary {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	today := now.Format(DateLayout)
	todayCheckIns := 0
	for _, r := range s.timeRecords {
		if r.Date == today {
			todayCheckIns++
		}
	}
	pending := 0
	for _, r := range s.leaveRequests {
		if r.Status == models.LeaveStatusPending {
			pending++
		}
	}
	return models.Summary{
		TotalEmployees: len(s.employees),
		TodayCheckIns:  todayCheckIns,
		MonthlyHours:   TotalHours(s.timeRecords, WindowMonth, now),
		PendingLeaves:  pending,
	}
}
