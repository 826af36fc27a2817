package service

import (
	"time"

	"github.com/nivaranatech/opsdesk-api/internal/domain/entity"
	"github.com/nivaranatech/opsdesk-api/internal/store"
	"github.com/nivaranatech/opsdesk-api/pkg/apperror"
)

// HRService handles leave requests, leave balances and holidays
type HRService struct {
	store *store.Store
}

// NewHRService creates a new HR service
func NewHRService(st *store.Store) *HRService {
	return &HRService{store: st}
}

// ApplyLeaveInput represents the leave application input
type ApplyLeaveInput struct {
	UserID    int
	LeaveType string
	StartDate time.Time
	EndDate   time.Time
	HalfDay   bool
	Reason    string
}

// ApplyLeave files a leave request; the day count comes from the
// calendar walk over the requested range
func (s *HRService) ApplyLeave(input *ApplyLeaveInput) (entity.LeaveRequest, error) {
	if input.LeaveType == "" {
		return entity.LeaveRequest{}, apperror.NewBadRequestError("Leave type is required")
	}
	return s.store.AddLeave(entity.LeaveRequest{
		UserID:    input.UserID,
		LeaveType: input.LeaveType,
		StartDate: input.StartDate,
		EndDate:   input.EndDate,
		HalfDay:   input.HalfDay,
		Reason:    input.Reason,
	})
}

// CalculateLeaveDays previews the day count for a date range
func (s *HRService) CalculateLeaveDays(start, end time.Time, excludeWeekends, halfDay bool) (float64, error) {
	if end.Before(start) {
		return 0, apperror.NewBadRequestError("End date cannot be before start date")
	}
	return s.store.CalculateLeaveDays(start, end, excludeWeekends, halfDay), nil
}

// ApproveLeave records one approval step; the request finalizes on an
// admin approval or a second approval
func (s *HRService) ApproveLeave(leaveID int, approverName, approverRole, comments string) (entity.LeaveRequest, error) {
	return s.store.ApproveLeave(leaveID, approverName, approverRole, comments)
}

// RejectLeave finalizes a request as rejected
func (s *HRService) RejectLeave(leaveID int, approverName, approverRole, reason string) (entity.LeaveRequest, error) {
	return s.store.RejectLeave(leaveID, approverName, approverRole, reason)
}

// GetLeave retrieves a leave request by id
func (s *HRService) GetLeave(id int) (entity.LeaveRequest, error) {
	return s.store.GetLeave(id)
}

// ListLeaves lists leave requests, optionally for one user
func (s *HRService) ListLeaves(userID int) []entity.LeaveRequest {
	return s.store.ListLeaves(userID)
}

// SetLeaveBalance sets a user's allowance for one leave type
func (s *HRService) SetLeaveBalance(userID int, leaveType string, days float64) (entity.User, error) {
	return s.store.SetLeaveBalance(userID, leaveType, days)
}

// AddHoliday records a company holiday
func (s *HRService) AddHoliday(date, name string) (entity.Holiday, error) {
	return s.store.AddHoliday(date, name)
}

// RemoveHoliday deletes a holiday
func (s *HRService) RemoveHoliday(id int) error {
	return s.store.RemoveHoliday(id)
}

// ListHolidays lists holidays
func (s *HRService) ListHolidays() []entity.Holiday {
	return s.store.ListHolidays()
}
